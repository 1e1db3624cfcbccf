package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	tailkiterrors "github.com/alexisbeaulieu97/tailkit/pkg/errors"
)

func validThemeConfig() *ThemeConfig {
	return &ThemeConfig{
		Version: "1.0",
		Name:    "Midnight",
		Components: map[string]ComponentConfig{
			"button": {
				Variants: map[string][]string{
					"primary": {"bg-indigo-600", "text-white", "hover:bg-indigo-700"},
				},
				Sizes: map[string][]string{
					"sm": {"px-2", "py-1", "text-sm"},
				},
			},
			"alert": {
				Variants: map[string][]string{
					"error": {"bg-red-900", "border-red-700", "text-red-100"},
				},
			},
		},
		Base: map[string][]string{
			"card": {"rounded-xl", "bg-gray-900"},
		},
	}
}

func TestValidateThemeConfig(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		mutate    func(cfg *ThemeConfig)
		wantField string
		wantMsg   string
	}{
		{
			name:   "valid config passes",
			mutate: func(cfg *ThemeConfig) {},
		},
		{
			name: "arbitrary value tokens pass",
			mutate: func(cfg *ThemeConfig) {
				cfg.Base["hero"] = []string{"w-[32rem]", "bg-[#1e293b]", "-mt-2", "md:w-1/2"}
			},
		},
		{
			name:      "empty name fails",
			mutate:    func(cfg *ThemeConfig) { cfg.Name = "" },
			wantField: "themeconfig.name",
		},
		{
			name:      "invalid version fails",
			mutate:    func(cfg *ThemeConfig) { cfg.Version = "one" },
			wantField: "themeconfig.version",
			wantMsg:   "semver",
		},
		{
			name: "alert sizes are rejected",
			mutate: func(cfg *ThemeConfig) {
				entry := cfg.Components["alert"]
				entry.Sizes = map[string][]string{"sm": {"p-2"}}
				cfg.Components["alert"] = entry
			},
			wantField: "components.alert.sizes",
			wantMsg:   "no size scale",
		},
		{
			name: "empty bundle fails",
			mutate: func(cfg *ThemeConfig) {
				cfg.Components["button"] = ComponentConfig{
					Variants: map[string][]string{"primary": {}},
				}
			},
			wantField: "components.button.variants.primary",
			wantMsg:   "at least one class",
		},
		{
			name: "bundle name must be kebab-case",
			mutate: func(cfg *ThemeConfig) {
				cfg.Base = map[string][]string{"Card Header": {"p-4"}}
			},
			wantField: "base.Card Header",
			wantMsg:   "invalid bundle name",
		},
		{
			name: "class token with spaces fails",
			mutate: func(cfg *ThemeConfig) {
				cfg.Base = map[string][]string{"card": {"rounded-xl bg-gray-900"}}
			},
			wantField: "base.card",
			wantMsg:   "invalid class token",
		},
		{
			name: "class token with angle brackets fails",
			mutate: func(cfg *ThemeConfig) {
				cfg.Base = map[string][]string{"card": {"<script>"}}
			},
			wantField: "base.card",
			wantMsg:   "invalid class token",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := validThemeConfig()
			tc.mutate(cfg)

			err := ValidateThemeConfig(cfg)
			if tc.wantField == "" {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			var validationErr *tailkiterrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.wantField, validationErr.Field)
			if tc.wantMsg != "" {
				require.Contains(t, validationErr.Message, tc.wantMsg)
			}
		})
	}
}

func TestValidateThemeConfigNil(t *testing.T) {
	t.Parallel()

	err := ValidateThemeConfig(nil)
	require.Error(t, err)

	var validationErr *tailkiterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "theme", validationErr.Field)
}

func TestGetValidatorReuse(t *testing.T) {
	t.Parallel()

	require.Same(t, GetValidator(), GetValidator())
}
