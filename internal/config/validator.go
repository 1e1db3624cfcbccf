package config

import (
	"fmt"

	tailkiterrors "github.com/alexisbeaulieu97/tailkit/pkg/errors"
)

// ValidateThemeConfig checks a parsed theme document against the schema and
// the bundle-level rules. It returns the first violation found.
func ValidateThemeConfig(cfg *ThemeConfig) error {
	if cfg == nil {
		return tailkiterrors.NewValidationError("theme", "theme configuration is nil", nil)
	}

	if err := GetValidator().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	for component, overrides := range cfg.Components {
		if err := validateComponentBundles(component, overrides); err != nil {
			return err
		}
	}

	return validateBundleMap("base", cfg.Base)
}

func validateComponentBundles(component string, overrides ComponentConfig) error {
	if err := validateBundleMap(componentField(component, "variants"), overrides.Variants); err != nil {
		return err
	}

	if component == "alert" && len(overrides.Sizes) > 0 {
		return tailkiterrors.NewValidationError(componentField(component, "sizes"), "alerts have no size scale", nil)
	}

	return validateBundleMap(componentField(component, "sizes"), overrides.Sizes)
}

func validateBundleMap(field string, bundles map[string][]string) error {
	v := GetValidator()

	for name, fragments := range bundles {
		entry := field + "." + name

		if !bundleNameRegex.MatchString(name) {
			return tailkiterrors.NewValidationError(entry, fmt.Sprintf("invalid bundle name %q", name), nil)
		}

		if len(fragments) == 0 {
			return tailkiterrors.NewValidationError(entry, "bundle needs at least one class", nil)
		}

		for _, fragment := range fragments {
			if err := v.Var(fragment, "css_class"); err != nil {
				return tailkiterrors.NewValidationError(entry, fmt.Sprintf("invalid class token %q", fragment), nil)
			}
		}
	}

	return nil
}

func componentField(component, section string) string {
	return fmt.Sprintf("components.%s.%s", component, section)
}
