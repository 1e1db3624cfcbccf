package tests

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tailkit/internal/config"
	"github.com/alexisbeaulieu97/tailkit/internal/gallery"
	"github.com/alexisbeaulieu97/tailkit/pkg/diff"
	tailkiterrors "github.com/alexisbeaulieu97/tailkit/pkg/errors"
	"github.com/alexisbeaulieu97/tailkit/pkg/tailwind"
)

// TestIntegrationThemePipeline exercises the full path from a theme file on
// disk to rendered markup: parse, validate, materialize the theme, build
// classes through a themed builder, and render a builtin story with it.
func TestIntegrationThemePipeline(t *testing.T) {
	cfg := loadTheme(t, "midnight.yaml")
	require.Equal(t, "Midnight", cfg.Name)

	builder := tailwind.NewBuilder(tailwind.WithTheme(cfg.Theme()))

	story, err := gallery.Builtin().Get("button/primary")
	require.NoError(t, err)

	markup, err := gallery.Render(context.Background(), story, builder)
	require.NoError(t, err)
	assert.Contains(t, markup, "bg-indigo-600")
	assert.Contains(t, markup, "hover:bg-indigo-700")
	assert.NotContains(t, markup, "bg-blue-600")

	// The override lives on the themed builder only; the shared default
	// keeps its factory classes.
	defaultMarkup, err := gallery.Render(context.Background(), story, tailwind.Default())
	require.NoError(t, err)
	assert.Contains(t, defaultMarkup, "bg-blue-600")
}

func TestIntegrationBaseBundleOverride(t *testing.T) {
	builder := themedBuilder(t, "midnight.yaml")

	assert.Equal(t, "rounded-xl bg-slate-900 text-slate-100", builder.BuildBaseClasses("card", ""))

	story, err := gallery.Builtin().Get("card/basic")
	require.NoError(t, err)

	markup, err := gallery.Render(context.Background(), story, builder)
	require.NoError(t, err)
	assert.Contains(t, markup, "bg-slate-900")
}

func TestIntegrationStoriesRenderAcrossThemes(t *testing.T) {
	builders := map[string]*tailwind.Builder{
		"default":  tailwind.NewBuilder(),
		"midnight": themedBuilder(t, "midnight.yaml"),
		"contrast": themedBuilder(t, "contrast.yaml"),
	}

	for name, builder := range builders {
		for _, story := range gallery.Builtin().List() {
			markup, err := gallery.Render(context.Background(), story, builder)
			require.NoError(t, err, "story %s under theme %s", story.ID, name)
			require.NotEmpty(t, markup, "story %s under theme %s", story.ID, name)
		}
	}
}

func TestIntegrationRenderDeterminism(t *testing.T) {
	builder := themedBuilder(t, "midnight.yaml")

	story, err := gallery.Builtin().Get("form/signup")
	require.NoError(t, err)

	first, err := gallery.Render(context.Background(), story, builder)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		again, err := gallery.Render(context.Background(), story, builder)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}

	generic, component := builder.CacheStats()
	assert.Positive(t, generic.Hits+component.Hits)
}

func TestIntegrationThemeDiff(t *testing.T) {
	story, err := gallery.Builtin().Get("button/primary")
	require.NoError(t, err)

	before, err := gallery.Render(context.Background(), story, tailwind.NewBuilder())
	require.NoError(t, err)
	after, err := gallery.Render(context.Background(), story, themedBuilder(t, "midnight.yaml"))
	require.NoError(t, err)

	unified := diff.Unified([]byte(before), []byte(after), "default", "midnight")
	require.NotEmpty(t, unified)
	assert.Contains(t, unified, "--- default")
	assert.Contains(t, unified, "+++ midnight")
	assert.Contains(t, unified, "indigo")

	assert.Empty(t, diff.Unified([]byte(before), []byte(before), "default", "default"))
}

func TestIntegrationParseError(t *testing.T) {
	_, err := config.ParseThemeFile(fixturePath("invalid.yaml"))
	require.Error(t, err)

	var parseErr *tailkiterrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, fixturePath("invalid.yaml"), parseErr.Path)
	assert.Positive(t, parseErr.Line)
	assert.Contains(t, err.Error(), "parse error")
}

func TestIntegrationValidationFailure(t *testing.T) {
	_, err := config.ParseThemeFile(fixturePath("bad-token.yaml"))
	require.Error(t, err)

	var validationErr *tailkiterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "base.card", validationErr.Field)
	assert.Contains(t, validationErr.Message, "invalid class token")
}

func TestIntegrationUnknownStory(t *testing.T) {
	_, err := gallery.Builtin().Get("tooltip/basic")
	require.Error(t, err)

	var storyErr *tailkiterrors.StoryError
	require.ErrorAs(t, err, &storyErr)
	assert.Equal(t, "tooltip/basic", storyErr.Story)
}

func loadTheme(t *testing.T, name string) *config.ThemeConfig {
	t.Helper()

	cfg, err := config.ParseThemeFile(fixturePath(name))
	require.NoError(t, err)
	return cfg
}

func themedBuilder(t *testing.T, name string) *tailwind.Builder {
	t.Helper()

	return tailwind.NewBuilder(tailwind.WithTheme(loadTheme(t, name).Theme()))
}

func fixturePath(name string) string {
	return filepath.Join("..", "testdata", "themes", name)
}
