package tui

import (
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tailkit/internal/gallery"
	"github.com/alexisbeaulieu97/tailkit/pkg/components"
	"github.com/alexisbeaulieu97/tailkit/pkg/tailwind"
)

func textStoryComponent(content string) func() templ.Component {
	return func() templ.Component {
		return components.Text(components.TextProps{Content: content})
	}
}

func midnightTheme() tailwind.Theme {
	theme := tailwind.DefaultTheme()
	theme.Name = "midnight"
	theme.Variants.Register(tailwind.GroupButton, string(tailwind.ButtonPrimary), []string{
		"bg-indigo-600", "text-white", "hover:bg-indigo-700",
	})
	return theme
}

func TestNewModelDefaults(t *testing.T) {
	m := NewModel(nil, nil)

	assert.Equal(t, ViewList, m.viewMode)
	assert.Equal(t, 0, m.cursor)
	assert.False(t, m.loading)
	assert.Equal(t, gallery.Builtin().Len(), len(m.stories))

	// A default theme is always available
	require.Len(t, m.themes, 1)
	assert.Equal(t, "default", m.themes[0].Name)
	assert.NotNil(t, m.themes[0].Builder)
}

func TestNewModelSortsThemes(t *testing.T) {
	themes := map[string]tailwind.Theme{
		"midnight": midnightTheme(),
		"contrast": tailwind.DefaultTheme(),
	}
	m := NewModel(nil, themes)

	require.Len(t, m.themes, 3)
	assert.Equal(t, "contrast", m.themes[0].Name)
	assert.Equal(t, "default", m.themes[1].Name)
	assert.Equal(t, "midnight", m.themes[2].Name)

	// Injecting the default must not touch the caller's map
	assert.Len(t, themes, 2)
}

func TestNewModelKeepsProvidedDefault(t *testing.T) {
	custom := midnightTheme()
	m := NewModel(nil, map[string]tailwind.Theme{"default": custom})

	require.Len(t, m.themes, 1)
	classes := m.themes[0].Builder.BuildButtonClasses(tailwind.ButtonProps{Variant: tailwind.ButtonPrimary})
	assert.Contains(t, classes, "bg-indigo-600")
}

func TestNewModelCustomRegistry(t *testing.T) {
	reg := gallery.NewRegistry()
	require.NoError(t, reg.Register(gallery.Story{
		ID:        "demo/solo",
		Title:     "Solo",
		Group:     "demo",
		Component: textStoryComponent("solo"),
	}))

	m := NewModel(reg, nil)
	require.Len(t, m.stories, 1)
	assert.Equal(t, "demo/solo", m.stories[0].ID)
}

func TestModelInit(t *testing.T) {
	m := NewModel(nil, nil)
	assert.NotNil(t, m.Init())
}

func TestSelectedStory(t *testing.T) {
	m := NewModel(nil, nil)

	story, ok := m.SelectedStory()
	require.True(t, ok)
	assert.Equal(t, m.stories[0].ID, story.ID)

	m.cursor = len(m.stories)
	_, ok = m.SelectedStory()
	assert.False(t, ok)
}

func TestMoveCursorWraps(t *testing.T) {
	m := NewModel(nil, nil)
	last := len(m.stories) - 1

	m.MoveCursorUp()
	assert.Equal(t, last, m.cursor)

	m.MoveCursorDown()
	assert.Equal(t, 0, m.cursor)

	m.MoveCursorDown()
	assert.Equal(t, 1, m.cursor)
}

func TestSetCursorBounds(t *testing.T) {
	m := NewModel(nil, nil)

	m.SetCursor(3)
	assert.Equal(t, 3, m.cursor)

	m.SetCursor(-1)
	assert.Equal(t, 3, m.cursor)

	m.SetCursor(len(m.stories))
	assert.Equal(t, 3, m.cursor)
}

func TestApplyFilter(t *testing.T) {
	m := NewModel(nil, nil)
	m.cursor = len(m.stories) - 1

	m.filter = "primary"
	m.applyFilter()
	require.NotEmpty(t, m.stories)
	assert.Less(t, len(m.stories), gallery.Builtin().Len())
	assert.Equal(t, 0, m.cursor, "cursor is clamped when the list shrinks")

	m.filter = ""
	m.applyFilter()
	assert.Equal(t, gallery.Builtin().Len(), len(m.stories))
}

func TestCycleTheme(t *testing.T) {
	m := NewModel(nil, map[string]tailwind.Theme{"midnight": midnightTheme()})
	require.Len(t, m.themes, 2)

	assert.Equal(t, "default", m.Theme().Name)
	assert.Equal(t, "midnight", m.nextTheme().Name)

	m.cycleTheme()
	assert.Equal(t, "midnight", m.Theme().Name)
	assert.Equal(t, "default", m.nextTheme().Name)

	m.cycleTheme()
	assert.Equal(t, "default", m.Theme().Name)
}
