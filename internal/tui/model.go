package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tailkit/internal/gallery"
	"github.com/alexisbeaulieu97/tailkit/pkg/tailwind"
)

// Theme pairs a display name with the builder configured for it.
type Theme struct {
	Name    string
	Builder *tailwind.Builder
}

// Model is the Bubble Tea model for the story browser.
type Model struct {
	// Data
	registry *gallery.Registry
	stories  []gallery.Story
	themes   []Theme
	themeIdx int

	// UI state
	viewMode  ViewMode
	prevMode  ViewMode
	cursor    int
	filtering bool
	filter    string

	// Components
	spinner  spinner.Model
	viewport viewport.Model

	// Viewer state
	loading     bool
	storyID     string
	diffBefore  string
	diffAfter   string
	diffEmpty   bool
	errMsg      string

	// Window size
	width  int
	height int
}

// NewModel creates a story browser model. A nil registry falls back to the
// built-in stories, and a "default" theme is always available.
func NewModel(registry *gallery.Registry, themes map[string]tailwind.Theme) Model {
	if registry == nil {
		registry = gallery.Builtin()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	vp := viewport.New(80, 20)

	return Model{
		registry: registry,
		stories:  registry.List(),
		themes:   buildThemes(themes),
		viewMode: ViewList,
		spinner:  s,
		viewport: vp,
		width:    80,
		height:   24,
	}
}

func buildThemes(themes map[string]tailwind.Theme) []Theme {
	names := make([]string, 0, len(themes)+1)
	for name := range themes {
		names = append(names, name)
	}
	if _, ok := themes["default"]; !ok {
		names = append(names, "default")
	}
	sort.Strings(names)

	built := make([]Theme, 0, len(names))
	for _, name := range names {
		theme, ok := themes[name]
		if !ok {
			theme = tailwind.DefaultTheme()
		}
		built = append(built, Theme{
			Name:    name,
			Builder: tailwind.NewBuilder(tailwind.WithTheme(theme)),
		})
	}
	return built
}

// Init starts the spinner tick.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Theme returns the currently selected theme.
func (m Model) Theme() Theme {
	return m.themes[m.themeIdx]
}

// SelectedStory returns the story under the cursor, if any.
func (m Model) SelectedStory() (gallery.Story, bool) {
	if m.cursor < 0 || m.cursor >= len(m.stories) {
		return gallery.Story{}, false
	}
	return m.stories[m.cursor], true
}

// MoveCursorUp moves the selection up, wrapping at the top.
func (m *Model) MoveCursorUp() {
	if len(m.stories) == 0 {
		return
	}
	m.cursor--
	if m.cursor < 0 {
		m.cursor = len(m.stories) - 1
	}
}

// MoveCursorDown moves the selection down, wrapping at the bottom.
func (m *Model) MoveCursorDown() {
	if len(m.stories) == 0 {
		return
	}
	m.cursor++
	if m.cursor >= len(m.stories) {
		m.cursor = 0
	}
}

// SetCursor jumps to the given index when it is in range.
func (m *Model) SetCursor(idx int) {
	if idx >= 0 && idx < len(m.stories) {
		m.cursor = idx
	}
}

func (m *Model) applyFilter() {
	query := strings.TrimSpace(m.filter)
	if query == "" {
		m.stories = m.registry.List()
	} else {
		m.stories = m.registry.Filter(query)
	}
	if m.cursor >= len(m.stories) {
		m.cursor = 0
	}
}

func (m *Model) cycleTheme() {
	m.themeIdx = (m.themeIdx + 1) % len(m.themes)
}

func (m Model) nextTheme() Theme {
	return m.themes[(m.themeIdx+1)%len(m.themes)]
}

// Run starts the story browser in the alternate screen.
func Run(registry *gallery.Registry, themes map[string]tailwind.Theme) error {
	m := NewModel(registry, themes)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run story browser: %w", err)
	}
	return nil
}
