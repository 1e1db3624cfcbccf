package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 8
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case StoryRenderedMsg:
		return m.handleStoryRendered(msg)

	case StoryDiffMsg:
		return m.handleStoryDiff(msg)

	case StoryErrorMsg:
		if story, ok := m.SelectedStory(); !ok || story.ID != msg.ID {
			return m, nil
		}
		m.loading = false
		m.errMsg = msg.Err.Error()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) handleStoryRendered(msg StoryRenderedMsg) (tea.Model, tea.Cmd) {
	story, ok := m.SelectedStory()
	if !ok || story.ID != msg.ID || msg.Theme != m.Theme().Name {
		return m, nil
	}
	m.loading = false
	m.storyID = msg.ID
	m.viewport.SetContent(msg.Markup)
	m.viewport.GotoTop()
	m.viewMode = ViewStory
	return m, nil
}

func (m Model) handleStoryDiff(msg StoryDiffMsg) (tea.Model, tea.Cmd) {
	story, ok := m.SelectedStory()
	if !ok || story.ID != msg.ID || msg.BeforeTheme != m.Theme().Name {
		return m, nil
	}
	m.loading = false
	m.storyID = msg.ID
	m.diffBefore = msg.BeforeTheme
	m.diffAfter = msg.AfterTheme
	m.diffEmpty = msg.Identical
	m.viewport.SetContent(msg.Diff)
	m.viewport.GotoTop()
	m.viewMode = ViewDiff
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filtering {
		return m.handleFilterKeys(msg)
	}

	switch m.viewMode {
	case ViewList:
		return m.handleListKeys(msg)
	case ViewStory, ViewDiff:
		return m.handleViewerKeys(msg)
	case ViewHelp:
		return m.handleHelpKeys(msg)
	}

	return m, nil
}

func (m Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter:
		m.filtering = false
	case tea.KeyEsc:
		m.filtering = false
		m.filter = ""
		m.applyFilter()
	case tea.KeyBackspace:
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
			m.applyFilter()
		}
	case tea.KeySpace:
		m.filter += " "
		m.applyFilter()
	case tea.KeyRunes:
		m.filter += string(msg.Runes)
		m.applyFilter()
	}
	return m, nil
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		m.MoveCursorUp()

	case "down", "j":
		m.MoveCursorDown()

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.SetCursor(int(msg.String()[0] - '1'))

	case "enter", " ":
		return m.openSelected()

	case "t":
		m.cycleTheme()

	case "d":
		return m.openDiff()

	case "/":
		m.filtering = true

	case "esc":
		if m.filter != "" {
			m.filter = ""
			m.applyFilter()
		}

	case "x":
		m.errMsg = ""

	case "?":
		m.prevMode = m.viewMode
		m.viewMode = ViewHelp
	}

	return m, nil
}

func (m Model) handleViewerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc", "backspace":
		m.viewMode = ViewList
		return m, nil

	case "t":
		m.cycleTheme()
		return m.refreshViewer()

	case "d":
		if m.viewMode == ViewStory {
			return m.openDiff()
		}
		return m, nil

	case "?":
		m.prevMode = m.viewMode
		m.viewMode = ViewHelp
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "?", "esc", "q":
		m.viewMode = m.prevMode
	}
	return m, nil
}

func (m Model) openSelected() (tea.Model, tea.Cmd) {
	story, ok := m.SelectedStory()
	if !ok {
		return m, nil
	}
	m.loading = true
	m.errMsg = ""
	return m, tea.Batch(m.spinner.Tick, renderStoryCmd(story, m.Theme()))
}

func (m Model) openDiff() (tea.Model, tea.Cmd) {
	if len(m.themes) < 2 {
		m.errMsg = "theme diff needs at least two themes"
		return m, nil
	}
	story, ok := m.SelectedStory()
	if !ok {
		return m, nil
	}
	m.loading = true
	m.errMsg = ""
	return m, tea.Batch(m.spinner.Tick, diffThemesCmd(story, m.Theme(), m.nextTheme()))
}

func (m Model) refreshViewer() (tea.Model, tea.Cmd) {
	story, ok := m.SelectedStory()
	if !ok {
		m.viewMode = ViewList
		return m, nil
	}
	m.loading = true
	if m.viewMode == ViewDiff {
		return m, tea.Batch(m.spinner.Tick, diffThemesCmd(story, m.Theme(), m.nextTheme()))
	}
	return m, tea.Batch(m.spinner.Tick, renderStoryCmd(story, m.Theme()))
}
