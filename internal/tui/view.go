package tui

import (
	"fmt"
	"strings"
)

// View renders the current screen.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	switch m.viewMode {
	case ViewStory:
		return m.renderStoryView()
	case ViewDiff:
		return m.renderDiffView()
	case ViewHelp:
		return m.renderHelpView()
	default:
		return m.renderListView()
	}
}

func (m Model) renderListView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("tailkit gallery"))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%d stories  •  theme: %s", len(m.stories), m.Theme().Name)))
	if m.loading {
		b.WriteString(" " + m.spinner.View())
	}
	b.WriteString("\n\n")

	if m.errMsg != "" {
		b.WriteString(errorBannerStyle.Render("✗ " + m.errMsg))
		b.WriteString(footerStyle.Render("  (x to dismiss)"))
		b.WriteString("\n\n")
	}

	if m.filtering || m.filter != "" {
		b.WriteString("Filter: " + m.filter)
		if m.filtering {
			b.WriteString("▌")
		}
		b.WriteString("\n\n")
	}

	if len(m.stories) == 0 {
		b.WriteString(emptyStateStyle.Render("No stories match the current filter."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderStoryList())
	}

	b.WriteString("\n")
	hints := []string{
		"↑/↓: navigate",
		"enter: open",
		"t: theme",
		"d: diff",
		"/: filter",
		"?: help",
		"q: quit",
	}
	b.WriteString(footerStyle.Render(strings.Join(hints, "  •  ")))

	return b.String()
}

func (m Model) renderStoryList() string {
	visible := m.visibleRows()

	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := start + visible
	if end > len(m.stories) {
		end = len(m.stories)
	}

	var b strings.Builder
	if start > 0 {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  ▲ %d more", start)))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		story := m.stories[i]
		line := fmt.Sprintf("%-26s %s", story.ID, story.Title)
		if i == m.cursor {
			b.WriteString(selectedItemStyle.Render("▸ " + line))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteString("\n")
	}
	if end < len(m.stories) {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  ▼ %d more", len(m.stories)-end)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderStoryView() string {
	var b strings.Builder

	title := m.storyID
	description := ""
	if story, ok := m.SelectedStory(); ok {
		title = story.ID
		description = story.Description
	}

	b.WriteString(titleStyle.Render(title))
	b.WriteString(headerStyle.Render("  •  theme: "))
	b.WriteString(themeStyle.Render(m.Theme().Name))
	if m.loading {
		b.WriteString(" " + m.spinner.View())
	}
	b.WriteString("\n")
	if description != "" {
		b.WriteString(mutedStyle.Render(description))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n\n")

	hints := []string{
		"↑/↓: scroll",
		"t: theme",
		"d: diff",
		"esc: back",
		"q: quit",
	}
	b.WriteString(footerStyle.Render(strings.Join(hints, "  •  ")))

	return b.String()
}

func (m Model) renderDiffView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.storyID))
	b.WriteString(headerStyle.Render(fmt.Sprintf("  •  diff: %s vs %s", m.diffBefore, m.diffAfter)))
	if m.loading {
		b.WriteString(" " + m.spinner.View())
	}
	b.WriteString("\n\n")

	if m.diffEmpty {
		b.WriteString(emptyStateStyle.Render(fmt.Sprintf("No differences between %s and %s.", m.diffBefore, m.diffAfter)))
		b.WriteString("\n")
	} else {
		b.WriteString(m.viewport.View())
	}
	b.WriteString("\n\n")

	hints := []string{
		"↑/↓: scroll",
		"t: theme",
		"esc: back",
		"q: quit",
	}
	b.WriteString(footerStyle.Render(strings.Join(hints, "  •  ")))

	return b.String()
}

func (m Model) renderHelpView() string {
	return `tailkit story browser

Navigation
  ↑/k      move up
  ↓/j      move down
  1-9      jump to story
  enter    open the selected story
  esc      back, or clear the active filter

Themes
  t        cycle through loaded themes
  d        diff the selected story against the next theme

Filtering
  /        start typing a filter
  enter    keep the filter and return to the list
  esc      clear the filter

Other
  x        dismiss the error banner
  ?        toggle this help
  q        quit

Press ? or esc to return.`
}

func (m Model) visibleRows() int {
	rows := m.height - 8
	if rows < 3 {
		rows = 3
	}
	return rows
}
