package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tailkit/internal/gallery"
	"github.com/alexisbeaulieu97/tailkit/pkg/diff"
)

// renderStoryCmd renders one story under one theme.
func renderStoryCmd(story gallery.Story, theme Theme) tea.Cmd {
	return func() tea.Msg {
		markup, err := gallery.Render(context.Background(), story, theme.Builder)
		if err != nil {
			return StoryErrorMsg{ID: story.ID, Err: err}
		}
		return StoryRenderedMsg{
			ID:     story.ID,
			Theme:  theme.Name,
			Markup: formatMarkup(markup),
		}
	}
}

// diffThemesCmd renders one story under two themes and diffs the results.
func diffThemesCmd(story gallery.Story, before, after Theme) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		beforeMarkup, err := gallery.Render(ctx, story, before.Builder)
		if err != nil {
			return StoryErrorMsg{ID: story.ID, Err: err}
		}
		afterMarkup, err := gallery.Render(ctx, story, after.Builder)
		if err != nil {
			return StoryErrorMsg{ID: story.ID, Err: err}
		}

		unified := diff.Unified(
			[]byte(formatMarkup(beforeMarkup)),
			[]byte(formatMarkup(afterMarkup)),
			before.Name,
			after.Name,
		)
		return StoryDiffMsg{
			ID:          story.ID,
			BeforeTheme: before.Name,
			AfterTheme:  after.Name,
			Diff:        unified,
			Identical:   unified == "",
		}
	}
}

// formatMarkup splits single-line markup into one tag per line so it scrolls
// and diffs cleanly.
func formatMarkup(markup string) string {
	return strings.ReplaceAll(markup, "><", ">\n<")
}
