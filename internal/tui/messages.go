package tui

// ViewMode determines which screen to render
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewStory
	ViewDiff
	ViewHelp
)

// StoryRenderedMsg carries a story's markup rendered under one theme.
type StoryRenderedMsg struct {
	ID     string
	Theme  string
	Markup string
}

// StoryDiffMsg carries the unified diff of one story rendered under two
// themes.
type StoryDiffMsg struct {
	ID          string
	BeforeTheme string
	AfterTheme  string
	Diff        string
	Identical   bool
}

// StoryErrorMsg reports a failed story render.
type StoryErrorMsg struct {
	ID  string
	Err error
}
