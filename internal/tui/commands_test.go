package tui

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tailkit/internal/gallery"
	"github.com/alexisbeaulieu97/tailkit/pkg/tailwind"
)

func defaultTuiTheme() Theme {
	return Theme{Name: "default", Builder: tailwind.NewBuilder()}
}

func midnightTuiTheme() Theme {
	return Theme{Name: "midnight", Builder: tailwind.NewBuilder(tailwind.WithTheme(midnightTheme()))}
}

func TestRenderStoryCmd(t *testing.T) {
	reg := gallery.Builtin()
	story, err := reg.Get("button/sizes")
	require.NoError(t, err)

	cmd := renderStoryCmd(story, defaultTuiTheme())
	require.NotNil(t, cmd)

	msg := cmd()
	rendered, ok := msg.(StoryRenderedMsg)
	require.True(t, ok, "unexpected message type: %T", msg)

	assert.Equal(t, "button/sizes", rendered.ID)
	assert.Equal(t, "default", rendered.Theme)
	assert.Contains(t, rendered.Markup, "bg-blue-600")
	assert.Contains(t, rendered.Markup, "\n", "markup is split for scrolling")
}

func TestRenderStoryCmd_Error(t *testing.T) {
	story := gallery.Story{
		ID:    "demo/broken",
		Title: "Broken",
		Group: "demo",
		Component: func() templ.Component {
			return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
				return errors.New("boom")
			})
		},
	}

	cmd := renderStoryCmd(story, defaultTuiTheme())
	msg := cmd()

	errMsg, ok := msg.(StoryErrorMsg)
	require.True(t, ok, "unexpected message type: %T", msg)
	assert.Equal(t, "demo/broken", errMsg.ID)
	assert.ErrorContains(t, errMsg.Err, "boom")
}

func TestDiffThemesCmd(t *testing.T) {
	reg := gallery.Builtin()
	story, err := reg.Get("button/primary")
	require.NoError(t, err)

	cmd := diffThemesCmd(story, defaultTuiTheme(), midnightTuiTheme())
	require.NotNil(t, cmd)

	msg := cmd()
	diffMsg, ok := msg.(StoryDiffMsg)
	require.True(t, ok, "unexpected message type: %T", msg)

	assert.Equal(t, "button/primary", diffMsg.ID)
	assert.Equal(t, "default", diffMsg.BeforeTheme)
	assert.Equal(t, "midnight", diffMsg.AfterTheme)
	assert.False(t, diffMsg.Identical)
	assert.Contains(t, diffMsg.Diff, "--- default")
	assert.Contains(t, diffMsg.Diff, "+++ midnight")
	assert.Contains(t, diffMsg.Diff, "blue")
	assert.Contains(t, diffMsg.Diff, "indigo")
}

func TestDiffThemesCmd_Identical(t *testing.T) {
	reg := gallery.Builtin()
	story, err := reg.Get("text/body")
	require.NoError(t, err)

	// Text styling is untouched by the midnight theme
	cmd := diffThemesCmd(story, defaultTuiTheme(), midnightTuiTheme())
	msg := cmd()

	diffMsg, ok := msg.(StoryDiffMsg)
	require.True(t, ok, "unexpected message type: %T", msg)
	assert.True(t, diffMsg.Identical)
	assert.Empty(t, diffMsg.Diff)
}

func TestFormatMarkup(t *testing.T) {
	markup := `<div class="p-4"><p>hi</p></div>`
	formatted := formatMarkup(markup)

	lines := strings.Split(formatted, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `<div class="p-4">`, lines[0])
	assert.Equal(t, "<p>hi</p>", lines[1])
	assert.Equal(t, "</div>", lines[2])
}
