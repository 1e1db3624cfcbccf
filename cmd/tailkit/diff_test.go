package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiffCommand(t *testing.T) {
	path := writeMidnightTheme(t)

	stdout, err := executeCommand("--theme-file", path, "diff", "button/primary", "--to", "midnight")
	require.NoError(t, err)
	require.Contains(t, stdout, "--- default")
	require.Contains(t, stdout, "+++ midnight")
	require.Contains(t, stdout, "blue")
	require.Contains(t, stdout, "indigo")
}

func TestDiffCommand_Identical(t *testing.T) {
	stdout, err := executeCommand("diff", "button/primary", "--from", "default", "--to", "default")
	require.NoError(t, err)
	require.Contains(t, stdout, "renders identically")
}

func TestDiffCommand_UnknownStory(t *testing.T) {
	path := writeMidnightTheme(t)

	_, err := executeCommand("--theme-file", path, "diff", "missing/story", "--to", "midnight")
	require.Error(t, err)
	require.Contains(t, err.Error(), "story not found")
}

func TestDiffCommand_MissingTo(t *testing.T) {
	_, err := executeCommand("diff", "button/primary")
	require.Error(t, err)
	require.Contains(t, err.Error(), `"to"`)
}
