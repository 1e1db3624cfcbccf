package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderCommand(t *testing.T) {
	stdout, err := executeCommand("render", "button/primary")
	require.NoError(t, err)
	require.Contains(t, stdout, "<button")
	require.Contains(t, stdout, "bg-blue-600")
}

func TestRenderCommand_UnknownStory(t *testing.T) {
	_, err := executeCommand("render", "missing/story")
	require.Error(t, err)
	require.Contains(t, err.Error(), "story not found")
}

func TestRenderCommand_WithThemeFile(t *testing.T) {
	path := writeMidnightTheme(t)

	stdout, err := executeCommand("--theme-file", path, "render", "button/primary", "--theme", "midnight")
	require.NoError(t, err)
	require.Contains(t, stdout, "bg-indigo-600")
	require.NotContains(t, stdout, "bg-blue-600")
}

func TestRenderCommand_UnknownTheme(t *testing.T) {
	_, err := executeCommand("render", "button/primary", "--theme", "nope")
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown theme "nope"`)
	require.Contains(t, err.Error(), "default")
}

func TestRenderCommand_InvalidThemeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: [1]\n"), 0o600))

	_, err := executeCommand("--theme-file", path, "render", "button/primary")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load theme file")
}
