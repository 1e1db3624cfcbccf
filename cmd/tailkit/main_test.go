package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func executeCommand(args ...string) (string, error) {
	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func writeMidnightTheme(t *testing.T) string {
	t.Helper()

	content := `version: "1.0"
name: Midnight
description: Dark indigo accents.
components:
  button:
    variants:
      primary:
        - bg-indigo-600
        - text-white
        - hover:bg-indigo-700
`
	path := filepath.Join(t.TempDir(), "midnight.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
