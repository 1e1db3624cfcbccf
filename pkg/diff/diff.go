package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Unified generates a unified diff comparing two rendered markup
// snapshots, typically the same story under two themes. Returns the
// empty string when the snapshots are identical. Output carries no
// timestamps so diffs stay stable across runs; diffs exceeding 10,000
// lines are truncated with a marker.
func Unified(before, after []byte, beforeLabel, afterLabel string) string {
	if bytes.Equal(before, after) {
		return ""
	}

	dmp := diffmatchpatch.New()

	beforeStr := string(before)
	afterStr := string(after)

	diffs := dmp.DiffMain(beforeStr, afterStr, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", beforeLabel)
	fmt.Fprintf(&buf, "+++ %s\n", afterLabel)

	beforeLines := strings.Split(beforeStr, "\n")
	afterLines := strings.Split(afterStr, "\n")
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", len(beforeLines), len(afterLines))

	for _, d := range diffs {
		text := d.Text
		lines := strings.Split(text, "\n")
		if len(lines) > 0 && lines[len(lines)-1] == "" && text[len(text)-1] == '\n' {
			lines = lines[:len(lines)-1]
		}

		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range lines {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}

	result := buf.String()
	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		truncated := strings.Join(lines[:maxDiffLines], "\n")
		return truncated + "\n" + truncateMessage + "\n"
	}

	return result
}

// Markup is the string form of Unified.
func Markup(before, after, beforeLabel, afterLabel string) string {
	return Unified([]byte(before), []byte(after), beforeLabel, afterLabel)
}

// Pretty generates an inline, ANSI-colored diff for terminal output.
// Returns the empty string when the inputs are identical.
func Pretty(before, after string) string {
	if before == after {
		return ""
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyText(diffs)
}
