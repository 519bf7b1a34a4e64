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

// Stats counts changed lines in a diff.
type Stats struct {
	Added   int
	Removed int
}

// Changed reports whether any line differs.
func (s Stats) Changed() bool {
	return s.Added > 0 || s.Removed > 0
}

// Unified compares two documents line by line and returns a unified diff with
// a single hunk covering both inputs. Identical inputs produce an empty string.
// Output beyond 10,000 lines is truncated with a marker.
func Unified(from, to []byte, fromLabel, toLabel string) (string, Stats) {
	if bytes.Equal(from, to) {
		return "", Stats{}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", fromLabel)
	fmt.Fprintf(&buf, "+++ %s\n", toLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", countLines(from), countLines(to))

	var stats Stats
	for _, d := range lineDiffs(string(from), string(to)) {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			switch d.Type {
			case diffmatchpatch.DiffDelete:
				stats.Removed++
			case diffmatchpatch.DiffInsert:
				stats.Added++
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}

	result := buf.String()
	lines := strings.Split(result, "\n")
	if len(lines) > maxDiffLines {
		return strings.Join(lines[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n", stats
	}

	return result, stats
}

func lineDiffs(from, to string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffMain(a, b, false)
	return dmp.DiffCharsToLines(diffs, lines)
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func countLines(content []byte) int {
	return len(splitLines(string(content)))
}
