package test

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Stripped normalizes rendered output for comparisons: escape sequences
// and carriage returns are removed, trailing blanks are trimmed from each
// line and trailing empty lines are dropped.
func Stripped(s string) string {
	s = ansi.Strip(s)
	s = strings.ReplaceAll(s, "\r", "")

	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
