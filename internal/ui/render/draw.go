package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
)

// Draw places a rendered (possibly ANSI styled) string into a rectangle.
// Draws are executed before effects, lower Z first.
type Draw struct {
	Rect    cellbuf.Rectangle
	Content string
	Z       int
}

func fillString(width, height int, ch rune, style lipgloss.Style) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	line := style.Render(strings.Repeat(string(ch), width))
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
