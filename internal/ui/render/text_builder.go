package render

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/cellbuf"
)

// TextBuilder lays out a run of styled segments on one or more lines and
// turns them into draws, with optional click regions per segment.
type TextBuilder struct {
	dl       *DisplayContext
	segments []textSegment
	x        int
	y        int
	z        int
	maxWidth int
}

type textSegment struct {
	text    string
	style   lipgloss.Style
	onClick tea.Msg
}

type layoutSegment struct {
	x        int
	y        int
	width    int
	rendered string
	onClick  tea.Msg
}

func (dl *DisplayContext) Text(x, y, z int) *TextBuilder {
	return &TextBuilder{dl: dl, x: x, y: y, z: z}
}

// MaxWidth truncates every line to width cells. Zero disables truncation.
func (tb *TextBuilder) MaxWidth(width int) *TextBuilder {
	tb.maxWidth = width
	return tb
}

func (tb *TextBuilder) Write(text string) *TextBuilder {
	tb.segments = append(tb.segments, textSegment{text: text})
	return tb
}

func (tb *TextBuilder) NewLine() *TextBuilder {
	tb.segments = append(tb.segments, textSegment{text: "\n"})
	return tb
}

func (tb *TextBuilder) Space(count int) *TextBuilder {
	if count <= 0 {
		return tb
	}
	tb.segments = append(tb.segments, textSegment{text: strings.Repeat(" ", count)})
	return tb
}

func (tb *TextBuilder) Styled(text string, style lipgloss.Style) *TextBuilder {
	tb.segments = append(tb.segments, textSegment{text: text, style: style})
	return tb
}

func (tb *TextBuilder) Clickable(text string, style lipgloss.Style, onClick tea.Msg) *TextBuilder {
	tb.segments = append(tb.segments, textSegment{text: text, style: style, onClick: onClick})
	return tb
}

func (tb *TextBuilder) Measure() (int, int) {
	_, width, height := tb.layout()
	return width, height
}

func (tb *TextBuilder) Done() {
	segs, _, _ := tb.layout()
	for _, seg := range segs {
		rect := cellbuf.Rect(tb.x+seg.x, tb.y+seg.y, seg.width, 1)
		tb.dl.AddDraw(rect, seg.rendered, tb.z)
		if seg.onClick != nil {
			tb.dl.AddInteraction(rect, seg.onClick, InteractionClick, tb.z)
		}
	}
}

func (tb *TextBuilder) layout() ([]layoutSegment, int, int) {
	var segments []layoutSegment
	maxWidth, row, col := 0, 0, 0
	hasContent := false

	for _, seg := range tb.segments {
		for i, part := range strings.Split(seg.text, "\n") {
			if i > 0 {
				row++
				col = 0
			}
			if part == "" {
				continue
			}

			rendered := seg.style.Render(part)
			width := lipgloss.Width(rendered)
			if tb.maxWidth > 0 && col+width > tb.maxWidth {
				width = tb.maxWidth - col
				if width <= 0 {
					continue
				}
				rendered = ansi.Truncate(rendered, width, "")
			}
			if width == 0 {
				continue
			}

			segments = append(segments, layoutSegment{
				x:        col,
				y:        row,
				width:    width,
				rendered: rendered,
				onClick:  seg.onClick,
			})
			col += width
			hasContent = true
			maxWidth = max(maxWidth, col)
		}
	}

	if !hasContent {
		return nil, 0, 0
	}
	return segments, maxWidth, row + 1
}
