package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
)

// Effect modifies already drawn cells.
type Effect interface {
	Apply(buf *cellbuf.Buffer)
	GetZ() int
	GetRect() cellbuf.Rectangle
}

type cellEffect struct {
	Rect      cellbuf.Rectangle
	Z         int
	transform func(style *cellbuf.Style)
}

func (e cellEffect) Apply(buf *cellbuf.Buffer) {
	rect := e.Rect.Intersect(buf.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			cell := buf.Cell(x, y)
			if cell == nil {
				continue
			}
			updated := cell.Clone()
			e.transform(&updated.Style)
			buf.SetCell(x, y, updated)
		}
	}
}

func (e cellEffect) GetZ() int                  { return e.Z }
func (e cellEffect) GetRect() cellbuf.Rectangle { return e.Rect }

// ReverseEffect swaps foreground and background colors.
func ReverseEffect(rect cellbuf.Rectangle, z int) Effect {
	return cellEffect{Rect: rect, Z: z, transform: func(s *cellbuf.Style) { s.Reverse(true) }}
}

// DimEffect sets the faint attribute.
func DimEffect(rect cellbuf.Rectangle, z int) Effect {
	return cellEffect{Rect: rect, Z: z, transform: func(s *cellbuf.Style) { s.Faint(true) }}
}

func UnderlineEffect(rect cellbuf.Rectangle, z int) Effect {
	return cellEffect{Rect: rect, Z: z, transform: func(s *cellbuf.Style) { s.Underline(true) }}
}

// HighlightEffect paints the style's background (and bold) on cells that
// have no background of their own.
func HighlightEffect(rect cellbuf.Rectangle, style lipgloss.Style, z int) Effect {
	bg := style.GetBackground()
	_, noBg := bg.(lipgloss.NoColor)
	bold := style.GetBold()
	return cellEffect{Rect: rect, Z: z, transform: func(s *cellbuf.Style) {
		if !noBg && s.Bg == nil {
			s.Background(bg)
		}
		if bold {
			s.Bold(true)
		}
	}}
}
