package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/cellbuf"

	"github.com/flatlist/flatlist/internal/ui/layout"
	"github.com/flatlist/flatlist/internal/window"
)

// Span is the visible slice of an item mapped onto the screen.
type Span struct {
	Index      int
	Rect       cellbuf.Rectangle // clipped to the view
	LineOffset int               // item lines hidden above Rect
	LineCount  int
}

// LayoutRange places the items of r, starting at r.Start, into viewRect
// scrolled by offset cells. Items keep being placed past r.End while they
// still intersect the view, so a partially visible last row is drawn too.
// An empty r with items left means the view is shorter than one item; the
// item under offset is placed then.
func LayoutRange(viewRect layout.Box, r window.Range, itemCount, itemHeight int, offset float64) []Span {
	view := viewRect.R
	if itemHeight <= 0 || view.Dy() <= 0 || itemCount <= 0 {
		return nil
	}
	startLine := int(math.Floor(math.Max(offset, 0)))
	first := r.Start
	if r.Empty() {
		// no whole row fits, draw the one the offset lands in
		first = min(startLine/itemHeight, itemCount-1)
	}

	spans := make([]Span, 0, r.Len()+1)
	for i := first; i < itemCount; i++ {
		itemStart := i*itemHeight - startLine
		itemEnd := itemStart + itemHeight
		if itemStart >= view.Dy() {
			break
		}
		if itemEnd <= 0 {
			continue
		}
		top := max(itemStart, 0)
		bottom := min(itemEnd, view.Dy())
		spans = append(spans, Span{
			Index:      i,
			Rect:       cellbuf.Rect(view.Min.X, view.Min.Y+top, view.Dx(), bottom-top),
			LineOffset: top - itemStart,
			LineCount:  bottom - top,
		})
	}
	return spans
}

// ClipLines keeps count lines of content starting at line offset.
func ClipLines(content string, offset, count int) string {
	if offset <= 0 && count <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	start := min(max(offset, 0), len(lines))
	end := len(lines)
	if count > 0 {
		end = min(start+count, len(lines))
	}
	return strings.Join(lines[start:end], "\n")
}
