package common

import "github.com/charmbracelet/x/cellbuf"

// DragAware tracks a drag gesture that started inside a model. Models embed
// it and decide themselves what a motion event means.
type DragAware struct {
	dragging bool
	last     cellbuf.Position
}

func (d *DragAware) BeginDrag(x, y int) {
	d.dragging = true
	d.last = cellbuf.Pos(x, y)
}

// DragTo records the new pointer position and returns the movement since
// the previous one.
func (d *DragAware) DragTo(x, y int) (dx, dy int) {
	if !d.dragging {
		return 0, 0
	}
	dx, dy = x-d.last.X, y-d.last.Y
	d.last = cellbuf.Pos(x, y)
	return dx, dy
}

func (d *DragAware) EndDrag() {
	d.dragging = false
}

func (d *DragAware) IsDragging() bool {
	return d.dragging
}
