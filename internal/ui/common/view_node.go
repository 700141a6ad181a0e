package common

import "github.com/charmbracelet/x/cellbuf"

// ViewNode records where a model was last drawn.
type ViewNode struct {
	Width  int
	Height int
	Frame  cellbuf.Rectangle
}

func NewViewNode(width, height int) *ViewNode {
	return &ViewNode{Width: width, Height: height}
}

func (v *ViewNode) SetFrame(f cellbuf.Rectangle) {
	v.Frame = f
	v.Width = f.Dx()
	v.Height = f.Dy()
}
