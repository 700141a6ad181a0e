package test

import (
	"github.com/charmbracelet/x/cellbuf"

	"github.com/flatlist/flatlist/internal/ui/layout"
	"github.com/flatlist/flatlist/internal/ui/render"
)

type immediateView interface {
	ViewRect(dl *render.DisplayContext, box layout.Box)
}

// RenderImmediate renders an immediate model into a fixed-size buffer.
func RenderImmediate(model immediateView, width, height int) string {
	dl := render.NewDisplayContext()
	return renderInto(dl, model, width, height)
}

// RenderPlain renders like RenderImmediate and strips the result down to
// plain text.
func RenderPlain(model immediateView, width, height int) string {
	return Stripped(RenderImmediate(model, width, height))
}

// RenderWithContext renders into dl and keeps its interactions, so tests can
// feed mouse events through dl.ProcessMouseEvent afterwards.
func RenderWithContext(dl *render.DisplayContext, model immediateView, width, height int) string {
	dl.Clear()
	return Stripped(renderInto(dl, model, width, height))
}

// RenderBuffer renders into a fresh buffer so tests can look at cell styles.
func RenderBuffer(model immediateView, width, height int) *cellbuf.Buffer {
	return renderBuffer(render.NewDisplayContext(), model, width, height)
}

func renderBuffer(dl *render.DisplayContext, model immediateView, width, height int) *cellbuf.Buffer {
	box := layout.NewBox(cellbuf.Rect(0, 0, width, height))
	model.ViewRect(dl, box)
	screen := cellbuf.NewBuffer(width, height)
	dl.Render(screen)
	return screen
}

func renderInto(dl *render.DisplayContext, model immediateView, width, height int) string {
	return cellbuf.Render(renderBuffer(dl, model, width, height))
}
