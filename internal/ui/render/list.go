package render

import (
	"log"
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flatlist/flatlist/internal/scroll"
	"github.com/flatlist/flatlist/internal/ui/layout"
	"github.com/flatlist/flatlist/internal/window"
)

type RenderItemFunc func(dl *DisplayContext, span Span)

type ClickMessageFunc func(index int) tea.Msg

// ListRenderer draws the visible part of a uniform height list. The scroll
// offset is kept in cells by a scroll.State whose extent follows the last
// rendered geometry.
type ListRenderer struct {
	ScrollMsg tea.Msg
	state     *scroll.State
	metrics   window.Metrics
	visible   window.Range
}

func NewListRenderer(scrollMsg tea.Msg, velocity float64) *ListRenderer {
	state, err := scroll.New(0, velocity)
	if err != nil {
		log.Println("list renderer:", err)
		state, _ = scroll.New(0, 1)
	}
	return &ListRenderer{ScrollMsg: scrollMsg, state: state}
}

// Render updates the geometry from viewRect, then draws and registers a
// click region for every item intersecting the view. It returns the range
// the windowing function selected for the current offset.
func (r *ListRenderer) Render(
	dl *DisplayContext,
	viewRect layout.Box,
	itemCount int,
	itemHeight int,
	render RenderItemFunc,
	clickMsg ClickMessageFunc,
) window.Range {
	r.Resize(itemCount, itemHeight, viewRect.R.Dy())
	if itemCount <= 0 || itemHeight <= 0 {
		return r.visible
	}

	for _, span := range LayoutRange(viewRect, r.visible, itemCount, itemHeight, r.state.Offset()) {
		render(dl, span)
		if clickMsg != nil {
			dl.AddInteraction(span.Rect, clickMsg(span.Index), InteractionClick, ZBase)
		}
	}
	return r.visible
}

// Resize recomputes the metrics and scroll extent without drawing.
func (r *ListRenderer) Resize(itemCount, itemHeight, viewportHeight int) {
	if itemHeight <= 0 {
		r.metrics = window.Metrics{}
		r.visible = window.Range{}
		r.state.SetExtent(0, 0)
		return
	}
	m, err := window.NewMetrics(max(itemCount, 0), float64(itemHeight), float64(max(viewportHeight, 0)))
	if err != nil {
		log.Println("list renderer:", err)
		return
	}
	r.metrics = m
	r.state.SetExtent(m.TotalHeight(), m.ViewportHeight)
	r.visible = m.VisibleRangeAt(r.state.Offset())
}

// Scroll applies d and refreshes the visible range.
func (r *ListRenderer) Scroll(d scroll.Delta) float64 {
	offset := r.state.Apply(d)
	r.refresh()
	return offset
}

// EnsureVisible moves the offset the least amount needed to show index.
func (r *ListRenderer) EnsureVisible(index int) {
	m := r.metrics
	if m.ItemHeight <= 0 || index < 0 || index >= m.ItemCount {
		return
	}
	top := float64(index) * m.ItemHeight
	bottom := top + m.ItemHeight
	offset := r.state.Offset()
	switch {
	case top < offset:
		r.state.SetOffset(top)
	case bottom > offset+m.ViewportHeight:
		r.state.SetOffset(math.Min(bottom-m.ViewportHeight, top))
	}
	r.refresh()
}

func (r *ListRenderer) SetOffset(offset float64) {
	r.state.SetOffset(offset)
	r.refresh()
}

func (r *ListRenderer) Offset() float64 {
	return r.state.Offset()
}

func (r *ListRenderer) State() *scroll.State {
	return r.state
}

func (r *ListRenderer) Metrics() window.Metrics {
	return r.metrics
}

func (r *ListRenderer) VisibleRange() window.Range {
	return r.visible
}

// RegisterScroll makes viewRect respond to the mouse wheel with ScrollMsg.
func (r *ListRenderer) RegisterScroll(dl *DisplayContext, viewRect layout.Box) {
	if r.ScrollMsg == nil {
		return
	}
	dl.AddInteraction(viewRect.R, r.ScrollMsg, InteractionScroll, ZBase)
}

func (r *ListRenderer) refresh() {
	if r.metrics.ItemHeight > 0 {
		r.visible = r.metrics.VisibleRangeAt(r.state.Offset())
	}
}
