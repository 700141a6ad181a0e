package scrollbar

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"

	"github.com/flatlist/flatlist/internal/ui/common"
	"github.com/flatlist/flatlist/internal/ui/layout"
	"github.com/flatlist/flatlist/internal/ui/render"
)

const (
	trackRune = '│'
	thumbRune = '┃'
)

// Width is the number of columns the scrollbar takes.
const Width = 1

// Thumb is the position and size of the slider in cells.
type Thumb struct {
	Offset  int
	Height  int
	Visible bool
}

// Compute sizes the thumb proportionally to visible/total and places it
// according to how far offset is into the scrollable extent. The thumb is
// hidden when everything fits.
func Compute(total, visible, offset float64, height int) Thumb {
	if height <= 0 || !(total > visible) || !(total > 0) {
		return Thumb{}
	}
	thumbHeight := int(math.Round(float64(height) * visible / total))
	thumbHeight = min(max(thumbHeight, 1), height)

	progress := offset / (total - visible)
	if math.IsNaN(progress) {
		progress = 0
	}
	progress = math.Min(math.Max(progress, 0), 1)
	return Thumb{
		Offset:  int(math.Round(progress * float64(height-thumbHeight))),
		Height:  thumbHeight,
		Visible: true,
	}
}

// DragMsg asks the owner to move the content by Delta pixels. A positive
// Delta moves towards the end of the content.
type DragMsg struct {
	Delta float64
}

// PageMsg asks the owner to scroll one page towards Direction (-1 or 1).
type PageMsg struct {
	Direction int
}

type thumbPressMsg struct {
	x, y int
}

func (m thumbPressMsg) SetDragStart(x, y int) tea.Msg {
	m.x, m.y = x, y
	return m
}

type trackPressMsg struct {
	y int
}

func (m trackPressMsg) SetDragStart(_, y int) tea.Msg {
	m.y = y
	return m
}

var _ common.ImmediateModel = (*Model)(nil)

type Model struct {
	*common.ViewNode
	common.DragAware
	total      float64
	visible    float64
	offset     float64
	thumb      Thumb
	trackStyle lipgloss.Style
	thumbStyle lipgloss.Style
}

func New() *Model {
	return &Model{
		ViewNode:   common.NewViewNode(Width, 0),
		trackStyle: common.DefaultPalette.Get("scrollbar"),
		thumbStyle: common.DefaultPalette.Get("scrollbar thumb"),
	}
}

// SetContent sets the content geometry the next frame is drawn for.
func (m *Model) SetContent(total, visible, offset float64) {
	m.total, m.visible, m.offset = total, visible, offset
}

func (m *Model) Thumb() Thumb {
	return m.thumb
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case thumbPressMsg:
		m.BeginDrag(msg.x, msg.y)
	case trackPressMsg:
		direction := 1
		if msg.y-m.Frame.Min.Y < m.thumb.Offset {
			direction = -1
		}
		return func() tea.Msg { return PageMsg{Direction: direction} }
	case tea.MouseMsg:
		if !m.IsDragging() {
			return nil
		}
		switch msg.Action {
		case tea.MouseActionMotion:
			_, dy := m.DragTo(msg.X, msg.Y)
			travel := m.Height - m.thumb.Height
			if dy == 0 || travel <= 0 {
				return nil
			}
			// the thumb's free travel maps onto the scrollable extent
			delta := float64(dy) * (m.total - m.visible) / float64(travel)
			return func() tea.Msg { return DragMsg{Delta: delta} }
		case tea.MouseActionRelease:
			m.EndDrag()
		}
	}
	return nil
}

func (m *Model) ViewRect(dl *render.DisplayContext, box layout.Box) {
	m.SetFrame(box.R)
	m.thumb = Compute(m.total, m.visible, m.offset, box.R.Dy())
	if !m.thumb.Visible || box.Empty() {
		return
	}

	dl.AddFill(box.R, trackRune, m.trackStyle, render.ZScrollbar)
	dl.AddInteraction(box.R, trackPressMsg{}, render.InteractionDrag, render.ZScrollbar)

	thumbRect := cellbuf.Rect(box.R.Min.X, box.R.Min.Y+m.thumb.Offset, box.R.Dx(), m.thumb.Height)
	dl.AddFill(thumbRect, thumbRune, m.thumbStyle, render.ZScrollbar+1)
	dl.AddInteraction(thumbRect, thumbPressMsg{}, render.InteractionDrag, render.ZScrollbar+1)
	if m.IsDragging() {
		dl.AddReverse(thumbRect, render.ZScrollbar+1)
	}
}
