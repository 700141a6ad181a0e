package render

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/cellbuf"

	"github.com/flatlist/flatlist/internal/config"
)

// InteractionType defines what kinds of input an interactive region responds to.
// Multiple types can be combined using bitwise OR.
type InteractionType int

const (
	InteractionClick InteractionType = 1 << iota
	InteractionScroll
	InteractionDrag
)

// InteractionOp represents an interactive region that responds to input.
type InteractionOp struct {
	Rect cellbuf.Rectangle // absolute coordinates
	Msg  tea.Msg
	Type InteractionType
	Z    int
}

// ScrollDeltaCarrier is implemented by messages that want the wheel delta.
// Delta is in wheel lines, positive when the wheel moves down or right.
type ScrollDeltaCarrier interface {
	SetDelta(delta int, horizontal bool) tea.Msg
}

// DragStartCarrier is implemented by messages that want the press position
// of a drag.
type DragStartCarrier interface {
	SetDragStart(x, y int) tea.Msg
}

func contains(r cellbuf.Rectangle, x, y int) bool {
	return x >= r.Min.X && x < r.Max.X && y >= r.Min.Y && y < r.Max.Y
}

func wheelLines() int {
	if n := config.Current.Scroll.WheelLines; n > 0 {
		return n
	}
	return 3
}

func processMouseEvent(interactions []interactionOp, msg tea.MouseMsg) (tea.Msg, bool) {
	if msg.Action != tea.MouseActionPress {
		return nil, false
	}

	switch msg.Button {
	case tea.MouseButtonLeft:
		// draggable regions win over clickable ones under the same point
		for _, interaction := range interactions {
			if interaction.Type&InteractionDrag == 0 || !contains(interaction.Rect, msg.X, msg.Y) {
				continue
			}
			if carrier, ok := interaction.Msg.(DragStartCarrier); ok {
				return carrier.SetDragStart(msg.X, msg.Y), true
			}
			return interaction.Msg, true
		}
		for _, interaction := range interactions {
			if interaction.Type&InteractionClick == 0 || !contains(interaction.Rect, msg.X, msg.Y) {
				continue
			}
			return interaction.Msg, true
		}

	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown, tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		delta := -wheelLines()
		if msg.Button == tea.MouseButtonWheelDown || msg.Button == tea.MouseButtonWheelRight {
			delta = -delta
		}
		horizontal := msg.Button == tea.MouseButtonWheelLeft || msg.Button == tea.MouseButtonWheelRight
		for _, interaction := range interactions {
			if interaction.Type&InteractionScroll == 0 || !contains(interaction.Rect, msg.X, msg.Y) {
				continue
			}
			if carrier, ok := interaction.Msg.(ScrollDeltaCarrier); ok {
				return carrier.SetDelta(delta, horizontal), true
			}
			if horizontal {
				return nil, true
			}
			return interaction.Msg, true
		}
	}
	return nil, false
}
