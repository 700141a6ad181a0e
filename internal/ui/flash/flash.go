package flash

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"

	"github.com/flatlist/flatlist/internal/ui/common"
	"github.com/flatlist/flatlist/internal/ui/layout"
	"github.com/flatlist/flatlist/internal/ui/render"
)

const expiringMessageTimeout = 4 * time.Second

type Intent interface {
	apply(*Model) tea.Cmd
}

// Cmd wraps a flash intent into a Tea command.
func Cmd(intent Intent) tea.Cmd {
	return func() tea.Msg {
		return intent
	}
}

type expireMessageMsg struct {
	id uint64
}

type flashMessage struct {
	text  string
	error error
	id    uint64
}

type messageView struct {
	// Content might contain ANSI colour codes
	Content string
	Rect    cellbuf.Rectangle
}

var _ common.ImmediateModel = (*Model)(nil)

type Model struct {
	*common.ViewNode
	messages     []flashMessage
	successStyle lipgloss.Style
	errorStyle   lipgloss.Style
	currentId    uint64
}

func New() *Model {
	border := lipgloss.RoundedBorder()
	successStyle := lipgloss.NewStyle().
		Border(border).
		BorderForeground(common.DefaultPalette.Get("success").GetForeground()).
		PaddingLeft(1).PaddingRight(1)
	errorStyle := successStyle.
		BorderForeground(common.DefaultPalette.Get("error").GetForeground())
	return &Model{
		ViewNode:     common.NewViewNode(0, 0),
		messages:     make([]flashMessage, 0),
		successStyle: successStyle,
		errorStyle:   errorStyle,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case Intent:
		return msg.apply(m)
	case expireMessageMsg:
		for i, message := range m.messages {
			if message.id == msg.id {
				m.messages = append(m.messages[:i], m.messages[i+1:]...)
				break
			}
		}
	case common.CommandCompletedMsg:
		return AddMessage{Text: msg.Output, Err: msg.Err}.apply(m)
	}
	return nil
}

func (m *Model) views() []messageView {
	if len(m.messages) == 0 {
		return nil
	}

	y := m.Frame.Max.Y
	var boxes []messageView
	for i := len(m.messages) - 1; i >= 0; i-- {
		message := m.messages[i]
		var content string
		if message.error != nil {
			content = m.errorStyle.Render(message.error.Error())
		} else {
			content = m.successStyle.Render(message.text)
		}
		w, h := lipgloss.Size(content)
		y -= h
		if y < m.Frame.Min.Y {
			break
		}
		boxes = append(boxes, messageView{
			Content: content,
			Rect:    cellbuf.Rect(m.Frame.Max.X-w, y, w, h),
		})
	}
	return boxes
}

// ViewRect stacks the messages upwards from the bottom right corner of box,
// newest at the bottom. Clicking a message dismisses the oldest one.
func (m *Model) ViewRect(dl *render.DisplayContext, box layout.Box) {
	m.SetFrame(box.R)
	for _, view := range m.views() {
		dl.AddDraw(view.Rect, view.Content, render.ZOverlay)
		dl.AddInteraction(view.Rect, DismissOldest{}, render.InteractionClick, render.ZOverlay)
	}
}

func (m *Model) add(text string, error error) uint64 {
	text = strings.TrimSpace(text)
	if text == "" && error == nil {
		return 0
	}

	msg := flashMessage{
		id:    m.nextId(),
		text:  text,
		error: error,
	}

	m.messages = append(m.messages, msg)
	return msg.id
}

func (m *Model) Any() bool {
	return len(m.messages) > 0
}

func (m *Model) DeleteOldest() {
	m.messages = m.messages[1:]
}

func (m *Model) nextId() uint64 {
	m.currentId = m.currentId + 1
	return m.currentId
}

// AddMessage adds a flash message with optional error; non-error messages expire.
type AddMessage struct {
	Text      string
	Err       error
	NoTimeout bool
}

func (a AddMessage) apply(m *Model) tea.Cmd {
	id := m.add(a.Text, a.Err)
	if a.Err == nil && !a.NoTimeout && id != 0 {
		return tea.Tick(expiringMessageTimeout, func(t time.Time) tea.Msg {
			return expireMessageMsg{id: id}
		})
	}
	return nil
}

// DismissOldest removes the oldest flash message if present.
type DismissOldest struct{}

func (DismissOldest) apply(m *Model) tea.Cmd {
	if len(m.messages) == 0 {
		return nil
	}
	m.DeleteOldest()
	return nil
}
