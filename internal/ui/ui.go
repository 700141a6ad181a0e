package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/cellbuf"
	"github.com/pkg/errors"

	"github.com/flatlist/flatlist/internal/config"
	"github.com/flatlist/flatlist/internal/fake"
	"github.com/flatlist/flatlist/internal/ui/common"
	"github.com/flatlist/flatlist/internal/ui/filter"
	"github.com/flatlist/flatlist/internal/ui/flash"
	"github.com/flatlist/flatlist/internal/ui/flatlist"
	"github.com/flatlist/flatlist/internal/ui/layout"
	"github.com/flatlist/flatlist/internal/ui/orders"
	"github.com/flatlist/flatlist/internal/ui/render"
	"github.com/flatlist/flatlist/internal/ui/status"
)

type Model struct {
	orders         fake.Orders
	rows           *orders.List
	list           *flatlist.Model
	filter         *filter.Model
	status         *status.Model
	flash          *flash.Model
	keyMap         config.KeyMappings[key.Binding]
	displayContext *render.DisplayContext
	copyText       func(string) error
	width          int
	height         int
}

func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle(fmt.Sprintf("flatlist - %d orders", len(m.orders)))
}

// ShortHelp lists the bindings shown in the status line.
func (m *Model) ShortHelp() []key.Binding {
	if m.filter.IsEditing() {
		return []key.Binding{m.keyMap.Apply, m.keyMap.Cancel}
	}
	return []key.Binding{
		m.keyMap.Down,
		m.keyMap.Up,
		m.keyMap.PageDown,
		m.keyMap.Bottom,
		m.keyMap.Filter,
		m.keyMap.Details,
		m.keyMap.Copy,
		m.keyMap.Quit,
	}
}

func (m *Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{m.ShortHelp()}
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case flatlist.DetailsMsg:
		order, ok := m.rows.Order(msg.Index)
		if !ok {
			return nil
		}
		log.Println("details:", order)
		return flash.Cmd(flash.AddMessage{Text: order.String()})
	case flatlist.SelectedMsg:
		if order, ok := m.rows.Order(msg.Index); ok {
			log.Println("selected:", order)
		}
		return nil
	case common.FilterChangedMsg:
		m.list.SetOffset(0)
		m.list.SetCursor(0)
		return nil
	case common.CloseViewMsg, common.SelectionChangedMsg:
		return nil
	case common.CommandCompletedMsg, flash.Intent:
		return m.flash.Update(msg)
	}

	return tea.Batch(
		m.filter.Update(msg),
		m.flash.Update(msg),
		m.list.Update(msg),
	)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		// motion and release only matter to a drag in progress
		return m.list.Update(msg)
	}
	if m.displayContext == nil {
		return nil
	}
	if interactionMsg, handled := m.displayContext.ProcessMouseEvent(msg); handled && interactionMsg != nil {
		return func() tea.Msg { return interactionMsg }
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.filter.IsEditing() {
		return m.filter.Update(msg)
	}
	switch {
	case key.Matches(msg, m.keyMap.Quit):
		return tea.Quit
	case key.Matches(msg, m.keyMap.Cancel) && m.flash.Any():
		return m.flash.Update(flash.DismissOldest{})
	case key.Matches(msg, m.keyMap.Filter):
		return m.filter.Update(msg)
	case key.Matches(msg, m.keyMap.Copy):
		return m.copySelected()
	}
	return m.list.Update(msg)
}

func (m *Model) copySelected() tea.Cmd {
	order, ok := m.rows.Order(m.list.Cursor())
	if !ok {
		return nil
	}
	text := order.String()
	if err := m.copyText(text); err != nil {
		log.Println("copy failed:", err)
		return common.CommandCompleted("", errors.Wrap(err, "copy failed"))
	}
	return common.CommandCompleted("copied "+text, nil)
}

func (m *Model) updateStatus() {
	mode := orders.Name
	if m.filter.IsEditing() {
		mode = "filter"
	}
	m.status.SetMode(mode)
	m.status.SetHelp(m)
	m.status.SetPosition(status.Position{
		Cursor: m.list.Cursor(),
		Count:  m.list.Len(),
		Range:  m.list.VisibleRange(),
		Offset: m.list.Offset(),
	})
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	m.displayContext = render.NewDisplayContext()
	box := layout.NewBox(cellbuf.Rect(0, 0, m.width, m.height))
	content, statusBox := box.CutBottom(1)

	if m.filter.Active() {
		var filterBox layout.Box
		filterBox, content = content.CutTop(1)
		m.filter.ViewRect(m.displayContext, filterBox)
	}
	m.list.ViewRect(m.displayContext, content)

	// status reads the range the list has just laid out
	m.updateStatus()
	m.status.ViewRect(m.displayContext, statusBox)
	m.flash.ViewRect(m.displayContext, content)

	screenBuf := cellbuf.NewBuffer(m.width, m.height)
	m.displayContext.Render(screenBuf)
	return strings.ReplaceAll(cellbuf.Render(screenBuf), "\r", "")
}

var _ tea.Model = (*wrapper)(nil)

type (
	frameTickMsg struct{}
	wrapper      struct {
		ui                 *Model
		scheduledNextFrame bool
		render             bool
		cachedFrame        string
	}
)

func (w *wrapper) Init() tea.Cmd {
	w.render = true
	return w.ui.Init()
}

// Update coalesces redraws into at most one frame every 8ms.
func (w *wrapper) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(frameTickMsg); ok {
		w.render = true
		w.scheduledNextFrame = false
		return w, nil
	}
	cmd := w.ui.Update(msg)
	if !w.scheduledNextFrame {
		w.scheduledNextFrame = true
		return w, tea.Batch(cmd, tea.Tick(time.Millisecond*8, func(t time.Time) tea.Msg {
			return frameTickMsg{}
		}))
	}
	return w, cmd
}

func (w *wrapper) View() string {
	if w.render {
		w.cachedFrame = w.ui.View()
		w.render = false
	}
	return w.cachedFrame
}

func NewUI(data fake.Orders) *Model {
	f := filter.New(data)
	rows := orders.NewList(data, f)

	opts := []flatlist.Option{
		flatlist.WithName(orders.Name),
		flatlist.WithItemHeight(config.Current.List.ItemHeight),
		flatlist.WithVelocity(config.Current.Scroll.Velocity),
	}
	if config.Current.List.Header {
		opts = append(opts, flatlist.WithHeader(orders.NewHeader()))
	}

	return &Model{
		orders:   data,
		rows:     rows,
		list:     flatlist.New(rows, opts...),
		filter:   f,
		status:   status.New(),
		flash:    flash.New(),
		keyMap:   config.Current.GetKeyMap(),
		copyText: clipboard.WriteAll,
	}
}

func New(data fake.Orders) tea.Model {
	return &wrapper{ui: NewUI(data)}
}
