package flatlist

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/cellbuf"

	"github.com/flatlist/flatlist/internal/config"
	"github.com/flatlist/flatlist/internal/scroll"
	"github.com/flatlist/flatlist/internal/ui/common"
	"github.com/flatlist/flatlist/internal/ui/common/list"
	"github.com/flatlist/flatlist/internal/ui/layout"
	"github.com/flatlist/flatlist/internal/ui/render"
	"github.com/flatlist/flatlist/internal/ui/scrollbar"
	"github.com/flatlist/flatlist/internal/window"
)

// ItemRenderer draws one item into the part of it that is on screen.
type ItemRenderer interface {
	Render(dl *render.DisplayContext, span render.Span, focused bool)
}

// IList is the collection a Model displays. Only the items inside the
// visible range are ever asked for a renderer.
type IList interface {
	Len() int
	ItemRenderer(index int) ItemRenderer
}

// Header draws the fixed line above the rows.
type Header interface {
	Render(dl *render.DisplayContext, rect cellbuf.Rectangle)
}

type (
	// ScrollMsg carries mouse wheel input, in wheel lines.
	ScrollMsg struct {
		Delta      int
		Horizontal bool
	}
	// SelectedMsg is sent when an item is clicked.
	SelectedMsg struct {
		List  string
		Index int
	}
	// DetailsMsg asks for the details of an item.
	DetailsMsg struct {
		List  string
		Index int
	}
	itemClickMsg struct {
		index int
	}
)

func (s ScrollMsg) SetDelta(delta int, horizontal bool) tea.Msg {
	s.Delta = delta
	s.Horizontal = horizontal
	return s
}

type Option func(*Model)

func WithItemHeight(height int) Option {
	return func(m *Model) {
		if height > 0 {
			m.itemHeight = height
		}
	}
}

func WithVelocity(velocity float64) Option {
	return func(m *Model) {
		m.velocity = velocity
	}
}

func WithHeader(header Header) Option {
	return func(m *Model) {
		m.header = header
	}
}

func WithName(name string) Option {
	return func(m *Model) {
		m.name = name
	}
}

var (
	_ common.ImmediateModel = (*Model)(nil)
	_ list.IScrollableList  = (*Model)(nil)
)

// Model is a list widget that renders only the rows intersecting its view,
// so its cost per frame does not depend on the number of items.
type Model struct {
	*common.ViewNode
	list             IList
	renderer         *render.ListRenderer
	scrollbar        *scrollbar.Model
	header           Header
	itemHeight       int
	velocity         float64
	name             string
	cursor           int
	ensureCursorView bool
	keyMap           config.KeyMappings[key.Binding]
}

func New(items IList, opts ...Option) *Model {
	m := &Model{
		ViewNode:   common.NewViewNode(0, 0),
		list:       items,
		scrollbar:  scrollbar.New(),
		itemHeight: config.Current.List.ItemHeight,
		velocity:   config.Current.Scroll.Velocity,
		name:       "list",
		keyMap:     config.Current.GetKeyMap(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.itemHeight <= 0 {
		m.itemHeight = 1
	}
	m.renderer = render.NewListRenderer(ScrollMsg{}, m.velocity)
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Len() int {
	if m.list == nil {
		return 0
	}
	return m.list.Len()
}

func (m *Model) ListName() string {
	return m.name
}

func (m *Model) Cursor() int {
	return m.cursor
}

// SetCursor moves the cursor and scrolls it into view on the next frame.
func (m *Model) SetCursor(index int) {
	m.cursor = min(max(index, 0), max(m.Len()-1, 0))
	m.ensureCursorView = true
	m.renderer.EnsureVisible(m.cursor)
}

func (m *Model) VisibleRange() window.Range {
	return m.renderer.VisibleRange()
}

// Offset is the scroll offset in cells.
func (m *Model) Offset() float64 {
	return m.renderer.Offset()
}

func (m *Model) SetOffset(offset float64) {
	m.renderer.SetOffset(offset)
}

// Progress is 0 at the top and 1 at the bottom of the list.
func (m *Model) Progress() float64 {
	return m.renderer.State().Progress()
}

func (m *Model) Metrics() window.Metrics {
	return m.renderer.Metrics()
}

func (m *Model) ItemHeight() int {
	return m.itemHeight
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ScrollMsg:
		if msg.Horizontal {
			return nil
		}
		m.renderer.Scroll(scroll.LineDelta(-float64(msg.Delta)))
	case scrollbar.DragMsg:
		m.renderer.Scroll(scroll.PixelDelta(-msg.Delta))
	case scrollbar.PageMsg:
		page := m.renderer.Metrics().ViewportHeight
		m.renderer.Scroll(scroll.PixelDelta(-float64(msg.Direction) * page))
	case itemClickMsg:
		m.cursor = msg.index
		name, index := m.name, msg.index
		return func() tea.Msg {
			return SelectedMsg{List: name, Index: index}
		}
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m.scrollbar.Update(msg)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	var result list.ScrollResult
	switch {
	case key.Matches(msg, m.keyMap.Up):
		result = list.Scroll(m, -1, false)
	case key.Matches(msg, m.keyMap.Down):
		result = list.Scroll(m, 1, false)
	case key.Matches(msg, m.keyMap.PageUp):
		result = list.Scroll(m, -1, true)
	case key.Matches(msg, m.keyMap.PageDown):
		result = list.Scroll(m, 1, true)
	case key.Matches(msg, m.keyMap.Top):
		result = list.Jump(m, false)
	case key.Matches(msg, m.keyMap.Bottom):
		result = list.Jump(m, true)
	case key.Matches(msg, m.keyMap.Details):
		if m.Len() == 0 {
			return nil
		}
		name, index := m.name, m.cursor
		return func() tea.Msg {
			return DetailsMsg{List: name, Index: index}
		}
	default:
		return nil
	}

	m.SetCursor(result.NewCursor)
	var cmds []tea.Cmd
	if result.NavigateMessage != nil {
		nav := *result.NavigateMessage
		cmds = append(cmds, func() tea.Msg { return nav })
	}
	cmds = append(cmds, common.SelectionChanged(m.name, m.cursor))
	return tea.Batch(cmds...)
}

func (m *Model) ViewRect(dl *render.DisplayContext, box layout.Box) {
	m.SetFrame(box.R)
	if box.Empty() {
		return
	}

	rest := box
	if m.header != nil {
		var headerBox layout.Box
		headerBox, rest = box.CutTop(1)
		headerBox, _ = headerBox.CutRight(scrollbar.Width)
		m.header.Render(dl, headerBox.R)
	}
	rows, bar := rest.CutRight(scrollbar.Width)

	count := m.Len()
	m.cursor = min(max(m.cursor, 0), max(count-1, 0))
	m.renderer.Resize(count, m.itemHeight, rows.Height())
	if m.ensureCursorView {
		m.renderer.EnsureVisible(m.cursor)
		m.ensureCursorView = false
	}

	m.renderer.Render(dl, rows, count, m.itemHeight, m.renderItem, m.clickMsg)
	m.renderer.RegisterScroll(dl, rest)

	metrics := m.renderer.Metrics()
	m.scrollbar.SetContent(metrics.TotalHeight(), metrics.ViewportHeight, m.renderer.Offset())
	m.scrollbar.ViewRect(dl, bar)
}

func (m *Model) renderItem(dl *render.DisplayContext, span render.Span) {
	m.list.ItemRenderer(span.Index).Render(dl, span, span.Index == m.cursor)
}

func (m *Model) clickMsg(index int) tea.Msg {
	return itemClickMsg{index: index}
}
