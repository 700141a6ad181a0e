package status

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flatlist/flatlist/internal/ui/common"
	"github.com/flatlist/flatlist/internal/ui/layout"
	"github.com/flatlist/flatlist/internal/ui/render"
	"github.com/flatlist/flatlist/internal/window"
)

var _ common.ImmediateModel = (*Model)(nil)

// Position describes where the list is scrolled to.
type Position struct {
	Cursor int
	Count  int
	Range  window.Range
	Offset float64
}

type Model struct {
	*common.ViewNode
	help     help.Model
	keyMap   help.KeyMap
	mode     string
	position Position
	styles   styles
}

type styles struct {
	title  lipgloss.Style
	text   lipgloss.Style
	dimmed lipgloss.Style
}

func New() *Model {
	base := common.DefaultPalette.Get("status")
	s := styles{
		title:  base.Bold(true).Reverse(true),
		text:   base,
		dimmed: base.Foreground(common.DefaultPalette.Get("dimmed").GetForeground()),
	}

	h := help.New()
	h.ShortSeparator = " • "
	h.Styles.ShortKey = s.text.Bold(true)
	h.Styles.ShortDesc = s.dimmed
	h.Styles.ShortSeparator = s.dimmed
	h.Styles.Ellipsis = s.dimmed

	return &Model{
		ViewNode: common.NewViewNode(0, 1),
		help:     h,
		styles:   s,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(tea.Msg) tea.Cmd {
	return nil
}

func (m *Model) SetHelp(keyMap help.KeyMap) {
	m.keyMap = keyMap
}

func (m *Model) Help() help.KeyMap {
	return m.keyMap
}

func (m *Model) SetMode(mode string) {
	m.mode = mode
}

func (m *Model) Mode() string {
	return m.mode
}

func (m *Model) SetPosition(p Position) {
	m.position = p
}

func (m *Model) positionText() string {
	p := m.position
	if p.Count == 0 {
		return "no items"
	}
	return fmt.Sprintf("%d/%d  rows %s  offset %.0f", p.Cursor+1, p.Count, p.Range, p.Offset)
}

func (m *Model) ViewRect(dl *render.DisplayContext, box layout.Box) {
	m.SetFrame(box.R)
	if box.Empty() {
		return
	}
	line, _ := box.CutTop(1)
	width := line.Width()

	mode := m.styles.title.Render(" " + m.mode + " ")
	position := m.styles.text.Render(" " + m.positionText() + " ")
	content := mode + position
	if m.keyMap != nil {
		m.help.Width = max(width-lipgloss.Width(content)-1, 0)
		if m.help.Width > 0 {
			content += m.styles.text.Render(" ") + m.help.View(m.keyMap)
		}
	}
	dl.AddFill(line.R, ' ', m.styles.text, render.ZBase)
	dl.AddDraw(line.R, content, render.ZBase)
}
