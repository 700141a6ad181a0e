package filter

import (
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/flatlist/flatlist/internal/config"
	"github.com/flatlist/flatlist/internal/ui/common"
	"github.com/flatlist/flatlist/internal/ui/layout"
	"github.com/flatlist/flatlist/internal/ui/render"
)

const searchDelay = 80 * time.Millisecond

// Source is the text the filter matches against, one string per item.
type Source = fuzzy.Source

type searchMsg struct {
	query string
}

var _ common.ImmediateModel = (*Model)(nil)

// Model narrows a Source down to the items fuzzy matching a query and maps
// the positions of the narrowed list back to source indices.
type Model struct {
	*common.ViewNode
	source    Source
	input     textinput.Model
	editing   bool
	query     string
	matches   fuzzy.Matches
	indices   []int
	debouncer *common.Debouncer
	keyMap    config.KeyMappings[key.Binding]
	styles    styles
}

type styles struct {
	prompt  lipgloss.Style
	text    lipgloss.Style
	dimmed  lipgloss.Style
	matched lipgloss.Style
}

func New(source Source) *Model {
	palette := common.DefaultPalette
	s := styles{
		prompt:  palette.Get("header"),
		text:    palette.Get("text"),
		dimmed:  palette.Get("dimmed"),
		matched: palette.Get("matched"),
	}

	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "filter"
	ti.PromptStyle = s.prompt
	ti.TextStyle = s.text
	ti.PlaceholderStyle = s.dimmed

	return &Model{
		ViewNode:  common.NewViewNode(0, 1),
		source:    source,
		input:     ti,
		debouncer: common.NewDebouncer("filter", searchDelay),
		keyMap:    config.Current.GetKeyMap(),
		styles:    s,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) IsEditing() bool {
	return m.editing
}

// Active reports whether the prompt takes a line on screen.
func (m *Model) Active() bool {
	return m.editing || m.query != ""
}

func (m *Model) Query() string {
	return m.query
}

// Len returns the number of items that pass the filter.
func (m *Model) Len() int {
	if m.query == "" {
		return m.source.Len()
	}
	return len(m.indices)
}

// Map converts a position in the filtered list to a source index. Without
// a query the mapping is the identity.
func (m *Model) Map(i int) int {
	if m.query == "" {
		return i
	}
	if i < 0 || i >= len(m.indices) {
		return -1
	}
	return m.indices[i]
}

// Indices returns the matching source indices in source order, or nil when
// no query is set.
func (m *Model) Indices() []int {
	return m.indices
}

// MatchedIndexes returns the byte offsets of the matched characters of the
// item at filtered position i.
func (m *Model) MatchedIndexes(i int) []int {
	if m.query == "" || i < 0 || i >= len(m.matches) {
		return nil
	}
	return m.matches[i].MatchedIndexes
}

// SetQuery filters the source immediately.
func (m *Model) SetQuery(query string) {
	m.query = strings.TrimSpace(query)
	m.Refresh()
}

// Refresh runs the current query again, for when the source has changed.
func (m *Model) Refresh() {
	if m.query == "" {
		m.matches = nil
		m.indices = nil
		return
	}
	m.matches = fuzzy.FindFromNoSort(m.query, m.source)
	m.indices = make([]int, len(m.matches))
	for i, match := range m.matches {
		m.indices[i] = match.Index
	}
	log.Printf("filter %q matched %d of %d", m.query, len(m.indices), m.source.Len())
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if inner, ok := m.debouncer.Unwrap(msg); ok {
		msg = inner
	} else if m.debouncer.Owns(msg) {
		return nil
	}

	switch msg := msg.(type) {
	case searchMsg:
		if msg.query == m.query {
			return nil
		}
		m.SetQuery(msg.query)
		return m.changed()
	case tea.KeyMsg:
		if !m.editing {
			if key.Matches(msg, m.keyMap.Filter) {
				m.editing = true
				m.input.SetValue(m.query)
				m.input.CursorEnd()
				return m.input.Focus()
			}
			return nil
		}
		return m.handleEditingKey(msg)
	}
	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) handleEditingKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keyMap.Apply):
		m.editing = false
		m.input.Blur()
		query := m.input.Value()
		if strings.TrimSpace(query) != m.query {
			m.SetQuery(query)
			return tea.Batch(m.changed(), common.CloseApplied)
		}
		return common.CloseApplied
	case key.Matches(msg, m.keyMap.Cancel):
		m.editing = false
		m.input.Blur()
		m.input.Reset()
		if m.query == "" {
			return common.Close
		}
		m.SetQuery("")
		return tea.Batch(m.changed(), common.Close)
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		return tea.Batch(cmd, m.debouncer.Trigger(searchMsg{query: strings.TrimSpace(after)}))
	}
	return cmd
}

func (m *Model) changed() tea.Cmd {
	query, indices := m.query, m.indices
	return func() tea.Msg {
		return common.FilterChangedMsg{Query: query, Indices: indices}
	}
}

func (m *Model) ViewRect(dl *render.DisplayContext, box layout.Box) {
	m.SetFrame(box.R)
	if !m.Active() || box.Empty() {
		return
	}
	m.input.Width = max(box.R.Dx()-lipgloss.Width(m.input.Prompt)-1, 0)

	line, _ := box.CutTop(1)
	view := m.input.View()
	if !m.editing {
		view = m.styles.prompt.Render(m.input.Prompt) + m.styles.text.Render(m.query)
	}
	dl.AddDraw(line.R, view, render.ZInput)
}

// HighlightMatched styles the characters of text at the matched byte
// offsets with matched and everything else with normal.
func HighlightMatched(text string, matched []int, normal, highlight lipgloss.Style) string {
	if len(matched) == 0 {
		return normal.Render(text)
	}
	isMatched := make(map[int]bool, len(matched))
	for _, i := range matched {
		isMatched[i] = true
	}

	var b strings.Builder
	var run strings.Builder
	runMatched := false
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runMatched {
			b.WriteString(highlight.Render(run.String()))
		} else {
			b.WriteString(normal.Render(run.String()))
		}
		run.Reset()
	}
	for i, r := range text {
		if isMatched[i] != runMatched {
			flush()
			runMatched = isMatched[i]
		}
		run.WriteRune(r)
	}
	flush()
	return b.String()
}
