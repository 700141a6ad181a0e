package scrollbar

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/cellbuf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flatlist/flatlist/internal/ui/layout"
	"github.com/flatlist/flatlist/internal/ui/render"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name                   string
		total, visible, offset float64
		height                 int
		want                   Thumb
	}{
		{"content fits", 50, 100, 0, 10, Thumb{}},
		{"no height", 1000, 10, 0, 0, Thumb{}},
		{"half visible at top", 100, 50, 0, 10, Thumb{Offset: 0, Height: 5, Visible: true}},
		{"half visible at bottom", 100, 50, 50, 10, Thumb{Offset: 5, Height: 5, Visible: true}},
		{"tiny ratio keeps one cell", 100_000, 10, 0, 10, Thumb{Offset: 0, Height: 1, Visible: true}},
		{"tiny ratio at the end", 100_000, 10, 99_990, 10, Thumb{Offset: 9, Height: 1, Visible: true}},
		{"offset past the end is clamped", 100, 50, 500, 10, Thumb{Offset: 5, Height: 5, Visible: true}},
		{"negative offset is clamped", 100, 50, -20, 10, Thumb{Offset: 0, Height: 5, Visible: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compute(tt.total, tt.visible, tt.offset, tt.height))
		})
	}
}

func renderScrollbar(m *Model, height int) (*render.DisplayContext, string) {
	dl := render.NewDisplayContext()
	m.ViewRect(dl, layout.NewBox(cellbuf.Rect(0, 0, 1, height)))
	return dl, strings.ReplaceAll(dl.RenderToString(1, height), "\r", "")
}

func TestViewRect_DrawsTrackAndThumb(t *testing.T) {
	m := New()
	m.SetContent(100, 50, 50)
	_, out := renderScrollbar(m, 4)
	assert.Equal(t, "│\n│\n┃\n┃", out)

	m.SetContent(10, 50, 0)
	dl, _ := renderScrollbar(m, 4)
	assert.Zero(t, dl.Len(), "nothing is drawn when content fits")
}

func TestDrag_EmitsContentPixels(t *testing.T) {
	m := New()
	m.SetContent(1000, 100, 0)
	dl, _ := renderScrollbar(m, 10)

	msg, ok := dl.ProcessMouseEvent(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.True(t, ok)
	assert.Nil(t, m.Update(msg))
	assert.True(t, m.IsDragging())

	cmd := m.Update(tea.MouseMsg{X: 0, Y: 2, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	require.NotNil(t, cmd)
	assert.Equal(t, DragMsg{Delta: 200}, cmd())

	cmd = m.Update(tea.MouseMsg{X: 0, Y: 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	require.NotNil(t, cmd)
	assert.Equal(t, DragMsg{Delta: -100}, cmd())

	m.Update(tea.MouseMsg{X: 0, Y: 1, Action: tea.MouseActionRelease})
	assert.False(t, m.IsDragging())
	assert.Nil(t, m.Update(tea.MouseMsg{X: 0, Y: 5, Action: tea.MouseActionMotion}))
}

func TestDrag_FullTrackCoversScrollableExtent(t *testing.T) {
	m := New()
	m.SetContent(1000, 10, 0)
	dl, _ := renderScrollbar(m, 10)
	require.Equal(t, Thumb{Offset: 0, Height: 1, Visible: true}, m.Thumb())

	msg, ok := dl.ProcessMouseEvent(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.True(t, ok)
	m.Update(msg)

	cmd := m.Update(tea.MouseMsg{X: 0, Y: 9, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	require.NotNil(t, cmd)
	assert.Equal(t, DragMsg{Delta: 990}, cmd())
}

func TestDrag_ThumbFillingTrackDoesNothing(t *testing.T) {
	m := New()
	m.SetContent(11, 10, 0)
	dl, _ := renderScrollbar(m, 3)
	require.Equal(t, 3, m.Thumb().Height)

	msg, ok := dl.ProcessMouseEvent(tea.MouseMsg{X: 0, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.True(t, ok)
	m.Update(msg)
	assert.Nil(t, m.Update(tea.MouseMsg{X: 0, Y: 2, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}))
}

func TestViewRect_ReversesThumbWhileDragging(t *testing.T) {
	m := New()
	m.SetContent(100, 50, 0)
	reversed := func(y int) bool {
		dl, _ := renderScrollbar(m, 4)
		buf := cellbuf.NewBuffer(1, 4)
		dl.Render(buf)
		return buf.Cell(0, y).Style.Attrs.Contains(cellbuf.ReverseAttr)
	}
	assert.False(t, reversed(0))

	m.Update(thumbPressMsg{x: 0, y: 0})
	require.True(t, m.IsDragging())
	assert.True(t, reversed(0))
	assert.False(t, reversed(3), "only the thumb")

	m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease})
	assert.False(t, reversed(0))
}

func TestTrackPress_Pages(t *testing.T) {
	m := New()
	m.SetContent(1000, 100, 500)
	dl, _ := renderScrollbar(m, 10)
	require.Equal(t, Thumb{Offset: 5, Height: 1, Visible: true}, m.Thumb())

	msg, ok := dl.ProcessMouseEvent(tea.MouseMsg{X: 0, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.True(t, ok)
	cmd := m.Update(msg)
	require.NotNil(t, cmd)
	assert.Equal(t, PageMsg{Direction: -1}, cmd())

	msg, _ = dl.ProcessMouseEvent(tea.MouseMsg{X: 0, Y: 8, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, PageMsg{Direction: 1}, m.Update(msg)())
	assert.False(t, m.IsDragging())
}
