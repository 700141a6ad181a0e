package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flatlist/flatlist/internal/fake"
	"github.com/flatlist/flatlist/internal/ui/flash"
	"github.com/flatlist/flatlist/internal/ui/flatlist"
	"github.com/flatlist/flatlist/internal/ui/orders"
	"github.com/flatlist/flatlist/test"
)

func newTestUI(t *testing.T, data fake.Orders, width, height int) *Model {
	t.Helper()
	m := NewUI(data)
	m.copyText = func(string) error {
		t.Fatal("clipboard must not be touched")
		return nil
	}
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

func screen(m *Model) []string {
	return strings.Split(test.Stripped(m.View()), "\n")
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestView_Layout(t *testing.T) {
	m := newTestUI(t, fake.Generate(1000, 1), 80, 10)

	out := screen(m)
	require.Len(t, out, 10)
	assert.Contains(t, out[0], "Customer")
	assert.True(t, strings.HasPrefix(out[1], "0 "), out[1])
	assert.Contains(t, out[9], orders.Name)
	assert.Contains(t, out[9], "1/1000")
	assert.Contains(t, out[9], "rows [0, 8)")
}

func TestView_EmptyBeforeFirstResize(t *testing.T) {
	m := NewUI(fake.Generate(10, 1))
	assert.Empty(t, m.View())
}

func TestUpdate_KeysMoveCursor(t *testing.T) {
	m := newTestUI(t, fake.Generate(1000, 1), 80, 10)
	m.View()

	test.SimulateModel(m, tea.Sequence(test.Press(tea.KeyDown), test.Press(tea.KeyDown)))
	assert.Equal(t, 2, m.list.Cursor())
	assert.Contains(t, screen(m)[9], "3/1000")

	test.SimulateModel(m, test.Press(tea.KeyEnd))
	out := screen(m)
	assert.Equal(t, 999, m.list.Cursor())
	assert.Contains(t, out[9], "rows [992, 1000)")
	assert.True(t, strings.HasPrefix(out[8], "999 "), out[8])
}

func TestUpdate_WheelScrollsThroughDisplayContext(t *testing.T) {
	m := newTestUI(t, fake.Generate(1000, 1), 80, 10)
	m.View()

	test.SimulateModel(m, m.Update(test.Wheel(10, 4, tea.MouseButtonWheelDown)))
	assert.Equal(t, 3.0, m.list.Offset())
	assert.Equal(t, 0, m.list.Cursor(), "scrolling leaves the cursor alone")

	out := screen(m)
	assert.True(t, strings.HasPrefix(out[1], "3 "), out[1])

	m.View()
	test.SimulateModel(m, m.Update(test.Wheel(10, 4, tea.MouseButtonWheelUp)))
	m.View()
	test.SimulateModel(m, m.Update(test.Wheel(10, 4, tea.MouseButtonWheelUp)))
	assert.Zero(t, m.list.Offset())
}

func TestUpdate_ClickSelectsRow(t *testing.T) {
	m := newTestUI(t, fake.Generate(1000, 1), 80, 10)
	m.View()

	var selected []flatlist.SelectedMsg
	test.SimulateModel(m, m.Update(test.Click(10, 3)), func(msg tea.Msg) {
		if s, ok := msg.(flatlist.SelectedMsg); ok {
			selected = append(selected, s)
		}
	})
	assert.Equal(t, 2, m.list.Cursor())
	assert.Equal(t, []flatlist.SelectedMsg{{List: orders.Name, Index: 2}}, selected)
}

func TestUpdate_ScrollbarDrag(t *testing.T) {
	m := newTestUI(t, fake.Generate(1000, 1), 80, 12)
	m.View()

	test.SimulateModel(m, m.Update(test.Click(79, 1)))
	test.SimulateModel(m, m.Update(test.Motion(79, 5)))
	test.SimulateModel(m, m.Update(test.Release(79, 5)))

	assert.Greater(t, m.list.Offset(), 0.0)
	assert.LessOrEqual(t, m.list.Offset(), m.list.Metrics().MaxOffset())

	offset := m.list.Offset()
	test.SimulateModel(m, m.Update(test.Motion(79, 8)))
	assert.Equal(t, offset, m.list.Offset(), "motion after release does nothing")
}

func TestUpdate_FilterNarrowsList(t *testing.T) {
	data := fake.Orders{
		{N: 0, OrderID: 1001, Customer: "Ada Lovelace"},
		{N: 1, OrderID: 1002, Customer: "Grace Hopper"},
		{N: 2, OrderID: 1003, Customer: "Alan Turing"},
	}
	m := newTestUI(t, data, 80, 10)
	m.View()
	test.SimulateModel(m, test.Press(tea.KeyDown))
	require.Equal(t, 1, m.list.Cursor())

	test.SimulateModel(m, tea.Sequence(test.Type("/"), test.Type("grace"), test.Press(tea.KeyEnter)))

	assert.False(t, m.filter.IsEditing())
	assert.Equal(t, 1, m.list.Len())
	assert.Equal(t, 0, m.list.Cursor())
	order, ok := m.rows.Order(0)
	require.True(t, ok)
	assert.Equal(t, "Grace Hopper", order.Customer)

	out := test.Stripped(m.View())
	assert.Contains(t, out, "grace")
	assert.NotContains(t, out, "Alan Turing")

	test.SimulateModel(m, tea.Sequence(test.Type("/"), test.Press(tea.KeyEsc)))
	assert.Equal(t, 3, m.list.Len())
}

func TestUpdate_Details(t *testing.T) {
	data := fake.Generate(10, 1)
	m := newTestUI(t, data, 100, 10)

	cmd := m.Update(flatlist.DetailsMsg{List: orders.Name, Index: 1})
	require.NotNil(t, cmd)
	assert.Equal(t, flash.AddMessage{Text: data[1].String()}, cmd())

	assert.Nil(t, m.Update(flatlist.DetailsMsg{List: orders.Name, Index: 99}))
}

func TestUpdate_Copy(t *testing.T) {
	data := fake.Generate(10, 1)
	m := newTestUI(t, data, 100, 12)

	var copied string
	m.copyText = func(s string) error {
		copied = s
		return nil
	}
	msg := m.Update(runes("y"))()
	m.Update(msg)
	assert.Equal(t, data[0].String(), copied)
	assert.Contains(t, test.Stripped(m.View()), "copied "+data[0].String())

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.flash.Any())

	m.copyText = func(string) error {
		return errors.New("no clipboard")
	}
	m.Update(m.Update(runes("y"))())
	assert.Contains(t, test.Stripped(m.View()), "copy failed: no clipboard")
}

func TestUpdate_Quit(t *testing.T) {
	m := newTestUI(t, fake.Generate(10, 1), 80, 10)
	cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestProgram_RendersAndQuits(t *testing.T) {
	tm := teatest.NewTestModel(t, New(fake.Generate(500, 7)), teatest.WithInitialTermSize(80, 20))

	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("Customer")) && bytes.Contains(bts, []byte("1/500"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyPgDown})
	tm.Send(runes("q"))

	final := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second))
	w, ok := final.(*wrapper)
	require.True(t, ok)
	assert.Equal(t, 80, w.ui.width)
	assert.Greater(t, w.ui.list.Cursor(), 0)
}
