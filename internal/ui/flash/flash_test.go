package flash

import (
	"errors"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
	"github.com/stretchr/testify/assert"

	"github.com/flatlist/flatlist/internal/ui/common"
	"github.com/flatlist/flatlist/internal/ui/render"
	"github.com/flatlist/flatlist/test"
)

func newPlainModel() *Model {
	m := New()
	m.successStyle = lipgloss.NewStyle()
	m.errorStyle = lipgloss.NewStyle()
	return m
}

func TestAdd_IgnoresEmptyMessages(t *testing.T) {
	m := New()

	id := m.add("   ", nil)

	assert.Zero(t, id)
	assert.Empty(t, m.messages)
}

func TestUpdate_AddsSuccessMessageAndSchedulesExpiry(t *testing.T) {
	m := newPlainModel()

	cmd := m.Update(common.CommandCompletedMsg{Output: "  success  ", Err: nil})

	assert.NotNil(t, cmd)
	if assert.Len(t, m.messages, 1) {
		assert.Equal(t, "success", m.messages[0].text)
		assert.Nil(t, m.messages[0].error)
	}
}

func TestUpdate_AddsErrorMessageWithoutExpiry(t *testing.T) {
	m := newPlainModel()

	cmd := m.Update(AddMessage{Err: errors.New("boom")})

	assert.Nil(t, cmd)
	if assert.Len(t, m.messages, 1) {
		assert.EqualError(t, m.messages[0].error, "boom")
	}
}

func TestUpdate_ExpiresMessages(t *testing.T) {
	m := newPlainModel()

	first := m.add("first", nil)
	m.add("second", nil)

	m.Update(expireMessageMsg{id: first})

	if assert.Len(t, m.messages, 1) {
		assert.Equal(t, "second", m.messages[0].text)
	}
}

func TestViewRect_StacksFromBottomRight(t *testing.T) {
	m := newPlainModel()
	m.add("abc", nil)
	m.add("de", nil)

	assert.Equal(t, "\n       abc\n        de", test.RenderPlain(m, 10, 3))
}

func TestViewRect_ClickDismissesOldest(t *testing.T) {
	m := newPlainModel()
	m.add("first", nil)
	m.add("second", nil)

	dl := render.NewDisplayContext()
	test.RenderWithContext(dl, m, 10, 3)
	msg, ok := dl.ProcessMouseEvent(test.Click(9, 2))
	assert.True(t, ok)
	m.Update(msg)

	if assert.Len(t, m.messages, 1) {
		assert.Equal(t, "second", m.messages[0].text)
	}
	assert.Equal(t, cellbuf.Rect(0, 0, 10, 3), m.Frame)
}
