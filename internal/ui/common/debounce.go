package common

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Debouncer delays a message until no newer request for the same
// debouncer has been made within the delay.
type Debouncer struct {
	id    string
	delay time.Duration
	tag   uint64
}

type debounceMsg struct {
	id  string
	tag uint64
	msg tea.Msg
}

func NewDebouncer(id string, delay time.Duration) *Debouncer {
	return &Debouncer{id: id, delay: delay}
}

// Trigger returns a command that delivers msg after the delay. Earlier
// pending messages become stale.
func (d *Debouncer) Trigger(msg tea.Msg) tea.Cmd {
	d.tag++
	if d.delay <= 0 {
		return func() tea.Msg { return msg }
	}
	id, tag := d.id, d.tag
	return tea.Tick(d.delay, func(time.Time) tea.Msg {
		return debounceMsg{id: id, tag: tag, msg: msg}
	})
}

// Unwrap returns the wrapped message when msg is the latest message of
// this debouncer.
func (d *Debouncer) Unwrap(msg tea.Msg) (tea.Msg, bool) {
	m, ok := msg.(debounceMsg)
	if !ok || m.id != d.id || m.tag != d.tag {
		return nil, false
	}
	return m.msg, true
}

// Owns reports whether msg was produced by this debouncer, stale or not.
func (d *Debouncer) Owns(msg tea.Msg) bool {
	m, ok := msg.(debounceMsg)
	return ok && m.id == d.id
}
