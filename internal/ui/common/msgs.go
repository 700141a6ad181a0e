package common

import tea "github.com/charmbracelet/bubbletea"

type (
	CloseViewMsg struct {
		Applied bool
	}
	CommandCompletedMsg struct {
		Output string
		Err    error
	}
	// SelectionChangedMsg is sent when the focused item of a list moves.
	SelectionChangedMsg struct {
		List  string
		Index int
	}
	// FilterChangedMsg carries the item indices that match the current query.
	FilterChangedMsg struct {
		Query   string
		Indices []int
	}
)

func Close() tea.Msg {
	return CloseViewMsg{}
}

func CloseApplied() tea.Msg {
	return CloseViewMsg{Applied: true}
}

func SelectionChanged(list string, index int) tea.Cmd {
	return func() tea.Msg {
		return SelectionChangedMsg{List: list, Index: index}
	}
}

func CommandCompleted(output string, err error) tea.Cmd {
	return func() tea.Msg {
		return CommandCompletedMsg{Output: output, Err: err}
	}
}
