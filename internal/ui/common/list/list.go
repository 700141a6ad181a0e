package list

import (
	"github.com/flatlist/flatlist/internal/ui/common"
	"github.com/flatlist/flatlist/internal/window"
)

type IList interface {
	Len() int
}

type IListCursor interface {
	Cursor() int
	SetCursor(index int)
}

// IScrollableList is a list with a cursor that only renders a window of
// its items.
type IScrollableList interface {
	IList
	IListCursor

	// VisibleRange returns the half-open range of rendered items, used to
	// size page jumps.
	VisibleRange() window.Range

	// ListName is used in boundary messages like "Already at the top of {ListName}".
	ListName() string
}

type ScrollResult struct {
	NewCursor        int
	EnsureCursorView bool
	NavigateMessage  *common.CommandCompletedMsg
}

// Scroll calculates the new cursor position for a cursor movement of delta
// items, or delta pages when isPage is set. The caller applies NewCursor.
func Scroll(nav IScrollableList, delta int, isPage bool) ScrollResult {
	currentCursor := nav.Cursor()
	totalItems := nav.Len()

	result := ScrollResult{
		NewCursor:        currentCursor,
		EnsureCursorView: true,
	}

	if totalItems == 0 || delta == 0 {
		return result
	}

	step := delta
	if isPage {
		span := max(nav.VisibleRange().Len()-1, 1)
		if step < 0 {
			step = -span
		} else {
			step = span
		}
	}

	if step > 0 {
		if currentCursor >= totalItems-1 {
			result.NewCursor = totalItems - 1
			result.NavigateMessage = boundary("Already at the bottom of " + nav.ListName())
			return result
		}
		result.NewCursor = min(currentCursor+step, totalItems-1)
		return result
	}

	if currentCursor <= 0 {
		result.NewCursor = 0
		result.NavigateMessage = boundary("Already at the top of " + nav.ListName())
		return result
	}
	result.NewCursor = max(currentCursor+step, 0)
	return result
}

// Jump moves the cursor to the first (toEnd false) or last item.
func Jump(nav IScrollableList, toEnd bool) ScrollResult {
	result := ScrollResult{NewCursor: 0, EnsureCursorView: true}
	if toEnd && nav.Len() > 0 {
		result.NewCursor = nav.Len() - 1
	}
	return result
}

func boundary(output string) *common.CommandCompletedMsg {
	return &common.CommandCompletedMsg{Output: output}
}
