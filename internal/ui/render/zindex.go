package render

// Z-index layers. Higher values render on top.
const (
	// ZBase is for list rows, header and status line.
	ZBase = 0

	// ZCursor is for the focused row highlight.
	ZCursor = 1

	// ZScrollbar is for the scrollbar track and thumb.
	ZScrollbar = 5

	// ZInput is for the filter prompt.
	ZInput = 10

	// ZOverlay is for flash messages.
	ZOverlay = 200
)
