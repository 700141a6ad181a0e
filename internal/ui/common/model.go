package common

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/flatlist/flatlist/internal/ui/layout"
	"github.com/flatlist/flatlist/internal/ui/render"
)

// ImmediateModel is a model that draws itself into a display context
// every frame instead of returning a string.
type ImmediateModel interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	ViewRect(dl *render.DisplayContext, box layout.Box)
}
