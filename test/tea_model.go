package test

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/flatlist/flatlist/internal/ui/render"
)

type immediateModel interface {
	updater
	immediateView
}

// TeaModel runs an immediate model as a tea.Model at a fixed size. Update
// drains every command the model returns and keeps the resulting messages
// in Received. Mouse presses are routed through the last rendered frame.
type TeaModel struct {
	Model    immediateModel
	Width    int
	Height   int
	Received []tea.Msg
	dl       *render.DisplayContext
}

func NewTeaModel(model immediateModel, width, height int) *TeaModel {
	return &TeaModel{
		Model:  model,
		Width:  width,
		Height: height,
		dl:     render.NewDisplayContext(),
	}
}

func (w *TeaModel) Init() tea.Cmd {
	return nil
}

func (w *TeaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		w.Width, w.Height = m.Width, m.Height
		return w, nil
	case tea.MouseMsg:
		if m.Action == tea.MouseActionPress {
			w.View()
			routed, handled := w.dl.ProcessMouseEvent(m)
			if !handled || routed == nil {
				return w, nil
			}
			msg = routed
		}
	}
	SimulateModel(w.Model, Send(msg), func(received tea.Msg) {
		w.Received = append(w.Received, received)
	})
	return w, nil
}

// View renders the model and returns the plain text of the frame.
func (w *TeaModel) View() string {
	return RenderWithContext(w.dl, w.Model, w.Width, w.Height)
}
