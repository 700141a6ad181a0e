package render

import (
	"sort"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
)

// DisplayContext collects the draws, effects and interactive regions of a
// single frame. Models add to it during ViewRect and the root model renders
// it once into a cell buffer.
type DisplayContext struct {
	draws        []drawOp
	effects      []effectOp
	interactions []interactionOp
	order        int
}

func NewDisplayContext() *DisplayContext {
	return &DisplayContext{
		draws:        make([]drawOp, 0, 64),
		effects:      make([]effectOp, 0, 8),
		interactions: make([]interactionOp, 0, 64),
	}
}

func (dl *DisplayContext) nextOrder() int {
	dl.order++
	return dl.order
}

func (dl *DisplayContext) AddDraw(rect cellbuf.Rectangle, content string, z int) {
	if rect.Empty() {
		return
	}
	dl.draws = append(dl.draws, drawOp{
		Draw:  Draw{Rect: rect, Content: content, Z: z},
		order: dl.nextOrder(),
	})
}

// AddFill fills rect with ch drawn in style.
func (dl *DisplayContext) AddFill(rect cellbuf.Rectangle, ch rune, style lipgloss.Style, z int) {
	content := fillString(rect.Dx(), rect.Dy(), ch, style)
	if content == "" {
		return
	}
	dl.AddDraw(rect, content, z)
}

func (dl *DisplayContext) AddEffect(effect Effect) {
	dl.effects = append(dl.effects, effectOp{effect: effect, order: dl.nextOrder()})
}

func (dl *DisplayContext) AddReverse(rect cellbuf.Rectangle, z int) {
	dl.AddEffect(ReverseEffect(rect, z))
}

func (dl *DisplayContext) AddDim(rect cellbuf.Rectangle, z int) {
	dl.AddEffect(DimEffect(rect, z))
}

func (dl *DisplayContext) AddUnderline(rect cellbuf.Rectangle, z int) {
	dl.AddEffect(UnderlineEffect(rect, z))
}

func (dl *DisplayContext) AddHighlight(rect cellbuf.Rectangle, style lipgloss.Style, z int) {
	dl.AddEffect(HighlightEffect(rect, style, z))
}

// AddInteraction registers rect as a region that turns mouse input of the
// given types into msg.
func (dl *DisplayContext) AddInteraction(rect cellbuf.Rectangle, msg tea.Msg, typ InteractionType, z int) {
	if rect.Empty() {
		return
	}
	dl.interactions = append(dl.interactions, interactionOp{
		InteractionOp: InteractionOp{Rect: rect, Msg: msg, Type: typ, Z: z},
		order:         dl.nextOrder(),
	})
}

// Clear drops every operation so the context can be reused for the next frame.
func (dl *DisplayContext) Clear() {
	dl.draws = dl.draws[:0]
	dl.effects = dl.effects[:0]
	dl.interactions = dl.interactions[:0]
	dl.order = 0
}

// Render executes the draws and effects into buf, ordered by Z and then by
// insertion. Within the same Z a draw added after an effect covers it.
func (dl *DisplayContext) Render(buf *cellbuf.Buffer) {
	ops := make([]renderOp, 0, len(dl.draws)+len(dl.effects))
	for _, op := range dl.draws {
		ops = append(ops, renderOp{z: op.Z, order: op.order, draw: op.Draw, isDraw: true})
	}
	for _, op := range dl.effects {
		ops = append(ops, renderOp{z: op.effect.GetZ(), order: op.order, effect: op.effect})
	}
	sort.SliceStable(ops, func(i, j int) bool {
		if ops[i].z != ops[j].z {
			return ops[i].z < ops[j].z
		}
		return ops[i].order < ops[j].order
	})

	for _, op := range ops {
		if op.isDraw {
			cellbuf.SetContentRect(buf, op.draw.Content, op.draw.Rect)
			continue
		}
		op.effect.Apply(buf)
	}
}

func (dl *DisplayContext) RenderToString(width, height int) string {
	buf := cellbuf.NewBuffer(width, height)
	dl.Render(buf)
	return cellbuf.Render(buf)
}

func (dl *DisplayContext) DrawList() []Draw {
	result := make([]Draw, len(dl.draws))
	for i, op := range dl.draws {
		result[i] = op.Draw
	}
	return result
}

func (dl *DisplayContext) EffectsList() []Effect {
	result := make([]Effect, len(dl.effects))
	for i, op := range dl.effects {
		result[i] = op.effect
	}
	return result
}

// InteractionsList returns the interactions, highest Z first.
func (dl *DisplayContext) InteractionsList() []InteractionOp {
	sorted := dl.sortedInteractions()
	result := make([]InteractionOp, len(sorted))
	for i, op := range sorted {
		result[i] = op.InteractionOp
	}
	return result
}

func (dl *DisplayContext) Len() int {
	return len(dl.draws) + len(dl.effects) + len(dl.interactions)
}

// ProcessMouseEvent resolves a mouse press against the registered regions.
// The boolean reports whether any region took the event.
func (dl *DisplayContext) ProcessMouseEvent(msg tea.MouseMsg) (tea.Msg, bool) {
	return processMouseEvent(dl.sortedInteractions(), msg)
}

func (dl *DisplayContext) sortedInteractions() []interactionOp {
	sorted := make([]interactionOp, len(dl.interactions))
	copy(sorted, dl.interactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Z != sorted[j].Z {
			return sorted[i].Z > sorted[j].Z
		}
		// later registrations sit on top of earlier ones at the same Z
		return sorted[i].order > sorted[j].order
	})
	return sorted
}

type drawOp struct {
	Draw
	order int
}

type effectOp struct {
	effect Effect
	order  int
}

type interactionOp struct {
	InteractionOp
	order int
}

type renderOp struct {
	z      int
	order  int
	draw   Draw
	effect Effect
	isDraw bool
}
