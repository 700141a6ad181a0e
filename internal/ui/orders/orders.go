package orders

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/cellbuf"

	"github.com/flatlist/flatlist/internal/fake"
	"github.com/flatlist/flatlist/internal/ui/common"
	"github.com/flatlist/flatlist/internal/ui/filter"
	"github.com/flatlist/flatlist/internal/ui/flatlist"
	"github.com/flatlist/flatlist/internal/ui/layout"
	"github.com/flatlist/flatlist/internal/ui/render"
)

// Name is the list name used in messages.
const Name = "orders"

const detailsLabel = "[Details]"

var headers = []string{"#", "Order ID", "Customer", "Paid", "Action"}

type styles struct {
	header   lipgloss.Style
	text     lipgloss.Style
	dimmed   lipgloss.Style
	matched  lipgloss.Style
	selected lipgloss.Style
	success  lipgloss.Style
	error    lipgloss.Style
}

func newStyles() styles {
	p := common.DefaultPalette
	return styles{
		header:   p.Get("header"),
		text:     p.Get("text"),
		dimmed:   p.Get("dimmed"),
		matched:  p.Get("matched"),
		selected: p.Get("selected"),
		success:  p.Get("success"),
		error:    p.Get("error"),
	}
}

var _ flatlist.IList = (*List)(nil)

// List shows the orders that pass the filter.
type List struct {
	orders fake.Orders
	filter *filter.Model
	styles styles
}

func NewList(orders fake.Orders, f *filter.Model) *List {
	return &List{orders: orders, filter: f, styles: newStyles()}
}

func (l *List) Len() int {
	if l.filter == nil {
		return len(l.orders)
	}
	return l.filter.Len()
}

// Order returns the order shown at position i.
func (l *List) Order(i int) (fake.Order, bool) {
	index := i
	if l.filter != nil {
		index = l.filter.Map(i)
	}
	if index < 0 || index >= len(l.orders) {
		return fake.Order{}, false
	}
	return l.orders[index], true
}

func (l *List) ItemRenderer(index int) flatlist.ItemRenderer {
	return row{list: l, index: index}
}

func columns(rect cellbuf.Rectangle) []layout.Box {
	return layout.NewBox(rect).H(
		layout.Fill(1),
		layout.Fill(1),
		layout.Fill(2),
		layout.Fill(1),
		layout.Fixed(len(detailsLabel)),
	)
}

type row struct {
	list  *List
	index int
}

// Render draws the columns on the first line of the item and the order
// summary on the second. Lines scrolled out of span are skipped.
func (r row) Render(dl *render.DisplayContext, span render.Span, focused bool) {
	l := r.list
	if focused {
		dl.AddHighlight(span.Rect, l.styles.selected, render.ZCursor)
	}
	order, ok := l.Order(r.index)
	if !ok {
		return
	}
	for i := 0; i < span.LineCount; i++ {
		line := cellbuf.Rect(span.Rect.Min.X, span.Rect.Min.Y+i, span.Rect.Dx(), 1)
		switch span.LineOffset + i {
		case 0:
			r.renderColumns(dl, line, order, focused)
		case 1:
			drawCell(dl, line, l.styles.dimmed.Render(order.String()))
		}
	}
	if !order.Paid {
		dl.AddDim(span.Rect, render.ZBase)
	}
}

func (r row) renderColumns(dl *render.DisplayContext, line cellbuf.Rectangle, order fake.Order, focused bool) {
	l := r.list
	cols := columns(line)
	paid := l.styles.error.Render("no")
	if order.Paid {
		paid = l.styles.success.Render("yes")
	}
	var customer string
	if l.filter != nil {
		customer = filter.HighlightMatched(order.Customer, l.filter.MatchedIndexes(r.index), l.styles.text, l.styles.matched)
	} else {
		customer = l.styles.text.Render(order.Customer)
	}
	cells := []string{
		l.styles.dimmed.Render(strconv.Itoa(order.N)),
		l.styles.text.Render(strconv.Itoa(order.OrderID)),
		customer,
		paid,
	}
	for i, content := range cells {
		drawCell(dl, cols[i].R, content)
	}

	action := cols[len(cols)-1].R
	dl.Text(action.Min.X, action.Min.Y, render.ZCursor).
		MaxWidth(action.Dx()).
		Clickable(detailsLabel, l.styles.header, flatlist.DetailsMsg{List: Name, Index: r.index}).
		Done()
	if focused {
		label := cellbuf.Rect(action.Min.X, action.Min.Y, min(len(detailsLabel), action.Dx()), 1)
		dl.AddUnderline(label, render.ZCursor)
	}
}

// Header draws the column titles.
type Header struct {
	styles styles
}

func NewHeader() *Header {
	return &Header{styles: newStyles()}
}

func (h *Header) Render(dl *render.DisplayContext, rect cellbuf.Rectangle) {
	for i, col := range columns(rect) {
		drawCell(dl, col.R, h.styles.header.Render(headers[i]))
	}
}

// drawCell truncates content to leave a one cell gap to the next column.
func drawCell(dl *render.DisplayContext, rect cellbuf.Rectangle, content string) {
	width := rect.Dx() - 1
	if width <= 0 {
		return
	}
	if ansi.StringWidth(content) > width {
		content = ansi.Truncate(content, width, "…")
	}
	dl.AddDraw(rect, content, render.ZBase)
}
