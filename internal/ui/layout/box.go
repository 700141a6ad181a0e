package layout

import "github.com/charmbracelet/x/cellbuf"

// Box wraps a cellbuf.Rectangle to provide a fluent API for layout calculations.
type Box struct {
	R cellbuf.Rectangle
}

func NewBox(r cellbuf.Rectangle) Box {
	return Box{R: r}
}

// Spec decides how much of a dimension a child box gets.
type Spec interface {
	// calc returns the size given the full dimension, the space left after
	// fixed and percent allocations and the sum of all fill weights.
	calc(total int, remaining int, fillWeight float64) int
}

// Fixed is a size in cells.
type Fixed int

// Percent is a percentage (0-100) of the full dimension.
type Percent int

// FillSpec shares the remaining space proportionally to its weight.
type FillSpec float64

func (f Fixed) calc(total int, _ int, _ float64) int {
	return min(max(int(f), 0), total)
}

func (p Percent) calc(total int, _ int, _ float64) int {
	return total * min(max(int(p), 0), 100) / 100
}

func (f FillSpec) calc(_ int, remaining int, fillWeight float64) int {
	if remaining <= 0 || fillWeight <= 0 || f <= 0 {
		return 0
	}
	return int(float64(remaining) * float64(f) / fillWeight)
}

func Fill(weight float64) Spec {
	return FillSpec(weight)
}

func (b Box) Width() int {
	return b.R.Dx()
}

func (b Box) Height() int {
	return b.R.Dy()
}

func (b Box) Empty() bool {
	return b.R.Dx() <= 0 || b.R.Dy() <= 0
}

// V splits the box top to bottom, one box per spec.
func (b Box) V(specs ...Spec) []Box {
	if len(specs) == 0 {
		return []Box{b}
	}
	result := make([]Box, len(specs))
	y := b.R.Min.Y
	for i, size := range sizes(b.R.Dy(), specs) {
		next := min(y+size, b.R.Max.Y)
		result[i] = Box{R: cellbuf.Rectangle{
			Min: cellbuf.Pos(b.R.Min.X, y),
			Max: cellbuf.Pos(b.R.Max.X, next),
		}}
		y = next
	}
	return result
}

// H splits the box left to right, one box per spec.
func (b Box) H(specs ...Spec) []Box {
	if len(specs) == 0 {
		return []Box{b}
	}
	result := make([]Box, len(specs))
	x := b.R.Min.X
	for i, size := range sizes(b.R.Dx(), specs) {
		next := min(x+size, b.R.Max.X)
		result[i] = Box{R: cellbuf.Rectangle{
			Min: cellbuf.Pos(x, b.R.Min.Y),
			Max: cellbuf.Pos(next, b.R.Max.Y),
		}}
		x = next
	}
	return result
}

func sizes(total int, specs []Spec) []int {
	result := make([]int, len(specs))
	if total <= 0 {
		return result
	}

	consumed := 0
	fillWeight := 0.0
	for i, spec := range specs {
		if f, ok := spec.(FillSpec); ok {
			fillWeight += float64(max(f, 0))
			continue
		}
		result[i] = spec.calc(total, 0, 0)
		consumed += result[i]
	}

	remaining := max(total-consumed, 0)
	allocated := 0
	lastFill := -1
	for i, spec := range specs {
		if _, ok := spec.(FillSpec); ok {
			result[i] = spec.calc(total, remaining, fillWeight)
			allocated += result[i]
			lastFill = i
		}
	}
	// rounding leftovers go to the last fill
	if lastFill >= 0 && fillWeight > 0 && remaining > allocated {
		result[lastFill] += remaining - allocated
	}
	return result
}

// CutTop cuts h cells from the top, returning the top box and the rest.
func (b Box) CutTop(h int) (top, rest Box) {
	y := b.R.Min.Y + min(max(h, 0), b.R.Dy())
	top = Box{R: cellbuf.Rectangle{Min: b.R.Min, Max: cellbuf.Pos(b.R.Max.X, y)}}
	rest = Box{R: cellbuf.Rectangle{Min: cellbuf.Pos(b.R.Min.X, y), Max: b.R.Max}}
	return top, rest
}

// CutBottom cuts h cells from the bottom, returning the rest and the bottom box.
func (b Box) CutBottom(h int) (rest, bottom Box) {
	y := b.R.Max.Y - min(max(h, 0), b.R.Dy())
	rest = Box{R: cellbuf.Rectangle{Min: b.R.Min, Max: cellbuf.Pos(b.R.Max.X, y)}}
	bottom = Box{R: cellbuf.Rectangle{Min: cellbuf.Pos(b.R.Min.X, y), Max: b.R.Max}}
	return rest, bottom
}

// CutRight cuts w cells from the right, returning the rest and the right box.
func (b Box) CutRight(w int) (rest, right Box) {
	x := b.R.Max.X - min(max(w, 0), b.R.Dx())
	rest = Box{R: cellbuf.Rectangle{Min: b.R.Min, Max: cellbuf.Pos(x, b.R.Max.Y)}}
	right = Box{R: cellbuf.Rectangle{Min: cellbuf.Pos(x, b.R.Min.Y), Max: b.R.Max}}
	return rest, right
}

// Center returns a box of size w x h centered within this box, clamped to it.
func (b Box) Center(w, h int) Box {
	w = min(max(w, 0), b.R.Dx())
	h = min(max(h, 0), b.R.Dy())
	x := b.R.Min.X + (b.R.Dx()-w)/2
	y := b.R.Min.Y + (b.R.Dy()-h)/2
	return Box{R: cellbuf.Rect(x, y, w, h)}
}
