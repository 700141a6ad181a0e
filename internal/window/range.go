package window

import "fmt"

// Range is a half-open interval of item indices [Start, End).
type Range struct {
	Start int
	End   int
}

func (r Range) Len() int {
	return max(r.End-r.Start, 0)
}

func (r Range) Empty() bool {
	return r.Len() == 0
}

func (r Range) Contains(index int) bool {
	return index >= r.Start && index < r.End
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}

// Fragment is the materialized part of a virtual list: the visible items
// plus the space that stands in for the items that were not built.
type Fragment[T any] struct {
	Items    []T
	Range    Range
	Leading  float64
	Trailing float64
	Extent   float64
}

// Slice returns items[r.Start:r.End] clamped to the slice bounds.
// The result shares the backing array of items.
func Slice[T any](items []T, r Range) []T {
	start := min(max(r.Start, 0), len(items))
	end := min(max(r.End, start), len(items))
	return items[start:end:end]
}

// Materialize slices the items visible at the given pixel offset.
func Materialize[T any](items []T, m Metrics, offset float64) Fragment[T] {
	m.ItemCount = len(items)
	r := m.VisibleRangeAt(offset)
	return Fragment[T]{
		Items:    Slice(items, r),
		Range:    r,
		Leading:  float64(r.Start) * m.ItemHeight,
		Trailing: float64(m.ItemCount-r.End) * m.ItemHeight,
		Extent:   m.TotalHeight(),
	}
}
