package window

import (
	"math"

	"github.com/pkg/errors"
)

var (
	ErrInvalidItemHeight = errors.New("item height must be positive")
	ErrNegativeCount     = errors.New("item count must not be negative")
	ErrInvalidViewport   = errors.New("viewport height must not be negative")
)

// Metrics describes the uniform row geometry of a virtual list.
type Metrics struct {
	ItemCount      int
	ItemHeight     float64
	ViewportHeight float64
}

// NewMetrics validates the geometry and returns it.
func NewMetrics(itemCount int, itemHeight, viewportHeight float64) (Metrics, error) {
	if !(itemHeight > 0) || math.IsInf(itemHeight, 0) {
		return Metrics{}, errors.Wrapf(ErrInvalidItemHeight, "got %v", itemHeight)
	}
	if itemCount < 0 {
		return Metrics{}, errors.Wrapf(ErrNegativeCount, "got %d", itemCount)
	}
	if !(viewportHeight >= 0) {
		return Metrics{}, errors.Wrapf(ErrInvalidViewport, "got %v", viewportHeight)
	}
	return Metrics{
		ItemCount:      itemCount,
		ItemHeight:     itemHeight,
		ViewportHeight: viewportHeight,
	}, nil
}

// RowsFit returns the number of whole rows that fit in the viewport.
func (m Metrics) RowsFit() int {
	return rowsFit(m.ItemHeight, m.ViewportHeight)
}

func (m Metrics) TotalHeight() float64 {
	return float64(m.ItemCount) * m.ItemHeight
}

// MaxOffset is the largest pixel offset the content can be scrolled to.
func (m Metrics) MaxOffset() float64 {
	return math.Max(m.TotalHeight()-m.ViewportHeight, 0)
}

// Fraction converts a pixel offset into the fraction of the total height
// scrolled past the top of the viewport.
func (m Metrics) Fraction(offset float64) float64 {
	total := m.TotalHeight()
	if total <= 0 {
		return 0
	}
	return offset / total
}

// VisibleRange returns the items to render for a scroll fraction.
func (m Metrics) VisibleRange(fraction float64) Range {
	return VisibleRange(m.ItemCount, fraction, m.ItemHeight, m.ViewportHeight)
}

// VisibleRangeAt returns the items to render for a pixel offset. It is
// VisibleRange with the fraction offset/TotalHeight, computed without the
// intermediate division so exact row boundaries do not round down.
func (m Metrics) VisibleRangeAt(offset float64) Range {
	if !(m.ItemHeight > 0) {
		panic(errors.Wrapf(ErrInvalidItemHeight, "got %v", m.ItemHeight))
	}
	if m.ItemCount <= 0 {
		return Range{}
	}
	startMin := 0
	if offset > 0 {
		startMin = clampIndex(math.Floor(offset/m.ItemHeight), m.ItemCount)
	}
	return place(m.ItemCount, startMin, m.RowsFit())
}

// VisibleRange computes the half-open range of item indices that must be
// rendered when the list is scrolled by scrollFraction of its total height.
//
// Counts are truncated toward zero so a partially visible row is never
// skipped. The start index is bounded by the last position at which a full
// page still fits, so out of range fractions cannot push the window past the
// end of the list. itemHeight must be positive.
func VisibleRange(itemCount int, scrollFraction, itemHeight, viewportHeight float64) Range {
	if !(itemHeight > 0) {
		panic(errors.Wrapf(ErrInvalidItemHeight, "got %v", itemHeight))
	}
	if itemCount <= 0 {
		return Range{}
	}

	startMin := 0
	if scrollFraction > 0 {
		startMin = clampIndex(math.Floor(float64(itemCount)*scrollFraction), itemCount)
	}
	return place(itemCount, startMin, rowsFit(itemHeight, viewportHeight))
}

func place(itemCount, startMin, fit int) Range {
	startMax := max(itemCount-fit, 0)
	start := min(max(startMin, 0), startMax)
	end := min(start+fit, itemCount)
	return Range{Start: start, End: end}
}

func rowsFit(itemHeight, viewportHeight float64) int {
	if !(viewportHeight > 0) || !(itemHeight > 0) {
		return 0
	}
	rows := math.Floor(viewportHeight / itemHeight)
	if rows >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(rows)
}

// clampIndex converts a floored index into [0, itemCount] without
// overflowing on huge or infinite values.
func clampIndex(v float64, itemCount int) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= float64(itemCount) {
		return itemCount
	}
	return int(v)
}
