package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlice_ClampsToBounds(t *testing.T) {
	items := []int{0, 1, 2, 3, 4}

	assert.Equal(t, []int{1, 2}, Slice(items, Range{1, 3}))
	assert.Equal(t, []int{3, 4}, Slice(items, Range{3, 10}))
	assert.Empty(t, Slice(items, Range{7, 9}))
	assert.Empty(t, Slice(items, Range{3, 1}))
	assert.Equal(t, []int{0, 1}, Slice(items, Range{-4, 2}))
}

func TestSlice_SharesBackingArray(t *testing.T) {
	items := []string{"a", "b", "c"}
	visible := Slice(items, Range{1, 2})
	visible[0] = "B"
	assert.Equal(t, "B", items[1])

	// appending must not clobber the item after the window
	_ = append(visible, "x")
	assert.Equal(t, "c", items[2])
}

func TestMaterialize(t *testing.T) {
	items := make([]int, 1000)
	for i := range items {
		items[i] = i
	}
	m := Metrics{ItemHeight: 40, ViewportHeight: 400}

	f := Materialize(items, m, 4000)
	assert.Equal(t, Range{100, 110}, f.Range)
	assert.Len(t, f.Items, 10)
	assert.Equal(t, 100, f.Items[0])
	assert.Equal(t, 4000.0, f.Leading)
	assert.Equal(t, 890*40.0, f.Trailing)
	assert.Equal(t, 40000.0, f.Extent)
	assert.Equal(t, f.Extent, f.Leading+float64(len(f.Items))*m.ItemHeight+f.Trailing)
}

func TestMaterialize_Empty(t *testing.T) {
	f := Materialize([]string{}, Metrics{ItemHeight: 1, ViewportHeight: 10}, 5)
	assert.True(t, f.Range.Empty())
	assert.Empty(t, f.Items)
	assert.Zero(t, f.Extent)
}

func TestRange(t *testing.T) {
	r := Range{Start: 2, End: 5}
	assert.Equal(t, 3, r.Len())
	assert.True(t, r.Contains(2))
	assert.False(t, r.Contains(5))
	assert.Equal(t, "[2, 5)", r.String())
	assert.Zero(t, Range{Start: 5, End: 2}.Len())
}
