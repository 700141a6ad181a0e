package layout

import (
	"testing"

	"github.com/charmbracelet/x/cellbuf"
)

func TestSpecs(t *testing.T) {
	tests := []struct {
		name      string
		spec      Spec
		total     int
		remaining int
		weight    float64
		want      int
	}{
		{"fixed", Fixed(10), 100, 0, 0, 10},
		{"fixed negative", Fixed(-5), 100, 0, 0, 0},
		{"fixed overflow", Fixed(150), 100, 0, 0, 100},
		{"percent", Percent(33), 100, 0, 0, 33},
		{"percent overflow", Percent(150), 80, 0, 0, 80},
		{"percent negative", Percent(-1), 80, 0, 0, 0},
		{"fill share", FillSpec(1), 100, 60, 3, 20},
		{"fill no room", FillSpec(1), 100, 0, 1, 0},
		{"fill zero weight", FillSpec(0), 100, 50, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.calc(tt.total, tt.remaining, tt.weight); got != tt.want {
				t.Errorf("calc() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBoxV_HeaderListStatus(t *testing.T) {
	b := NewBox(cellbuf.Rect(0, 0, 80, 24))
	rows := b.V(Fixed(1), Fill(1), Fixed(1))

	want := []cellbuf.Rectangle{
		cellbuf.Rect(0, 0, 80, 1),
		cellbuf.Rect(0, 1, 80, 22),
		cellbuf.Rect(0, 23, 80, 1),
	}
	for i, r := range want {
		if rows[i].R != r {
			t.Errorf("rows[%d] = %v, want %v", i, rows[i].R, r)
		}
	}
}

func TestBoxV_Overflow(t *testing.T) {
	boxes := NewBox(cellbuf.Rect(0, 0, 10, 100)).V(Fixed(60), Fixed(70), Fixed(5))

	heights := []int{60, 40, 0}
	for i, h := range heights {
		if boxes[i].Height() != h {
			t.Errorf("boxes[%d] height = %d, want %d", i, boxes[i].Height(), h)
		}
	}
}

func TestBoxV_ZeroHeight(t *testing.T) {
	boxes := NewBox(cellbuf.Rect(0, 0, 100, 0)).V(Fixed(10), Fill(1))
	for i, box := range boxes {
		if !box.Empty() {
			t.Errorf("boxes[%d] = %v, want empty", i, box.R)
		}
	}
}

func TestBoxV_RoundingRemainderGoesToLastFill(t *testing.T) {
	boxes := NewBox(cellbuf.Rect(0, 0, 10, 100)).V(Fill(1), Fill(1), Fill(1))
	total := 0
	for _, box := range boxes {
		total += box.Height()
	}
	if total != 100 {
		t.Errorf("total height = %d, want 100", total)
	}
	if boxes[2].Height() != 34 {
		t.Errorf("last height = %d, want 34", boxes[2].Height())
	}
}

func TestBoxH_ListAndScrollbar(t *testing.T) {
	cols := NewBox(cellbuf.Rect(2, 3, 40, 10)).H(Fill(1), Fixed(1))
	if cols[0].R != cellbuf.Rect(2, 3, 39, 10) {
		t.Errorf("cols[0] = %v", cols[0].R)
	}
	if cols[1].R != cellbuf.Rect(41, 3, 1, 10) {
		t.Errorf("cols[1] = %v", cols[1].R)
	}
}

func TestBoxCuts(t *testing.T) {
	b := NewBox(cellbuf.Rect(0, 0, 20, 10))

	top, rest := b.CutTop(3)
	if top.R != cellbuf.Rect(0, 0, 20, 3) || rest.R != cellbuf.Rect(0, 3, 20, 7) {
		t.Errorf("CutTop(3) = %v, %v", top.R, rest.R)
	}

	rest, bottom := b.CutBottom(20)
	if rest.Height() != 0 || bottom.R != b.R {
		t.Errorf("CutBottom(20) = %v, %v", rest.R, bottom.R)
	}

	rest, right := b.CutRight(1)
	if rest.R != cellbuf.Rect(0, 0, 19, 10) || right.R != cellbuf.Rect(19, 0, 1, 10) {
		t.Errorf("CutRight(1) = %v, %v", rest.R, right.R)
	}

	top, rest = b.CutTop(-1)
	if top.Height() != 0 || rest.R != b.R {
		t.Errorf("CutTop(-1) = %v, %v", top.R, rest.R)
	}
}

func TestBoxCenter(t *testing.T) {
	tests := []struct {
		name string
		box  Box
		w, h int
		want cellbuf.Rectangle
	}{
		{"inside", NewBox(cellbuf.Rect(10, 10, 100, 100)), 60, 40, cellbuf.Rect(30, 40, 60, 40)},
		{"too wide", NewBox(cellbuf.Rect(0, 0, 50, 50)), 100, 20, cellbuf.Rect(0, 15, 50, 20)},
		{"zero", NewBox(cellbuf.Rect(0, 0, 100, 100)), 0, 0, cellbuf.Rect(50, 50, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.Center(tt.w, tt.h); got.R != tt.want {
				t.Errorf("Center(%d, %d) = %v, want %v", tt.w, tt.h, got.R, tt.want)
			}
		})
	}
}
