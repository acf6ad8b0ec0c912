package layout

import (
	"image"
	"testing"
)

func TestBox_IsInclusive(t *testing.T) {
	got := Box(10, 20, 109, 109)
	want := image.Rect(10, 20, 110, 110)
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
	if got := Box(5, 5, 0, 0); got != image.Rect(0, 0, 6, 6) {
		t.Errorf("expected reversed corners to cover 0..5, got %v", got)
	}
	if got := Box(3, 0, 3, 0); got != image.Rect(3, 0, 4, 1) {
		t.Errorf("expected a single pixel, got %v", got)
	}
}

func TestInset(t *testing.T) {
	got := Inset(image.Rect(0, 0, 70, 70), 5)
	if got != image.Rect(5, 5, 65, 65) {
		t.Errorf("unexpected inset %v", got)
	}
	if got := Inset(image.Rect(0, 0, 10, 10), 0); got != image.Rect(0, 0, 10, 10) {
		t.Errorf("zero padding should be identity, got %v", got)
	}
}

func TestGrid(t *testing.T) {
	cells := Grid(image.Rect(0, 0, 300, 150), 100, 70)
	if len(cells) != 6 {
		t.Fatalf("expected 6 cells, got %d", len(cells))
	}
	if cells[0] != image.Rect(0, 0, 100, 70) {
		t.Errorf("unexpected first cell %v", cells[0])
	}
	if cells[4] != image.Rect(100, 70, 200, 140) {
		t.Errorf("unexpected fifth cell %v", cells[4])
	}
	if Grid(image.Rect(0, 0, 10, 10), 0, 5) != nil {
		t.Error("expected nil grid for zero cell width")
	}
}

func TestSplitHorizontal_Clamps(t *testing.T) {
	top, bottom := SplitHorizontal(image.Rect(0, 0, 10, 10), 20)
	if top.Dy() != 10 || !bottom.Empty() {
		t.Errorf("expected clamp, got top=%v bottom=%v", top, bottom)
	}
}

func TestFitSquareAndCenterIn(t *testing.T) {
	sq := FitSquare(image.Rect(0, 0, 140, 120))
	if sq != image.Rect(0, 0, 120, 120) {
		t.Errorf("unexpected square %v", sq)
	}
	c := CenterIn(sq, image.Pt(70, 70))
	if c != image.Rect(25, 25, 95, 95) {
		t.Errorf("unexpected centered rect %v", c)
	}
}

func TestFit_KeepsAspectRatio(t *testing.T) {
	tests := []struct {
		name string
		rect image.Rectangle
		size image.Point
		want image.Rectangle
	}{
		{"wide target", image.Rect(0, 0, 20, 10), image.Pt(5, 5), image.Rect(5, 0, 15, 10)},
		{"tall target", image.Rect(0, 0, 10, 30), image.Pt(960, 540), image.Rect(0, 12, 10, 17)},
		{"same ratio", image.Rect(0, 0, 1920, 1080), image.Pt(960, 540), image.Rect(0, 0, 1920, 1080)},
		{"empty size", image.Rect(2, 2, 10, 10), image.Pt(0, 4), image.Rect(2, 2, 2, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fit(tt.rect, tt.size); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
