package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/ecoshredder/spritegen/internal/render/layout"
	"golang.org/x/image/font/basicfont"
)

func TestNewCanvas_Transparent(t *testing.T) {
	c := NewCanvas(16, 8)
	w, h := c.Size()
	if w != 16 || h != 8 {
		t.Fatalf("expected 16x8, got %dx%d", w, h)
	}
	for i, v := range c.Image().Pix {
		if v != 0 {
			t.Fatalf("expected transparent canvas, byte %d = %d", i, v)
		}
	}
}

func TestFillRoundedRect(t *testing.T) {
	c := NewCanvas(120, 120)
	green := color.RGBA{R: 39, G: 174, B: 96, A: 255}
	c.FillRoundedRect(layout.Box(10, 20, 110, 110), 8, green)

	if got := c.Image().RGBAAt(60, 60); got != green {
		t.Errorf("expected interior %v, got %v", green, got)
	}
	if got := c.Image().RGBAAt(10, 20); got.A != 0 {
		t.Errorf("expected rounded corner to stay transparent, got %v", got)
	}
	if got := c.Image().RGBAAt(60, 21); got != green {
		t.Errorf("expected straight top edge to be filled, got %v", got)
	}
	if got := c.Image().RGBAAt(5, 60); got.A != 0 {
		t.Errorf("expected outside pixel to stay transparent, got %v", got)
	}
}

func TestStrokeRoundedRect_LeavesInteriorUntouched(t *testing.T) {
	c := NewCanvas(70, 70)
	stroke := color.RGBA{A: 128}
	c.StrokeRoundedRect(layout.Box(5, 5, 65, 65), 10, 3, stroke)

	if got := c.Image().RGBAAt(35, 35); got.A != 0 {
		t.Errorf("expected hollow interior, got %v", got)
	}
	if got := c.Image().RGBAAt(6, 35); got != stroke {
		t.Errorf("expected band pixel %v, got %v", stroke, got)
	}
	if got := c.Image().RGBAAt(9, 35); got.A != 0 {
		t.Errorf("expected pixel inside the band to be clear, got %v", got)
	}
}

func TestStrokeRect_FillsWhenBandCoversBox(t *testing.T) {
	c := NewCanvas(20, 20)
	black := color.RGBA{A: 255}
	c.StrokeRect(image.Rect(2, 2, 8, 8), 4, black)
	if got := c.Image().RGBAAt(5, 5); got != black {
		t.Errorf("expected solid box when the band swallows the interior, got %v", got)
	}
}

func TestStrokeRect_ThinBoxHasNoHole(t *testing.T) {
	c := NewCanvas(20, 10)
	black := color.RGBA{A: 255}
	// Inner edges cross vertically (3 > 5-3), so the band covers every row.
	c.StrokeRect(image.Rect(0, 0, 20, 5), 3, black)
	for y := 0; y < 5; y++ {
		if got := c.Image().RGBAAt(10, y); got != black {
			t.Errorf("row %d: expected solid band, got %v", y, got)
		}
	}
}

func TestFillRect_Composites(t *testing.T) {
	c := NewCanvas(10, 10)
	c.FillRect(image.Rect(0, 0, 10, 10), color.RGBA{R: 200, A: 255})
	c.FillRect(image.Rect(0, 0, 5, 5), color.RGBA{A: 128})

	got := c.Image().RGBAAt(1, 1)
	if got.A != 255 || got.R >= 200 || got.R == 0 {
		t.Errorf("expected darkened opaque red, got %v", got)
	}
	if got := c.Image().RGBAAt(8, 8); got.R != 200 {
		t.Errorf("expected untouched red, got %v", got)
	}
}

func TestDrawText_CenteredWithStroke(t *testing.T) {
	c := NewCanvas(120, 120)
	style := TextStyle{
		Face:        basicfont.Face7x13,
		Color:       color.White,
		Align:       TextAlignCenter,
		StrokeWidth: 2,
		StrokeColor: color.Black,
	}
	m := c.DrawText("PAPER", 60, 100, style)
	if m.Width <= 0 || m.Height <= 0 {
		t.Fatalf("expected positive ink size, got %+v", m)
	}

	var white, black int
	img := c.Image()
	for y := 95; y < 120; y++ {
		for x := 0; x < 120; x++ {
			p := img.RGBAAt(x, y)
			switch {
			case p == color.RGBA{R: 255, G: 255, B: 255, A: 255}:
				white++
			case p == color.RGBA{A: 255}:
				black++
			}
		}
	}
	if white == 0 {
		t.Error("expected white glyph pixels")
	}
	if black == 0 {
		t.Error("expected black outline pixels")
	}
	if img.RGBAAt(0, 0).A != 0 {
		t.Error("expected text to stay near its anchor")
	}
}

func TestDrawText_InkMiddleAnchor(t *testing.T) {
	c := NewCanvas(70, 70)
	style := TextStyle{Face: basicfont.Face7x13, Color: color.White, Align: TextAlignCenter, Anchor: AnchorInkMiddle}
	c.DrawText("X", 35, 35, style)

	found := false
	for y := 28; y <= 42 && !found; y++ {
		for x := 28; x <= 42; x++ {
			if c.Image().RGBAAt(x, y).A != 0 {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("expected glyph ink around the anchor point")
	}
}

func TestDrawText_NilFaceIsNoop(t *testing.T) {
	c := NewCanvas(10, 10)
	if m := c.DrawText("A", 5, 5, TextStyle{}); m != (TextMetrics{}) {
		t.Errorf("expected zero metrics, got %+v", m)
	}
}
