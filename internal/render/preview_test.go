package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestBlit_ScalesAndLetterboxes(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	src := solid(5, 5, red)
	dst := image.NewRGBA(image.Rect(0, 0, 20, 10))

	Blit(dst, src)
	for _, pt := range []image.Point{{5, 0}, {14, 9}, {10, 5}} {
		if got := dst.RGBAAt(pt.X, pt.Y); got != red {
			t.Errorf("pixel %v: expected %v, got %v", pt, red, got)
		}
	}
	for _, pt := range []image.Point{{0, 0}, {4, 5}, {15, 5}, {19, 9}} {
		if got := dst.RGBAAt(pt.X, pt.Y); got != Background {
			t.Errorf("pixel %v: expected letterbox %v, got %v", pt, Background, got)
		}
	}
}

func TestBlit_TransparentBecomesBackground(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))
	Blit(dst, src)
	if got := dst.RGBAAt(2, 2); got != Background {
		t.Errorf("expected background %v, got %v", Background, got)
	}
}

func TestComposeSheet(t *testing.T) {
	blue := color.RGBA{B: 255, A: 255}
	sheet := ComposeSheet([]Tile{{Name: "bin", Image: solid(70, 70, blue)}, {Name: "empty"}}, nil)

	if sheet.Bounds().Dx() != SheetWidth || sheet.Bounds().Dy() != SheetHeight {
		t.Fatalf("unexpected sheet size %v", sheet.Bounds())
	}
	if got := sheet.RGBAAt(0, 0); got != Background {
		t.Errorf("expected background in the margin, got %v", got)
	}

	found := false
	for y := SheetPadding; y < SheetPadding+SheetCell && !found; y++ {
		for x := SheetPadding; x < SheetPadding+SheetCell; x++ {
			if sheet.RGBAAt(x, y) == blue {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("expected the first tile inside the first cell")
	}
}

func TestPNGBytes_Deterministic(t *testing.T) {
	img := solid(8, 8, color.RGBA{G: 128, A: 255})
	a, err := PNGBytes(img)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, _ := PNGBytes(img)
	if !bytes.Equal(a, b) {
		t.Error("expected identical encodings")
	}
	decoded, err := png.Decode(bytes.NewReader(a))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("expected bounds %v, got %v", img.Bounds(), decoded.Bounds())
	}
}
