package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/ecoshredder/spritegen/internal/render/layout"
	fb "github.com/gonutz/framebuffer"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Tile is one sprite with its caption on a preview sheet.
type Tile struct {
	Name  string
	Image image.Image
}

// ComposeSheet lays tiles out row-major on a SheetWidth x SheetHeight canvas.
// Tiles that do not fit are dropped.
func ComposeSheet(tiles []Tile, face font.Face) *image.RGBA {
	if face == nil {
		face = basicfont.Face7x13
	}
	sheet := NewCanvas(SheetWidth, SheetHeight)
	draw.Draw(sheet.img, sheet.img.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)

	area := layout.Inset(sheet.img.Bounds(), SheetPadding)
	cells := layout.Grid(area, SheetCell, SheetCell)
	for i, tile := range tiles {
		if i >= len(cells) {
			break
		}
		if tile.Image == nil {
			continue
		}
		cell := cells[i]
		caption := TextStyle{Face: face, Color: Foreground, Align: TextAlignCenter}
		m := sheet.MeasureText(tile.Name, caption)
		art, _ := layout.SplitHorizontal(cell, cell.Dy()-m.Ascent-m.Descent-4)

		dst := layout.CenterIn(layout.FitSquare(art), tile.Image.Bounds().Size())
		draw.Draw(sheet.img, dst, tile.Image, tile.Image.Bounds().Min, draw.Over)
		sheet.DrawText(tile.Name, cell.Min.X+cell.Dx()/2, art.Max.Y+2, caption)
	}
	return sheet.img
}

// ShowOnFramebuffer opens the framebuffer device at path and blits img scaled to fill it.
func ShowOnFramebuffer(path string, img image.Image) error {
	dev, err := fb.Open(path)
	if err != nil {
		return err
	}
	defer dev.Close()
	Blit(dev, img)
	return nil
}

// Blit scales src onto dst with nearest-neighbour sampling, keeping its aspect
// ratio and letterboxing with Background. Alpha is flattened since framebuffers ignore it.
func Blit(dst draw.Image, src image.Image) {
	bounds := dst.Bounds()
	flat := image.NewRGBA(bounds)
	draw.Draw(flat, bounds, &image.Uniform{C: Background}, image.Point{}, draw.Src)
	target := layout.Fit(bounds, src.Bounds().Size())
	xdraw.NearestNeighbor.Scale(flat, target, src, src.Bounds(), xdraw.Over, nil)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pixel := flat.RGBAAt(x, y)
			dst.Set(x, y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
}
