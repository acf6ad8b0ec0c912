package sprite

import (
	"image"

	"github.com/ecoshredder/spritegen/internal/glyph"
	"github.com/ecoshredder/spritegen/internal/palette"
	"github.com/ecoshredder/spritegen/internal/render"
	"github.com/ecoshredder/spritegen/internal/render/layout"
)

const (
	binEmblemSize = 40
	binLabelSize  = 10

	binEmblemDrop   = 5
	binLabelBottom  = 15
	binLabelOutline = 2
)

// BinRenderer draws BinSize x BinSize bin sprites.
type BinRenderer struct {
	Fonts       *glyph.Resolver
	EmblemFonts []string
	LabelFonts  []string
}

func NewBinRenderer(fonts *glyph.Resolver) *BinRenderer {
	return &BinRenderer{Fonts: resolverOrDefault(fonts), EmblemFonts: EmblemFonts, LabelFonts: LabelFonts}
}

// Render draws body, depth band, lid, outline, handle, emblem and label in that order.
func (r *BinRenderer) Render(cfg BinConfig) *image.RGBA {
	const w, h = BinSize, BinSize
	c := render.NewCanvas(w, h)

	body := layout.Box(10, 20, w-10, h-10)
	c.FillRoundedRect(body, 8, cfg.Color.Opaque())
	c.FillRect(layout.Box(15, 25, w-15, 40), palette.Dark(cfg.Color).Opaque())
	c.FillRoundedRect(layout.Box(5, 10, w-5, 25), 5, palette.Lid(cfg.Color).Opaque())
	c.StrokeRoundedRect(body, 8, 3, palette.Black.RGBA(80))
	c.StrokeRect(layout.Box(w/2-15, 12, w/2+15, 20), 4, palette.Black.RGBA(100))

	fonts := resolverOrDefault(r.Fonts)
	emblemText := glyph.Printable(cfg.Emblem)
	emblem := fonts.ResolveText(r.EmblemFonts, binEmblemSize, emblemText)
	c.DrawText(emblemText, w/2, h/2+binEmblemDrop, render.TextStyle{
		Face:   emblem.Face,
		Color:  palette.White.Opaque(),
		Align:  render.TextAlignCenter,
		Anchor: render.AnchorInkMiddle,
	})

	labelText := glyph.Printable(cfg.Label)
	label := fonts.ResolveText(r.LabelFonts, binLabelSize, labelText)
	c.DrawText(labelText, w/2, h-binLabelBottom, render.TextStyle{
		Face:        label.Face,
		Color:       palette.White.Opaque(),
		Align:       render.TextAlignCenter,
		Anchor:      render.AnchorLineTop,
		StrokeWidth: binLabelOutline,
		StrokeColor: palette.Black.Opaque(),
	})
	return c.Image()
}
