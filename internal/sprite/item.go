package sprite

import (
	"image"

	"github.com/ecoshredder/spritegen/internal/glyph"
	"github.com/ecoshredder/spritegen/internal/palette"
	"github.com/ecoshredder/spritegen/internal/render"
	"github.com/ecoshredder/spritegen/internal/render/layout"
)

const itemEmblemSize = 32

// ItemRenderer draws ItemSize x ItemSize item sprites.
type ItemRenderer struct {
	Fonts       *glyph.Resolver
	EmblemFonts []string
}

func NewItemRenderer(fonts *glyph.Resolver) *ItemRenderer {
	return &ItemRenderer{Fonts: resolverOrDefault(fonts), EmblemFonts: EmblemFonts}
}

// Render draws body, highlight, shadow, outline and emblem in that order.
// Unlike bins the emblem sits at the exact center.
func (r *ItemRenderer) Render(cfg ItemConfig) *image.RGBA {
	const size = ItemSize
	c := render.NewCanvas(size, size)

	body := layout.Box(5, 5, size-5, size-5)
	c.FillRoundedRect(body, 10, cfg.Color.Opaque())
	c.FillRoundedRect(layout.Box(8, 8, size-38, size-38), 8, palette.White.RGBA(80))
	c.FillRoundedRect(layout.Box(10, size-20, size-10, size-10), 5, palette.Dark(cfg.Color).Opaque())
	c.StrokeRoundedRect(body, 10, 3, palette.Black.RGBA(128))

	emblemText := glyph.Printable(cfg.Emblem)
	emblem := resolverOrDefault(r.Fonts).ResolveText(r.EmblemFonts, itemEmblemSize, emblemText)
	c.DrawText(emblemText, size/2, size/2, render.TextStyle{
		Face:   emblem.Face,
		Color:  palette.White.Opaque(),
		Align:  render.TextAlignCenter,
		Anchor: render.AnchorInkMiddle,
	})
	return c.Image()
}
