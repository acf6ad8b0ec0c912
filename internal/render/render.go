package render

import (
	"image/color"
)

// Drawer is the primitive set sprite renderers compose with.
// Boxes use exclusive Max coordinates, like image.Rectangle.
type Drawer interface {
	// Size returns the canvas size in pixels.
	Size() (width int, height int)

	FillRect(box Rect, fill color.Color)
	StrokeRect(box Rect, width float32, stroke color.Color)
	FillRoundedRect(box Rect, radius float32, fill color.Color)
	StrokeRoundedRect(box Rect, radius, width float32, stroke color.Color)

	MeasureText(text string, style TextStyle) TextMetrics
	DrawText(text string, x, y int, style TextStyle) TextMetrics
}

type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// TextAnchor selects what y in DrawText refers to.
type TextAnchor int

const (
	// AnchorLineTop places y at the top of the font's ascent.
	AnchorLineTop TextAnchor = iota
	// AnchorInkMiddle places y at the vertical middle of the drawn glyphs.
	AnchorInkMiddle
)

// TextStyle describes how to render text.
// For X, Align controls how x is interpreted against the ink bounds.
type TextStyle struct {
	Face   FontFace
	Color  color.Color
	Align  TextAlign
	Anchor TextAnchor

	// StrokeWidth > 0 draws an outline of StrokeColor around the glyphs first.
	StrokeWidth int
	StrokeColor color.Color
}

// TextMetrics are ink bounds relative to the pen origin, in whole pixels.
type TextMetrics struct {
	Width   int
	Height  int
	MinX    int
	MinY    int
	Ascent  int
	Descent int
	Advance int
}
