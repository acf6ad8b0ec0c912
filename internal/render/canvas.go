package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// FontFace is the face type text is drawn with.
type FontFace = font.Face

// Rect is an axis-aligned box in pixel space with exclusive Max.
type Rect = image.Rectangle

// cornerSteps is how many segments approximate a quarter circle.
const cornerSteps = 16

// Canvas is an in-memory RGBA surface. Every draw composites with draw.Over.
type Canvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

var _ Drawer = (*Canvas)(nil)

// NewCanvas returns a fully transparent canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		z:   vector.NewRasterizer(width, height),
	}
}

func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) FillRect(box Rect, fill color.Color) {
	draw.Draw(c.img, box.Intersect(c.img.Bounds()), image.NewUniform(fill), image.Point{}, draw.Over)
}

// StrokeRect outlines box with a band of width pixels drawn inward.
func (c *Canvas) StrokeRect(box Rect, width float32, stroke color.Color) {
	c.StrokeRoundedRect(box, 0, width, stroke)
}

func (c *Canvas) FillRoundedRect(box Rect, radius float32, fill color.Color) {
	if box.Empty() {
		return
	}
	c.resetRasterizer()
	addRoundedRect(c.z, box, radius, false)
	c.rasterize(fill)
}

// StrokeRoundedRect outlines box with a band of width pixels drawn inward,
// following the corner radius.
func (c *Canvas) StrokeRoundedRect(box Rect, radius, width float32, stroke color.Color) {
	if box.Empty() || width <= 0 {
		return
	}
	c.resetRasterizer()
	addRoundedRect(c.z, box, radius, false)
	// The band swallows the whole box when the inner edges meet or cross.
	w := int(math.Round(float64(width)))
	minX, minY := box.Min.X+w, box.Min.Y+w
	maxX, maxY := box.Max.X-w, box.Max.Y-w
	if minX < maxX && minY < maxY {
		innerRadius := radius - width
		if innerRadius < 0 {
			innerRadius = 0
		}
		addRoundedRect(c.z, image.Rect(minX, minY, maxX, maxY), innerRadius, true)
	}
	c.rasterize(stroke)
}

func (c *Canvas) resetRasterizer() {
	w, h := c.Size()
	c.z.Reset(w, h)
	c.z.DrawOp = draw.Over
}

func (c *Canvas) rasterize(col color.Color) {
	c.z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// addRoundedRect appends a closed rounded rectangle, clockwise unless reverse.
// Opposite windings cancel, which is how strokes cut their hole.
func addRoundedRect(z *vector.Rasterizer, box Rect, radius float32, reverse bool) {
	pts := roundedRectPoints(box, radius)
	if reverse {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	z.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		z.LineTo(p[0], p[1])
	}
	z.ClosePath()
}

func roundedRectPoints(box Rect, radius float32) [][2]float32 {
	x0, y0 := float32(box.Min.X), float32(box.Min.Y)
	x1, y1 := float32(box.Max.X), float32(box.Max.Y)
	maxRadius := (x1 - x0) / 2
	if h := (y1 - y0) / 2; h < maxRadius {
		maxRadius = h
	}
	if radius > maxRadius {
		radius = maxRadius
	}
	if radius <= 0 {
		return [][2]float32{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
	}

	// Corner centers in clockwise order starting top-right, with the start angle of each arc.
	corners := []struct {
		cx, cy float32
		start  float64
	}{
		{x1 - radius, y0 + radius, -math.Pi / 2},
		{x1 - radius, y1 - radius, 0},
		{x0 + radius, y1 - radius, math.Pi / 2},
		{x0 + radius, y0 + radius, math.Pi},
	}
	pts := make([][2]float32, 0, 4*(cornerSteps+1))
	for _, corner := range corners {
		for i := 0; i <= cornerSteps; i++ {
			a := corner.start + (math.Pi/2)*float64(i)/cornerSteps
			pts = append(pts, [2]float32{
				corner.cx + radius*float32(math.Cos(a)),
				corner.cy + radius*float32(math.Sin(a)),
			})
		}
	}
	return pts
}

// MeasureText returns the ink bounds of text drawn with style.Face.
func (c *Canvas) MeasureText(text string, style TextStyle) TextMetrics {
	return measure(style.Face, text)
}

func measure(face font.Face, text string) TextMetrics {
	bounds, advance := font.BoundString(face, text)
	metrics := face.Metrics()
	m := TextMetrics{
		MinX:    bounds.Min.X.Floor(),
		MinY:    bounds.Min.Y.Floor(),
		Ascent:  metrics.Ascent.Ceil(),
		Descent: metrics.Descent.Ceil(),
		Advance: advance.Ceil(),
	}
	m.Width = bounds.Max.X.Ceil() - m.MinX
	m.Height = bounds.Max.Y.Ceil() - m.MinY
	return m
}

// DrawText draws text so that its ink is aligned to x per style.Align and
// to y per style.Anchor. It returns the measured metrics.
func (c *Canvas) DrawText(text string, x, y int, style TextStyle) TextMetrics {
	if style.Face == nil || text == "" {
		return TextMetrics{}
	}
	m := measure(style.Face, text)

	var dotX int
	switch style.Align {
	case TextAlignCenter:
		dotX = x - m.Width/2 - m.MinX
	case TextAlignRight:
		dotX = x - m.Width - m.MinX
	default:
		dotX = x - m.MinX
	}

	var dotY int
	switch style.Anchor {
	case AnchorInkMiddle:
		dotY = y - m.Height/2 - m.MinY
	default:
		dotY = y + m.Ascent
	}

	if style.StrokeWidth > 0 {
		strokeColor := style.StrokeColor
		if strokeColor == nil {
			strokeColor = color.Black
		}
		s := style.StrokeWidth
		for dy := -s; dy <= s; dy++ {
			for dx := -s; dx <= s; dx++ {
				if (dx == 0 && dy == 0) || dx*dx+dy*dy > s*s {
					continue
				}
				c.drawString(text, style.Face, strokeColor, dotX+dx, dotY+dy)
			}
		}
	}
	fill := style.Color
	if fill == nil {
		fill = color.White
	}
	c.drawString(text, style.Face, fill, dotX, dotY)
	return m
}

func (c *Canvas) drawString(text string, face font.Face, col color.Color, x, y int) {
	drawer := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	drawer.DrawString(text)
}
