package palette

import (
	"fmt"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Multipliers used for shading sprite parts.
const (
	DarkFactor = 0.7
	LidFactor  = 0.8
)

// RGB is an opaque 8-bit color. Alpha is chosen per draw call.
type RGB struct {
	R, G, B uint8
}

// Derive scales every channel by m and truncates toward zero.
// m is expected in (0,1]; results never exceed the input channel.
func Derive(c RGB, m float64) RGB {
	return RGB{R: scale(c.R, m), G: scale(c.G, m), B: scale(c.B, m)}
}

func scale(v uint8, m float64) uint8 {
	out := math.Floor(float64(v) * m)
	if out < 0 {
		return 0
	}
	if out > float64(v) {
		return v
	}
	return uint8(out)
}

// Dark is the shadow/depth variant.
func Dark(c RGB) RGB { return Derive(c, DarkFactor) }

// Lid is the mid-tone variant used for bin lids.
func Lid(c RGB) RGB { return Derive(c, LidFactor) }

// RGBA returns c with the given alpha as a premultiplied color.RGBA.
func (c RGB) RGBA(alpha uint8) color.RGBA {
	if alpha == 0xFF {
		return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
	}
	return color.RGBA{
		R: premultiply(c.R, alpha),
		G: premultiply(c.G, alpha),
		B: premultiply(c.B, alpha),
		A: alpha,
	}
}

func premultiply(v, alpha uint8) uint8 {
	return uint8((uint32(v)*uint32(alpha) + 127) / 255)
}

// Opaque is shorthand for c.RGBA(0xFF).
func (c RGB) Opaque() color.RGBA { return c.RGBA(0xFF) }

// Hex formats c as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.R, c.G, c.B)
}

// ParseHex parses a "#rrggbb" string into an RGB.
func ParseHex(s string) (RGB, error) {
	parsed, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := parsed.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Common colors used by the sprite renderers.
var (
	Black = RGB{}
	White = RGB{R: 0xFF, G: 0xFF, B: 0xFF}
)
