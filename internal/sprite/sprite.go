// Package sprite composes bin and item sprites from declarative configs.
//
// Renderers are pure: they allocate a fresh transparent canvas per call,
// never touch the filesystem, and never fail. A font that cannot be loaded
// only degrades the glyphs drawn.
package sprite

import (
	"github.com/ecoshredder/spritegen/internal/glyph"
	"github.com/ecoshredder/spritegen/internal/palette"
)

// Canvas sizes per sprite kind.
const (
	BinSize  = 120
	ItemSize = 70
)

// Kind distinguishes the two sprite categories.
type Kind string

const (
	KindBin  Kind = "bin"
	KindItem Kind = "item"
)

// BinConfig describes a waste bin. Name is the output filename stem.
type BinConfig struct {
	Name   string
	Color  palette.RGB
	Emblem string
	Label  string
}

// ItemConfig describes a discardable item. Name is the output filename stem.
type ItemConfig struct {
	Name   string
	Color  palette.RGB
	Emblem string
}

// Font candidates, most preferred first. Names are font file names looked up
// in font directories, or identifiers of embedded fonts.
var (
	EmblemFonts = []string{
		"seguiemj.ttf",
		"NotoEmoji-Regular.ttf",
		"Symbola.ttf",
		"arial.ttf",
		"DejaVuSans.ttf",
		"goregular",
	}
	LabelFonts = []string{
		"arialbd.ttf",
		"DejaVuSans-Bold.ttf",
		"LiberationSans-Bold.ttf",
		"arial.ttf",
		"gobold",
	}
)

func resolverOrDefault(r *glyph.Resolver) *glyph.Resolver {
	if r == nil {
		return glyph.NewResolver()
	}
	return r
}
