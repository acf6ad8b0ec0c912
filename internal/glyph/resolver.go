package glyph

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Tier reports how far down a candidate list resolution had to go.
type Tier int

const (
	// TierPreferred means the first candidate loaded.
	TierPreferred Tier = iota
	// TierSecondary means a later candidate loaded.
	TierSecondary
	// TierFallback means no candidate loaded and the built-in face is used.
	TierFallback
)

func (t Tier) String() string {
	switch t {
	case TierPreferred:
		return "preferred"
	case TierSecondary:
		return "secondary"
	case TierFallback:
		return "fallback"
	default:
		return "tier(" + strconv.Itoa(int(t)) + ")"
	}
}

// FallbackName identifies the built-in face in a Resolution.
const FallbackName = "basicfont-7x13"

// Resolution is the outcome of a font lookup. Face is never nil.
type Resolution struct {
	Face font.Face
	Name string
	Tier Tier
}

// Logger is the subset of the app logger used here.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type loadedFont struct {
	face   font.Face
	covers func(r rune) bool
}

// Resolver picks a usable font face from an ordered candidate list.
// It never fails: when no candidate loads, basicfont.Face7x13 is returned at
// its fixed size regardless of the size requested.
//
// A Resolver caches faces by (candidates, size, text) and is not safe for
// concurrent use.
type Resolver struct {
	Sources []FontSource
	Logger  Logger

	cache map[string]Resolution
}

func NewResolver(sources ...FontSource) *Resolver {
	return &Resolver{Sources: sources}
}

// Resolve returns the first candidate that loads at the given point size.
func (r *Resolver) Resolve(candidates []string, size float64) Resolution {
	return r.resolve(candidates, size, "")
}

// ResolveText is like Resolve but also skips candidates that have no glyph
// for some rune of text, so the result draws visible ink where possible.
func (r *Resolver) ResolveText(candidates []string, size float64, text string) Resolution {
	return r.resolve(candidates, size, text)
}

func (r *Resolver) resolve(candidates []string, size float64, text string) Resolution {
	key := cacheKey(candidates, size, text)
	if res, ok := r.cache[key]; ok {
		return res
	}

	res := Resolution{Face: basicfont.Face7x13, Name: FallbackName, Tier: TierFallback}
	for i, name := range candidates {
		loaded, ok := r.load(name, size)
		if !ok {
			continue
		}
		if !coversText(loaded.covers, text) {
			r.infof("font %s lacks glyphs for %q, trying next", name, text)
			continue
		}
		res = Resolution{Face: loaded.face, Name: name, Tier: TierSecondary}
		if i == 0 {
			res.Tier = TierPreferred
		}
		break
	}
	r.infof("resolved %s at %.0fpt (%s)", res.Name, size, res.Tier)

	if r.cache == nil {
		r.cache = map[string]Resolution{}
	}
	r.cache[key] = res
	return res
}

// load tries every source for name, parsing with opentype first and freetype second.
func (r *Resolver) load(name string, size float64) (loadedFont, bool) {
	for _, src := range r.Sources {
		if src == nil {
			continue
		}
		data, err := src.Load(name)
		if err != nil {
			continue
		}
		if loaded, err := parseOpenType(data, size); err == nil {
			return loaded, true
		} else if r.Logger != nil {
			r.Logger.Errorf("glyph", "opentype parse of %s failed: %v", name, err)
		}
		if loaded, err := parseTrueType(data, size); err == nil {
			return loaded, true
		} else if r.Logger != nil {
			r.Logger.Errorf("glyph", "truetype parse of %s failed: %v", name, err)
		}
	}
	return loadedFont{}, false
}

func parseOpenType(data []byte, size float64) (loadedFont, error) {
	fnt, err := opentype.Parse(data)
	if err != nil {
		return loadedFont{}, err
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return loadedFont{}, err
	}
	var buf sfnt.Buffer
	covers := func(c rune) bool {
		idx, err := fnt.GlyphIndex(&buf, c)
		return err == nil && idx != 0
	}
	return loadedFont{face: face, covers: covers}, nil
}

func parseTrueType(data []byte, size float64) (loadedFont, error) {
	tt, err := truetype.Parse(data)
	if err != nil {
		return loadedFont{}, err
	}
	face := truetype.NewFace(tt, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull})
	covers := func(c rune) bool { return tt.Index(c) != 0 }
	return loadedFont{face: face, covers: covers}, nil
}

// Printable drops variation selectors and zero-width joiners. Outline fonts
// rarely map them and would draw .notdef boxes beside the real glyph, so text
// is passed through Printable before it is resolved, measured or drawn.
func Printable(text string) string {
	return strings.Map(func(c rune) rune {
		if isInvisible(c) {
			return -1
		}
		return c
	}, text)
}

func isInvisible(c rune) bool {
	return unicode.Is(unicode.Variation_Selector, c) || c == '\u200d'
}

func coversText(covers func(rune) bool, text string) bool {
	for _, c := range text {
		if isInvisible(c) || unicode.IsSpace(c) {
			continue
		}
		if !covers(c) {
			return false
		}
	}
	return true
}

func cacheKey(candidates []string, size float64, text string) string {
	return strings.Join(candidates, "\x00") + "\x01" + strconv.FormatFloat(size, 'f', -1, 64) + "\x01" + text
}

func (r *Resolver) infof(format string, args ...interface{}) {
	if r.Logger != nil {
		r.Logger.Infof("glyph", format, args...)
	}
}
