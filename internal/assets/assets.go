package assets

import (
	_ "embed"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// CatalogYAML is the built-in sprite table.
//
//go:embed catalog.yaml
var CatalogYAML []byte

// Fonts are compiled-in font files keyed by the identifier used in font
// candidate lists. They keep label text readable on hosts with no system fonts.
var Fonts = map[string][]byte{
	"gobold":    gobold.TTF,
	"goregular": goregular.TTF,
}
