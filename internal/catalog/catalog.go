package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ecoshredder/spritegen/internal/assets"
	"github.com/ecoshredder/spritegen/internal/palette"
	"github.com/ecoshredder/spritegen/internal/sprite"
	"gopkg.in/yaml.v3"
)

var (
	ErrDuplicateName = errors.New("duplicate sprite name")
	ErrInvalidEntry  = errors.New("invalid sprite entry")
)

// Catalog is the immutable table of sprites to generate.
type Catalog struct {
	Bins  []sprite.BinConfig
	Items []sprite.ItemConfig
}

// Entry is one catalog row; exactly one of Bin or Item is meaningful per Kind.
type Entry struct {
	Kind sprite.Kind
	Bin  sprite.BinConfig
	Item sprite.ItemConfig
}

func (e Entry) Name() string {
	if e.Kind == sprite.KindBin {
		return e.Bin.Name
	}
	return e.Item.Name
}

func (e Entry) Color() palette.RGB {
	if e.Kind == sprite.KindBin {
		return e.Bin.Color
	}
	return e.Item.Color
}

func (e Entry) Emblem() string {
	if e.Kind == sprite.KindBin {
		return e.Bin.Emblem
	}
	return e.Item.Emblem
}

// Entries returns bins then items, each in table order.
func (c Catalog) Entries() []Entry {
	out := make([]Entry, 0, c.Len())
	for _, b := range c.Bins {
		out = append(out, Entry{Kind: sprite.KindBin, Bin: b})
	}
	for _, it := range c.Items {
		out = append(out, Entry{Kind: sprite.KindItem, Item: it})
	}
	return out
}

func (c Catalog) Len() int { return len(c.Bins) + len(c.Items) }

// Validate checks every entry and that names are unique across bins and items,
// since names become output filenames.
func (c Catalog) Validate() error {
	seen := map[string]sprite.Kind{}
	for _, e := range c.Entries() {
		name := e.Name()
		if err := validateName(name); err != nil {
			return fmt.Errorf("%s %q: %w", e.Kind, name, err)
		}
		if prev, dup := seen[name]; dup {
			return fmt.Errorf("%s %q also used by a %s: %w", e.Kind, name, prev, ErrDuplicateName)
		}
		seen[name] = e.Kind

		if strings.TrimSpace(e.Emblem()) == "" {
			return fmt.Errorf("%s %q: empty emblem: %w", e.Kind, name, ErrInvalidEntry)
		}
		if e.Kind == sprite.KindBin {
			label := e.Bin.Label
			if strings.TrimSpace(label) == "" {
				return fmt.Errorf("bin %q: empty label: %w", name, ErrInvalidEntry)
			}
			if label != strings.ToUpper(label) {
				return fmt.Errorf("bin %q: label %q must be uppercase: %w", name, label, ErrInvalidEntry)
			}
		}
	}
	return nil
}

func validateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("empty name: %w", ErrInvalidEntry)
	case name == "." || name == "..":
		return fmt.Errorf("reserved name: %w", ErrInvalidEntry)
	case strings.ContainsAny(name, `/\:`) || strings.ContainsRune(name, 0):
		return fmt.Errorf("name must not contain path separators: %w", ErrInvalidEntry)
	}
	return nil
}

// Default parses the built-in table.
func Default() (Catalog, error) {
	cat, err := Parse(assets.CatalogYAML)
	if err != nil {
		return Catalog{}, fmt.Errorf("built-in catalog: %w", err)
	}
	return cat, nil
}

// Load reads and validates a YAML catalog file.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	cat, err := Parse(data)
	if err != nil {
		return Catalog{}, fmt.Errorf("catalog %s: %w", path, err)
	}
	return cat, nil
}

// Parse decodes and validates a YAML catalog document.
func Parse(data []byte) (Catalog, error) {
	var doc fileCatalog
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog YAML: %w", err)
	}
	cat := Catalog{
		Bins:  make([]sprite.BinConfig, 0, len(doc.Bins)),
		Items: make([]sprite.ItemConfig, 0, len(doc.Items)),
	}
	for _, b := range doc.Bins {
		cat.Bins = append(cat.Bins, sprite.BinConfig{Name: b.Name, Color: palette.RGB(b.Color), Emblem: b.Emblem, Label: b.Label})
	}
	for _, it := range doc.Items {
		cat.Items = append(cat.Items, sprite.ItemConfig{Name: it.Name, Color: palette.RGB(it.Color), Emblem: it.Emblem})
	}
	if err := cat.Validate(); err != nil {
		return Catalog{}, err
	}
	return cat, nil
}
