package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ecoshredder/spritegen/internal/palette"
	"github.com/ecoshredder/spritegen/internal/sprite"
	"gopkg.in/yaml.v3"
)

func TestDefault(t *testing.T) {
	cat, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cat.Bins) != 4 {
		t.Errorf("expected 4 bins, got %d", len(cat.Bins))
	}
	if len(cat.Items) != 7 {
		t.Errorf("expected 7 items, got %d", len(cat.Items))
	}

	compost := cat.Bins[0]
	if compost.Name != "bin_compost" || compost.Label != "COMPOST" || compost.Emblem != "♻" {
		t.Errorf("unexpected first bin %+v", compost)
	}
	if compost.Color != (palette.RGB{R: 39, G: 174, B: 96}) {
		t.Errorf("unexpected compost color %v", compost.Color)
	}
	if cat.Items[1].Name != "item_banana_peel" || cat.Items[1].Color != (palette.RGB{R: 241, G: 196, B: 15}) {
		t.Errorf("unexpected banana peel entry %+v", cat.Items[1])
	}
}

func TestEntries_OrderAndKinds(t *testing.T) {
	cat, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	entries := cat.Entries()
	if len(entries) != cat.Len() {
		t.Fatalf("expected %d entries, got %d", cat.Len(), len(entries))
	}
	if entries[0].Kind != sprite.KindBin || entries[0].Name() != "bin_compost" {
		t.Errorf("expected bins first, got %s %q", entries[0].Kind, entries[0].Name())
	}
	last := entries[len(entries)-1]
	if last.Kind != sprite.KindItem || last.Name() != "item_coffee_cup" {
		t.Errorf("expected items last, got %s %q", last.Kind, last.Name())
	}
}

func TestParse_HexColor(t *testing.T) {
	data := `
bins:
  - name: bin_glass
    color: "#95a5a6"
    emblem: "G"
    label: GLASS
`
	cat, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.Bins[0].Color != (palette.RGB{R: 149, G: 165, B: 166}) {
		t.Errorf("unexpected color %v", cat.Bins[0].Color)
	}
	if len(cat.Items) != 0 {
		t.Errorf("expected no items, got %d", len(cat.Items))
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
		substr  string
	}{
		{
			name: "duplicate across kinds",
			data: `
bins:
  - {name: same, color: [1, 2, 3], emblem: "x", label: A}
items:
  - {name: same, color: [1, 2, 3], emblem: "y"}
`,
			wantErr: ErrDuplicateName,
		},
		{
			name:    "empty name",
			data:    `items: [{name: "", color: [1, 2, 3], emblem: "y"}]`,
			wantErr: ErrInvalidEntry,
		},
		{
			name:    "path in name",
			data:    `items: [{name: "../escape", color: [1, 2, 3], emblem: "y"}]`,
			wantErr: ErrInvalidEntry,
		},
		{
			name:    "empty emblem",
			data:    `items: [{name: cup, color: [1, 2, 3], emblem: ""}]`,
			wantErr: ErrInvalidEntry,
		},
		{
			name:    "missing label",
			data:    `bins: [{name: b, color: [1, 2, 3], emblem: "x"}]`,
			wantErr: ErrInvalidEntry,
		},
		{
			name:    "lowercase label",
			data:    `bins: [{name: b, color: [1, 2, 3], emblem: "x", label: paper}]`,
			wantErr: ErrInvalidEntry,
		},
		{
			name:   "channel out of range",
			data:   `items: [{name: cup, color: [1, 2, 300], emblem: "y"}]`,
			substr: "out of range",
		},
		{
			name:   "two channels",
			data:   `items: [{name: cup, color: [1, 2], emblem: "y"}]`,
			substr: "3 channels",
		},
		{
			name:   "bad hex",
			data:   `items: [{name: cup, color: "teal", emblem: "y"}]`,
			substr: "parse color",
		},
		{
			name:   "mapping color",
			data:   `items: [{name: cup, color: {r: 1}, emblem: "y"}]`,
			substr: "color must be",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.substr != "" && !strings.Contains(err.Error(), tt.substr) {
				t.Errorf("expected error containing %q, got %v", tt.substr, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sprites.yml")
	data := "items:\n  - name: item_can\n    color: [231, 76, 60]\n    emblem: \"C\"\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cat.Len() != 1 || cat.Items[0].Name != "item_can" {
		t.Errorf("unexpected catalog %+v", cat)
	}

	if _, err := Load(filepath.Join(dir, "missing.yml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestColor_MarshalsAsHex(t *testing.T) {
	out, err := yaml.Marshal(map[string]Color{"c": {R: 39, G: 174, B: 96}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "#27ae60") {
		t.Errorf("expected hex color, got %s", out)
	}
}
