package report

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/ecoshredder/spritegen/internal/app"
	"github.com/ecoshredder/spritegen/internal/sprite"
)

// Console prints one line per asset and a final count.
// The format is for people only.
type Console struct {
	W io.Writer
}

var _ app.Reporter = (*Console)(nil)

func NewConsole(w io.Writer) *Console { return &Console{W: w} }

func (c *Console) Start(total int, outDir string) {
	fmt.Fprintln(c.W, headerStyle.Render(fmt.Sprintf("Generating %d game assets into %s", total, outDir)))
	fmt.Fprintln(c.W)
}

func (c *Console) Created(kind sprite.Kind, name, path string) {
	fmt.Fprintf(c.W, "%s %s %s\n", okStyle.Render("created"), filepath.Base(path), mutedStyle.Render("("+string(kind)+")"))
}

func (c *Console) Failed(kind sprite.Kind, name string, err error) {
	fmt.Fprintf(c.W, "%s %s.png: %v\n", failStyle.Render("failed"), name, err)
}

func (c *Console) Finish(summary app.Summary) {
	fmt.Fprintln(c.W)
	line := fmt.Sprintf("Generated %d images in %s", len(summary.Written), summary.OutDir)
	if n := len(summary.Failed); n > 0 {
		line += fmt.Sprintf(", %d failed", n)
	}
	fmt.Fprintln(c.W, summaryStyle.Render(line))
}

// PrintCatalog writes a table of entries without rendering anything.
func PrintCatalog(w io.Writer, rows []Row) {
	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-6s %-22s %-8s %-6s %s", "KIND", "NAME", "COLOR", "EMBLEM", "LABEL")))
	for _, r := range rows {
		fmt.Fprintf(w, "%-6s %-22s %-8s %-6s %s\n", r.Kind, r.Name, r.Color, r.Emblem, r.Label)
	}
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("%d entries", len(rows))))
}

// Row is one line of PrintCatalog output.
type Row struct {
	Kind   sprite.Kind
	Name   string
	Color  string
	Emblem string
	Label  string
}
