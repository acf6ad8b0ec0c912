package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/ecoshredder/spritegen/internal/catalog"
	"github.com/ecoshredder/spritegen/internal/render"
	"github.com/ecoshredder/spritegen/internal/sprite"
)

// ErrPartialBatch is returned when some assets could not be written.
var ErrPartialBatch = errors.New("some assets failed")

type BinRenderer interface {
	Render(cfg sprite.BinConfig) *image.RGBA
}

type ItemRenderer interface {
	Render(cfg sprite.ItemConfig) *image.RGBA
}

// Reporter receives user-facing progress. It owns the console; the renderers never print.
type Reporter interface {
	Start(total int, outDir string)
	Created(kind sprite.Kind, name, path string)
	Failed(kind sprite.Kind, name string, err error)
	Finish(summary Summary)
}

type NoopReporter struct{}

func (NoopReporter) Start(int, string)                   {}
func (NoopReporter) Created(sprite.Kind, string, string) {}
func (NoopReporter) Failed(sprite.Kind, string, error)   {}
func (NoopReporter) Finish(Summary)                      {}

// Failure records one asset that could not be written.
type Failure struct {
	Name string
	Err  error
}

// Summary is the outcome of a batch run.
type Summary struct {
	OutDir  string
	Written []string
	Failed  []Failure
}

// App is the batch driver: it renders every catalog entry and writes
// <OutDir>/<name>.png, overwriting existing files.
type App struct {
	Catalog  catalog.Catalog
	Bins     BinRenderer
	Items    ItemRenderer
	OutDir   string
	Logger   Logger
	Reporter Reporter
}

func New(cat catalog.Catalog, bins BinRenderer, items ItemRenderer, outDir string) *App {
	return &App{Catalog: cat, Bins: bins, Items: items, OutDir: outDir, Logger: NoopLogger{}, Reporter: NoopReporter{}}
}

// Generate renders and writes the whole catalog. A write failure skips that
// asset and the run continues; the returned error then wraps ErrPartialBatch.
// Failure to create the output directory or cancellation aborts the run.
func (app *App) Generate(ctx context.Context) (Summary, error) {
	logger := app.logger()
	reporter := app.reporter()
	summary := Summary{OutDir: app.OutDir}

	if err := app.Catalog.Validate(); err != nil {
		return summary, err
	}
	if app.Bins == nil || app.Items == nil {
		return summary, errors.New("renderers not configured")
	}
	if err := os.MkdirAll(app.OutDir, 0o755); err != nil {
		logger.Errorf("app", "create output dir %s: %v", app.OutDir, err)
		return summary, fmt.Errorf("create output dir: %w", err)
	}

	reporter.Start(app.Catalog.Len(), app.OutDir)
	for _, entry := range app.Catalog.Entries() {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		name := entry.Name()
		path := OutputPath(app.OutDir, name)
		if err := app.writeEntry(entry, path); err != nil {
			logger.Errorf("app", "%s %s: %v", entry.Kind, name, err)
			summary.Failed = append(summary.Failed, Failure{Name: name, Err: err})
			reporter.Failed(entry.Kind, name, err)
			continue
		}
		logger.Infof("app", "wrote %s", path)
		summary.Written = append(summary.Written, path)
		reporter.Created(entry.Kind, name, path)
	}
	reporter.Finish(summary)

	if len(summary.Failed) > 0 {
		return summary, fmt.Errorf("%d of %d: %w", len(summary.Failed), app.Catalog.Len(), ErrPartialBatch)
	}
	return summary, nil
}

// Render returns the raster for one entry without writing it.
func (app *App) Render(entry catalog.Entry) *image.RGBA {
	if entry.Kind == sprite.KindBin {
		return app.Bins.Render(entry.Bin)
	}
	return app.Items.Render(entry.Item)
}

func (app *App) writeEntry(entry catalog.Entry, path string) error {
	data, err := render.PNGBytes(app.Render(entry))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// OutputPath is where the sprite called name is written.
func OutputPath(outDir, name string) string {
	return filepath.Join(outDir, name+".png")
}

func (app *App) logger() Logger {
	if app.Logger == nil {
		return NoopLogger{}
	}
	return app.Logger
}

func (app *App) reporter() Reporter {
	if app.Reporter == nil {
		return NoopReporter{}
	}
	return app.Reporter
}
