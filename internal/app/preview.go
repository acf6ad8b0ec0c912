package app

import (
	"context"
	"image"
	"time"

	"github.com/ecoshredder/spritegen/internal/render"
	"github.com/ecoshredder/spritegen/internal/system"
)

// Sheet renders the catalog in memory as a captioned preview sheet.
func (app *App) Sheet() *image.RGBA {
	tiles := make([]render.Tile, 0, app.Catalog.Len())
	for _, entry := range app.Catalog.Entries() {
		tiles = append(tiles, render.Tile{Name: entry.Name(), Image: app.Render(entry)})
	}
	return render.ComposeSheet(tiles, nil)
}

// Preview shows the sheet on the framebuffer at device until ctx is done or
// hold elapses (hold <= 0 waits for ctx only). Nothing is written to disk.
func (app *App) Preview(ctx context.Context, device string, hold time.Duration) error {
	sheet := app.Sheet()

	restore := system.EnterGraphicsMode(app.logger())
	defer restore()

	if err := render.ShowOnFramebuffer(device, sheet); err != nil {
		app.logger().Errorf("preview", "framebuffer %s: %v", device, err)
		return err
	}
	app.logger().Infof("preview", "showed %d sprites on %s", app.Catalog.Len(), device)

	if hold <= 0 {
		<-ctx.Done()
		return nil
	}
	timer := time.NewTimer(hold)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
	return nil
}
