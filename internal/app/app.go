package app

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/rook-computer/mytube-icon/internal/config"
	"github.com/rook-computer/mytube-icon/internal/export"
	"github.com/rook-computer/mytube-icon/internal/preview"
	"github.com/rook-computer/mytube-icon/internal/render"
)

// App runs one render → export pass.
type App struct {
	Config   config.Config
	Render   *render.Renderer
	Export   *export.Exporter
	Logger   Logger
	Out      io.Writer
	Preview  string // framebuffer device; empty disables the preview
	Debug    bool
	previewF func(path string, img image.Image) error
}

func New(cfg config.Config) *App {
	return &App{
		Config:   cfg,
		Render:   render.NewRenderer(),
		Export:   export.NewExporter(),
		Logger:   NoopLogger{},
		Out:      os.Stdout,
		previewF: showPreview,
	}
}

// Run renders the icon, writes every output and prints "done".
// Any failure aborts the run; outputs written before it stay on disk.
func (app *App) Run(ctx context.Context) error {
	if app.Logger == nil {
		app.Logger = NoopLogger{}
	}
	if app.Render == nil {
		app.Render = render.NewRenderer()
	}
	if app.Export == nil {
		app.Export = export.NewExporter()
	}
	app.Render.Logger = app.Logger
	app.Export.Logger = app.Logger

	if err := app.Config.Validate(); err != nil {
		app.Logger.Errorf("app", "invalid config: %v", err)
		return err
	}
	spec, err := app.Config.IconSpec()
	if err != nil {
		return err
	}

	canvas, err := app.Render.Render(spec)
	if err != nil {
		app.Logger.Errorf("app", "render failed: %v", err)
		return fmt.Errorf("render: %w", err)
	}
	app.Logger.Infof("app", "rendered %dx%d", canvas.Bounds().Dx(), canvas.Bounds().Dy())

	written, err := app.Export.ExportAll(ctx, canvas, app.Config.Plan())
	if err != nil {
		app.Logger.Errorf("app", "export failed after %d files: %v", len(written), err)
		return fmt.Errorf("export: %w", err)
	}

	if app.Preview != "" && app.previewF != nil {
		if err := app.previewF(app.Preview, canvas); err != nil {
			app.Logger.Errorf("preview", "framebuffer preview failed: %v", err)
		}
	}

	out := app.Out
	if out == nil {
		out = io.Discard
	}
	if app.Debug {
		for _, w := range written {
			fmt.Fprintf(out, "%s (%dpx)\n", w.Path, w.Size)
		}
	}
	fmt.Fprintln(out, "done")
	return nil
}

func showPreview(path string, img image.Image) error {
	return preview.Show(path, img)
}
