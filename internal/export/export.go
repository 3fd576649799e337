package export

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	ico "github.com/sergeymakinen/go-ico"
)

// Target is one density bucket. All targets share Plan.FileName.
type Target struct {
	Dir  string
	Size int
}

// Plan describes where every exported file goes.
type Plan struct {
	FullRes  string // full-resolution PNG, written verbatim
	ResRoot  string // parent of every Target.Dir
	FileName string
	Targets  []Target
	Filter   string
	ICO      string // optional Windows icon; empty disables it
}

// icoSize is the largest image the ICO container stores natively.
const icoSize = 256

// DefaultPlan returns the Android launcher layout relative to the working directory.
func DefaultPlan() Plan {
	return Plan{
		FullRes:  filepath.Join("assets", "icons", "mytube_icon_1024.png"),
		ResRoot:  filepath.Join("android", "app", "src", "main", "res"),
		FileName: "ic_launcher.png",
		Targets: []Target{
			{Dir: "mipmap-mdpi", Size: 48},
			{Dir: "mipmap-hdpi", Size: 72},
			{Dir: "mipmap-xhdpi", Size: 96},
			{Dir: "mipmap-xxhdpi", Size: 144},
			{Dir: "mipmap-xxxhdpi", Size: 192},
		},
		Filter: FilterLanczos,
	}
}

// Path returns the output file for t.
func (p Plan) Path(t Target) string {
	return filepath.Join(p.ResRoot, t.Dir, p.FileName)
}

// Validate rejects plans that would write ambiguous or empty outputs.
func (p Plan) Validate() error {
	if p.FullRes == "" {
		return fmt.Errorf("full-resolution output path is empty")
	}
	if p.FileName == "" {
		return fmt.Errorf("target file name is empty")
	}
	if _, err := ParseFilter(p.Filter); err != nil {
		return err
	}
	seen := make(map[string]bool, len(p.Targets))
	for _, t := range p.Targets {
		if t.Size <= 0 {
			return fmt.Errorf("target %q: size must be positive (got %d)", t.Dir, t.Size)
		}
		if seen[t.Dir] {
			return fmt.Errorf("target %q listed twice", t.Dir)
		}
		seen[t.Dir] = true
	}
	return nil
}

// Written records one file produced by ExportAll.
type Written struct {
	Path string
	Size int
}

// Exporter writes a finished canvas and its resized copies.
type Exporter struct {
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

func NewExporter() *Exporter { return &Exporter{} }

// ExportAll writes the full-resolution canvas followed by every target in
// order. The first failure stops the run; files already written are left in
// place.
func (e *Exporter) ExportAll(ctx context.Context, canvas image.Image, plan Plan) ([]Written, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	var written []Written

	if err := savePNG(plan.FullRes, canvas); err != nil {
		return written, err
	}
	written = append(written, Written{Path: plan.FullRes, Size: canvas.Bounds().Dx()})
	e.infof("wrote %s", plan.FullRes)

	for _, t := range plan.Targets {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		resized, err := Resize(canvas, t.Size, plan.Filter)
		if err != nil {
			return written, fmt.Errorf("%s: %w", t.Dir, err)
		}
		path := plan.Path(t)
		if err := savePNG(path, resized); err != nil {
			return written, err
		}
		written = append(written, Written{Path: path, Size: t.Size})
		e.infof("wrote %s (%dpx)", path, t.Size)
	}

	if plan.ICO != "" {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		if err := saveICO(plan.ICO, canvas, plan.Filter); err != nil {
			return written, err
		}
		written = append(written, Written{Path: plan.ICO, Size: icoSize})
		e.infof("wrote %s", plan.ICO)
	}
	return written, nil
}

func savePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func saveICO(path string, canvas image.Image, filter string) error {
	img, err := Resize(canvas, icoSize, filter)
	if err != nil {
		return fmt.Errorf("ico: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := ico.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

func (e *Exporter) infof(format string, args ...interface{}) {
	if e.Logger != nil {
		e.Logger.Infof("export", format, args...)
	}
}
