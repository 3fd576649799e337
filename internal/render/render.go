package render

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/rook-computer/mytube-icon/internal/render/layout"
	xdraw "golang.org/x/image/draw"
)

// Renderer draws an IconSpec onto an offscreen canvas.
type Renderer struct {
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

func NewRenderer() *Renderer { return &Renderer{} }

// Render builds the finished icon. Layers are composited in order, each one
// over the last; the result is never modified afterwards.
func (r *Renderer) Render(spec IconSpec) (*image.NRGBA, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	bounds := image.Rect(0, 0, spec.Size, spec.Size)
	canvas := image.NewRGBA(bounds)

	bg := spec.Background
	gradient := Gradient(spec.Size, bg.Top, bg.Bottom)
	mask := RoundedRectMask(bounds, layout.Inset(bounds, bg.Inset), bg.Radius)
	xdraw.DrawMask(canvas, bounds, gradient, image.Point{}, mask, image.Point{}, xdraw.Over)
	r.infof("background composited, inset=%d radius=%d", bg.Inset, bg.Radius)

	FillEllipse(canvas, spec.Glow.Bounds, spec.Glow.Color)

	FillEllipse(canvas, spec.Ring.Bounds, spec.Ring.Fill)
	StrokeEllipse(canvas, spec.Ring.Bounds, spec.Ring.Width, spec.Ring.Outline)

	FillPolygon(canvas, spec.Glyph.Points, spec.Glyph.Color)

	FillRoundedRect(canvas, spec.Plate.Bounds, spec.Plate.Radius, spec.Plate.Color)
	if spec.Label.Text != "" {
		face := r.loadFace(spec.Label.Font, spec.Label.Size)
		w, h := MeasureLabel(spec.Label.Text, face)
		r.infof("label %q is %dx%d at %v", spec.Label.Text, w, h, spec.Label.Origin)
		if err := DrawLabel(canvas, spec.Label.Text, spec.Label.Origin, spec.Label.Color, face); err != nil {
			return nil, fmt.Errorf("draw label: %w", err)
		}
	}
	r.infof("layers composited")

	if !spec.Smooth {
		return imaging.Clone(canvas), nil
	}
	out := Smooth(canvas)
	r.infof("smoothing pass done")
	return out, nil
}

// Validate reports parameters that cannot produce an icon.
func (spec IconSpec) Validate() error {
	if spec.Size <= 0 {
		return fmt.Errorf("icon size must be positive (got %d)", spec.Size)
	}
	if spec.Background.Inset < 0 || 2*spec.Background.Inset >= spec.Size {
		return fmt.Errorf("background inset %d does not fit a %dpx canvas", spec.Background.Inset, spec.Size)
	}
	if spec.Background.Radius < 0 || spec.Plate.Radius < 0 {
		return errors.New("corner radius must not be negative")
	}
	if spec.Ring.Width < 0 {
		return fmt.Errorf("ring width must not be negative (got %v)", spec.Ring.Width)
	}
	if len(spec.Glyph.Points) < 3 {
		return fmt.Errorf("glyph needs at least 3 points (got %d)", len(spec.Glyph.Points))
	}
	return nil
}

func (r *Renderer) infof(format string, args ...interface{}) {
	if r.Logger != nil {
		r.Logger.Infof("render", format, args...)
	}
}

func (r *Renderer) errorf(format string, args ...interface{}) {
	if r.Logger != nil {
		r.Logger.Errorf("render", format, args...)
	}
}
