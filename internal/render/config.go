package render

import (
	"image"
	"image/color"
)

// Background is the rounded-square gradient silhouette.
type Background struct {
	Top    color.NRGBA
	Bottom color.NRGBA
	Inset  int // distance from every canvas edge
	Radius int // corner radius
}

// Glow is a translucent ellipse laid over the background.
type Glow struct {
	Bounds image.Rectangle
	Color  color.NRGBA
}

// Ring is the disc framing the play glyph. The outline is drawn inside Bounds.
type Ring struct {
	Bounds  image.Rectangle
	Fill    color.NRGBA
	Outline color.NRGBA
	Width   float64
}

type Glyph struct {
	Points []image.Point
	Color  color.NRGBA
}

type Plate struct {
	Bounds image.Rectangle
	Radius int
	Color  color.NRGBA
}

// Label is drawn with its top-left corner at Origin.
// A nil Font selects the embedded default face.
type Label struct {
	Text   string
	Origin image.Point
	Color  color.NRGBA
	Size   float64 // pixels
	Font   []byte
}

// IconSpec holds every visual parameter of the icon.
type IconSpec struct {
	Size       int
	Background Background
	Glow       Glow
	Ring       Ring
	Glyph      Glyph
	Plate      Plate
	Label      Label
	Smooth     bool
}

// DefaultSpec returns the mytube launcher icon.
func DefaultSpec() IconSpec {
	return IconSpec{
		Size: 1024,
		Background: Background{
			Top:    color.NRGBA{R: 30, G: 90, B: 220, A: 0xFF},
			Bottom: color.NRGBA{R: 70, G: 150, B: 255, A: 0xFF},
			Inset:  40,
			Radius: 220,
		},
		Glow: Glow{
			Bounds: image.Rect(120, 90, 780, 540),
			Color:  color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 40},
		},
		Ring: Ring{
			Bounds:  image.Rect(290, 250, 734, 694),
			Fill:    color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 35},
			Outline: color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 110},
			Width:   8,
		},
		Glyph: Glyph{
			Points: []image.Point{{X: 455, Y: 385}, {X: 455, Y: 560}, {X: 610, Y: 472}},
			Color:  color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 235},
		},
		Plate: Plate{
			Bounds: image.Rect(240, 740, 784, 860),
			Radius: 52,
			Color:  color.NRGBA{R: 30, G: 30, B: 35, A: 120},
		},
		Label: Label{
			Text:   "MYTUBE",
			Origin: image.Pt(325, 770),
			Color:  color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 230},
			Size:   72,
		},
		Smooth: true,
	}
}
