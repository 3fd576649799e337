package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// kappa places cubic control points so four segments approximate a circle.
const kappa = 0.5522847498

// RoundedRectMask returns a single-channel mask of the given bounds that is
// opaque inside rect with corners rounded by radius.
func RoundedRectMask(bounds, rect image.Rectangle, radius int) *image.Alpha {
	mask := image.NewAlpha(bounds)
	z := newRasterizer(bounds)
	roundedRectPath(z, bounds, rect, float32(radius))
	z.Draw(mask, bounds, image.Opaque, bounds.Min)
	return mask
}

// FillRoundedRect composites c over dst inside a rounded rectangle.
func FillRoundedRect(dst draw.Image, rect image.Rectangle, radius int, c color.NRGBA) {
	b := dst.Bounds()
	z := newRasterizer(b)
	roundedRectPath(z, b, rect, float32(radius))
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// FillEllipse composites c over dst inside the ellipse inscribed in rect.
func FillEllipse(dst draw.Image, rect image.Rectangle, c color.NRGBA) {
	b := dst.Bounds()
	z := newRasterizer(b)
	cx, cy, rx, ry := ellipseGeometry(b, rect)
	ellipsePath(z, cx, cy, rx, ry, false)
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// StrokeEllipse composites a band of the given width along the inside edge
// of the ellipse inscribed in rect.
func StrokeEllipse(dst draw.Image, rect image.Rectangle, width float64, c color.NRGBA) {
	if width <= 0 {
		return
	}
	b := dst.Bounds()
	z := newRasterizer(b)
	cx, cy, rx, ry := ellipseGeometry(b, rect)
	ellipsePath(z, cx, cy, rx, ry, false)
	w := float32(width)
	if w < rx && w < ry {
		// Opposite winding cancels the inner area.
		ellipsePath(z, cx, cy, rx-w, ry-w, true)
	}
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// FillPolygon composites c over dst inside the closed polygon pts.
func FillPolygon(dst draw.Image, pts []image.Point, c color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	b := dst.Bounds()
	z := newRasterizer(b)
	z.MoveTo(float32(pts[0].X-b.Min.X), float32(pts[0].Y-b.Min.Y))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X-b.Min.X), float32(p.Y-b.Min.Y))
	}
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

func newRasterizer(bounds image.Rectangle) *vector.Rasterizer {
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	z.DrawOp = draw.Over
	return z
}

// roundedRectPath adds rect to z in rasterizer coordinates (relative to bounds.Min).
func roundedRectPath(z *vector.Rasterizer, bounds, rect image.Rectangle, r float32) {
	rect = rect.Canon()
	x0 := float32(rect.Min.X - bounds.Min.X)
	y0 := float32(rect.Min.Y - bounds.Min.Y)
	x1 := float32(rect.Max.X - bounds.Min.X)
	y1 := float32(rect.Max.Y - bounds.Min.Y)
	if half := (x1 - x0) / 2; r > half {
		r = half
	}
	if half := (y1 - y0) / 2; r > half {
		r = half
	}
	if r < 0 {
		r = 0
	}
	k := r * kappa

	z.MoveTo(x0+r, y0)
	z.LineTo(x1-r, y0)
	z.CubeTo(x1-r+k, y0, x1, y0+r-k, x1, y0+r)
	z.LineTo(x1, y1-r)
	z.CubeTo(x1, y1-r+k, x1-r+k, y1, x1-r, y1)
	z.LineTo(x0+r, y1)
	z.CubeTo(x0+r-k, y1, x0, y1-r+k, x0, y1-r)
	z.LineTo(x0, y0+r)
	z.CubeTo(x0, y0+r-k, x0+r-k, y0, x0+r, y0)
	z.ClosePath()
}

func ellipseGeometry(bounds, rect image.Rectangle) (cx, cy, rx, ry float32) {
	rect = rect.Canon()
	cx = float32(rect.Min.X+rect.Max.X)/2 - float32(bounds.Min.X)
	cy = float32(rect.Min.Y+rect.Max.Y)/2 - float32(bounds.Min.Y)
	rx = float32(rect.Dx()) / 2
	ry = float32(rect.Dy()) / 2
	return cx, cy, rx, ry
}

// ellipsePath adds a closed ellipse to z. reverse flips the winding direction.
func ellipsePath(z *vector.Rasterizer, cx, cy, rx, ry float32, reverse bool) {
	kx, ky := rx*kappa, ry*kappa
	z.MoveTo(cx+rx, cy)
	if !reverse {
		z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
		z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
		z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
		z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	} else {
		z.CubeTo(cx+rx, cy-ky, cx+kx, cy-ry, cx, cy-ry)
		z.CubeTo(cx-kx, cy-ry, cx-rx, cy-ky, cx-rx, cy)
		z.CubeTo(cx-rx, cy+ky, cx-kx, cy+ry, cx, cy+ry)
		z.CubeTo(cx+kx, cy+ry, cx+rx, cy+ky, cx+rx, cy)
	}
	z.ClosePath()
}
