package render

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

var white = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

func TestRoundedRectMask(t *testing.T) {
	bounds := image.Rect(0, 0, 1024, 1024)
	mask := RoundedRectMask(bounds, image.Rect(40, 40, 984, 984), 220)

	tests := []struct {
		p    image.Point
		want uint8
	}{
		{image.Pt(0, 0), 0},
		{image.Pt(41, 41), 0},
		{image.Pt(39, 512), 0},
		{image.Pt(40, 512), 0xFF},
		{image.Pt(512, 512), 0xFF},
		{image.Pt(512, 983), 0xFF},
		{image.Pt(512, 984), 0},
		{image.Pt(260, 41), 0xFF},
	}
	for _, tt := range tests {
		if got := mask.AlphaAt(tt.p.X, tt.p.Y).A; got != tt.want {
			t.Errorf("mask at %v = %d, want %d", tt.p, got, tt.want)
		}
	}
}

func TestRoundedRectMaskClampsRadius(t *testing.T) {
	bounds := image.Rect(0, 0, 100, 100)
	mask := RoundedRectMask(bounds, bounds, 1000)
	if mask.AlphaAt(50, 50).A != 0xFF {
		t.Error("center of over-rounded rect is not opaque")
	}
	if mask.AlphaAt(2, 2).A != 0 {
		t.Error("corner of over-rounded rect is not transparent")
	}
}

func TestStrokeEllipseLeavesHole(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	StrokeEllipse(dst, dst.Bounds(), 8, white)

	if a := dst.RGBAAt(50, 50).A; a != 0 {
		t.Errorf("ring center alpha = %d, want 0", a)
	}
	if a := dst.RGBAAt(50, 3).A; a != 0xFF {
		t.Errorf("ring band alpha = %d, want 255", a)
	}
	if a := dst.RGBAAt(50, 20).A; a != 0 {
		t.Errorf("inside ring alpha = %d, want 0", a)
	}
}

func TestStrokeEllipseZeroWidth(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 20, 20))
	StrokeEllipse(dst, dst.Bounds(), 0, white)
	for _, v := range dst.Pix {
		if v != 0 {
			t.Fatal("zero-width stroke drew pixels")
		}
	}
}

func TestFillEllipseBlends(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	FillEllipse(dst, dst.Bounds(), color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x80})

	c := dst.RGBAAt(50, 50)
	if c.A != 0xFF {
		t.Errorf("alpha = %d, want 255", c.A)
	}
	if c.R < 0x7E || c.R > 0x82 {
		t.Errorf("red = %d, want about 128", c.R)
	}
	if dst.RGBAAt(1, 1) != (color.RGBA{A: 0xFF}) {
		t.Errorf("outside ellipse changed: %v", dst.RGBAAt(1, 1))
	}
}

func TestFillPolygon(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	FillPolygon(dst, []image.Point{{10, 10}, {10, 90}, {90, 50}}, white)

	if a := dst.RGBAAt(30, 50).A; a != 0xFF {
		t.Errorf("inside triangle alpha = %d, want 255", a)
	}
	if a := dst.RGBAAt(80, 15).A; a != 0 {
		t.Errorf("outside triangle alpha = %d, want 0", a)
	}
}

func TestFillPolygonNeedsThreePoints(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	FillPolygon(dst, []image.Point{{0, 0}, {9, 9}}, white)
	for _, v := range dst.Pix {
		if v != 0 {
			t.Fatal("degenerate polygon drew pixels")
		}
	}
}

func TestGradientEndpointsAndTruncation(t *testing.T) {
	spec := DefaultSpec()
	top, bottom := spec.Background.Top, spec.Background.Bottom

	img := Gradient(1024, top, bottom)
	if got := img.RGBAAt(0, 0); got != (color.RGBA{R: 30, G: 90, B: 220, A: 0xFF}) {
		t.Errorf("top row = %v", got)
	}
	if got := img.RGBAAt(1023, 1023); got != (color.RGBA{R: 70, G: 150, B: 255, A: 0xFF}) {
		t.Errorf("bottom row = %v", got)
	}
	if got := img.RGBAAt(700, 600); got != (color.RGBA{R: 53, G: 125, B: 240, A: 0xFF}) {
		t.Errorf("row 600 = %v, want {53 125 240 255}", got)
	}
	if img.RGBAAt(0, 300) != img.RGBAAt(1023, 300) {
		t.Error("gradient is not constant along a scanline")
	}
}

func TestSmoothKeepsAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 9, 9))
	src.SetNRGBA(4, 4, white)
	out := Smooth(src)

	if out.NRGBAAt(0, 0).A != 0 || out.NRGBAAt(4, 4).A != 0xFF {
		t.Errorf("alpha changed: corner=%d center=%d", out.NRGBAAt(0, 0).A, out.NRGBAAt(4, 4).A)
	}
	if c := out.NRGBAAt(4, 4); c.R >= 0xFF || c.R < 0x60 {
		t.Errorf("center red = %d, want about 112", c.R)
	}
}
