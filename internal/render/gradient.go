package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Gradient returns an opaque size×size image blending top into bottom one
// scanline at a time.
func Gradient(size int, top, bottom color.NRGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		row := image.Rect(0, y, size, y+1)
		draw.Draw(img, row, image.NewUniform(GradientAt(y, size, top, bottom)), image.Point{}, draw.Src)
	}
	return img
}

// GradientAt returns the colour of scanline y. Channels are truncated, not rounded.
func GradientAt(y, size int, top, bottom color.NRGBA) color.RGBA {
	t := 0.0
	if size > 1 {
		t = float64(y) / float64(size-1)
	}
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a)*(1-t) + float64(b)*t)
	}
	return color.RGBA{R: lerp(top.R, bottom.R), G: lerp(top.G, bottom.G), B: lerp(top.B, bottom.B), A: 0xFF}
}
