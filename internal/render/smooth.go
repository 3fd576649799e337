package render

import (
	"image"

	"github.com/disintegration/imaging"
)

// smoothMoreKernel is a 5x5 centre-weighted blur; its weights sum to 100.
var smoothMoreKernel = [25]float64{
	1, 1, 1, 1, 1,
	1, 5, 5, 5, 1,
	1, 5, 44, 5, 1,
	1, 5, 5, 5, 1,
	1, 1, 1, 1, 1,
}

// Smooth softens edges of img. Colour channels are filtered, alpha is kept
// from the source pixel.
func Smooth(img image.Image) *image.NRGBA {
	return imaging.Convolve5x5(img, smoothMoreKernel, &imaging.ConvolveOptions{Normalize: true})
}
