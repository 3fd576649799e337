package preview

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/rook-computer/mytube-icon/internal/render/layout"
	xdraw "golang.org/x/image/draw"
)

// Background is the colour around the icon; it shows the rounded corners.
var Background = color.RGBA{R: 0x20, G: 0x20, B: 0x24, A: 0xFF}

// marginPx keeps the icon off the screen edges.
const marginPx = 40

// Compose renders icon onto an offscreen frame the size of dst, then copies
// the frame to dst with full alpha.
func Compose(dst draw.Image, icon image.Image) {
	bounds := dst.Bounds()
	frame := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(frame, frame.Bounds(), &image.Uniform{C: Background}, image.Point{}, draw.Src)

	target := layout.FitSquare(layout.Inset(frame.Bounds(), marginPx))
	if !target.Empty() {
		xdraw.NearestNeighbor.Scale(frame, target, icon, icon.Bounds(), xdraw.Over, nil)
	}
	blit(dst, frame)
}

func blit(dst draw.Image, frame *image.RGBA) {
	bounds := dst.Bounds()
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			pixel := frame.RGBAAt(x, y)
			dst.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
}
