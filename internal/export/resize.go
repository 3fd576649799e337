package export

import (
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// Filter names accepted by Resize.
const (
	FilterLanczos    = "lanczos"
	FilterCatmullRom = "catmullrom"
	FilterLinear     = "linear"
	FilterNearest    = "nearest"
)

// ParseFilter normalizes a filter name; empty selects Lanczos.
func ParseFilter(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "":
		return FilterLanczos, nil
	case FilterLanczos, FilterCatmullRom, FilterLinear, FilterNearest:
		return name, nil
	default:
		return "", fmt.Errorf("unknown resample filter %q", name)
	}
}

// Resize returns a new size×size copy of src. The same input always yields
// the same pixels.
func Resize(src image.Image, size int, filter string) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("target size must be positive (got %d)", size)
	}
	filter, err := ParseFilter(filter)
	if err != nil {
		return nil, err
	}
	if filter == FilterLanczos {
		return imaging.Resize(src, size, size, imaging.Lanczos), nil
	}

	var scaler xdraw.Scaler
	switch filter {
	case FilterCatmullRom:
		scaler = xdraw.CatmullRom
	case FilterLinear:
		scaler = xdraw.BiLinear
	default:
		scaler = xdraw.NearestNeighbor
	}
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	scaler.Scale(dst, dst.Rect, src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}
