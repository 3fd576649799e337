package layout

import "image"

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// CenterSquare returns a sizePx square centred in rect.
// sizePx is clamped to the shorter side of rect.
func CenterSquare(rect image.Rectangle, sizePx int) image.Rectangle {
	rect = Normalize(rect)
	side := rect.Dx()
	if rect.Dy() < side {
		side = rect.Dy()
	}
	if sizePx > side {
		sizePx = side
	}
	if sizePx < 0 {
		sizePx = 0
	}
	x := rect.Min.X + (rect.Dx()-sizePx)/2
	y := rect.Min.Y + (rect.Dy()-sizePx)/2
	return image.Rect(x, y, x+sizePx, y+sizePx)
}

// FitSquare returns the largest square that fits into rect, centred.
func FitSquare(rect image.Rectangle) image.Rectangle {
	rect = Normalize(rect)
	return CenterSquare(rect, max(rect.Dx(), rect.Dy()))
}
