package render

import (
	"errors"
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype/truetype"
	"github.com/rook-computer/mytube-icon/internal/assets"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// loadFace parses ttf (or the embedded font when ttf is nil) at sizePx.
// Parse failures fall back to basicfont so the icon still renders.
func (r *Renderer) loadFace(ttf []byte, sizePx float64) font.Face {
	if ttf == nil {
		ttf = assets.LabelFont
	}
	tt, err := truetype.Parse(ttf)
	if err != nil {
		r.errorf("truetype parse failed, using basicfont: %v", err)
		return basicfont.Face7x13
	}
	if sizePx <= 0 {
		sizePx = 13
	}
	r.infof("label font parsed, %.0fpx", sizePx)
	return truetype.NewFace(tt, &truetype.Options{Size: sizePx, DPI: 72, Hinting: font.HintingNone})
}

// DrawLabel draws text with the top of its ascent at origin.
func DrawLabel(dst draw.Image, text string, origin image.Point, fg color.Color, face font.Face) error {
	if face == nil {
		return errors.New("no font face")
	}
	ascent := face.Metrics().Ascent
	drawer := &font.Drawer{Dst: dst, Src: &image.Uniform{C: fg}, Face: face}
	drawer.Dot = fixed.Point26_6{X: fixed.I(origin.X), Y: fixed.I(origin.Y) + ascent}
	drawer.DrawString(text)
	return nil
}

// MeasureLabel returns the advance width and line height of text in pixels.
func MeasureLabel(text string, face font.Face) (width, height int) {
	drawer := &font.Drawer{Face: face}
	m := face.Metrics()
	return drawer.MeasureString(text).Ceil(), (m.Ascent + m.Descent).Ceil()
}
