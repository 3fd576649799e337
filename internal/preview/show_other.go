//go:build !linux

package preview

import (
	"errors"
	"image"
)

func Show(path string, icon image.Image) error {
	return errors.New("framebuffer preview is only supported on linux")
}
