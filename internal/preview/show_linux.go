package preview

import (
	"image"

	fb "github.com/gonutz/framebuffer"
)

// Show draws icon centred on the framebuffer device at path.
func Show(path string, icon image.Image) error {
	dev, err := fb.Open(path)
	if err != nil {
		return err
	}
	defer dev.Close()
	Compose(dev, icon)
	return nil
}
