// Package imaging measures and scales image files for thumbnail display.
package imaging

import (
	"fmt"
	"image"
	"os"

	_ "image/gif"

	_ "golang.org/x/image/webp"
)

// FileProber reads intrinsic image dimensions from files on disk. It
// recognizes PNG, JPEG, GIF and WebP.
type FileProber struct{}

// Probe decodes only the image header, never the pixel data, so probing
// stays cheap regardless of file size.
func (FileProber) Probe(path string) (width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to decode image config: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}
