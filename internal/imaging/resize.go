package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"golang.org/x/image/draw"
)

// Fit scales width and height down to satisfy the max constraints while
// preserving aspect ratio. A zero constraint leaves its axis unconstrained.
// The width constraint is applied first; the height constraint is then
// checked against the already-scaled height.
func Fit(width, height, maxWidth, maxHeight int) (int, int) {
	if width <= 0 || height <= 0 {
		return width, height
	}
	if maxWidth > 0 && width > maxWidth {
		height = scaled(height, maxWidth, width)
		width = maxWidth
	}
	if maxHeight > 0 && height > maxHeight {
		width = scaled(width, maxHeight, height)
		height = maxHeight
	}
	return width, height
}

// scaled returns d*num/den rounded to nearest, never below 1.
func scaled(d, num, den int) int {
	v := int(float64(d)*float64(num)/float64(den) + 0.5)
	if v < 1 {
		v = 1
	}
	return v
}

// Resize decodes data, scales it down to fit the max constraints while
// maintaining aspect ratio, and re-encodes it. Images already within the
// constraints are returned unchanged. PNG input stays PNG; everything else
// is encoded as JPEG.
func Resize(data []byte, maxWidth, maxHeight int) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := Fit(bounds.Dx(), bounds.Dy(), maxWidth, maxHeight)
	if w == bounds.Dx() && h == bounds.Dy() {
		return data, nil
	}

	resized := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	switch format {
	case "png":
		err = png.Encode(&buf, resized)
	default:
		// JPEG for unknown formats too (including GIF and WebP)
		err = jpeg.Encode(&buf, resized, &jpeg.Options{Quality: 85})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode resized image: %w", err)
	}
	return buf.Bytes(), nil
}
