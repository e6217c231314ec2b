package canvas2d

import (
	"fmt"
	"image"
	"io"

	intImage "github.com/gogpu/canvas2d/internal/image"
)

// DecodeImage decodes a PNG, JPEG, GIF, BMP, TIFF or WebP image for use
// with DrawImage or CreatePattern. Failures wrap ErrInvalidImageData.
func DecodeImage(r io.Reader) (image.Image, error) {
	img, _, err := intImage.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidImageData, err)
	}
	return img, nil
}

// LoadImage decodes the image file at path.
func LoadImage(path string) (image.Image, error) {
	img, _, err := intImage.DecodeFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidImageData, err)
	}
	return img, nil
}
