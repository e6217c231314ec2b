package canvas2d

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	intImage "github.com/gogpu/canvas2d/internal/image"
)

// DefaultPPI is the resolution PNG output declares unless PNGWithPPI is
// used.
const DefaultPPI = intImage.DefaultPPI

// PixelData returns a copy of the canvas as non-premultiplied RGBA bytes,
// row by row from the top with no padding. A closed context returns nil.
func (c *Context) PixelData() []byte {
	if c.closed {
		return nil
	}
	return c.pixmap.NRGBA().Pix
}

// ImageRGBA returns a premultiplied copy of the canvas.
func (c *Context) ImageRGBA() *image.RGBA {
	return c.pixmap.ToImage()
}

// EncodePNG writes the canvas as PNG at DefaultPPI.
func (c *Context) EncodePNG(w io.Writer) error {
	return c.encodePNG(w, DefaultPPI)
}

// PNG returns the canvas encoded as PNG at DefaultPPI.
func (c *Context) PNG() ([]byte, error) {
	return c.PNGWithPPI(DefaultPPI)
}

// PNGWithPPI returns the canvas encoded as PNG with a pHYs chunk
// declaring ppi pixels per inch.
func (c *Context) PNGWithPPI(ppi float64) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.encodePNG(&buf, ppi); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SavePNG writes the canvas as a PNG file.
func (c *Context) SavePNG(path string) error {
	data, err := c.PNG()
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Clean(path), data, 0o644); err != nil { //nolint:gosec // output images are world-readable
		return fmt.Errorf("%w: %w", ErrPNGEncoding, err)
	}
	return nil
}

func (c *Context) encodePNG(w io.Writer, ppi float64) error {
	if c.closed {
		return ErrContextClosed
	}
	if err := intImage.EncodePNG(w, c.pixmap.NRGBA(), ppi); err != nil {
		return fmt.Errorf("%w: %w", ErrPNGEncoding, err)
	}
	return nil
}
