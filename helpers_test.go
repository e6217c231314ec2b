package canvas2d

import (
	"image"
	"image/color"
	"testing"
)

func newTestContext(t *testing.T, w, h int, opts ...ContextOption) *Context {
	t.Helper()
	c, err := NewContext(w, h, opts...)
	if err != nil {
		t.Fatalf("NewContext(%d, %d) error = %v", w, h, err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

// pixelAt returns the premultiplied pixel at (x, y).
func pixelAt(c *Context, x, y int) color.RGBA {
	return c.pixmap.At(x, y).(color.RGBA)
}

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// mustPattern returns a pattern of an opaque red w x h tile.
func mustPattern(t *testing.T, w, h int, rep Repetition) *Pattern {
	t.Helper()
	p, err := NewPattern(solidImage(w, h, color.NRGBA{R: 255, A: 255}), rep)
	if err != nil {
		t.Fatalf("NewPattern() error = %v", err)
	}
	return p
}

func near(a, b, eps float64) bool {
	d := a - b
	return d <= eps && d >= -eps
}

var (
	opaqueRed   = color.RGBA{R: 255, A: 255}
	opaqueGreen = color.RGBA{G: 255, A: 255}
	opaqueBlue  = color.RGBA{B: 255, A: 255}
	opaqueWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)
