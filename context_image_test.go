package canvas2d

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// quadrantImage returns a 4x4 image with red, green, blue and white
// 2x2 quadrants.
func quadrantImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	colors := [2][2]color.NRGBA{
		{{R: 255, A: 255}, {G: 255, A: 255}},
		{{B: 255, A: 255}, {R: 255, G: 255, B: 255, A: 255}},
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, colors[y/2][x/2])
		}
	}
	return img
}

// TestDrawImageNearestNeighbor upscales with hard quadrant edges when
// smoothing is off.
func TestDrawImageNearestNeighbor(t *testing.T) {
	c := newTestContext(t, 100, 100)
	c.SetImageSmoothingEnabled(false)
	if err := c.DrawImageScaled(quadrantImage(), 0, 0, 100, 100); err != nil {
		t.Fatalf("DrawImageScaled() error = %v", err)
	}
	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, opaqueRed},
		{49, 49, opaqueRed},
		{50, 0, opaqueGreen},
		{99, 49, opaqueGreen},
		{0, 50, opaqueBlue},
		{49, 99, opaqueBlue},
		{50, 50, opaqueWhite},
		{99, 99, opaqueWhite},
	}
	for _, tt := range tests {
		if got := pixelAt(c, tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

// quadrantCanvas returns a 4x4 canvas whose quadrants are filled with
// FillRect in the colors of quadrantImage.
func quadrantCanvas(t *testing.T) *Context {
	t.Helper()
	src := newTestContext(t, 4, 4)
	fills := []struct {
		css  string
		x, y float64
	}{
		{"red", 0, 0},
		{"lime", 2, 0},
		{"blue", 0, 2},
		{"white", 2, 2},
	}
	for _, f := range fills {
		if err := src.SetFillStyle(f.css); err != nil {
			t.Fatal(err)
		}
		if err := src.FillRect(f.x, f.y, 2, 2); err != nil {
			t.Fatal(err)
		}
	}
	return src
}

// TestDrawCanvasQuadrantsNearestNeighbor scales a canvas painted with
// FillRect to 100x100; every pixel must be exactly its quadrant color.
func TestDrawCanvasQuadrantsNearestNeighbor(t *testing.T) {
	src := quadrantCanvas(t)
	quadrant := func(x, y int) color.RGBA {
		colors := [2][2]color.RGBA{
			{opaqueRed, opaqueGreen},
			{opaqueBlue, opaqueWhite},
		}
		return colors[y/50][x/50]
	}

	draws := []struct {
		name string
		draw func(dst *Context) error
	}{
		{"DrawImageScaled", func(dst *Context) error {
			return dst.DrawImageScaled(src.Pixmap(), 0, 0, 100, 100)
		}},
		{"DrawCanvas", func(dst *Context) error {
			dst.Scale(25, 25)
			return dst.DrawCanvas(src, 0, 0)
		}},
	}
	for _, d := range draws {
		t.Run(d.name, func(t *testing.T) {
			dst := newTestContext(t, 100, 100)
			dst.SetImageSmoothingEnabled(false)
			if err := d.draw(dst); err != nil {
				t.Fatalf("draw error = %v", err)
			}
			mismatches := 0
			for y := 0; y < 100; y++ {
				for x := 0; x < 100; x++ {
					if got, want := pixelAt(dst, x, y), quadrant(x, y); got != want {
						if mismatches == 0 {
							t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
						}
						mismatches++
					}
				}
			}
			if mismatches > 0 {
				t.Errorf("%d mismatched pixels, want 0", mismatches)
			}
		})
	}
}

// TestDrawImageSmoothingBlends mixes colors across quadrant edges.
func TestDrawImageSmoothingBlends(t *testing.T) {
	c := newTestContext(t, 100, 100)
	c.SetImageSmoothingQuality(ImageSmoothingHigh)
	_ = c.DrawImageScaled(quadrantImage(), 0, 0, 100, 100)
	got := pixelAt(c, 49, 10)
	if got.R == 0 || got.G == 0 {
		t.Errorf("edge pixel = %v, want a red-green mix", got)
	}
}

// TestDrawImageCropped maps a source rectangle onto the destination.
func TestDrawImageCropped(t *testing.T) {
	c := newTestContext(t, 10, 10)
	c.SetImageSmoothingEnabled(false)
	// The white quadrant only.
	_ = c.DrawImageCropped(quadrantImage(), 2, 2, 2, 2, 0, 0, 10, 10)
	if got := pixelAt(c, 1, 1); got != opaqueWhite {
		t.Errorf("pixel = %v, want white", got)
	}

	// A source rectangle half outside the image only draws the inside
	// half of the destination.
	c.Reset()
	c.SetImageSmoothingEnabled(false)
	_ = c.DrawImageCropped(quadrantImage(), 2, 0, 4, 4, 0, 0, 8, 8)
	if got := pixelAt(c, 1, 1); got != opaqueGreen {
		t.Errorf("pixel (1,1) = %v, want green", got)
	}
	if got := pixelAt(c, 6, 1); got.A != 0 {
		t.Errorf("pixel (6,1) = %v, want transparent", got)
	}
}

// TestDrawImageTransformed places the image through the transform.
func TestDrawImageTransformed(t *testing.T) {
	c := newTestContext(t, 10, 10)
	c.SetImageSmoothingEnabled(false)
	c.Translate(5, 5)
	_ = c.DrawImage(solidImage(2, 2, color.NRGBA{R: 255, A: 255}), 0, 0)
	if got := pixelAt(c, 6, 6); got != opaqueRed {
		t.Errorf("pixel (6,6) = %v, want red", got)
	}
	if got := pixelAt(c, 4, 4); got.A != 0 {
		t.Errorf("pixel (4,4) = %v, want transparent", got)
	}
}

// TestDrawCanvasOntoItself copies the canvas without feedback.
func TestDrawCanvasOntoItself(t *testing.T) {
	c := newTestContext(t, 4, 2)
	c.SetImageSmoothingEnabled(false)
	_ = c.SetFillStyle("red")
	_ = c.FillRect(0, 0, 2, 2)
	if err := c.DrawCanvas(c, 2, 0); err != nil {
		t.Fatalf("DrawCanvas() error = %v", err)
	}
	if got := pixelAt(c, 3, 1); got != opaqueRed {
		t.Errorf("pixel = %v, want red", got)
	}

	other := newTestContext(t, 1, 1)
	_ = other.Close()
	if err := c.DrawCanvas(other, 0, 0); !errors.Is(err, ErrContextClosed) {
		t.Errorf("DrawCanvas(closed) error = %v, want ErrContextClosed", err)
	}
}

// TestGetImageData returns unpremultiplied pixels with transparent
// padding outside the canvas.
func TestGetImageData(t *testing.T) {
	c := newTestContext(t, 4, 4)
	_ = c.SetFillStyle("lime")
	_ = c.FillRect(0, 0, 2, 2)

	img, err := c.GetImageData(-1, -1, 3, 3)
	if err != nil {
		t.Fatalf("GetImageData() error = %v", err)
	}
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{}) {
		t.Errorf("outside pixel = %v, want transparent", got)
	}
	if got := img.NRGBAAt(1, 1); got != (color.NRGBA{G: 255, A: 255}) {
		t.Errorf("pixel = %v, want lime", got)
	}

	flipped, err := c.GetImageData(2, 2, -2, -2)
	if err != nil || flipped.Bounds().Dx() != 2 {
		t.Fatalf("GetImageData(negative) = %v, %v", flipped.Bounds(), err)
	}
	if got := flipped.NRGBAAt(0, 0); got.G != 255 {
		t.Errorf("flipped pixel = %v, want lime", got)
	}

	if _, err := c.GetImageData(0, 0, 0, 3); !errors.Is(err, ErrInvalidImageData) {
		t.Errorf("GetImageData(zero width) error = %v, want ErrInvalidImageData", err)
	}
}

// TestPutImageData writes pixels ignoring transform, alpha and clip.
func TestPutImageData(t *testing.T) {
	c := newTestContext(t, 4, 4)
	c.Translate(1, 1)
	c.SetGlobalAlpha(0.5)
	c.Rect(0, 0, 1, 1)
	c.Clip(FillRuleNonZero)

	src := solidImage(2, 2, color.NRGBA{B: 255, A: 255})
	src.SetNRGBA(1, 1, color.NRGBA{})
	if err := c.PutImageData(src, 3, 3); err != nil {
		t.Fatalf("PutImageData() error = %v", err)
	}
	if got := pixelAt(c, 3, 3); got != opaqueBlue {
		t.Errorf("pixel (3,3) = %v, want blue", got)
	}

	// Transparent source pixels replace rather than blend.
	_ = c.PutImageData(solidImage(1, 1, color.NRGBA{}), 3, 3)
	if got := pixelAt(c, 3, 3); got.A != 0 {
		t.Errorf("pixel (3,3) = %v, want transparent", got)
	}

	if err := c.PutImageData(nil, 0, 0); !errors.Is(err, ErrInvalidImageData) {
		t.Errorf("PutImageData(nil) error = %v, want ErrInvalidImageData", err)
	}
}

// TestPutImageDataDirty limits the write to the dirty rectangle.
func TestPutImageDataDirty(t *testing.T) {
	c := newTestContext(t, 4, 4)
	src := solidImage(4, 4, color.NRGBA{R: 255, A: 255})
	if err := c.PutImageDataDirty(src, 0, 0, 3, 3, -2, -2); err != nil {
		t.Fatalf("PutImageDataDirty() error = %v", err)
	}
	if got := pixelAt(c, 1, 1); got != opaqueRed {
		t.Errorf("pixel (1,1) = %v, want red", got)
	}
	if got := pixelAt(c, 0, 0); got.A != 0 {
		t.Errorf("pixel (0,0) = %v, want untouched", got)
	}
	if got := pixelAt(c, 3, 3); got.A != 0 {
		t.Errorf("pixel (3,3) = %v, want untouched", got)
	}
}
