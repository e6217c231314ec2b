package canvas2d

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/gogpu/canvas2d/internal/blend"
	"github.com/gogpu/canvas2d/internal/path"
	"github.com/gogpu/canvas2d/internal/raster"
)

// DrawImage draws img at its natural size with its top-left corner at
// (dx, dy).
func (c *Context) DrawImage(img image.Image, dx, dy float64) error {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	return c.DrawImageCropped(img, 0, 0, float64(b.Dx()), float64(b.Dy()),
		dx, dy, float64(b.Dx()), float64(b.Dy()))
}

// DrawImageScaled draws img scaled into the rectangle (dx, dy, dw, dh).
func (c *Context) DrawImageScaled(img image.Image, dx, dy, dw, dh float64) error {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	return c.DrawImageCropped(img, 0, 0, float64(b.Dx()), float64(b.Dy()), dx, dy, dw, dh)
}

// DrawCanvas draws the current pixels of other at (dx, dy). other may be
// c itself.
func (c *Context) DrawCanvas(other *Context, dx, dy float64) error {
	if other == nil {
		return nil
	}
	if other.closed {
		return ErrContextClosed
	}
	return c.DrawImage(other.pixmap, dx, dy)
}

// DrawImageCropped draws the source rectangle (sx, sy, sw, sh) of img
// into the destination rectangle (dx, dy, dw, dh). Source coordinates
// are relative to the image bounds. Negative sizes flip the rectangle
// onto the other side of its origin. The part of the source rectangle
// outside the image is dropped along with the matching part of the
// destination.
//
// The destination goes through the transform, the clip, global alpha
// and the composite operation. The resampling filter follows the image
// smoothing settings.
func (c *Context) DrawImageCropped(img image.Image, sx, sy, sw, sh, dx, dy, dw, dh float64) error {
	if c.closed {
		return ErrContextClosed
	}
	if img == nil || !finite(sx, sy, sw, sh, dx, dy, dw, dh) {
		return nil
	}
	sx, sw = normalizeSpan(sx, sw)
	sy, sh = normalizeSpan(sy, sh)
	dx, dw = normalizeSpan(dx, dw)
	dy, dh = normalizeSpan(dy, dh)
	if sw == 0 || sh == 0 || dw == 0 || dh == 0 {
		return nil
	}

	b := img.Bounds()
	// Source image coordinates to device coordinates.
	s2d := c.state.Transform.
		Multiply(Translate(dx, dy)).
		Multiply(Scale(dw/sw, dh/sh)).
		Multiply(Translate(-(sx + float64(b.Min.X)), -(sy + float64(b.Min.Y))))

	x0 := math.Max(sx, 0) + float64(b.Min.X)
	y0 := math.Max(sy, 0) + float64(b.Min.Y)
	x1 := math.Min(sx+sw, float64(b.Dx())) + float64(b.Min.X)
	y1 := math.Min(sy+sh, float64(b.Dy())) + float64(b.Min.Y)
	if x1 <= x0 || y1 <= y0 {
		return nil
	}

	var quad pathBuilder
	quad.rect(s2d, x0, y0, x1-x0, y1-y0)
	m := raster.Fill(c.width, c.height, quad.p.Flatten(path.Tolerance), raster.NonZero)
	if m == nil {
		return nil
	}

	layer := image.NewRGBA(m.Rect)
	sr := image.Rect(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Ceil(x1)), int(math.Ceil(y1)))
	c.interpolator().Transform(layer, s2d.ToAff3(), img, sr, draw.Src, nil)

	c.paint(m, &layerShader{layer: layer, alpha: float32(c.state.GlobalAlpha)})
	return nil
}

// interpolator picks the resampling filter for the smoothing settings.
func (c *Context) interpolator() draw.Interpolator {
	if !c.state.ImageSmoothingEnabled {
		return draw.NearestNeighbor
	}
	switch c.state.ImageSmoothingQuality {
	case ImageSmoothingLow:
		return draw.ApproxBiLinear
	case ImageSmoothingHigh:
		return draw.CatmullRom
	default:
		return draw.BiLinear
	}
}

func normalizeSpan(origin, size float64) (float64, float64) {
	if size < 0 {
		return origin + size, -size
	}
	return origin, size
}

// layerShader reads a premultiplied image already laid out in device
// coordinates.
type layerShader struct {
	layer *image.RGBA
	alpha float32
}

func (s *layerShader) shade(x, y int) blend.Pixel {
	if !(image.Point{X: x, Y: y}).In(s.layer.Rect) {
		return blend.Pixel{}
	}
	i := s.layer.PixOffset(x, y)
	p := s.layer.Pix[i : i+4 : i+4]
	c := blend.FromBytes(p[0], p[1], p[2], p[3])
	if s.alpha < 1 {
		c = c.Scale(s.alpha)
	}
	return c
}

// GetImageData returns a non-premultiplied copy of the device rectangle
// (x, y, w, h). Pixels outside the canvas are transparent black. A zero
// width or height fails with ErrInvalidImageData; negative sizes flip
// the rectangle.
func (c *Context) GetImageData(x, y, w, h int) (*image.NRGBA, error) {
	if c.closed {
		return nil, ErrContextClosed
	}
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidImageData, w, h)
	}
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	if int64(w)*int64(h) > int64(MaxDimension)*int64(MaxDimension) {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidImageData, w, h)
	}

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	r := image.Rect(x, y, x+w, y+h).Intersect(c.pixmap.Bounds())
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			i := c.pixmap.offset(px, py)
			s := c.pixmap.data[i : i+4 : i+4]
			unpremultiply(out.Pix[out.PixOffset(px-x, py-y):], s[0], s[1], s[2], s[3])
		}
	}
	return out, nil
}

// PutImageData writes img to the canvas with its top-left corner at the
// device pixel (dx, dy). The transform, the clip, global alpha and the
// composite operation are ignored; pixels outside the canvas are
// dropped.
func (c *Context) PutImageData(img *image.NRGBA, dx, dy int) error {
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidImageData)
	}
	b := img.Bounds()
	return c.PutImageDataDirty(img, dx, dy, 0, 0, b.Dx(), b.Dy())
}

// PutImageDataDirty is PutImageData limited to the dirty rectangle
// (dirtyX, dirtyY, dirtyW, dirtyH) of img, given relative to its bounds.
// The dirty rectangle is clamped to the image; negative sizes flip it.
func (c *Context) PutImageDataDirty(img *image.NRGBA, dx, dy, dirtyX, dirtyY, dirtyW, dirtyH int) error {
	if c.closed {
		return ErrContextClosed
	}
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidImageData)
	}
	b := img.Bounds()
	if len(img.Pix) < b.Dy()*img.Stride {
		return fmt.Errorf("%w: %d bytes for %dx%d", ErrInvalidImageData, len(img.Pix), b.Dx(), b.Dy())
	}
	if dirtyW < 0 {
		dirtyX, dirtyW = dirtyX+dirtyW, -dirtyW
	}
	if dirtyH < 0 {
		dirtyY, dirtyH = dirtyY+dirtyH, -dirtyH
	}
	src := image.Rect(dirtyX, dirtyY, dirtyX+dirtyW, dirtyY+dirtyH).
		Intersect(image.Rect(0, 0, b.Dx(), b.Dy()))
	dst := src.Add(image.Pt(dx, dy)).Intersect(c.pixmap.Bounds())
	if dst.Empty() {
		return nil
	}

	for y := dst.Min.Y; y < dst.Max.Y; y++ {
		for x := dst.Min.X; x < dst.Max.X; x++ {
			s := img.Pix[img.PixOffset(b.Min.X+x-dx, b.Min.Y+y-dy):]
			premultiply(c.pixmap.data[c.pixmap.offset(x, y):], s[0], s[1], s[2], s[3])
		}
	}
	c.markDirty(dst)
	return nil
}

// CreatePattern creates a pattern from img. repetition is a Canvas
// keyword; the empty string means "repeat".
func (c *Context) CreatePattern(img image.Image, repetition string) (*Pattern, error) {
	rep, err := ParseRepetition(repetition)
	if err != nil {
		return nil, err
	}
	return NewPattern(img, rep)
}

// CreatePatternFromCanvas creates a pattern from a snapshot of the
// current pixels of other.
func (c *Context) CreatePatternFromCanvas(other *Context, repetition string) (*Pattern, error) {
	if other == nil || other.closed {
		return nil, ErrContextClosed
	}
	return c.CreatePattern(other.pixmap, repetition)
}
