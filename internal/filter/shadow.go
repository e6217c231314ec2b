package filter

import (
	"image"
	"math"
)

// Shadow describes a canvas shadow in device pixels.
type Shadow struct {
	OffsetX float64
	OffsetY float64
	// Blur is the canvas shadowBlur value; the Gaussian standard
	// deviation is half of it.
	Blur float64
}

// Sigma returns the standard deviation of the shadow blur.
func (s Shadow) Sigma() float64 {
	if !(s.Blur > 0) {
		return 0
	}
	return s.Blur / 2
}

// Visible reports whether the shadow differs from the shape itself.
// Offsets are rounded to whole pixels.
func (s Shadow) Visible() bool {
	dx, dy := s.offset()
	return dx != 0 || dy != 0 || s.Sigma() > 0
}

func (s Shadow) offset() (int, int) {
	return int(math.Round(s.OffsetX)), int(math.Round(s.OffsetY))
}

// Mask returns the shadow coverage cast by coverage: the mask moved by
// the offset, then blurred. bounds limits the result, typically to the
// canvas; nil is returned when nothing falls inside it.
func (s Shadow) Mask(coverage *image.Alpha, bounds image.Rectangle) *image.Alpha {
	if coverage == nil || coverage.Rect.Empty() {
		return nil
	}
	dx, dy := s.offset()
	moved := &image.Alpha{
		Pix:    coverage.Pix,
		Stride: coverage.Stride,
		Rect:   coverage.Rect.Add(image.Pt(dx, dy)),
	}
	// Skip the blur when the widened shadow cannot reach bounds.
	r := KernelRadius(s.Sigma())
	if !moved.Rect.Inset(-r).Overlaps(bounds) {
		return nil
	}
	out := BlurAlpha(moved, s.Sigma())
	clipped := out.Rect.Intersect(bounds)
	if clipped.Empty() {
		return nil
	}
	return out.SubImage(clipped).(*image.Alpha)
}
