package canvas2d

import (
	"image"
	"image/color"
	"testing"
)

// TestDirtyRectDisabled reports nothing without tracking.
func TestDirtyRectDisabled(t *testing.T) {
	c := newTestContext(t, 8, 8, WithDirtyTracking(false))
	_ = c.FillRect(0, 0, 8, 8)
	if r, ok := c.DirtyRect(); ok {
		t.Errorf("DirtyRect() = %v, true; want false", r)
	}
}

// TestDirtyRectAccumulates unions painted areas until reset.
func TestDirtyRectAccumulates(t *testing.T) {
	c := newTestContext(t, 16, 16)
	if _, ok := c.DirtyRect(); ok {
		t.Fatal("fresh context reported a dirty region")
	}

	_ = c.FillRect(1, 1, 2, 2)
	if r, ok := c.DirtyRect(); !ok || r != image.Rect(1, 1, 3, 3) {
		t.Errorf("DirtyRect() = %v, %v; want (1,1)-(3,3)", r, ok)
	}

	_ = c.FillRect(10.5, 4, 2, 1)
	if r, _ := c.DirtyRect(); r != image.Rect(1, 1, 13, 5) {
		t.Errorf("DirtyRect() = %v, want (1,1)-(13,5)", r)
	}

	// Painting outside the canvas adds nothing.
	c.ResetDirtyRect()
	_ = c.FillRect(-10, -10, 5, 5)
	if r, ok := c.DirtyRect(); ok {
		t.Errorf("DirtyRect() = %v after offscreen fill, want none", r)
	}

	_ = c.PutImageData(solidImage(2, 2, color.NRGBA{A: 255}), 14, 14)
	if r, ok := c.DirtyRect(); !ok || r != image.Rect(14, 14, 16, 16) {
		t.Errorf("DirtyRect() = %v, %v after PutImageData; want (14,14)-(16,16)", r, ok)
	}

	c.Reset()
	if _, ok := c.DirtyRect(); ok {
		t.Error("Reset kept the dirty region")
	}
}
