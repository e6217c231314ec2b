package canvas2d

import (
	"image/color"
	"testing"
)

// TestSourceOverHalfAlpha blends a translucent fill over an opaque one.
func TestSourceOverHalfAlpha(t *testing.T) {
	c := newTestContext(t, 2, 2)
	_ = c.SetFillStyle("blue")
	_ = c.FillRect(0, 0, 2, 2)
	_ = c.SetFillStyle("rgba(255, 0, 0, 0.5)")
	_ = c.FillRect(0, 0, 2, 2)

	got := pixelAt(c, 0, 0)
	if got.A != 255 || got.R < 126 || got.R > 129 || got.B < 126 || got.B > 129 {
		t.Errorf("pixel = %v, want about {128 0 127 255}", got)
	}
}

// TestGlobalAlpha scales the fill alpha.
func TestGlobalAlpha(t *testing.T) {
	c := newTestContext(t, 2, 2)
	c.SetGlobalAlpha(0.25)
	_ = c.FillRect(0, 0, 2, 2)
	if got := pixelAt(c, 1, 1); got.A < 63 || got.A > 65 {
		t.Errorf("alpha = %d, want about 64", got.A)
	}
}

// TestCompositeOps checks a few Porter-Duff operators on opaque pixels.
func TestCompositeOps(t *testing.T) {
	tests := []struct {
		op   string
		want color.RGBA
	}{
		{"source-over", opaqueRed},
		{"destination-over", opaqueBlue},
		{"destination-out", color.RGBA{}},
		{"source-in", opaqueRed},
		{"xor", color.RGBA{}},
		{"copy", opaqueRed},
	}
	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			c := newTestContext(t, 2, 2)
			_ = c.SetFillStyle("blue")
			_ = c.FillRect(0, 0, 2, 2)
			if !c.SetGlobalCompositeOperationName(tt.op) {
				t.Fatalf("SetGlobalCompositeOperationName(%q) = false", tt.op)
			}
			_ = c.SetFillStyle("red")
			_ = c.FillRect(0, 0, 2, 2)
			if got := pixelAt(c, 0, 0); got != tt.want {
				t.Errorf("pixel = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestCopyLimitedToCoverage leaves pixels outside the painted shape
// alone.
func TestCopyLimitedToCoverage(t *testing.T) {
	c := newTestContext(t, 4, 4)
	_ = c.SetFillStyle("red")
	_ = c.FillRect(0, 0, 4, 4)
	c.SetGlobalCompositeOperation(CompositeCopy)
	_ = c.SetFillStyle("rgba(0, 0, 255, 0.5)")
	_ = c.FillRect(0, 0, 2, 2)

	if got := pixelAt(c, 0, 0); got.R != 0 || got.A < 127 || got.A > 128 {
		t.Errorf("copied pixel = %v, want half-transparent blue", got)
	}
	if got := pixelAt(c, 3, 3); got != opaqueRed {
		t.Errorf("outside pixel = %v, want red", got)
	}
}

// TestCompositeOpNames round-trips every keyword.
func TestCompositeOpNames(t *testing.T) {
	for op := CompositeSourceOver; op <= CompositeLuminosity; op++ {
		got, ok := ParseCompositeOp(op.String())
		if !ok || got != op {
			t.Errorf("ParseCompositeOp(%q) = %v, %v; want %v", op.String(), got, ok, op)
		}
	}

	c := newTestContext(t, 1, 1)
	c.SetGlobalCompositeOperation(CompositeMultiply)
	if c.SetGlobalCompositeOperationName("plus-lighter") {
		t.Error("unknown keyword accepted")
	}
	if got := c.GlobalCompositeOperation(); got != CompositeMultiply {
		t.Errorf("operation = %v after unknown keyword, want multiply", got)
	}
}

// TestClearRect ignores global alpha and the composite operation but
// honors the transform.
func TestClearRect(t *testing.T) {
	c := newTestContext(t, 4, 4)
	_ = c.FillRect(0, 0, 4, 4)
	c.SetGlobalAlpha(0.1)
	c.SetGlobalCompositeOperation(CompositeDestinationOver)
	c.Translate(2, 0)
	_ = c.ClearRect(0, 0, 2, 4)

	if got := pixelAt(c, 3, 1); got.A != 0 {
		t.Errorf("cleared pixel = %v, want transparent", got)
	}
	if got := pixelAt(c, 1, 1); got.A != 255 {
		t.Errorf("kept pixel = %v, want opaque", got)
	}
}

// TestClipLimitsPainting confines fills and clearRect to the clip.
func TestClipLimitsPainting(t *testing.T) {
	c := newTestContext(t, 4, 4)
	c.Rect(0, 0, 2, 2)
	c.Clip(FillRuleNonZero)
	_ = c.SetFillStyle("red")
	_ = c.FillRect(0, 0, 4, 4)

	if got := pixelAt(c, 1, 1); got != opaqueRed {
		t.Errorf("inside pixel = %v, want red", got)
	}
	if got := pixelAt(c, 3, 3); got.A != 0 {
		t.Errorf("outside pixel = %v, want transparent", got)
	}

	c.ResetClip()
	_ = c.FillRect(0, 0, 4, 4)
	c.Rect(0, 0, 2, 2)
	c.Clip(FillRuleNonZero)
	_ = c.ClearRect(0, 0, 4, 4)
	if got := pixelAt(c, 3, 3); got != opaqueRed {
		t.Errorf("clearRect outside the clip = %v, want red", got)
	}
}

// TestClipRestoredWithState drops a clip set after save on restore.
func TestClipRestoredWithState(t *testing.T) {
	c := newTestContext(t, 4, 4)
	c.Save()
	c.Rect(0, 0, 1, 1)
	c.Clip(FillRuleNonZero)
	c.Restore()
	if c.State().Clip != nil {
		t.Fatal("clip survived restore")
	}
	_ = c.FillRect(0, 0, 4, 4)
	if got := pixelAt(c, 3, 3); got.A != 255 {
		t.Errorf("pixel = %v, want painted without a clip", got)
	}
}

// TestClipReplaces makes the latest clip of a state win instead of
// intersecting with the previous one.
func TestClipReplaces(t *testing.T) {
	c := newTestContext(t, 4, 4)
	c.Rect(0, 0, 2, 2)
	c.Clip(FillRuleNonZero)
	c.BeginPath()
	c.Rect(2, 2, 2, 2)
	c.Clip(FillRuleNonZero)
	_ = c.FillRect(0, 0, 4, 4)

	if got := pixelAt(c, 0, 0); got.A != 0 {
		t.Errorf("first clip area = %v, want transparent", got)
	}
	if got := pixelAt(c, 3, 3); got.A != 255 {
		t.Errorf("second clip area = %v, want painted", got)
	}
}

// TestClipKeepsItsTransform fixes a Path2D clip to the transform current
// when it was set.
func TestClipKeepsItsTransform(t *testing.T) {
	c := newTestContext(t, 8, 8)
	p := NewPath2D()
	p.Rect(0, 0, 2, 2)

	c.Scale(2, 2)
	c.ClipPath2D(p, FillRuleNonZero)
	if got := c.State().Clip.Transform(); got != Scale(2, 2) {
		t.Errorf("clip transform = %v, want scale(2, 2)", got)
	}
	c.ResetTransform()
	_ = c.FillRect(0, 0, 8, 8)

	if got := pixelAt(c, 3, 3); got.A != 255 {
		t.Errorf("pixel (3,3) = %v, want painted inside the scaled clip", got)
	}
	if got := pixelAt(c, 5, 5); got.A != 0 {
		t.Errorf("pixel (5,5) = %v, want clipped", got)
	}
}

// TestEmptyClipPaintsNothing hides everything when the clip covers no
// pixels.
func TestEmptyClipPaintsNothing(t *testing.T) {
	c := newTestContext(t, 4, 4)
	c.BeginPath()
	c.Clip(FillRuleNonZero)
	_ = c.FillRect(0, 0, 4, 4)
	if got := pixelAt(c, 1, 1); got.A != 0 {
		t.Errorf("pixel = %v, want transparent", got)
	}
}

// TestStrokeCoversLine paints a horizontal line of the line width.
func TestStrokeCoversLine(t *testing.T) {
	c := newTestContext(t, 10, 10)
	c.SetLineWidth(2)
	_ = c.SetStrokeStyle("lime")
	c.MoveTo(0, 5)
	c.LineTo(10, 5)
	_ = c.Stroke()

	if got := pixelAt(c, 5, 4); got != opaqueGreen {
		t.Errorf("pixel (5,4) = %v, want green", got)
	}
	if got := pixelAt(c, 5, 7); got.A != 0 {
		t.Errorf("pixel (5,7) = %v, want transparent", got)
	}
}
