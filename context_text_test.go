package canvas2d

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/canvas2d/text"
)

// paintedBounds returns the bounds of the pixels with non-zero alpha.
func paintedBounds(c *Context) image.Rectangle {
	var r image.Rectangle
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if pixelAt(c, x, y).A != 0 {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}

// TestSetFontKeepsPreviousOnError leaves the font alone for bad input.
func TestSetFontKeepsPreviousOnError(t *testing.T) {
	c := newTestContext(t, 1, 1)
	if err := c.SetFont("bold 20px serif"); err != nil {
		t.Fatalf("SetFont() error = %v", err)
	}
	before := c.Font()
	for _, css := range []string{"bold serif", "-3px serif", "12vw sans-serif"} {
		if err := c.SetFont(css); !errors.Is(err, ErrFontParse) {
			t.Errorf("SetFont(%q) error = %v, want ErrFontParse", css, err)
		}
	}
	if got := c.Font(); got != before {
		t.Errorf("Font() = %q, want %q", got, before)
	}
}

// TestMeasureText reports the width and the fixed ascent and descent.
func TestMeasureText(t *testing.T) {
	c := newTestContext(t, 1, 1)
	_ = c.SetFont("20px sans-serif")
	m, err := c.MeasureText("Hello")
	if err != nil {
		t.Fatalf("MeasureText() error = %v", err)
	}
	if m.Width <= 0 {
		t.Errorf("Width = %v, want > 0", m.Width)
	}
	if !near(m.FontBoundingBoxAscent, 16, 1e-9) || !near(m.FontBoundingBoxDescent, 4, 1e-9) {
		t.Errorf("ascent/descent = %v/%v, want 16/4", m.FontBoundingBoxAscent, m.FontBoundingBoxDescent)
	}

	_ = c.SetFont("40px sans-serif")
	big, _ := c.MeasureText("Hello")
	if !near(big.Width, 2*m.Width, 0.01*big.Width) {
		t.Errorf("width at 40px = %v, want about %v", big.Width, 2*m.Width)
	}

	empty, err := c.MeasureText("")
	if err != nil || empty.Width != 0 {
		t.Errorf("MeasureText(\"\") = %v, %v; want zero width", empty.Width, err)
	}
}

// TestFillTextPaints draws glyphs near the anchor.
func TestFillTextPaints(t *testing.T) {
	c := newTestContext(t, 120, 40)
	_ = c.SetFont("20px sans-serif")
	if err := c.FillText("Hello", 10, 30); err != nil {
		t.Fatalf("FillText() error = %v", err)
	}
	r := paintedBounds(c)
	if r.Empty() {
		t.Fatal("FillText painted nothing")
	}
	if r.Min.X < 9 || r.Max.Y > 31 || r.Min.Y < 10 {
		t.Errorf("painted bounds = %v, want right of x=10 and above the baseline", r)
	}
}

// TestStrokeTextPaints outlines glyphs.
func TestStrokeTextPaints(t *testing.T) {
	c := newTestContext(t, 120, 40)
	_ = c.SetFont("20px sans-serif")
	if err := c.StrokeText("Hello", 10, 30); err != nil {
		t.Fatalf("StrokeText() error = %v", err)
	}
	if paintedBounds(c).Empty() {
		t.Error("StrokeText painted nothing")
	}
}

// TestFillTextMaxWidth squeezes text and draws nothing for a
// non-positive width.
func TestFillTextMaxWidth(t *testing.T) {
	c := newTestContext(t, 200, 40)
	_ = c.SetFont("20px sans-serif")
	for _, w := range []float64{0, -5} {
		if err := c.FillTextMaxWidth("Hello world", 0, 30, w); err != nil {
			t.Errorf("FillTextMaxWidth(%v) error = %v", w, err)
		}
	}
	if r := paintedBounds(c); !r.Empty() {
		t.Fatalf("non-positive maxWidth painted %v", r)
	}

	if err := c.FillTextMaxWidth("Hello world", 0, 30, 30); err != nil {
		t.Fatalf("FillTextMaxWidth() error = %v", err)
	}
	r := paintedBounds(c)
	if r.Empty() || r.Max.X > 31 {
		t.Errorf("painted bounds = %v, want within 30px", r)
	}
}

// TestTextAlignRight ends the text at the anchor.
func TestTextAlignRight(t *testing.T) {
	c := newTestContext(t, 200, 40)
	_ = c.SetFont("20px sans-serif")
	c.SetTextAlign(text.AlignRight)
	_ = c.FillText("Hello", 100, 30)
	r := paintedBounds(c)
	if r.Empty() || r.Max.X > 101 || r.Min.X > 95 {
		t.Errorf("painted bounds = %v, want ending at x=100", r)
	}
}

// TestTextBaselineTop hangs the text below the anchor.
func TestTextBaselineTop(t *testing.T) {
	c := newTestContext(t, 120, 40)
	_ = c.SetFont("20px sans-serif")
	// Flat-bottomed glyphs end exactly on the baseline.
	_ = c.FillText("HILT", 0, 0)
	if r := paintedBounds(c); !r.Empty() {
		t.Fatalf("alphabetic baseline at y=0 painted %v", r)
	}

	c.SetTextBaseline(text.BaselineTop)
	_ = c.FillText("HILT", 0, 0)
	if paintedBounds(c).Empty() {
		t.Error("top baseline at y=0 painted nothing")
	}
}
