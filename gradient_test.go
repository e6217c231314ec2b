package canvas2d

import (
	"errors"
	"math"
	"testing"
)

// TestColorStopsStableSort orders stops by offset and keeps insertion
// order among equal offsets.
func TestColorStopsStableSort(t *testing.T) {
	g := NewLinearGradient(0, 0, 1, 0)
	for _, s := range []struct {
		off float64
		css string
	}{
		{0.5, "red"},
		{0.2, "blue"},
		{0.5, "lime"},
		{0, "white"},
	} {
		if err := g.AddColorStop(s.off, s.css); err != nil {
			t.Fatalf("AddColorStop(%v, %q) error = %v", s.off, s.css, err)
		}
	}
	want := []string{"#ffffff", "#0000ff", "#ff0000", "#00ff00"}
	stops := g.Stops()
	if len(stops) != len(want) {
		t.Fatalf("len(Stops()) = %d, want %d", len(stops), len(want))
	}
	for i, s := range stops {
		if got := s.Color.String(); got != want[i] {
			t.Errorf("stop %d = %s@%v, want %s", i, got, s.Offset, want[i])
		}
	}
}

// TestColorStopInvalid rejects offsets outside [0, 1] and bad colors.
func TestColorStopInvalid(t *testing.T) {
	g := NewLinearGradient(0, 0, 1, 0)
	for _, off := range []float64{-0.01, 1.01, math.NaN(), math.Inf(1)} {
		if err := g.AddColorStop(off, "red"); !errors.Is(err, ErrInvalidGradientStop) {
			t.Errorf("AddColorStop(%v) error = %v, want ErrInvalidGradientStop", off, err)
		}
	}
	if err := g.AddColorStop(0.5, "nope"); !errors.Is(err, ErrColorParse) {
		t.Errorf("AddColorStop(bad color) error = %v, want ErrColorParse", err)
	}
	if n := len(g.Stops()); n != 0 {
		t.Errorf("rejected stops were added: %d", n)
	}
}

// TestRadialGradientNegativeRadius fails with ErrPath.
func TestRadialGradientNegativeRadius(t *testing.T) {
	if _, err := NewRadialGradient(0, 0, -1, 0, 0, 5); !errors.Is(err, ErrPath) {
		t.Errorf("NewRadialGradient(r0=-1) error = %v, want ErrPath", err)
	}
	if _, err := NewRadialGradient(0, 0, 0, 0, 0, 5); err != nil {
		t.Errorf("NewRadialGradient() error = %v", err)
	}
}

// TestLinearGradientFill interpolates along the gradient line.
func TestLinearGradientFill(t *testing.T) {
	c := newTestContext(t, 10, 1)
	g := NewLinearGradient(0, 0, 10, 0)
	_ = g.AddColorStop(0, "red")
	_ = g.AddColorStop(1, "blue")
	c.SetFillGradient(g)
	_ = c.FillRect(0, 0, 10, 1)

	left, right := pixelAt(c, 0, 0), pixelAt(c, 9, 0)
	if left.R <= left.B || right.B <= right.R {
		t.Errorf("left = %v, right = %v; want red fading to blue", left, right)
	}
	if left.A != 255 || right.A != 255 {
		t.Errorf("alpha = %d/%d, want opaque", left.A, right.A)
	}
}

// TestGradientHardStop switches color at a repeated offset.
func TestGradientHardStop(t *testing.T) {
	c := newTestContext(t, 10, 1)
	g := NewLinearGradient(0, 0, 10, 0)
	_ = g.AddColorStop(0, "red")
	_ = g.AddColorStop(0.5, "red")
	_ = g.AddColorStop(0.5, "blue")
	_ = g.AddColorStop(1, "blue")
	c.SetFillGradient(g)
	_ = c.FillRect(0, 0, 10, 1)

	if got := pixelAt(c, 2, 0); got != opaqueRed {
		t.Errorf("pixel 2 = %v, want red", got)
	}
	if got := pixelAt(c, 7, 0); got != opaqueBlue {
		t.Errorf("pixel 7 = %v, want blue", got)
	}
}

// TestGradientUsesDrawTimeTransform evaluates the gradient in the user
// space of the fill call.
func TestGradientUsesDrawTimeTransform(t *testing.T) {
	c := newTestContext(t, 20, 1)
	g := NewLinearGradient(0, 0, 10, 0)
	_ = g.AddColorStop(0, "red")
	_ = g.AddColorStop(0.5, "red")
	_ = g.AddColorStop(0.5, "blue")
	_ = g.AddColorStop(1, "blue")
	c.SetFillGradient(g)
	c.Scale(2, 1)
	_ = c.FillRect(0, 0, 10, 1)

	if got := pixelAt(c, 8, 0); got != opaqueRed {
		t.Errorf("pixel 8 = %v, want red under the 2x scale", got)
	}
	if got := pixelAt(c, 12, 0); got != opaqueBlue {
		t.Errorf("pixel 12 = %v, want blue under the 2x scale", got)
	}
}

// TestGradientWithoutStopsPaintsNothing leaves pixels transparent.
func TestGradientWithoutStopsPaintsNothing(t *testing.T) {
	c := newTestContext(t, 4, 4)
	c.SetFillGradient(NewLinearGradient(0, 0, 4, 0))
	_ = c.FillRect(0, 0, 4, 4)
	if got := pixelAt(c, 1, 1); got.A != 0 {
		t.Errorf("pixel = %v, want transparent", got)
	}
}

// TestGradientParam checks the parameter of each gradient kind.
func TestGradientParam(t *testing.T) {
	radial, _ := NewRadialGradient(0, 0, 0, 0, 0, 10)
	tests := []struct {
		name string
		g    *Gradient
		x, y float64
		want float64
		ok   bool
	}{
		{"linear start", NewLinearGradient(0, 0, 10, 0), 0, 5, 0, true},
		{"linear middle", NewLinearGradient(0, 0, 10, 0), 5, -3, 0.5, true},
		{"linear degenerate", NewLinearGradient(1, 1, 1, 1), 5, 5, 0, false},
		{"radial center", radial, 0, 0, 0, true},
		{"radial edge", radial, 6, 8, 1, true},
		{"conic start", NewConicGradient(0, 0, 0), 5, 0, 0, true},
		{"conic quarter", NewConicGradient(0, 0, 0), 0, 5, 0.25, true},
		{"conic rotated", NewConicGradient(math.Pi/2, 0, 0), 0, 5, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.g.param(tt.x, tt.y)
			if ok != tt.ok || (ok && !near(got, tt.want, 1e-9)) {
				t.Errorf("param(%v, %v) = %v, %v; want %v, %v", tt.x, tt.y, got, ok, tt.want, tt.ok)
			}
		})
	}
}
