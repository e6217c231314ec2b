package canvas2d

import (
	"fmt"
	"math"

	"github.com/gogpu/canvas2d/internal/blend"
)

// GradientKind identifies the geometry of a gradient.
type GradientKind uint8

// Gradient kinds.
const (
	GradientLinear GradientKind = iota
	GradientRadial
	GradientConic
)

func (k GradientKind) String() string {
	switch k {
	case GradientLinear:
		return "linear"
	case GradientRadial:
		return "radial"
	case GradientConic:
		return "conic"
	}
	return fmt.Sprintf("GradientKind(%d)", k)
}

// ColorStop is a color at an offset in [0, 1] along a gradient.
type ColorStop struct {
	Offset float64
	Color  RGBA
}

// Gradient is a Canvas gradient. Its geometry is in user space: it is
// mapped to device space with the transform current when it is painted,
// not when it was created.
//
// Outside [0, 1] the end colors extend (pad). Colors interpolate in
// non-premultiplied sRGB.
type Gradient struct {
	kind  GradientKind
	x0    float64
	y0    float64
	r0    float64
	x1    float64
	y1    float64
	r1    float64
	angle float64
	stops []ColorStop
}

// NewLinearGradient creates a gradient along the line (x0, y0)-(x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64) *Gradient {
	return &Gradient{kind: GradientLinear, x0: x0, y0: y0, x1: x1, y1: y1}
}

// NewRadialGradient creates a two-circle gradient from circle
// (x0, y0, r0) to circle (x1, y1, r1). Negative or non-finite radii fail
// with ErrPath.
func NewRadialGradient(x0, y0, r0, x1, y1, r1 float64) (*Gradient, error) {
	if !(r0 >= 0) || !(r1 >= 0) || math.IsInf(r0, 0) || math.IsInf(r1, 0) {
		return nil, fmt.Errorf("%w: radial gradient radius (%g, %g)", ErrPath, r0, r1)
	}
	return &Gradient{kind: GradientRadial, x0: x0, y0: y0, r0: r0, x1: x1, y1: y1, r1: r1}, nil
}

// NewConicGradient creates a gradient sweeping clockwise around (x, y),
// starting at angle radians from the positive x axis.
func NewConicGradient(angle, x, y float64) *Gradient {
	return &Gradient{kind: GradientConic, x0: x, y0: y, angle: angle}
}

// Kind returns the gradient geometry.
func (g *Gradient) Kind() GradientKind { return g.kind }

// Stops returns a copy of the color stops in offset order.
func (g *Gradient) Stops() []ColorStop {
	return append([]ColorStop(nil), g.stops...)
}

// AddColorStop adds a stop with a CSS color. The offset must lie in
// [0, 1]; stops at equal offsets keep insertion order.
func (g *Gradient) AddColorStop(offset float64, css string) error {
	if err := checkStopOffset(offset); err != nil {
		return err
	}
	c, err := ParseColor(css)
	if err != nil {
		return err
	}
	g.insertStop(ColorStop{Offset: offset, Color: c})
	return nil
}

// AddColorStopRGBA adds a stop with an already parsed color.
func (g *Gradient) AddColorStopRGBA(offset float64, c RGBA) error {
	if err := checkStopOffset(offset); err != nil {
		return err
	}
	g.insertStop(ColorStop{Offset: offset, Color: c})
	return nil
}

func checkStopOffset(offset float64) error {
	if !(offset >= 0 && offset <= 1) {
		return fmt.Errorf("%w: offset %g", ErrInvalidGradientStop, offset)
	}
	return nil
}

// insertStop places s after every stop with an offset <= s.Offset, which
// keeps the list stably sorted.
func (g *Gradient) insertStop(s ColorStop) {
	i := len(g.stops)
	for i > 0 && g.stops[i-1].Offset > s.Offset {
		i--
	}
	g.stops = append(g.stops, ColorStop{})
	copy(g.stops[i+1:], g.stops[i:])
	g.stops[i] = s
}

// param returns the gradient parameter t for the user-space point (x, y).
// ok is false where the gradient paints nothing.
func (g *Gradient) param(x, y float64) (t float64, ok bool) {
	switch g.kind {
	case GradientLinear:
		dx, dy := g.x1-g.x0, g.y1-g.y0
		den := dx*dx + dy*dy
		if den == 0 {
			return 0, false
		}
		return ((x-g.x0)*dx + (y-g.y0)*dy) / den, true
	case GradientRadial:
		return g.radialParam(x, y)
	case GradientConic:
		a := math.Atan2(y-g.y0, x-g.x0) - g.angle
		t = a / (2 * math.Pi)
		return t - math.Floor(t), true
	}
	return 0, false
}

// radialParam solves |p - c(t)| = r(t) for the largest t with r(t) >= 0,
// where c and r interpolate linearly between the two circles.
func (g *Gradient) radialParam(x, y float64) (float64, bool) {
	cdx, cdy := g.x1-g.x0, g.y1-g.y0
	dr := g.r1 - g.r0
	if cdx == 0 && cdy == 0 && dr == 0 {
		return 0, false
	}
	pdx, pdy := x-g.x0, y-g.y0
	a := cdx*cdx + cdy*cdy - dr*dr
	b := pdx*cdx + pdy*cdy + g.r0*dr
	c := pdx*pdx + pdy*pdy - g.r0*g.r0

	valid := func(t float64) bool { return g.r0+t*dr >= 0 }

	if math.Abs(a) < 1e-12 {
		if b == 0 {
			return 0, false
		}
		t := c / (2 * b)
		return t, valid(t)
	}
	disc := b*b - a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t1, t2 := (b+sq)/a, (b-sq)/a
	if t1 < t2 {
		t1, t2 = t2, t1
	}
	switch {
	case valid(t1):
		return t1, true
	case valid(t2):
		return t2, true
	}
	return 0, false
}

// colorAt returns the padded, interpolated color at t.
func (g *Gradient) colorAt(t float64) RGBA {
	stops := g.stops
	if len(stops) == 1 || t <= stops[0].Offset {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color
	}
	i := 1
	for i < len(stops) && stops[i].Offset <= t {
		i++
	}
	a, b := stops[i-1], stops[i]
	return a.Color.Lerp(b.Color, (t-a.Offset)/(b.Offset-a.Offset))
}

// gradientShader evaluates a gradient at device pixel centers.
type gradientShader struct {
	g     *Gradient
	inv   Matrix
	alpha float64
}

// newGradientShader returns nil when the gradient paints nothing under
// the transform m.
func newGradientShader(g *Gradient, m Matrix, alpha float64) shader {
	if len(g.stops) == 0 {
		return nil
	}
	inv, ok := m.Invert()
	if !ok {
		return nil
	}
	return &gradientShader{g: g, inv: inv, alpha: alpha}
}

func (s *gradientShader) shade(x, y int) blend.Pixel {
	ux, uy := s.inv.Apply(float64(x)+0.5, float64(y)+0.5)
	t, ok := s.g.param(ux, uy)
	if !ok {
		return blend.Pixel{}
	}
	return s.g.colorAt(t).WithAlpha(s.alpha).pixel()
}
