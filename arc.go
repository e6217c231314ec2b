package canvas2d

import (
	"fmt"
	"math"

	"github.com/gogpu/canvas2d/internal/path"
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522848

// arcSweep returns the signed sweep from a0 to a1. Clockwise sweeps are
// positive. A requested sweep of a full turn or more is clamped to one
// full turn; anything shorter is reduced modulo a turn.
func arcSweep(a0, a1 float64, anticlockwise bool) float64 {
	const turn = 2 * math.Pi
	if !anticlockwise {
		d := a1 - a0
		if d >= turn {
			return turn
		}
		d = math.Mod(d, turn)
		if d < 0 {
			d += turn
		}
		return d
	}
	d := a0 - a1
	if d >= turn {
		return -turn
	}
	d = math.Mod(d, turn)
	if d < 0 {
		d += turn
	}
	return -d
}

// ellipsePoint maps the unit-circle point (ux, uy) onto the ellipse
// centered at (cx, cy) with radii rx, ry, rotated by the angle whose sine
// and cosine are given.
func ellipsePoint(cx, cy, rx, ry, sinRot, cosRot, ux, uy float64) (float64, float64) {
	x, y := rx*ux, ry*uy
	return cx + cosRot*x - sinRot*y, cy + sinRot*x + cosRot*y
}

// arcSegments appends cubic segments approximating the elliptical arc
// from angle a0 sweeping by sweep. Each segment spans at most a quarter
// turn. The current point must already be at the arc start.
func (b *pathBuilder) arcSegments(m Matrix, cx, cy, rx, ry, rot, a0, sweep float64) {
	if sweep == 0 {
		return
	}
	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	d := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(d/4)
	sinRot, cosRot := math.Sincos(rot)

	t0 := a0
	for i := 0; i < n; i++ {
		t1 := a0 + d*float64(i+1)
		s0, c0 := math.Sincos(t0)
		s1, c1 := math.Sincos(t1)
		c1x, c1y := ellipsePoint(cx, cy, rx, ry, sinRot, cosRot, c0-k*s0, s0+k*c0)
		c2x, c2y := ellipsePoint(cx, cy, rx, ry, sinRot, cosRot, c1+k*s1, s1-k*c1)
		x, y := ellipsePoint(cx, cy, rx, ry, sinRot, cosRot, c1, s1)
		b.cubicTo(m, c1x, c1y, c2x, c2y, x, y)
		t0 = t1
	}
}

// ellipse adds an elliptical arc. The arc start joins the current point
// with a straight line, or starts a new subpath when there is none.
func (b *pathBuilder) ellipse(m Matrix, x, y, rx, ry, rot, a0, a1 float64, anticlockwise bool) error {
	if !finite(x, y, rx, ry, rot, a0, a1) {
		return nil
	}
	if rx < 0 || ry < 0 {
		return fmt.Errorf("%w: negative radius (%g, %g)", ErrPath, rx, ry)
	}
	sinRot, cosRot := math.Sincos(rot)
	s0, c0 := math.Sincos(a0)
	sx, sy := ellipsePoint(x, y, rx, ry, sinRot, cosRot, c0, s0)
	if b.hasCur {
		b.lineTo(m, sx, sy)
	} else {
		b.moveTo(m, sx, sy)
	}
	b.arcSegments(m, x, y, rx, ry, rot, a0, arcSweep(a0, a1, anticlockwise))
	return nil
}

// arc adds a circular arc.
func (b *pathBuilder) arc(m Matrix, x, y, r, a0, a1 float64, anticlockwise bool) error {
	if r < 0 {
		return fmt.Errorf("%w: negative radius %g", ErrPath, r)
	}
	return b.ellipse(m, x, y, r, r, 0, a0, a1, anticlockwise)
}

// arcTo adds an arc of radius r tangent to the lines from the current
// point to (x1, y1) and from (x1, y1) to (x2, y2). Degenerate input
// becomes a straight line to (x1, y1).
func (b *pathBuilder) arcTo(m Matrix, x1, y1, x2, y2, r float64) error {
	if !finite(x1, y1, x2, y2, r) {
		return nil
	}
	if r < 0 {
		return fmt.Errorf("%w: negative radius %g", ErrPath, r)
	}
	if !b.hasCur {
		b.moveTo(m, x1, y1)
		return nil
	}
	inv, ok := m.Invert()
	if !ok {
		b.lineTo(m, x1, y1)
		return nil
	}
	px, py := inv.Apply(b.cur.X, b.cur.Y)
	p0, p1, p2 := path.Pt(px, py), path.Pt(x1, y1), path.Pt(x2, y2)

	v1, v2 := p0.Sub(p1), p2.Sub(p1)
	l1, l2 := v1.Length(), v2.Length()
	if r == 0 || l1 < 1e-10 || l2 < 1e-10 {
		b.lineTo(m, x1, y1)
		return nil
	}
	v1, v2 = v1.Mul(1/l1), v2.Mul(1/l2)
	cross := v1.Cross(v2)
	if math.Abs(cross) < 1e-10 {
		b.lineTo(m, x1, y1)
		return nil
	}

	// Half of the angle between the two legs.
	half := math.Acos(math.Max(-1, math.Min(1, v1.Dot(v2)))) / 2
	dist := r / math.Tan(half)
	t1 := p1.Add(v1.Mul(dist))
	t2 := p1.Add(v2.Mul(dist))
	c := p1.Add(v1.Add(v2).Normalize().Mul(r / math.Sin(half)))

	a0 := math.Atan2(t1.Y-c.Y, t1.X-c.X)
	a1 := math.Atan2(t2.Y-c.Y, t2.X-c.X)
	b.lineTo(m, t1.X, t1.Y)
	b.arcSegments(m, c.X, c.Y, r, r, 0, a0, arcSweep(a0, a1, cross > 0))
	return nil
}

// roundRectRadii expands a Canvas radii list of one to four entries into
// top-left, top-right, bottom-right and bottom-left radii.
func roundRectRadii(radii []float64) ([4]float64, error) {
	var out [4]float64
	for _, r := range radii {
		if !finite(r) {
			return out, fmt.Errorf("%w: non-finite corner radius", ErrPath)
		}
		if r < 0 {
			return out, fmt.Errorf("%w: negative corner radius %g", ErrPath, r)
		}
	}
	switch len(radii) {
	case 0:
	case 1:
		out = [4]float64{radii[0], radii[0], radii[0], radii[0]}
	case 2:
		out = [4]float64{radii[0], radii[1], radii[0], radii[1]}
	case 3:
		out = [4]float64{radii[0], radii[1], radii[2], radii[1]}
	case 4:
		out = [4]float64{radii[0], radii[1], radii[2], radii[3]}
	default:
		return out, fmt.Errorf("%w: %d corner radii", ErrPath, len(radii))
	}
	return out, nil
}

// roundRect adds a closed rectangle with circular corners drawn as
// cubic curves. Radii that do not fit are scaled down together.
func (b *pathBuilder) roundRect(m Matrix, x, y, w, h float64, radii ...float64) error {
	rr, err := roundRectRadii(radii)
	if err != nil {
		return err
	}
	if !finite(x, y, w, h) {
		return nil
	}
	tl, tr, br, bl := rr[0], rr[1], rr[2], rr[3]
	if w < 0 {
		x, w = x+w, -w
		tl, tr, br, bl = tr, tl, bl, br
	}
	if h < 0 {
		y, h = y+h, -h
		tl, tr, br, bl = bl, br, tr, tl
	}

	scale := 1.0
	fit := func(side, a, c float64) {
		if s := a + c; s > 1e-10 {
			scale = math.Min(scale, side/s)
		}
	}
	fit(w, tl, tr)
	fit(w, bl, br)
	fit(h, tl, bl)
	fit(h, tr, br)
	tl, tr, br, bl = tl*scale, tr*scale, br*scale, bl*scale

	b.moveTo(m, x+tl, y)
	b.lineTo(m, x+w-tr, y)
	b.cubicTo(m, x+w-tr+tr*kappa, y, x+w, y+tr-tr*kappa, x+w, y+tr)
	b.lineTo(m, x+w, y+h-br)
	b.cubicTo(m, x+w, y+h-br+br*kappa, x+w-br+br*kappa, y+h, x+w-br, y+h)
	b.lineTo(m, x+bl, y+h)
	b.cubicTo(m, x+bl-bl*kappa, y+h, x, y+h-bl+bl*kappa, x, y+h-bl)
	b.lineTo(m, x, y+tl)
	b.cubicTo(m, x, y+tl-tl*kappa, x+tl-tl*kappa, y, x+tl, y)
	b.closePath()
	return nil
}

// svgArc adds an SVG endpoint-parameterized arc from (x1, y1), the
// current point, to (x2, y2), converting it to center form first.
// rot is in degrees.
func (b *pathBuilder) svgArc(m Matrix, x1, y1, rx, ry, rot float64, large, sweep bool, x2, y2 float64) {
	if x1 == x2 && y1 == y2 {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		b.lineTo(m, x2, y2)
		return
	}
	phi := rot * math.Pi / 180
	sinPhi, cosPhi := math.Sincos(phi)

	dx2, dy2 := (x1-x2)/2, (y1-y2)/2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	// Grow radii that cannot span the endpoints.
	if lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx, ry = rx*s, ry*s
	}

	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	coef := 0.0
	if den > 0 {
		coef = math.Sqrt(math.Max(0, num/den))
	}
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx
	cx := cosPhi*cxp - sinPhi*cyp + (x1+x2)/2
	cy := sinPhi*cxp + cosPhi*cyp + (y1+y2)/2

	theta := math.Atan2((y1p-cyp)/ry, (x1p-cxp)/rx)
	end := math.Atan2((-y1p-cyp)/ry, (-x1p-cxp)/rx)
	delta := end - theta
	if sweep && delta < 0 {
		delta += 2 * math.Pi
	} else if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	}
	b.arcSegments(m, cx, cy, rx, ry, phi, theta, delta)
}
