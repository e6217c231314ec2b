package stroke

import (
	"math"

	"github.com/gogpu/canvas2d/internal/path"
)

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// Stroke defines the style for stroke expansion. Width is in the same
// units as the polylines it is applied to.
type Stroke struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
}

// DefaultStroke returns the initial Canvas stroke settings.
func DefaultStroke() Stroke {
	return Stroke{
		Width:      1,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 10,
	}
}

// Tolerance is the maximum sag allowed when approximating round caps
// and joins with polygons.
const Tolerance = 0.1

// Expand strokes subs and returns polygons to be filled with the
// nonzero rule.
func Expand(subs []path.Subpath, st Stroke) []path.Subpath {
	if !(st.Width > 0) || math.IsInf(st.Width, 0) {
		return nil
	}
	e := expander{st: st, hw: st.Width / 2}
	for _, sp := range subs {
		e.subpath(sp)
	}
	return e.out
}

type expander struct {
	st  Stroke
	hw  float64
	out []path.Subpath
}

func (e *expander) emit(pts ...path.Point) {
	e.out = append(e.out, path.Subpath{Points: orient(pts), Closed: true})
}

func (e *expander) subpath(sp path.Subpath) {
	pts := dedupe(sp.Points)
	if sp.Closed && len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}

	if len(pts) == 1 {
		// A subpath that had segments but no length still gets caps.
		if len(sp.Points) > 1 && !sp.Closed {
			e.dot(pts[0])
		}
		return
	}

	n := len(pts)
	segs := n - 1
	if sp.Closed {
		segs = n
	}
	for i := 0; i < segs; i++ {
		e.segment(pts[i], pts[(i+1)%n])
	}

	if sp.Closed {
		for i := 0; i < n; i++ {
			e.join(pts[(i+n-1)%n], pts[i], pts[(i+1)%n])
		}
		return
	}
	for i := 1; i < n-1; i++ {
		e.join(pts[i-1], pts[i], pts[i+1])
	}
	e.cap(pts[0], pts[0].Sub(pts[1]).Normalize())
	e.cap(pts[n-1], pts[n-1].Sub(pts[n-2]).Normalize())
}

// segment emits the quad covering a-b.
func (e *expander) segment(a, b path.Point) {
	n := b.Sub(a).Normalize().Perp().Mul(e.hw)
	e.emit(a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
}

// join emits the piece filling the outer gap at p between a-p and p-b.
func (e *expander) join(a, p, b path.Point) {
	d0 := p.Sub(a).Normalize()
	d1 := b.Sub(p).Normalize()
	cross := d0.Cross(d1)
	if math.Abs(cross) < 1e-12 && d0.Dot(d1) > 0 {
		return
	}

	if e.st.Join == LineJoinRound {
		e.disc(p)
		return
	}

	s := 1.0
	if cross > 0 {
		s = -1
	}
	o0 := p.Add(d0.Perp().Mul(e.hw * s))
	o1 := p.Add(d1.Perp().Mul(e.hw * s))

	if e.st.Join == LineJoinMiter {
		// 1/sin(theta/2) where theta is the angle between the segments.
		cosTheta := -d0.Dot(d1)
		sinHalf := math.Sqrt(math.Max(0, (1-cosTheta)/2))
		if sinHalf > 1e-12 && 1/sinHalf <= e.st.MiterLimit {
			bisector := o0.Sub(p).Add(o1.Sub(p)).Normalize()
			tip := p.Add(bisector.Mul(e.hw / sinHalf))
			e.emit(p, o0, tip, o1)
			return
		}
	}
	e.emit(p, o0, o1)
}

// cap emits the end cap at p where dir points away from the stroke.
func (e *expander) cap(p, dir path.Point) {
	switch e.st.Cap {
	case LineCapRound:
		e.disc(p)
	case LineCapSquare:
		n := dir.Perp().Mul(e.hw)
		ext := p.Add(dir.Mul(e.hw))
		e.emit(p.Add(n), ext.Add(n), ext.Sub(n), p.Sub(n))
	}
}

// dot draws the cap shape of a zero-length subpath.
func (e *expander) dot(p path.Point) {
	switch e.st.Cap {
	case LineCapRound:
		e.disc(p)
	case LineCapSquare:
		h := e.hw
		e.emit(path.Pt(p.X-h, p.Y-h), path.Pt(p.X+h, p.Y-h), path.Pt(p.X+h, p.Y+h), path.Pt(p.X-h, p.Y+h))
	}
}

// disc emits a polygon approximating the circle of radius hw around c.
func (e *expander) disc(c path.Point) {
	n := circleSegments(e.hw)
	pts := make([]path.Point, n)
	for i := range pts {
		s, co := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		pts[i] = path.Pt(c.X+co*e.hw, c.Y+s*e.hw)
	}
	e.emit(pts...)
}

// circleSegments returns a segment count keeping the sag below Tolerance.
func circleSegments(r float64) int {
	if r <= Tolerance {
		return 8
	}
	step := 2 * math.Acos(1-Tolerance/r)
	n := int(math.Ceil(2 * math.Pi / step))
	return min(max(n, 8), 512)
}

// orient reverses pts if needed so every emitted polygon has negative
// signed area in y-down device space.
func orient(pts []path.Point) []path.Point {
	if signedArea(pts) > 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}
	return pts
}

func signedArea(pts []path.Point) float64 {
	var a float64
	for i := range pts {
		a += pts[i].Cross(pts[(i+1)%len(pts)])
	}
	return a / 2
}

// dedupe drops consecutive duplicate points.
func dedupe(pts []path.Point) []path.Point {
	out := make([]path.Point, 0, len(pts))
	for i, p := range pts {
		if i > 0 && p == out[len(out)-1] {
			continue
		}
		out = append(out, p)
	}
	return out
}
