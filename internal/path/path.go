// Package path holds device-space path geometry shared by the rasterizer
// and the stroker.
package path

import "math"

// Point is a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point        { return Point{X: p.X + q.X, Y: p.Y + q.Y} }
func (p Point) Sub(q Point) Point        { return Point{X: p.X - q.X, Y: p.Y - q.Y} }
func (p Point) Mul(s float64) Point      { return Point{X: p.X * s, Y: p.Y * s} }
func (p Point) Dot(q Point) float64      { return p.X*q.X + p.Y*q.Y }
func (p Point) Cross(q Point) float64    { return p.X*q.Y - p.Y*q.X }
func (p Point) Length() float64          { return math.Hypot(p.X, p.Y) }
func (p Point) Distance(q Point) float64 { return p.Sub(q).Length() }

// Lerp interpolates between p and q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// Normalize returns the unit vector along p, or the zero vector.
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return Point{}
	}
	return Point{X: p.X / l, Y: p.Y / l}
}

// Perp returns p rotated by 90 degrees.
func (p Point) Perp() Point              { return Point{X: -p.Y, Y: p.X} }

// IsFinite reports whether both coordinates are finite.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Verb is a path command.
type Verb uint8

// Path verbs.
const (
	MoveTo Verb = iota
	LineTo
	QuadTo
	CubicTo
	Close
)

// points returns how many points a verb consumes.
func (v Verb) points() int {
	switch v {
	case MoveTo, LineTo:
		return 1
	case QuadTo:
		return 2
	case CubicTo:
		return 3
	}
	return 0
}

// Path is a sequence of subpaths made of lines and Bézier curves.
// The zero value is an empty path.
type Path struct {
	verbs []Verb
	pts   []Point
}

// MoveTo starts a new subpath.
func (p *Path) MoveTo(pt Point) {
	p.verbs = append(p.verbs, MoveTo)
	p.pts = append(p.pts, pt)
}

// LineTo adds a line segment.
func (p *Path) LineTo(pt Point) {
	p.verbs = append(p.verbs, LineTo)
	p.pts = append(p.pts, pt)
}

// QuadTo adds a quadratic Bézier segment.
func (p *Path) QuadTo(c, pt Point) {
	p.verbs = append(p.verbs, QuadTo)
	p.pts = append(p.pts, c, pt)
}

// CubicTo adds a cubic Bézier segment.
func (p *Path) CubicTo(c1, c2, pt Point) {
	p.verbs = append(p.verbs, CubicTo)
	p.pts = append(p.pts, c1, c2, pt)
}

// Close closes the current subpath.
func (p *Path) Close() {
	if len(p.verbs) == 0 || p.verbs[len(p.verbs)-1] == Close {
		return
	}
	p.verbs = append(p.verbs, Close)
}

// Reset empties the path, keeping its storage.
func (p *Path) Reset() {
	p.verbs = p.verbs[:0]
	p.pts = p.pts[:0]
}

// IsEmpty reports whether the path has no verbs.
func (p *Path) IsEmpty() bool { return len(p.verbs) == 0 }

// Verbs returns the path verbs. The slice must not be modified.
func (p *Path) Verbs() []Verb { return p.verbs }

// Points returns the path points. The slice must not be modified.
func (p *Path) Points() []Point { return p.pts }

// Clone returns a deep copy of p.
func (p *Path) Clone() *Path {
	return &Path{
		verbs: append([]Verb(nil), p.verbs...),
		pts:   append([]Point(nil), p.pts...),
	}
}

// Append adds all subpaths of q to p.
func (p *Path) Append(q *Path) {
	p.verbs = append(p.verbs, q.verbs...)
	p.pts = append(p.pts, q.pts...)
}

// Transform returns a copy of p with every point mapped through f.
// Affine maps keep Bézier segments exact.
func (p *Path) Transform(f func(Point) Point) *Path {
	q := &Path{
		verbs: append([]Verb(nil), p.verbs...),
		pts:   make([]Point, len(p.pts)),
	}
	for i, pt := range p.pts {
		q.pts[i] = f(pt)
	}
	return q
}

// Walk calls fn for every verb with the points it consumes.
func (p *Path) Walk(fn func(v Verb, pts []Point)) {
	i := 0
	for _, v := range p.verbs {
		n := v.points()
		fn(v, p.pts[i:i+n])
		i += n
	}
}

// Rect is an axis-aligned rectangle with Min inclusive and Max exclusive.
type Rect struct {
	Min, Max Point
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return !(r.Max.X > r.Min.X) || !(r.Max.Y > r.Min.Y)
}

// Union returns the smallest rectangle containing r and s.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	return Rect{
		Min: Point{X: math.Min(r.Min.X, s.Min.X), Y: math.Min(r.Min.Y, s.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, s.Max.X), Y: math.Max(r.Max.Y, s.Max.Y)},
	}
}

// Inset grows r by d on every side (shrinks for negative d).
func (r Rect) Inset(d float64) Rect {
	return Rect{
		Min: Point{X: r.Min.X - d, Y: r.Min.Y - d},
		Max: Point{X: r.Max.X + d, Y: r.Max.Y + d},
	}
}

// Bounds returns the bounding box of the control points.
// The box is conservative for curves.
func (p *Path) Bounds() Rect {
	if len(p.pts) == 0 {
		return Rect{}
	}
	r := Rect{Min: p.pts[0], Max: p.pts[0]}
	for _, pt := range p.pts[1:] {
		r.Min.X = math.Min(r.Min.X, pt.X)
		r.Min.Y = math.Min(r.Min.Y, pt.Y)
		r.Max.X = math.Max(r.Max.X, pt.X)
		r.Max.Y = math.Max(r.Max.Y, pt.Y)
	}
	return r
}
