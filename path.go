package canvas2d

import (
	"math"

	"github.com/gogpu/canvas2d/internal/path"
)

// pathBuilder records subpaths into a path.Path, mapping every point
// through the matrix passed with each call. The context's current path
// passes its transform, so points are stored in device space as they
// are added; a Path2D passes the identity and stays in its own space.
type pathBuilder struct {
	p      path.Path
	cur    path.Point // current point, in stored space
	start  path.Point // first point of the open subpath, in stored space
	hasCur bool
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func mapPt(m Matrix, x, y float64) path.Point {
	x, y = m.Apply(x, y)
	return path.Pt(x, y)
}

func (b *pathBuilder) reset() {
	b.p.Reset()
	b.cur, b.start, b.hasCur = path.Point{}, path.Point{}, false
}

func (b *pathBuilder) isEmpty() bool { return b.p.IsEmpty() }

// clone returns a deep copy.
func (b *pathBuilder) clone() pathBuilder {
	c := *b
	c.p = *b.p.Clone()
	return c
}

func (b *pathBuilder) moveTo(m Matrix, x, y float64) {
	if !finite(x, y) {
		return
	}
	pt := mapPt(m, x, y)
	b.p.MoveTo(pt)
	b.cur, b.start, b.hasCur = pt, pt, true
}

func (b *pathBuilder) lineTo(m Matrix, x, y float64) {
	if !finite(x, y) {
		return
	}
	if !b.hasCur {
		b.moveTo(m, x, y)
		return
	}
	pt := mapPt(m, x, y)
	b.p.LineTo(pt)
	b.cur = pt
}

func (b *pathBuilder) quadTo(m Matrix, cx, cy, x, y float64) {
	if !finite(cx, cy, x, y) {
		return
	}
	if !b.hasCur {
		b.moveTo(m, cx, cy)
	}
	pt := mapPt(m, x, y)
	b.p.QuadTo(mapPt(m, cx, cy), pt)
	b.cur = pt
}

func (b *pathBuilder) cubicTo(m Matrix, c1x, c1y, c2x, c2y, x, y float64) {
	if !finite(c1x, c1y, c2x, c2y, x, y) {
		return
	}
	if !b.hasCur {
		b.moveTo(m, c1x, c1y)
	}
	pt := mapPt(m, x, y)
	b.p.CubicTo(mapPt(m, c1x, c1y), mapPt(m, c2x, c2y), pt)
	b.cur = pt
}

func (b *pathBuilder) closePath() {
	if !b.hasCur {
		return
	}
	b.p.Close()
	b.cur = b.start
}

// rect adds a closed rectangle starting at the top-left corner and
// running right, down, left.
func (b *pathBuilder) rect(m Matrix, x, y, w, h float64) {
	if !finite(x, y, w, h) {
		return
	}
	b.moveTo(m, x, y)
	b.lineTo(m, x+w, y)
	b.lineTo(m, x+w, y+h)
	b.lineTo(m, x, y+h)
	b.closePath()
}

// appendPath adds every subpath of q, mapped through m.
func (b *pathBuilder) appendPath(q *pathBuilder, m Matrix) {
	if q.p.IsEmpty() {
		return
	}
	f := func(pt path.Point) path.Point { return mapPt(m, pt.X, pt.Y) }
	b.p.Append(q.p.Transform(f))
	b.cur, b.start, b.hasCur = f(q.cur), f(q.start), q.hasCur
}

// transformed returns the stored path mapped through m.
func (b *pathBuilder) transformed(m Matrix) *path.Path {
	if m.IsIdentity() {
		return b.p.Clone()
	}
	return b.p.Transform(func(pt path.Point) path.Point { return mapPt(m, pt.X, pt.Y) })
}
