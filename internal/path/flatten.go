package path

import "math"

// Tolerance is the default maximum distance in device pixels between a
// curve and its flattened polyline.
const Tolerance = 0.1

// maxDepth bounds recursive subdivision of a single curve.
const maxDepth = 16

// Subpath is a flattened polyline.
type Subpath struct {
	Points []Point
	Closed bool
}

// Flatten converts p into polylines with curves subdivided until they
// are within tol of the true curve.
func (p *Path) Flatten(tol float64) []Subpath {
	if tol <= 0 {
		tol = Tolerance
	}
	var (
		out     []Subpath
		cur     []Point
		current Point
	)
	flush := func(closed bool) {
		if len(cur) > 0 {
			out = append(out, Subpath{Points: cur, Closed: closed})
		}
		cur = nil
	}

	p.Walk(func(v Verb, pts []Point) {
		switch v {
		case MoveTo:
			flush(false)
			current = pts[0]
			cur = []Point{current}
		case LineTo:
			if cur == nil {
				cur = []Point{current}
			}
			current = pts[0]
			cur = append(cur, current)
		case QuadTo:
			if cur == nil {
				cur = []Point{current}
			}
			cur = flattenQuad(cur, current, pts[0], pts[1], tol, 0)
			current = pts[1]
		case CubicTo:
			if cur == nil {
				cur = []Point{current}
			}
			cur = flattenCubic(cur, current, pts[0], pts[1], pts[2], tol, 0)
			current = pts[2]
		case Close:
			if len(cur) > 0 {
				current = cur[0]
			}
			flush(true)
		}
	})
	flush(false)
	return out
}

// flattenQuad appends the flattened quadratic p0-p1-p2 (excluding p0).
func flattenQuad(dst []Point, p0, p1, p2 Point, tol float64, depth int) []Point {
	if depth >= maxDepth || distanceToLine(p1, p0, p2) < tol {
		return append(dst, p2)
	}
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := q0.Lerp(q1, 0.5)
	dst = flattenQuad(dst, p0, q0, q2, tol, depth+1)
	return flattenQuad(dst, q2, q1, p2, tol, depth+1)
}

// flattenCubic appends the flattened cubic p0-p1-p2-p3 (excluding p0),
// subdividing with de Casteljau's algorithm.
func flattenCubic(dst []Point, p0, p1, p2, p3 Point, tol float64, depth int) []Point {
	d := math.Max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3))
	if depth >= maxDepth || d < tol {
		return append(dst, p3)
	}
	q0 := p0.Lerp(p1, 0.5)
	q1 := p1.Lerp(p2, 0.5)
	q2 := p2.Lerp(p3, 0.5)
	r0 := q0.Lerp(q1, 0.5)
	r1 := q1.Lerp(q2, 0.5)
	s := r0.Lerp(r1, 0.5)
	dst = flattenCubic(dst, p0, q0, r0, s, tol, depth+1)
	return flattenCubic(dst, s, r1, q2, p3, tol, depth+1)
}

// distanceToLine returns the distance from p to the segment a-b.
func distanceToLine(p, a, b Point) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 < 1e-20 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / l2
	switch {
	case t < 0:
		return p.Distance(a)
	case t > 1:
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}

// Winding returns the winding number of subs around pt, treating every
// subpath as closed.
func Winding(subs []Subpath, pt Point) int {
	w := 0
	for _, sp := range subs {
		n := len(sp.Points)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			a, b := sp.Points[i], sp.Points[(i+1)%n]
			if a.Y <= pt.Y {
				if b.Y > pt.Y && b.Sub(a).Cross(pt.Sub(a)) > 0 {
					w++
				}
			} else if b.Y <= pt.Y && b.Sub(a).Cross(pt.Sub(a)) < 0 {
				w--
			}
		}
	}
	return w
}
