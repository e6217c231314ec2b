package canvas2d

import (
	"github.com/gogpu/canvas2d/internal/path"
)

// Path2D is a reusable path in its own coordinate space. It is not bound
// to a canvas: the transform current at the draw call maps it to device
// space.
type Path2D struct {
	b pathBuilder
}

// NewPath2D returns an empty path.
func NewPath2D() *Path2D {
	return &Path2D{}
}

// NewPath2DFromPath returns a copy of p.
func NewPath2DFromPath(p *Path2D) *Path2D {
	if p == nil {
		return NewPath2D()
	}
	return &Path2D{b: p.b.clone()}
}

// Clone returns a copy of p.
func (p *Path2D) Clone() *Path2D {
	return NewPath2DFromPath(p)
}

// IsEmpty reports whether p has no subpaths.
func (p *Path2D) IsEmpty() bool { return p.b.isEmpty() }

// Bounds returns the bounding box of the control points as x, y, width
// and height.
func (p *Path2D) Bounds() (x, y, w, h float64) {
	r := p.b.p.Bounds()
	return r.Min.X, r.Min.Y, r.Max.X - r.Min.X, r.Max.Y - r.Min.Y
}

// AddPath appends the subpaths of q mapped through m.
func (p *Path2D) AddPath(q *Path2D, m Matrix) {
	if q == nil || !m.IsFinite() {
		return
	}
	p.b.appendPath(&q.b, m)
}

// MoveTo starts a new subpath at (x, y).
func (p *Path2D) MoveTo(x, y float64) { p.b.moveTo(Identity(), x, y) }

// LineTo adds a straight line to (x, y).
func (p *Path2D) LineTo(x, y float64) { p.b.lineTo(Identity(), x, y) }

// QuadraticCurveTo adds a quadratic Bézier curve.
func (p *Path2D) QuadraticCurveTo(cx, cy, x, y float64) {
	p.b.quadTo(Identity(), cx, cy, x, y)
}

// BezierCurveTo adds a cubic Bézier curve.
func (p *Path2D) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.b.cubicTo(Identity(), c1x, c1y, c2x, c2y, x, y)
}

// ClosePath closes the current subpath.
func (p *Path2D) ClosePath() { p.b.closePath() }

// Rect adds a closed rectangle.
func (p *Path2D) Rect(x, y, w, h float64) { p.b.rect(Identity(), x, y, w, h) }

// RoundRect adds a rectangle with rounded corners. radii lists one to
// four corner radii in Canvas order.
func (p *Path2D) RoundRect(x, y, w, h float64, radii ...float64) error {
	return p.b.roundRect(Identity(), x, y, w, h, radii...)
}

// Arc adds a circular arc. Angles are in radians.
func (p *Path2D) Arc(x, y, r, startAngle, endAngle float64, anticlockwise bool) error {
	return p.b.arc(Identity(), x, y, r, startAngle, endAngle, anticlockwise)
}

// ArcTo adds an arc tangent to two lines.
func (p *Path2D) ArcTo(x1, y1, x2, y2, r float64) error {
	return p.b.arcTo(Identity(), x1, y1, x2, y2, r)
}

// Ellipse adds an elliptical arc.
func (p *Path2D) Ellipse(x, y, rx, ry, rotation, startAngle, endAngle float64, anticlockwise bool) error {
	return p.b.ellipse(Identity(), x, y, rx, ry, rotation, startAngle, endAngle, anticlockwise)
}

// device returns the path mapped through m.
func (p *Path2D) device(m Matrix) *path.Path {
	return p.b.transformed(m)
}
