package canvas2d

// Points of the current path are mapped through the transform current at
// the time of each call, so changing the transform mid-path only affects
// later segments.

// BeginPath discards the current path.
func (c *Context) BeginPath() {
	c.path.reset()
}

// MoveTo starts a new subpath at (x, y).
func (c *Context) MoveTo(x, y float64) {
	c.path.moveTo(c.state.Transform, x, y)
}

// LineTo adds a straight line to (x, y).
func (c *Context) LineTo(x, y float64) {
	c.path.lineTo(c.state.Transform, x, y)
}

// QuadraticCurveTo adds a quadratic Bézier curve.
func (c *Context) QuadraticCurveTo(cx, cy, x, y float64) {
	c.path.quadTo(c.state.Transform, cx, cy, x, y)
}

// BezierCurveTo adds a cubic Bézier curve.
func (c *Context) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.path.cubicTo(c.state.Transform, c1x, c1y, c2x, c2y, x, y)
}

// ClosePath closes the current subpath.
func (c *Context) ClosePath() {
	c.path.closePath()
}

// Rect adds a closed rectangle: top-left, top-right, bottom-right,
// bottom-left.
func (c *Context) Rect(x, y, w, h float64) {
	c.path.rect(c.state.Transform, x, y, w, h)
}

// RoundRect adds a rectangle with rounded corners. radii lists one to
// four corner radii in Canvas order; negative radii fail with ErrPath.
func (c *Context) RoundRect(x, y, w, h float64, radii ...float64) error {
	return c.path.roundRect(c.state.Transform, x, y, w, h, radii...)
}

// Arc adds a circular arc centered at (x, y). Angles are in radians,
// measured clockwise on screen from the positive x axis. A negative
// radius fails with ErrPath.
func (c *Context) Arc(x, y, r, startAngle, endAngle float64, anticlockwise bool) error {
	return c.path.arc(c.state.Transform, x, y, r, startAngle, endAngle, anticlockwise)
}

// ArcTo adds an arc of radius r tangent to the line from the current
// point to (x1, y1) and the line from (x1, y1) to (x2, y2).
func (c *Context) ArcTo(x1, y1, x2, y2, r float64) error {
	return c.path.arcTo(c.state.Transform, x1, y1, x2, y2, r)
}

// Ellipse adds an elliptical arc rotated by rotation radians.
func (c *Context) Ellipse(x, y, rx, ry, rotation, startAngle, endAngle float64, anticlockwise bool) error {
	return c.path.ellipse(c.state.Transform, x, y, rx, ry, rotation, startAngle, endAngle, anticlockwise)
}

// CurrentPath returns a copy of the current path in device space.
func (c *Context) CurrentPath() *Path2D {
	return &Path2D{b: c.path.clone()}
}
