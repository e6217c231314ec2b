package canvas2d

// The transform operations compose on the right: T' = T ∘ O, so the
// operation issued last applies to coordinates first. Calls with
// non-finite arguments leave the transform unchanged.

// Translate adds a translation to the current transform.
func (c *Context) Translate(x, y float64) {
	if finite(x, y) {
		c.state.Transform = c.state.Transform.Multiply(Translate(x, y))
	}
}

// Scale adds a scaling to the current transform.
func (c *Context) Scale(x, y float64) {
	if finite(x, y) {
		c.state.Transform = c.state.Transform.Multiply(Scale(x, y))
	}
}

// Rotate adds a rotation by angle radians, clockwise on screen.
func (c *Context) Rotate(angle float64) {
	if finite(angle) {
		c.state.Transform = c.state.Transform.Multiply(Rotate(angle))
	}
}

// Transform multiplies the current transform by the matrix [a b c d e f].
func (c *Context) Transform(a, b, cc, d, e, f float64) {
	if finite(a, b, cc, d, e, f) {
		c.state.Transform = c.state.Transform.Multiply(NewMatrix(a, b, cc, d, e, f))
	}
}

// SetTransform replaces the current transform with [a b c d e f].
func (c *Context) SetTransform(a, b, cc, d, e, f float64) {
	if finite(a, b, cc, d, e, f) {
		c.state.Transform = NewMatrix(a, b, cc, d, e, f)
	}
}

// SetTransformMatrix replaces the current transform with m.
func (c *Context) SetTransformMatrix(m Matrix) {
	if m.IsFinite() {
		c.state.Transform = m
	}
}

// ResetTransform sets the current transform to the identity.
func (c *Context) ResetTransform() {
	c.state.Transform = Identity()
}

// GetTransform returns the current transform.
func (c *Context) GetTransform() Matrix {
	return c.state.Transform
}

// GetTransformValues returns the current transform as [a, b, c, d, e, f].
func (c *Context) GetTransformValues() [6]float64 {
	return c.state.Transform.Values()
}
