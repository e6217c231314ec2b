package canvas2d

import (
	"github.com/gogpu/canvas2d/internal/blend"
	"github.com/gogpu/canvas2d/internal/path"
	"github.com/gogpu/canvas2d/internal/raster"
)

// Fill fills the current path with the fill style. The path is kept.
func (c *Context) Fill(rule FillRule) error {
	if c.closed {
		return ErrContextClosed
	}
	c.fillDevice(&c.path.p, rule, c.state.FillStyle)
	return nil
}

// Stroke strokes the current path with the stroke style. The path is
// kept.
func (c *Context) Stroke() error {
	if c.closed {
		return ErrContextClosed
	}
	c.strokeDevice(&c.path.p)
	return nil
}

// FillPath2D fills p mapped through the current transform.
func (c *Context) FillPath2D(p *Path2D, rule FillRule) error {
	if c.closed {
		return ErrContextClosed
	}
	if p == nil {
		return nil
	}
	c.fillDevice(p.device(c.state.Transform), rule, c.state.FillStyle)
	return nil
}

// StrokePath2D strokes p in user space and maps the outline through the
// current transform.
func (c *Context) StrokePath2D(p *Path2D) error {
	if c.closed {
		return ErrContextClosed
	}
	if p == nil {
		return nil
	}
	c.strokeLocal(&p.b.p, c.state.Transform)
	return nil
}

// rectPath returns the rectangle (x, y, w, h) mapped through the current
// transform, leaving the current path alone.
func (c *Context) rectPath(x, y, w, h float64) *path.Path {
	var b pathBuilder
	b.rect(c.state.Transform, x, y, w, h)
	return &b.p
}

// FillRect fills a rectangle without touching the current path.
func (c *Context) FillRect(x, y, w, h float64) error {
	if c.closed {
		return ErrContextClosed
	}
	if w == 0 || h == 0 {
		return nil
	}
	c.fillDevice(c.rectPath(x, y, w, h), FillRuleNonZero, c.state.FillStyle)
	return nil
}

// StrokeRect strokes a rectangle without touching the current path.
func (c *Context) StrokeRect(x, y, w, h float64) error {
	if c.closed {
		return ErrContextClosed
	}
	c.strokeDevice(c.rectPath(x, y, w, h))
	return nil
}

// ClearRect makes the pixels of a rectangle transparent. The rectangle
// goes through the transform and the clip; global alpha and the
// composite operation do not apply.
func (c *Context) ClearRect(x, y, w, h float64) error {
	if c.closed {
		return ErrContextClosed
	}
	if w == 0 || h == 0 {
		return nil
	}
	subs := c.rectPath(x, y, w, h).Flatten(path.Tolerance)
	m := raster.Fill(c.width, c.height, subs, raster.NonZero)
	c.composite(m, solidShader{}, blend.BlendClear)
	return nil
}

// Clip replaces the clip of the current state with the current path.
// The path points are already in device space, so the stored clip
// transform is the identity. The current path is kept.
func (c *Context) Clip(rule FillRule) {
	if c.closed {
		return
	}
	c.state.Clip = &Clip{path: c.path.p.Clone(), transform: Identity(), rule: rule}
}

// ClipPath2D replaces the clip of the current state with p. The current
// transform is stored with it, so later transform changes do not move
// the clip.
func (c *Context) ClipPath2D(p *Path2D, rule FillRule) {
	if c.closed || p == nil {
		return
	}
	c.state.Clip = &Clip{path: p.b.p.Clone(), transform: c.state.Transform, rule: rule}
}

// ResetClip removes the clip of the current state.
func (c *Context) ResetClip() {
	c.state.Clip = nil
}

func inside(w int, rule FillRule) bool {
	if rule == FillRuleEvenOdd {
		return w%2 != 0
	}
	return w != 0
}

// IsPointInPath reports whether the device point (x, y) is inside the
// current path.
func (c *Context) IsPointInPath(x, y float64, rule FillRule) bool {
	if !finite(x, y) {
		return false
	}
	subs := c.path.p.Flatten(path.Tolerance)
	return inside(path.Winding(subs, path.Pt(x, y)), rule)
}

// IsPointInPath2D reports whether the device point (x, y) is inside p
// mapped through the current transform.
func (c *Context) IsPointInPath2D(p *Path2D, x, y float64, rule FillRule) bool {
	if p == nil || !finite(x, y) {
		return false
	}
	subs := p.device(c.state.Transform).Flatten(path.Tolerance)
	return inside(path.Winding(subs, path.Pt(x, y)), rule)
}

// IsPointInStroke reports whether the device point (x, y) is inside the
// area the current path would cover when stroked.
func (c *Context) IsPointInStroke(x, y float64) bool {
	if !finite(x, y) {
		return false
	}
	k := c.state.Transform.AverageScale()
	polys := c.strokeOutline(c.path.p.Flatten(path.Tolerance), k)
	return inside(path.Winding(polys, path.Pt(x, y)), FillRuleNonZero)
}
