package canvas2d

import (
	"image"
	"math"
)

// Handle types of the Registry. The zero value is never issued.
type (
	CanvasID   uint32
	GradientID uint32
	PatternID  uint32
	PathID     uint32
)

// canvasResource is a context with its gradient and pattern tables.
// Style slots hold the *Gradient or *Pattern itself, so releasing a
// handle does not affect a style already using it.
type canvasResource struct {
	ctx          *Context
	gradients    map[GradientID]*Gradient
	patterns     map[PatternID]*Pattern
	nextGradient GradientID
	nextPattern  PatternID
}

// Registry addresses canvases, gradients, patterns and paths by numeric
// handles for hosts that cannot hold Go pointers. Every operation on an
// unknown handle fails with an error matching ErrResourceNotFound.
//
// A Registry is not safe for concurrent use.
type Registry struct {
	opts       []ContextOption
	canvases   map[CanvasID]*canvasResource
	paths      map[PathID]*Path2D
	nextCanvas CanvasID
	nextPath   PathID
}

// NewRegistry returns an empty registry. opts are applied to every canvas
// it creates.
func NewRegistry(opts ...ContextOption) *Registry {
	return &Registry{
		opts:     opts,
		canvases: make(map[CanvasID]*canvasResource),
		paths:    make(map[PathID]*Path2D),
	}
}

func (r *Registry) canvas(id CanvasID) (*canvasResource, error) {
	res, ok := r.canvases[id]
	if !ok {
		return nil, notFound(ResourceCanvas, uint32(id))
	}
	return res, nil
}

// with runs fn on the context of canvas id.
func (r *Registry) with(id CanvasID, fn func(c *Context)) error {
	res, err := r.canvas(id)
	if err != nil {
		return err
	}
	fn(res.ctx)
	return nil
}

// withErr runs fn on the context of canvas id and returns its error.
func (r *Registry) withErr(id CanvasID, fn func(c *Context) error) error {
	res, err := r.canvas(id)
	if err != nil {
		return err
	}
	return fn(res.ctx)
}

// CreateCanvas creates a transparent canvas and returns its handle.
func (r *Registry) CreateCanvas(width, height int) (CanvasID, error) {
	ctx, err := NewContext(width, height, r.opts...)
	if err != nil {
		return 0, err
	}
	r.nextCanvas++
	id := r.nextCanvas
	r.canvases[id] = &canvasResource{
		ctx:       ctx,
		gradients: make(map[GradientID]*Gradient),
		patterns:  make(map[PatternID]*Pattern),
	}
	Logger().Debug("canvas2d: canvas created", "id", id, "width", width, "height", height)
	return id, nil
}

// DestroyCanvas closes the canvas and releases its tables.
func (r *Registry) DestroyCanvas(id CanvasID) error {
	res, err := r.canvas(id)
	if err != nil {
		return err
	}
	delete(r.canvases, id)
	return res.ctx.Close()
}

// Context returns the context behind a canvas handle.
func (r *Registry) Context(id CanvasID) (*Context, error) {
	res, err := r.canvas(id)
	if err != nil {
		return nil, err
	}
	return res.ctx, nil
}

// Len returns the number of live canvases.
func (r *Registry) Len() int { return len(r.canvases) }

// Save pushes the drawing state.
func (r *Registry) Save(id CanvasID) error { return r.with(id, (*Context).Save) }

// Restore pops the drawing state.
func (r *Registry) Restore(id CanvasID) error { return r.with(id, (*Context).Restore) }

// Reset clears the canvas and restores the initial state.
func (r *Registry) Reset(id CanvasID) error { return r.with(id, (*Context).Reset) }

// SetTransform replaces the transform.
func (r *Registry) SetTransform(id CanvasID, a, b, c, d, e, f float64) error {
	return r.with(id, func(ctx *Context) { ctx.SetTransform(a, b, c, d, e, f) })
}

// GetTransform returns the transform as [a, b, c, d, e, f].
func (r *Registry) GetTransform(id CanvasID) ([6]float64, error) {
	res, err := r.canvas(id)
	if err != nil {
		return [6]float64{}, err
	}
	return res.ctx.GetTransformValues(), nil
}

// Translate composes a translation onto the transform.
func (r *Registry) Translate(id CanvasID, x, y float64) error {
	return r.with(id, func(c *Context) { c.Translate(x, y) })
}

// Rotate composes a rotation onto the transform.
func (r *Registry) Rotate(id CanvasID, angle float64) error {
	return r.with(id, func(c *Context) { c.Rotate(angle) })
}

// Scale composes a scale onto the transform.
func (r *Registry) Scale(id CanvasID, x, y float64) error {
	return r.with(id, func(c *Context) { c.Scale(x, y) })
}

// Transform composes an arbitrary matrix onto the transform.
func (r *Registry) Transform(id CanvasID, a, b, c, d, e, f float64) error {
	return r.with(id, func(ctx *Context) { ctx.Transform(a, b, c, d, e, f) })
}

// ResetTransform sets the identity transform.
func (r *Registry) ResetTransform(id CanvasID) error {
	return r.with(id, (*Context).ResetTransform)
}

// BeginPath discards the current path.
func (r *Registry) BeginPath(id CanvasID) error { return r.with(id, (*Context).BeginPath) }

// MoveTo starts a subpath.
func (r *Registry) MoveTo(id CanvasID, x, y float64) error {
	return r.with(id, func(c *Context) { c.MoveTo(x, y) })
}

// LineTo adds a line.
func (r *Registry) LineTo(id CanvasID, x, y float64) error {
	return r.with(id, func(c *Context) { c.LineTo(x, y) })
}

// Rect adds a rectangle.
func (r *Registry) Rect(id CanvasID, x, y, w, h float64) error {
	return r.with(id, func(c *Context) { c.Rect(x, y, w, h) })
}

// Arc adds a circular arc.
func (r *Registry) Arc(id CanvasID, x, y, radius, start, end float64, anticlockwise bool) error {
	return r.withErr(id, func(c *Context) error { return c.Arc(x, y, radius, start, end, anticlockwise) })
}

// QuadraticCurveTo adds a quadratic Bézier curve.
func (r *Registry) QuadraticCurveTo(id CanvasID, cx, cy, x, y float64) error {
	return r.with(id, func(c *Context) { c.QuadraticCurveTo(cx, cy, x, y) })
}

// BezierCurveTo adds a cubic Bézier curve.
func (r *Registry) BezierCurveTo(id CanvasID, c1x, c1y, c2x, c2y, x, y float64) error {
	return r.with(id, func(c *Context) { c.BezierCurveTo(c1x, c1y, c2x, c2y, x, y) })
}

// ClosePath closes the current subpath.
func (r *Registry) ClosePath(id CanvasID) error { return r.with(id, (*Context).ClosePath) }

// Fill fills the current path.
func (r *Registry) Fill(id CanvasID, rule FillRule) error {
	return r.withErr(id, func(c *Context) error { return c.Fill(rule) })
}

// Stroke strokes the current path.
func (r *Registry) Stroke(id CanvasID) error { return r.withErr(id, (*Context).Stroke) }

// FillRect fills a rectangle.
func (r *Registry) FillRect(id CanvasID, x, y, w, h float64) error {
	return r.withErr(id, func(c *Context) error { return c.FillRect(x, y, w, h) })
}

// ClearRect clears a rectangle.
func (r *Registry) ClearRect(id CanvasID, x, y, w, h float64) error {
	return r.withErr(id, func(c *Context) error { return c.ClearRect(x, y, w, h) })
}

// Clip replaces the clip with the current path.
func (r *Registry) Clip(id CanvasID, rule FillRule) error {
	return r.with(id, func(c *Context) { c.Clip(rule) })
}

// SetFillStyle sets a solid fill color from CSS.
func (r *Registry) SetFillStyle(id CanvasID, css string) error {
	return r.withErr(id, func(c *Context) error { return c.SetFillStyle(css) })
}

// SetStrokeStyle sets a solid stroke color from CSS.
func (r *Registry) SetStrokeStyle(id CanvasID, css string) error {
	return r.withErr(id, func(c *Context) error { return c.SetStrokeStyle(css) })
}

// SetLineWidth sets the stroke width.
func (r *Registry) SetLineWidth(id CanvasID, w float64) error {
	return r.with(id, func(c *Context) { c.SetLineWidth(w) })
}

// SetShadow sets the shadow color, blur and offset in one call. On a
// color parse error nothing changes.
func (r *Registry) SetShadow(id CanvasID, css string, blur, offsetX, offsetY float64) error {
	return r.withErr(id, func(c *Context) error {
		if err := c.SetShadowColor(css); err != nil {
			return err
		}
		c.SetShadowBlur(blur)
		c.SetShadowOffsetX(offsetX)
		c.SetShadowOffsetY(offsetY)
		return nil
	})
}

// SetFont sets the font from a CSS shorthand.
func (r *Registry) SetFont(id CanvasID, css string) error {
	return r.withErr(id, func(c *Context) error { return c.SetFont(css) })
}

// FillText fills text. A maxWidth of nil means unconstrained.
func (r *Registry) FillText(id CanvasID, s string, x, y float64, maxWidth *float64) error {
	mw := unconstrained(maxWidth)
	return r.withErr(id, func(c *Context) error { return c.drawText(s, x, y, mw, true) })
}

// StrokeText strokes text. A maxWidth of nil means unconstrained.
func (r *Registry) StrokeText(id CanvasID, s string, x, y float64, maxWidth *float64) error {
	mw := unconstrained(maxWidth)
	return r.withErr(id, func(c *Context) error { return c.drawText(s, x, y, mw, false) })
}

// MeasureText measures text in the current font.
func (r *Registry) MeasureText(id CanvasID, s string) (TextMetrics, error) {
	res, err := r.canvas(id)
	if err != nil {
		return TextMetrics{}, err
	}
	return res.ctx.MeasureText(s)
}

func unconstrained(maxWidth *float64) float64 {
	if maxWidth == nil {
		return math.Inf(1)
	}
	return *maxWidth
}

// CreateLinearGradient creates a linear gradient in the canvas table.
func (r *Registry) CreateLinearGradient(id CanvasID, x0, y0, x1, y1 float64) (GradientID, error) {
	res, err := r.canvas(id)
	if err != nil {
		return 0, err
	}
	return res.addGradient(NewLinearGradient(x0, y0, x1, y1)), nil
}

// CreateRadialGradient creates a radial gradient in the canvas table.
func (r *Registry) CreateRadialGradient(id CanvasID, x0, y0, r0, x1, y1, r1 float64) (GradientID, error) {
	res, err := r.canvas(id)
	if err != nil {
		return 0, err
	}
	g, err := NewRadialGradient(x0, y0, r0, x1, y1, r1)
	if err != nil {
		return 0, err
	}
	return res.addGradient(g), nil
}

// CreateConicGradient creates a conic gradient in the canvas table.
func (r *Registry) CreateConicGradient(id CanvasID, angle, x, y float64) (GradientID, error) {
	res, err := r.canvas(id)
	if err != nil {
		return 0, err
	}
	return res.addGradient(NewConicGradient(angle, x, y)), nil
}

func (res *canvasResource) addGradient(g *Gradient) GradientID {
	res.nextGradient++
	res.gradients[res.nextGradient] = g
	return res.nextGradient
}

func (res *canvasResource) gradient(id GradientID) (*Gradient, error) {
	g, ok := res.gradients[id]
	if !ok {
		return nil, notFound(ResourceGradient, uint32(id))
	}
	return g, nil
}

func (res *canvasResource) pattern(id PatternID) (*Pattern, error) {
	p, ok := res.patterns[id]
	if !ok {
		return nil, notFound(ResourcePattern, uint32(id))
	}
	return p, nil
}

// AddColorStop adds a color stop to a gradient.
func (r *Registry) AddColorStop(id CanvasID, gid GradientID, offset float64, css string) error {
	res, err := r.canvas(id)
	if err != nil {
		return err
	}
	g, err := res.gradient(gid)
	if err != nil {
		return err
	}
	return g.AddColorStop(offset, css)
}

// SetFillGradient makes a gradient the fill style.
func (r *Registry) SetFillGradient(id CanvasID, gid GradientID) error {
	return r.setGradient(id, gid, (*Context).SetFillGradient)
}

// SetStrokeGradient makes a gradient the stroke style.
func (r *Registry) SetStrokeGradient(id CanvasID, gid GradientID) error {
	return r.setGradient(id, gid, (*Context).SetStrokeGradient)
}

func (r *Registry) setGradient(id CanvasID, gid GradientID, set func(*Context, *Gradient)) error {
	res, err := r.canvas(id)
	if err != nil {
		return err
	}
	g, err := res.gradient(gid)
	if err != nil {
		return err
	}
	set(res.ctx, g)
	return nil
}

// ReleaseGradient drops a gradient handle. Styles using the gradient keep
// it.
func (r *Registry) ReleaseGradient(id CanvasID, gid GradientID) error {
	res, err := r.canvas(id)
	if err != nil {
		return err
	}
	if _, err := res.gradient(gid); err != nil {
		return err
	}
	delete(res.gradients, gid)
	return nil
}

// CreatePattern creates a pattern from img in the canvas table.
func (r *Registry) CreatePattern(id CanvasID, img image.Image, repetition string) (PatternID, error) {
	res, err := r.canvas(id)
	if err != nil {
		return 0, err
	}
	p, err := res.ctx.CreatePattern(img, repetition)
	if err != nil {
		return 0, err
	}
	res.nextPattern++
	res.patterns[res.nextPattern] = p
	return res.nextPattern, nil
}

// SetFillPattern makes a pattern the fill style.
func (r *Registry) SetFillPattern(id CanvasID, pid PatternID) error {
	return r.setPattern(id, pid, (*Context).SetFillPattern)
}

// SetStrokePattern makes a pattern the stroke style.
func (r *Registry) SetStrokePattern(id CanvasID, pid PatternID) error {
	return r.setPattern(id, pid, (*Context).SetStrokePattern)
}

func (r *Registry) setPattern(id CanvasID, pid PatternID, set func(*Context, *Pattern)) error {
	res, err := r.canvas(id)
	if err != nil {
		return err
	}
	p, err := res.pattern(pid)
	if err != nil {
		return err
	}
	set(res.ctx, p)
	return nil
}

// ReleasePattern drops a pattern handle. Styles using the pattern keep
// it.
func (r *Registry) ReleasePattern(id CanvasID, pid PatternID) error {
	res, err := r.canvas(id)
	if err != nil {
		return err
	}
	if _, err := res.pattern(pid); err != nil {
		return err
	}
	delete(res.patterns, pid)
	return nil
}

// SetImageSmoothingEnabled turns image smoothing on or off.
func (r *Registry) SetImageSmoothingEnabled(id CanvasID, enabled bool) error {
	return r.with(id, func(c *Context) { c.SetImageSmoothingEnabled(enabled) })
}

// SetImageSmoothingQuality sets the smoothing quality from its keyword.
// Unknown keywords are ignored.
func (r *Registry) SetImageSmoothingQuality(id CanvasID, quality string) error {
	return r.with(id, func(c *Context) {
		if q, ok := ParseImageSmoothingQuality(quality); ok {
			c.SetImageSmoothingQuality(q)
		}
	})
}

// DrawImage draws img scaled into (dx, dy, dw, dh).
func (r *Registry) DrawImage(id CanvasID, img image.Image, dx, dy, dw, dh float64) error {
	return r.withErr(id, func(c *Context) error { return c.DrawImageScaled(img, dx, dy, dw, dh) })
}

// CreatePath creates an empty Path2D and returns its handle.
func (r *Registry) CreatePath() PathID {
	r.nextPath++
	r.paths[r.nextPath] = NewPath2D()
	return r.nextPath
}

// CreatePathFromSVG creates a Path2D from SVG path data.
func (r *Registry) CreatePathFromSVG(d string) (PathID, error) {
	p, err := NewPath2DFromSVG(d)
	if err != nil {
		return 0, err
	}
	r.nextPath++
	r.paths[r.nextPath] = p
	return r.nextPath, nil
}

// Path returns the Path2D behind a path handle.
func (r *Registry) Path(id PathID) (*Path2D, error) {
	p, ok := r.paths[id]
	if !ok {
		return nil, notFound(ResourcePath, uint32(id))
	}
	return p, nil
}

// ReleasePath drops a path handle.
func (r *Registry) ReleasePath(id PathID) error {
	if _, err := r.Path(id); err != nil {
		return err
	}
	delete(r.paths, id)
	return nil
}

// FillPath fills a Path2D on a canvas.
func (r *Registry) FillPath(id CanvasID, pid PathID, rule FillRule) error {
	p, err := r.Path(pid)
	if err != nil {
		return err
	}
	return r.withErr(id, func(c *Context) error { return c.FillPath2D(p, rule) })
}

// StrokePath strokes a Path2D on a canvas.
func (r *Registry) StrokePath(id CanvasID, pid PathID) error {
	p, err := r.Path(pid)
	if err != nil {
		return err
	}
	return r.withErr(id, func(c *Context) error { return c.StrokePath2D(p) })
}

// ClipPath replaces the clip of a canvas with a Path2D.
func (r *Registry) ClipPath(id CanvasID, pid PathID, rule FillRule) error {
	p, err := r.Path(pid)
	if err != nil {
		return err
	}
	return r.with(id, func(c *Context) { c.ClipPath2D(p, rule) })
}

// PNG encodes a canvas as PNG.
func (r *Registry) PNG(id CanvasID) ([]byte, error) {
	res, err := r.canvas(id)
	if err != nil {
		return nil, err
	}
	return res.ctx.PNG()
}

// PixelData returns the non-premultiplied RGBA bytes of a canvas.
func (r *Registry) PixelData(id CanvasID) ([]byte, error) {
	res, err := r.canvas(id)
	if err != nil {
		return nil, err
	}
	return res.ctx.PixelData(), nil
}

// Close destroys every canvas and path.
func (r *Registry) Close() error {
	for id, res := range r.canvases {
		_ = res.ctx.Close()
		delete(r.canvases, id)
	}
	clear(r.paths)
	return nil
}
