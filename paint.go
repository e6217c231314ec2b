package canvas2d

import (
	"image"

	"github.com/gogpu/canvas2d/internal/blend"
	"github.com/gogpu/canvas2d/internal/filter"
	"github.com/gogpu/canvas2d/internal/path"
	"github.com/gogpu/canvas2d/internal/raster"
	"github.com/gogpu/canvas2d/internal/stroke"
)

// shader produces the premultiplied source color of a paint operation for
// each device pixel.
type shader interface {
	shade(x, y int) blend.Pixel
}

type solidShader blend.Pixel

func (s solidShader) shade(int, int) blend.Pixel { return blend.Pixel(s) }

// shaderFor returns the shader painting style under the current state,
// or nil when the style paints nothing.
func (c *Context) shaderFor(style Style) shader {
	alpha := c.state.GlobalAlpha
	switch s := style.(type) {
	case StyleSolid:
		return solidShader(s.Color.WithAlpha(alpha).pixel())
	case StyleGradient:
		if s.Gradient == nil {
			return nil
		}
		return newGradientShader(s.Gradient, c.state.Transform, alpha)
	case StylePattern:
		if s.Pattern == nil {
			return nil
		}
		backing := c.patterns.backing(s.Pattern, c.width, c.height)
		c.painted[s.Pattern.id] = struct{}{}
		return newPatternShader(s.Pattern, backing, c.state.Transform, c.state.ImageSmoothingEnabled, alpha)
	}
	return nil
}

// clipMaskCache holds the rasterized clip of the current state.
type clipMaskCache struct {
	clip *Clip
	mask *raster.Mask
}

// clipMask returns the coverage of the current clip. visible is false
// when a clip is set but covers nothing; mask is nil with visible true
// when there is no clip.
func (c *Context) clipMask() (mask *raster.Mask, visible bool) {
	clip := c.state.Clip
	if clip == nil {
		return nil, true
	}
	if c.clipCache.clip != clip {
		subs := clip.device().Flatten(path.Tolerance)
		c.clipCache = clipMaskCache{
			clip: clip,
			mask: raster.Fill(c.width, c.height, subs, clip.rule.raster()),
		}
	}
	return c.clipCache.mask, c.clipCache.mask != nil
}

// composite blends sh into the canvas through the coverage mask m, the
// clip and the current composite operation. Pixels with no coverage are
// left untouched. m is modified.
func (c *Context) composite(m *raster.Mask, sh shader, mode blend.BlendMode) {
	if m == nil || sh == nil || c.closed {
		return
	}
	clip, visible := c.clipMask()
	if !visible {
		return
	}
	raster.Intersect(m, clip)

	b := m.Rect.Intersect(c.pixmap.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := m.Pix[m.PixOffset(b.Min.X, y):]
		for x := b.Min.X; x < b.Max.X; x++ {
			cov := row[x-b.Min.X]
			if cov == 0 {
				continue
			}
			dst := c.pixmap.pixel(x, y)
			res := blend.Apply(mode, sh.shade(x, y), dst)
			if cov < 255 {
				res = blend.Lerp(dst, res, float32(cov)/255)
			}
			c.pixmap.setPixel(x, y, res)
		}
	}
	c.markDirty(b)
}

// paint composites sh through m with the current composite operation,
// preceded by the shadow when one is set.
func (c *Context) paint(m *raster.Mask, sh shader) {
	if m == nil || sh == nil {
		return
	}
	mode := c.state.CompositeOp.blendMode()
	if s, ok := c.state.shadow(); ok {
		if sm := c.shadowMask(m, sh, s); sm != nil {
			c.composite(sm, solidShader(c.state.ShadowColor.pixel()), mode)
		}
	}
	c.composite(m, sh, mode)
}

// shadowMask returns the shadow cast by painting sh through m. The
// shape's alpha, global alpha included, scales the coverage.
func (c *Context) shadowMask(m *raster.Mask, sh shader, s filter.Shadow) *raster.Mask {
	layer := image.NewAlpha(m.Rect)
	for y := m.Rect.Min.Y; y < m.Rect.Max.Y; y++ {
		for x := m.Rect.Min.X; x < m.Rect.Max.X; x++ {
			cov := m.Pix[m.PixOffset(x, y)]
			if cov == 0 {
				continue
			}
			a := sh.shade(x, y).A * float32(cov)
			layer.Pix[layer.PixOffset(x, y)] = uint8(min(max(a, 0), 255) + 0.5)
		}
	}
	return s.Mask(layer, c.pixmap.Bounds())
}

// fillDevice fills a device-space path with style.
func (c *Context) fillDevice(p *path.Path, rule FillRule, style Style) {
	if p == nil || p.IsEmpty() {
		return
	}
	subs := p.Flatten(path.Tolerance)
	m := raster.Fill(c.width, c.height, subs, rule.raster())
	c.paint(m, c.shaderFor(style))
}

// strokeOutline expands polylines with the current line settings scaled
// by k and returns the outline polygons.
func (c *Context) strokeOutline(subs []path.Subpath, k float64) []path.Subpath {
	if pattern, offset := c.state.dash(k); len(pattern) > 0 {
		subs = stroke.Dash(subs, pattern, offset)
	}
	return stroke.Expand(subs, c.state.strokeParams(k))
}

// strokeDevice strokes a device-space path. Line width and dashes are in
// user units, so they are scaled by the average scale of the transform.
func (c *Context) strokeDevice(p *path.Path) {
	if p == nil || p.IsEmpty() {
		return
	}
	k := c.state.Transform.AverageScale()
	polys := c.strokeOutline(p.Flatten(path.Tolerance), k)
	m := raster.Fill(c.width, c.height, polys, raster.NonZero)
	c.paint(m, c.shaderFor(c.state.StrokeStyle))
}

// strokeLocal strokes a path in user space: the outline is computed with
// unscaled line settings and then mapped through ctm, so non-uniform
// scales and skews distort the stroke as a Canvas does.
func (c *Context) strokeLocal(p *path.Path, ctm Matrix) {
	if p == nil || p.IsEmpty() {
		return
	}
	tol := path.Tolerance
	if k := ctm.AverageScale(); k > 1e-6 {
		tol /= k
	}
	polys := c.strokeOutline(p.Flatten(tol), 1)
	for i := range polys {
		pts := polys[i].Points
		for j, pt := range pts {
			pts[j] = mapPt(ctm, pt.X, pt.Y)
		}
	}
	m := raster.Fill(c.width, c.height, polys, raster.NonZero)
	c.paint(m, c.shaderFor(c.state.StrokeStyle))
}
