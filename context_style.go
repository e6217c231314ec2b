package canvas2d

import (
	"image/color"
	"math"

	"github.com/gogpu/canvas2d/text"
)

// SetFillStyle sets the fill style from a CSS color. On a parse error
// the previous style is kept and an ErrColorParse error is returned.
func (c *Context) SetFillStyle(css string) error {
	col, err := ParseColor(css)
	if err != nil {
		return err
	}
	c.state.FillStyle = StyleSolid{Color: col}
	return nil
}

// SetStrokeStyle sets the stroke style from a CSS color.
func (c *Context) SetStrokeStyle(css string) error {
	col, err := ParseColor(css)
	if err != nil {
		return err
	}
	c.state.StrokeStyle = StyleSolid{Color: col}
	return nil
}

// SetFillColor sets a solid fill color.
func (c *Context) SetFillColor(col color.Color) {
	c.state.FillStyle = StyleSolid{Color: FromColor(col)}
}

// SetStrokeColor sets a solid stroke color.
func (c *Context) SetStrokeColor(col color.Color) {
	c.state.StrokeStyle = StyleSolid{Color: FromColor(col)}
}

// SetFillGradient paints fills with g. A nil gradient is ignored.
func (c *Context) SetFillGradient(g *Gradient) {
	if g != nil {
		c.state.FillStyle = StyleGradient{Gradient: g}
	}
}

// SetStrokeGradient paints strokes with g. A nil gradient is ignored.
func (c *Context) SetStrokeGradient(g *Gradient) {
	if g != nil {
		c.state.StrokeStyle = StyleGradient{Gradient: g}
	}
}

// SetFillPattern paints fills with p. A nil pattern is ignored.
func (c *Context) SetFillPattern(p *Pattern) {
	if p != nil {
		c.state.FillStyle = StylePattern{Pattern: p}
	}
}

// SetStrokePattern paints strokes with p. A nil pattern is ignored.
func (c *Context) SetStrokePattern(p *Pattern) {
	if p != nil {
		c.state.StrokeStyle = StylePattern{Pattern: p}
	}
}

// SetFillStyleValue sets any fill style. Invalid styles are ignored.
func (c *Context) SetFillStyleValue(s Style) {
	if validStyle(s) {
		c.state.FillStyle = s
	}
}

// SetStrokeStyleValue sets any stroke style. Invalid styles are ignored.
func (c *Context) SetStrokeStyleValue(s Style) {
	if validStyle(s) {
		c.state.StrokeStyle = s
	}
}

// FillStyle returns the current fill style.
func (c *Context) FillStyle() Style { return c.state.FillStyle }

// StrokeStyle returns the current stroke style.
func (c *Context) StrokeStyle() Style { return c.state.StrokeStyle }

// SetLineWidth sets the stroke width in user units. Values that are not
// finite and positive are ignored.
func (c *Context) SetLineWidth(w float64) {
	if w > 0 && !math.IsInf(w, 0) {
		c.state.LineWidth = w
	}
}

// LineWidth returns the stroke width.
func (c *Context) LineWidth() float64 { return c.state.LineWidth }

// SetLineCap sets the shape of open stroke ends.
func (c *Context) SetLineCap(lc LineCap) {
	if lc >= LineCapButt && lc <= LineCapSquare {
		c.state.LineCap = lc
	}
}

// LineCap returns the line cap.
func (c *Context) LineCap() LineCap { return c.state.LineCap }

// SetLineJoin sets the shape of stroke corners.
func (c *Context) SetLineJoin(lj LineJoin) {
	if lj >= LineJoinMiter && lj <= LineJoinBevel {
		c.state.LineJoin = lj
	}
}

// LineJoin returns the line join.
func (c *Context) LineJoin() LineJoin { return c.state.LineJoin }

// SetMiterLimit sets the miter limit. Values that are not finite and
// positive are ignored.
func (c *Context) SetMiterLimit(limit float64) {
	if limit > 0 && !math.IsInf(limit, 0) {
		c.state.MiterLimit = limit
	}
}

// MiterLimit returns the miter limit.
func (c *Context) MiterLimit() float64 { return c.state.MiterLimit }

// SetLineDash sets the dash pattern. A list containing a negative or
// non-finite value is ignored; an odd-length list is repeated to make it
// even. An empty list turns dashing off.
func (c *Context) SetLineDash(segments []float64) {
	for _, v := range segments {
		if !(v >= 0) || math.IsInf(v, 0) {
			return
		}
	}
	dash := append([]float64(nil), segments...)
	if len(dash)%2 == 1 {
		dash = append(dash, segments...)
	}
	c.state.LineDash = dash
}

// LineDash returns a copy of the dash pattern.
func (c *Context) LineDash() []float64 {
	return append([]float64(nil), c.state.LineDash...)
}

// SetLineDashOffset sets the dash phase. Non-finite values are ignored.
func (c *Context) SetLineDashOffset(offset float64) {
	if finite(offset) {
		c.state.LineDashOffset = offset
	}
}

// LineDashOffset returns the dash phase.
func (c *Context) LineDashOffset() float64 { return c.state.LineDashOffset }

// SetGlobalAlpha sets the alpha multiplied into all painting. Values
// outside [0, 1] are ignored.
func (c *Context) SetGlobalAlpha(a float64) {
	if a >= 0 && a <= 1 {
		c.state.GlobalAlpha = a
	}
}

// GlobalAlpha returns the global alpha.
func (c *Context) GlobalAlpha() float64 { return c.state.GlobalAlpha }

// SetGlobalCompositeOperation sets the composite operation.
func (c *Context) SetGlobalCompositeOperation(op CompositeOp) {
	if op.valid() {
		c.state.CompositeOp = op
	}
}

// SetGlobalCompositeOperationName sets the composite operation by its
// Canvas keyword. It reports false, keeping the current operation, for
// an unknown keyword.
func (c *Context) SetGlobalCompositeOperationName(name string) bool {
	op, ok := ParseCompositeOp(name)
	if ok {
		c.state.CompositeOp = op
	}
	return ok
}

// GlobalCompositeOperation returns the composite operation.
func (c *Context) GlobalCompositeOperation() CompositeOp { return c.state.CompositeOp }

// SetShadowColor sets the shadow color from a CSS color. On a parse error
// the previous color is kept. Shadows are drawn only while the color is
// not fully transparent.
func (c *Context) SetShadowColor(css string) error {
	col, err := ParseColor(css)
	if err != nil {
		return err
	}
	c.state.ShadowColor = col
	return nil
}

// SetShadowColorValue sets the shadow color.
func (c *Context) SetShadowColorValue(col color.Color) {
	c.state.ShadowColor = FromColor(col)
}

// ShadowColor returns the shadow color.
func (c *Context) ShadowColor() RGBA { return c.state.ShadowColor }

// SetShadowBlur sets the blur level of shadows. It is not affected by
// the transform. Negative and non-finite values are ignored.
func (c *Context) SetShadowBlur(v float64) {
	if v >= 0 && !math.IsInf(v, 0) {
		c.state.ShadowBlur = v
	}
}

// ShadowBlur returns the shadow blur level.
func (c *Context) ShadowBlur() float64 { return c.state.ShadowBlur }

// SetShadowOffsetX sets the horizontal shadow offset in device pixels.
// Non-finite values are ignored.
func (c *Context) SetShadowOffsetX(v float64) {
	if finite(v) {
		c.state.ShadowOffsetX = v
	}
}

// ShadowOffsetX returns the horizontal shadow offset.
func (c *Context) ShadowOffsetX() float64 { return c.state.ShadowOffsetX }

// SetShadowOffsetY sets the vertical shadow offset in device pixels.
func (c *Context) SetShadowOffsetY(v float64) {
	if finite(v) {
		c.state.ShadowOffsetY = v
	}
}

// ShadowOffsetY returns the vertical shadow offset.
func (c *Context) ShadowOffsetY() float64 { return c.state.ShadowOffsetY }

// SetImageSmoothingEnabled turns image smoothing on or off.
func (c *Context) SetImageSmoothingEnabled(enabled bool) {
	c.state.ImageSmoothingEnabled = enabled
}

// ImageSmoothingEnabled reports whether images are smoothed.
func (c *Context) ImageSmoothingEnabled() bool { return c.state.ImageSmoothingEnabled }

// SetImageSmoothingQuality sets the smoothing filter quality.
func (c *Context) SetImageSmoothingQuality(q ImageSmoothingQuality) {
	if q >= ImageSmoothingLow && q <= ImageSmoothingHigh {
		c.state.ImageSmoothingQuality = q
	}
}

// ImageSmoothingQuality returns the smoothing filter quality.
func (c *Context) ImageSmoothingQuality() ImageSmoothingQuality {
	return c.state.ImageSmoothingQuality
}

// SetTextAlign sets the horizontal text alignment.
func (c *Context) SetTextAlign(a text.Align) {
	if a >= text.AlignStart && a <= text.AlignCenter {
		c.state.TextAlign = a
	}
}

// TextAlign returns the text alignment.
func (c *Context) TextAlign() text.Align { return c.state.TextAlign }

// SetTextBaseline sets the text baseline.
func (c *Context) SetTextBaseline(b text.Baseline) {
	if b >= text.BaselineAlphabetic && b <= text.BaselineBottom {
		c.state.TextBaseline = b
	}
}

// TextBaseline returns the text baseline.
func (c *Context) TextBaseline() text.Baseline { return c.state.TextBaseline }

// SetDirection sets the base text direction.
func (c *Context) SetDirection(d text.Direction) {
	if d >= text.DirectionLTR && d <= text.DirectionInherit {
		c.state.Direction = d
	}
}

// Direction returns the base text direction.
func (c *Context) Direction() text.Direction { return c.state.Direction }

// SetLetterSpacing sets extra space added after every glyph, in user
// units. Non-finite values are ignored.
func (c *Context) SetLetterSpacing(v float64) {
	if finite(v) {
		c.state.LetterSpacing = v
	}
}

// LetterSpacing returns the letter spacing.
func (c *Context) LetterSpacing() float64 { return c.state.LetterSpacing }
