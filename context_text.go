package canvas2d

import (
	"fmt"
	"math"

	"github.com/gogpu/canvas2d/text"
)

// TextMetrics mirrors the Canvas TextMetrics dictionary.
type TextMetrics = text.Metrics

// SetFont sets the font from a CSS font shorthand. On failure the
// previous font is kept and the returned error matches ErrFontParse.
func (c *Context) SetFont(css string) error {
	spec, err := text.ParseFont(css)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFontParse, err)
	}
	c.state.Font = spec
	return nil
}

// SetFontSpec sets an already parsed font. Specs with a size that is not
// finite and positive are ignored.
func (c *Context) SetFontSpec(spec text.FontSpec) {
	if spec.Size > 0 && !math.IsInf(spec.Size, 0) {
		c.state.Font = spec.Clone()
	}
}

// Font returns the current font in canonical CSS form.
func (c *Context) Font() string { return c.state.Font.String() }

// FontSpec returns a copy of the current font.
func (c *Context) FontSpec() text.FontSpec { return c.state.Font.Clone() }

// fontSystem returns the font system, creating it on first use and
// rebuilding it when the shared font config has changed.
func (c *Context) fontSystem() *text.FontSystem {
	if c.fonts == nil {
		c.fonts = text.NewFontSystem(c.shared)
	}
	if c.fonts.Refresh() {
		Logger().Debug("canvas2d: font system refreshed", "version", c.fonts.Version())
	}
	return c.fonts
}

func (c *Context) layout(s string) (*text.Layout, error) {
	l, err := c.fontSystem().Layout(s, c.state.Font, text.LayoutOptions{
		LetterSpacing: c.state.LetterSpacing,
		Direction:     c.state.Direction,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrText, err)
	}
	return l, nil
}

// MeasureText returns the metrics of s in the current font. Ascent and
// descent are fixed fractions of the font size.
func (c *Context) MeasureText(s string) (TextMetrics, error) {
	if c.closed {
		return TextMetrics{}, ErrContextClosed
	}
	l, err := c.layout(s)
	if err != nil {
		return TextMetrics{}, err
	}
	return text.MetricsFor(l.Width, l.Size), nil
}

// FillText fills s with its anchor at (x, y).
func (c *Context) FillText(s string, x, y float64) error {
	return c.drawText(s, x, y, math.Inf(1), true)
}

// FillTextMaxWidth fills s, squeezed horizontally to fit maxWidth. A
// maxWidth that is not positive draws nothing.
func (c *Context) FillTextMaxWidth(s string, x, y, maxWidth float64) error {
	return c.drawText(s, x, y, maxWidth, true)
}

// StrokeText strokes the outlines of s with its anchor at (x, y).
func (c *Context) StrokeText(s string, x, y float64) error {
	return c.drawText(s, x, y, math.Inf(1), false)
}

// StrokeTextMaxWidth strokes s, squeezed horizontally to fit maxWidth.
func (c *Context) StrokeTextMaxWidth(s string, x, y, maxWidth float64) error {
	return c.drawText(s, x, y, maxWidth, false)
}

func (c *Context) drawText(s string, x, y, maxWidth float64, fill bool) error {
	if c.closed {
		return ErrContextClosed
	}
	if !finite(x, y) {
		return nil
	}
	l, err := c.layout(s)
	if err != nil {
		return err
	}
	sx, ok := text.MaxWidthScale(l.Width, maxWidth)
	if !ok || len(l.Lines) == 0 {
		return nil
	}

	ox := x + text.AlignOffset(resolveAlign(c.state.TextAlign, l.Direction), l.Width)
	oy := y + text.BaselineOffset(c.state.TextBaseline, l.Size)
	// The squeeze is anchored at x, so alignment uses the unscaled width.
	squeeze := Translate(x, 0).Multiply(Scale(sx, 1)).Multiply(Translate(-x, 0))

	var b pathBuilder
	if fill {
		sink := textSink{b: &b, m: c.state.Transform.Multiply(squeeze)}
		if err := c.fonts.Outline(l, ox, oy, sink); err != nil {
			return fmt.Errorf("%w: %w", ErrText, err)
		}
		c.fillDevice(&b.p, FillRuleNonZero, c.state.FillStyle)
		return nil
	}
	if err := c.fonts.Outline(l, ox, oy, textSink{b: &b, m: Identity()}); err != nil {
		return fmt.Errorf("%w: %w", ErrText, err)
	}
	c.strokeLocal(&b.p, c.state.Transform.Multiply(squeeze))
	return nil
}

// resolveAlign maps start and end to left and right for the direction.
func resolveAlign(a text.Align, dir text.Direction) text.Align {
	rtl := dir == text.DirectionRTL
	switch {
	case a == text.AlignStart && rtl, a == text.AlignEnd && !rtl:
		return text.AlignRight
	case a == text.AlignStart, a == text.AlignEnd:
		return text.AlignLeft
	}
	return a
}

// textSink collects glyph outlines into a path, mapping them through m.
type textSink struct {
	b *pathBuilder
	m Matrix
}

func (s textSink) MoveTo(x, y float64) { s.b.moveTo(s.m, x, y) }
func (s textSink) LineTo(x, y float64) { s.b.lineTo(s.m, x, y) }
func (s textSink) QuadTo(cx, cy, x, y float64) {
	s.b.quadTo(s.m, cx, cy, x, y)
}
func (s textSink) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	s.b.cubicTo(s.m, c1x, c1y, c2x, c2y, x, y)
}
func (s textSink) Close() { s.b.closePath() }
