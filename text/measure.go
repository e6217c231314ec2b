package text

import (
	"math"

	"golang.org/x/text/unicode/bidi"
)

// Ascent and descent are fixed fractions of the font size rather than
// per-face metrics.
const (
	AscentRatio  = 0.8
	DescentRatio = 0.2
)

// minTextScale is the smallest horizontal squeeze applied for a maxWidth.
// Text that would need more is not drawn.
const minTextScale = 0.001

// Align is the horizontal text alignment relative to the anchor point.
type Align int

// Text alignments. The zero value is AlignStart.
const (
	AlignStart Align = iota
	AlignEnd
	AlignLeft
	AlignRight
	AlignCenter
)

var alignNames = [...]string{"start", "end", "left", "right", "center"}

func (a Align) String() string {
	if a < 0 || int(a) >= len(alignNames) {
		return "start"
	}
	return alignNames[a]
}

// ParseAlign maps a CSS textAlign keyword to an Align.
func ParseAlign(s string) (Align, bool) {
	for i, n := range alignNames {
		if n == s {
			return Align(i), true
		}
	}
	return AlignStart, false
}

// Baseline is the vertical anchor of text.
type Baseline int

// Text baselines. The zero value is BaselineAlphabetic.
const (
	BaselineAlphabetic Baseline = iota
	BaselineTop
	BaselineHanging
	BaselineMiddle
	BaselineIdeographic
	BaselineBottom
)

var baselineNames = [...]string{"alphabetic", "top", "hanging", "middle", "ideographic", "bottom"}

func (b Baseline) String() string {
	if b < 0 || int(b) >= len(baselineNames) {
		return "alphabetic"
	}
	return baselineNames[b]
}

// ParseBaseline maps a CSS textBaseline keyword to a Baseline.
func ParseBaseline(s string) (Baseline, bool) {
	for i, n := range baselineNames {
		if n == s {
			return Baseline(i), true
		}
	}
	return BaselineAlphabetic, false
}

// Direction is the base text direction.
type Direction int

// Text directions. The zero value is DirectionLTR.
const (
	DirectionLTR Direction = iota
	DirectionRTL
	DirectionInherit
)

var directionNames = [...]string{"ltr", "rtl", "inherit"}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "ltr"
	}
	return directionNames[d]
}

// ParseDirection maps a CSS direction keyword to a Direction.
func ParseDirection(s string) (Direction, bool) {
	for i, n := range directionNames {
		if n == s {
			return Direction(i), true
		}
	}
	return DirectionLTR, false
}

// Resolve turns DirectionInherit into the direction of the first strong
// character of s, defaulting to LTR.
func (d Direction) Resolve(s string) Direction {
	if d != DirectionInherit {
		return d
	}
	for len(s) > 0 {
		p, n := bidi.LookupString(s)
		if n == 0 {
			break
		}
		switch p.Class() {
		case bidi.L:
			return DirectionLTR
		case bidi.R, bidi.AL:
			return DirectionRTL
		}
		s = s[n:]
	}
	return DirectionLTR
}

// Ascent returns the ascent used for a font size.
func Ascent(size float64) float64 { return size * AscentRatio }

// Descent returns the descent used for a font size.
func Descent(size float64) float64 { return size * DescentRatio }

// AlignOffset returns the x offset applied to text of the given width.
func AlignOffset(a Align, width float64) float64 {
	switch a {
	case AlignRight, AlignEnd:
		return -width
	case AlignCenter:
		return -width / 2
	default:
		return 0
	}
}

// BaselineOffset returns the y offset from the anchor to the alphabetic
// baseline for the given font size.
func BaselineOffset(b Baseline, size float64) float64 {
	ascent, descent := Ascent(size), Descent(size)
	switch b {
	case BaselineTop:
		return ascent
	case BaselineHanging:
		return ascent * 0.8
	case BaselineMiddle:
		return ascent/2 - descent/2
	case BaselineIdeographic:
		return -descent * 0.5
	case BaselineBottom:
		return -descent
	default:
		return 0
	}
}

// MaxWidthScale returns the horizontal scale that fits width into maxWidth.
// ok is false when nothing should be drawn: maxWidth is not positive or NaN,
// or the text would shrink below a thousandth of its width.
func MaxWidthScale(width, maxWidth float64) (scale float64, ok bool) {
	if math.IsNaN(maxWidth) || maxWidth <= 0 {
		return 0, false
	}
	if math.IsInf(maxWidth, 1) || width <= maxWidth {
		return 1, true
	}
	scale = maxWidth / width
	if scale < minTextScale {
		return 0, false
	}
	return scale, true
}

// Metrics mirrors the Canvas TextMetrics dictionary.
type Metrics struct {
	Width                    float64
	ActualBoundingBoxLeft    float64
	ActualBoundingBoxRight   float64
	ActualBoundingBoxAscent  float64
	ActualBoundingBoxDescent float64
	FontBoundingBoxAscent    float64
	FontBoundingBoxDescent   float64
}

// MetricsFor builds Metrics for text of the given width and font size.
func MetricsFor(width, size float64) Metrics {
	a, d := Ascent(size), Descent(size)
	return Metrics{
		Width:                    width,
		ActualBoundingBoxRight:   width,
		ActualBoundingBoxAscent:  a,
		ActualBoundingBoxDescent: d,
		FontBoundingBoxAscent:    a,
		FontBoundingBoxDescent:   d,
	}
}

// Measure shapes s and reports its metrics. The width is that of the
// widest line.
func (fs *FontSystem) Measure(s string, spec FontSpec, opts LayoutOptions) (Metrics, error) {
	l, err := fs.Layout(s, spec, opts)
	if err != nil {
		return Metrics{}, err
	}
	return MetricsFor(l.Width, spec.Size), nil
}
