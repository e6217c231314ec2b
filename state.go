package canvas2d

import (
	"github.com/gogpu/canvas2d/internal/blend"
	"github.com/gogpu/canvas2d/internal/filter"
	"github.com/gogpu/canvas2d/internal/path"
	"github.com/gogpu/canvas2d/internal/raster"
	"github.com/gogpu/canvas2d/internal/stroke"
	"github.com/gogpu/canvas2d/text"
)

// LineCap is the shape of open stroke ends.
type LineCap int

// Line caps. The zero value is LineCapButt.
const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

var lineCapNames = [...]string{"butt", "round", "square"}

func (c LineCap) String() string {
	if c < 0 || int(c) >= len(lineCapNames) {
		return "butt"
	}
	return lineCapNames[c]
}

// ParseLineCap maps a lineCap keyword to a LineCap.
func ParseLineCap(s string) (LineCap, bool) {
	for i, n := range lineCapNames {
		if n == s {
			return LineCap(i), true
		}
	}
	return LineCapButt, false
}

// LineJoin is the shape of stroke corners.
type LineJoin int

// Line joins. The zero value is LineJoinMiter.
const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

var lineJoinNames = [...]string{"miter", "round", "bevel"}

func (j LineJoin) String() string {
	if j < 0 || int(j) >= len(lineJoinNames) {
		return "miter"
	}
	return lineJoinNames[j]
}

// ParseLineJoin maps a lineJoin keyword to a LineJoin.
func ParseLineJoin(s string) (LineJoin, bool) {
	for i, n := range lineJoinNames {
		if n == s {
			return LineJoin(i), true
		}
	}
	return LineJoinMiter, false
}

// FillRule decides which regions of a self-overlapping path are inside.
type FillRule int

// Fill rules. The zero value is FillRuleNonZero.
const (
	FillRuleNonZero FillRule = iota
	FillRuleEvenOdd
)

func (r FillRule) String() string {
	if r == FillRuleEvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// ParseFillRule maps "nonzero" or "evenodd" to a FillRule.
func ParseFillRule(s string) (FillRule, bool) {
	switch s {
	case "nonzero":
		return FillRuleNonZero, true
	case "evenodd":
		return FillRuleEvenOdd, true
	}
	return FillRuleNonZero, false
}

func (r FillRule) raster() raster.FillRule {
	if r == FillRuleEvenOdd {
		return raster.EvenOdd
	}
	return raster.NonZero
}

// ImageSmoothingQuality selects the resampling filter for scaled images.
type ImageSmoothingQuality int

// Smoothing qualities.
const (
	ImageSmoothingLow ImageSmoothingQuality = iota
	ImageSmoothingMedium
	ImageSmoothingHigh
)

var smoothingNames = [...]string{"low", "medium", "high"}

func (q ImageSmoothingQuality) String() string {
	if q < 0 || int(q) >= len(smoothingNames) {
		return "medium"
	}
	return smoothingNames[q]
}

// ParseImageSmoothingQuality maps "low", "medium" or "high".
func ParseImageSmoothingQuality(s string) (ImageSmoothingQuality, bool) {
	for i, n := range smoothingNames {
		if n == s {
			return ImageSmoothingQuality(i), true
		}
	}
	return ImageSmoothingMedium, false
}

// CompositeOp is a globalCompositeOperation value.
type CompositeOp int

// Composite operations, in the order of their Canvas keywords.
const (
	CompositeSourceOver CompositeOp = iota
	CompositeSourceIn
	CompositeSourceOut
	CompositeSourceAtop
	CompositeDestinationOver
	CompositeDestinationIn
	CompositeDestinationOut
	CompositeDestinationAtop
	CompositeLighter
	CompositeCopy
	CompositeXor
	CompositeMultiply
	CompositeScreen
	CompositeOverlay
	CompositeDarken
	CompositeLighten
	CompositeColorDodge
	CompositeColorBurn
	CompositeHardLight
	CompositeSoftLight
	CompositeDifference
	CompositeExclusion
	CompositeHue
	CompositeSaturation
	CompositeColor
	CompositeLuminosity
)

var compositeOps = [...]struct {
	name string
	mode blend.BlendMode
}{
	{"source-over", blend.BlendSourceOver},
	{"source-in", blend.BlendSourceIn},
	{"source-out", blend.BlendSourceOut},
	{"source-atop", blend.BlendSourceAtop},
	{"destination-over", blend.BlendDestinationOver},
	{"destination-in", blend.BlendDestinationIn},
	{"destination-out", blend.BlendDestinationOut},
	{"destination-atop", blend.BlendDestinationAtop},
	{"lighter", blend.BlendPlus},
	{"copy", blend.BlendSource},
	{"xor", blend.BlendXor},
	{"multiply", blend.BlendMultiply},
	{"screen", blend.BlendScreen},
	{"overlay", blend.BlendOverlay},
	{"darken", blend.BlendDarken},
	{"lighten", blend.BlendLighten},
	{"color-dodge", blend.BlendColorDodge},
	{"color-burn", blend.BlendColorBurn},
	{"hard-light", blend.BlendHardLight},
	{"soft-light", blend.BlendSoftLight},
	{"difference", blend.BlendDifference},
	{"exclusion", blend.BlendExclusion},
	{"hue", blend.BlendHue},
	{"saturation", blend.BlendSaturation},
	{"color", blend.BlendColor},
	{"luminosity", blend.BlendLuminosity},
}

func (op CompositeOp) valid() bool {
	return op >= 0 && int(op) < len(compositeOps)
}

func (op CompositeOp) String() string {
	if !op.valid() {
		return "source-over"
	}
	return compositeOps[op].name
}

func (op CompositeOp) blendMode() blend.BlendMode {
	if !op.valid() {
		return blend.BlendSourceOver
	}
	return compositeOps[op].mode
}

// ParseCompositeOp maps a globalCompositeOperation keyword.
func ParseCompositeOp(s string) (CompositeOp, bool) {
	for i, op := range compositeOps {
		if op.name == s {
			return CompositeOp(i), true
		}
	}
	return CompositeSourceOver, false
}

// Clip is a clip region: a path together with the transform that maps it
// to device space and the fill rule deciding its inside. A Clip is
// immutable, so saved states share it.
type Clip struct {
	path      *path.Path
	transform Matrix
	rule      FillRule
}

// Transform returns the transform that was current when the clip was set
// from a Path2D, or the identity for a clip taken from the current path,
// whose points are already in device space.
func (c *Clip) Transform() Matrix { return c.transform }

// Rule returns the clip fill rule.
func (c *Clip) Rule() FillRule { return c.rule }

// device returns the clip outline in device space.
func (c *Clip) device() *path.Path {
	if c.transform.IsIdentity() {
		return c.path
	}
	m := c.transform
	return c.path.Transform(func(p path.Point) path.Point { return mapPt(m, p.X, p.Y) })
}

// DrawingState is the part of a context saved and restored by Save and
// Restore. The zero value is not meaningful; use DefaultDrawingState.
type DrawingState struct {
	FillStyle   Style
	StrokeStyle Style

	LineWidth      float64
	LineCap        LineCap
	LineJoin       LineJoin
	MiterLimit     float64
	LineDash       []float64
	LineDashOffset float64

	Font          text.FontSpec
	TextAlign     text.Align
	TextBaseline  text.Baseline
	Direction     text.Direction
	LetterSpacing float64

	GlobalAlpha float64
	CompositeOp CompositeOp
	Transform   Matrix
	Clip        *Clip

	ShadowColor   RGBA
	ShadowBlur    float64
	ShadowOffsetX float64
	ShadowOffsetY float64

	ImageSmoothingEnabled bool
	ImageSmoothingQuality ImageSmoothingQuality
}

// DefaultDrawingState returns the initial state of a canvas.
func DefaultDrawingState() DrawingState {
	return DrawingState{
		FillStyle:             defaultStyle(),
		StrokeStyle:           defaultStyle(),
		LineWidth:             1,
		LineCap:               LineCapButt,
		LineJoin:              LineJoinMiter,
		MiterLimit:            10,
		Font:                  text.DefaultFontSpec(),
		TextAlign:             text.AlignStart,
		TextBaseline:          text.BaselineAlphabetic,
		Direction:             text.DirectionLTR,
		GlobalAlpha:           1,
		CompositeOp:           CompositeSourceOver,
		Transform:             Identity(),
		ImageSmoothingEnabled: true,
		ImageSmoothingQuality: ImageSmoothingMedium,
	}
}

// Clone returns a copy of s. Slices are copied; styles and the clip are
// shared, since neither is mutated through a state.
func (s DrawingState) Clone() DrawingState {
	c := s
	c.LineDash = append([]float64(nil), s.LineDash...)
	c.Font = s.Font.Clone()
	return c
}

// shadow returns the shadow settings and whether a shadow is drawn: the
// color must be visible and the shadow must be offset or blurred.
func (s *DrawingState) shadow() (filter.Shadow, bool) {
	sh := filter.Shadow{OffsetX: s.ShadowOffsetX, OffsetY: s.ShadowOffsetY, Blur: s.ShadowBlur}
	return sh, s.ShadowColor.A > 0 && sh.Visible()
}

// strokeParams returns the stroker settings with the width scaled by k.
func (s *DrawingState) strokeParams(k float64) stroke.Stroke {
	return stroke.Stroke{
		Width:      s.LineWidth * k,
		Cap:        stroke.LineCap(s.LineCap),
		Join:       stroke.LineJoin(s.LineJoin),
		MiterLimit: s.MiterLimit,
	}
}

// dash returns the dash pattern and offset scaled by k.
func (s *DrawingState) dash(k float64) ([]float64, float64) {
	if len(s.LineDash) == 0 {
		return nil, 0
	}
	d := make([]float64, len(s.LineDash))
	for i, v := range s.LineDash {
		d[i] = v * k
	}
	return d, s.LineDashOffset * k
}
