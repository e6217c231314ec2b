package canvas2d

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/mazznoer/csscolorparser"

	"github.com/gogpu/canvas2d/internal/blend"
)

// RGBA is a non-premultiplied color with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Common colors.
var (
	Black       = RGBA{A: 1}
	White       = RGBA{R: 1, G: 1, B: 1, A: 1}
	Transparent = RGBA{}
)

// ParseColor parses a CSS color string: named colors, hex forms,
// rgb()/rgba(), hsl()/hsla(), hwb() and "transparent".
// "currentcolor" resolves to black since there is no element to inherit from.
//
// Components are quantized to 8 bits, as a browser canvas stores them.
func ParseColor(s string) (RGBA, error) {
	trimmed := strings.TrimSpace(s)
	if strings.EqualFold(trimmed, "currentcolor") {
		return Black, nil
	}
	c, err := csscolorparser.Parse(trimmed)
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: %q: %v", ErrColorParse, s, err)
	}
	r, g, b, a := c.RGBA255()
	return FromNRGBA(color.NRGBA{R: r, G: g, B: b, A: a}), nil
}

// FromNRGBA converts an 8-bit non-premultiplied color.
func FromNRGBA(c color.NRGBA) RGBA {
	return RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

// FromColor converts any color.Color.
func FromColor(c color.Color) RGBA {
	return FromNRGBA(color.NRGBAModel.Convert(c).(color.NRGBA))
}

// NRGBA converts c to an 8-bit non-premultiplied color.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

// Premultiplied returns the 8-bit premultiplied form of c.
func (c RGBA) Premultiplied() color.RGBA {
	return color.RGBA{
		R: to8(c.R * c.A),
		G: to8(c.G * c.A),
		B: to8(c.B * c.A),
		A: to8(c.A),
	}
}

// WithAlpha returns c with its alpha multiplied by k.
func (c RGBA) WithAlpha(k float64) RGBA {
	c.A = clamp01(c.A * k)
	return c
}

// Lerp interpolates linearly between c and other in non-premultiplied space.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// String serializes c the way a canvas reports fillStyle: "#rrggbb" when
// opaque, "rgba(r, g, b, a)" otherwise.
func (c RGBA) String() string {
	n := c.NRGBA()
	if n.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	a := strconv.FormatFloat(math.Round(float64(n.A)/255*1000)/1000, 'f', -1, 64)
	if n.A == 0 {
		a = "0"
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", n.R, n.G, n.B, a)
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	}
	return v
}

// pixel returns c premultiplied, in compositing precision.
func (c RGBA) pixel() blend.Pixel {
	a := clamp01(c.A)
	return blend.Pixel{
		R: float32(clamp01(c.R) * a),
		G: float32(clamp01(c.G) * a),
		B: float32(clamp01(c.B) * a),
		A: float32(a),
	}
}
