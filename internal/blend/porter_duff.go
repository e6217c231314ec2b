// Package blend implements the compositing operators and blend modes of
// the Canvas globalCompositeOperation property.
//
// All operations work on premultiplied colors with float32 components in
// [0, 1].
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// BlendMode is a compositing operator or blend mode.
type BlendMode uint8

const (
	// Porter-Duff operators
	BlendSourceOver      BlendMode = iota // S + D*(1-Sa) [default]
	BlendSourceIn                         // S*Da
	BlendSourceOut                        // S*(1-Da)
	BlendSourceAtop                       // S*Da + D*(1-Sa)
	BlendDestinationOver                  // S*(1-Da) + D
	BlendDestinationIn                    // D*Sa
	BlendDestinationOut                   // D*(1-Sa)
	BlendDestinationAtop                  // S*(1-Da) + D*Sa
	BlendPlus                             // S + D, clamped ("lighter")
	BlendSource                           // S ("copy")
	BlendXor                              // S*(1-Da) + D*(1-Sa)
	BlendClear                            // 0, used by clearRect

	// Separable blend modes
	BlendMultiply
	BlendScreen
	BlendOverlay
	BlendDarken
	BlendLighten
	BlendColorDodge
	BlendColorBurn
	BlendHardLight
	BlendSoftLight
	BlendDifference
	BlendExclusion

	// Non-separable blend modes
	BlendHue
	BlendSaturation
	BlendColor
	BlendLuminosity
)

// Pixel is a premultiplied color.
type Pixel struct {
	R, G, B, A float32
}

// Apply composites src over dst with mode and returns the result.
func Apply(mode BlendMode, src, dst Pixel) Pixel {
	switch mode {
	case BlendSourceOver:
		return porterDuff(src, dst, 1, 1-src.A)
	case BlendSourceIn:
		return porterDuff(src, dst, dst.A, 0)
	case BlendSourceOut:
		return porterDuff(src, dst, 1-dst.A, 0)
	case BlendSourceAtop:
		return porterDuff(src, dst, dst.A, 1-src.A)
	case BlendDestinationOver:
		return porterDuff(src, dst, 1-dst.A, 1)
	case BlendDestinationIn:
		return porterDuff(src, dst, 0, src.A)
	case BlendDestinationOut:
		return porterDuff(src, dst, 0, 1-src.A)
	case BlendDestinationAtop:
		return porterDuff(src, dst, 1-dst.A, src.A)
	case BlendPlus:
		return Pixel{
			R: min(src.R+dst.R, 1),
			G: min(src.G+dst.G, 1),
			B: min(src.B+dst.B, 1),
			A: min(src.A+dst.A, 1),
		}
	case BlendSource:
		return src
	case BlendXor:
		return porterDuff(src, dst, 1-dst.A, 1-src.A)
	case BlendClear:
		return Pixel{}
	case BlendHue, BlendSaturation, BlendColor, BlendLuminosity:
		return nonSeparable(mode, src, dst)
	default:
		if f := separableFunc(mode); f != nil {
			return separable(src, dst, f)
		}
		return porterDuff(src, dst, 1, 1-src.A)
	}
}

// porterDuff computes S*fs + D*fd on every channel.
func porterDuff(s, d Pixel, fs, fd float32) Pixel {
	return Pixel{
		R: s.R*fs + d.R*fd,
		G: s.G*fs + d.G*fd,
		B: s.B*fs + d.B*fd,
		A: s.A*fs + d.A*fd,
	}
}

// Lerp returns d + (r-d)*t: the result of an operation applied with
// partial coverage t.
func Lerp(d, r Pixel, t float32) Pixel {
	if t >= 1 {
		return r
	}
	return Pixel{
		R: d.R + (r.R-d.R)*t,
		G: d.G + (r.G-d.G)*t,
		B: d.B + (r.B-d.B)*t,
		A: d.A + (r.A-d.A)*t,
	}
}

// Scale multiplies every channel by k.
func (p Pixel) Scale(k float32) Pixel {
	return Pixel{R: p.R * k, G: p.G * k, B: p.B * k, A: p.A * k}
}

// FromBytes converts premultiplied 8-bit channels.
func FromBytes(r, g, b, a uint8) Pixel {
	return Pixel{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// Bytes converts p to premultiplied 8-bit channels, rounding to nearest
// and keeping color channels no larger than alpha.
func (p Pixel) Bytes() (r, g, b, a uint8) {
	a = unit8(p.A)
	r = min(unit8(p.R), a)
	g = min(unit8(p.G), a)
	b = min(unit8(p.B), a)
	return r, g, b, a
}

func unit8(v float32) uint8 {
	switch {
	case !(v > 0):
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
