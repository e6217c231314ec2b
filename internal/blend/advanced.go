package blend

import "math"

// separable applies the W3C separable blending formula
//
//	Co = (1 - Da)*S + (1 - Sa)*D + Sa*Da*B(Cs, Cd)
//	Ao = Sa + Da - Sa*Da
//
// where Cs and Cd are the unpremultiplied source and backdrop channels.
func separable(s, d Pixel, fn func(cs, cd float32) float32) Pixel {
	if s.A == 0 {
		return d
	}
	if d.A == 0 {
		return s
	}
	sa, da := s.A, d.A
	channel := func(sc, dc float32) float32 {
		cs, cd := sc/sa, dc/da
		return (1-da)*sc + (1-sa)*dc + sa*da*fn(cs, cd)
	}
	return Pixel{
		R: channel(s.R, d.R),
		G: channel(s.G, d.G),
		B: channel(s.B, d.B),
		A: sa + da - sa*da,
	}
}

func separableFunc(mode BlendMode) func(cs, cd float32) float32 {
	switch mode {
	case BlendMultiply:
		return multiply
	case BlendScreen:
		return screen
	case BlendOverlay:
		return func(cs, cd float32) float32 { return hardLight(cd, cs) }
	case BlendDarken:
		return func(cs, cd float32) float32 { return min(cs, cd) }
	case BlendLighten:
		return func(cs, cd float32) float32 { return max(cs, cd) }
	case BlendColorDodge:
		return colorDodge
	case BlendColorBurn:
		return colorBurn
	case BlendHardLight:
		return hardLight
	case BlendSoftLight:
		return softLight
	case BlendDifference:
		return func(cs, cd float32) float32 { return float32(math.Abs(float64(cs - cd))) }
	case BlendExclusion:
		return func(cs, cd float32) float32 { return cs + cd - 2*cs*cd }
	}
	return nil
}

func multiply(cs, cd float32) float32 { return cs * cd }

func screen(cs, cd float32) float32 { return cs + cd - cs*cd }

func hardLight(cs, cd float32) float32 {
	if cs <= 0.5 {
		return multiply(cd, 2*cs)
	}
	return screen(cd, 2*cs-1)
}

func colorDodge(cs, cd float32) float32 {
	switch {
	case cd == 0:
		return 0
	case cs >= 1:
		return 1
	}
	return min(1, cd/(1-cs))
}

func colorBurn(cs, cd float32) float32 {
	switch {
	case cd >= 1:
		return 1
	case cs == 0:
		return 0
	}
	return 1 - min(1, (1-cd)/cs)
}

func softLight(cs, cd float32) float32 {
	if cs <= 0.5 {
		return cd - (1-2*cs)*cd*(1-cd)
	}
	var dx float32
	if cd <= 0.25 {
		dx = ((16*cd-12)*cd + 4) * cd
	} else {
		dx = float32(math.Sqrt(float64(cd)))
	}
	return cd + (2*cs-1)*(dx-cd)
}
