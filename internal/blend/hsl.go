package blend

// Lum returns the luminance of a color using BT.601 coefficients.
func Lum(r, g, b float32) float32 {
	return 0.30*r + 0.59*g + 0.11*b
}

// Sat returns max(r, g, b) - min(r, g, b).
func Sat(r, g, b float32) float32 {
	return max(r, g, b) - min(r, g, b)
}

// ClipColor brings components back into [0, 1] while preserving luminance.
func ClipColor(r, g, b float32) (float32, float32, float32) {
	l := Lum(r, g, b)
	n := min(r, g, b)
	x := max(r, g, b)
	if n < 0 {
		r = l + (r-l)*l/(l-n)
		g = l + (g-l)*l/(l-n)
		b = l + (b-l)*l/(l-n)
	}
	if x > 1 {
		r = l + (r-l)*(1-l)/(x-l)
		g = l + (g-l)*(1-l)/(x-l)
		b = l + (b-l)*(1-l)/(x-l)
	}
	return r, g, b
}

// SetLum shifts a color to luminance l.
func SetLum(r, g, b, l float32) (float32, float32, float32) {
	d := l - Lum(r, g, b)
	return ClipColor(r+d, g+d, b+d)
}

// SetSat rescales a color to saturation s, keeping the order of its
// components. A gray input becomes black.
func SetSat(r, g, b, s float32) (float32, float32, float32) {
	lo, mid, hi := sortRGB(&r, &g, &b)
	if *hi > *lo {
		*mid = (*mid - *lo) * s / (*hi - *lo)
		*hi = s
	} else {
		*mid, *hi = 0, 0
	}
	*lo = 0
	return r, g, b
}

// sortRGB returns pointers to r, g, b ordered by value.
func sortRGB(r, g, b *float32) (lo, mid, hi *float32) {
	switch {
	case *r <= *g && *g <= *b:
		return r, g, b
	case *r <= *b && *b <= *g:
		return r, b, g
	case *b <= *r && *r <= *g:
		return b, r, g
	case *g <= *r && *r <= *b:
		return g, r, b
	case *g <= *b && *b <= *r:
		return g, b, r
	default:
		return b, g, r
	}
}

// nonSeparable applies hue, saturation, color or luminosity blending.
func nonSeparable(mode BlendMode, s, d Pixel) Pixel {
	if s.A == 0 {
		return d
	}
	if d.A == 0 {
		return s
	}
	sr, sg, sb := s.R/s.A, s.G/s.A, s.B/s.A
	dr, dg, db := d.R/d.A, d.G/d.A, d.B/d.A

	var r, g, b float32
	switch mode {
	case BlendHue:
		r, g, b = SetSat(sr, sg, sb, Sat(dr, dg, db))
		r, g, b = SetLum(r, g, b, Lum(dr, dg, db))
	case BlendSaturation:
		r, g, b = SetSat(dr, dg, db, Sat(sr, sg, sb))
		r, g, b = SetLum(r, g, b, Lum(dr, dg, db))
	case BlendColor:
		r, g, b = SetLum(sr, sg, sb, Lum(dr, dg, db))
	default:
		r, g, b = SetLum(dr, dg, db, Lum(sr, sg, sb))
	}

	sa, da := s.A, d.A
	return Pixel{
		R: (1-da)*s.R + (1-sa)*d.R + sa*da*r,
		G: (1-da)*s.G + (1-sa)*d.G + sa*da*g,
		B: (1-da)*s.B + (1-sa)*d.B + sa*da*b,
		A: sa + da - sa*da,
	}
}
