package text

import (
	"math"
	"testing"
)

// TestAlignOffset checks the anchor offsets for each alignment.
func TestAlignOffset(t *testing.T) {
	tests := []struct {
		align Align
		want  float64
	}{
		{AlignStart, 0},
		{AlignLeft, 0},
		{AlignEnd, -100},
		{AlignRight, -100},
		{AlignCenter, -50},
	}
	for _, tt := range tests {
		if got := AlignOffset(tt.align, 100); got != tt.want {
			t.Errorf("AlignOffset(%v, 100) = %v, want %v", tt.align, got, tt.want)
		}
	}
}

// TestBaselineOffset checks the baseline offsets derived from the 0.8/0.2
// ascent and descent split.
func TestBaselineOffset(t *testing.T) {
	const size = 20 // ascent 16, descent 4
	tests := []struct {
		baseline Baseline
		want     float64
	}{
		{BaselineTop, 16},
		{BaselineHanging, 12.8},
		{BaselineMiddle, 6},
		{BaselineAlphabetic, 0},
		{BaselineIdeographic, -2},
		{BaselineBottom, -4},
	}
	for _, tt := range tests {
		if got := BaselineOffset(tt.baseline, size); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("BaselineOffset(%v, %d) = %v, want %v", tt.baseline, size, got, tt.want)
		}
	}
}

// TestMaxWidthScale covers the skip, fit and squeeze cases.
func TestMaxWidthScale(t *testing.T) {
	tests := []struct {
		name      string
		width     float64
		maxWidth  float64
		wantScale float64
		wantOK    bool
	}{
		{"zero", 100, 0, 0, false},
		{"negative", 100, -1, 0, false},
		{"nan", 100, math.NaN(), 0, false},
		{"infinite", 100, math.Inf(1), 1, true},
		{"fits", 100, 200, 1, true},
		{"exact", 100, 100, 1, true},
		{"squeeze", 100, 50, 0.5, true},
		{"too narrow", 100000, 1, 0, false},
		{"at limit", 1000, 1, 0.001, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scale, ok := MaxWidthScale(tt.width, tt.maxWidth)
			if ok != tt.wantOK || math.Abs(scale-tt.wantScale) > 1e-12 {
				t.Errorf("MaxWidthScale(%v, %v) = (%v, %v), want (%v, %v)",
					tt.width, tt.maxWidth, scale, ok, tt.wantScale, tt.wantOK)
			}
		})
	}
}

// TestKeywordParsing checks the align, baseline and direction keyword maps.
func TestKeywordParsing(t *testing.T) {
	for _, s := range []string{"start", "end", "left", "right", "center"} {
		a, ok := ParseAlign(s)
		if !ok || a.String() != s {
			t.Errorf("ParseAlign(%q) = %v, %v", s, a, ok)
		}
	}
	for _, s := range []string{"top", "hanging", "middle", "alphabetic", "ideographic", "bottom"} {
		b, ok := ParseBaseline(s)
		if !ok || b.String() != s {
			t.Errorf("ParseBaseline(%q) = %v, %v", s, b, ok)
		}
	}
	for _, s := range []string{"ltr", "rtl", "inherit"} {
		d, ok := ParseDirection(s)
		if !ok || d.String() != s {
			t.Errorf("ParseDirection(%q) = %v, %v", s, d, ok)
		}
	}
	if _, ok := ParseAlign("justify"); ok {
		t.Error("ParseAlign accepted justify")
	}
	if _, ok := ParseBaseline("Top"); ok {
		t.Error("ParseBaseline is case-sensitive")
	}
}

// TestDirectionResolve checks first-strong-character detection.
func TestDirectionResolve(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"", DirectionLTR},
		{"abc", DirectionLTR},
		{"123 ...", DirectionLTR},
		{"שלום", DirectionRTL},
		{"123 مرحبا abc", DirectionRTL},
	}
	for _, tt := range tests {
		if got := DirectionInherit.Resolve(tt.in); got != tt.want {
			t.Errorf("Resolve(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if got := DirectionRTL.Resolve("abc"); got != DirectionRTL {
		t.Errorf("explicit direction changed to %v", got)
	}
}

// TestMetricsFor checks the metric dictionary layout.
func TestMetricsFor(t *testing.T) {
	m := MetricsFor(42, 10)
	if m.Width != 42 || m.ActualBoundingBoxRight != 42 || m.ActualBoundingBoxLeft != 0 {
		t.Errorf("horizontal metrics = %+v", m)
	}
	if m.FontBoundingBoxAscent != 8 || m.FontBoundingBoxDescent != 2 {
		t.Errorf("font box = %v/%v, want 8/2", m.FontBoundingBoxAscent, m.FontBoundingBoxDescent)
	}
	if m.ActualBoundingBoxAscent != 8 || m.ActualBoundingBoxDescent != 2 {
		t.Errorf("actual box = %v/%v, want 8/2", m.ActualBoundingBoxAscent, m.ActualBoundingBoxDescent)
	}
}
