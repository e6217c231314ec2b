package canvas2d

import (
	"math"
	"testing"
)

const eps = 1e-9

func matrixNear(a, b Matrix) bool {
	av, bv := a.Values(), b.Values()
	for i := range av {
		if math.Abs(av[i]-bv[i]) > eps {
			return false
		}
	}
	return true
}

func TestMatrixApply(t *testing.T) {
	tests := []struct {
		name   string
		m      Matrix
		x, y   float64
		wx, wy float64
	}{
		{"identity", Identity(), 3, 4, 3, 4},
		{"translate", Translate(10, -5), 1, 2, 11, -3},
		{"scale", Scale(2, 3), 1, 2, 2, 6},
		{"rotate 90", Rotate(math.Pi / 2), 1, 0, 0, 1},
		{"skew-x", NewMatrix(1, 0, 0.5, 1, 0, 0), 0, 2, 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.m.Apply(tt.x, tt.y)
			if math.Abs(x-tt.wx) > eps || math.Abs(y-tt.wy) > eps {
				t.Errorf("Apply(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, x, y, tt.wx, tt.wy)
			}
		})
	}
}

// TestMatrixMultiplyOrder checks that Multiply applies its argument first.
func TestMatrixMultiplyOrder(t *testing.T) {
	// Translate then scale: the operation happens in the translated frame.
	m := Translate(10, 0).Multiply(Scale(2, 2))
	x, y := m.Apply(1, 1)
	if x != 12 || y != 2 {
		t.Errorf("T(10,0)∘S(2): (1,1) -> (%v, %v), want (12, 2)", x, y)
	}

	m = Scale(2, 2).Multiply(Translate(10, 0))
	x, y = m.Apply(1, 1)
	if x != 22 || y != 2 {
		t.Errorf("S(2)∘T(10,0): (1,1) -> (%v, %v), want (22, 2)", x, y)
	}

	if got := Scale(2, 2).PreMultiply(Translate(10, 0)); got != Translate(10, 0).Multiply(Scale(2, 2)) {
		t.Errorf("PreMultiply = %+v", got)
	}
}

func TestMatrixInvert(t *testing.T) {
	m := Translate(5, 7).Multiply(Rotate(0.3)).Multiply(Scale(2, 0.5))
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("Invert reported singular matrix")
	}
	if got := m.Multiply(inv); !matrixNear(got, Identity()) {
		t.Errorf("m * inv = %+v, want identity", got)
	}

	if _, ok := Scale(0, 1).Invert(); ok {
		t.Error("Scale(0, 1) should not be invertible")
	}
	if _, ok := NewMatrix(math.NaN(), 0, 0, 1, 0, 0).Invert(); ok {
		t.Error("NaN matrix should not be invertible")
	}
}

func TestMatrixValuesAndAff3(t *testing.T) {
	m := NewMatrix(1, 2, 3, 4, 5, 6)
	if got := m.Values(); got != [6]float64{1, 2, 3, 4, 5, 6} {
		t.Errorf("Values() = %v", got)
	}
	aff := m.ToAff3()
	if aff != [6]float64{1, 3, 5, 2, 4, 6} {
		t.Errorf("ToAff3() = %v", aff)
	}
}

func TestMatrixAverageScale(t *testing.T) {
	tests := []struct {
		m    Matrix
		want float64
	}{
		{Identity(), 1},
		{Scale(2, 4), 3},
		{Rotate(1.1).Multiply(Scale(3, 3)), 3},
	}
	for _, tt := range tests {
		if got := tt.m.AverageScale(); math.Abs(got-tt.want) > eps {
			t.Errorf("AverageScale(%+v) = %v, want %v", tt.m, got, tt.want)
		}
	}
}

func TestMatrixIsFinite(t *testing.T) {
	if !Identity().IsFinite() {
		t.Error("identity should be finite")
	}
	if Translate(math.Inf(1), 0).IsFinite() {
		t.Error("infinite translation should not be finite")
	}
}
