package raster

import (
	"testing"

	"github.com/gogpu/canvas2d/internal/path"
)

func square(x0, y0, x1, y1 float64, cw bool) path.Subpath {
	pts := []path.Point{path.Pt(x0, y0), path.Pt(x1, y0), path.Pt(x1, y1), path.Pt(x0, y1)}
	if !cw {
		pts[1], pts[3] = pts[3], pts[1]
	}
	return path.Subpath{Points: pts, Closed: true}
}

func TestFillRectExactCoverage(t *testing.T) {
	m := FillRect(10, 10, path.Rect{Min: path.Pt(2, 2), Max: path.Pt(6, 5)})
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := uint8(0)
			if x >= 2 && x < 6 && y >= 2 && y < 5 {
				want = 255
			}
			if got := m.AlphaAt(x, y).A; got != want {
				t.Fatalf("coverage(%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestFillRectFractional(t *testing.T) {
	m := FillRect(4, 4, path.Rect{Min: path.Pt(0.5, 0), Max: path.Pt(2, 1)})
	if got := m.AlphaAt(0, 0).A; got != 128 {
		t.Errorf("half pixel coverage = %d, want 128", got)
	}
	if got := m.AlphaAt(1, 0).A; got != 255 {
		t.Errorf("full pixel coverage = %d, want 255", got)
	}
}

func TestFillRectOutside(t *testing.T) {
	if m := FillRect(4, 4, path.Rect{Min: path.Pt(5, 5), Max: path.Pt(8, 8)}); m != nil {
		t.Errorf("expected nil mask, got bounds %v", m.Rect)
	}
}

// TestFillRulesDiffer draws two nested squares with the same winding: the
// inner square is filled under nonzero and empty under even-odd.
func TestFillRulesDiffer(t *testing.T) {
	// A triangle fan keeps these paths away from the rectangle fast path.
	outer := path.Subpath{Points: []path.Point{
		path.Pt(0, 0), path.Pt(20, 0), path.Pt(20, 20), path.Pt(0, 20), path.Pt(0, 10),
	}, Closed: true}
	inner := square(5, 5, 15, 15, true)
	subs := []path.Subpath{outer, inner}

	nz := Fill(20, 20, subs, NonZero)
	eo := Fill(20, 20, subs, EvenOdd)
	if got := nz.AlphaAt(10, 10).A; got != 255 {
		t.Errorf("nonzero center coverage = %d, want 255", got)
	}
	if got := eo.AlphaAt(10, 10).A; got != 0 {
		t.Errorf("even-odd center coverage = %d, want 0", got)
	}
	if got := eo.AlphaAt(2, 2).A; got != 255 {
		t.Errorf("even-odd ring coverage = %d, want 255", got)
	}
}

// TestNonZeroOppositeWinding checks that an inner square wound the other
// way cuts a hole under nonzero.
func TestNonZeroOppositeWinding(t *testing.T) {
	outer := path.Subpath{Points: []path.Point{
		path.Pt(0, 0), path.Pt(20, 0), path.Pt(20, 20), path.Pt(0, 20), path.Pt(0, 10),
	}, Closed: true}
	subs := []path.Subpath{outer, square(5, 5, 15, 15, false)}
	m := Fill(20, 20, subs, NonZero)
	if got := m.AlphaAt(10, 10).A; got != 0 {
		t.Errorf("hole coverage = %d, want 0", got)
	}
}

func TestFillClipsToCanvas(t *testing.T) {
	tri := path.Subpath{Points: []path.Point{path.Pt(-100, -100), path.Pt(300, 5), path.Pt(5, 300)}, Closed: true}
	m := Fill(8, 8, []path.Subpath{tri}, NonZero)
	if m == nil {
		t.Fatal("expected coverage")
	}
	if m.Rect.Min.X < 0 || m.Rect.Max.X > 8 || m.Rect.Max.Y > 8 {
		t.Errorf("mask bounds %v exceed canvas", m.Rect)
	}
	if got := m.AlphaAt(0, 0).A; got != 255 {
		t.Errorf("coverage(0,0) = %d, want 255", got)
	}
}

func TestIntersect(t *testing.T) {
	m := FillRect(4, 4, path.Rect{Max: path.Pt(4, 4)})
	clip := FillRect(4, 4, path.Rect{Max: path.Pt(2, 4)})
	Intersect(m, clip)
	if m.AlphaAt(1, 1).A != 255 || m.AlphaAt(3, 1).A != 0 {
		t.Errorf("Intersect result wrong: %v %v", m.AlphaAt(1, 1).A, m.AlphaAt(3, 1).A)
	}
}

func TestContains(t *testing.T) {
	m := FillRect(4, 4, path.Rect{Min: path.Pt(1, 1), Max: path.Pt(3, 3)})
	if !Contains(m, 2.5, 2.5) || Contains(m, 0.5, 0.5) || Contains(nil, 1, 1) {
		t.Error("Contains returned unexpected results")
	}
}
