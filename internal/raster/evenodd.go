package raster

import (
	"math"
	"sort"

	"github.com/gogpu/canvas2d/internal/path"
)

// subSamples is the number of sample rows per pixel row.
const subSamples = 5

type edge struct {
	x0, y0, x1, y1 float64
}

// fillEvenOdd samples each pixel row at subSamples heights. Spans
// between alternate crossings contribute exact horizontal coverage.
func fillEvenOdd(m *Mask, subs []path.Subpath) {
	var edges []edge
	for _, sp := range subs {
		n := len(sp.Points)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			a, b := sp.Points[i], sp.Points[(i+1)%n]
			if a.Y == b.Y || !a.IsFinite() || !b.IsFinite() {
				continue
			}
			edges = append(edges, edge{a.X, a.Y, b.X, b.Y})
		}
	}
	if len(edges) == 0 {
		return
	}

	b := m.Rect
	width := b.Dx()
	acc := make([]float64, width+1)
	xs := make([]float64, 0, 16)
	const weight = 1.0 / subSamples

	for y := b.Min.Y; y < b.Max.Y; y++ {
		clear(acc)
		for s := 0; s < subSamples; s++ {
			sy := float64(y) + (float64(s)+0.5)/subSamples
			xs = xs[:0]
			for _, e := range edges {
				lo, hi := e.y0, e.y1
				if lo > hi {
					lo, hi = hi, lo
				}
				if sy < lo || sy >= hi {
					continue
				}
				t := (sy - e.y0) / (e.y1 - e.y0)
				xs = append(xs, e.x0+t*(e.x1-e.x0))
			}
			sort.Float64s(xs)
			for i := 0; i+1 < len(xs); i += 2 {
				addSpan(acc, xs[i]-float64(b.Min.X), xs[i+1]-float64(b.Min.X), weight)
			}
		}
		row := m.Pix[m.PixOffset(b.Min.X, y):]
		for x := 0; x < width; x++ {
			row[x] = toByte(acc[x])
		}
	}
}

// addSpan adds w times the horizontal overlap of [x0, x1) with each pixel.
func addSpan(acc []float64, x0, x1, w float64) {
	n := float64(len(acc) - 1)
	x0 = math.Max(x0, 0)
	x1 = math.Min(x1, n)
	if x1 <= x0 {
		return
	}
	i0, i1 := int(x0), int(x1)
	if i0 == i1 {
		acc[i0] += (x1 - x0) * w
		return
	}
	acc[i0] += (float64(i0+1) - x0) * w
	for i := i0 + 1; i < i1; i++ {
		acc[i] += w
	}
	if i1 < len(acc) {
		acc[i1] += (x1 - float64(i1)) * w
	}
}
