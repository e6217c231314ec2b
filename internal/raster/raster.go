// Package raster turns flattened device-space geometry into 8-bit
// coverage masks.
//
// Nonzero fills go through golang.org/x/image/vector. Even-odd fills use
// a vertically supersampled scanline with exact horizontal coverage.
// Axis-aligned rectangles get exact analytic coverage, so an opaque
// rectangle on pixel boundaries covers its pixels completely.
package raster

import (
	"image"
	"image/draw"
	"math"
	"sort"

	"golang.org/x/image/vector"

	"github.com/gogpu/canvas2d/internal/path"
)

// FillRule selects how overlapping subpaths are filled.
type FillRule uint8

// Fill rules.
const (
	NonZero FillRule = iota
	EvenOdd
)

// Mask is a coverage mask. Bounds may be any sub-rectangle of the canvas;
// pixels outside the bounds have zero coverage.
type Mask = image.Alpha

// Fill rasterizes subs, treating every subpath as closed, into a mask
// clipped to the canvas rectangle (0, 0)-(w, h). It returns nil when
// nothing is covered.
func Fill(w, h int, subs []path.Subpath, rule FillRule) *Mask {
	if r, ok := axisAlignedRect(subs); ok {
		return FillRect(w, h, r)
	}
	bounds := pixelBounds(subs, w, h)
	if bounds.Empty() {
		return nil
	}
	m := image.NewAlpha(bounds)
	if rule == EvenOdd {
		fillEvenOdd(m, subs)
	} else {
		fillNonZero(m, subs)
	}
	return m
}

// fillNonZero accumulates signed area with a vector.Rasterizer. Every
// edge is emitted on its own after clipping to the mask.
func fillNonZero(m *Mask, subs []path.Subpath) {
	b := m.Rect
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Src

	off := path.Pt(float64(b.Min.X), float64(b.Min.Y))
	w, h := float64(b.Dx()), float64(b.Dy())
	emit := func(p, q path.Point) {
		z.MoveTo(float32(p.X), float32(p.Y))
		z.LineTo(float32(q.X), float32(q.Y))
	}

	for _, sp := range subs {
		n := len(sp.Points)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			a, c := sp.Points[i].Sub(off), sp.Points[(i+1)%n].Sub(off)
			if !a.IsFinite() || !c.IsFinite() {
				continue
			}
			clipEdge(a, c, w, h, emit)
		}
	}
	z.Draw(m, b, image.Opaque, image.Point{})
}

// clipEdge emits the parts of a-b that affect coverage inside (0,0)-(w,h).
// Rows outside the box are dropped. Pieces left of the box become
// vertical edges on x = 0, which carry the same winding into the row;
// pieces right of the box are dropped since accumulation runs rightwards.
func clipEdge(a, b path.Point, w, h float64, emit func(p, q path.Point)) {
	if a.Y == b.Y {
		return
	}
	// Clip to 0 <= y <= h.
	t0, t1 := 0.0, 1.0
	dy := b.Y - a.Y
	for _, bound := range [2]float64{0, h} {
		t := (bound - a.Y) / dy
		inside := func(y float64) bool {
			if bound == 0 {
				return y >= 0
			}
			return y <= h
		}
		switch {
		case inside(a.Y) && inside(b.Y):
		case !inside(a.Y) && !inside(b.Y):
			return
		case inside(a.Y):
			t1 = math.Min(t1, t)
		default:
			t0 = math.Max(t0, t)
		}
	}
	if t1 <= t0 {
		return
	}
	p, q := a.Lerp(b, t0), a.Lerp(b, t1)

	// Split at x = 0 and x = w.
	ts := []float64{0, 1}
	if dx := q.X - p.X; dx != 0 {
		for _, bound := range [2]float64{0, w} {
			if t := (bound - p.X) / dx; t > 0 && t < 1 {
				ts = append(ts, t)
			}
		}
	}
	sort.Float64s(ts)
	for i := 0; i+1 < len(ts); i++ {
		s, e := p.Lerp(q, ts[i]), p.Lerp(q, ts[i+1])
		mid := (s.X + e.X) / 2
		switch {
		case mid >= w:
			continue
		case mid <= 0:
			s.X, e.X = 0, 0
		default:
			s.X = clamp(s.X, 0, w)
			e.X = clamp(e.X, 0, w)
		}
		emit(s, e)
	}
}

// FillRect returns exact coverage for the rectangle r clipped to (0, 0)-(w, h).
func FillRect(w, h int, r path.Rect) *Mask {
	x0 := math.Max(r.Min.X, 0)
	y0 := math.Max(r.Min.Y, 0)
	x1 := math.Min(r.Max.X, float64(w))
	y1 := math.Min(r.Max.Y, float64(h))
	if !(x1 > x0) || !(y1 > y0) {
		return nil
	}
	bounds := image.Rect(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Ceil(x1)), int(math.Ceil(y1)))
	m := image.NewAlpha(bounds)

	cov := func(lo, hi float64, px int) float64 {
		a := math.Max(lo, float64(px))
		b := math.Min(hi, float64(px+1))
		if b <= a {
			return 0
		}
		return b - a
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		cy := cov(y0, y1, y)
		row := m.Pix[m.PixOffset(bounds.Min.X, y):]
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			row[x-bounds.Min.X] = toByte(cy * cov(x0, x1, x))
		}
	}
	return m
}

// axisAlignedRect reports whether subs is a single closed axis-aligned
// rectangle and returns it.
func axisAlignedRect(subs []path.Subpath) (path.Rect, bool) {
	if len(subs) != 1 {
		return path.Rect{}, false
	}
	pts := subs[0].Points
	if n := len(pts); n == 5 && pts[4] == pts[0] {
		pts = pts[:4]
	}
	if len(pts) != 4 {
		return path.Rect{}, false
	}
	for i := range pts {
		a, b := pts[i], pts[(i+1)%4]
		if a.X != b.X && a.Y != b.Y {
			return path.Rect{}, false
		}
	}
	// Alternating edges: either pts[0]-pts[1] horizontal and pts[1]-pts[2]
	// vertical, or the other way round.
	if !(pts[0].Y == pts[1].Y && pts[1].X == pts[2].X && pts[2].Y == pts[3].Y && pts[3].X == pts[0].X) &&
		!(pts[0].X == pts[1].X && pts[1].Y == pts[2].Y && pts[2].X == pts[3].X && pts[3].Y == pts[0].Y) {
		return path.Rect{}, false
	}
	r := path.Rect{
		Min: path.Pt(math.Min(pts[0].X, pts[2].X), math.Min(pts[0].Y, pts[2].Y)),
		Max: path.Pt(math.Max(pts[0].X, pts[2].X), math.Max(pts[0].Y, pts[2].Y)),
	}
	return r, true
}

// pixelBounds returns the integer bounds of subs clipped to the canvas.
func pixelBounds(subs []path.Subpath, w, h int) image.Rectangle {
	first := true
	var r path.Rect
	for _, sp := range subs {
		if len(sp.Points) < 2 {
			continue
		}
		for _, p := range sp.Points {
			if !p.IsFinite() {
				continue
			}
			if first {
				r = path.Rect{Min: p, Max: p}
				first = false
				continue
			}
			r.Min.X = math.Min(r.Min.X, p.X)
			r.Min.Y = math.Min(r.Min.Y, p.Y)
			r.Max.X = math.Max(r.Max.X, p.X)
			r.Max.Y = math.Max(r.Max.Y, p.Y)
		}
	}
	if first {
		return image.Rectangle{}
	}
	return DeviceRect(r).Intersect(image.Rect(0, 0, w, h))
}

// DeviceRect returns the smallest pixel rectangle containing r.
func DeviceRect(r path.Rect) image.Rectangle {
	const limit = 1 << 24
	return image.Rect(
		int(clamp(math.Floor(r.Min.X), -limit, limit)),
		int(clamp(math.Floor(r.Min.Y), -limit, limit)),
		int(clamp(math.Ceil(r.Max.X), -limit, limit)),
		int(clamp(math.Ceil(r.Max.Y), -limit, limit)),
	)
}

// Intersect multiplies m by clip in place. A nil clip leaves m unchanged.
func Intersect(m, clip *Mask) {
	if m == nil || clip == nil {
		return
	}
	b := m.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := m.PixOffset(x, y)
			if m.Pix[i] == 0 {
				continue
			}
			c := clip.AlphaAt(x, y).A
			switch c {
			case 0:
				m.Pix[i] = 0
			case 255:
			default:
				m.Pix[i] = uint8((uint32(m.Pix[i])*uint32(c) + 127) / 255)
			}
		}
	}
}

// Contains reports whether the pixel containing (x, y) has coverage.
func Contains(m *Mask, x, y float64) bool {
	if m == nil {
		return false
	}
	return m.AlphaAt(int(math.Floor(x)), int(math.Floor(y))).A >= 128
}

func toByte(v float64) uint8 {
	switch {
	case !(v > 0):
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

func clamp(v, lo, hi float64) float64 {
	switch {
	case math.IsNaN(v):
		return lo
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}
