package stroke

import (
	"math"

	"github.com/gogpu/canvas2d/internal/path"
)

// MaxDashes bounds the number of dash intervals Dash produces. Patterns
// that would need more are not applied.
const MaxDashes = 1_000_000

// Dash splits subs into the "on" intervals of pattern, starting offset
// units into the pattern. The pattern restarts at every subpath.
// An empty or zero-length pattern, or one that would produce more than
// MaxDashes intervals, returns subs unchanged.
func Dash(subs []path.Subpath, pattern []float64, offset float64) []path.Subpath {
	total := 0.0
	for _, d := range pattern {
		if d < 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return subs
		}
		total += d
	}
	if len(pattern) == 0 || total <= 0 {
		return subs
	}
	if len(pattern)%2 == 1 {
		pattern = append(append([]float64(nil), pattern...), pattern...)
		total *= 2
	}
	if n := length(subs) / total * float64(len(pattern)); !(n <= MaxDashes) {
		return subs
	}

	var out []path.Subpath
	for _, sp := range subs {
		pts := sp.Points
		if sp.Closed && len(pts) > 1 {
			pts = append(append([]path.Point(nil), pts...), pts[0])
		}
		out = dashPolyline(out, pts, pattern, total, offset)
	}
	return out
}

func dashPolyline(out []path.Subpath, pts []path.Point, pattern []float64, total, offset float64) []path.Subpath {
	if len(pts) < 2 {
		return out
	}

	// Find the dash index and remaining length at the start.
	pos := math.Mod(offset, total)
	if pos < 0 {
		pos += total
	}
	idx := 0
	for pos >= pattern[idx] {
		pos -= pattern[idx]
		idx = (idx + 1) % len(pattern)
		if pattern[idx] == 0 && pos == 0 {
			break
		}
	}
	remaining := pattern[idx] - pos

	var cur []path.Point
	on := idx%2 == 0
	if on {
		cur = []path.Point{pts[0]}
	}

	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		segLen := a.Distance(b)
		t := 0.0
		for segLen-t > remaining {
			t += remaining
			p := a.Lerp(b, t/segLen)
			if on {
				cur = append(cur, p)
				out = append(out, path.Subpath{Points: cur})
				cur = nil
			} else {
				cur = []path.Point{p}
			}
			on = !on
			idx = (idx + 1) % len(pattern)
			remaining = pattern[idx]
		}
		remaining -= segLen - t
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) > 1 {
		out = append(out, path.Subpath{Points: cur})
	}
	return out
}

// length returns the total length of subs, closing segments included.
func length(subs []path.Subpath) float64 {
	l := 0.0
	for _, sp := range subs {
		pts := sp.Points
		for i := 0; i+1 < len(pts); i++ {
			l += pts[i].Distance(pts[i+1])
		}
		if sp.Closed && len(pts) > 1 {
			l += pts[len(pts)-1].Distance(pts[0])
		}
	}
	return l
}
