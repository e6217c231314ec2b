package canvas2d

import (
	"fmt"
	"image"
	"math"
	"sync/atomic"

	"golang.org/x/image/draw"

	"github.com/gogpu/canvas2d/internal/blend"
)

// Repetition selects how a pattern tile repeats.
type Repetition uint8

// Repetition modes.
const (
	RepetitionRepeat Repetition = iota
	RepetitionRepeatX
	RepetitionRepeatY
	RepetitionNoRepeat
)

// String returns the Canvas keyword for r.
func (r Repetition) String() string {
	switch r {
	case RepetitionRepeat:
		return "repeat"
	case RepetitionRepeatX:
		return "repeat-x"
	case RepetitionRepeatY:
		return "repeat-y"
	case RepetitionNoRepeat:
		return "no-repeat"
	}
	return fmt.Sprintf("Repetition(%d)", r)
}

// ParseRepetition parses a Canvas repetition keyword. The empty string
// means "repeat".
func ParseRepetition(s string) (Repetition, error) {
	switch s {
	case "repeat", "":
		return RepetitionRepeat, nil
	case "repeat-x":
		return RepetitionRepeatX, nil
	case "repeat-y":
		return RepetitionRepeatY, nil
	case "no-repeat":
		return RepetitionNoRepeat, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidRepetition, s)
}

// MaxPatternTile is the largest tile side kept by a pattern; larger
// images are downscaled on creation.
const MaxPatternTile = 4096

// maxPatternBacking caps each side of a synthesized backing pixmap.
const maxPatternBacking = 2 * MaxPatternTile

// patternIDs hands out process-unique pattern ids for cache keys.
var patternIDs atomic.Uint64

// Pattern is an image tile painted repeatedly. The tile is copied on
// creation, so later changes to the source image do not show.
type Pattern struct {
	id        uint64
	tile      *Pixmap
	rep       Repetition
	transform Matrix
	tileScale float64 // user units per tile pixel; 1 unless downscaled
}

// NewPattern creates a pattern from img. Images with an empty bounds
// fail with ErrInvalidImageData.
func NewPattern(img image.Image, rep Repetition) (*Pattern, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: empty pattern image", ErrInvalidImageData)
	}
	if rep > RepetitionNoRepeat {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRepetition, rep)
	}
	tile, scale := patternTile(img)
	return &Pattern{
		id:        patternIDs.Add(1),
		tile:      tile,
		rep:       rep,
		transform: Identity(),
		tileScale: scale,
	}, nil
}

// patternTile converts img to a premultiplied tile no larger than
// MaxPatternTile per side.
func patternTile(img image.Image) (*Pixmap, float64) {
	b := img.Bounds()
	longest := max(b.Dx(), b.Dy())
	if longest <= MaxPatternTile {
		return FromImage(img), 1
	}
	k := float64(MaxPatternTile) / float64(longest)
	w := max(1, int(math.Round(float64(b.Dx())*k)))
	h := max(1, int(math.Round(float64(b.Dy())*k)))
	tile := NewPixmap(w, h)
	draw.BiLinear.Scale(tile.asRGBA(), tile.Bounds(), img, b, draw.Src, nil)
	Logger().Warn("canvas2d: pattern tile downscaled",
		"from", fmt.Sprintf("%dx%d", b.Dx(), b.Dy()), "to", fmt.Sprintf("%dx%d", w, h))
	return tile, float64(b.Dx()) / float64(w)
}

// ID returns the process-unique pattern id.
func (p *Pattern) ID() uint64 { return p.id }

// Repetition returns the repetition mode.
func (p *Pattern) Repetition() Repetition { return p.rep }

// Width returns the tile width in pixels.
func (p *Pattern) Width() int { return p.tile.width }

// Height returns the tile height in pixels.
func (p *Pattern) Height() int { return p.tile.height }

// Transform returns the pattern matrix.
func (p *Pattern) Transform() Matrix { return p.transform }

// SetTransform sets the pattern matrix, applied to the tile before the
// context transform. Non-finite matrices are ignored.
func (p *Pattern) SetTransform(m Matrix) {
	if m.IsFinite() {
		p.transform = m
	}
}

// CacheDimensions returns the dimensions a backing pixmap for a canvas of
// cw x ch is keyed by. Repeating patterns do not depend on the canvas.
func (p *Pattern) CacheDimensions(cw, ch int) (int, int) {
	if p.rep == RepetitionRepeat {
		return 0, 0
	}
	return cw, ch
}

// synthesize builds the backing pixmap for a canvas of cw x ch:
// the tile itself for repeat, otherwise a transparent buffer large
// enough to cover the canvas with the tile laid out along the repeating
// axis.
func (p *Pattern) synthesize(cw, ch int) *Pixmap {
	pw, ph := p.tile.width, p.tile.height
	var w, h, nx, ny int
	switch p.rep {
	case RepetitionRepeat:
		return p.tile
	case RepetitionNoRepeat:
		w, h, nx, ny = pw+cw, ph+ch, 1, 1
	case RepetitionRepeatX:
		nx = min(cw/pw+2, maxPatternBacking/pw)
		w, h, ny = pw*nx, ph+ch, 1
	case RepetitionRepeatY:
		ny = min(ch/ph+2, maxPatternBacking/ph)
		w, h, nx = pw+cw, ph*ny, 1
	}
	w = min(w, maxPatternBacking)
	h = min(h, maxPatternBacking)

	out := NewPixmap(w, h)
	for ty := 0; ty < ny; ty++ {
		for tx := 0; tx < nx; tx++ {
			draw.Copy(out.asRGBA(), image.Pt(tx*pw, ty*ph), p.tile.asRGBA(), p.tile.Bounds(), draw.Src, nil)
		}
	}
	return out
}

// patternShader samples a backing pixmap at device pixel centers.
type patternShader struct {
	backing *Pixmap
	rep     Repetition
	inv     Matrix
	smooth  bool
	alpha   float32
}

// newPatternShader returns nil when the combined transform cannot be
// inverted.
func newPatternShader(p *Pattern, backing *Pixmap, ctm Matrix, smooth bool, alpha float64) shader {
	m := ctm.Multiply(p.transform).Multiply(Scale(p.tileScale, p.tileScale))
	inv, ok := m.Invert()
	if !ok || backing.width == 0 || backing.height == 0 {
		return nil
	}
	return &patternShader{backing: backing, rep: p.rep, inv: inv, smooth: smooth, alpha: float32(alpha)}
}

func (s *patternShader) shade(x, y int) blend.Pixel {
	u, v := s.inv.Apply(float64(x)+0.5, float64(y)+0.5)
	if !(math.Abs(u) < 1<<30) || !(math.Abs(v) < 1<<30) {
		return blend.Pixel{}
	}
	var c blend.Pixel
	if s.smooth {
		c = s.bilinear(u-0.5, v-0.5)
	} else {
		c = s.fetch(int(math.Floor(u)), int(math.Floor(v)))
	}
	if s.alpha < 1 {
		c = c.Scale(s.alpha)
	}
	return c
}

// fetch returns the backing pixel at (x, y), wrapping along repeating
// axes and transparent elsewhere outside the backing.
func (s *patternShader) fetch(x, y int) blend.Pixel {
	w, h := s.backing.width, s.backing.height
	if s.rep == RepetitionRepeat || s.rep == RepetitionRepeatX {
		x = wrap(x, w)
	}
	if s.rep == RepetitionRepeat || s.rep == RepetitionRepeatY {
		y = wrap(y, h)
	}
	return s.backing.pixel(x, y)
}

func (s *patternShader) bilinear(u, v float64) blend.Pixel {
	x0, y0 := math.Floor(u), math.Floor(v)
	fx, fy := float32(u-x0), float32(v-y0)
	ix, iy := int(x0), int(y0)

	top := blend.Lerp(s.fetch(ix, iy), s.fetch(ix+1, iy), fx)
	bottom := blend.Lerp(s.fetch(ix, iy+1), s.fetch(ix+1, iy+1), fx)
	return blend.Lerp(top, bottom, fy)
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
