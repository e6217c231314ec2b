package text

import (
	"math"
	"slices"
	"strings"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// LineHeight is the distance between baselines as a multiple of the font size.
const LineHeight = 1.2

// FontSystem shapes text against a FontDB snapshot of a SharedFontConfig.
//
// FontSystem is NOT safe for concurrent use: go-text faces and the
// HarfBuzz shaper keep per-call buffers.
type FontSystem struct {
	shared  *SharedFontConfig
	db      *FontDB
	hinting bool
	version uint64

	faces  map[*Face]*font.Face
	shaper shaping.HarfbuzzShaper
	buf    sfnt.Buffer
}

// NewFontSystem creates a font system for shared. A nil shared config gets
// a private default one.
func NewFontSystem(shared *SharedFontConfig) *FontSystem {
	if shared == nil {
		shared = NewSharedFontConfig(DefaultFontConfig())
	}
	fs := &FontSystem{shared: shared}
	fs.rebuild()
	return fs
}

// Shared returns the config this system follows.
func (fs *FontSystem) Shared() *SharedFontConfig { return fs.shared }

// DB returns the current font database.
func (fs *FontSystem) DB() *FontDB { return fs.db }

// Version returns the config version the database was built from.
func (fs *FontSystem) Version() uint64 { return fs.version }

// Stale reports whether the shared config has moved past Version.
func (fs *FontSystem) Stale() bool { return fs.shared.Version() != fs.version }

// Refresh rebuilds the database when the shared config changed and reports
// whether it did.
func (fs *FontSystem) Refresh() bool {
	if !fs.Stale() {
		return false
	}
	old := fs.version
	fs.rebuild()
	Logger().Debug("font system rebuilt", "from_version", old, "to_version", fs.version)
	return true
}

func (fs *FontSystem) rebuild() {
	fs.db, fs.version = fs.shared.Snapshot()
	fs.hinting = fs.db.Hinting()
	fs.faces = make(map[*Face]*font.Face)
}

func (fs *FontSystem) face(f *Face) *font.Face {
	gf, ok := fs.faces[f]
	if !ok {
		gf = font.NewFace(f.font)
		fs.faces[f] = gf
	}
	return gf
}

// Resolve returns the primary face for spec.
func (fs *FontSystem) Resolve(spec FontSpec) (*Face, error) {
	faces := fs.db.Match(spec)
	if len(faces) == 0 {
		return nil, ErrNoFace
	}
	Logger().Debug("font resolved", "font", spec.String(), "face", faces[0].String())
	return faces[0], nil
}

// Glyph is a positioned glyph. X and Y are relative to the start of the
// line's alphabetic baseline, with y growing downwards.
type Glyph struct {
	Face    *Face
	ID      uint32
	X, Y    float64
	Advance float64
	Cluster int // rune index in the line
}

// Line is one shaped line of text.
type Line struct {
	Glyphs []Glyph
	Width  float64
	// Baseline is the offset of this line's baseline from the first line's.
	Baseline float64
}

// Layout is shaped, possibly multi-line, text.
type Layout struct {
	Lines     []Line
	Width     float64 // widest line
	Size      float64
	Direction Direction
	Hinting   bool
}

// LayoutOptions adjust shaping.
type LayoutOptions struct {
	LetterSpacing float64
	Direction     Direction
}

// Layout shapes s with the faces matching spec. Lines are split at '\n'
// and placed LineHeight·size apart.
func (fs *FontSystem) Layout(s string, spec FontSpec, opts LayoutOptions) (*Layout, error) {
	faces := fs.db.Match(spec)
	if len(faces) == 0 {
		return nil, ErrNoFace
	}
	dir := opts.Direction.Resolve(s)
	l := &Layout{Size: spec.Size, Direction: dir, Hinting: fs.hinting}
	if !(spec.Size > 0) || math.IsInf(spec.Size, 0) {
		return l, nil
	}

	for i, line := range strings.Split(s, "\n") {
		ln := fs.shapeLine([]rune(line), faces, spec.Size, dir, opts.LetterSpacing)
		ln.Baseline = float64(i) * LineHeight * spec.Size
		l.Width = max(l.Width, ln.Width)
		l.Lines = append(l.Lines, ln)
	}
	return l, nil
}

type faceRun struct {
	face       *Face
	start, end int
}

// splitRuns assigns each rune the first face that maps it, keeping
// whitespace with the preceding run.
func (fs *FontSystem) splitRuns(runes []rune, faces []*Face) []faceRun {
	var runs []faceRun
	for i, r := range runes {
		pick := faces[0]
		if len(runs) > 0 && (r == ' ' || r == '\t') {
			pick = runs[len(runs)-1].face
		} else {
			for _, f := range faces {
				if _, ok := f.font.NominalGlyph(r); ok {
					pick = f
					break
				}
			}
		}
		if n := len(runs); n > 0 && runs[n-1].face == pick {
			runs[n-1].end = i + 1
			continue
		}
		runs = append(runs, faceRun{face: pick, start: i, end: i + 1})
	}
	return runs
}

func (fs *FontSystem) shapeLine(runes []rune, faces []*Face, size float64, dir Direction, spacing float64) Line {
	var ln Line
	if len(runes) == 0 {
		return ln
	}
	runs := fs.splitRuns(runes, faces)
	goDir := di.DirectionLTR
	if dir == DirectionRTL {
		goDir = di.DirectionRTL
		slices.Reverse(runs)
	}

	pen := 0.0
	for _, run := range runs {
		out := fs.shaper.Shape(shaping.Input{
			Text:      runes,
			RunStart:  run.start,
			RunEnd:    run.end,
			Direction: goDir,
			Face:      fs.face(run.face),
			Size:      floatToFixed(size),
			Script:    detectScript(runes[run.start:run.end]),
			Language:  language.NewLanguage("en"),
		})
		for _, g := range out.Glyphs {
			adv := fixedToFloat(g.Advance)
			ln.Glyphs = append(ln.Glyphs, Glyph{
				Face:    run.face,
				ID:      uint32(g.GlyphID),
				X:       pen + fixedToFloat(g.XOffset),
				Y:       -fixedToFloat(g.YOffset),
				Advance: adv,
				Cluster: g.TextIndex(),
			})
			pen += adv + spacing
		}
	}
	ln.Width = max(pen, 0)
	return ln
}

// PathSink receives glyph outlines.
type PathSink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	Close()
}

// Outline emits the outlines of every glyph in l, offset by (dx, dy), to
// sink. The origin is the start of the first line's alphabetic baseline.
// Glyphs without an outline, such as spaces, emit nothing.
func (fs *FontSystem) Outline(l *Layout, dx, dy float64, sink PathSink) error {
	ppem := floatToFixed(l.Size)
	for _, ln := range l.Lines {
		for _, g := range ln.Glyphs {
			ox, oy := dx+g.X, dy+ln.Baseline+g.Y
			if l.Hinting {
				ox, oy = math.Round(ox), math.Round(oy)
			}
			segs, err := g.Face.outlines.LoadGlyph(&fs.buf, sfnt.GlyphIndex(g.ID), ppem, nil)
			if err != nil {
				Logger().Debug("glyph outline unavailable", "face", g.Face.String(), "glyph", g.ID, "err", err)
				continue
			}
			emitSegments(segs, ox, oy, sink)
		}
	}
	return nil
}

func emitSegments(segs sfnt.Segments, ox, oy float64, sink PathSink) {
	pt := func(p fixed.Point26_6) (float64, float64) {
		return ox + fixedToFloat(p.X), oy + fixedToFloat(p.Y)
	}
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				sink.Close()
			}
			x, y := pt(seg.Args[0])
			sink.MoveTo(x, y)
			open = true
		case sfnt.SegmentOpLineTo:
			x, y := pt(seg.Args[0])
			sink.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			cx, cy := pt(seg.Args[0])
			x, y := pt(seg.Args[1])
			sink.QuadTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := pt(seg.Args[0])
			c2x, c2y := pt(seg.Args[1])
			x, y := pt(seg.Args[2])
			sink.CubicTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	if open {
		sink.Close()
	}
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
