package text

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/cases"
)

// Families of the bundled Go fonts.
const (
	FamilyGo     = "Go"
	FamilyGoMono = "Go Mono"
)

// Face is one font face held by a FontDB. It is immutable and safe for
// concurrent use; per-call state lives in FontSystem.
type Face struct {
	Family         string
	PostScriptName string
	Style          Style
	Weight         int

	font     *font.Font
	outlines *sfnt.Font
}

func (f *Face) String() string {
	return fmt.Sprintf("%s %s %d", f.Family, f.Style, f.Weight)
}

// ParseFaces parses a TTF, OTF or font collection. A non-empty family
// replaces the family name found in the font.
func ParseFaces(data []byte, family string) ([]*Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	parsed, err := font.ParseTTC(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	coll, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font outlines: %w", err)
	}
	if coll.NumFonts() != len(parsed) {
		return nil, fmt.Errorf("text: parse font: %d faces but %d outline tables", len(parsed), coll.NumFonts())
	}

	var buf sfnt.Buffer
	faces := make([]*Face, 0, len(parsed))
	for i, ft := range parsed {
		sf, err := coll.Font(i)
		if err != nil {
			return nil, fmt.Errorf("text: parse font outlines: %w", err)
		}
		desc := ft.Describe()
		face := &Face{
			Family:   desc.Family,
			Weight:   int(math.Round(float64(desc.Aspect.Weight))),
			font:     ft.Font,
			outlines: sf,
		}
		if desc.Aspect.Style == font.StyleItalic {
			face.Style = StyleItalic
		}
		if face.Weight <= 0 {
			face.Weight = WeightNormal
		}
		if family != "" {
			face.Family = family
		}
		if ps, err := sf.Name(&buf, sfnt.NameIDPostScript); err == nil {
			face.PostScriptName = ps
		}
		faces = append(faces, face)
	}
	return faces, nil
}

var defaultFaces = sync.OnceValue(func() []*Face {
	var faces []*Face
	for _, data := range [][]byte{goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF, gomono.TTF} {
		fs, err := ParseFaces(data, "")
		if err != nil {
			Logger().Error("bundled font unreadable", "err", err)
			continue
		}
		faces = append(faces, fs...)
	}
	return faces
})

// FontDB is an immutable set of faces indexed by family and PostScript
// name. It is safe for concurrent use.
type FontDB struct {
	faces    []*Face
	byFamily map[string][]*Face
	byPSName map[string]*Face
	generics GenericFamilies
	hinting  bool
}

// NewFontDB parses the custom fonts of cfg, adds the bundled Go fonts
// unless disabled, and indexes the result. Fonts that fail to parse are
// logged and skipped.
func NewFontDB(cfg FontConfig) *FontDB {
	db := &FontDB{
		byFamily: make(map[string][]*Face),
		byPSName: make(map[string]*Face),
		generics: make(GenericFamilies),
		hinting:  cfg.Hinting,
	}
	for name, fams := range DefaultGenericFamilies() {
		db.generics[name] = fams
	}
	for name, fams := range cfg.GenericFamilies {
		db.generics[foldKey(name)] = fams
	}

	for i, cf := range cfg.CustomFonts {
		faces, err := ParseFaces(cf.Data, cf.Family)
		if err != nil {
			Logger().Warn("skipping custom font", "index", i, "family", cf.Family, "err", err)
			continue
		}
		for _, f := range faces {
			db.add(f)
		}
	}
	if !cfg.NoDefaultFonts {
		for _, f := range defaultFaces() {
			db.add(f)
		}
	}
	Logger().Debug("font database built", "faces", len(db.faces), "families", len(db.byFamily))
	return db
}

func (db *FontDB) add(f *Face) {
	db.faces = append(db.faces, f)
	key := foldKey(f.Family)
	db.byFamily[key] = append(db.byFamily[key], f)
	if f.PostScriptName != "" {
		ps := psKey(f.PostScriptName)
		if _, dup := db.byPSName[ps]; !dup {
			db.byPSName[ps] = f
		}
	}
}

// Hinting reports whether glyph origins snap to whole pixels.
func (db *FontDB) Hinting() bool { return db.hinting }

// Len returns the number of faces.
func (db *FontDB) Len() int { return len(db.faces) }

// Families returns the distinct family names in insertion order.
func (db *FontDB) Families() []string {
	seen := make(map[string]bool)
	var out []string
	for _, f := range db.faces {
		k := foldKey(f.Family)
		if !seen[k] {
			seen[k] = true
			out = append(out, f.Family)
		}
	}
	return out
}

// HasFamily reports whether any face belongs to family.
func (db *FontDB) HasFamily(family string) bool {
	return len(db.byFamily[foldKey(family)]) > 0
}

// Match returns the faces to try for spec, best first: one face per
// requested family that exists in the database, followed by the bundled
// fallback. The slice is empty only for an empty database.
func (db *FontDB) Match(spec FontSpec) []*Face {
	var out []*Face
	seen := make(map[*Face]bool)
	push := func(f *Face) {
		if f != nil && !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}

	mono := false
	for _, fam := range spec.Families {
		key := foldKey(fam)
		if concrete, ok := db.generics[key]; ok {
			mono = mono || key == "monospace"
			for _, c := range concrete {
				push(db.best(foldKey(c), spec))
			}
			continue
		}
		if f := db.best(key, spec); f != nil {
			push(f)
			continue
		}
		// Names such as "Matter SemiBold" match the PostScript name
		// "Matter-SemiBold". The face's own weight wins over the spec's.
		if f, ok := db.byPSName[psKey(fam)]; ok {
			push(f)
		}
	}

	last := FamilyGo
	if mono {
		last = FamilyGoMono
	}
	push(db.best(foldKey(last), spec))
	if len(out) == 0 && len(db.faces) > 0 {
		push(db.faces[0])
	}
	return out
}

// best picks the face of a family closest to the requested style and weight.
func (db *FontDB) best(key string, spec FontSpec) *Face {
	var (
		best      *Face
		bestScore = math.MaxInt
	)
	for _, f := range db.byFamily[key] {
		if s := matchScore(f, spec); s < bestScore {
			best, bestScore = f, s
		}
	}
	return best
}

// matchScore orders faces by style first, then weight distance. On equal
// distance heavier faces win for weights of 400 and above and lighter faces
// win below.
func matchScore(f *Face, spec FontSpec) int {
	style := 0
	if (spec.Style == StyleNormal) != (f.Style == StyleNormal) {
		style = 1
	}
	want := spec.Weight
	if want == 0 {
		want = WeightNormal
	}
	d := f.Weight - want
	score := 2 * abs(d)
	switch {
	case d == 0:
	case want >= WeightNormal && d < 0, want < WeightNormal && d > 0:
		score++
	}
	return style<<20 | score
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func foldKey(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

func psKey(name string) string {
	return foldKey(strings.ReplaceAll(name, "-", " "))
}
