package text

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	tdstrconv "github.com/tdewolff/parse/v2/strconv"
)

// Style is the slant of a font face.
type Style int

// Font styles.
const (
	StyleNormal Style = iota
	StyleItalic
	StyleOblique
)

// String returns the CSS keyword for the style.
func (s Style) String() string {
	switch s {
	case StyleItalic:
		return "italic"
	case StyleOblique:
		return "oblique"
	default:
		return "normal"
	}
}

// Common CSS font weights.
const (
	WeightLight     = 300
	WeightNormal    = 400
	WeightBold      = 700
	WeightExtraBold = 800
)

// DefaultFontSize is the size of the default canvas font in pixels.
const DefaultFontSize = 10

// systemFontSize is the size used for the CSS system font keywords.
const systemFontSize = 16

// FontSpec is a parsed CSS font shorthand.
type FontSpec struct {
	Style    Style
	Weight   int     // 1..1000
	Size     float64 // pixels
	Families []string
}

// DefaultFontSpec returns the canvas default font, "10px sans-serif".
func DefaultFontSpec() FontSpec {
	return FontSpec{
		Style:    StyleNormal,
		Weight:   WeightNormal,
		Size:     DefaultFontSize,
		Families: []string{"sans-serif"},
	}
}

// String formats the spec as a CSS font shorthand.
func (f FontSpec) String() string {
	var sb strings.Builder
	if f.Style != StyleNormal {
		sb.WriteString(f.Style.String())
		sb.WriteByte(' ')
	}
	if f.Weight != WeightNormal && f.Weight != 0 {
		sb.WriteString(strconv.Itoa(f.Weight))
		sb.WriteByte(' ')
	}
	sb.WriteString(strconv.FormatFloat(f.Size, 'g', -1, 64))
	sb.WriteString("px")
	for i, fam := range f.Families {
		if i == 0 {
			sb.WriteByte(' ')
		} else {
			sb.WriteString(", ")
		}
		if strings.ContainsAny(fam, " ,") {
			sb.WriteString(strconv.Quote(fam))
		} else {
			sb.WriteString(fam)
		}
	}
	return sb.String()
}

// Clone returns a copy that does not share the family slice.
func (f FontSpec) Clone() FontSpec {
	f.Families = append([]string(nil), f.Families...)
	return f
}

var systemFontKeywords = map[string]bool{
	"caption":       true,
	"icon":          true,
	"menu":          true,
	"message-box":   true,
	"small-caption": true,
	"status-bar":    true,
}

// Ordered longest first so a keyword never matches the prefix of a longer one.
var stretchKeywords = []string{
	"ultra-condensed",
	"extra-condensed",
	"semi-condensed",
	"semi-expanded",
	"extra-expanded",
	"ultra-expanded",
	"condensed",
	"expanded",
}

var sizeKeywords = []struct {
	name string
	px   float64
}{
	{"xxx-large", 48},
	{"xx-small", 9},
	{"xx-large", 32},
	{"x-small", 10},
	{"x-large", 24},
	{"smaller", 13},
	{"larger", 19},
	{"medium", 16},
	{"small", 13},
	{"large", 18},
}

var sizeUnits = []struct {
	name  string
	scale float64
}{
	{"px", 1},
	{"pt", 4.0 / 3.0},
	{"rem", 16},
	{"em", 16},
	{"cm", 96 / 2.54},
	{"mm", 96 / 25.4},
	{"in", 96},
	{"pc", 16},
	{"%", 16.0 / 100},
}

var relativeUnits = []string{"vmin", "vmax", "vw", "vh", "ch", "ex"}

// ParseFont parses a CSS font shorthand:
//
//	[style || variant || weight || stretch] size [/line-height] family[, family]*
//
// Relative units are resolved against a 16px root. Viewport and
// character-relative units are rejected. An empty string yields the
// default font.
func ParseFont(s string) (FontSpec, error) {
	input := s
	s = strings.TrimSpace(s)
	spec := DefaultFontSpec()
	if s == "" {
		return spec, nil
	}
	if systemFontKeywords[s] {
		spec.Size = systemFontSize
		return spec, nil
	}

	rest := s
	for {
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		if rest == "" {
			break
		}
		if r, ok := keyword(rest, "italic"); ok {
			spec.Style, rest = StyleItalic, r
			continue
		}
		if r, ok := keyword(rest, "oblique"); ok {
			spec.Style, rest = StyleOblique, skipObliqueAngle(r)
			continue
		}
		if r, ok := keyword(rest, "normal"); ok {
			rest = r
			continue
		}
		if r, ok := keyword(rest, "small-caps"); ok {
			rest = r
			continue
		}
		if r, ok := keyword(rest, "bold"); ok {
			spec.Weight, rest = WeightBold, r
			continue
		}
		if r, ok := keyword(rest, "bolder"); ok {
			spec.Weight, rest = WeightExtraBold, r
			continue
		}
		if r, ok := keyword(rest, "lighter"); ok {
			spec.Weight, rest = WeightLight, r
			continue
		}
		if w, r, ok := numericWeight(rest); ok {
			spec.Weight, rest = w, r
			continue
		}
		if r, ok := stretch(rest); ok {
			rest = r
			continue
		}
		break
	}

	size, rest, err := fontSize(input, strings.TrimLeftFunc(rest, unicode.IsSpace))
	if err != nil {
		return FontSpec{}, err
	}
	spec.Size = size

	rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
	if after, ok := strings.CutPrefix(rest, "/"); ok {
		// Line height has no effect on canvas text.
		if i := strings.IndexFunc(after, unicode.IsSpace); i >= 0 {
			rest = after[i:]
		} else {
			rest = ""
		}
	}

	rest = strings.TrimSpace(rest)
	if rest != "" {
		spec.Families = parseFamilies(rest)
	}
	return spec, nil
}

// keyword strips word from the front of s when it is followed by
// whitespace or the end of input.
func keyword(s, word string) (string, bool) {
	rest, ok := strings.CutPrefix(s, word)
	if !ok || !atBoundary(rest) {
		return s, false
	}
	return rest, true
}

func atBoundary(s string) bool {
	if s == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsSpace(r)
}

func numericWeight(s string) (int, string, bool) {
	if s == "" || s[0] < '0' || s[0] > '9' {
		return 0, s, false
	}
	w, n := tdstrconv.ParseUint([]byte(s))
	if n == 0 || w < 1 || w > 1000 || !atBoundary(s[n:]) {
		return 0, s, false
	}
	return int(w), s[n:], true
}

// skipObliqueAngle consumes an optional angle such as "14deg" after the
// oblique keyword. The angle itself is not used.
func skipObliqueAngle(s string) string {
	t := strings.TrimLeftFunc(s, unicode.IsSpace)
	if t == "" {
		return s
	}
	switch c := t[0]; {
	case c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9'):
	default:
		return s
	}
	_, n := tdstrconv.ParseFloat([]byte(t))
	if n == 0 {
		return s
	}
	after := t[n:]
	for _, unit := range []string{"grad", "turn", "deg", "rad"} {
		if r, ok := strings.CutPrefix(after, unit); ok {
			if atBoundary(r) {
				return r
			}
			return s
		}
	}
	return s
}

func stretch(s string) (string, bool) {
	for _, kw := range stretchKeywords {
		if r, ok := keyword(s, kw); ok {
			return r, true
		}
	}
	return s, false
}

func fontSize(input, s string) (float64, string, error) {
	for _, kw := range sizeKeywords {
		if r, ok := strings.CutPrefix(s, kw.name); ok && (atBoundary(r) || strings.HasPrefix(r, "/")) {
			return kw.px, r, nil
		}
	}

	if s == "" || (s[0] != '.' && (s[0] < '0' || s[0] > '9')) {
		return 0, s, &FontParseError{Input: input, Reason: "missing font size"}
	}
	size, n := tdstrconv.ParseFloat([]byte(s))
	if n == 0 {
		return 0, s, &FontParseError{Input: input, Reason: "invalid font size"}
	}
	rest := s[n:]

	for _, unit := range relativeUnits {
		if r, ok := strings.CutPrefix(rest, unit); ok && (atBoundary(r) || strings.HasPrefix(r, "/")) {
			return 0, s, &FontParseError{Input: input, Reason: "unsupported font size unit " + unit}
		}
	}
	for _, unit := range sizeUnits {
		if r, ok := strings.CutPrefix(rest, unit.name); ok {
			return size * unit.scale, r, nil
		}
	}
	return size, rest, nil
}

func parseFamilies(s string) []string {
	var families []string
	rest := strings.TrimSpace(s)
	for rest != "" {
		var family string
		family, rest = parseFamily(rest)
		if family != "" {
			families = append(families, family)
		}
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		after, ok := strings.CutPrefix(rest, ",")
		if !ok {
			break
		}
		rest = strings.TrimLeftFunc(after, unicode.IsSpace)
	}
	if len(families) == 0 {
		families = []string{"sans-serif"}
	}
	return families
}

func parseFamily(s string) (string, string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	if s != "" && (s[0] == '"' || s[0] == '\'') {
		quote := s[0]
		end := strings.IndexByte(s[1:], quote)
		if end < 0 {
			return s[1:], ""
		}
		return s[1 : end+1], s[end+2:]
	}
	end := strings.IndexByte(s, ',')
	if end < 0 {
		end = len(s)
	}
	return strings.TrimSpace(s[:end]), s[end:]
}
