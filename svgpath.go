package canvas2d

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

// svgArgs is the number of arguments each SVG path command takes.
var svgArgs = map[byte]int{
	'M': 2,
	'Z': 0,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Q': 4,
	'T': 2,
	'A': 7,
}

func skipCommaWhitespace(d []byte) int {
	i := 0
	for i < len(d) && (d[i] == ' ' || d[i] == ',' || d[i] == '\n' || d[i] == '\r' || d[i] == '\t') {
		i++
	}
	return i
}

func isNumberStart(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}

// NewPath2DFromSVG parses SVG path data (M, L, H, V, C, S, Q, T, A and Z
// in absolute and relative forms). Elliptical arcs become cubic curves.
// Malformed data fails with ErrPath.
func NewPath2DFromSVG(d string) (*Path2D, error) {
	p := NewPath2D()
	data := []byte(d)
	i := skipCommaWhitespace(data)
	if i == len(data) {
		return p, nil
	}
	if isNumberStart(data[i]) {
		return nil, fmt.Errorf("%w: svg path must start with a command", ErrPath)
	}

	m := Identity()
	b := &p.b
	var (
		args     [7]float64
		cur      pt2    // current point
		start    pt2    // start of the current subpath
		ctrl     pt2    // last cubic control point
		quad     pt2    // last quadratic control point
		prevCmd  = byte('z')
		moveSeen bool
	)
	for {
		i += skipCommaWhitespace(data[i:])
		if i >= len(data) {
			break
		}

		cmd := prevCmd
		repeat := true
		if cmd == 'z' || cmd == 'Z' || !isNumberStart(data[i]) {
			cmd = data[i]
			repeat = false
			i++
			i += skipCommaWhitespace(data[i:])
		}
		upper := cmd
		if 'a' <= cmd && cmd <= 'z' {
			upper -= 'a' - 'A'
		}
		n, ok := svgArgs[upper]
		if !ok {
			return nil, fmt.Errorf("%w: unknown svg command %q at %d", ErrPath, cmd, i)
		}
		if !moveSeen && upper != 'M' {
			return nil, fmt.Errorf("%w: svg path must start with moveto", ErrPath)
		}

		for j := 0; j < n; j++ {
			if upper == 'A' && (j == 3 || j == 4) {
				// Arc flags are a single digit and need no separator.
				if i < len(data) && (data[i] == '0' || data[i] == '1') {
					args[j] = float64(data[i] - '0')
					i++
				} else {
					return nil, fmt.Errorf("%w: arc flag must be 0 or 1 at %d", ErrPath, i)
				}
			} else {
				v, k := strconv.ParseFloat(data[i:])
				if k == 0 {
					if repeat && j == 0 && i < len(data) {
						return nil, fmt.Errorf("%w: unexpected %q at %d", ErrPath, data[i], i)
					}
					return nil, fmt.Errorf("%w: command %q needs %d numbers at %d", ErrPath, cmd, n, i)
				}
				args[j] = v
				i += k
			}
			i += skipCommaWhitespace(data[i:])
		}

		rel := cmd != upper
		at := func(x, y float64) pt2 {
			if rel {
				return pt2{cur.x + x, cur.y + y}
			}
			return pt2{x, y}
		}

		switch upper {
		case 'M':
			cur = at(args[0], args[1])
			start = cur
			b.moveTo(m, cur.x, cur.y)
			moveSeen = true
			// Further coordinate pairs are implicit linetos.
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'Z':
			b.closePath()
			cur = start
		case 'L':
			cur = at(args[0], args[1])
			b.lineTo(m, cur.x, cur.y)
		case 'H':
			if rel {
				cur.x += args[0]
			} else {
				cur.x = args[0]
			}
			b.lineTo(m, cur.x, cur.y)
		case 'V':
			if rel {
				cur.y += args[0]
			} else {
				cur.y = args[0]
			}
			b.lineTo(m, cur.x, cur.y)
		case 'C':
			c1 := at(args[0], args[1])
			c2 := at(args[2], args[3])
			cur = at(args[4], args[5])
			b.cubicTo(m, c1.x, c1.y, c2.x, c2.y, cur.x, cur.y)
			ctrl = c2
		case 'S':
			c1 := cur
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				c1 = pt2{2*cur.x - ctrl.x, 2*cur.y - ctrl.y}
			}
			c2 := at(args[0], args[1])
			cur = at(args[2], args[3])
			b.cubicTo(m, c1.x, c1.y, c2.x, c2.y, cur.x, cur.y)
			ctrl = c2
		case 'Q':
			c := at(args[0], args[1])
			cur = at(args[2], args[3])
			b.quadTo(m, c.x, c.y, cur.x, cur.y)
			quad = c
		case 'T':
			c := cur
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				c = pt2{2*cur.x - quad.x, 2*cur.y - quad.y}
			}
			cur = at(args[0], args[1])
			b.quadTo(m, c.x, c.y, cur.x, cur.y)
			quad = c
		case 'A':
			end := at(args[5], args[6])
			b.svgArc(m, cur.x, cur.y, args[0], args[1], args[2], args[3] == 1, args[4] == 1, end.x, end.y)
			cur = end
		}
		prevCmd = cmd
	}
	return p, nil
}

// pt2 is a point in SVG user units.
type pt2 struct{ x, y float64 }
