package svg

import (
	"fmt"

	"github.com/exrok/svg2pts"
	"github.com/tdewolff/parse/v2/strconv"
)

// cmdLens gives the number of numbers following each path command.
var cmdLens = map[byte]int{
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

func skipCommaWhitespace(b []byte) int {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == ',' || b[i] == '\n' || b[i] == '\r' || b[i] == '\t') {
		i++
	}
	return i
}

// parsePathData parses an SVG path "d" attribute into the builder.
// All commands of the path grammar are supported, including relative
// forms and smooth-control reflection; quadratics and arcs are lowered to
// cubics by the builder.
func parsePathData(b *svg2pts.PathBuilder, data []byte) error {
	var f [7]float64
	var q, c svg2pts.Point // last quad/cubic control, for T and S reflection
	var p0, p1 svg2pts.Point
	prevCmd := byte('z')

	i := skipCommaWhitespace(data)
	if len(data) <= i {
		return nil
	}
	if data[i] != 'M' && data[i] != 'm' {
		return fmt.Errorf("svg: bad path: path must start with a moveto command")
	}

	for {
		i += skipCommaWhitespace(data[i:])
		if len(data) <= i {
			break
		}

		cmd := prevCmd
		repeat := true
		if cmd == 'z' || cmd == 'Z' || !(data[i] >= '0' && data[i] <= '9' || data[i] == '.' || data[i] == '-' || data[i] == '+') {
			cmd = data[i]
			repeat = false
			i++
			i += skipCommaWhitespace(data[i:])
		}

		CMD := cmd
		if 'a' <= cmd && cmd <= 'z' {
			CMD -= 'a' - 'A'
		}
		n, ok := cmdLens[CMD]
		if !ok {
			return fmt.Errorf("svg: bad path: unknown command '%c' at position %d", cmd, i)
		}
		for j := 0; j < n; j++ {
			if CMD == 'A' && (j == 3 || j == 4) {
				// The largeArc and sweep flags are single digits and may
				// run together with the following number.
				if i < len(data) && data[i] == '1' {
					f[j] = 1.0
				} else if i < len(data) && data[i] == '0' {
					f[j] = 0.0
				} else {
					return fmt.Errorf("svg: bad path: largeArc and sweep flags should be 0 or 1 in command '%c' at position %d", cmd, i+1)
				}
				i++
			} else {
				num, consumed := strconv.ParseFloat(data[i:])
				if consumed == 0 {
					if repeat && j == 0 && i < len(data) {
						return fmt.Errorf("svg: bad path: unknown command '%c' at position %d", data[i], i+1)
					}
					return fmt.Errorf("svg: bad path: sets of %d numbers should follow command '%c' at position %d", n, cmd, i+1)
				}
				f[j] = num
				i += consumed
			}
			i += skipCommaWhitespace(data[i:])
		}

		switch cmd {
		case 'M', 'm':
			p1 = svg2pts.Pt(f[0], f[1])
			if cmd == 'm' {
				p1 = p1.Add(p0)
				cmd = 'l'
			} else {
				cmd = 'L'
			}
			b.MoveTo(p1.X, p1.Y)
		case 'Z', 'z':
			p1 = b.Start()
			b.Close()
		case 'L', 'l':
			p1 = svg2pts.Pt(f[0], f[1])
			if cmd == 'l' {
				p1 = p1.Add(p0)
			}
			b.LineTo(p1.X, p1.Y)
		case 'H', 'h':
			p1.X = f[0]
			if cmd == 'h' {
				p1.X += p0.X
			}
			b.LineTo(p1.X, p1.Y)
		case 'V', 'v':
			p1.Y = f[0]
			if cmd == 'v' {
				p1.Y += p0.Y
			}
			b.LineTo(p1.X, p1.Y)
		case 'C', 'c':
			cp1 := svg2pts.Pt(f[0], f[1])
			cp2 := svg2pts.Pt(f[2], f[3])
			p1 = svg2pts.Pt(f[4], f[5])
			if cmd == 'c' {
				cp1 = cp1.Add(p0)
				cp2 = cp2.Add(p0)
				p1 = p1.Add(p0)
			}
			b.CubicTo(cp1.X, cp1.Y, cp2.X, cp2.Y, p1.X, p1.Y)
			c = cp2
		case 'S', 's':
			cp1 := p0
			cp2 := svg2pts.Pt(f[0], f[1])
			p1 = svg2pts.Pt(f[2], f[3])
			if cmd == 's' {
				cp2 = cp2.Add(p0)
				p1 = p1.Add(p0)
			}
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				cp1 = p0.Mul(2.0).Sub(c)
			}
			b.CubicTo(cp1.X, cp1.Y, cp2.X, cp2.Y, p1.X, p1.Y)
			c = cp2
		case 'Q', 'q':
			cp := svg2pts.Pt(f[0], f[1])
			p1 = svg2pts.Pt(f[2], f[3])
			if cmd == 'q' {
				cp = cp.Add(p0)
				p1 = p1.Add(p0)
			}
			b.QuadTo(cp.X, cp.Y, p1.X, p1.Y)
			q = cp
		case 'T', 't':
			cp := p0
			p1 = svg2pts.Pt(f[0], f[1])
			if cmd == 't' {
				p1 = p1.Add(p0)
			}
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				cp = p0.Mul(2.0).Sub(q)
			}
			b.QuadTo(cp.X, cp.Y, p1.X, p1.Y)
			q = cp
		case 'A', 'a':
			p1 = svg2pts.Pt(f[5], f[6])
			if cmd == 'a' {
				p1 = p1.Add(p0)
			}
			b.ArcTo(f[0], f[1], f[2], f[3] == 1.0, f[4] == 1.0, p1.X, p1.Y)
		}
		prevCmd = cmd
		p0 = p1
	}
	return nil
}
