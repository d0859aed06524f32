// seehuhn.de/go/canvas - a 2D rendering library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package scene

import (
	"fmt"
	"strconv"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/canvas"
)

// ParsePath reads path data in the style of the SVG "d" attribute.
// The commands M, L, H, V, Q, C and Z are supported, in both absolute
// (upper case) and relative (lower case) form. Numbers are separated by
// white space or commas, and a command letter may be omitted when it
// repeats. After a move, further coordinate pairs are treated as lines.
func ParsePath(d string) (*canvas.Path, error) {
	pp := pathParser{buf: []byte(d)}
	res := canvas.NewPath()

	var cur, start vec.Vec2
	var cmd byte
	for {
		pp.skipSpace()
		if pp.pos >= len(pp.buf) {
			break
		}
		if c := pp.buf[pp.pos]; isCommand(c) {
			cmd = c
			pp.pos++
		} else if cmd == 0 {
			return nil, fmt.Errorf("expected path command at offset %d, found %q", pp.pos, c)
		}

		rel := cmd >= 'a'
		base := vec.Vec2{}
		if rel {
			base = cur
		}

		switch cmd {
		case 'M', 'm':
			p, err := pp.point(base)
			if err != nil {
				return nil, err
			}
			res.MoveTo(p)
			cur, start = p, p
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'L', 'l':
			p, err := pp.point(base)
			if err != nil {
				return nil, err
			}
			res.LineTo(p)
			cur = p
		case 'H', 'h':
			x, err := pp.number()
			if err != nil {
				return nil, err
			}
			cur = vec.Vec2{X: base.X + x, Y: cur.Y}
			res.LineTo(cur)
		case 'V', 'v':
			y, err := pp.number()
			if err != nil {
				return nil, err
			}
			cur = vec.Vec2{X: cur.X, Y: base.Y + y}
			res.LineTo(cur)
		case 'Q', 'q':
			pts, err := pp.points(base, 2)
			if err != nil {
				return nil, err
			}
			res.QuadTo(pts[0], pts[1])
			cur = pts[1]
		case 'C', 'c':
			pts, err := pp.points(base, 3)
			if err != nil {
				return nil, err
			}
			res.CubeTo(pts[0], pts[1], pts[2])
			cur = pts[2]
		case 'Z', 'z':
			res.Close()
			cur = start
			cmd = 0
		}
	}
	return res, nil
}

func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'Q', 'q', 'C', 'c', 'Z', 'z':
		return true
	}
	return false
}

type pathParser struct {
	buf []byte
	pos int
}

func (pp *pathParser) skipSpace() {
	for pp.pos < len(pp.buf) {
		switch pp.buf[pp.pos] {
		case ' ', ',', '\t', '\n', '\r':
			pp.pos++
		default:
			return
		}
	}
}

func (pp *pathParser) number() (float64, error) {
	pp.skipSpace()
	start := pp.pos
	for pp.pos < len(pp.buf) {
		c := pp.buf[pp.pos]
		isSign := (c == '-' || c == '+') &&
			(pp.pos == start || pp.buf[pp.pos-1] == 'e' || pp.buf[pp.pos-1] == 'E')
		if !isSign && !(c >= '0' && c <= '9') && c != '.' && c != 'e' && c != 'E' {
			break
		}
		pp.pos++
	}
	if start == pp.pos {
		return 0, fmt.Errorf("expected number at offset %d", start)
	}
	x, err := strconv.ParseFloat(string(pp.buf[start:pp.pos]), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number at offset %d: %w", start, err)
	}
	return x, nil
}

func (pp *pathParser) point(base vec.Vec2) (vec.Vec2, error) {
	x, err := pp.number()
	if err != nil {
		return vec.Vec2{}, err
	}
	y, err := pp.number()
	if err != nil {
		return vec.Vec2{}, err
	}
	return vec.Vec2{X: base.X + x, Y: base.Y + y}, nil
}

func (pp *pathParser) points(base vec.Vec2, n int) ([]vec.Vec2, error) {
	res := make([]vec.Vec2, n)
	for i := range res {
		p, err := pp.point(base)
		if err != nil {
			return nil, err
		}
		res[i] = p
	}
	return res, nil
}
