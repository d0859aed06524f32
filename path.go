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

package canvas

import (
	"iter"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Direction selects the orientation of the closed shapes added by
// [Path.AddRect] and [Path.AddCircle]. Orientations refer to device space,
// where the y axis points down.
type Direction int

const (
	// Clockwise shapes contribute +1 to the winding number of their interior.
	Clockwise Direction = iota

	// CounterClockwise shapes contribute -1 to the winding number of their
	// interior.
	CounterClockwise
)

// Path is a sequence of sub-paths made of lines, quadratic and cubic
// Bézier curves. The commands and control points are stored in a
// [path.Data].
//
// The zero value is an empty path using the nonzero winding rule.
type Path struct {
	data path.Data

	// Rule is the fill rule used when the path is filled.
	Rule FillRule
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{}
}

// PathFromData returns a path which uses a copy of the given commands and
// control points.
func PathFromData(d *path.Data) *Path {
	p := &Path{}
	p.data.Cmds = append(p.data.Cmds, d.Cmds...)
	p.data.Coords = append(p.data.Coords, d.Coords...)
	return p
}

// Data returns the underlying command and point storage.
// The caller must not modify the returned value.
func (p *Path) Data() *path.Data {
	return &p.data
}

// IsEmpty reports whether the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.data.Cmds) == 0
}

// NumPoints returns the number of stored control points.
func (p *Path) NumPoints() int {
	return len(p.data.Coords)
}

// Reset removes all commands, keeping the allocated storage.
func (p *Path) Reset() {
	p.data.Cmds = p.data.Cmds[:0]
	p.data.Coords = p.data.Coords[:0]
}

// Clone returns a deep copy of p.
func (p *Path) Clone() *Path {
	res := PathFromData(&p.data)
	res.Rule = p.Rule
	return res
}

// MoveTo starts a new sub-path at pt.
func (p *Path) MoveTo(pt vec.Vec2) *Path {
	p.data.Cmds = append(p.data.Cmds, path.CmdMoveTo)
	p.data.Coords = append(p.data.Coords, pt)
	return p
}

// LineTo appends a straight line from the current point to pt.
func (p *Path) LineTo(pt vec.Vec2) *Path {
	p.data.Cmds = append(p.data.Cmds, path.CmdLineTo)
	p.data.Coords = append(p.data.Coords, pt)
	return p
}

// QuadTo appends a quadratic Bézier curve with control point c and end
// point pt.
func (p *Path) QuadTo(c, pt vec.Vec2) *Path {
	p.data.Cmds = append(p.data.Cmds, path.CmdQuadTo)
	p.data.Coords = append(p.data.Coords, c, pt)
	return p
}

// CubeTo appends a cubic Bézier curve with control points c1, c2 and end
// point pt.
func (p *Path) CubeTo(c1, c2, pt vec.Vec2) *Path {
	p.data.Cmds = append(p.data.Cmds, path.CmdCubeTo)
	p.data.Coords = append(p.data.Coords, c1, c2, pt)
	return p
}

// Close closes the current sub-path.
func (p *Path) Close() *Path {
	p.data.Cmds = append(p.data.Cmds, path.CmdClose)
	return p
}

// AddRect adds the rectangle r as a new closed sub-path, starting at the
// top-left corner.
func (p *Path) AddRect(r rect.Rect, dir Direction) *Path {
	p.MoveTo(vec.Vec2{X: r.LLx, Y: r.LLy})
	if dir == CounterClockwise {
		p.LineTo(vec.Vec2{X: r.LLx, Y: r.URy})
		p.LineTo(vec.Vec2{X: r.URx, Y: r.URy})
		p.LineTo(vec.Vec2{X: r.URx, Y: r.LLy})
	} else {
		p.LineTo(vec.Vec2{X: r.URx, Y: r.LLy})
		p.LineTo(vec.Vec2{X: r.URx, Y: r.URy})
		p.LineTo(vec.Vec2{X: r.LLx, Y: r.URy})
	}
	return p.Close()
}

// AddPolygon adds the polygon through pts as a new sub-path.
// The sub-path is closed implicitly when the path is filled.
func (p *Path) AddPolygon(pts []vec.Vec2) *Path {
	if len(pts) == 0 {
		return p
	}
	p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p.LineTo(pt)
	}
	return p
}

// Constants for the eight-arc circle approximation: every arc covers 45°,
// its control point sits on the tangents at distance tan(π/8).
const (
	circleTan  = 0.41421356237
	circleDiag = 0.70710678118
)

// AddCircle adds a circle as a closed sub-path made of eight quadratic
// arcs, starting at the rightmost point.
func (p *Path) AddCircle(center vec.Vec2, radius float64, dir Direction) *Path {
	const h, r = circleTan, circleDiag
	m := Concat(Translate(center.X, center.Y), Scale(radius, radius))

	// unit circle, clockwise in device space
	arcs := [16]vec.Vec2{
		{X: 1, Y: h}, {X: r, Y: r},
		{X: h, Y: 1}, {X: 0, Y: 1},
		{X: -h, Y: 1}, {X: -r, Y: r},
		{X: -1, Y: h}, {X: -1, Y: 0},
		{X: -1, Y: -h}, {X: -r, Y: -r},
		{X: -h, Y: -1}, {X: 0, Y: -1},
		{X: h, Y: -1}, {X: r, Y: -r},
		{X: 1, Y: -h}, {X: 1, Y: 0},
	}
	if dir == CounterClockwise {
		for i := range arcs {
			arcs[i].Y = -arcs[i].Y
		}
	}
	m.MapPoints(arcs[:], arcs[:])

	p.MoveTo(m.Apply(vec.Vec2{X: 1, Y: 0}))
	for i := 0; i < len(arcs); i += 2 {
		p.QuadTo(arcs[i], arcs[i+1])
	}
	return p.Close()
}

// Transform maps every control point of p through m, in place.
func (p *Path) Transform(m Transform) {
	m.MapPoints(p.data.Coords, p.data.Coords)
}

// SegmentKind identifies the type of a segment yielded by [Path.Segments].
type SegmentKind int

const (
	SegmentLine  SegmentKind = iota // two points
	SegmentQuad                     // three points
	SegmentCubic                    // four points
)

// Segments iterates over the drawable segments of p. Every segment starts
// at the end point of the previous one. A closing line back to the start of
// the sub-path is synthesised whenever a sub-path ends, whether by an
// explicit close, by a new move or by the end of the path.
// Drawing commands before the first move are ignored.
//
// The yielded slice is only valid during the call.
func (p *Path) Segments() iter.Seq2[SegmentKind, []vec.Vec2] {
	return func(yield func(SegmentKind, []vec.Vec2) bool) {
		var buf [4]vec.Vec2
		var start, current vec.Vec2
		inSubpath := false

		closeSubpath := func() bool {
			if inSubpath && current != start {
				buf[0], buf[1] = current, start
				if !yield(SegmentLine, buf[:2]) {
					return false
				}
			}
			current = start
			return true
		}

		coords := p.data.Coords
		idx := 0
		for _, cmd := range p.data.Cmds {
			switch cmd {
			case path.CmdMoveTo:
				if !closeSubpath() {
					return
				}
				start = coords[idx]
				current = start
				inSubpath = true
				idx++

			case path.CmdLineTo:
				pt := coords[idx]
				idx++
				if !inSubpath {
					continue
				}
				buf[0], buf[1] = current, pt
				if !yield(SegmentLine, buf[:2]) {
					return
				}
				current = pt

			case path.CmdQuadTo:
				c, pt := coords[idx], coords[idx+1]
				idx += 2
				if !inSubpath {
					continue
				}
				buf[0], buf[1], buf[2] = current, c, pt
				if !yield(SegmentQuad, buf[:3]) {
					return
				}
				current = pt

			case path.CmdCubeTo:
				c1, c2, pt := coords[idx], coords[idx+1], coords[idx+2]
				idx += 3
				if !inSubpath {
					continue
				}
				buf[0], buf[1], buf[2], buf[3] = current, c1, c2, pt
				if !yield(SegmentCubic, buf[:4]) {
					return
				}
				current = pt

			case path.CmdClose:
				if !closeSubpath() {
					return
				}
			}
		}
		closeSubpath()
	}
}

// Bounds returns the tight bounding box of the path, including the
// extrema of curved segments. The bounds of an empty path are the zero
// rectangle.
func (p *Path) Bounds() rect.Rect {
	if len(p.data.Coords) == 0 {
		return rect.Rect{}
	}
	first := p.data.Coords[0]
	bbox := rect.Rect{LLx: first.X, LLy: first.Y, URx: first.X, URy: first.Y}
	for kind, pts := range p.Segments() {
		var seg rect.Rect
		switch kind {
		case SegmentLine:
			seg = lineBounds(pts[0], pts[1])
		case SegmentQuad:
			seg = quadBounds(pts[0], pts[1], pts[2])
		case SegmentCubic:
			seg = cubicBounds(pts[0], pts[1], pts[2], pts[3])
		}
		bbox = unite(bbox, seg)
	}
	return bbox
}

func unite(a, b rect.Rect) rect.Rect {
	return rect.Rect{
		LLx: min(a.LLx, b.LLx),
		LLy: min(a.LLy, b.LLy),
		URx: max(a.URx, b.URx),
		URy: max(a.URy, b.URy),
	}
}

func includePoint(r rect.Rect, pt vec.Vec2) rect.Rect {
	return rect.Rect{
		LLx: min(r.LLx, pt.X),
		LLy: min(r.LLy, pt.Y),
		URx: max(r.URx, pt.X),
		URy: max(r.URy, pt.Y),
	}
}

func lineBounds(p0, p1 vec.Vec2) rect.Rect {
	return rect.Rect{
		LLx: min(p0.X, p1.X),
		LLy: min(p0.Y, p1.Y),
		URx: max(p0.X, p1.X),
		URy: max(p0.Y, p1.Y),
	}
}

// quadBounds includes the extremum of each coordinate, where the
// derivative 2(1-t)(p1-p0) + 2t(p2-p1) vanishes.
func quadBounds(p0, p1, p2 vec.Vec2) rect.Rect {
	bbox := lineBounds(p0, p2)
	q := newQuadPoly(p0, p1, p2)

	if denom := p2.X - 2*p1.X + p0.X; denom != 0 {
		if t := (p0.X - p1.X) / denom; t > 0 && t < 1 {
			bbox = includePoint(bbox, q.eval(t))
		}
	}
	if denom := p2.Y - 2*p1.Y + p0.Y; denom != 0 {
		if t := (p0.Y - p1.Y) / denom; t > 0 && t < 1 {
			bbox = includePoint(bbox, q.eval(t))
		}
	}
	return bbox
}

// cubicBounds includes the up to four interior extrema of the curve.
// For each coordinate, the derivative is the quadratic a·t² + b·t + c.
func cubicBounds(p0, p1, p2, p3 vec.Vec2) rect.Rect {
	bbox := lineBounds(p0, p3)
	q := newCubicPoly(p0, p1, p2, p3)

	var roots [4]float64
	ts := derivativeRoots(roots[:0], p0.X, p1.X, p2.X, p3.X)
	ts = derivativeRoots(ts, p0.Y, p1.Y, p2.Y, p3.Y)
	for _, t := range ts {
		if t > 0 && t < 1 {
			bbox = includePoint(bbox, q.eval(t))
		}
	}
	return bbox
}

// derivativeRoots appends the real roots of the derivative of the
// one-dimensional cubic Bézier with coefficients v0..v3.
func derivativeRoots(res []float64, v0, v1, v2, v3 float64) []float64 {
	a := -3*v0 + 9*v1 - 9*v2 + 3*v3
	b := 6*v0 - 12*v1 + 6*v2
	c := -3*v0 + 3*v1

	if a == 0 {
		if b != 0 {
			res = append(res, -c/b)
		}
		return res
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return res
	}
	s := math.Sqrt(disc)
	return append(res, (-b+s)/(2*a), (-b-s)/(2*a))
}

// ChopQuadAt splits the quadratic curve src at parameter t, using de
// Casteljau's construction. dst[0:3] and dst[2:5] are the two halves.
func ChopQuadAt(src [3]vec.Vec2, t float64) (dst [5]vec.Vec2) {
	dst[0] = src[0]
	dst[1] = lerpPoint(src[0], src[1], t)
	dst[3] = lerpPoint(src[1], src[2], t)
	dst[2] = lerpPoint(dst[1], dst[3], t)
	dst[4] = src[2]
	return dst
}

// ChopCubicAt splits the cubic curve src at parameter t, using de
// Casteljau's construction. dst[0:4] and dst[3:7] are the two halves.
func ChopCubicAt(src [4]vec.Vec2, t float64) (dst [7]vec.Vec2) {
	mid := lerpPoint(src[1], src[2], t)
	dst[0] = src[0]
	dst[1] = lerpPoint(src[0], src[1], t)
	dst[5] = lerpPoint(src[2], src[3], t)
	dst[2] = lerpPoint(dst[1], mid, t)
	dst[4] = lerpPoint(mid, dst[5], t)
	dst[3] = lerpPoint(dst[2], dst[4], t)
	dst[6] = src[3]
	return dst
}

func lerpPoint(a, b vec.Vec2, t float64) vec.Vec2 {
	return a.Mul(1 - t).Add(b.Mul(t))
}
