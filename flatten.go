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
	"math"

	"seehuhn.de/go/geom/vec"
)

// quadPoly is a quadratic Bézier curve in power basis,
// B(t) = (a·t + b)·t + c.
type quadPoly struct {
	a, b, c vec.Vec2
}

func newQuadPoly(p0, p1, p2 vec.Vec2) quadPoly {
	return quadPoly{
		a: p0.Sub(p1.Mul(2)).Add(p2), // p0 - 2p1 + p2
		b: p1.Sub(p0).Mul(2),         // 2(p1 - p0)
		c: p0,
	}
}

// eval evaluates the curve using Horner's scheme.
func (q quadPoly) eval(t float64) vec.Vec2 {
	return q.a.Mul(t).Add(q.b).Mul(t).Add(q.c)
}

// cubicPoly is a cubic Bézier curve in power basis,
// B(t) = ((a·t + b)·t + c)·t + d.
type cubicPoly struct {
	a, b, c, d vec.Vec2
}

func newCubicPoly(p0, p1, p2, p3 vec.Vec2) cubicPoly {
	return cubicPoly{
		a: p3.Sub(p0).Add(p1.Sub(p2).Mul(3)), // -p0 + 3p1 - 3p2 + p3
		b: p0.Sub(p1.Mul(2)).Add(p2).Mul(3),  // 3p0 - 6p1 + 3p2
		c: p1.Sub(p0).Mul(3),                 // 3(p1 - p0)
		d: p0,
	}
}

// eval evaluates the curve using Horner's scheme.
func (q cubicPoly) eval(t float64) vec.Vec2 {
	return q.a.Mul(t).Add(q.b).Mul(t).Add(q.c).Mul(t).Add(q.d)
}

// quadError measures how far a quadratic curve bends away from its chord.
// It is the length of (2p1 - p0 - p2)/4, which is a bound on the distance
// between the curve and the chord.
func quadError(p0, p1, p2 vec.Vec2) float64 {
	return p1.Mul(2).Sub(p0).Sub(p2).Mul(0.25).Length()
}

// cubicError bounds the second derivative of a cubic curve, using the
// largest second difference of the control points in each coordinate.
func cubicError(p0, p1, p2, p3 vec.Vec2) float64 {
	a := p1.Mul(2).Sub(p0).Sub(p2)
	b := p2.Mul(2).Sub(p1).Sub(p3)
	eX := max(math.Abs(a.X), math.Abs(b.X))
	eY := max(math.Abs(a.Y), math.Abs(b.Y))
	return math.Hypot(eX, eY)
}

// maxCurveSegments limits the work spent on a single curve. Curves which
// would need more segments are far outside any reasonable device.
const maxCurveSegments = 1 << 16

// quadSegments returns the number of line segments needed to approximate
// the quadratic curve to within 1/4 device pixel.
func quadSegments(p0, p1, p2 vec.Vec2) int {
	return segmentCount(2 * math.Sqrt(quadError(p0, p1, p2)))
}

// cubicSegments returns the number of line segments needed to approximate
// the cubic curve to within 1/4 device pixel.
func cubicSegments(p0, p1, p2, p3 vec.Vec2) int {
	return segmentCount(math.Sqrt(3 * cubicError(p0, p1, p2, p3)))
}

func segmentCount(n float64) int {
	switch {
	case !(n > 1): // also catches NaN
		return 1
	case n >= maxCurveSegments:
		return maxCurveSegments
	default:
		return int(math.Ceil(n))
	}
}

// flattenQuad approximates the quadratic curve by n straight segments and
// calls emit for each of them, in order.
func flattenQuad(p0, p1, p2 vec.Vec2, n int, emit func(from, to vec.Vec2)) {
	q := newQuadPoly(p0, p1, p2)
	prev := p0
	for i := 1; i < n; i++ {
		pt := q.eval(float64(i) / float64(n))
		emit(prev, pt)
		prev = pt
	}
	emit(prev, p2)
}

// flattenCubic approximates the cubic curve by n straight segments and
// calls emit for each of them, in order.
func flattenCubic(p0, p1, p2, p3 vec.Vec2, n int, emit func(from, to vec.Vec2)) {
	q := newCubicPoly(p0, p1, p2, p3)
	prev := p0
	for i := 1; i < n; i++ {
		pt := q.eval(float64(i) / float64(n))
		emit(prev, pt)
		prev = pt
	}
	emit(prev, p3)
}

// flattenSegments calls emit for every straight edge of p, flattening
// curves with the device-space segment counts. Control points are used as
// they are stored, so p must already be in device space.
func flattenSegments(p *Path, emit func(from, to vec.Vec2)) {
	for kind, pts := range p.Segments() {
		switch kind {
		case SegmentLine:
			emit(pts[0], pts[1])
		case SegmentQuad:
			n := quadSegments(pts[0], pts[1], pts[2])
			flattenQuad(pts[0], pts[1], pts[2], n, emit)
		case SegmentCubic:
			n := cubicSegments(pts[0], pts[1], pts[2], pts[3])
			flattenCubic(pts[0], pts[1], pts[2], pts[3], n, emit)
		}
	}
}
