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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Transform is a 2D affine transformation.
//
// A point (x, y) is mapped to
//
//	x' = SX*x + KX*y + TX
//	y' = KY*x + SY*y + TY
//
// The zero value is the degenerate transform which maps every point to the
// origin; use [Identity] for the identity.
type Transform struct {
	SX, KX, TX float64
	KY, SY, TY float64
}

// Identity is the identity transform.
var Identity = Transform{SX: 1, SY: 1}

// Translate returns a transform which shifts points by (tx, ty).
func Translate(tx, ty float64) Transform {
	return Transform{SX: 1, TX: tx, SY: 1, TY: ty}
}

// Scale returns a transform which scales x by sx and y by sy.
func Scale(sx, sy float64) Transform {
	return Transform{SX: sx, SY: sy}
}

// Rotate returns a transform which rotates points by the given angle
// around the origin. In device space (y pointing down) a positive angle
// turns clockwise.
func Rotate(radians float64) Transform {
	sin, cos := math.Sincos(radians)
	return Transform{SX: cos, KX: -sin, KY: sin, SY: cos}
}

// Concat returns the composition a∘b, which first applies b and then a.
func Concat(a, b Transform) Transform {
	return Transform{
		SX: a.SX*b.SX + a.KX*b.KY,
		KX: a.SX*b.KX + a.KX*b.SY,
		TX: a.SX*b.TX + a.KX*b.TY + a.TX,
		KY: a.KY*b.SX + a.SY*b.KY,
		SY: a.KY*b.KX + a.SY*b.SY,
		TY: a.KY*b.TX + a.SY*b.TY + a.TY,
	}
}

// Det returns the determinant of the linear part of m.
func (m Transform) Det() float64 {
	return m.SX*m.SY - m.KX*m.KY
}

// Invert returns the inverse of m. The second return value is false if m
// is singular or the inverse has a non-finite entry, in which case the
// first return value is meaningless.
func (m Transform) Invert() (Transform, bool) {
	det := m.Det()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Transform{}, false
	}
	inv := 1 / det
	res := Transform{
		SX: m.SY * inv,
		KX: -m.KX * inv,
		TX: (m.KX*m.TY - m.TX*m.SY) * inv,
		KY: -m.KY * inv,
		SY: m.SX * inv,
		TY: (m.TX*m.KY - m.SX*m.TY) * inv,
	}
	if !res.isFinite() {
		return Transform{}, false
	}
	return res, true
}

func (m Transform) isFinite() bool {
	for _, v := range [6]float64{m.SX, m.KX, m.TX, m.KY, m.SY, m.TY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// IsIdentity reports whether m is exactly the identity transform.
func (m Transform) IsIdentity() bool {
	return m == Identity
}

// Apply maps a single point.
func (m Transform) Apply(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m.SX*p.X + m.KX*p.Y + m.TX,
		Y: m.KY*p.X + m.SY*p.Y + m.TY,
	}
}

// ApplyLinear maps a vector, ignoring the translation part of m.
func (m Transform) ApplyLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m.SX*v.X + m.KX*v.Y,
		Y: m.KY*v.X + m.SY*v.Y,
	}
}

// MapPoints writes the images of src into dst.
// dst must be at least as long as src; the two may be the same slice.
func (m Transform) MapPoints(dst, src []vec.Vec2) {
	for i, p := range src {
		dst[i] = vec.Vec2{
			X: m.SX*p.X + m.KX*p.Y + m.TX,
			Y: m.KY*p.X + m.SY*p.Y + m.TY,
		}
	}
}

// Matrix converts m to the PDF-style matrix representation
// [a b c d e f] used by the geom package.
func (m Transform) Matrix() matrix.Matrix {
	return matrix.Matrix{m.SX, m.KY, m.KX, m.SY, m.TX, m.TY}
}

// FromMatrix converts a geom matrix to a Transform.
func FromMatrix(M matrix.Matrix) Transform {
	return Transform{
		SX: M[0], KX: M[2], TX: M[4],
		KY: M[1], SY: M[3], TY: M[5],
	}
}
