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

// Package render draws the geometry test cases with the canvas.
package render

import (
	"seehuhn.de/go/canvas"
	"seehuhn.de/go/canvas/testcases"
)

// Draw renders tc in black onto a new white bitmap.
func Draw(tc testcases.TestCase) *canvas.Bitmap {
	bm := canvas.NewBitmap(tc.Width, tc.Height)
	c := canvas.New(bm)
	c.Clear(canvas.White)
	c.Concat(canvas.FromMatrix(tc.Transform()))

	p := Path(tc)
	paint := canvas.NewPaint(canvas.Black)
	switch op := tc.Op.(type) {
	case testcases.Fill:
		c.DrawPath(p, paint)
	case testcases.Stroke:
		c.StrokePath(p, Stroke(op), paint)
	}
	return bm
}

// Path converts the geometry of tc into a canvas path, with the fill rule
// taken from the operation.
func Path(tc testcases.TestCase) *canvas.Path {
	p := canvas.PathFromData(tc.Path)
	if op, ok := tc.Op.(testcases.Fill); ok && op.Rule == testcases.EvenOdd {
		p.Rule = canvas.EvenOdd
	}
	return p
}

// Stroke converts a stroke operation into canvas stroke parameters.
func Stroke(op testcases.Stroke) *canvas.Stroke {
	return &canvas.Stroke{
		Width:      op.Width,
		Cap:        op.Cap,
		Join:       op.Join,
		MiterLimit: op.MiterLimit,
		Dash:       op.Dash,
		DashPhase:  op.DashPhase,
	}
}

// Covered reports which pixels of bm have been painted, in row-major
// order. A pixel counts as painted if it is darker than mid-grey.
func Covered(bm *canvas.Bitmap) []bool {
	res := make([]bool, bm.Width*bm.Height)
	for y := range bm.Height {
		for x, px := range bm.Row(0, y, bm.Width) {
			res[y*bm.Width+x] = px.G() < 128
		}
	}
	return res
}
