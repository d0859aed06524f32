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

package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf/graphics"
)

// pixelCases check which pixels count as covered: a pixel is inside if
// its centre is, and coordinates exactly half way between two pixel
// centres round up.
var pixelCases = []TestCase{
	{
		Name:   "offset_00",
		Path:   rectangle(20, 20, 44, 44),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "offset_25",
		Path:   rectangle(20.25, 20.25, 44.25, 44.25),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "offset_50",
		Path:   rectangle(20.5, 20.5, 44.5, 44.5),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "offset_75",
		Path:   rectangle(20.75, 20.75, 44.75, 44.75),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "thin_line_y_integer",
		Path:   polyline(pt(5, 10), pt(59, 10)),
		Width:  64,
		Height: 64,
		Op:     solid(1, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		Name:   "thin_line_y_half",
		Path:   polyline(pt(5, 10.5), pt(59, 10.5)),
		Width:  64,
		Height: 64,
		Op:     solid(1, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		Name:   "narrower_than_pixel",
		Path:   rectangle(10.6, 10, 11.4, 54),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "large_coord_centered",
		Path:   rectangle(-1e6, -1e6, 1e6+32, 1e6+32),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "small_shape_large_offset",
		Path:   rectangle(1e6+20, 1e6+20, 1e6+44, 1e6+44),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
		CTM:    matrix.Matrix{1, 0, 0, 1, -1e6, -1e6},
	},
}
