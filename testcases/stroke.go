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

import "seehuhn.de/go/pdf/graphics"

var strokeCases = []TestCase{
	{
		Name:   "line_butt",
		Path:   polyline(pt(10, 32), pt(54, 32)),
		Width:  64,
		Height: 64,
		Op:     solid(8, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		Name:   "line_round",
		Path:   polyline(pt(10, 32), pt(54, 32)),
		Width:  64,
		Height: 64,
		Op:     solid(8, graphics.LineCapRound, graphics.LineJoinMiter),
	},
	{
		Name:   "line_square",
		Path:   polyline(pt(10, 32), pt(54, 32)),
		Width:  64,
		Height: 64,
		Op:     solid(8, graphics.LineCapSquare, graphics.LineJoinMiter),
	},
	{
		Name:   "line_diagonal",
		Path:   polyline(pt(8, 56), pt(56, 8)),
		Width:  64,
		Height: 64,
		Op:     solid(5, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		Name:   "corner_miter",
		Path:   polyline(pt(10, 50), pt(32, 14), pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     solid(6, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		Name:   "corner_round",
		Path:   polyline(pt(10, 50), pt(32, 14), pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     solid(6, graphics.LineCapButt, graphics.LineJoinRound),
	},
	{
		Name:   "corner_bevel",
		Path:   polyline(pt(10, 50), pt(32, 14), pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     solid(6, graphics.LineCapButt, graphics.LineJoinBevel),
	},
	{
		Name:   "miter_limit_exceeded",
		Path:   polyline(pt(10, 54), pt(32, 10), pt(36, 54)),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      4,
			Cap:        graphics.LineCapButt,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 2,
		},
	},
	{
		Name:   "closed_square",
		Path:   rectangle(14, 14, 50, 50),
		Width:  64,
		Height: 64,
		Op:     solid(6, graphics.LineCapButt, graphics.LineJoinMiter),
	},
	{
		Name:   "reversal_round",
		Path:   polyline(pt(10, 32), pt(50, 32), pt(20, 32)),
		Width:  64,
		Height: 64,
		Op:     solid(8, graphics.LineCapRound, graphics.LineJoinRound),
	},
	{
		Name:   "dot_round",
		Path:   polyline(pt(32, 32), pt(32, 32)),
		Width:  64,
		Height: 64,
		Op:     solid(20, graphics.LineCapRound, graphics.LineJoinRound),
	},
}
