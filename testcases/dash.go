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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

var dashCases = []TestCase{
	// patterns
	{
		Name:   "dash_single_element",
		Path:   horizontalLine(5, 32, 59),
		Width:  64,
		Height: 64,
		Op:     dashed(4, 0, 10),
	},
	{
		Name:   "dash_three_element",
		Path:   horizontalLine(5, 32, 59),
		Width:  64,
		Height: 64,
		Op:     dashed(4, 0, 5, 3, 8),
	},
	{
		Name:   "dash_short_long",
		Path:   horizontalLine(5, 32, 59),
		Width:  64,
		Height: 64,
		Op:     dashed(4, 0, 2, 20),
	},
	{
		Name:   "dash_many_elements",
		Path:   horizontalLine(5, 32, 59),
		Width:  64,
		Height: 64,
		Op:     dashed(4, 0, 2, 2, 6, 2, 2, 10),
	},
	{
		Name:   "dash_invalid_pattern",
		Path:   horizontalLine(5, 32, 59),
		Width:  64,
		Height: 64,
		Op:     dashed(4, 0, 0, 0),
	},

	// phase
	{
		Name:   "dash_phase_half",
		Path:   horizontalLine(5, 32, 59),
		Width:  64,
		Height: 64,
		Op:     dashed(4, 5, 10, 5),
	},
	{
		Name:   "dash_phase_dash_len",
		Path:   horizontalLine(5, 32, 59),
		Width:  64,
		Height: 64,
		Op:     dashed(4, 10, 10, 5),
	},
	{
		Name:   "dash_phase_negative",
		Path:   horizontalLine(5, 32, 59),
		Width:  64,
		Height: 64,
		Op:     dashed(4, -5, 10, 5),
	},
	{
		Name:   "dash_phase_large_neg",
		Path:   horizontalLine(5, 32, 59),
		Width:  64,
		Height: 64,
		Op:     dashed(4, -30, 10, 5),
	},

	// zero-length dashes
	{
		Name:   "dash_zero_round",
		Path:   horizontalLine(5, 32, 59),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      4,
			Cap:        graphics.LineCapRound,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
			Dash:       []float64{0, 5},
		},
	},
	{
		Name:   "dash_zero_butt",
		Path:   horizontalLine(5, 32, 59),
		Width:  64,
		Height: 64,
		Op:     dashed(4, 0, 0, 5),
	},
	{
		Name:   "dash_zero_mixed",
		Path:   horizontalLine(5, 32, 59),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      4,
			Cap:        graphics.LineCapRound,
			Join:       graphics.LineJoinMiter,
			MiterLimit: 10,
			Dash:       []float64{0, 5, 10, 5},
		},
	},

	// corners
	{
		Name:   "dash_corner_in_dash",
		Path:   polyline(pt(10, 50), pt(32, 20), pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     dashed(4, 0, 40, 5),
	},
	{
		Name:   "dash_corner_in_gap",
		Path:   polyline(pt(10, 50), pt(32, 20), pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     dashed(4, 20, 5, 40),
	},
	{
		Name:   "dash_overlap_caps",
		Path:   cornerAngle(32, 54, 32, 32, 45),
		Width:  64,
		Height: 64,
		Op: Stroke{
			Width:      8,
			Cap:        graphics.LineCapRound,
			Join:       graphics.LineJoinRound,
			MiterLimit: 10,
			Dash:       []float64{10, 5},
		},
	},
	{
		Name:   "dash_multi_corner",
		Path:   polyline(pt(10, 50), pt(22, 14), pt(32, 50), pt(42, 14), pt(54, 50)),
		Width:  64,
		Height: 64,
		Op:     dashed(6, 0, 50, 10),
	},

	// closed paths
	{
		Name:   "dash_closed_square",
		Path:   rectangle(16, 16, 48, 48),
		Width:  64,
		Height: 64,
		Op:     dashed(4, 0, 10, 5),
	},
	{
		Name:   "dash_closed_join",
		Path:   rectangle(16, 16, 48, 48),
		Width:  64,
		Height: 64,
		Op:     dashed(4, 0, 32, 5),
	},
	{
		Name:   "dash_closed_same_dash",
		Path:   rectangle(16, 16, 48, 48),
		Width:  64,
		Height: 64,
		Op:     dashed(4, 32, 64, 10),
	},
}

// horizontalLine builds an open horizontal line from (x1, y) to (x2, y).
func horizontalLine(x1, y, x2 float64) *path.Data {
	return polyline(pt(x1, y), pt(x2, y))
}

// cornerAngle builds an open corner.  The first segment goes from (x1, y1)
// to (cx, cy), the second leaves (cx, cy) at the given angle in degrees
// above the horizontal.
func cornerAngle(x1, y1, cx, cy float64, angleDeg float64) *path.Data {
	const length = 30.0
	angle := angleDeg * math.Pi / 180
	return polyline(pt(x1, y1), pt(cx, cy),
		pt(cx+length*math.Cos(angle), cy-length*math.Sin(angle)))
}
