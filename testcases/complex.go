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
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

var complexCases = []TestCase{
	{
		Name:   "mixed_lines_curves",
		Path:   mixedLinesCurves(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},
	{
		Name:   "stroked_mixed",
		Path:   mixedLinesCurves(),
		Width:  64,
		Height: 64,
		Op:     solid(3, graphics.LineCapRound, graphics.LineJoinRound),
	},
	{
		Name:   "glyph_like",
		Path:   glyphLikeShape(),
		Width:  64,
		Height: 64,
		Op:     Fill{Rule: NonZero},
	},

	// self-overlapping strokes
	{
		Name:   "spiral_overlap",
		Path:   spiralPath(32, 32, 5, 25, 3),
		Width:  64,
		Height: 64,
		Op:     solid(4, graphics.LineCapRound, graphics.LineJoinRound),
	},
	{
		Name:   "figure_eight",
		Path:   figureEight(32, 32, 20),
		Width:  64,
		Height: 64,
		Op:     solid(4, graphics.LineCapRound, graphics.LineJoinRound),
	},
	{
		Name:   "thick_tight_curve",
		Path:   tightCurve(32, 32, 15),
		Width:  64,
		Height: 64,
		Op:     solid(10, graphics.LineCapRound, graphics.LineJoinRound),
	},
	{
		Name:   "zigzag_thick",
		Path:   zigzagPath(10, 32, 54, 20),
		Width:  64,
		Height: 64,
		Op:     solid(8, graphics.LineCapRound, graphics.LineJoinRound),
	},
}

// mixedLinesCurves builds a closed path combining lines with a quadratic
// and a cubic Bezier curve.
func mixedLinesCurves() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(10, 50)).
		LineTo(pt(20, 30)).
		QuadTo(pt(32, 10), pt(44, 30)).
		LineTo(pt(54, 50)).
		CubeTo(pt(48, 60), pt(16, 60), pt(10, 50)).
		Close()
}

// glyphLikeShape builds a shape similar to a lowercase 'a': a bowl with a
// stem, and a counter traversed in the opposite direction.
func glyphLikeShape() *path.Data {
	cx, cy := 32.0, 38.0
	const r = 18.0
	k := r * kappa
	p := (&path.Data{}).
		MoveTo(pt(cx+r, cy)).
		CubeTo(pt(cx+r, cy-k), pt(cx+k, cy-r), pt(cx, cy-r)).
		CubeTo(pt(cx-k, cy-r), pt(cx-r, cy-k), pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)).
		LineTo(pt(cx+r, 10)).
		LineTo(pt(cx+r-6, 10)).
		LineTo(pt(cx+r-6, cy))

	const ir = 8.0
	ik := ir * kappa
	return p.
		LineTo(pt(cx+ir, cy)).
		CubeTo(pt(cx+ir, cy+ik), pt(cx+ik, cy+ir), pt(cx, cy+ir)).
		CubeTo(pt(cx-ik, cy+ir), pt(cx-ir, cy+ik), pt(cx-ir, cy)).
		CubeTo(pt(cx-ir, cy-ik), pt(cx-ik, cy-ir), pt(cx, cy-ir)).
		CubeTo(pt(cx+ik, cy-ir), pt(cx+ir, cy-ik), pt(cx+ir, cy)).
		Close()
}

// spiralPath builds an open Archimedean spiral from line segments.
func spiralPath(cx, cy, rMin, rMax float64, turns float64) *path.Data {
	steps := max(int(turns*32), 8)
	totalAngle := turns * 2 * math.Pi
	rGrowth := (rMax - rMin) / totalAngle

	pts := []vec.Vec2{pt(cx+rMin, cy)}
	for i := 1; i <= steps; i++ {
		angle := float64(i) / float64(steps) * totalAngle
		r := rMin + rGrowth*angle
		pts = append(pts, pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle)))
	}
	return polyline(pts...)
}

// figureEight builds an open figure-eight from two loops which cross at
// (cx, cy).
func figureEight(cx, cy, size float64) *path.Data {
	r := size / 2
	k := r * kappa
	top := cy - r/2
	bot := cy + r/2
	return (&path.Data{}).
		MoveTo(pt(cx, cy)).
		CubeTo(pt(cx+k, cy-r/4), pt(cx+r, top-k/2), pt(cx+r, top)).
		CubeTo(pt(cx+r, top-k), pt(cx+k, top-r), pt(cx, top-r)).
		CubeTo(pt(cx-k, top-r), pt(cx-r, top-k), pt(cx-r, top)).
		CubeTo(pt(cx-r, top+k/2), pt(cx-k, cy-r/4), pt(cx, cy)).
		CubeTo(pt(cx-k, cy+r/4), pt(cx-r, bot-k/2), pt(cx-r, bot)).
		CubeTo(pt(cx-r, bot+k), pt(cx-k, bot+r), pt(cx, bot+r)).
		CubeTo(pt(cx+k, bot+r), pt(cx+r, bot+k), pt(cx+r, bot)).
		CubeTo(pt(cx+r, bot-k/2), pt(cx+k, cy+r/4), pt(cx, cy))
}

// tightCurve builds a U-turn whose radius is small compared to the stroke
// width, so that the inner side of the outline folds over.
func tightCurve(cx, cy, size float64) *path.Data {
	r := size
	k := r * kappa
	return (&path.Data{}).
		MoveTo(pt(cx-r, cy-size)).
		LineTo(pt(cx-r, cy)).
		CubeTo(pt(cx-r, cy+k), pt(cx-k, cy+r), pt(cx, cy+r)).
		CubeTo(pt(cx+k, cy+r), pt(cx+r, cy+k), pt(cx+r, cy)).
		LineTo(pt(cx+r, cy-size))
}

// zigzagPath builds a zigzag where adjacent thick segments overlap.
func zigzagPath(x1, cy, x2, amplitude float64) *path.Data {
	const segments = 5
	segWidth := (x2 - x1) / segments

	pts := []vec.Vec2{pt(x1, cy)}
	for i := 1; i <= segments; i++ {
		y := cy + amplitude
		if i%2 == 1 {
			y = cy - amplitude
		}
		pts = append(pts, pt(x1+float64(i)*segWidth, y))
	}
	return polyline(pts...)
}
