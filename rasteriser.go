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
	"cmp"
	"image"
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// FillRule selects which pixels count as inside a path.
type FillRule int

const (
	// NonZero fills pixels where the winding number is non-zero.
	NonZero FillRule = iota

	// EvenOdd fills pixels where the winding number is odd.
	EvenOdd
)

func (r FillRule) inside(w int) bool {
	if r == EvenOdd {
		return w&1 != 0
	}
	return w != 0
}

// dot records that an edge crosses the centre line of a pixel row at
// pixel column x. The winding w is +1 for edges going down and -1 for
// edges going up.
type dot struct {
	x int
	w int
}

// Rasteriser converts polygons into spans of covered pixels.
// Each pixel is either fully inside or fully outside; a pixel is inside
// if its centre is inside the polygon.
//
// The caller creates one instance and reuses it for multiple shapes.
// Edges are collected with [Rasteriser.AddEdge] and friends, and then
// [Rasteriser.Fill] emits the covered spans and clears the rasteriser
// for the next shape. Internal buffers grow as needed but never shrink,
// so that rasterisation does not allocate in steady state.
type Rasteriser struct {
	clip image.Rectangle

	// rows holds one bucket of crossings per device row, indexed by
	// y - clip.Min.Y.
	rows [][]dot

	// yMin and yMax delimit the rows which hold crossings. Rows outside
	// this range are always empty.
	yMin, yMax int
}

// NewRasteriser creates a new Rasteriser which covers the pixels in clip.
func NewRasteriser(clip image.Rectangle) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset discards all collected edges and sets a new clip rectangle,
// preserving internal buffer capacity for reuse.
func (r *Rasteriser) Reset(clip image.Rectangle) {
	clip = clip.Canon()
	for i := range r.rows {
		r.rows[i] = r.rows[i][:0]
	}
	h := clip.Dy()
	if cap(r.rows) >= h {
		r.rows = r.rows[:h]
	} else {
		r.rows = slices.Grow(r.rows[:0], h)[:h]
	}
	r.clip = clip
	r.yMin = clip.Max.Y
	r.yMax = clip.Min.Y
}

// Clip returns the rectangle of pixels the rasteriser can cover.
func (r *Rasteriser) Clip() image.Rectangle {
	return r.clip
}

// AddEdge adds the line from p0 to p1, given in device coordinates.
//
// For every pixel row whose centre line lies between the rounded end
// points, one crossing is recorded at the rounded x coordinate where the
// line meets the centre line. Coordinates are clamped to the clip
// rectangle, so that geometry outside the clip still contributes the
// correct winding. Horizontal edges contribute nothing.
//
// Reversing the edge gives the same crossings with opposite winding.
func (r *Rasteriser) AddEdge(p0, p1 vec.Vec2) {
	if !isFinite(p0) || !isFinite(p1) {
		return
	}

	top, bottom := r.clip.Min.Y, r.clip.Max.Y
	y0 := clampRound(p0.Y, top, bottom)
	y1 := clampRound(p1.Y, top, bottom)
	if y0 == y1 {
		return
	}

	// Edges are evaluated from top to bottom, so that an edge shared by
	// two polygons gives the same crossings in both.
	w := 1
	if y0 > y1 {
		y0, y1 = y1, y0
		p0, p1 = p1, p0
		w = -1
	}

	// x = dx·y + b along the line
	dx := (p1.X - p0.X) / (p1.Y - p0.Y)
	b := p0.X - dx*p0.Y

	left, right := r.clip.Min.X, r.clip.Max.X
	for y := y0; y < y1; y++ {
		x := clampRound(dx*(float64(y)+0.5)+b, left, right)
		row := y - top
		r.rows[row] = append(r.rows[row], dot{x: x, w: w})
	}

	r.yMin = min(r.yMin, y0)
	r.yMax = max(r.yMax, y1)
}

// AddPolygon adds the closed polygon with the given vertices, in device
// coordinates.
func (r *Rasteriser) AddPolygon(pts []vec.Vec2) {
	if len(pts) < 3 {
		return
	}
	prev := pts[len(pts)-1]
	for _, pt := range pts {
		r.AddEdge(prev, pt)
		prev = pt
	}
}

// AddPath adds all sub-paths of p, which must be given in device
// coordinates. Curves are flattened and open sub-paths are closed.
func (r *Rasteriser) AddPath(p *Path) {
	flattenSegments(p, r.AddEdge)
}

// IsEmpty reports whether no crossings have been collected.
func (r *Rasteriser) IsEmpty() bool {
	return r.yMin >= r.yMax
}

// Fill sweeps all rows with crossings, from top to bottom, and calls span
// for every maximal run of inside pixels [x0, x1) in row y. Afterwards the
// rasteriser is empty and can be reused.
func (r *Rasteriser) Fill(rule FillRule, span func(y, x0, x1 int)) {
	top := r.clip.Min.Y
	for y := r.yMin; y < r.yMax; y++ {
		row := r.rows[y-top]
		if len(row) == 0 {
			continue
		}

		slices.SortStableFunc(row, func(a, b dot) int {
			return cmp.Compare(a.x, b.x)
		})

		w := 0
		x0 := 0
		for _, d := range row {
			wasInside := rule.inside(w)
			if !wasInside {
				x0 = d.x
			}
			w += d.w
			if wasInside && !rule.inside(w) && x0 < d.x {
				span(y, x0, d.x)
			}
		}

		r.rows[y-top] = row[:0]
	}
	r.yMin = r.clip.Max.Y
	r.yMax = r.clip.Min.Y
}

// clampRound rounds v to the nearest integer, with ties rounded up, and
// clamps the result to [lo, hi].
func clampRound(v float64, lo, hi int) int {
	v = math.Floor(v + 0.5)
	if !(v > float64(lo)) { // also catches NaN
		return lo
	}
	if v >= float64(hi) {
		return hi
	}
	return int(v)
}

func isFinite(p vec.Vec2) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
