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
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
)

type span struct{ y, x0, x1 int }

func fillSpans(r *Rasteriser, rule FillRule) []span {
	var res []span
	r.Fill(rule, func(y, x0, x1 int) {
		res = append(res, span{y, x0, x1})
	})
	return res
}

func countPixels(spans []span) int {
	n := 0
	for _, s := range spans {
		n += s.x1 - s.x0
	}
	return n
}

func square(x0, y0, x1, y1 float64) []vec.Vec2 {
	return []vec.Vec2{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func TestSquareExact(t *testing.T) {
	r := NewRasteriser(image.Rect(0, 0, 32, 32))
	r.AddPolygon(square(10, 10, 20, 20))
	spans := fillSpans(r, NonZero)

	require.Len(t, spans, 10)
	for i, s := range spans {
		assert.Equal(t, span{10 + i, 10, 20}, s)
	}
	assert.Equal(t, 100, countPixels(spans))
}

func TestSquareDirection(t *testing.T) {
	// a counter-clockwise square covers the same pixels
	r := NewRasteriser(image.Rect(0, 0, 32, 32))
	pts := square(10, 10, 20, 20)
	pts[1], pts[3] = pts[3], pts[1]
	r.AddPolygon(pts)
	assert.Equal(t, 100, countPixels(fillSpans(r, NonZero)))
}

func TestPixelCentres(t *testing.T) {
	// a pixel is covered if its centre is inside; ties at a left or top
	// edge round towards the next pixel
	cases := []struct {
		x0, x1 float64
		want   int
	}{
		{0.5, 2.5, 2},
		{0.4, 2.6, 3},
		{0.6, 2.4, 1},
		{1.1, 1.4, 0},
	}
	for _, c := range cases {
		r := NewRasteriser(image.Rect(0, 0, 8, 8))
		r.AddPolygon(square(c.x0, 0, c.x1, 1))
		assert.Equal(t, c.want, countPixels(fillSpans(r, NonZero)), "%v", c)
	}
}

func TestFillRules(t *testing.T) {
	// two nested squares in the same direction
	add := func(r *Rasteriser) {
		r.AddPolygon(square(0, 0, 30, 30))
		r.AddPolygon(square(10, 10, 20, 20))
	}

	r := NewRasteriser(image.Rect(0, 0, 30, 30))
	add(r)
	assert.Equal(t, 900, countPixels(fillSpans(r, NonZero)))

	add(r)
	assert.Equal(t, 800, countPixels(fillSpans(r, EvenOdd)))

	// with opposite directions, nonzero also leaves a hole
	r.AddPolygon(square(0, 0, 30, 30))
	inner := square(10, 10, 20, 20)
	inner[1], inner[3] = inner[3], inner[1]
	r.AddPolygon(inner)
	assert.Equal(t, 800, countPixels(fillSpans(r, NonZero)))
}

func TestClipClamping(t *testing.T) {
	r := NewRasteriser(image.Rect(0, 0, 10, 10))
	r.AddPolygon(square(-100, -5, 5, 1e6))
	spans := fillSpans(r, NonZero)
	require.Len(t, spans, 10)
	for i, s := range spans {
		assert.Equal(t, span{i, 0, 5}, s)
	}

	// a shape entirely to the right of the clip covers nothing, but one
	// which encloses the clip covers everything
	r.AddPolygon(square(20, 0, 30, 10))
	assert.Empty(t, fillSpans(r, NonZero))
	r.AddPolygon(square(-1e9, -1e9, 1e9, 1e9))
	assert.Equal(t, 100, countPixels(fillSpans(r, NonZero)))
}

func TestClipOffset(t *testing.T) {
	r := NewRasteriser(image.Rect(100, 200, 110, 210))
	r.AddPolygon(square(0, 0, 105, 205))
	spans := fillSpans(r, NonZero)
	require.Len(t, spans, 5)
	assert.Equal(t, span{200, 100, 105}, spans[0])
	assert.Equal(t, span{204, 100, 105}, spans[4])
}

func TestDegenerateEdges(t *testing.T) {
	r := NewRasteriser(image.Rect(0, 0, 10, 10))

	// horizontal edges and tiny shapes between row centres
	r.AddEdge(vec.Vec2{X: 0, Y: 5}, vec.Vec2{X: 10, Y: 5})
	r.AddPolygon(square(2, 3.1, 8, 3.4))
	assert.True(t, r.IsEmpty())

	// non-finite input is ignored
	nan := math.NaN()
	inf := math.Inf(1)
	r.AddEdge(vec.Vec2{X: nan, Y: 0}, vec.Vec2{X: 1, Y: 5})
	r.AddEdge(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1, Y: inf})
	assert.True(t, r.IsEmpty())

	// fewer than three points do not form a polygon
	r.AddPolygon([]vec.Vec2{{X: 0, Y: 0}, {X: 5, Y: 5}})
	assert.True(t, r.IsEmpty())
	assert.Empty(t, fillSpans(r, NonZero))
}

func TestRasteriserReuse(t *testing.T) {
	r := NewRasteriser(image.Rect(0, 0, 50, 50))
	r.AddPolygon(square(0, 0, 50, 50))
	require.Equal(t, 2500, countPixels(fillSpans(r, NonZero)))

	// all buckets are empty after Fill
	for _, row := range r.rows {
		assert.Empty(t, row)
	}

	// Reset without Fill discards the collected edges
	r.AddPolygon(square(0, 0, 50, 50))
	r.Reset(image.Rect(0, 0, 20, 20))
	assert.True(t, r.IsEmpty())
	assert.Equal(t, image.Rect(0, 0, 20, 20), r.Clip())
	r.AddPolygon(square(5, 5, 10, 10))
	assert.Equal(t, 25, countPixels(fillSpans(r, NonZero)))

	r.Reset(image.Rect(0, 0, 100, 100))
	r.AddPolygon(square(0, 0, 100, 100))
	assert.Equal(t, 10000, countPixels(fillSpans(r, NonZero)))
}

func TestAddPathCurves(t *testing.T) {
	r := NewRasteriser(image.Rect(0, 0, 100, 100))
	p := NewPath().AddCircle(vec.Vec2{X: 50, Y: 50}, 40, Clockwise)
	r.AddPath(p)
	n := countPixels(fillSpans(r, NonZero))

	area := math.Pi * 40 * 40
	assert.InDelta(t, area, float64(n), area*0.02)
}

func TestTriangleSpans(t *testing.T) {
	// right triangle with the diagonal x = y
	r := NewRasteriser(image.Rect(0, 0, 10, 10))
	r.AddPolygon([]vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}})
	spans := fillSpans(r, NonZero)
	require.Len(t, spans, 10)
	for y, s := range spans {
		// centres on the diagonal round into the shape
		assert.Equal(t, span{y, 0, y + 1}, s, "row %d", y)
	}
}

func TestSharedEdges(t *testing.T) {
	// a fan of triangles around an off-grid centre
	c := vec.Vec2{X: 7.3, Y: 6.1}
	ring := []vec.Vec2{
		{X: 0, Y: 0}, {X: 5.5, Y: 0}, {X: 16, Y: 0}, {X: 16, Y: 9.5},
		{X: 16, Y: 16}, {X: 2.5, Y: 16}, {X: 0, Y: 16}, {X: 0, Y: 4.5},
	}

	var count [16][16]int
	r := NewRasteriser(image.Rect(0, 0, 16, 16))
	for i := range ring {
		r.AddPolygon([]vec.Vec2{c, ring[i], ring[(i+1)%len(ring)]})
		for _, s := range fillSpans(r, NonZero) {
			for x := s.x0; x < s.x1; x++ {
				count[s.y][x]++
			}
		}
	}
	for y := range 16 {
		for x := range 16 {
			assert.Equal(t, 1, count[y][x], "pixel (%d, %d)", x, y)
		}
	}
}
