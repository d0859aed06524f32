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
	"testing"

	"github.com/stretchr/testify/assert"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

func horizontalLine() *Path {
	return NewPath().MoveTo(vec.Vec2{X: 0, Y: 5}).LineTo(vec.Vec2{X: 10, Y: 5})
}

func numSubpaths(p *Path) int {
	n := 0
	for _, cmd := range p.Data().Cmds {
		if cmd == path.CmdMoveTo {
			n++
		}
	}
	return n
}

func assertBounds(t *testing.T, want, got rect.Rect, delta float64) {
	t.Helper()
	assert.InDelta(t, want.LLx, got.LLx, delta, "LLx")
	assert.InDelta(t, want.LLy, got.LLy, delta, "LLy")
	assert.InDelta(t, want.URx, got.URx, delta, "URx")
	assert.InDelta(t, want.URy, got.URy, delta, "URy")
}

func TestStrokeCaps(t *testing.T) {
	cases := []struct {
		cap   graphics.LineCapStyle
		want  rect.Rect
		delta float64
	}{
		{graphics.LineCapButt, rect.Rect{LLx: 0, LLy: 4, URx: 10, URy: 6}, 1e-12},
		{graphics.LineCapSquare, rect.Rect{LLx: -1, LLy: 4, URx: 11, URy: 6}, 1e-12},
		{graphics.LineCapRound, rect.Rect{LLx: -1, LLy: 4, URx: 11, URy: 6}, strokeFlatness},
	}
	for _, c := range cases {
		s := NewStroke(2)
		s.Cap = c.cap
		out := s.Outline(horizontalLine(), Identity)
		assert.Equal(t, 1, numSubpaths(out), c.cap)
		assert.Equal(t, NonZero, out.Rule)
		assertBounds(t, c.want, out.Bounds(), c.delta)
	}
}

func TestStrokeZeroWidth(t *testing.T) {
	for _, w := range []float64{0, -1} {
		out := NewStroke(w).Outline(horizontalLine(), Identity)
		assert.True(t, out.IsEmpty())
	}
}

func TestStrokeDash(t *testing.T) {
	s := NewStroke(2)
	s.Dash = []float64{2, 2}
	out := s.Outline(horizontalLine(), Identity)
	assert.Equal(t, 3, numSubpaths(out))

	// the phase shifts the pattern: dashes at [0,1], [3,5], [7,9]
	s.DashPhase = 1
	out = s.Outline(horizontalLine(), Identity)
	assert.Equal(t, 3, numSubpaths(out))
	assertBounds(t, rect.Rect{LLx: 0, LLy: 4, URx: 9, URy: 6}, out.Bounds(), 1e-9)

	// an odd number of entries repeats the pattern with on and off swapped
	s.Dash = []float64{3}
	s.DashPhase = 0
	out = s.Outline(horizontalLine(), Identity)
	assert.Equal(t, 2, numSubpaths(out))

	for _, bad := range [][]float64{{-1, 2}, {0, 0}} {
		s.Dash = bad
		out = s.Outline(horizontalLine(), Identity)
		assert.Equal(t, 1, numSubpaths(out), "%v", bad)
	}
}

func TestStrokeMiterLimit(t *testing.T) {
	p := NewPath().
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 0, Y: 1})

	s := NewStroke(2)
	bevel := s.Outline(p, Identity).Bounds()
	assert.Less(t, bevel.URx, 11.5)

	s.MiterLimit = 100
	miter := s.Outline(p, Identity).Bounds()
	assert.Greater(t, miter.URx, 15.0)

	s.Join = graphics.LineJoinRound
	round := s.Outline(p, Identity).Bounds()
	assert.InDelta(t, 11, round.URx, strokeFlatness)
}

func TestStrokeClosed(t *testing.T) {
	p := NewPath().AddRect(rect.Rect{LLx: 2, LLy: 2, URx: 8, URy: 8}, Clockwise)
	out := NewStroke(2).Outline(p, Identity)
	assert.Equal(t, 2, numSubpaths(out))

	bm := NewBitmap(10, 10)
	New(bm).StrokePath(p, NewStroke(2), NewPaint(Black))
	assert.Equal(t, Pixel(0), bm.Pix[5*bm.Stride+5])
	assert.Equal(t, Pixel(0xFF000000), bm.Pix[5*bm.Stride+2])
	assert.Equal(t, Pixel(0xFF000000), bm.Pix[1*bm.Stride+1])
	assert.Equal(t, Pixel(0), bm.Pix[5*bm.Stride])
	assert.Equal(t, 48, countEqual(bm, 0xFF000000))
}

func TestStrokeDot(t *testing.T) {
	p := NewPath().MoveTo(vec.Vec2{X: 5, Y: 5}).LineTo(vec.Vec2{X: 5, Y: 5})

	s := NewStroke(4)
	assert.True(t, s.Outline(p, Identity).IsEmpty())

	s.Cap = graphics.LineCapRound
	out := s.Outline(p, Identity)
	assert.Equal(t, 1, numSubpaths(out))
	assertBounds(t, rect.Rect{LLx: 3, LLy: 3, URx: 7, URy: 7}, out.Bounds(), strokeFlatness)
}

func TestStrokeResolution(t *testing.T) {
	s := NewStroke(2)
	s.Cap = graphics.LineCapRound
	coarse := s.Outline(horizontalLine(), Identity)
	fine := s.Outline(horizontalLine(), Scale(20, 20))
	assert.Greater(t, fine.NumPoints(), coarse.NumPoints())

	p := NewPath().MoveTo(vec.Vec2{}).QuadTo(vec.Vec2{X: 5, Y: 10}, vec.Vec2{X: 10, Y: 0})
	coarse = NewStroke(1).Outline(p, Identity)
	fine = NewStroke(1).Outline(p, Scale(20, 20))
	assert.Greater(t, fine.NumPoints(), coarse.NumPoints())
}
