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
	"github.com/chewxy/math32"
	"seehuhn.de/go/geom/vec"
)

// linearGradient interpolates between evenly spaced color stops along
// the line from p0 to p1.
type linearGradient struct {
	colors []Color
	diffs  []Color // colors[i+1] - colors[i]; the last entry is unused
	local  Transform
	inv    Transform
	tile   tiler
}

// NewLinearGradient returns a shader which blends the given colors along
// the line from p0 to p1. The stops are spaced evenly, with the first
// color at p0 and the last color at p1. Colors are constant along lines
// perpendicular to p0–p1; beyond the end points mode applies.
//
// A single color gives a solid shader, no colors give a transparent one.
func NewLinearGradient(p0, p1 vec.Vec2, colors []Color, mode TileMode) Shader {
	g := &linearGradient{
		colors: make([]Color, len(colors)),
		diffs:  make([]Color, len(colors)),
		tile:   tilerFor(mode, 1),
	}
	copy(g.colors, colors)
	for i := 0; i+1 < len(colors); i++ {
		g.diffs[i] = colors[i+1].Sub(colors[i])
	}
	if n := len(colors); n > 0 {
		g.diffs[n-1] = colors[n-1]
	}

	d := p1.Sub(p0)
	g.local = Transform{
		SX: d.X, KX: -d.Y, TX: p0.X,
		KY: d.Y, SY: d.X, TY: p0.Y,
	}
	return g
}

func (g *linearGradient) IsOpaque() bool {
	if len(g.colors) == 0 {
		return false
	}
	for _, c := range g.colors {
		if c.A < 1 {
			return false
		}
	}
	return true
}

func (g *linearGradient) SetContext(ctm Transform) bool {
	if len(g.colors) < 2 {
		return true
	}
	var ok bool
	g.inv, ok = setContext(ctm, g.local)
	return ok
}

func (g *linearGradient) ShadeRow(x, y int, row []Pixel) {
	switch len(g.colors) {
	case 0:
		clear(row)
		return
	case 1:
		c := g.colors[0].Pixel()
		for i := range row {
			row[i] = c
		}
		return
	}

	last := float32(len(g.colors) - 1)
	u := g.inv.Apply(pixelCenter(x, y)).X
	for i := range row {
		pos := float32(g.tile(u)) * last
		idx := min(max(int(math32.Floor(pos)), 0), len(g.colors)-1)
		w := pos - float32(idx)
		row[i] = g.colors[idx].Add(g.diffs[idx].Scale(w)).Pixel()
		u += g.inv.SX
	}
}
