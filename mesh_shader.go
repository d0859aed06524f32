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
	"slices"

	"seehuhn.de/go/geom/vec"
)

// triShader is a shader which is set up anew for every triangle of a mesh.
// The points p are in canvas coordinates, before the CTM is applied.
// Implementations use either the vertex colors or the texture
// coordinates and ignore the other argument.
type triShader interface {
	Shader
	setTriangle(p *[3]vec.Vec2, c *[3]Color, t *[3]vec.Vec2)
}

// triangleBasis returns the map which takes (0, 0), (1, 0) and (0, 1) to
// p0, p1 and p2.
func triangleBasis(p0, p1, p2 vec.Vec2) Transform {
	return Transform{
		SX: p1.X - p0.X, KX: p2.X - p0.X, TX: p0.X,
		KY: p1.Y - p0.Y, SY: p2.Y - p0.Y, TY: p0.Y,
	}
}

// triColorShader interpolates the three vertex colors of a triangle.
type triColorShader struct {
	c0       Color
	dc1, dc2 Color // c1-c0 and c2-c0
	opaque   bool
	m        Transform
	inv      Transform
}

func newTriColorShader() *triColorShader {
	return &triColorShader{}
}

func (s *triColorShader) setTriangle(p *[3]vec.Vec2, c *[3]Color, _ *[3]vec.Vec2) {
	s.c0 = c[0]
	s.dc1 = c[1].Sub(c[0])
	s.dc2 = c[2].Sub(c[0])
	s.opaque = c[0].A >= 1 && c[1].A >= 1 && c[2].A >= 1
	s.m = triangleBasis(p[0], p[1], p[2])
}

func (s *triColorShader) IsOpaque() bool {
	return s.opaque
}

func (s *triColorShader) SetContext(ctm Transform) bool {
	var ok bool
	s.inv, ok = setContext(ctm, s.m)
	return ok
}

func (s *triColorShader) ShadeRow(x, y int, row []Pixel) {
	uv := s.inv.Apply(pixelCenter(x, y))
	c := s.c0.Add(s.dc1.Scale(float32(uv.X))).Add(s.dc2.Scale(float32(uv.Y)))
	dc := s.dc1.Scale(float32(s.inv.SX)).Add(s.dc2.Scale(float32(s.inv.KY)))
	for i := range row {
		row[i] = c.Pixel()
		c = c.Add(dc)
	}
}

// triProxyShader maps the texture coordinates of a triangle onto its
// vertices and draws the wrapped shader through this map.
type triProxyShader struct {
	inner Shader
	m     Transform
	ok    bool
}

func newTriProxyShader(inner Shader) *triProxyShader {
	return &triProxyShader{inner: inner}
}

func (s *triProxyShader) setTriangle(p *[3]vec.Vec2, _ *[3]Color, t *[3]vec.Vec2) {
	tInv, ok := triangleBasis(t[0], t[1], t[2]).Invert()
	s.m = Concat(triangleBasis(p[0], p[1], p[2]), tInv)
	s.ok = ok
}

func (s *triProxyShader) IsOpaque() bool {
	return s.inner.IsOpaque()
}

func (s *triProxyShader) SetContext(ctm Transform) bool {
	if !s.ok {
		Logger().Debug("texture coordinates of mesh triangle are degenerate")
		return false
	}
	return s.inner.SetContext(Concat(ctm, s.m))
}

func (s *triProxyShader) ShadeRow(x, y int, row []Pixel) {
	s.inner.ShadeRow(x, y, row)
}

// triComposeShader tints a texture by the vertex colors, multiplying the
// two channel by channel.
type triComposeShader struct {
	color *triColorShader
	tex   *triProxyShader
	tmp   []Pixel
}

func newTriComposeShader(inner Shader) *triComposeShader {
	return &triComposeShader{
		color: newTriColorShader(),
		tex:   newTriProxyShader(inner),
	}
}

func (s *triComposeShader) setTriangle(p *[3]vec.Vec2, c *[3]Color, t *[3]vec.Vec2) {
	s.color.setTriangle(p, c, t)
	s.tex.setTriangle(p, c, t)
}

func (s *triComposeShader) IsOpaque() bool {
	return s.color.IsOpaque() && s.tex.IsOpaque()
}

func (s *triComposeShader) SetContext(ctm Transform) bool {
	return s.color.SetContext(ctm) && s.tex.SetContext(ctm)
}

func (s *triComposeShader) ShadeRow(x, y int, row []Pixel) {
	s.tmp = slices.Grow(s.tmp[:0], len(row))[:len(row)]
	s.color.ShadeRow(x, y, s.tmp)
	s.tex.ShadeRow(x, y, row)
	for i, c := range s.tmp {
		row[i] = modulate(c, row[i])
	}
}
