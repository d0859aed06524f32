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

// DrawMesh draws a list of triangles.
//
// If indices is nil, every three consecutive vertices form a triangle.
// Otherwise every three consecutive indices select the vertices of a
// triangle, and triangles with out of range indices are skipped.
//
// If colors is not nil, it gives a color for every vertex, and the colors
// are interpolated across each triangle. If texs is not nil, it gives a
// point in the coordinate space of paint.Shader for every vertex, and the
// shader is mapped onto each triangle accordingly. If both are given, the
// colors tint the shader. If neither is given, or texs is given without a
// shader, the triangles are filled with paint.Color.
func (c *Canvas) DrawMesh(verts []vec.Vec2, colors []Color, texs []vec.Vec2, indices []int, paint Paint) {
	numTri := len(indices) / 3
	if indices == nil {
		numTri = len(verts) / 3
	}
	mode := paint.Mode
	if mode >= numBlendModes {
		mode = BlendSrcOver
	}
	if numTri == 0 || mode == BlendDst {
		return
	}
	if colors != nil && len(colors) < len(verts) ||
		texs != nil && len(texs) < len(verts) {
		Logger().Debug("mesh skipped, too few colors or texture coordinates")
		return
	}

	var tri triShader
	hasTexs := texs != nil && paint.Shader != nil
	switch {
	case colors != nil && hasTexs:
		tri = newTriComposeShader(paint.Shader)
	case colors != nil:
		tri = newTriColorShader()
	case hasTexs:
		tri = newTriProxyShader(paint.Shader)
	}

	meshPaint := Paint{Color: paint.Color, Mode: mode}
	if tri != nil {
		meshPaint.Color = Black
		meshPaint.Shader = tri
	}

	c.pts = slices.Grow(c.pts[:0], len(verts))[:len(verts)]
	c.ctm.MapPoints(c.pts, verts)

	var p, t [3]vec.Vec2
	var col [3]Color
	var dev [3]vec.Vec2
	for i := range numTri {
		var idx [3]int
		if indices == nil {
			idx = [3]int{3 * i, 3*i + 1, 3*i + 2}
		} else {
			idx = [3]int(indices[3*i : 3*i+3])
		}
		if !validIndices(idx, len(verts)) {
			continue
		}

		for k, j := range idx {
			p[k] = verts[j]
			dev[k] = c.pts[j]
			if colors != nil {
				col[k] = colors[j]
			}
			if texs != nil {
				t[k] = texs[j]
			}
		}
		if tri != nil {
			tri.setTriangle(&p, &col, &t)
		}

		// The opacity of the vertex colors differs between triangles.
		triMode, ok := c.begin(&meshPaint)
		if !ok {
			continue
		}
		c.r.AddPolygon(dev[:])
		c.fill(NonZero, &meshPaint, triMode)
	}
}

func validIndices(idx [3]int, n int) bool {
	for _, j := range idx {
		if j < 0 || j >= n {
			return false
		}
	}
	return true
}

// DrawQuad draws the bilinear patch with corners verts, given in the order
// top-left, top-right, bottom-right, bottom-left of the unit square. The
// patch is subdivided into a grid of (level+1)×(level+1) cells of two
// triangles each. Colors and texture coordinates are optional and are
// interpolated in the same way as the corner positions; see
// [Canvas.DrawMesh].
func (c *Canvas) DrawQuad(verts [4]vec.Vec2, colors *[4]Color, texs *[4]vec.Vec2, level int, paint Paint) {
	level = max(level, 0)
	numDiv := level + 1
	numPts := level + 2

	gridVerts := make([]vec.Vec2, 0, numPts*numPts)
	var gridColors []Color
	var gridTexs []vec.Vec2
	if colors != nil {
		gridColors = make([]Color, 0, numPts*numPts)
	}
	if texs != nil {
		gridTexs = make([]vec.Vec2, 0, numPts*numPts)
	}

	step := 1 / float64(numDiv)
	for i := range numPts {
		v := float64(i) * step
		for j := range numPts {
			u := float64(j) * step
			gridVerts = append(gridVerts, bilerpPoint(&verts, u, v))
			if colors != nil {
				gridColors = append(gridColors, bilerpColor(colors, float32(u), float32(v)))
			}
			if texs != nil {
				gridTexs = append(gridTexs, bilerpPoint(texs, u, v))
			}
		}
	}

	indices := make([]int, 0, numDiv*numDiv*6)
	for i := range numDiv {
		for j := range numDiv {
			a := i*numPts + j
			indices = append(indices,
				a, a+1, a+numPts,
				a+1, a+numPts, a+numPts+1,
			)
		}
	}

	c.DrawMesh(gridVerts, gridColors, gridTexs, indices, paint)
}

// bilerpPoint evaluates the bilinear patch through the four corners at
// (u, v).
func bilerpPoint(q *[4]vec.Vec2, u, v float64) vec.Vec2 {
	return q[0].Mul((1 - u) * (1 - v)).
		Add(q[1].Mul(u * (1 - v))).
		Add(q[2].Mul(u * v)).
		Add(q[3].Mul((1 - u) * v))
}

func bilerpColor(q *[4]Color, u, v float32) Color {
	return q[0].Scale((1 - u) * (1 - v)).
		Add(q[1].Scale(u * (1 - v))).
		Add(q[2].Scale(u * v)).
		Add(q[3].Scale((1 - u) * v))
}
