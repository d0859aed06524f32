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

// Package canvas implements a software 2D rasterizer which draws into
// premultiplied 8-bit ARGB bitmaps.
//
// Shapes are rectangles, convex polygons, paths made of lines, quadratic
// and cubic Bézier curves, and triangle meshes. Curves are flattened into
// line segments, and the segments are scan-converted by recording, for
// every pixel row, where each edge crosses the row's centre line. A pixel
// belongs to a shape if its centre lies inside, under the nonzero or
// even-odd winding rule. There is no anti-aliasing.
//
// Covered pixels are colored by a [Paint]: either a solid [Color] or a
// [Shader] (bitmaps, linear gradients, and per-triangle colors and texture
// coordinates for meshes), composited with one of the twelve Porter-Duff
// operators given by [BlendMode].
//
// A [Canvas] holds the current transformation matrix and a stack of saved
// matrices. All drawing goes through the canvas:
//
//	bm := canvas.NewBitmap(100, 100)
//	c := canvas.New(bm)
//	c.Clear(canvas.White)
//	p := canvas.NewPath().AddCircle(vec.Vec2{X: 50, Y: 50}, 40, canvas.Clockwise)
//	c.DrawPath(p, canvas.NewPaint(canvas.RGBA(1, 0, 0, 0.5)))
package canvas

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
