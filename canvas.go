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
	"errors"
	"image"
	"math"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ErrRestoreUnderflow is returned by [Canvas.Restore] if there is no
// matching call to [Canvas.Save].
var ErrRestoreUnderflow = errors.New("canvas: restore without matching save")

// Canvas draws into a bitmap.
//
// Geometry passed to the drawing methods is mapped to device space by the
// current transformation matrix (CTM), which can be changed with
// [Canvas.Concat] and saved and restored with [Canvas.Save] and
// [Canvas.Restore]. A pixel is covered by a shape if its centre lies
// inside the shape; there is no anti-aliasing.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	bm    *Bitmap
	ctm   Transform
	saved []Transform

	r      *Rasteriser
	row    []Pixel    // shader output for one span
	pts    []vec.Vec2 // device space vertices
	path   Path       // device space copy of the path being drawn
	stroke Path       // stroke outline
	ol     outliner
}

// New returns a canvas which draws into bm. The canvas does not take
// ownership of bm; the caller can read the pixels at any time between
// draw calls.
func New(bm *Bitmap) *Canvas {
	return &Canvas{
		bm:  bm,
		ctm: Identity,
		r:   NewRasteriser(bm.Bounds()),
	}
}

// Bitmap returns the bitmap the canvas draws into.
func (c *Canvas) Bitmap() *Bitmap {
	return c.bm
}

// Save pushes a copy of the CTM onto the stack.
func (c *Canvas) Save() {
	c.saved = append(c.saved, c.ctm)
}

// Restore replaces the CTM by the most recently saved one.
// If the stack is empty, the CTM is left unchanged and
// [ErrRestoreUnderflow] is returned.
func (c *Canvas) Restore() error {
	n := len(c.saved)
	if n == 0 {
		return ErrRestoreUnderflow
	}
	c.ctm = c.saved[n-1]
	c.saved = c.saved[:n-1]
	return nil
}

// Concat pre-multiplies the CTM by m, so that m is applied to the
// geometry before the previous CTM.
func (c *Canvas) Concat(m Transform) {
	c.ctm = Concat(c.ctm, m)
}

// Transform returns the CTM.
func (c *Canvas) Transform() Transform {
	return c.ctm
}

// Clear sets every pixel of the bitmap to col, ignoring the CTM.
func (c *Canvas) Clear(col Color) {
	px := col.Pixel()
	for y := range c.bm.Height {
		BlendColor(px, c.bm.Row(0, y, c.bm.Width), BlendSrc)
	}
}

// DrawPaint fills the whole bitmap with paint.
func (c *Canvas) DrawPaint(paint Paint) {
	c.fillRect(c.bm.Bounds(), &paint)
}

// DrawRect fills the rectangle r. If the CTM is the identity, the covered
// pixels are found by rounding the sides of r to the nearest integers.
func (c *Canvas) DrawRect(r rect.Rect, paint Paint) {
	x0, x1 := min(r.LLx, r.URx), max(r.LLx, r.URx)
	y0, y1 := min(r.LLy, r.URy), max(r.LLy, r.URy)
	if c.ctm.IsIdentity() {
		ir := image.Rect(roundInt(x0), roundInt(y0), roundInt(x1), roundInt(y1))
		c.fillRect(ir, &paint)
		return
	}
	c.DrawConvexPolygon([]vec.Vec2{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
	}, paint)
}

// DrawConvexPolygon fills the polygon with the given vertices.
// Polygons with fewer than three vertices are ignored.
func (c *Canvas) DrawConvexPolygon(pts []vec.Vec2, paint Paint) {
	if len(pts) < 3 {
		return
	}
	mode, ok := c.begin(&paint)
	if !ok {
		return
	}
	c.pts = slices.Grow(c.pts[:0], len(pts))[:len(pts)]
	c.ctm.MapPoints(c.pts, pts)
	c.r.AddPolygon(c.pts)
	c.fill(NonZero, &paint, mode)
}

// DrawPath fills p, using the fill rule of p.
// Open sub-paths are closed implicitly. p is not modified.
func (c *Canvas) DrawPath(p *Path, paint Paint) {
	if p.IsEmpty() {
		return
	}
	mode, ok := c.begin(&paint)
	if !ok {
		return
	}
	c.path.Reset()
	c.path.data.Cmds = append(c.path.data.Cmds, p.data.Cmds...)
	c.path.data.Coords = append(c.path.data.Coords, p.data.Coords...)
	c.path.Transform(c.ctm)
	c.r.AddPath(&c.path)
	c.fill(p.Rule, &paint, mode)
}

// StrokePath draws the outline of p, using the given stroke parameters.
func (c *Canvas) StrokePath(p *Path, s *Stroke, paint Paint) {
	if p.IsEmpty() {
		return
	}
	c.ol.outline(s, p, c.ctm, &c.stroke)
	c.DrawPath(&c.stroke, paint)
}

// begin finds the blend mode for a draw call and prepares the shader.
// It returns false if the draw call has no effect.
func (c *Canvas) begin(paint *Paint) (BlendMode, bool) {
	mode := paint.effectiveMode()
	if mode == BlendDst {
		return mode, false
	}
	if paint.Shader != nil && !paint.Shader.SetContext(c.ctm) {
		Logger().Debug("draw skipped, shader rejected the transformation", "ctm", c.ctm)
		return mode, false
	}
	return mode, true
}

// fill composites the spans collected in the rasteriser.
func (c *Canvas) fill(rule FillRule, paint *Paint, mode BlendMode) {
	src := paint.Color.Pixel()
	c.r.Fill(rule, func(y, x0, x1 int) {
		c.blitSpan(y, x0, x1, paint, src, mode)
	})
}

// fillRect composites paint over the pixels of r, clipped to the bitmap.
func (c *Canvas) fillRect(r image.Rectangle, paint *Paint) {
	r = r.Intersect(c.bm.Bounds())
	if r.Empty() {
		return
	}
	mode, ok := c.begin(paint)
	if !ok {
		return
	}
	src := paint.Color.Pixel()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		c.blitSpan(y, r.Min.X, r.Max.X, paint, src, mode)
	}
}

// blitSpan composites the pixels [x0, x1) of row y.
func (c *Canvas) blitSpan(y, x0, x1 int, paint *Paint, src Pixel, mode BlendMode) {
	dst := c.bm.Row(x0, y, x1-x0)
	if paint.Shader == nil {
		BlendColor(src, dst, mode)
		return
	}
	c.row = slices.Grow(c.row[:0], len(dst))[:len(dst)]
	paint.Shader.ShadeRow(x0, y, c.row)
	BlendRow(c.row, dst, mode)
}

// roundInt rounds to the nearest integer, with ties rounded up, and
// saturates at the limits of the int32 range.
func roundInt(v float64) int {
	v = math.Floor(v + 0.5)
	switch {
	case !(v > math.MinInt32): // also catches NaN
		return math.MinInt32
	case v > math.MaxInt32:
		return math.MaxInt32
	}
	return int(v)
}
