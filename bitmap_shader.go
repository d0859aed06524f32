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

import "math"

// bitmapShader maps the unit square in its local coordinates onto a
// bitmap and samples the nearest pixel.
type bitmapShader struct {
	bm    *Bitmap
	local Transform
	inv   Transform
	tile  tiler

	opaque bool
}

// NewBitmapShader returns a shader which draws bm. The matrix local maps
// the bitmap's pixel coordinates to the canvas coordinates of the draw
// call. Outside the bitmap, mode determines the color.
//
// The opacity of bm is determined once, here. If pixels of bm are made
// translucent later, a new shader must be created.
func NewBitmapShader(bm *Bitmap, local Transform, mode TileMode) Shader {
	return &bitmapShader{
		bm:     bm,
		local:  Concat(local, Scale(float64(bm.Width), float64(bm.Height))),
		tile:   tilerFor(mode, 0.999999),
		opaque: bm.IsOpaque(),
	}
}

func (s *bitmapShader) IsOpaque() bool {
	return s.opaque
}

func (s *bitmapShader) SetContext(ctm Transform) bool {
	if s.bm.Width <= 0 || s.bm.Height <= 0 {
		return false
	}
	var ok bool
	s.inv, ok = setContext(ctm, s.local)
	return ok
}

func (s *bitmapShader) ShadeRow(x, y int, row []Pixel) {
	p := s.inv.Apply(pixelCenter(x, y))
	w, h := s.bm.Width, s.bm.Height
	for i := range row {
		px := sampleIndex(w, s.tile(p.X))
		py := sampleIndex(h, s.tile(p.Y))
		row[i] = s.bm.Pix[py*s.bm.Stride+px]
		p.X += s.inv.SX
		p.Y += s.inv.KY
	}
}

// sampleIndex converts a tiled coordinate in [0, 1] into a pixel index
// in [0, n).
func sampleIndex(n int, t float64) int {
	i := int(math.Floor(float64(n) * t))
	return min(max(i, 0), n-1)
}
