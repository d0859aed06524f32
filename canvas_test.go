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
	"bytes"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

var red = RGBA(1, 0, 0, 1)

// countEqual returns the number of pixels equal to want.
func countEqual(bm *Bitmap, want Pixel) int {
	n := 0
	for y := range bm.Height {
		for _, p := range bm.Row(0, y, bm.Width) {
			if p == want {
				n++
			}
		}
	}
	return n
}

func TestDrawPaintOpaque(t *testing.T) {
	bm := NewBitmap(4, 4)
	c := New(bm)
	c.DrawPaint(NewPaint(red))
	assert.Equal(t, 16, countEqual(bm, 0xFFFF0000))
	assert.Same(t, bm, c.Bitmap())
}

func TestSrcOverTwice(t *testing.T) {
	bm := NewBitmap(4, 4)
	c := New(bm)
	paint := NewPaint(RGBA(1, 0, 0, 0.5))
	c.DrawRect(rect.Rect{URx: 4, URy: 4}, paint)
	assert.Equal(t, PackARGB(128, 128, 0, 0), bm.Pix[0])
	c.DrawRect(rect.Rect{URx: 4, URy: 4}, paint)
	assert.Equal(t, 16, countEqual(bm, PackARGB(192, 192, 0, 0)))
}

func TestSaveRestore(t *testing.T) {
	c := New(NewBitmap(1, 1))
	assert.True(t, errors.Is(c.Restore(), ErrRestoreUnderflow))
	assert.Equal(t, Identity, c.Transform())

	c.Save()
	c.Concat(Translate(1, 2))
	c.Save()
	c.Concat(Scale(2, 2))
	assert.Equal(t, Transform{SX: 2, SY: 2, TX: 1, TY: 2}, c.Transform())
	require.NoError(t, c.Restore())
	assert.Equal(t, Translate(1, 2), c.Transform())
	require.NoError(t, c.Restore())
	assert.Equal(t, Identity, c.Transform())
	assert.ErrorIs(t, c.Restore(), ErrRestoreUnderflow)
}

func TestDrawRectRounding(t *testing.T) {
	bm := NewBitmap(4, 4)
	c := New(bm)
	c.DrawRect(rect.Rect{LLx: 2.5, LLy: 2.6, URx: 0.5, URy: 0.4}, NewPaint(Black))
	for y := range 4 {
		for x := range 4 {
			want := Pixel(0)
			if x >= 1 && x < 3 && y < 3 {
				want = 0xFF000000
			}
			assert.Equal(t, want, bm.Pix[y*bm.Stride+x], "(%d, %d)", x, y)
		}
	}

	// outside the bitmap
	c.DrawRect(rect.Rect{LLx: -10, LLy: -10, URx: -1, URy: 20}, NewPaint(red))
	c.DrawRect(rect.Rect{LLx: -1e300, LLy: 3, URx: 1e300, URy: 1e300}, NewPaint(red))
	assert.Equal(t, 4, countEqual(bm, 0xFFFF0000))
}

func TestDrawRectRotated(t *testing.T) {
	bm := NewBitmap(4, 4)
	c := New(bm)
	c.Concat(Translate(2, 2))
	c.Concat(Rotate(math.Pi / 2))
	c.DrawRect(rect.Rect{LLx: -2, LLy: -2, URx: 0, URy: 2}, NewPaint(Black))
	for y := range 4 {
		for x := range 4 {
			want := Pixel(0)
			if y < 2 {
				want = 0xFF000000
			}
			assert.Equal(t, want, bm.Pix[y*bm.Stride+x], "(%d, %d)", x, y)
		}
	}
}

func TestDrawNoEffect(t *testing.T) {
	bm := NewBitmap(3, 3)
	c := New(bm)
	c.Clear(red)

	c.DrawPaint(Paint{Color: Black, Mode: BlendDst})
	c.DrawPaint(NewPaint(Transparent))
	c.DrawConvexPolygon([]vec.Vec2{{X: 0, Y: 0}, {X: 3, Y: 3}}, NewPaint(Black))
	c.DrawPath(NewPath(), NewPaint(Black))
	assert.Equal(t, 9, countEqual(bm, 0xFFFF0000))

	c.Save()
	c.Concat(Scale(0, 1))
	grad := NewLinearGradient(vec.Vec2{}, vec.Vec2{X: 3}, []Color{Black, White}, TileClamp)
	c.DrawPaint(Paint{Mode: BlendSrcOver, Shader: grad})
	require.NoError(t, c.Restore())
	assert.Equal(t, 9, countEqual(bm, 0xFFFF0000))

	c.DrawRect(rect.Rect{URx: 1, URy: 3}, Paint{Mode: BlendClear})
	assert.Equal(t, 6, countEqual(bm, 0xFFFF0000))
	assert.Equal(t, 3, countEqual(bm, 0))
}

func TestDrawPathFillRule(t *testing.T) {
	p := NewPath()
	p.AddRect(rect.Rect{LLx: 0, LLy: 0, URx: 8, URy: 8}, Clockwise)
	p.AddRect(rect.Rect{LLx: 2, LLy: 2, URx: 6, URy: 6}, Clockwise)

	bm := NewBitmap(8, 8)
	New(bm).DrawPath(p, NewPaint(Black))
	assert.Equal(t, 64, countEqual(bm, 0xFF000000))

	p.Rule = EvenOdd
	bm = NewBitmap(8, 8)
	New(bm).DrawPath(p, NewPaint(Black))
	assert.Equal(t, 48, countEqual(bm, 0xFF000000))
	assert.Equal(t, Pixel(0), bm.Pix[4*bm.Stride+4])

	p.Rule = NonZero
	p.Reset()
	p.AddRect(rect.Rect{LLx: 0, LLy: 0, URx: 8, URy: 8}, Clockwise)
	p.AddRect(rect.Rect{LLx: 2, LLy: 2, URx: 6, URy: 6}, CounterClockwise)
	bm = NewBitmap(8, 8)
	New(bm).DrawPath(p, NewPaint(Black))
	assert.Equal(t, 48, countEqual(bm, 0xFF000000))
}

func TestDrawPathKeepsPath(t *testing.T) {
	p := NewPath()
	p.AddCircle(vec.Vec2{X: 5, Y: 5}, 4, Clockwise)
	before := p.Clone()

	c := New(NewBitmap(10, 10))
	c.Concat(Scale(2, 2))
	c.DrawPath(p, NewPaint(Black))
	assert.Equal(t, before, p)
}

func TestStrokePath(t *testing.T) {
	bm := NewBitmap(10, 10)
	c := New(bm)
	p := NewPath().MoveTo(vec.Vec2{X: 0, Y: 5}).LineTo(vec.Vec2{X: 10, Y: 5})
	c.StrokePath(p, NewStroke(2), NewPaint(Black))
	assert.Equal(t, 20, countEqual(bm, 0xFF000000))
	for x := range 10 {
		assert.Equal(t, Pixel(0xFF000000), bm.Pix[4*bm.Stride+x])
		assert.Equal(t, Pixel(0xFF000000), bm.Pix[5*bm.Stride+x])
	}

	c.Clear(Transparent)
	c.StrokePath(p, NewStroke(0), NewPaint(Black))
	assert.Equal(t, 100, countEqual(bm, 0))
}

func TestDrawMeshColors(t *testing.T) {
	verts := []vec.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
	indices := []int{0, 1, 2, 0, 2, 3}

	bm := NewBitmap(4, 4)
	c := New(bm)
	colors := []Color{red, red, red, red}
	c.DrawMesh(verts, colors, nil, indices, NewPaint(Transparent))
	assert.Equal(t, 16, countEqual(bm, 0xFFFF0000))

	// colors are interpolated between the vertices
	c.Clear(Transparent)
	blue := RGBA(0, 0, 1, 1)
	c.DrawMesh(verts, []Color{red, blue, blue, red}, nil, indices, NewPaint(Black))
	left, right := bm.Pix[2*bm.Stride], bm.Pix[2*bm.Stride+3]
	assert.Greater(t, left.R(), left.B())
	assert.Greater(t, right.B(), right.R())
	assert.Equal(t, uint8(255), left.A())

	// without colors the paint is used
	c.Clear(Transparent)
	c.DrawMesh(verts[:3], nil, nil, nil, NewPaint(Black))
	assert.Equal(t, Pixel(0xFF000000), bm.Pix[3])
	assert.Equal(t, Pixel(0), bm.Pix[3*bm.Stride])
}

func TestDrawMeshInvalid(t *testing.T) {
	verts := []vec.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}}
	bm := NewBitmap(4, 4)
	c := New(bm)
	c.DrawMesh(verts, nil, nil, []int{0, 1, 7, 0, 1}, NewPaint(Black))
	c.DrawMesh(verts, []Color{red}, nil, nil, NewPaint(Black))
	c.DrawMesh(verts[:2], nil, nil, nil, NewPaint(Black))
	assert.Equal(t, 16, countEqual(bm, 0))
}

func TestDrawQuad(t *testing.T) {
	verts := [4]vec.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
	bm := NewBitmap(4, 4)
	c := New(bm)

	green := RGBA(0, 1, 0, 1)
	c.DrawQuad(verts, &[4]Color{green, green, green, green}, nil, 2, NewPaint(Black))
	assert.Equal(t, 16, countEqual(bm, 0xFF00FF00))

	tex := NewBitmap(2, 2)
	copy(tex.Pix, []Pixel{0xFF000001, 0xFF000002, 0xFF000003, 0xFF000004})
	texs := [4]vec.Vec2{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	paint := Paint{Mode: BlendSrcOver, Shader: NewBitmapShader(tex, Identity, TileClamp)}
	c.Clear(Transparent)
	c.DrawQuad(verts, nil, &texs, 0, paint)
	assert.Equal(t, Pixel(0xFF000001), bm.Pix[0])
	assert.Equal(t, Pixel(0xFF000002), bm.Pix[3])
	assert.Equal(t, Pixel(0xFF000003), bm.Pix[3*bm.Stride])
	assert.Equal(t, Pixel(0xFF000004), bm.Pix[3*bm.Stride+3])

	// negative levels are treated as zero
	c.Clear(Transparent)
	c.DrawQuad(verts, nil, nil, -5, NewPaint(red))
	assert.Equal(t, 16, countEqual(bm, 0xFFFF0000))
}

func TestDrawMeshTinted(t *testing.T) {
	verts := []vec.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
	texs := []vec.Vec2{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	indices := []int{0, 1, 2, 0, 2, 3}

	tex := NewBitmap(2, 2)
	for i := range tex.Pix {
		tex.Pix[i] = 0xFFFFFFFF
	}
	paint := NewPaint(Black)
	paint.Shader = NewBitmapShader(tex, Identity, TileClamp)

	bm := NewBitmap(4, 4)
	c := New(bm)
	c.DrawMesh(verts, []Color{red, red, red, red}, texs, indices, paint)
	assert.Equal(t, 16, countEqual(bm, 0xFFFF0000))

	// translucent vertex colors give a translucent tint
	halfRed := RGBA(1, 0, 0, 0.5)
	c.Clear(Transparent)
	c.DrawMesh(verts, []Color{halfRed, halfRed, halfRed, halfRed}, texs, indices, paint)
	assert.Equal(t, 16, countEqual(bm, PackARGB(128, 128, 0, 0)))

	compose := newTriComposeShader(paint.Shader)
	p := [3]vec.Vec2(verts[:3])
	tc := [3]vec.Vec2(texs[:3])
	compose.setTriangle(&p, &[3]Color{halfRed, halfRed, halfRed}, &tc)
	assert.False(t, compose.IsOpaque())
	compose.setTriangle(&p, &[3]Color{red, red, red}, &tc)
	assert.True(t, compose.IsOpaque())

	// triangles with degenerate texture coordinates are skipped
	c.Clear(Transparent)
	flat := []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}
	c.DrawMesh(verts, []Color{red, red, red, red}, flat, indices, paint)
	assert.Equal(t, 16, countEqual(bm, 0))
}

func TestDegenerateTransform(t *testing.T) {
	colors := []Color{Black, White}
	for _, ctm := range []Transform{
		Translate(math.NaN(), 0),
		Translate(math.Inf(1), 0),
		Translate(0, math.Inf(-1)),
		{SX: math.NaN(), SY: 1},
	} {
		for _, mode := range []TileMode{TileClamp, TileRepeat, TileMirror} {
			bm := NewBitmap(4, 4)
			c := New(bm)
			c.Concat(ctm)
			grad := NewLinearGradient(vec.Vec2{}, vec.Vec2{X: 4}, colors, mode)
			assert.NotPanics(t, func() {
				c.DrawPaint(Paint{Mode: BlendSrcOver, Shader: grad})
			}, "%v %v", ctm, mode)
			assert.Equal(t, 16, countEqual(bm, 0), "%v %v", ctm, mode)
		}
	}
}

func TestDrawWithShader(t *testing.T) {
	bm := NewBitmap(8, 2)
	c := New(bm)
	grad := NewLinearGradient(vec.Vec2{}, vec.Vec2{X: 8}, []Color{Black, White}, TileClamp)
	c.DrawRect(rect.Rect{URx: 8, URy: 2}, Paint{Mode: BlendSrcOver, Shader: grad})

	want := make([]Pixel, 8)
	require.True(t, grad.SetContext(Identity))
	grad.ShadeRow(0, 1, want)
	assert.Equal(t, want, bm.Row(0, 1, 8))
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	c := New(NewBitmap(2, 2))
	c.Concat(Scale(0, 0))
	grad := NewLinearGradient(vec.Vec2{}, vec.Vec2{X: 1}, []Color{Black, White}, TileClamp)
	c.DrawPaint(Paint{Mode: BlendSrc, Shader: grad})
	assert.Contains(t, buf.String(), "draw skipped")

	SetLogger(nil)
	assert.False(t, Logger().Enabled(t.Context(), slog.LevelError))
}
