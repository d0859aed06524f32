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

package scene

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/canvas"
)

func render(t *testing.T, src string) *canvas.Bitmap {
	t.Helper()
	s, err := Parse([]byte(src), t.TempDir())
	require.NoError(t, err)
	bm, err := s.Render()
	require.NoError(t, err)
	return bm
}

func TestRenderRect(t *testing.T) {
	bm := render(t, `
width: 4
height: 4
background: white
ops:
  - op: rect
    rect: [0, 0, 2, 4]
    paint: {color: red}
`)
	assert.Equal(t, canvas.Pixel(0xFFFF0000), bm.Pix[0])
	assert.Equal(t, canvas.Pixel(0xFFFF0000), bm.Pix[3*bm.Stride+1])
	assert.Equal(t, canvas.Pixel(0xFFFFFFFF), bm.Pix[3])
}

func TestRenderSaveRestore(t *testing.T) {
	bm := render(t, `
width: 4
height: 4
background: white
ops:
  - op: save
  - op: concat
    transform: {translate: [2, 0]}
  - op: rect
    rect: [0, 0, 2, 2]
    paint: {color: "#0000ff"}
  - op: restore
  - op: rect
    rect: [0, 2, 2, 4]
    paint: {color: lime}
`)
	assert.Equal(t, canvas.Pixel(0xFFFFFFFF), bm.Pix[0])
	assert.Equal(t, canvas.Pixel(0xFF0000FF), bm.Pix[2])
	assert.Equal(t, canvas.Pixel(0xFF00FF00), bm.Pix[2*bm.Stride])
	assert.Equal(t, canvas.Pixel(0xFFFFFFFF), bm.Pix[3*bm.Stride+3])
}

func TestRenderShapes(t *testing.T) {
	bm := render(t, `
width: 16
height: 16
ops:
  - op: clear
    color: white
  - op: circle
    center: [8, 8]
    radius: 4
  - op: path
    path: "M 0 0 H 16 V 16 H 0 Z M 2 2 H 14 V 14 H 2 Z"
    rule: evenodd
    paint: {color: blue, alpha: 0.5}
  - op: polygon
    points: [[0, 0], [4, 0], [0, 4]]
    stroke: {width: 2, join: round}
    paint: {mode: clear}
`)
	assert.Equal(t, canvas.Pixel(0xFF000000), bm.Pix[8*bm.Stride+8])
	assert.Equal(t, canvas.Pixel(0xFFFFFFFF), bm.Pix[3*bm.Stride+8])
	border := bm.Pix[15*bm.Stride+8]
	assert.Equal(t, uint8(255), border.A())
	assert.Less(t, border.R(), uint8(255))
	assert.Equal(t, uint8(255), border.B())
	assert.Equal(t, canvas.Pixel(0), bm.Pix[2])
}

func TestRenderGradient(t *testing.T) {
	for _, space := range []string{"rgb", "lab"} {
		bm := render(t, `
width: 8
height: 1
ops:
  - op: paint
    paint:
      gradient: {from: [0, 0], to: [8, 0], stops: [black, white], space: `+space+`}
`)
		row := bm.Row(0, 0, 8)
		for i := 1; i < len(row); i++ {
			assert.Greater(t, row[i].G(), row[i-1].G(), space)
		}
		assert.Equal(t, uint8(255), row[3].A())
	}
}

func TestRenderMesh(t *testing.T) {
	bm := render(t, `
width: 4
height: 4
ops:
  - op: mesh
    vertices: [[0, 0], [4, 0], [4, 4]]
    colors: [red, red, red]
  - op: quad
    vertices: [[0, 0], [4, 0], [4, 4], [0, 4]]
    colors: [lime, lime, lime, lime]
    level: 1
    paint: {mode: dst-over}
`)
	assert.Equal(t, canvas.Pixel(0xFFFF0000), bm.Pix[3])
	assert.Equal(t, canvas.Pixel(0xFF00FF00), bm.Pix[3*bm.Stride])
}

func TestRenderImage(t *testing.T) {
	dir := t.TempDir()
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	img.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 255})
	img.SetNRGBA(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	f, err := os.Create(filepath.Join(dir, "tex.png"))
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	fname := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(fname, []byte(`
width: 4
height: 4
ops:
  - op: paint
    paint:
      image: {file: tex.png, tile: repeat}
`), 0o644))

	s, err := Load(fname)
	require.NoError(t, err)
	bm, err := s.Render()
	require.NoError(t, err)

	want := []canvas.Pixel{0xFFFF0000, 0xFF00FF00, 0xFF0000FF, 0xFFFFFFFF}
	for y := range 4 {
		for x := range 4 {
			assert.Equal(t, want[2*(y%2)+x%2], bm.Pix[y*bm.Stride+x], "(%d, %d)", x, y)
		}
	}
}

func TestSceneErrors(t *testing.T) {
	_, err := Parse([]byte("width: 0\nheight: 5\n"), "")
	assert.Error(t, err)
	_, err = Parse([]byte("width: [\n"), "")
	assert.ErrorContains(t, err, "failed to parse scene")
	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read scene")

	cases := []struct {
		ops  string
		want string
	}{
		{"- op: blur", `unknown operation "blur"`},
		{"- op: concat", `missing "transform"`},
		{"- op: rect\n  rect: [1, 2, 3]", "rect needs 4 values"},
		{"- op: paint\n  paint: {color: no-such-color}", "unknown color"},
		{"- op: paint\n  paint: {mode: multiply}", "unknown blend mode"},
		{"- op: path\n  path: M 0 0 L 1", "expected number"},
		{"- op: path\n  path: M 0 0 L 1 1\n  rule: odd", "unknown fill rule"},
		{"- op: circle\n  radius: 1\n  stroke: {width: 1, cap: pointy}", "unknown line cap"},
		{"- op: quad\n  vertices: [[0, 0], [1, 0], [1, 1], [0, 1]]\n  colors: [red]", "0 or 4 colors"},
		{"- op: paint\n  paint:\n    gradient: {stops: [red]}\n    image: {file: x.png}", "mutually exclusive"},
		{"- op: paint\n  paint:\n    image: {file: missing.png}", "image"},
		{"- op: save\n- op: concat\n  transform: {scale: [1, 2, 3]}", "op 2 (concat)"},
	}
	for _, c := range cases {
		s, err := Parse([]byte("width: 2\nheight: 2\nops:\n"+c.ops+"\n"), t.TempDir())
		require.NoError(t, err, c.ops)
		_, err = s.Render()
		assert.ErrorContains(t, err, c.want, c.ops)
	}

	s, err := Parse([]byte("width: 2\nheight: 2\nops:\n- op: restore\n"), "")
	require.NoError(t, err)
	_, err = s.Render()
	assert.True(t, errors.Is(err, canvas.ErrRestoreUnderflow))
	assert.ErrorContains(t, err, "op 1 (restore)")
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want canvas.Color
	}{
		{"red", canvas.RGBA(1, 0, 0, 1)},
		{" Navy ", canvas.RGBA(0, 0, 128.0/255, 1)},
		{"transparent", canvas.Transparent},
		{"#f00", canvas.RGBA(1, 0, 0, 1)},
		{"#00ff00", canvas.RGBA(0, 1, 0, 1)},
		{"#0000ff80", canvas.RGBA(0, 0, 1, 128.0/255)},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		require.NoError(t, err, c.in)
		assert.InDelta(t, c.want.R, got.R, 1e-6, c.in)
		assert.InDelta(t, c.want.G, got.G, 1e-6, c.in)
		assert.InDelta(t, c.want.B, got.B, 1e-6, c.in)
		assert.InDelta(t, c.want.A, got.A, 1e-6, c.in)
	}

	for _, bad := range []string{"", "reddish", "#ff00zz", "#0000ffxy"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestParsePath(t *testing.T) {
	p, err := ParsePath("M 0 0 L 10 0 l 0 10 H 0 Z")
	require.NoError(t, err)
	d := p.Data()
	assert.Equal(t, []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo, path.CmdLineTo, path.CmdClose}, d.Cmds)
	assert.Equal(t, []vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}, d.Coords)

	p, err = ParsePath("m1,1 2,2")
	require.NoError(t, err)
	assert.Equal(t, []vec.Vec2{{X: 1, Y: 1}, {X: 3, Y: 3}}, p.Data().Coords)

	p, err = ParsePath("M0 0Q1 1 2 0c1 1 2 2 3 0")
	require.NoError(t, err)
	assert.Equal(t, []path.Command{path.CmdMoveTo, path.CmdQuadTo, path.CmdCubeTo}, p.Data().Cmds)
	assert.Equal(t, vec.Vec2{X: 5, Y: 0}, p.Data().Coords[5])
	assert.Equal(t, vec.Vec2{X: 3, Y: 1}, p.Data().Coords[3])

	p, err = ParsePath("M1e1-2V5h-3")
	require.NoError(t, err)
	assert.Equal(t, []vec.Vec2{{X: 10, Y: -2}, {X: 10, Y: 5}, {X: 7, Y: 5}}, p.Data().Coords)

	p, err = ParsePath("M 1 1 h 1 z l 1 0")
	require.NoError(t, err)
	assert.Equal(t, vec.Vec2{X: 2, Y: 1}, p.Data().Coords[2])

	for _, bad := range []string{"10 10", "M 0", "M 0 0 L x 1", "M 0 0 Z 1 1", "M 1..2 0"} {
		_, err := ParsePath(bad)
		assert.Error(t, err, bad)
	}
}

func TestTransformSpec(t *testing.T) {
	spec := &TransformSpec{Translate: []float64{10, 0}, Scale: []float64{2}}
	m, err := spec.Transform()
	require.NoError(t, err)
	assert.Equal(t, vec.Vec2{X: 12, Y: 0}, m.Apply(vec.Vec2{X: 1}))

	spec = &TransformSpec{Rotate: 90}
	m, err = spec.Transform()
	require.NoError(t, err)
	got := m.Apply(vec.Vec2{X: 1})
	assert.InDelta(t, 0, got.X, 1e-12)
	assert.InDelta(t, 1, got.Y, 1e-12)

	spec = &TransformSpec{Matrix: []float64{1, 0, 0, 1, 5, 6}, Scale: []float64{2, 3}}
	m, err = spec.Transform()
	require.NoError(t, err)
	assert.Equal(t, vec.Vec2{X: 7, Y: 9}, m.Apply(vec.Vec2{X: 1, Y: 1}))

	for _, bad := range []*TransformSpec{
		{Matrix: []float64{1, 0, 0, 1, 0}},
		{Translate: []float64{1}},
		{Scale: []float64{1, 2, 3}},
	} {
		_, err := bad.Transform()
		assert.Error(t, err)
	}
}

func TestStrokeSpec(t *testing.T) {
	spec := &StrokeSpec{Width: 2, Cap: "round", Join: "bevel", MiterLimit: 4, Dash: []float64{1, 2}}
	s, err := spec.Stroke()
	require.NoError(t, err)
	assert.Equal(t, 2.0, s.Width)
	assert.Equal(t, graphics.LineCapRound, s.Cap)
	assert.Equal(t, graphics.LineJoinBevel, s.Join)
	assert.Equal(t, 4.0, s.MiterLimit)
	assert.Equal(t, []float64{1, 2}, s.Dash)

	s, err = (&StrokeSpec{Width: 1}).Stroke()
	require.NoError(t, err)
	assert.Equal(t, canvas.NewStroke(1), s)

	_, err = (&StrokeSpec{Join: "mitre"}).Stroke()
	assert.Error(t, err)
}

func TestLabStops(t *testing.T) {
	stops, err := labStops([]string{"black", "white"})
	require.NoError(t, err)
	require.Len(t, stops, labSteps+1)
	assert.InDelta(t, 0, stops[0].R, 1e-6)
	assert.Equal(t, float32(1), stops[0].A)
	assert.Equal(t, canvas.White, stops[labSteps])
	for i := 1; i < len(stops); i++ {
		assert.Greater(t, stops[i].R, stops[i-1].R)
	}

	stops, err = labStops([]string{"#00000000", "white"})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, stops[labSteps/2].A, 1e-6)

	stops, err = labStops([]string{"red"})
	require.NoError(t, err)
	assert.Len(t, stops, 1)

	_, err = labStops([]string{"red", "bogus"})
	assert.Error(t, err)
}
