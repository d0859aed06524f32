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

// Package scene reads drawing instructions from YAML files and plays them
// back on a canvas.
//
// A scene file gives the size of the image, an optional background color
// and a list of operations:
//
//	width: 200
//	height: 100
//	background: white
//	ops:
//	  - op: concat
//	    transform: {translate: [100, 50], rotate: 30}
//	  - op: rect
//	    rect: [-40, -20, 40, 20]
//	    paint: {color: "#ff8000", alpha: 0.5}
//	  - op: path
//	    path: "M -50 0 Q 0 -60 50 0 Z"
//	    stroke: {width: 3, join: round}
//	    paint: {color: navy}
//
// Colors are given as SVG color names or as #rgb, #rrggbb or #rrggbbaa hex
// strings.
package scene

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/canvas"
)

// Scene is the content of a scene file.
type Scene struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background,omitempty"`
	Ops        []Op   `yaml:"ops"`

	// dir is used to resolve relative image file names.
	dir string
}

// Op is a single drawing operation. Which fields are used depends on the
// value of the Op field:
//
//   - save, restore: no arguments
//   - concat: Transform
//   - clear: Color
//   - paint: Paint
//   - rect: Rect, Paint, optional Stroke
//   - polygon: Points, Paint, optional Stroke. Filled polygons must be
//     convex.
//   - circle: Center, Radius, Paint, optional Stroke
//   - path: Path, Rule, Paint, optional Stroke
//   - mesh: Vertices, Colors, Texs, Indices, Paint
//   - quad: Vertices, Colors, Texs, Level, Paint
type Op struct {
	Op        string         `yaml:"op"`
	Transform *TransformSpec `yaml:"transform,omitempty"`
	Color     string         `yaml:"color,omitempty"`
	Paint     PaintSpec      `yaml:"paint,omitempty"`
	Stroke    *StrokeSpec    `yaml:"stroke,omitempty"`

	Rect   []float64    `yaml:"rect,omitempty"`
	Points [][2]float64 `yaml:"points,omitempty"`
	Center [2]float64   `yaml:"center,omitempty"`
	Radius float64      `yaml:"radius,omitempty"`
	Path   string       `yaml:"path,omitempty"`
	Rule   string       `yaml:"rule,omitempty"`

	Vertices [][2]float64 `yaml:"vertices,omitempty"`
	Colors   []string     `yaml:"colors,omitempty"`
	Texs     [][2]float64 `yaml:"texs,omitempty"`
	Indices  []int        `yaml:"indices,omitempty"`
	Level    int          `yaml:"level,omitempty"`
}

// Load reads a scene file. Image files referenced by the scene are
// resolved relative to the directory of the scene file.
func Load(fname string) (*Scene, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	return Parse(data, filepath.Dir(fname))
}

// Parse decodes a scene from YAML. Relative image file names are resolved
// with respect to dir.
func Parse(data []byte, dir string) (*Scene, error) {
	s := &Scene{dir: dir}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("invalid scene size %dx%d", s.Width, s.Height)
	}
	return s, nil
}

// Render draws the scene into a new bitmap.
func (s *Scene) Render() (*canvas.Bitmap, error) {
	bm := canvas.NewBitmap(s.Width, s.Height)
	c := canvas.New(bm)
	if s.Background != "" {
		bg, err := ParseColor(s.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		c.Clear(bg)
	}
	if err := s.Draw(c); err != nil {
		return nil, err
	}
	return bm, nil
}

// Draw plays the operations of the scene on c.
func (s *Scene) Draw(c *canvas.Canvas) error {
	p := &player{
		c:      c,
		dir:    s.dir,
		images: make(map[string]*canvas.Bitmap),
	}
	for i := range s.Ops {
		op := &s.Ops[i]
		if err := p.play(op); err != nil {
			return fmt.Errorf("op %d (%s): %w", i+1, op.Op, err)
		}
	}
	canvas.Logger().Debug("scene drawn", "ops", len(s.Ops))
	return nil
}

type player struct {
	c      *canvas.Canvas
	dir    string
	images map[string]*canvas.Bitmap
}

func (p *player) play(op *Op) error {
	switch op.Op {
	case "save":
		p.c.Save()
		return nil
	case "restore":
		return p.c.Restore()
	case "concat":
		if op.Transform == nil {
			return errMissing("transform")
		}
		m, err := op.Transform.Transform()
		if err != nil {
			return err
		}
		p.c.Concat(m)
		return nil
	case "clear":
		col, err := ParseColor(op.Color)
		if err != nil {
			return err
		}
		p.c.Clear(col)
		return nil
	}

	paint, err := p.paint(&op.Paint)
	if err != nil {
		return fmt.Errorf("paint: %w", err)
	}

	switch op.Op {
	case "paint":
		p.c.DrawPaint(paint)
	case "rect":
		if len(op.Rect) != 4 {
			return fmt.Errorf("rect needs 4 values, got %d", len(op.Rect))
		}
		r := rect.Rect{LLx: op.Rect[0], LLy: op.Rect[1], URx: op.Rect[2], URy: op.Rect[3]}
		if op.Stroke != nil {
			return p.stroke(canvas.NewPath().AddRect(r, canvas.Clockwise), op.Stroke, paint)
		}
		p.c.DrawRect(r, paint)
	case "polygon":
		pts := toVecs(op.Points)
		if op.Stroke != nil {
			return p.stroke(canvas.NewPath().AddPolygon(pts), op.Stroke, paint)
		}
		p.c.DrawConvexPolygon(pts, paint)
	case "circle":
		path := canvas.NewPath().AddCircle(toVec(op.Center), op.Radius, canvas.Clockwise)
		if op.Stroke != nil {
			return p.stroke(path, op.Stroke, paint)
		}
		p.c.DrawPath(path, paint)
	case "path":
		path, err := ParsePath(op.Path)
		if err != nil {
			return err
		}
		if op.Stroke != nil {
			return p.stroke(path, op.Stroke, paint)
		}
		path.Rule, err = parseRule(op.Rule)
		if err != nil {
			return err
		}
		p.c.DrawPath(path, paint)
	case "mesh":
		colors, err := parseColors(op.Colors)
		if err != nil {
			return err
		}
		p.c.DrawMesh(toVecs(op.Vertices), colors, toVecs(op.Texs), op.Indices, paint)
	case "quad":
		return p.quad(op, paint)
	default:
		return fmt.Errorf("unknown operation %q", op.Op)
	}
	return nil
}

func (p *player) stroke(path *canvas.Path, spec *StrokeSpec, paint canvas.Paint) error {
	s, err := spec.Stroke()
	if err != nil {
		return fmt.Errorf("stroke: %w", err)
	}
	p.c.StrokePath(path, s, paint)
	return nil
}

func (p *player) quad(op *Op, paint canvas.Paint) error {
	if len(op.Vertices) != 4 {
		return fmt.Errorf("quad needs 4 vertices, got %d", len(op.Vertices))
	}
	var verts [4]vec.Vec2
	copy(verts[:], toVecs(op.Vertices))

	var colors *[4]canvas.Color
	switch len(op.Colors) {
	case 0:
	case 4:
		cc, err := parseColors(op.Colors)
		if err != nil {
			return err
		}
		colors = (*[4]canvas.Color)(cc)
	default:
		return fmt.Errorf("quad needs 0 or 4 colors, got %d", len(op.Colors))
	}

	var texs *[4]vec.Vec2
	switch len(op.Texs) {
	case 0:
	case 4:
		texs = (*[4]vec.Vec2)(toVecs(op.Texs))
	default:
		return fmt.Errorf("quad needs 0 or 4 texture points, got %d", len(op.Texs))
	}

	p.c.DrawQuad(verts, colors, texs, op.Level, paint)
	return nil
}

func errMissing(field string) error {
	return fmt.Errorf("missing %q", field)
}
