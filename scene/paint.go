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
	"fmt"
	"image"
	_ "image/jpeg" // register decoders for image shaders
	_ "image/png"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/colornames"
	_ "golang.org/x/image/tiff"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/canvas"
)

// PaintSpec describes a [canvas.Paint].
type PaintSpec struct {
	// Color defaults to black.
	Color string `yaml:"color,omitempty"`

	// Alpha, if set, multiplies the alpha of Color.
	Alpha *float64 `yaml:"alpha,omitempty"`

	// Mode is the name of the blend mode, default "src-over".
	Mode string `yaml:"mode,omitempty"`

	Gradient *GradientSpec `yaml:"gradient,omitempty"`
	Image    *ImageSpec    `yaml:"image,omitempty"`
}

// GradientSpec describes a linear gradient shader.
type GradientSpec struct {
	From  [2]float64 `yaml:"from"`
	To    [2]float64 `yaml:"to"`
	Stops []string   `yaml:"stops"`
	Tile  string     `yaml:"tile,omitempty"`

	// Space selects the color space used between stops: "rgb" (the
	// default) interpolates the stored colors directly, "lab"
	// interpolates in CIE L*a*b* by inserting intermediate stops.
	Space string `yaml:"space,omitempty"`
}

// labSteps is the number of stops used for every interval of a gradient
// interpolated in L*a*b* space.
const labSteps = 8

// ImageSpec describes a bitmap shader. Without a transform, every image
// pixel covers one unit square of the canvas, starting at the origin.
type ImageSpec struct {
	File      string         `yaml:"file"`
	Tile      string         `yaml:"tile,omitempty"`
	Transform *TransformSpec `yaml:"transform,omitempty"`
}

// TransformSpec describes an affine transformation. The parts are applied
// to the coordinates in the order scale, rotate, translate, matrix.
type TransformSpec struct {
	// Matrix gives [a b c d e f] as in [matrix.Matrix].
	Matrix []float64 `yaml:"matrix,omitempty"`

	Translate []float64 `yaml:"translate,omitempty"`

	// Rotate is the rotation angle in degrees.
	Rotate float64 `yaml:"rotate,omitempty"`

	// Scale gives one value for uniform scaling, or two values.
	Scale []float64 `yaml:"scale,omitempty"`
}

// StrokeSpec describes a [canvas.Stroke].
type StrokeSpec struct {
	Width      float64   `yaml:"width"`
	Cap        string    `yaml:"cap,omitempty"`
	Join       string    `yaml:"join,omitempty"`
	MiterLimit float64   `yaml:"miter_limit,omitempty"`
	Dash       []float64 `yaml:"dash,omitempty"`
	DashPhase  float64   `yaml:"dash_phase,omitempty"`
}

// Transform returns the transformation described by t.
func (t *TransformSpec) Transform() (canvas.Transform, error) {
	m := canvas.Identity
	if t.Matrix != nil {
		if len(t.Matrix) != 6 {
			return m, fmt.Errorf("matrix needs 6 values, got %d", len(t.Matrix))
		}
		var mm matrix.Matrix
		copy(mm[:], t.Matrix)
		m = canvas.FromMatrix(mm)
	}
	switch len(t.Translate) {
	case 0:
	case 2:
		m = canvas.Concat(m, canvas.Translate(t.Translate[0], t.Translate[1]))
	default:
		return m, fmt.Errorf("translate needs 2 values, got %d", len(t.Translate))
	}
	if t.Rotate != 0 {
		m = canvas.Concat(m, canvas.Rotate(t.Rotate*math.Pi/180))
	}
	switch len(t.Scale) {
	case 0:
	case 1:
		m = canvas.Concat(m, canvas.Scale(t.Scale[0], t.Scale[0]))
	case 2:
		m = canvas.Concat(m, canvas.Scale(t.Scale[0], t.Scale[1]))
	default:
		return m, fmt.Errorf("scale needs 1 or 2 values, got %d", len(t.Scale))
	}
	return m, nil
}

// Stroke returns the stroke parameters described by s.
func (s *StrokeSpec) Stroke() (*canvas.Stroke, error) {
	res := canvas.NewStroke(s.Width)
	switch s.Cap {
	case "", "butt":
	case "round":
		res.Cap = graphics.LineCapRound
	case "square":
		res.Cap = graphics.LineCapSquare
	default:
		return nil, fmt.Errorf("unknown line cap %q", s.Cap)
	}
	switch s.Join {
	case "", "miter":
	case "round":
		res.Join = graphics.LineJoinRound
	case "bevel":
		res.Join = graphics.LineJoinBevel
	default:
		return nil, fmt.Errorf("unknown line join %q", s.Join)
	}
	if s.MiterLimit > 0 {
		res.MiterLimit = s.MiterLimit
	}
	res.Dash = s.Dash
	res.DashPhase = s.DashPhase
	return res, nil
}

// paint converts spec into a canvas paint.
func (p *player) paint(spec *PaintSpec) (canvas.Paint, error) {
	res := canvas.NewPaint(canvas.Black)

	if spec.Color != "" {
		col, err := ParseColor(spec.Color)
		if err != nil {
			return res, err
		}
		res.Color = col
	}
	if spec.Alpha != nil {
		res.Color.A *= float32(*spec.Alpha)
		res.Color = res.Color.PinToUnit()
	}
	if spec.Mode != "" {
		mode, err := canvas.ParseBlendMode(spec.Mode)
		if err != nil {
			return res, err
		}
		res.Mode = mode
	}

	switch {
	case spec.Gradient != nil && spec.Image != nil:
		return res, errors.New("gradient and image are mutually exclusive")
	case spec.Gradient != nil:
		sh, err := spec.Gradient.shader()
		if err != nil {
			return res, fmt.Errorf("gradient: %w", err)
		}
		res.Shader = sh
	case spec.Image != nil:
		sh, err := p.imageShader(spec.Image)
		if err != nil {
			return res, fmt.Errorf("image: %w", err)
		}
		res.Shader = sh
	}
	return res, nil
}

func (g *GradientSpec) shader() (canvas.Shader, error) {
	tile, err := parseTile(g.Tile)
	if err != nil {
		return nil, err
	}

	var colors []canvas.Color
	switch g.Space {
	case "", "rgb":
		colors, err = parseColors(g.Stops)
		if err != nil {
			return nil, err
		}
	case "lab":
		colors, err = labStops(g.Stops)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown color space %q", g.Space)
	}

	return canvas.NewLinearGradient(toVec(g.From), toVec(g.To), colors, tile), nil
}

// labStops returns equally spaced stops which approximate interpolation
// between the given colors in CIE L*a*b* space.
func labStops(stops []string) ([]canvas.Color, error) {
	if len(stops) < 2 {
		return parseColors(stops)
	}

	res := make([]canvas.Color, 0, (len(stops)-1)*labSteps+1)
	var prev canvas.Color
	for i, s := range stops {
		col, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			a, b := toColorful(prev), toColorful(col)
			for k := range labSteps {
				t := float64(k) / labSteps
				mid := fromColorful(a.BlendLab(b, t).Clamped(), 1)
				mid.A = prev.A + (col.A-prev.A)*float32(t)
				res = append(res, mid)
			}
		}
		prev = col
	}
	return append(res, prev), nil
}

func (p *player) imageShader(spec *ImageSpec) (canvas.Shader, error) {
	tile, err := parseTile(spec.Tile)
	if err != nil {
		return nil, err
	}
	local := canvas.Identity
	if spec.Transform != nil {
		local, err = spec.Transform.Transform()
		if err != nil {
			return nil, err
		}
	}
	bm, err := p.loadImage(spec.File)
	if err != nil {
		return nil, err
	}
	return canvas.NewBitmapShader(bm, local, tile), nil
}

func (p *player) loadImage(fname string) (*canvas.Bitmap, error) {
	if !filepath.IsAbs(fname) {
		fname = filepath.Join(p.dir, fname)
	}
	if bm, ok := p.images[fname]; ok {
		return bm, nil
	}

	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", fname, err)
	}

	bm := canvas.BitmapFromImage(img)
	p.images[fname] = bm
	return bm, nil
}

// ParseColor converts an SVG color name or a hex color string of the form
// #rgb, #rrggbb or #rrggbbaa into a color. The name "transparent" gives
// fully transparent black.
func ParseColor(s string) (canvas.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		name := strings.ToLower(s)
		if name == "transparent" || name == "none" {
			return canvas.Transparent, nil
		}
		c, ok := colornames.Map[name]
		if !ok {
			return canvas.Color{}, fmt.Errorf("unknown color %q", s)
		}
		return canvas.ColorFrom(c), nil
	}

	alpha := 1.0
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return canvas.Color{}, fmt.Errorf("invalid color %q", s)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return canvas.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return fromColorful(c, alpha), nil
}

func parseColors(names []string) ([]canvas.Color, error) {
	if names == nil {
		return nil, nil
	}
	res := make([]canvas.Color, len(names))
	for i, name := range names {
		c, err := ParseColor(name)
		if err != nil {
			return nil, err
		}
		res[i] = c
	}
	return res, nil
}

func toColorful(c canvas.Color) colorful.Color {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

func fromColorful(c colorful.Color, alpha float64) canvas.Color {
	return canvas.RGBA(float32(c.R), float32(c.G), float32(c.B), float32(alpha))
}

func parseTile(name string) (canvas.TileMode, error) {
	if name == "" {
		return canvas.TileClamp, nil
	}
	return canvas.ParseTileMode(name)
}

func parseRule(name string) (canvas.FillRule, error) {
	switch name {
	case "", "nonzero":
		return canvas.NonZero, nil
	case "evenodd":
		return canvas.EvenOdd, nil
	default:
		return 0, fmt.Errorf("unknown fill rule %q", name)
	}
}

func toVec(p [2]float64) vec.Vec2 {
	return vec.Vec2{X: p[0], Y: p[1]}
}

func toVecs(pts [][2]float64) []vec.Vec2 {
	if pts == nil {
		return nil
	}
	res := make([]vec.Vec2, len(pts))
	for i, p := range pts {
		res[i] = toVec(p)
	}
	return res
}
