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
	stdcolor "image/color"

	"github.com/chewxy/math32"
)

// Color is an unpremultiplied color with float components.
// Components are nominally in [0, 1], but intermediate values may lie
// outside this range; [Color.PinToUnit] clamps them.
type Color struct {
	R, G, B, A float32
}

// Some frequently used colors.
var (
	Transparent = Color{}
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
)

// RGBA returns the unpremultiplied color with the given components.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ColorFrom converts a Go color to a Color.
func ColorFrom(c stdcolor.Color) Color {
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return Color{
		R: float32(n.R) / 255,
		G: float32(n.G) / 255,
		B: float32(n.B) / 255,
		A: float32(n.A) / 255,
	}
}

// Add returns the componentwise sum c + d.
func (c Color) Add(d Color) Color {
	return Color{c.R + d.R, c.G + d.G, c.B + d.B, c.A + d.A}
}

// Sub returns the componentwise difference c - d.
func (c Color) Sub(d Color) Color {
	return Color{c.R - d.R, c.G - d.G, c.B - d.B, c.A - d.A}
}

// Scale multiplies all components, including alpha, by s.
func (c Color) Scale(s float32) Color {
	return Color{c.R * s, c.G * s, c.B * s, c.A * s}
}

// Lerp interpolates between c (t=0) and d (t=1).
func (c Color) Lerp(d Color, t float32) Color {
	return c.Add(d.Sub(c).Scale(t))
}

// PinToUnit clamps all components to [0, 1].
func (c Color) PinToUnit() Color {
	return Color{pin(c.R), pin(c.G), pin(c.B), pin(c.A)}
}

func pin(v float32) float32 {
	// NaN becomes 0
	if !(v > 0) {
		return 0
	}
	return math32.Min(v, 1)
}

// Pixel converts the color to a premultiplied 8-bit pixel.
func (c Color) Pixel() Pixel {
	c = c.PinToUnit()
	a := c.A * 255
	return PackARGB(
		uint8(math32.Round(a)),
		uint8(math32.Round(c.R*a)),
		uint8(math32.Round(c.G*a)),
		uint8(math32.Round(c.B*a)),
	)
}

// alpha8 returns the alpha component rounded to 8 bits.
func (c Color) alpha8() uint8 {
	return uint8(math32.Round(pin(c.A) * 255))
}

// IsOpaque reports whether the alpha component rounds to 255.
func (c Color) IsOpaque() bool {
	return c.alpha8() == 255
}
