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

import "image/color"

// Pixel is a premultiplied 8-bit ARGB value, packed as A<<24|R<<16|G<<8|B.
// The color channels never exceed the alpha channel.
type Pixel uint32

// PackARGB packs premultiplied components into a Pixel.
func PackARGB(a, r, g, b uint8) Pixel {
	return Pixel(a)<<24 | Pixel(r)<<16 | Pixel(g)<<8 | Pixel(b)
}

// A returns the alpha component.
func (p Pixel) A() uint8 { return uint8(p >> 24) }

// R returns the premultiplied red component.
func (p Pixel) R() uint8 { return uint8(p >> 16) }

// G returns the premultiplied green component.
func (p Pixel) G() uint8 { return uint8(p >> 8) }

// B returns the premultiplied blue component.
func (p Pixel) B() uint8 { return uint8(p) }

// RGBA implements the [color.Color] interface.
// Pixels are premultiplied, like [color.RGBA].
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return p.RGBA8().RGBA()
}

// RGBA8 returns the pixel as a [color.RGBA] value.
func (p Pixel) RGBA8() color.RGBA {
	return color.RGBA{R: p.R(), G: p.G(), B: p.B(), A: p.A()}
}

// NRGBA returns the unpremultiplied color of the pixel.
func (p Pixel) NRGBA() color.NRGBA {
	a := p.A()
	switch a {
	case 0:
		return color.NRGBA{}
	case 255:
		return color.NRGBA{R: p.R(), G: p.G(), B: p.B(), A: 255}
	}
	return color.NRGBA{
		R: unpremul(p.R(), a),
		G: unpremul(p.G(), a),
		B: unpremul(p.B(), a),
		A: a,
	}
}

func unpremul(c, a uint8) uint8 {
	return uint8((uint32(c)*255 + uint32(a)/2) / uint32(a))
}

// PixelModel converts colors to premultiplied pixels.
var PixelModel = color.ModelFunc(func(c color.Color) color.Color {
	if p, ok := c.(Pixel); ok {
		return p
	}
	r, g, b, a := c.RGBA()
	return PackARGB(uint8(a>>8), uint8(r>>8), uint8(g>>8), uint8(b>>8))
})

// div255 divides v by 255, with rounding, for v in [0, 255·255].
func div255(v uint32) uint32 {
	return (v + 128) * 257 >> 16
}

// scale255 multiplies every channel of p by s/255.
func scale255(p Pixel, s uint32) Pixel {
	switch s {
	case 0:
		return 0
	case 255:
		return p
	}
	return Pixel(div255(uint32(p>>24)*s))<<24 |
		Pixel(div255(uint32(p>>16&0xFF)*s))<<16 |
		Pixel(div255(uint32(p>>8&0xFF)*s))<<8 |
		Pixel(div255(uint32(p&0xFF)*s))
}
