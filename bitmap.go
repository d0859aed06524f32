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
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Bitmap is a rectangular buffer of premultiplied pixels.
// Pixel (x, y) is stored at Pix[y*Stride+x].
//
// Bitmap implements [draw.Image], so that it can be used with the image
// encoders and the scalers of golang.org/x/image/draw.
type Bitmap struct {
	Width, Height int

	// Stride is the distance between vertically adjacent pixels,
	// in pixels.
	Stride int

	Pix []Pixel
}

// NewBitmap allocates a transparent bitmap of the given size.
func NewBitmap(width, height int) *Bitmap {
	width = max(width, 0)
	height = max(height, 0)
	return &Bitmap{
		Width:  width,
		Height: height,
		Stride: width,
		Pix:    make([]Pixel, width*height),
	}
}

// BitmapFromImage converts img into a new bitmap. The top-left corner of
// img becomes pixel (0, 0).
func BitmapFromImage(img image.Image) *Bitmap {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	bm := NewBitmap(b.Dx(), b.Dy())
	for y := range bm.Height {
		src := rgba.Pix[y*rgba.Stride:]
		dst := bm.Pix[y*bm.Stride : y*bm.Stride+bm.Width]
		for x := range dst {
			s := src[4*x : 4*x+4 : 4*x+4]
			dst[x] = PackARGB(s[3], s[0], s[1], s[2])
		}
	}
	return bm
}

// Row returns the n pixels starting at (x, y), as a writable view into
// the bitmap.
func (bm *Bitmap) Row(x, y, n int) []Pixel {
	i := y*bm.Stride + x
	return bm.Pix[i : i+n : i+n]
}

// IsOpaque reports whether every pixel has alpha 255.
func (bm *Bitmap) IsOpaque() bool {
	for y := range bm.Height {
		for _, p := range bm.Row(0, y, bm.Width) {
			if p.A() != 255 {
				return false
			}
		}
	}
	return true
}

// ColorModel implements the [image.Image] interface.
func (bm *Bitmap) ColorModel() color.Model {
	return PixelModel
}

// Bounds implements the [image.Image] interface.
func (bm *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, bm.Width, bm.Height)
}

// At implements the [image.Image] interface.
func (bm *Bitmap) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(bm.Bounds())) {
		return Pixel(0)
	}
	return bm.Pix[y*bm.Stride+x]
}

// Set implements the [draw.Image] interface.
func (bm *Bitmap) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(bm.Bounds())) {
		return
	}
	bm.Pix[y*bm.Stride+x] = PixelModel.Convert(c).(Pixel)
}

// NRGBA returns a copy of the bitmap with unpremultiplied colors,
// suitable for writing to image files.
func (bm *Bitmap) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(bm.Bounds())
	for y := range bm.Height {
		for x, p := range bm.Row(0, y, bm.Width) {
			img.SetNRGBA(x, y, p.NRGBA())
		}
	}
	return img
}
