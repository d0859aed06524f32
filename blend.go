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

import "fmt"

// BlendMode is a Porter-Duff compositing operator. In the descriptions
// below, S is the source pixel, D the destination pixel, and Sa, Da their
// alpha values; all values are premultiplied.
type BlendMode uint8

const (
	BlendClear   BlendMode = iota // 0
	BlendSrc                      // S
	BlendDst                      // D
	BlendSrcOver                  // S + D·(1-Sa)
	BlendDstOver                  // D + S·(1-Da)
	BlendSrcIn                    // S·Da
	BlendDstIn                    // D·Sa
	BlendSrcOut                   // S·(1-Da)
	BlendDstOut                   // D·(1-Sa)
	BlendSrcATop                  // S·Da + D·(1-Sa)
	BlendDstATop                  // D·Sa + S·(1-Da)
	BlendXor                      // S·(1-Da) + D·(1-Sa)

	numBlendModes
)

var blendModeNames = [numBlendModes]string{
	"clear", "src", "dst", "src-over", "dst-over", "src-in", "dst-in",
	"src-out", "dst-out", "src-atop", "dst-atop", "xor",
}

func (m BlendMode) String() string {
	if m < numBlendModes {
		return blendModeNames[m]
	}
	return fmt.Sprintf("BlendMode(%d)", int(m))
}

// ParseBlendMode returns the blend mode with the given name, as returned
// by [BlendMode.String].
func ParseBlendMode(name string) (BlendMode, error) {
	for i, n := range blendModeNames {
		if n == name {
			return BlendMode(i), nil
		}
	}
	return 0, fmt.Errorf("unknown blend mode %q", name)
}

// alpha0Mode gives the equivalent mode when the source is fully
// transparent.
var alpha0Mode = [numBlendModes]BlendMode{
	BlendClear:   BlendClear,
	BlendSrc:     BlendClear,
	BlendDst:     BlendDst,
	BlendSrcOver: BlendDst,
	BlendDstOver: BlendDst,
	BlendSrcIn:   BlendClear,
	BlendDstIn:   BlendClear,
	BlendSrcOut:  BlendClear,
	BlendDstOut:  BlendDst,
	BlendSrcATop: BlendDst,
	BlendDstATop: BlendClear,
	BlendXor:     BlendDst,
}

// alpha255Mode gives the equivalent mode when the source is fully opaque.
var alpha255Mode = [numBlendModes]BlendMode{
	BlendClear:   BlendClear,
	BlendSrc:     BlendSrc,
	BlendDst:     BlendDst,
	BlendSrcOver: BlendSrc,
	BlendDstOver: BlendDstOver,
	BlendSrcIn:   BlendSrcIn,
	BlendDstIn:   BlendDst,
	BlendSrcOut:  BlendSrcOut,
	BlendDstOut:  BlendDstOut,
	BlendSrcATop: BlendSrcIn,
	BlendDstATop: BlendDstOver,
	BlendXor:     BlendSrcOut,
}

// pixelFunc combines a source and a destination pixel.
type pixelFunc func(src, dst Pixel) Pixel

func (m BlendMode) pixelFunc() pixelFunc {
	switch m {
	case BlendClear:
		return blendClear
	case BlendSrc:
		return blendSrc
	case BlendDst:
		return blendDst
	case BlendSrcOver:
		return blendSrcOver
	case BlendDstOver:
		return blendDstOver
	case BlendSrcIn:
		return blendSrcIn
	case BlendDstIn:
		return blendDstIn
	case BlendSrcOut:
		return blendSrcOut
	case BlendDstOut:
		return blendDstOut
	case BlendSrcATop:
		return blendSrcATop
	case BlendDstATop:
		return blendDstATop
	case BlendXor:
		return blendXor
	default:
		return blendSrcOver
	}
}

// Blend combines a single source pixel with a destination pixel.
func Blend(src, dst Pixel, mode BlendMode) Pixel {
	return mode.pixelFunc()(src, dst)
}

// BlendRow combines src with dst, element by element, and stores the
// result in dst. The slices must have the same length.
func BlendRow(src, dst []Pixel, mode BlendMode) {
	switch mode {
	case BlendDst:
		return
	case BlendSrc:
		copy(dst, src)
		return
	case BlendClear:
		clear(dst)
		return
	}
	f := mode.pixelFunc()
	for i, s := range src {
		dst[i] = f(s, dst[i])
	}
}

// BlendColor combines the constant pixel src with every element of dst.
func BlendColor(src Pixel, dst []Pixel, mode BlendMode) {
	switch mode {
	case BlendDst:
		return
	case BlendSrc:
		for i := range dst {
			dst[i] = src
		}
		return
	case BlendClear:
		clear(dst)
		return
	}
	f := mode.pixelFunc()
	for i, d := range dst {
		dst[i] = f(src, d)
	}
}

func blendClear(_, _ Pixel) Pixel { return 0 }

func blendSrc(src, _ Pixel) Pixel { return src }

func blendDst(_, dst Pixel) Pixel { return dst }

func blendSrcOver(src, dst Pixel) Pixel {
	return src + scale255(dst, 255-uint32(src.A()))
}

func blendDstOver(src, dst Pixel) Pixel {
	return dst + scale255(src, 255-uint32(dst.A()))
}

func blendSrcIn(src, dst Pixel) Pixel {
	return scale255(src, uint32(dst.A()))
}

func blendDstIn(src, dst Pixel) Pixel {
	return scale255(dst, uint32(src.A()))
}

func blendSrcOut(src, dst Pixel) Pixel {
	return scale255(src, 255-uint32(dst.A()))
}

func blendDstOut(src, dst Pixel) Pixel {
	return scale255(dst, 255-uint32(src.A()))
}

func blendSrcATop(src, dst Pixel) Pixel {
	return mix(src, uint32(dst.A()), dst, 255-uint32(src.A()))
}

func blendDstATop(src, dst Pixel) Pixel {
	return mix(dst, uint32(src.A()), src, 255-uint32(dst.A()))
}

func blendXor(src, dst Pixel) Pixel {
	return mix(src, 255-uint32(dst.A()), dst, 255-uint32(src.A()))
}

// mix computes div255(p·s + q·t) for every channel.
func mix(p Pixel, s uint32, q Pixel, t uint32) Pixel {
	var res Pixel
	for shift := 0; shift < 32; shift += 8 {
		v := uint32(p>>shift&0xFF)*s + uint32(q>>shift&0xFF)*t
		res |= Pixel(div255(v)) << shift
	}
	return res
}

// modulate multiplies two pixels channel by channel.
func modulate(p, q Pixel) Pixel {
	var res Pixel
	for shift := 0; shift < 32; shift += 8 {
		v := uint32(p>>shift&0xFF) * uint32(q>>shift&0xFF)
		res |= Pixel(div255(v)) << shift
	}
	return res
}

// Paint describes how a shape is colored.
//
// The zero value uses [BlendClear], so that drawing with it erases the
// covered pixels. Use [NewPaint] to get the usual [BlendSrcOver].
type Paint struct {
	// Color is used when Shader is nil.
	Color Color

	// Mode is the compositing operator.
	Mode BlendMode

	// Shader, if set, computes the source colors and replaces Color.
	Shader Shader
}

// effectiveMode returns a cheaper mode which gives the same result as
// p.Mode, taking into account whether the source is fully opaque or fully
// transparent. The result BlendDst means that drawing has no effect.
func (p *Paint) effectiveMode() BlendMode {
	mode := p.Mode
	if mode >= numBlendModes {
		mode = BlendSrcOver
	}
	if p.Shader != nil {
		if p.Shader.IsOpaque() {
			return alpha255Mode[mode]
		}
		return mode
	}
	switch p.Color.alpha8() {
	case 0:
		return alpha0Mode[mode]
	case 255:
		return alpha255Mode[mode]
	default:
		return mode
	}
}

// NewPaint returns a paint which draws the color c with [BlendSrcOver].
// Note that the zero value of [Paint] uses [BlendClear].
func NewPaint(c Color) Paint {
	return Paint{Color: c, Mode: BlendSrcOver}
}
