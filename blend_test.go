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
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
)

// randomPixel returns a random premultiplied pixel.
func randomPixel(rng *rand.Rand) Pixel {
	a := rng.IntN(256)
	switch rng.IntN(4) {
	case 0:
		a = 0
	case 1:
		a = 255
	}
	c := func() uint8 { return uint8(rng.IntN(a + 1)) }
	return PackARGB(uint8(a), c(), c(), c())
}

// porterDuff gives the source and destination factors (Fa, Fb) of each
// operator, as functions of the source and destination alpha.
var porterDuff = [numBlendModes]func(as, ad float64) (float64, float64){
	BlendClear:   func(as, ad float64) (float64, float64) { return 0, 0 },
	BlendSrc:     func(as, ad float64) (float64, float64) { return 1, 0 },
	BlendDst:     func(as, ad float64) (float64, float64) { return 0, 1 },
	BlendSrcOver: func(as, ad float64) (float64, float64) { return 1, 1 - as },
	BlendDstOver: func(as, ad float64) (float64, float64) { return 1 - ad, 1 },
	BlendSrcIn:   func(as, ad float64) (float64, float64) { return ad, 0 },
	BlendDstIn:   func(as, ad float64) (float64, float64) { return 0, as },
	BlendSrcOut:  func(as, ad float64) (float64, float64) { return 1 - ad, 0 },
	BlendDstOut:  func(as, ad float64) (float64, float64) { return 0, 1 - as },
	BlendSrcATop: func(as, ad float64) (float64, float64) { return ad, 1 - as },
	BlendDstATop: func(as, ad float64) (float64, float64) { return 1 - ad, as },
	BlendXor:     func(as, ad float64) (float64, float64) { return 1 - ad, 1 - as },
}

func assertClose(t *testing.T, want, got Pixel, tol int, msgAndArgs ...any) {
	t.Helper()
	for shift := 0; shift < 32; shift += 8 {
		w := int(want >> shift & 0xFF)
		g := int(got >> shift & 0xFF)
		if w-g > tol || g-w > tol {
			assert.Failf(t, "pixels differ", "want %08x, got %08x: %v", uint32(want), uint32(got), msgAndArgs)
			return
		}
	}
}

func TestBlendModesAgainstFloat(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for mode := BlendClear; mode < numBlendModes; mode++ {
		for range 2000 {
			src, dst := randomPixel(rng), randomPixel(rng)
			as, ad := float64(src.A())/255, float64(dst.A())/255
			fa, fb := porterDuff[mode](as, ad)

			var want Pixel
			for shift := 0; shift < 32; shift += 8 {
				s := float64(src >> shift & 0xFF)
				d := float64(dst >> shift & 0xFF)
				v := math.Round(s*fa + d*fb)
				want |= Pixel(min(v, 255)) << shift
			}

			got := Blend(src, dst, mode)
			assertClose(t, want, got, 1, mode)
			assert.LessOrEqual(t, got.R(), got.A())
			assert.LessOrEqual(t, got.G(), got.A())
			assert.LessOrEqual(t, got.B(), got.A())
		}
	}
}

func TestSrcOverIdentities(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	for range 1000 {
		p := randomPixel(rng)
		assert.Equal(t, p, Blend(0, p, BlendSrcOver), "transparent source")
		assert.Equal(t, p, Blend(p, 0, BlendSrcOver), "transparent destination")
		assert.Equal(t, Pixel(0), Blend(p, randomPixel(rng), BlendClear))
		if p.A() == 255 {
			assert.Equal(t, p, Blend(p, randomPixel(rng), BlendSrcOver), "opaque source")
		}
	}
}

func TestFastPathTables(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))
	for mode := BlendClear; mode < numBlendModes; mode++ {
		for range 500 {
			dst := randomPixel(rng)
			assert.Equal(t, Blend(0, dst, mode), Blend(0, dst, alpha0Mode[mode]), mode)

			src := randomPixel(rng)
			if src.A() != 255 {
				continue
			}
			assertClose(t, Blend(src, dst, mode), Blend(src, dst, alpha255Mode[mode]), 1, mode)
		}
	}
}

func TestBlendRow(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	src := make([]Pixel, 37)
	dst := make([]Pixel, 37)
	for mode := BlendClear; mode < numBlendModes; mode++ {
		for i := range src {
			src[i], dst[i] = randomPixel(rng), randomPixel(rng)
		}
		want := make([]Pixel, len(dst))
		for i := range want {
			want[i] = Blend(src[i], dst[i], mode)
		}
		BlendRow(src, dst, mode)
		assert.Equal(t, want, dst, mode)

		c := randomPixel(rng)
		for i := range want {
			want[i] = Blend(c, dst[i], mode)
		}
		BlendColor(c, dst, mode)
		assert.Equal(t, want, dst, mode)
	}
}

func TestBlendModeNames(t *testing.T) {
	for mode := BlendClear; mode < numBlendModes; mode++ {
		m, err := ParseBlendMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, m)
	}
	assert.Equal(t, "src-over", BlendSrcOver.String())
	_, err := ParseBlendMode("multiply")
	assert.Error(t, err)
}

func TestEffectiveMode(t *testing.T) {
	cases := []struct {
		paint Paint
		want  BlendMode
	}{
		{NewPaint(RGBA(1, 0, 0, 1)), BlendSrc},
		{NewPaint(RGBA(1, 0, 0, 0.5)), BlendSrcOver},
		{NewPaint(RGBA(1, 0, 0, 0)), BlendDst},
		{NewPaint(RGBA(1, 0, 0, 0.001)), BlendDst},
		{Paint{Color: RGBA(0, 0, 1, 0), Mode: BlendSrc}, BlendClear},
		{Paint{Color: Black, Mode: BlendXor}, BlendSrcOut},
		{Paint{Color: Black, Mode: BlendMode(200)}, BlendSrc},
		{Paint{}, BlendClear},
		{Paint{Mode: BlendSrcOver, Shader: NewLinearGradient(vec.Vec2{}, vec.Vec2{X: 1}, []Color{Black, White}, TileClamp)}, BlendSrc},
		{Paint{Mode: BlendSrcOver, Shader: NewLinearGradient(vec.Vec2{}, vec.Vec2{X: 1}, []Color{Black, Transparent}, TileClamp)}, BlendSrcOver},
	}
	for i, c := range cases {
		assert.Equal(t, c.want, c.paint.effectiveMode(), "case %d", i)
	}
}
