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
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Shader computes source colors for the pixels of a draw call.
//
// Before any call to ShadeRow, SetContext must be called with the
// transformation from the shader's coordinate space to device space.
// SetContext returns false if the shader cannot be used with this
// transformation, for example because it is singular; in this case the
// draw call is skipped.
type Shader interface {
	// IsOpaque reports whether every color produced has alpha 255.
	IsOpaque() bool

	// SetContext binds the shader to the given transformation.
	SetContext(ctm Transform) bool

	// ShadeRow fills row with the colors of the device pixels
	// (x, y), (x+1, y), ..., (x+len(row)-1, y).
	ShadeRow(x, y int, row []Pixel)
}

// TileMode determines how a shader extends beyond its natural domain.
type TileMode int

const (
	// TileClamp repeats the edge colors.
	TileClamp TileMode = iota

	// TileRepeat repeats the pattern.
	TileRepeat

	// TileMirror repeats the pattern, reflecting every other copy.
	TileMirror
)

func (m TileMode) String() string {
	switch m {
	case TileClamp:
		return "clamp"
	case TileRepeat:
		return "repeat"
	case TileMirror:
		return "mirror"
	default:
		return fmt.Sprintf("TileMode(%d)", int(m))
	}
}

// ParseTileMode returns the tile mode with the given name, as returned by
// [TileMode.String].
func ParseTileMode(name string) (TileMode, error) {
	for m := TileClamp; m <= TileMirror; m++ {
		if m.String() == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown tile mode %q", name)
}

// tiler maps a coordinate into the unit interval.
type tiler func(a float64) float64

// tilerFor returns the tiling function for mode. Clamping saturates at
// clampMax.
func tilerFor(mode TileMode, clampMax float64) tiler {
	switch mode {
	case TileRepeat:
		return tileRepeat
	case TileMirror:
		return tileMirror
	default:
		return func(a float64) float64 {
			return min(max(a, 0), clampMax)
		}
	}
}

func tileRepeat(a float64) float64 {
	return a - math.Floor(a)
}

func tileMirror(a float64) float64 {
	return 1 - math.Abs(a-2*math.Floor(a*0.5)-1)
}

// setContext composes ctm with the shader's local matrix and returns the
// inverse of the result.
func setContext(ctm, local Transform) (Transform, bool) {
	inv, ok := Concat(ctm, local).Invert()
	if !ok {
		Logger().Debug("shader transform is singular", "ctm", ctm, "local", local)
	}
	return inv, ok
}

// pixelCenter returns the centre of device pixel (x, y).
func pixelCenter(x, y int) vec.Vec2 {
	return vec.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
}
