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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

// polygon builds a closed polygon through the given points.
func polygon(pts ...vec.Vec2) *path.Data {
	return addPolygon(&path.Data{}, pts...)
}

func addPolygon(p *path.Data, pts ...vec.Vec2) *path.Data {
	if len(pts) == 0 {
		return p
	}
	p = p.MoveTo(pts[0])
	for _, q := range pts[1:] {
		p = p.LineTo(q)
	}
	return p.Close()
}

// polyline builds an open path through the given points.
func polyline(pts ...vec.Vec2) *path.Data {
	p := (&path.Data{}).MoveTo(pts[0])
	for _, q := range pts[1:] {
		p = p.LineTo(q)
	}
	return p
}

// rectangle builds a rectangle, clockwise in device space.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return addRectangle(&path.Data{}, x1, y1, x2, y2)
}

func addRectangle(p *path.Data, x1, y1, x2, y2 float64) *path.Data {
	return addPolygon(p, pt(x1, y1), pt(x2, y1), pt(x2, y2), pt(x1, y2))
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return polygon(pt(x1, y1), pt(x2, y2), pt(x3, y3))
}

// circle builds an approximate circle using four cubic Bezier curves.
func circle(cx, cy, r float64) *path.Data {
	return addEllipse(&path.Data{}, cx, cy, r, r, false)
}

// ellipse builds an approximate ellipse using four cubic Bezier curves.
func ellipse(cx, cy, rx, ry float64) *path.Data {
	return addEllipse(&path.Data{}, cx, cy, rx, ry, false)
}

// addEllipse appends an ellipse starting at the rightmost point. If
// reverse is set, the ellipse is traversed in the opposite direction.
func addEllipse(p *path.Data, cx, cy, rx, ry float64, reverse bool) *path.Data {
	kx, ky := rx*kappa, ry*kappa
	if reverse {
		ky, ry = -ky, -ry
	}
	return p.
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)).
		Close()
}

// fivePointStar builds a self-intersecting five-pointed star.
func fivePointStar(cx, cy, r float64) *path.Data {
	var pts []vec.Vec2
	for _, i := range []int{0, 2, 4, 1, 3} {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts = append(pts, pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle)))
	}
	return polygon(pts...)
}
