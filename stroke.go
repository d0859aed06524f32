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
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke describes the geometry of stroked lines.
// All lengths are in the coordinates of the path being stroked.
type Stroke struct {
	// Width is the line width. Nothing is drawn if Width is not positive.
	Width float64

	// Cap is the style used at the ends of open sub-paths and dashes.
	Cap graphics.LineCapStyle

	// Join is the style used at corners.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the ratio of miter length to line width.
	// Miter joins which would be longer are drawn as bevels.
	MiterLimit float64

	// Dash is the dash pattern, alternating the lengths of drawn and
	// skipped parts. Nil means a solid line. Patterns with negative
	// entries or zero total length are ignored.
	Dash []float64

	// DashPhase is the distance into the dash pattern at which each
	// sub-path starts.
	DashPhase float64
}

// NewStroke returns a solid stroke with butt caps and miter joins.
func NewStroke(width float64) *Stroke {
	return &Stroke{
		Width:      width,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
	}
}

// Outline returns a path whose nonzero-rule interior is the area covered
// when p is stroked. The outline is in the same coordinates as p. The
// transformation ctm, which maps these coordinates to device space, is
// used to choose how finely curves and round parts are approximated.
func (s *Stroke) Outline(p *Path, ctm Transform) *Path {
	var o outliner
	res := NewPath()
	o.outline(s, p, ctm, res)
	return res
}

const (
	// defaultMiterLimit converts joins to bevels when the interior angle
	// is less than approximately 11.5 degrees, as in PDF.
	defaultMiterLimit = 10.0

	// strokeFlatness is the maximum distance, in device pixels, between
	// a round cap or join and its polygon approximation.
	strokeFlatness = 0.25

	// zeroLengthThreshold is the minimum length of a stroke segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold bounds the sine of the angle between
	// segments which are treated as collinear.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects the path doubling back on itself.
	// cos(179.2°) ≈ -0.9999
	cuspCosineThreshold = -0.9999
)

// strokeSegment is a straight piece of the flattened path.
type strokeSegment struct {
	A, B vec.Vec2 // end points
	T    vec.Vec2 // unit tangent, from A to B
	N    vec.Vec2 // unit normal, T turned by 90°
}

func newStrokeSegment(a, b vec.Vec2) (strokeSegment, bool) {
	d := b.Sub(a)
	l := d.Length()
	if !(l >= zeroLengthThreshold) {
		return strokeSegment{}, false
	}
	t := d.Mul(1 / l)
	return strokeSegment{A: a, B: b, T: t, N: normal(t)}, true
}

// reversed returns the segment traversed from B to A.
func (s strokeSegment) reversed() strokeSegment {
	return strokeSegment{A: s.B, B: s.A, T: s.T.Mul(-1), N: s.N.Mul(-1)}
}

func (s strokeSegment) length() float64 {
	return s.B.Sub(s.A).Length()
}

// at returns the point at fraction t along the segment.
func (s strokeSegment) at(t float64) vec.Vec2 {
	return s.A.Add(s.B.Sub(s.A).Mul(t))
}

func normal(t vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -t.Y, Y: t.X}
}

func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// strokeRun is a contiguous range of segments forming one sub-path or dash.
type strokeRun struct {
	start, end int
	closed     bool
}

// outliner builds stroke outlines. Its buffers are reused between calls.
type outliner struct {
	st  *Stroke
	ctm Transform
	d   float64 // half the line width
	out *Path

	segs []strokeSegment
	runs []strokeRun
	dots []vec.Vec2 // sub-paths of zero length

	dashSegs []strokeSegment
	dashRuns []strokeRun

	poly []vec.Vec2 // the polygon being built
}

func (o *outliner) outline(s *Stroke, p *Path, ctm Transform, out *Path) {
	o.st, o.ctm, o.d, o.out = s, ctm, s.Width/2, out
	out.Reset()
	out.Rule = NonZero
	o.poly = o.poly[:0]
	if !(s.Width > 0) {
		return
	}

	o.flatten(p)

	// Degenerate sub-paths have no direction, only round caps show them.
	if s.Cap == graphics.LineCapRound {
		for _, pt := range o.dots {
			o.addArc(pt, vec.Vec2{X: 1}, 2*math.Pi, true)
			o.endPolygon()
		}
	}

	segs, runs := o.segs, o.runs
	if o.isDashed() {
		o.applyDash()
		segs, runs = o.dashSegs, o.dashRuns
	}

	for _, run := range runs {
		rs := segs[run.start:run.end]
		switch {
		case len(rs) == 1 && rs[0].A == rs[0].B:
			o.addDot(rs[0])
		case run.closed && len(rs) > 1:
			o.addSide(rs, false, true)
			o.endPolygon()
			o.addSide(rs, true, true)
			o.endPolygon()
		default:
			first, last := rs[0], rs[len(rs)-1]
			o.addCap(first.A, first.T.Mul(-1))
			o.addSide(rs, false, false)
			o.addCap(last.B, last.T)
			o.addSide(rs, true, false)
			o.endPolygon()
		}
	}
}

// flatten splits p into sub-paths of straight segments. Curves are
// subdivided finely enough for device space.
func (o *outliner) flatten(p *Path) {
	o.segs = o.segs[:0]
	o.runs = o.runs[:0]
	o.dots = o.dots[:0]

	var current, start vec.Vec2
	first := 0
	inSubpath := false
	drawn := false

	finish := func(closed bool) {
		if !inSubpath || !drawn {
			return
		}
		if len(o.segs) == first {
			o.dots = append(o.dots, start)
		} else {
			o.runs = append(o.runs, strokeRun{start: first, end: len(o.segs), closed: closed})
		}
	}
	begin := func(pt vec.Vec2) {
		current, start = pt, pt
		first = len(o.segs)
		inSubpath = true
		drawn = false
	}

	m := o.ctm
	coords := p.data.Coords
	idx := 0
	for _, cmd := range p.data.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			begin(coords[idx])
			idx++

		case path.CmdLineTo:
			pt := coords[idx]
			idx++
			if inSubpath {
				o.addSegment(current, pt)
				current = pt
				drawn = true
			}

		case path.CmdQuadTo:
			c, pt := coords[idx], coords[idx+1]
			idx += 2
			if inSubpath {
				n := quadSegments(m.Apply(current), m.Apply(c), m.Apply(pt))
				flattenQuad(current, c, pt, n, o.addSegment)
				current = pt
				drawn = true
			}

		case path.CmdCubeTo:
			c1, c2, pt := coords[idx], coords[idx+1], coords[idx+2]
			idx += 3
			if inSubpath {
				n := cubicSegments(m.Apply(current), m.Apply(c1), m.Apply(c2), m.Apply(pt))
				flattenCubic(current, c1, c2, pt, n, o.addSegment)
				current = pt
				drawn = true
			}

		case path.CmdClose:
			if inSubpath {
				if current != start {
					o.addSegment(current, start)
				}
				drawn = true
				finish(true)
				begin(start)
			}
		}
	}
	finish(false)
}

func (o *outliner) addSegment(a, b vec.Vec2) {
	if seg, ok := newStrokeSegment(a, b); ok {
		o.segs = append(o.segs, seg)
	}
}

// addSide adds the offset line on the left side of the direction of
// travel, at distance d. If rev is set, the segments are traversed
// backwards, which gives the other side of the stroke.
func (o *outliner) addSide(segs []strokeSegment, rev, closed bool) {
	n := len(segs)
	get := func(i int) strokeSegment {
		if rev {
			return segs[n-1-i].reversed()
		}
		return segs[i]
	}

	if closed {
		for i := range n {
			o.corner(get(i), get((i+1)%n))
		}
		return
	}

	first := get(0)
	o.poly = append(o.poly, first.A.Add(first.N.Mul(o.d)))
	for i := 0; i+1 < n; i++ {
		o.corner(get(i), get(i+1))
	}
	last := get(n - 1)
	o.poly = append(o.poly, last.B.Add(last.N.Mul(o.d)))
}

// corner adds the outline points where segment a meets segment b.
func (o *outliner) corner(a, b strokeSegment) {
	d := o.d
	sin := cross(a.T, b.T)
	switch {
	case math.Abs(sin) < collinearityThreshold:
		o.poly = append(o.poly, a.B.Add(a.N.Mul(d)))
		if a.T.Dot(b.T) < cuspCosineThreshold {
			o.addCap(a.B, a.T)
		}
		o.poly = append(o.poly, b.A.Add(b.N.Mul(d)))

	case sin > 0:
		// inside of the turn: the two offset lines cross
		if pt, ok := innerIntersection(a.B, a.T, b.T, d); ok &&
			a.B.Sub(pt).Dot(a.T) <= a.length() &&
			pt.Sub(b.A).Dot(b.T) <= b.length() {
			o.poly = append(o.poly, pt)
		} else {
			// The crossing lies beyond one of the segments. Going through
			// the corner point keeps the outline inside the stroke.
			o.poly = append(o.poly, a.B.Add(a.N.Mul(d)), a.B, b.A.Add(b.N.Mul(d)))
		}

	default:
		o.poly = append(o.poly, a.B.Add(a.N.Mul(d)))
		o.addJoin(a.B, a.T, b.T)
		o.poly = append(o.poly, b.A.Add(b.N.Mul(d)))
	}
}

// innerIntersection returns the point where the offset lines of two
// segments meet on the inside of a corner at P.
func innerIntersection(P, T1, T2 vec.Vec2, d float64) (vec.Vec2, bool) {
	cos := T1.Dot(T2)
	if cos > 1-1e-9 {
		return vec.Vec2{}, false
	}
	halfCos := math.Sqrt((1 + cos) / 2)
	if halfCos < 1e-9 {
		return vec.Vec2{}, false
	}
	dir := normal(T1).Add(normal(T2))
	l := dir.Length()
	if l < 1e-9 {
		return vec.Vec2{}, false
	}
	return P.Add(dir.Mul(d / (halfCos * l))), true
}

// addJoin adds the join geometry on the outside of the corner at P, where
// the direction changes from T1 to T2.
func (o *outliner) addJoin(P, T1, T2 vec.Vec2) {
	cos := T1.Dot(T2)
	if cos < cuspCosineThreshold {
		o.addCap(P, T1)
		return
	}

	switch o.st.Join {
	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cos)))
		o.addArc(P, normal(T1), -angle, false)

	case graphics.LineJoinMiter:
		// The miter length relative to the line width is 1/sin(φ/2),
		// where φ is the interior angle; sin(φ/2) = cos(θ/2).
		halfCos := math.Sqrt((1 + cos) / 2)
		const miterEpsilon = 1e-10
		if halfCos > 0 && 1/halfCos <= o.st.MiterLimit+miterEpsilon {
			bisector := normal(T1).Add(normal(T2))
			if l := bisector.Length(); l > zeroLengthThreshold {
				o.poly = append(o.poly, P.Add(bisector.Mul(o.d/(halfCos*l))))
			}
		}
	}
	// bevel: the offset points already added form the join
}

// addCap adds a line cap at P, where T points away from the line.
func (o *outliner) addCap(P, T vec.Vec2) {
	d := o.d
	N := normal(T)
	switch o.st.Cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		o.poly = append(o.poly, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))
	case graphics.LineCapRound:
		o.addArc(P, N, -math.Pi, true)
	}
}

// addDot outlines a dash of zero length, using the direction of the
// underlying path for square caps.
func (o *outliner) addDot(seg strokeSegment) {
	d := o.d
	switch o.st.Cap {
	case graphics.LineCapRound:
		o.addArc(seg.A, vec.Vec2{X: 1}, 2*math.Pi, true)
	case graphics.LineCapSquare:
		T, N := seg.T.Mul(d), seg.N.Mul(d)
		o.poly = append(o.poly,
			seg.A.Add(T).Add(N),
			seg.A.Add(T).Sub(N),
			seg.A.Sub(T).Sub(N),
			seg.A.Sub(T).Add(N),
		)
	}
	o.endPolygon()
}

// addArc adds points on the circle of radius d around center, starting
// in direction startDir and turning by sweep radians.
func (o *outliner) addArc(center, startDir vec.Vec2, sweep float64, includeStart bool) {
	radius := o.d
	devRadius := max(
		o.ctm.ApplyLinear(vec.Vec2{X: radius}).Length(),
		o.ctm.ApplyLinear(vec.Vec2{Y: radius}).Length(),
	)

	n := 1
	if devRadius > strokeFlatness {
		// a chord spanning angle θ deviates from the arc by r(1-cos(θ/2))
		step := 2 * math.Acos(1-strokeFlatness/devRadius)
		if !(step > 0) {
			step = math.Pi / 4
		}
		n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
	}

	i0 := 1
	if includeStart {
		i0 = 0
	}
	dt := sweep / float64(n)
	for i := i0; i <= n; i++ {
		sin, cos := math.Sincos(float64(i) * dt)
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		o.poly = append(o.poly, center.Add(dir.Mul(radius)))
	}
}

// endPolygon moves the current polygon into the output path.
func (o *outliner) endPolygon() {
	if len(o.poly) >= 3 {
		o.out.MoveTo(o.poly[0])
		for _, pt := range o.poly[1:] {
			o.out.LineTo(pt)
		}
		o.out.Close()
	}
	o.poly = o.poly[:0]
}

func (o *outliner) isDashed() bool {
	total := 0.0
	for _, l := range o.st.Dash {
		if l < 0 || math.IsNaN(l) || math.IsInf(l, 0) {
			return false
		}
		total += l
	}
	return total > 0
}

// applyDash splits the flattened sub-paths into dashes.
func (o *outliner) applyDash() {
	o.dashSegs = o.dashSegs[:0]
	o.dashRuns = o.dashRuns[:0]

	dash := o.st.Dash
	n := len(dash)
	period := 0.0
	for _, l := range dash {
		period += l
	}
	if n%2 == 1 {
		period *= 2
	}
	phase := math.Mod(o.st.DashPhase, period)
	if phase < 0 {
		phase += period
	}

	for _, run := range o.runs {
		segs := o.segs[run.start:run.end]

		idx := 0
		dist := phase
		for dist > 0 && dist >= dash[idx%n] {
			dist -= dash[idx%n]
			idx++
		}
		left := dash[idx%n] - dist
		on := idx%2 == 0

		firstRun := len(o.dashRuns)
		cur := len(o.dashSegs) // start of the current dash

		// a zero-length dash at the very start becomes a dot
		if on && left == 0 {
			seg := segs[0]
			o.dashSegs = append(o.dashSegs, strokeSegment{A: seg.A, B: seg.A, T: seg.T, N: seg.N})
			o.dashRuns = append(o.dashRuns, strokeRun{start: cur, end: len(o.dashSegs)})
			cur = len(o.dashSegs)
			firstRun = len(o.dashRuns)
			idx++
			left = dash[idx%n]
			on = idx%2 == 0
		}

		startOn := on
		firstStart, firstEnd := -1, -1

		i, pos := 0, 0.0
		for i < len(segs) {
			seg := segs[i]
			segLen := seg.B.Sub(seg.A).Length()

			if left >= segLen-pos {
				// the current dash element extends past this segment
				if on {
					piece := seg
					if pos > 0 {
						piece.A = seg.at(pos / segLen)
					}
					o.dashSegs = append(o.dashSegs, piece)
				}
				left -= segLen - pos
				i++
				pos = 0
				continue
			}

			end := pos + left
			if on {
				a, b := seg.at(pos/segLen), seg.at(end/segLen)
				if piece, ok := newStrokeSegment(a, b); ok {
					o.dashSegs = append(o.dashSegs, piece)
				} else if len(o.dashSegs) == cur {
					o.dashSegs = append(o.dashSegs, strokeSegment{A: a, B: a, T: seg.T, N: seg.N})
				}
				if len(o.dashSegs) > cur {
					if firstStart < 0 {
						firstStart, firstEnd = cur, len(o.dashSegs)
					}
					o.dashRuns = append(o.dashRuns, strokeRun{start: cur, end: len(o.dashSegs)})
					cur = len(o.dashSegs)
				}
			}
			pos = end
			idx++
			left = dash[idx%n]
			on = idx%2 == 0
		}

		if len(o.dashSegs) == cur {
			continue
		}
		if run.closed && startOn && on && firstStart >= 0 {
			// the last dash continues into the first one
			o.dashSegs = append(o.dashSegs, o.dashSegs[firstStart:firstEnd]...)
			if firstRun < len(o.dashRuns) && o.dashRuns[firstRun].start == firstStart {
				o.dashRuns = slices.Delete(o.dashRuns, firstRun, firstRun+1)
			}
		}
		o.dashRuns = append(o.dashRuns, strokeRun{start: cur, end: len(o.dashSegs)})
	}
}
