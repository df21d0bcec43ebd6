// seehuhn.de/go/sketch - a layered paint engine
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

package raster

import (
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// strokeSegment is a flattened line segment in user coordinates.
type strokeSegment struct {
	A, B vec.Vec2 // endpoints
	T    vec.Vec2 // unit tangent (A→B direction)
	N    vec.Vec2 // unit normal (90° CCW from T)
}

// Stroke renders the path as a stroked outline using Width, Cap, Join and
// MiterLimit.
//
// The outline is assembled from simple pieces: one quadrilateral per
// segment, one join piece per corner and one cap piece per open end.  All
// pieces are normalised to the same orientation, so that their union
// is painted exactly once.
func (r *Rasteriser) Stroke(dst *image.RGBA, p *path.Data, c color.Color, op Op) {
	r.resetPolygons()
	r.flatten(p)

	d := r.Width / 2
	if d <= 0 {
		return
	}

	var segs []strokeSegment
	for _, sp := range r.subpaths {
		segs = segs[:0]
		pts := r.pts[sp.start:sp.end]
		for i := 1; i < len(pts); i++ {
			segs = appendSegment(segs, pts[i-1], pts[i])
		}
		if sp.closed && len(pts) > 1 {
			segs = appendSegment(segs, pts[len(pts)-1], pts[0])
		}

		if len(segs) == 0 {
			// degenerate subpath: no orientation, only round caps show
			if r.Cap == graphics.LineCapRound {
				r.addDisc(pts[0], d)
			}
			continue
		}

		for i := range segs {
			r.addSegment(&segs[i], d)
		}
		for i := 1; i < len(segs); i++ {
			r.addJoin(segs[i-1].B, segs[i-1].T, segs[i].T, d)
		}
		if sp.closed {
			last := &segs[len(segs)-1]
			r.addJoin(last.B, last.T, segs[0].T, d)
		} else {
			r.addCap(segs[0].A, segs[0].T.Mul(-1), d)
			last := &segs[len(segs)-1]
			r.addCap(last.B, last.T, d)
		}
	}

	r.paint(dst, c, op)
}

// appendSegment appends the segment a→b, skipping zero-length segments.
func appendSegment(segs []strokeSegment, a, b vec.Vec2) []strokeSegment {
	delta := b.Sub(a)
	length := delta.Length()
	if length < zeroLengthThreshold {
		return segs
	}
	t := delta.Mul(1 / length)
	n := vec.Vec2{X: -t.Y, Y: t.X}
	return append(segs, strokeSegment{A: a, B: b, T: t, N: n})
}

// addSegment adds the quadrilateral covering one segment.
func (r *Rasteriser) addSegment(seg *strokeSegment, d float64) {
	off := seg.N.Mul(d)
	r.scratch = append(r.scratch[:0],
		seg.A.Add(off),
		seg.B.Add(off),
		seg.B.Sub(off),
		seg.A.Sub(off),
	)
	r.addPolygon(r.scratch, true)
}

// addCap adds a line cap at P.  T is the outward tangent direction.
func (r *Rasteriser) addCap(P, T vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addDisc(P, d)

	case graphics.LineCapSquare:
		N := vec.Vec2{X: -T.Y, Y: T.X}
		ext := P.Add(T.Mul(d))
		r.scratch = append(r.scratch[:0],
			P.Add(N.Mul(d)),
			ext.Add(N.Mul(d)),
			ext.Sub(N.Mul(d)),
			P.Sub(N.Mul(d)),
		)
		r.addPolygon(r.scratch, true)
	}
	// butt caps need nothing beyond the segment quadrilateral
}

// addJoin fills the gap on the outer side of the corner at P, where the
// tangent changes from T1 to T2.
func (r *Rasteriser) addJoin(P, T1, T2 vec.Vec2, d float64) {
	cosTheta := T1.Dot(T2)
	sinTheta := T1.X*T2.Y - T1.Y*T2.X

	if math.Abs(sinTheta) < collinearityThreshold && cosTheta > 0 {
		return
	}

	if r.Join == graphics.LineJoinRound {
		r.addDisc(P, d)
		return
	}
	if cosTheta < cuspCosineThreshold {
		// the path doubles back; the segment ends already meet
		return
	}

	// A positive sine means the path turns towards +N, so the outer side
	// of the corner is on -N.
	side := 1.0
	if sinTheta > 0 {
		side = -1
	}
	o1 := vec.Vec2{X: -T1.Y, Y: T1.X}.Mul(side * d)
	o2 := vec.Vec2{X: -T2.Y, Y: T2.X}.Mul(side * d)

	if r.Join == graphics.LineJoinMiter {
		// miter length ratio is 1/sin(φ/2) = 1/cos(θ/2)
		sinHalf := math.Sqrt((1 + cosTheta) / 2)
		const miterEpsilon = 1e-10
		bisector := o1.Add(o2)
		if bl := bisector.Length(); sinHalf > 0 && bl > zeroLengthThreshold &&
			1/sinHalf <= r.MiterLimit+miterEpsilon {
			tip := P.Add(bisector.Mul(d / (sinHalf * bl)))
			r.scratch = append(r.scratch[:0], P, P.Add(o1), tip, P.Add(o2))
			r.addPolygon(r.scratch, true)
			return
		}
	}

	// bevel, also used when the miter limit is exceeded
	r.scratch = append(r.scratch[:0], P, P.Add(o1), P.Add(o2))
	r.addPolygon(r.scratch, true)
}

// addDisc adds a polygonal approximation of a circle.  The number of
// vertices is chosen so that the sagitta r*(1 - cos(θ/2)) of each chord
// stays below Flatness in device space.
func (r *Rasteriser) addDisc(center vec.Vec2, radius float64) {
	if radius <= 0 {
		return
	}
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius}).Length(),
		r.transformLinear(vec.Vec2{Y: radius}).Length(),
	)

	n := 8
	if devRadius > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step > 0 && !math.IsNaN(step) {
			n = max(n, int(math.Ceil(2*math.Pi/step)))
		}
	}

	r.scratch = r.scratch[:0]
	for i := range n {
		angle := 2 * math.Pi * float64(i) / float64(n)
		r.scratch = append(r.scratch, vec.Vec2{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		})
	}
	r.addPolygon(r.scratch, true)
}
