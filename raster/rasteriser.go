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

// Package raster turns vector paths into anti-aliased pixels on RGBA
// surfaces.
//
// Paths are given in user space and mapped to device space by the CTM.
// Filled and stroked outlines are collected as polygons in device space
// and their coverage is accumulated by a [vector.Rasterizer] over the
// clipped bounding box.  The resulting alpha mask is then transferred to
// the destination, either by compositing a colour over it or by erasing
// destination coverage.
package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Op selects how coverage is transferred onto the destination surface.
type Op int

const (
	// OpOver composites the colour over the destination (source-over).
	OpOver Op = iota

	// OpErase scales destination pixels by one minus the coverage
	// (destination-out).  The colour argument is ignored.
	OpErase
)

// Rasteriser fills and strokes paths onto RGBA surfaces.  Create one
// instance and reuse it: internal buffers grow as needed but never shrink.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM transforms from user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds output to this device-coordinate rectangle.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Flatness controls curve approximation accuracy in device pixels.
	// Must be positive.
	Flatness float64

	// Width sets stroke thickness in user-space units.
	Width float64

	// Cap sets the style for stroke endpoints (butt, round, or square).
	Cap graphics.LineCapStyle

	// Join sets the style for stroke corners (miter, round, or bevel).
	Join graphics.LineJoinStyle

	// MiterLimit caps miter join length. Must be at least 1.0.
	MiterLimit float64

	vr   *vector.Rasterizer
	mask *image.Alpha

	// device-space outline polygons, all contiguous in poly
	poly        []vec.Vec2
	polyOffsets []int
	bboxFirst   bool
	devXMin     float64
	devXMax     float64
	devYMin     float64
	devYMax     float64

	// user-space flattening buffers
	pts      []vec.Vec2
	subpaths []subpath
	scratch  []vec.Vec2
}

// subpath is a run of flattened points in Rasteriser.pts.
type subpath struct {
	start, end int
	closed     bool
}

// NewRasteriser returns a Rasteriser with the given clip rectangle and
// default values for the other parameters: identity CTM, unit width,
// butt caps and miter joins.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:        matrix.Identity,
		Clip:       clip,
		Flatness:   defaultFlatness,
		Width:      1,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: defaultMiterLimit,
	}
}

// ForImage returns a Rasteriser clipped to the bounds of img.
func ForImage(img image.Image) *Rasteriser {
	b := img.Bounds()
	return NewRasteriser(rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	})
}

// Fill fills the path using the nonzero winding rule.
func (r *Rasteriser) Fill(dst *image.RGBA, p *path.Data, c color.Color, op Op) {
	r.resetPolygons()
	r.flatten(p)
	for _, sp := range r.subpaths {
		if sp.end-sp.start >= 3 {
			r.addPolygon(r.pts[sp.start:sp.end], false)
		}
	}
	r.paint(dst, c, op)
}

// Disc fills a circle of the given radius around center.
// This is the dab used by round brushes and the eraser.
func (r *Rasteriser) Disc(dst *image.RGBA, center vec.Vec2, radius float64, c color.Color, op Op) {
	r.resetPolygons()
	r.addDisc(center, radius)
	r.paint(dst, c, op)
}

// transform maps a user-space point to device space.
func (r *Rasteriser) transform(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*p.X + r.CTM[2]*p.Y + r.CTM[4],
		Y: r.CTM[1]*p.X + r.CTM[3]*p.Y + r.CTM[5],
	}
}

// transformLinear applies only the 2×2 linear part of the CTM.
// Used for tolerance checks, where translation is irrelevant.
func (r *Rasteriser) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flatten walks the path and stores its subpaths as polylines in user
// space.  Curves are replaced by line segments whose device-space deviation
// stays below Flatness.
func (r *Rasteriser) flatten(p *path.Data) {
	r.pts = r.pts[:0]
	r.subpaths = r.subpaths[:0]
	if p == nil {
		return
	}

	start := -1
	endSubpath := func(closed bool) {
		if start >= 0 && len(r.pts) > start {
			r.subpaths = append(r.subpaths, subpath{start: start, end: len(r.pts), closed: closed})
		}
		start = -1
	}
	emit := func(_, to vec.Vec2) {
		r.pts = append(r.pts, to)
	}

	var current vec.Vec2
	idx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			endSubpath(false)
			current = p.Coords[idx]
			start = len(r.pts)
			r.pts = append(r.pts, current)
			idx++

		case path.CmdLineTo:
			if start < 0 {
				start = len(r.pts)
				r.pts = append(r.pts, current)
			}
			current = p.Coords[idx]
			r.pts = append(r.pts, current)
			idx++

		case path.CmdQuadTo:
			if start < 0 {
				start = len(r.pts)
				r.pts = append(r.pts, current)
			}
			r.flattenQuadratic(current, p.Coords[idx], p.Coords[idx+1], emit)
			current = p.Coords[idx+1]
			idx += 2

		case path.CmdCubeTo:
			if start < 0 {
				start = len(r.pts)
				r.pts = append(r.pts, current)
			}
			r.flattenCubic(current, p.Coords[idx], p.Coords[idx+1], p.Coords[idx+2], emit)
			current = p.Coords[idx+2]
			idx += 3

		case path.CmdClose:
			if start >= 0 {
				current = r.pts[start]
			}
			endSubpath(true)
		}
	}
	endSubpath(false)
}

// flattenQuadratic approximates a quadratic Bézier by line segments.
// The segment count follows from the device-space size of the second
// difference e = (P0 - 2*P1 + P2) / 4.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	n := 1
	if errDev := r.transformLinear(e).Length(); errDev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(errDev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates a cubic Bézier by line segments, using Wang's
// formula n = ceil(sqrt(3*M / (4*ε))) for the segment count, where M is the
// largest device-space second difference of the control polygon.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))
	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * r.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		a := omt * omt * omt
		b := 3 * omt * omt * t
		c := 3 * omt * t * t
		d := t * t * t
		pt := p0.Mul(a).Add(p1.Mul(b)).Add(p2.Mul(c)).Add(p3.Mul(d))
		emit(prev, pt)
		prev = pt
	}
}

// resetPolygons empties the outline buffer.
func (r *Rasteriser) resetPolygons() {
	r.poly = r.poly[:0]
	r.polyOffsets = r.polyOffsets[:0]
	r.bboxFirst = true
}

// addPolygon transforms a closed user-space polygon to device space and
// appends it to the outline buffer.  If normalise is set, the polygon is
// reversed as needed so that all stroke pieces share one orientation;
// overlapping pieces then add up instead of cancelling.
//
// Polygons with (almost) zero area are dropped.
func (r *Rasteriser) addPolygon(pts []vec.Vec2, normalise bool) {
	if len(pts) < 3 {
		return
	}
	first := len(r.poly)
	for _, p := range pts {
		r.poly = append(r.poly, r.transform(p))
	}
	dev := r.poly[first:]

	area := signedArea(dev)
	if math.Abs(area) < zeroAreaThreshold {
		r.poly = r.poly[:first]
		return
	}
	if normalise && area > 0 {
		for i, j := 0, len(dev)-1; i < j; i, j = i+1, j-1 {
			dev[i], dev[j] = dev[j], dev[i]
		}
	}
	r.polyOffsets = append(r.polyOffsets, first)

	for _, p := range dev {
		if r.bboxFirst {
			r.devXMin, r.devXMax = p.X, p.X
			r.devYMin, r.devYMax = p.Y, p.Y
			r.bboxFirst = false
			continue
		}
		r.devXMin = min(r.devXMin, p.X)
		r.devXMax = max(r.devXMax, p.X)
		r.devYMin = min(r.devYMin, p.Y)
		r.devYMax = max(r.devYMax, p.Y)
	}
}

// signedArea returns the shoelace area of a closed polygon.
func signedArea(pts []vec.Vec2) float64 {
	var a float64
	prev := pts[len(pts)-1]
	for _, p := range pts {
		a += prev.X*p.Y - p.X*prev.Y
		prev = p
	}
	return a / 2
}

// polygon returns the i-th device-space polygon of the outline buffer.
func (r *Rasteriser) polygon(i int) []vec.Vec2 {
	start := r.polyOffsets[i]
	end := len(r.poly)
	if i+1 < len(r.polyOffsets) {
		end = r.polyOffsets[i+1]
	}
	return r.poly[start:end]
}

// deviceBounds returns the integer bounding box of the outline buffer,
// clamped to the clip rectangle and to dst.
func (r *Rasteriser) deviceBounds(dst image.Rectangle) image.Rectangle {
	if len(r.polyOffsets) == 0 {
		return image.Rectangle{}
	}
	b := image.Rect(
		int(math.Floor(r.devXMin)),
		int(math.Floor(r.devYMin)),
		int(math.Floor(r.devXMax))+1,
		int(math.Floor(r.devYMax))+1,
	)
	clip := image.Rect(int(r.Clip.LLx), int(r.Clip.LLy), int(r.Clip.URx), int(r.Clip.URy))
	return b.Intersect(clip).Intersect(dst)
}

// paint rasterises the outline buffer into the coverage mask and
// transfers the mask onto dst.
func (r *Rasteriser) paint(dst *image.RGBA, c color.Color, op Op) {
	bbox := r.deviceBounds(dst.Bounds())
	if bbox.Empty() {
		return
	}
	w, h := bbox.Dx(), bbox.Dy()

	if r.vr == nil {
		r.vr = vector.NewRasterizer(w, h)
	} else {
		r.vr.Reset(w, h)
	}
	r.vr.DrawOp = draw.Src

	ox, oy := float64(bbox.Min.X), float64(bbox.Min.Y)
	for i := range r.polyOffsets {
		poly := r.polygon(i)
		r.vr.MoveTo(float32(poly[0].X-ox), float32(poly[0].Y-oy))
		for _, p := range poly[1:] {
			r.vr.LineTo(float32(p.X-ox), float32(p.Y-oy))
		}
		r.vr.ClosePath()
	}

	mask := r.coverageMask(w, h)
	r.vr.Draw(mask, mask.Rect, image.Opaque, image.Point{})

	switch op {
	case OpErase:
		erase(dst, bbox, mask)
	default:
		draw.DrawMask(dst, bbox, image.NewUniform(c), image.Point{}, mask, image.Point{}, draw.Over)
	}
}

// coverageMask returns the reusable w×h alpha mask.  The previous contents
// are not cleared; the caller overwrites every pixel.
func (r *Rasteriser) coverageMask(w, h int) *image.Alpha {
	n := w * h
	if r.mask == nil || cap(r.mask.Pix) < n {
		r.mask = image.NewAlpha(image.Rect(0, 0, w, h))
		return r.mask
	}
	r.mask.Pix = r.mask.Pix[:n]
	r.mask.Stride = w
	r.mask.Rect = image.Rect(0, 0, w, h)
	return r.mask
}

// erase applies destination-out: every channel of the premultiplied
// destination pixel is scaled by (255 - coverage) / 255.
func erase(dst *image.RGBA, bbox image.Rectangle, mask *image.Alpha) {
	w := bbox.Dx()
	for y := range bbox.Dy() {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		off := dst.PixOffset(bbox.Min.X, bbox.Min.Y+y)
		for x, m := range row {
			if m == 0 {
				continue
			}
			keep := uint32(255 - m)
			px := dst.Pix[off+4*x : off+4*x+4 : off+4*x+4]
			for j := range px {
				px[j] = uint8((uint32(px[j])*keep + 127) / 255)
			}
		}
	}
}

// Default values for rasteriser parameters.
const (
	// defaultFlatness is the default curve flattening tolerance in device
	// pixels.  0.25 is below the threshold of visual perception.
	defaultFlatness = 0.25

	// defaultMiterLimit matches the PDF/PostScript and HTML canvas
	// defaults.
	defaultMiterLimit = 10.0
)

// Numerical tolerances.
const (
	// zeroLengthThreshold is the minimum length for a stroke segment.
	zeroLengthThreshold = 1e-10

	// zeroAreaThreshold is the minimum device-space area (in square pixels)
	// for an outline polygon to be kept.
	zeroAreaThreshold = 1e-12

	// collinearityThreshold is used to detect nearly collinear segments
	// where no join is needed.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects a path doubling back on itself.
	// cos(179.43°) ≈ -0.9999
	cuspCosineThreshold = -0.9999
)
