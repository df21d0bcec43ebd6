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

package shape

import (
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/sketch/raster"
)

// Outline returns the path of the shape in its unrotated frame.
func (s *Shape) Outline() *path.Data {
	switch g := s.Geom.(type) {
	case RectangleData:
		return raster.RectPath(g.X, g.Y, g.W, g.H)
	case CircleData:
		return raster.CirclePath(g.X+g.W/2, g.Y+g.H/2, g.R)
	case LineData:
		return raster.LinePath(vec.Vec2{X: g.X1, Y: g.Y1}, vec.Vec2{X: g.X2, Y: g.Y2})
	}
	return &path.Data{}
}

// Transform returns the matrix which rotates the unrotated frame about the
// shape's center.
func (s *Shape) Transform() matrix.Matrix {
	return RotationAbout(s.Center(), s.Rotation)
}

// RotationAbout returns the matrix for a rotation by deg degrees about c,
// with the same orientation as RotateAbout.
func RotationAbout(c vec.Vec2, deg float64) matrix.Matrix {
	if deg == 0 {
		return matrix.Identity
	}
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return matrix.Matrix{
		cos, sin,
		-sin, cos,
		c.X - cos*c.X + sin*c.Y,
		c.Y - sin*c.X - cos*c.Y,
	}
}

// Draw strokes the shape onto dst.  The rasteriser's CTM and stroke
// parameters are set for the duration of the call and restored afterwards.
// Shapes are stroked with butt caps and miter joins; nothing is filled.
func (s *Shape) Draw(dst *image.RGBA, r *raster.Rasteriser) {
	ctm, width, cp, join := r.CTM, r.Width, r.Cap, r.Join
	defer func() {
		r.CTM, r.Width, r.Cap, r.Join = ctm, width, cp, join
	}()

	r.CTM = s.Transform()
	r.Width = s.Style.Width
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.Stroke(dst, s.Outline(), s.Style.StrokeColor(), raster.OpOver)
}

// PreviewPath returns the outline shown while a shape of kind k is being
// dragged from (x0, y0) to (x1, y1).  Unlike the committed shape, the
// rectangle preview keeps the signed drag size.
func PreviewPath(k Kind, x0, y0, x1, y1 float64) *path.Data {
	switch k {
	case Rectangle:
		return raster.RectPath(x0, y0, x1-x0, y1-y0)
	case Circle:
		return raster.CirclePath(x0, y0, math.Hypot(x1-x0, y1-y0))
	case Line:
		return raster.LinePath(vec.Vec2{X: x0, Y: y0}, vec.Vec2{X: x1, Y: y1})
	}
	return &path.Data{}
}
