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
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Handle names one of the eight resize handles on the bounding box.
type Handle int

// The handles, in hit-test order.
const (
	TopLeft Handle = iota
	Top
	TopRight
	Right
	BottomRight
	Bottom
	BottomLeft
	Left

	NumHandles = 8
)

func (h Handle) String() string {
	switch h {
	case TopLeft:
		return "tl"
	case Top:
		return "t"
	case TopRight:
		return "tr"
	case Right:
		return "r"
	case BottomRight:
		return "br"
	case Bottom:
		return "b"
	case BottomLeft:
		return "bl"
	case Left:
		return "l"
	default:
		return fmt.Sprintf("Handle(%d)", int(h))
	}
}

// DefaultRotationOffset is the distance of the rotation handle above the
// top edge of the bounds.
const DefaultRotationOffset = 20

// Corners returns the four corners of the bounds (tl, tr, br, bl),
// rotated about the center.
func (s *Shape) Corners() [4]vec.Vec2 {
	b := s.Bounds()
	c := b.Center()
	pts := [4]vec.Vec2{
		{X: b.X, Y: b.Y},
		{X: b.X + b.W, Y: b.Y},
		{X: b.X + b.W, Y: b.Y + b.H},
		{X: b.X, Y: b.Y + b.H},
	}
	for i := range pts {
		pts[i] = RotateAbout(pts[i], c, s.Rotation)
	}
	return pts
}

// Handles returns the positions of the resize handles, indexed by Handle,
// rotated about the center.
func (s *Shape) Handles() [NumHandles]vec.Vec2 {
	b := s.Bounds()
	c := b.Center()
	x0, x1, x2 := b.X, b.X+b.W/2, b.X+b.W
	y0, y1, y2 := b.Y, b.Y+b.H/2, b.Y+b.H
	pts := [NumHandles]vec.Vec2{
		TopLeft:     {X: x0, Y: y0},
		Top:         {X: x1, Y: y0},
		TopRight:    {X: x2, Y: y0},
		Right:       {X: x2, Y: y1},
		BottomRight: {X: x2, Y: y2},
		Bottom:      {X: x1, Y: y2},
		BottomLeft:  {X: x0, Y: y2},
		Left:        {X: x0, Y: y1},
	}
	for i := range pts {
		pts[i] = RotateAbout(pts[i], c, s.Rotation)
	}
	return pts
}

// RotationHandle returns the position of the rotation handle: offset above
// the middle of the top edge, rotated about the center.
func (s *Shape) RotationHandle(offset float64) vec.Vec2 {
	b := s.Bounds()
	c := b.Center()
	return RotateAbout(vec.Vec2{X: c.X, Y: b.Y - offset}, c, s.Rotation)
}

// HitHandle returns the first handle whose square of half-size tol
// contains p.
func (s *Shape) HitHandle(p vec.Vec2, tol float64) (Handle, bool) {
	for i, h := range s.Handles() {
		if nearSquare(p, h, tol) {
			return Handle(i), true
		}
	}
	return 0, false
}

// HitRotationHandle reports whether p lies within the square of half-size
// tol around the rotation handle.
func (s *Shape) HitRotationHandle(p vec.Vec2, offset, tol float64) bool {
	return nearSquare(p, s.RotationHandle(offset), tol)
}

func nearSquare(p, q vec.Vec2, tol float64) bool {
	return math.Abs(p.X-q.X) <= tol && math.Abs(p.Y-q.Y) <= tol
}
