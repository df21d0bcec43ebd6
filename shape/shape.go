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

// Package shape implements the editable primitives of a sketch:
// rectangles, circles and lines with a stroke style and a rotation about
// their own center.
//
// All geometry is kept in the unrotated frame of the shape.  Rotation is
// applied on the fly when hit-testing, computing handles and drawing,
// always about the center of the current bounds.
package shape

import (
	"fmt"
	"image/color"
	"math"

	"github.com/google/uuid"
	"seehuhn.de/go/geom/vec"
)

// Kind identifies the variant of a shape.
type Kind int

const (
	Rectangle Kind = iota
	Circle
	Line
)

// String returns the lowercase tool name of the kind.
func (k Kind) String() string {
	switch k {
	case Rectangle:
		return "rectangle"
	case Circle:
		return "circle"
	case Line:
		return "line"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Geometry is the variant-specific payload of a shape.
// It is one of RectangleData, CircleData or LineData.
type Geometry interface {
	Kind() Kind
}

// RectangleData is an axis-aligned rectangle with top-left corner (X, Y).
type RectangleData struct {
	X, Y, W, H float64
}

// Kind implements the Geometry interface.
func (RectangleData) Kind() Kind { return Rectangle }

// CircleData is a circle inscribed in the box with top-left corner
// (X, Y).  The radius R is stored separately; Resize keeps it at
// max(W, H)/2.
type CircleData struct {
	X, Y, W, H, R float64
}

// Kind implements the Geometry interface.
func (CircleData) Kind() Kind { return Circle }

// LineData is the segment from (X1, Y1) to (X2, Y2).
type LineData struct {
	X1, Y1, X2, Y2 float64
}

// Kind implements the Geometry interface.
func (LineData) Kind() Kind { return Line }

// Style describes how a shape is stroked.
type Style struct {
	Color   color.NRGBA // the alpha component is ignored
	Width   float64     // stroke width, positive
	Opacity float64     // 0 (transparent) to 1 (opaque)
}

// StrokeColor returns the stroke colour with the opacity baked into the
// alpha channel.
func (s Style) StrokeColor() color.NRGBA {
	c := s.Color
	c.A = uint8(math.Round(max(0, min(1, s.Opacity)) * 255))
	return c
}

// Bounds is an axis-aligned box in the unrotated frame of a shape.
type Bounds struct {
	X, Y, W, H float64
}

// Center returns the midpoint of the box.
func (b Bounds) Center() vec.Vec2 {
	return vec.Vec2{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Shape is one editable primitive on a layer.
type Shape struct {
	ID       uuid.UUID
	Layer    int     // index of the owning layer
	Style    Style   // stroke style
	Rotation float64 // degrees, clockwise on screen, interpreted mod 360
	Geom     Geometry
}

// DefaultLineTolerance is the distance within which a point counts as
// lying on a line shape.
const DefaultLineTolerance = 5

// New returns a shape with a fresh ID.
func New(g Geometry, style Style, layer int) *Shape {
	return &Shape{
		ID:    uuid.New(),
		Layer: layer,
		Style: style,
		Geom:  g,
	}
}

// NewRectangle returns the rectangle spanned by a drag from (x0, y0) to
// (x1, y1).  Drags in any direction give a non-negative size.
func NewRectangle(x0, y0, x1, y1 float64, style Style, layer int) *Shape {
	g := RectangleData{
		X: min(x0, x1),
		Y: min(y0, y1),
		W: math.Abs(x1 - x0),
		H: math.Abs(y1 - y0),
	}
	return New(g, style, layer)
}

// NewCircle returns the circle centered at (x0, y0) which passes through
// (x1, y1).
func NewCircle(x0, y0, x1, y1 float64, style Style, layer int) *Shape {
	r := math.Hypot(x1-x0, y1-y0)
	g := CircleData{X: x0 - r, Y: y0 - r, W: 2 * r, H: 2 * r, R: r}
	return New(g, style, layer)
}

// NewLine returns the segment from (x0, y0) to (x1, y1).
func NewLine(x0, y0, x1, y1 float64, style Style, layer int) *Shape {
	return New(LineData{X1: x0, Y1: y0, X2: x1, Y2: y1}, style, layer)
}

// FromDrag creates a shape of the given kind from a drag gesture.
// Zero-length drags produce degenerate shapes.
func FromDrag(k Kind, x0, y0, x1, y1 float64, style Style, layer int) (*Shape, error) {
	switch k {
	case Rectangle:
		return NewRectangle(x0, y0, x1, y1, style, layer), nil
	case Circle:
		return NewCircle(x0, y0, x1, y1, style, layer), nil
	case Line:
		return NewLine(x0, y0, x1, y1, style, layer), nil
	default:
		return nil, fmt.Errorf("unknown shape kind %d", int(k))
	}
}

// Kind returns the variant of the shape.
func (s *Shape) Kind() Kind {
	return s.Geom.Kind()
}

// Clone returns a deep copy of s, including its ID.
func (s *Shape) Clone() *Shape {
	c := *s
	return &c
}

// Bounds returns the axis-aligned bounding box in the unrotated frame.
// Rotation is not baked in.
func (s *Shape) Bounds() Bounds {
	switch g := s.Geom.(type) {
	case RectangleData:
		return Bounds{X: g.X, Y: g.Y, W: g.W, H: g.H}
	case CircleData:
		return Bounds{X: g.X, Y: g.Y, W: g.W, H: g.H}
	case LineData:
		x, y := min(g.X1, g.X2), min(g.Y1, g.Y2)
		return Bounds{X: x, Y: y, W: max(g.X1, g.X2) - x, H: max(g.Y1, g.Y2) - y}
	}
	return Bounds{}
}

// Center returns the rotation center, i.e. the center of the current
// bounds.
func (s *Shape) Center() vec.Vec2 {
	return s.Bounds().Center()
}

// Size returns the width and height shown in the property panel.
// For lines these are the absolute coordinate deltas.
func (s *Shape) Size() (w, h float64) {
	b := s.Bounds()
	return b.W, b.H
}

// Anchor returns the anchor point: the top-left corner of the box for
// rectangles and circles, the start point for lines.
func (s *Shape) Anchor() vec.Vec2 {
	switch g := s.Geom.(type) {
	case RectangleData:
		return vec.Vec2{X: g.X, Y: g.Y}
	case CircleData:
		return vec.Vec2{X: g.X, Y: g.Y}
	case LineData:
		return vec.Vec2{X: g.X1, Y: g.Y1}
	}
	return vec.Vec2{}
}

// SetAnchor moves the anchor point without changing the size.  For lines
// the end point stays where it is.
func (s *Shape) SetAnchor(p vec.Vec2) {
	switch g := s.Geom.(type) {
	case RectangleData:
		g.X, g.Y = p.X, p.Y
		s.Geom = g
	case CircleData:
		g.X, g.Y = p.X, p.Y
		s.Geom = g
	case LineData:
		g.X1, g.Y1 = p.X, p.Y
		s.Geom = g
	}
}

// Move translates the shape by (dx, dy).  There is no clamping to the
// canvas.
func (s *Shape) Move(dx, dy float64) {
	switch g := s.Geom.(type) {
	case RectangleData:
		g.X += dx
		g.Y += dy
		s.Geom = g
	case CircleData:
		g.X += dx
		g.Y += dy
		s.Geom = g
	case LineData:
		g.X1 += dx
		g.Y1 += dy
		g.X2 += dx
		g.Y2 += dy
		s.Geom = g
	}
}

// Resize changes the size of the shape, keeping the anchor fixed.
//
// Rectangles and circles take the new width and height directly; a
// circle's radius becomes max(w, h)/2.  A line keeps its direction and
// gets length sqrt(w² + h²), measured from its start point.
func (s *Shape) Resize(w, h float64) {
	switch g := s.Geom.(type) {
	case RectangleData:
		g.W, g.H = w, h
		s.Geom = g
	case CircleData:
		g.W, g.H = w, h
		g.R = max(w, h) / 2
		s.Geom = g
	case LineData:
		angle := math.Atan2(g.Y2-g.Y1, g.X2-g.X1)
		length := math.Hypot(w, h)
		g.X2 = g.X1 + math.Cos(angle)*length
		g.Y2 = g.Y1 + math.Sin(angle)*length
		s.Geom = g
	}
}

// SetRotation sets the rotation in degrees, reduced with math.Mod.
func (s *Shape) SetRotation(deg float64) {
	s.Rotation = WrapDegrees(deg)
}

// Rotate adds delta degrees to the rotation.
func (s *Shape) Rotate(delta float64) {
	s.Rotation = WrapDegrees(s.Rotation + delta)
}

// WrapDegrees reduces an angle modulo 360.  The result keeps the sign of
// the argument.
func WrapDegrees(deg float64) float64 {
	return math.Mod(deg, 360)
}

// ContainsPoint reports whether (px, py) hits the shape, using
// DefaultLineTolerance for lines.
func (s *Shape) ContainsPoint(px, py float64) bool {
	return s.Contains(vec.Vec2{X: px, Y: py}, DefaultLineTolerance)
}

// Contains reports whether p hits the shape.  The point is first rotated
// into the unrotated frame of the shape.  Rectangles use an inclusive box
// test, circles the distance to the box center, and lines the distance to
// the segment, which must be smaller than lineTolerance.
func (s *Shape) Contains(p vec.Vec2, lineTolerance float64) bool {
	q := RotateAbout(p, s.Center(), -s.Rotation)

	switch g := s.Geom.(type) {
	case RectangleData:
		return q.X >= g.X && q.X <= g.X+g.W && q.Y >= g.Y && q.Y <= g.Y+g.H
	case CircleData:
		c := vec.Vec2{X: g.X + g.W/2, Y: g.Y + g.H/2}
		return q.Sub(c).Length() <= g.R
	case LineData:
		a := vec.Vec2{X: g.X1, Y: g.Y1}
		b := vec.Vec2{X: g.X2, Y: g.Y2}
		return segmentDistance(q, a, b) < lineTolerance
	}
	return false
}

// segmentDistance returns the distance from p to the segment a–b.
func segmentDistance(p, a, b vec.Vec2) float64 {
	ab := b.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return p.Sub(a).Length()
	}
	t := p.Sub(a).Dot(ab) / l2
	switch {
	case t < 0:
		return p.Sub(a).Length()
	case t > 1:
		return p.Sub(b).Length()
	}
	return p.Sub(a.Add(ab.Mul(t))).Length()
}

// RotateAbout rotates p about c by deg degrees.  Positive angles turn
// clockwise on a y-down surface.
func RotateAbout(p, c vec.Vec2, deg float64) vec.Vec2 {
	if deg == 0 {
		return p
	}
	sin, cos := math.Sincos(deg * math.Pi / 180)
	d := p.Sub(c)
	return vec.Vec2{
		X: c.X + d.X*cos - d.Y*sin,
		Y: c.Y + d.X*sin + d.Y*cos,
	}
}
