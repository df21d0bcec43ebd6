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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa is the control point distance for approximating a quarter circle
// of unit radius by a cubic Bézier curve.
const kappa = 0.5522847498307936

// RectPath returns the closed outline of the rectangle with corner (x, y)
// and the given (possibly negative) width and height.
func RectPath(x, y, w, h float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x, Y: y}).
		LineTo(vec.Vec2{X: x + w, Y: y}).
		LineTo(vec.Vec2{X: x + w, Y: y + h}).
		LineTo(vec.Vec2{X: x, Y: y + h}).
		Close()
}

// CirclePath returns a closed circle around (cx, cy), built from four
// cubic arcs.  It starts on the positive x-axis.
func CirclePath(cx, cy, r float64) *path.Data {
	k := r * kappa
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: cx + r, Y: cy}).
		CubeTo(vec.Vec2{X: cx + r, Y: cy + k}, vec.Vec2{X: cx + k, Y: cy + r}, vec.Vec2{X: cx, Y: cy + r}).
		CubeTo(vec.Vec2{X: cx - k, Y: cy + r}, vec.Vec2{X: cx - r, Y: cy + k}, vec.Vec2{X: cx - r, Y: cy}).
		CubeTo(vec.Vec2{X: cx - r, Y: cy - k}, vec.Vec2{X: cx - k, Y: cy - r}, vec.Vec2{X: cx, Y: cy - r}).
		CubeTo(vec.Vec2{X: cx + k, Y: cy - r}, vec.Vec2{X: cx + r, Y: cy - k}, vec.Vec2{X: cx + r, Y: cy}).
		Close()
}

// LinePath returns the open segment a→b.
func LinePath(a, b vec.Vec2) *path.Data {
	return (&path.Data{}).MoveTo(a).LineTo(b)
}
