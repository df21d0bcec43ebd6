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

// Package compose flattens a layer stack into one image and computes the
// on-screen geometry of the selection decorations.
package compose

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/layer"
	"seehuhn.de/go/sketch/raster"
	"seehuhn.de/go/sketch/shape"
)

// Render clears out and draws every visible layer of store onto it,
// bottom to top, with source-over compositing.  If preview is not nil, it
// is drawn directly above the active layer, provided that layer is
// visible.
func Render(out *image.RGBA, store *layer.Store, preview *image.RGBA) {
	clear(out.Pix)
	active := store.ActiveIndex()
	for i, l := range store.Layers() {
		if !l.Visible {
			continue
		}
		draw.Draw(out, out.Bounds(), l.Surface, image.Point{}, draw.Over)
		if i == active && preview != nil {
			draw.Draw(out, out.Bounds(), preview, image.Point{}, draw.Over)
		}
	}
}

// Overlay is the selection decoration of a shape in screen coordinates.
type Overlay struct {
	// Box holds the corners of the rotated bounding box, clockwise from
	// the top-left.
	Box [4]vec.Vec2

	// Handles holds the resize handles, indexed by shape.Handle.
	Handles [shape.NumHandles]vec.Vec2

	// Rotation is the position of the rotation handle.
	Rotation vec.Vec2

	// Angle is the rotation of the shape in degrees.
	Angle float64
}

// NewOverlay returns the decoration for sh.  Surface coordinates are
// multiplied by scaleX and scaleY to obtain screen coordinates, for
// surfaces displayed at a size other than their pixel size.  The rotation
// handle sits offset surface units above the top edge.
func NewOverlay(sh *shape.Shape, scaleX, scaleY, offset float64) Overlay {
	sc := func(p vec.Vec2) vec.Vec2 {
		return vec.Vec2{X: p.X * scaleX, Y: p.Y * scaleY}
	}
	ov := Overlay{
		Rotation: sc(sh.RotationHandle(offset)),
		Angle:    sh.Rotation,
	}
	for i, p := range sh.Corners() {
		ov.Box[i] = sc(p)
	}
	for i, p := range sh.Handles() {
		ov.Handles[i] = sc(p)
	}
	return ov
}

// Decoration colours and sizes used by DrawOverlay.
var (
	BoxColor    color.Color = color.NRGBA{R: 0x1e, G: 0x90, B: 0xff, A: 0xff}
	HandleColor color.Color = color.White
)

const (
	handleSize  = 8
	rotateSize  = 5
	borderWidth = 1
)

// DrawOverlay paints ov onto dst: a thin outline through the box corners,
// square handles and a round rotation handle.  The decoration is for
// screen frames and is never part of an export.
func DrawOverlay(dst *image.RGBA, ov Overlay, r *raster.Rasteriser) {
	width := r.Width
	defer func() { r.Width = width }()
	r.Width = borderWidth

	box := &path.Data{}
	box.MoveTo(ov.Box[0])
	for _, p := range ov.Box[1:] {
		box.LineTo(p)
	}
	box.Close()
	r.Stroke(dst, box, BoxColor, raster.OpOver)
	r.Stroke(dst, raster.LinePath(midpoint(ov.Box[0], ov.Box[1]), ov.Rotation), BoxColor, raster.OpOver)

	for _, h := range ov.Handles {
		sq := raster.RectPath(h.X-handleSize/2, h.Y-handleSize/2, handleSize, handleSize)
		r.Fill(dst, sq, HandleColor, raster.OpOver)
		r.Stroke(dst, sq, BoxColor, raster.OpOver)
	}
	r.Disc(dst, ov.Rotation, rotateSize, BoxColor, raster.OpOver)
}

func midpoint(a, b vec.Vec2) vec.Vec2 {
	return a.Add(b).Mul(0.5)
}
