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

package compose

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/layer"
	"seehuhn.de/go/sketch/raster"
	"seehuhn.de/go/sketch/shape"
)

var (
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black = color.RGBA{A: 0xff}
	red   = color.RGBA{R: 0xff, A: 0xff}
)

func TestRenderStack(t *testing.T) {
	s := layer.New(10, 10)
	top := s.CreateLayer("")
	top.Surface.SetRGBA(2, 2, red)
	out := image.NewRGBA(image.Rect(0, 0, 10, 10))
	out.SetRGBA(5, 5, black)

	Render(out, s, nil)
	assert.Equal(t, red, out.RGBAAt(2, 2))
	assert.Equal(t, white, out.RGBAAt(5, 5), "output is cleared first")

	require.NoError(t, s.SetVisibility(1, false))
	Render(out, s, nil)
	assert.Equal(t, white, out.RGBAAt(2, 2))

	require.NoError(t, s.SetVisibility(0, false))
	Render(out, s, nil)
	assert.Equal(t, color.RGBA{}, out.RGBAAt(2, 2))
}

func TestRenderPreviewOrder(t *testing.T) {
	s := layer.New(10, 10)
	s.CreateLayer("")
	above := s.CreateLayer("")
	require.NoError(t, s.SetActive(1))
	above.Surface.SetRGBA(3, 3, red)

	preview := image.NewRGBA(image.Rect(0, 0, 10, 10))
	preview.SetRGBA(3, 3, black)
	preview.SetRGBA(4, 4, black)
	out := image.NewRGBA(image.Rect(0, 0, 10, 10))

	Render(out, s, preview)
	assert.Equal(t, red, out.RGBAAt(3, 3), "layers above the active one cover the preview")
	assert.Equal(t, black, out.RGBAAt(4, 4))

	require.NoError(t, s.SetVisibility(1, false))
	Render(out, s, preview)
	assert.Equal(t, white, out.RGBAAt(4, 4), "hidden active layer hides the preview")
}

func TestOverlayGeometry(t *testing.T) {
	sh := shape.NewRectangle(10, 20, 50, 60, shape.Style{Width: 1, Opacity: 1}, 0)
	ov := NewOverlay(sh, 2, 0.5, shape.DefaultRotationOffset)

	assert.Equal(t, vec.Vec2{X: 20, Y: 10}, ov.Box[0])
	assert.Equal(t, vec.Vec2{X: 100, Y: 30}, ov.Box[2])
	assert.Equal(t, vec.Vec2{X: 60, Y: 10}, ov.Handles[shape.Top])
	assert.Equal(t, vec.Vec2{X: 60, Y: 0}, ov.Rotation)
	assert.Zero(t, ov.Angle)
}

func TestOverlayRotated(t *testing.T) {
	sh := shape.NewRectangle(0, 0, 20, 20, shape.Style{Width: 1, Opacity: 1}, 0)
	sh.SetRotation(180)
	ov := NewOverlay(sh, 1, 1, 10)
	assert.InDelta(t, 20, ov.Box[0].X, 1e-9)
	assert.InDelta(t, 20, ov.Box[0].Y, 1e-9)
	assert.InDelta(t, 10, ov.Rotation.X, 1e-9)
	assert.InDelta(t, 30, ov.Rotation.Y, 1e-9)
	assert.Equal(t, 180.0, ov.Angle)
}

func TestDrawOverlay(t *testing.T) {
	sh := shape.NewRectangle(20, 30, 60, 70, shape.Style{Width: 1, Opacity: 1}, 0)
	ov := NewOverlay(sh, 1, 1, shape.DefaultRotationOffset)
	dst := image.NewRGBA(image.Rect(0, 0, 100, 100))
	r := raster.ForImage(dst)
	r.Width = 3
	DrawOverlay(dst, ov, r)

	assert.Equal(t, white, dst.RGBAAt(20, 30), "handle interior")
	assert.Equal(t, uint8(0xff), dst.RGBAAt(40, 10).A, "rotation handle")
	assert.Equal(t, uint8(0), dst.RGBAAt(40, 50).A, "box interior")
	assert.Equal(t, 3.0, r.Width)
}
