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
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Typesetter stamps text onto surfaces using the Go Regular typeface.
// Faces are created on first use for each pixel size and kept.
//
// A Typesetter is not safe for concurrent use.
type Typesetter struct {
	font  *opentype.Font
	faces map[float64]font.Face
}

// NewTypesetter parses the embedded typeface.
func NewTypesetter() (*Typesetter, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing Go Regular: %w", err)
	}
	return &Typesetter{font: f, faces: make(map[float64]font.Face)}, nil
}

// Stamp draws s with its baseline starting at (x, y), using a face of
// the given pixel size.  The colour's alpha is honoured.
func (t *Typesetter) Stamp(dst *image.RGBA, s string, x, y, size float64, c color.Color) error {
	if size <= 0 {
		return fmt.Errorf("invalid font size %g", size)
	}
	face, err := t.face(size)
	if err != nil {
		return err
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: toFixed(x), Y: toFixed(y)},
	}
	d.DrawString(s)
	return nil
}

func (t *Typesetter) face(size float64) (font.Face, error) {
	if face, ok := t.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(t.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("creating %gpx face: %w", size, err)
	}
	t.faces[size] = face
	return face, nil
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
