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
)

// DefaultFillTolerance is the per-channel colour distance up to which a
// pixel counts as part of the region being filled.
const DefaultFillTolerance = 5

// FloodFill recolours the 4-connected region of img around the seed
// (x, y).  A pixel belongs to the region if each of its red, green and
// blue components (unpremultiplied) differs from the seed colour by at
// most tolerance; alpha is ignored.  Filled pixels are set to the RGB of
// c with full opacity.
//
// The seed coordinates are floored.  FloodFill returns false and leaves
// img untouched if the seed lies outside img, or if the seed colour
// already matches c within tolerance.
func FloodFill(img *image.RGBA, x, y float64, c color.Color, tolerance int) bool {
	b := img.Bounds()
	seed := image.Point{X: int(math.Floor(x)), Y: int(math.Floor(y))}
	if !seed.In(b) {
		return false
	}

	fill := color.NRGBAModel.Convert(c).(color.NRGBA)
	fill.A = 0xff
	target := unpremultiplied(img, seed.X, seed.Y)
	if colorsMatch(target, fill, tolerance) {
		return false
	}

	stack := []image.Point{seed}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !p.In(b) || !colorsMatch(unpremultiplied(img, p.X, p.Y), target, tolerance) {
			continue
		}
		i := img.PixOffset(p.X, p.Y)
		img.Pix[i] = fill.R
		img.Pix[i+1] = fill.G
		img.Pix[i+2] = fill.B
		img.Pix[i+3] = 0xff

		stack = append(stack,
			image.Point{X: p.X + 1, Y: p.Y},
			image.Point{X: p.X - 1, Y: p.Y},
			image.Point{X: p.X, Y: p.Y + 1},
			image.Point{X: p.X, Y: p.Y - 1},
		)
	}
	return true
}

// unpremultiplied returns the straight-alpha colour of the pixel at (x, y).
func unpremultiplied(img *image.RGBA, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.RGBAAt(x, y)).(color.NRGBA)
}

// colorsMatch compares the RGB components of two colours.
func colorsMatch(a, b color.NRGBA, tolerance int) bool {
	return absDiff(a.R, b.R) <= tolerance &&
		absDiff(a.G, b.G) <= tolerance &&
		absDiff(a.B, b.B) <= tolerance
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
