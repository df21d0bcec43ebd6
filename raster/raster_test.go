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
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

var black = color.NRGBA{A: 255}

// pixel is the expected alpha value at (x, y).  The value -1 stands
// for partial coverage, strictly between 0 and 255.
type pixel struct {
	x, y  int
	alpha int
}

func checkPixels(t *testing.T, img *image.RGBA, want []pixel) {
	t.Helper()
	for _, p := range want {
		a := int(img.RGBAAt(p.x, p.y).A)
		switch {
		case p.alpha < 0 && (a == 0 || a == 255):
			t.Errorf("pixel (%d,%d): alpha %d, want partial coverage", p.x, p.y, a)
		case p.alpha >= 0 && a != p.alpha:
			t.Errorf("pixel (%d,%d): alpha %d, want %d", p.x, p.y, a, p.alpha)
		}
	}
}

func TestFill(t *testing.T) {
	cases := []struct {
		name   string
		path   *path.Data
		ctm    matrix.Matrix
		pixels []pixel
	}{
		{
			name: "rect",
			path: RectPath(2, 2, 4, 4),
			pixels: []pixel{
				{0, 0, 0}, {2, 2, 255}, {5, 5, 255}, {6, 6, 0}, {1, 3, 0},
			},
		},
		{
			name: "negative_size",
			path: RectPath(6, 6, -4, -4),
			pixels: []pixel{
				{2, 2, 255}, {5, 5, 255}, {6, 6, 0},
			},
		},
		{
			name: "scaled",
			path: RectPath(1, 1, 2, 2),
			ctm:  matrix.Scale(2, 2),
			pixels: []pixel{
				{1, 1, 0}, {2, 2, 255}, {5, 5, 255}, {6, 6, 0},
			},
		},
		{
			name: "half_pixel",
			path: RectPath(2.5, 2, 3, 4),
			pixels: []pixel{
				{2, 3, -1}, {3, 3, 255}, {4, 3, 255}, {5, 3, -1}, {6, 3, 0},
			},
		},
		{
			name: "circle",
			path: CirclePath(10, 10, 6),
			pixels: []pixel{
				{10, 10, 255}, {7, 7, 255}, {0, 0, 0}, {17, 10, 0}, {2, 2, 0},
			},
		},
		{
			name: "open_path",
			path: (&path.Data{}).
				MoveTo(vec.Vec2{X: 2, Y: 2}).
				LineTo(vec.Vec2{X: 12, Y: 2}).
				LineTo(vec.Vec2{X: 12, Y: 12}),
			pixels: []pixel{
				{10, 5, 255}, {3, 10, 0},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, 20, 20))
			r := ForImage(img)
			if tc.ctm != (matrix.Matrix{}) {
				r.CTM = tc.ctm
			}
			r.Fill(img, tc.path, black, OpOver)
			checkPixels(t, img, tc.pixels)
		})
	}
}

func TestStrokeCaps(t *testing.T) {
	cases := []struct {
		cap    graphics.LineCapStyle
		pixels []pixel
	}{
		{graphics.LineCapButt, []pixel{{4, 10, 0}, {5, 10, 255}, {14, 10, 255}, {15, 10, 0}}},
		{graphics.LineCapSquare, []pixel{{2, 10, 0}, {3, 10, 255}, {16, 10, 255}, {17, 10, 0}}},
		{graphics.LineCapRound, []pixel{{2, 10, 0}, {4, 10, 255}, {16, 10, -1}, {17, 10, 0}}},
	}

	for _, tc := range cases {
		t.Run(tc.cap.String(), func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, 20, 20))
			r := ForImage(img)
			r.Width = 4
			r.Cap = tc.cap
			r.Stroke(img, LinePath(vec.Vec2{X: 5, Y: 10}, vec.Vec2{X: 15, Y: 10}), black, OpOver)
			checkPixels(t, img, append(tc.pixels, pixel{10, 8, 255}, pixel{10, 12, 0}))
		})
	}
}

func TestStrokeJoins(t *testing.T) {
	// The path turns right at (15, 5).  The outer corner is the square
	// [15, 17] × [3, 5].
	corner := (&path.Data{}).
		MoveTo(vec.Vec2{X: 5, Y: 5}).
		LineTo(vec.Vec2{X: 15, Y: 5}).
		LineTo(vec.Vec2{X: 15, Y: 15})

	cases := []struct {
		join  graphics.LineJoinStyle
		alpha int // at pixel (16, 3)
	}{
		{graphics.LineJoinMiter, 255},
		{graphics.LineJoinBevel, 0},
		{graphics.LineJoinRound, -1},
	}

	for _, tc := range cases {
		t.Run(tc.join.String(), func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, 20, 20))
			r := ForImage(img)
			r.Width = 4
			r.Join = tc.join
			r.Stroke(img, corner, black, OpOver)
			checkPixels(t, img, []pixel{
				{16, 3, tc.alpha},
				{15, 5, 255}, // inner corner
				{10, 4, 255},
				{15, 10, 255},
			})
		})
	}
}

func TestStrokeOverlapOpacity(t *testing.T) {
	// A closed square stroked with a translucent colour must not be
	// darker at the corners, where join and segment pieces overlap.
	img := image.NewRGBA(image.Rect(0, 0, 30, 30))
	r := ForImage(img)
	r.Width = 4
	r.Join = graphics.LineJoinRound
	c := color.NRGBA{A: 128}
	r.Stroke(img, RectPath(5, 5, 20, 20), c, OpOver)

	mid := img.RGBAAt(15, 5).A
	corner := img.RGBAAt(5, 5).A
	if mid != corner {
		t.Errorf("corner alpha %d differs from edge alpha %d", corner, mid)
	}
	if mid < 127 || mid > 129 {
		t.Errorf("edge alpha %d, want about 128", mid)
	}
}

func TestDegenerateStroke(t *testing.T) {
	p := LinePath(vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 10, Y: 10})

	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	r := ForImage(img)
	r.Width = 6
	r.Stroke(img, p, black, OpOver)
	if a := img.RGBAAt(10, 10).A; a != 0 {
		t.Errorf("butt cap: alpha %d, want 0", a)
	}

	r.Cap = graphics.LineCapRound
	r.Stroke(img, p, black, OpOver)
	if a := img.RGBAAt(10, 10).A; a != 255 {
		t.Errorf("round cap: alpha %d, want 255", a)
	}
}

func TestClip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	r := NewRasteriser(rect.Rect{URx: 5, URy: 5})
	r.Fill(img, RectPath(-10, -10, 40, 40), black, OpOver)
	checkPixels(t, img, []pixel{{0, 0, 255}, {4, 4, 255}, {5, 5, 0}, {9, 0, 0}})
}

func TestErase(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	r := ForImage(img)
	r.Fill(img, RectPath(0, 0, 10, 10), color.White, OpOver)
	r.Disc(img, vec.Vec2{X: 5, Y: 5}, 3, color.Black, OpErase)

	if got := img.RGBAAt(5, 5); got != (color.RGBA{}) {
		t.Errorf("erased pixel is %v, want transparent", got)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("untouched pixel is %v, want white", got)
	}
	// partially erased pixels keep premultiplied channels consistent
	for x := range 10 {
		c := img.RGBAAt(x, 3)
		if c.R > c.A {
			t.Errorf("pixel (%d,3): red %d exceeds alpha %d", x, c.R, c.A)
		}
	}
}

func TestFloodFill(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	r := ForImage(img)
	r.Fill(img, RectPath(0, 0, 20, 20), color.White, OpOver)
	r.Width = 2
	r.Stroke(img, RectPath(4, 4, 10, 10), black, OpOver)
	img.SetRGBA(8, 8, color.RGBA{R: 252, G: 252, B: 252, A: 255})

	red := color.NRGBA{R: 255, A: 255}
	if !FloodFill(img, 9.5, 9.5, red, DefaultFillTolerance) {
		t.Fatal("fill reported no change")
	}
	want := color.RGBA{R: 255, A: 255}
	for _, p := range []image.Point{{9, 9}, {8, 8}, {6, 6}, {12, 12}} {
		if got := img.RGBAAt(p.X, p.Y); got != want {
			t.Errorf("pixel %v is %v, want red", p, got)
		}
	}
	if got := img.RGBAAt(1, 1); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("outside pixel is %v, want white", got)
	}
	if got := img.RGBAAt(4, 9); got.R != 0 {
		t.Errorf("outline pixel is %v, want black", got)
	}

	if FloodFill(img, 9, 9, red, DefaultFillTolerance) {
		t.Error("refill with the same colour reported a change")
	}
	if FloodFill(img, -1, 5, red, DefaultFillTolerance) || FloodFill(img, 5, 20, red, DefaultFillTolerance) {
		t.Error("fill outside the image reported a change")
	}
}

func TestFloodFillUniform(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 17, 11))
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for y := range 11 {
		for x := range 17 {
			img.SetRGBA(x, y, white)
		}
	}

	if !FloodFill(img, 3, 7, color.NRGBA{G: 128, A: 255}, DefaultFillTolerance) {
		t.Fatal("fill reported no change")
	}
	want := color.RGBA{G: 128, A: 255}
	for y := range 11 {
		for x := range 17 {
			if got := img.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) is %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestTypesetter(t *testing.T) {
	ts, err := NewTypesetter()
	if err != nil {
		t.Fatal(err)
	}

	img := image.NewRGBA(image.Rect(0, 0, 40, 30))
	if err := ts.Stamp(img, "H", 2, 20, 16, black); err != nil {
		t.Fatal(err)
	}
	var inked, below int
	for y := range 30 {
		for x := range 40 {
			if img.RGBAAt(x, y).A == 0 {
				continue
			}
			inked++
			if y > 20 {
				below++
			}
		}
	}
	if inked == 0 {
		t.Error("no pixels were drawn")
	}
	if below != 0 {
		t.Errorf("%d pixels below the baseline of an H", below)
	}

	// a larger face inks more pixels
	big := image.NewRGBA(image.Rect(0, 0, 40, 30))
	if err := ts.Stamp(big, "H", 2, 28, 24, black); err != nil {
		t.Fatal(err)
	}
	if n := countInked(big); n <= inked {
		t.Errorf("24px H inks %d pixels, 16px H inks %d", n, inked)
	}

	if err := ts.Stamp(img, "x", 0, 10, 0, black); err == nil {
		t.Error("size 0 was accepted")
	}
}

func countInked(img *image.RGBA) int {
	n := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			n++
		}
	}
	return n
}

func BenchmarkBrushStroke(b *testing.B) {
	img := image.NewRGBA(image.Rect(0, 0, 800, 600))
	r := ForImage(img)
	r.Width = 5
	r.Cap = graphics.LineCapRound
	r.Join = graphics.LineJoinRound
	c := color.NRGBA{R: 200, A: 255}

	b.ReportAllocs()
	for b.Loop() {
		for i := range 50 {
			x := float64(10 + 15*i)
			r.Stroke(img, LinePath(vec.Vec2{X: x, Y: 100}, vec.Vec2{X: x + 15, Y: 140}), c, OpOver)
		}
	}
}

func BenchmarkFloodFill(b *testing.B) {
	img := image.NewRGBA(image.Rect(0, 0, 800, 600))
	colours := []color.NRGBA{{R: 255, A: 255}, {B: 255, A: 255}}

	b.ReportAllocs()
	i := 0
	for b.Loop() {
		FloodFill(img, 400, 300, colours[i%2], DefaultFillTolerance)
		i++
	}
}
