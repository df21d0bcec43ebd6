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

package sketch

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"
	"github.com/jung-kurt/gofpdf"

	"seehuhn.de/go/sketch/compose"
	"seehuhn.de/go/sketch/raster"
)

// Export writes the flattened drawing in the configured export format.
func (s *Session) Export(w io.Writer) error {
	switch s.cfg.Export.Format {
	case "pdf":
		return s.ExportPDF(w)
	default:
		return s.ExportPNG(w)
	}
}

// ExportPNG writes the flattened drawing as a PNG image.  Selection
// decorations are not included.
func (s *Session) ExportPNG(w io.Writer) error {
	return png.Encode(w, s.exportImage())
}

// ExportPDF writes the flattened drawing as a one-page PDF file.  The
// page is as large as the exported image, at one point per pixel.
func (s *Session) ExportPDF(w io.Writer) error {
	img := s.exportImage()
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return err
	}

	b := img.Bounds()
	pw, ph := float64(b.Dx()), float64(b.Dy())
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: pw, Ht: ph},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	opt := gofpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader("drawing", opt, buf)
	doc.ImageOptions("drawing", 0, 0, pw, ph, false, opt, 0, "")
	if err := doc.Output(w); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}

// exportImage returns a copy of the composited drawing, resampled by the
// configured export scale.
func (s *Session) exportImage() *image.RGBA {
	s.render()
	scale := s.cfg.Export.Scale
	if scale == 1 || scale <= 0 {
		return clone.AsRGBA(s.out)
	}
	b := s.out.Bounds()
	w := max(1, int(math.Round(float64(b.Dx())*scale)))
	h := max(1, int(math.Round(float64(b.Dy())*scale)))
	return transform.Resize(s.out, w, h, transform.CatmullRom)
}

// Decorated returns a copy of the frame image with the selection
// decoration painted on top.  The decoration must be in surface
// coordinates, as returned by Session.Frame.
func (f Frame) Decorated() *image.RGBA {
	img := clone.AsRGBA(f.Image)
	if f.Overlay != nil {
		compose.DrawOverlay(img, *f.Overlay, raster.ForImage(img))
	}
	return img
}
