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
	"image"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/config"
	"seehuhn.de/go/sketch/layer"
	"seehuhn.de/go/sketch/shape"
)

var (
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black = color.RGBA{A: 0xff}
)

func newSession(t *testing.T, tool Tool) *Session {
	t.Helper()
	cfg := config.Default()
	cfg.Canvas.Width = 80
	cfg.Canvas.Height = 60
	s, err := New(cfg)
	require.NoError(t, err)
	s.SetTool(tool)
	return s
}

func gesture(s *Session, pts ...float64) Transition {
	s.HandleEvent(Event{Kind: PointerDown, X: pts[0], Y: pts[1]})
	for i := 2; i+1 < len(pts); i += 2 {
		s.HandleEvent(Event{Kind: PointerMove, X: pts[i], Y: pts[i+1]})
	}
	n := len(pts)
	return s.HandleEvent(Event{Kind: PointerUp, X: pts[n-2], Y: pts[n-1]})
}

func TestNewSession(t *testing.T) {
	s := newSession(t, Brush)
	assert.Equal(t, 1, s.Store().Len())
	assert.Equal(t, 1, s.History().Len())
	assert.False(t, s.CanUndo())
	assert.Equal(t, white, s.Frame().Image.RGBAAt(40, 30))
	assert.Nil(t, s.Frame().Overlay)
}

func TestNewSessionRejectsBadConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Style.Tool = "spray"
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestBrushStrokeAndUndo(t *testing.T) {
	s := newSession(t, Brush)
	tr := gesture(s, 10, 10, 30, 10)
	assert.True(t, tr.Snapshot)
	assert.Equal(t, black, s.Frame().Image.RGBAAt(20, 10))
	assert.Equal(t, 2, s.History().Len())

	require.True(t, s.Undo())
	assert.Equal(t, white, s.Frame().Image.RGBAAt(20, 10))
	require.True(t, s.Redo())
	assert.Equal(t, black, s.Frame().Image.RGBAAt(20, 10))
	assert.False(t, s.Redo())
}

func TestPointerUpWithoutGesture(t *testing.T) {
	s := newSession(t, Pencil)
	tr := s.HandleEvent(Event{Kind: PointerLeave, X: 5, Y: 5})
	assert.False(t, tr.Snapshot)
	assert.Equal(t, 1, s.History().Len())
}

func TestEraser(t *testing.T) {
	s := newSession(t, Eraser)
	require.NoError(t, s.SetLineWidth(10))
	gesture(s, 20, 20, 21, 20)
	assert.Equal(t, uint8(0), s.Store().Layer(0).Surface.RGBAAt(20, 20).A)
	assert.Equal(t, white, s.Store().Layer(0).Surface.RGBAAt(40, 40))
}

func TestHiddenLayerIgnoresGestures(t *testing.T) {
	s := newSession(t, Brush)
	require.NoError(t, s.ToggleLayerVisibility(0))

	tr := s.HandleEvent(Event{Kind: PointerDown, X: 10, Y: 10})
	assert.True(t, tr.Ignored)
	s.HandleEvent(Event{Kind: PointerMove, X: 30, Y: 10})
	tr = s.HandleEvent(Event{Kind: PointerUp, X: 30, Y: 10})
	assert.False(t, tr.Snapshot)
	assert.Equal(t, 1, s.History().Len())
	assert.Equal(t, white, s.Store().Layer(0).Surface.RGBAAt(20, 10))
}

func TestShapeTool(t *testing.T) {
	s := newSession(t, Rectangle)
	s.HandleEvent(Event{Kind: PointerDown, X: 10, Y: 10})
	s.HandleEvent(Event{Kind: PointerMove, X: 40, Y: 30})
	assert.Equal(t, black, s.Frame().Image.RGBAAt(25, 10), "preview is shown")
	assert.Empty(t, s.Store().Layer(0).Shapes, "preview is not committed")

	tr := s.HandleEvent(Event{Kind: PointerUp, X: 40, Y: 30})
	assert.True(t, tr.Snapshot)
	shapes := s.Store().Layer(0).Shapes
	require.Len(t, shapes, 1)
	assert.Equal(t, shape.Bounds{X: 10, Y: 10, W: 30, H: 20}, shapes[0].Bounds())
	assert.Same(t, shapes[0], s.SelectedShape(), "new shapes are selected")
	assert.NotNil(t, s.Frame().Overlay)
	assert.Equal(t, black, s.Frame().Image.RGBAAt(25, 10))
}

func TestSetToolDeselects(t *testing.T) {
	s := newSession(t, Line)
	gesture(s, 10, 10, 50, 50)
	require.NotNil(t, s.SelectedShape())
	s.SetTool(Select)
	assert.NotNil(t, s.SelectedShape())
	s.SetTool(Brush)
	assert.Nil(t, s.SelectedShape())
}

func TestFloodFill(t *testing.T) {
	s := newSession(t, Rectangle)
	gesture(s, 10, 10, 50, 50)
	require.NoError(t, s.SetColor("#ff0000"))
	s.SetTool(Fill)
	tr := gesture(s, 30, 30)
	assert.True(t, tr.Snapshot)

	bg := s.Store().Layer(0).Surface
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, bg.RGBAAt(30, 30))
	assert.Equal(t, white, bg.RGBAAt(5, 5))
	assert.Equal(t, white, bg.RGBAAt(70, 55))
}

func TestSelectDragSnapshotsOnce(t *testing.T) {
	s := newSession(t, Rectangle)
	gesture(s, 10, 10, 30, 30)
	s.SetTool(Select)
	before := s.History().Len()

	tr := gesture(s, 20, 20, 25, 22, 30, 24)
	assert.True(t, tr.Snapshot)
	assert.Equal(t, before+1, s.History().Len())
	assert.Equal(t, shape.Bounds{X: 20, Y: 14, W: 20, H: 20}, s.SelectedShape().Bounds())

	// a plain click on the shape still ends a drag and records an entry
	tr = gesture(s, 30, 24)
	assert.True(t, tr.Snapshot)
	assert.Equal(t, before+2, s.History().Len())
	assert.Equal(t, shape.Bounds{X: 20, Y: 14, W: 20, H: 20}, s.SelectedShape().Bounds())

	// clicking into empty space deselects without a snapshot
	tr = gesture(s, 70, 50)
	assert.False(t, tr.Snapshot)
	assert.Nil(t, s.SelectedShape())
	assert.Equal(t, before+2, s.History().Len())
}

func TestUndoDropsStaleSelection(t *testing.T) {
	s := newSession(t, Circle)
	gesture(s, 40, 30, 50, 30)
	require.NotNil(t, s.SelectedShape())

	require.True(t, s.Undo())
	assert.Nil(t, s.SelectedShape())
	require.True(t, s.Redo())
	assert.Len(t, s.Store().Layer(0).Shapes, 1)
}

func TestText(t *testing.T) {
	s := newSession(t, Text)
	s.HandleEvent(Event{Kind: PointerDown, X: 10, Y: 10})
	anchor, ok := s.PendingText()
	require.True(t, ok)

	assert.False(t, s.CommitText("   ", anchor.X, anchor.Y))
	assert.Equal(t, 1, s.History().Len())

	require.True(t, s.CommitText("Hi", anchor.X, anchor.Y))
	assert.Equal(t, 2, s.History().Len())
	_, ok = s.PendingText()
	assert.False(t, ok)

	dark := 0
	bg := s.Store().Layer(0).Surface
	for y := 10; y < 27; y++ {
		for x := 10; x < 40; x++ {
			if bg.RGBAAt(x, y).R < 0x80 {
				dark++
			}
		}
	}
	assert.Positive(t, dark)
}

func TestStyleInputs(t *testing.T) {
	s := newSession(t, Brush)
	assert.ErrorIs(t, s.SetColor("not a colour"), ErrInvalidStyle)
	assert.ErrorIs(t, s.SetLineWidth(0), ErrInvalidStyle)
	assert.ErrorIs(t, s.SetOpacity(120), ErrInvalidStyle)

	require.NoError(t, s.SetColor("#336699"))
	require.NoError(t, s.SetOpacity(50))
	st := s.Style()
	assert.Equal(t, color.NRGBA{R: 0x33, G: 0x66, B: 0x99, A: 0xff}, st.Color)
	assert.Equal(t, 0.5, st.Opacity)
}

func TestPanel(t *testing.T) {
	s := newSession(t, Rectangle)
	assert.ErrorIs(t, s.SetShapeWidth(10), ErrNoSelection)
	assert.ErrorIs(t, s.DeleteSelectedShape(), ErrNoSelection)

	gesture(s, 10, 10, 30, 30)
	n := s.History().Len()
	assert.ErrorIs(t, s.SetShapeHeight(0), ErrInvalidSize)

	require.NoError(t, s.SetShapeWidth(40))
	require.NoError(t, s.SetShapeHeight(15))
	assert.Equal(t, shape.Bounds{X: 10, Y: 10, W: 40, H: 15}, s.SelectedShape().Bounds())
	assert.Equal(t, n+2, s.History().Len())

	require.NoError(t, s.SetShapeRotation(30))
	require.NoError(t, s.SetShapeRotation(45))
	assert.Equal(t, n+2, s.History().Len(), "live rotation is not recorded")
	require.NoError(t, s.CommitShapeRotation())
	assert.Equal(t, n+3, s.History().Len())
	assert.Equal(t, 45.0, s.SelectedShape().Rotation)

	require.NoError(t, s.DeleteSelectedShape())
	assert.Empty(t, s.Store().Layer(0).Shapes)
	assert.Equal(t, white, s.Store().Layer(0).Surface.RGBAAt(30, 10))
}

func TestLayerActions(t *testing.T) {
	s := newSession(t, Brush)
	assert.ErrorIs(t, s.DeleteLayer(), layer.ErrLastLayer)
	assert.ErrorIs(t, s.MergeLayerDown(), layer.ErrMergeBottom)
	assert.Equal(t, 1, s.History().Len())

	l := s.AddLayer("")
	assert.Equal(t, "Layer 2", l.Name)
	assert.Equal(t, 1, s.ActiveLayer())
	gesture(s, 10, 10, 30, 10)
	assert.Equal(t, white, s.Layers()[0].Surface.RGBAAt(20, 10))
	assert.Equal(t, black, l.Surface.RGBAAt(20, 10))

	require.NoError(t, s.MergeLayerDown())
	assert.Len(t, s.Layers(), 1)
	assert.Equal(t, black, s.Layers()[0].Surface.RGBAAt(20, 10))

	s.AddLayer("scratch")
	require.NoError(t, s.DeleteLayer())
	assert.Equal(t, 0, s.ActiveLayer())

	assert.Error(t, s.SelectLayer(4))
	assert.Error(t, s.ToggleLayerVisibility(4))

	s.ClearLayer()
	assert.Equal(t, white, s.Layers()[0].Surface.RGBAAt(20, 10))
}

func TestExport(t *testing.T) {
	s := newSession(t, Brush)
	gesture(s, 10, 10, 30, 10)

	var buf bytes.Buffer
	require.NoError(t, s.ExportPNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 80, 60), img.Bounds())

	buf.Reset()
	require.NoError(t, s.ExportPDF(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))

	s.Config().Export.Scale = 0.5
	buf.Reset()
	require.NoError(t, s.Export(&buf))
	img, err = png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 40, 30), img.Bounds())
}

func TestDecoratedFrame(t *testing.T) {
	s := newSession(t, Rectangle)
	gesture(s, 20, 20, 60, 40)
	f := s.Frame()
	require.NotNil(t, f.Overlay)
	d := f.Decorated()
	assert.NotEqual(t, f.Image.Pix, d.Pix)

	var buf bytes.Buffer
	require.NoError(t, s.ExportPNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	r, g, b, _ := img.At(40, 5).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b}, "export has no decoration")
}

func TestParseTool(t *testing.T) {
	for i := Brush; i <= Select; i++ {
		got, err := ParseTool(i.String())
		require.NoError(t, err)
		assert.Equal(t, i, got)
	}
	_, err := ParseTool("lasso")
	assert.Error(t, err)
}

func TestToolNamesMatchConfig(t *testing.T) {
	require.Len(t, config.Tools, int(Select)+1)
	for i, name := range config.Tools {
		assert.Equal(t, name, Tool(i).String())
	}
	assert.Equal(t, "Tool(9)", Tool(9).String())
}

func TestShapeRotationMustBeFinite(t *testing.T) {
	s := newSession(t, Rectangle)
	gesture(s, 10, 10, 30, 30)
	require.NoError(t, s.SetShapeRotation(30))

	for _, deg := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.ErrorIs(t, s.SetShapeRotation(deg), ErrInvalidStyle, "rotation %g", deg)
	}
	assert.Equal(t, 30.0, s.SelectedShape().Rotation)
	assert.True(t, s.SelectedShape().ContainsPoint(20, 20))
}

func TestFrameAtScalesOverlay(t *testing.T) {
	s := newSession(t, Rectangle)
	assert.Nil(t, s.FrameAt(160, 120).Overlay)

	gesture(s, 20, 20, 60, 40)
	f := s.Frame()
	require.NotNil(t, f.Overlay)
	assert.Equal(t, vec.Vec2{X: 20, Y: 20}, f.Overlay.Handles[shape.TopLeft])
	assert.Equal(t, vec.Vec2{X: 60, Y: 40}, f.Overlay.Handles[shape.BottomRight])

	big := s.FrameAt(160, 120)
	require.NotNil(t, big.Overlay)
	assert.Same(t, f.Image, big.Image)
	assert.Equal(t, vec.Vec2{X: 40, Y: 40}, big.Overlay.Handles[shape.TopLeft])
	assert.Equal(t, vec.Vec2{X: 120, Y: 80}, big.Overlay.Handles[shape.BottomRight])
	// the rotation handle is 20 surface units above the top edge
	assert.Equal(t, vec.Vec2{X: 80, Y: 0}, big.Overlay.Rotation)

	assert.Equal(t, f.Overlay, s.FrameAt(0, -1).Overlay)
}
