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

package history

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/sketch/layer"
	"seehuhn.de/go/sketch/shape"
)

var blue = shape.Style{Color: color.NRGBA{B: 0xff, A: 0xff}, Width: 3, Opacity: 1}

func TestEmptyManager(t *testing.T) {
	m := New()
	s := layer.New(4, 4)
	assert.Equal(t, -1, m.Cursor())
	assert.False(t, m.Undo(s))
	assert.False(t, m.Redo(s))
	assert.Nil(t, m.Current())
}

func TestDepthLimit(t *testing.T) {
	m := New()
	s := layer.New(4, 4)
	for range 25 {
		m.Snapshot(s)
	}
	assert.Equal(t, DefaultDepth, m.Len())
	assert.Equal(t, DefaultDepth-1, m.Cursor())

	undos := 0
	for m.Undo(s) {
		undos++
	}
	assert.Equal(t, 19, undos)
	assert.Equal(t, 0, m.Cursor())
}

func TestCustomDepth(t *testing.T) {
	m := New(WithDepth(3), WithDepth(0))
	s := layer.New(4, 4)
	for range 5 {
		m.Snapshot(s)
	}
	assert.Equal(t, 3, m.Len())
}

func TestUndoRedoRoundTrip(t *testing.T) {
	s := layer.New(32, 32)
	m := New()
	m.Snapshot(s)
	before := bytes.Clone(s.Layer(0).Surface.Pix)

	sh := shape.NewRectangle(4, 4, 20, 20, blue, 0)
	require.NoError(t, s.AddShape(sh))
	m.Snapshot(s)
	after := bytes.Clone(s.Layer(0).Surface.Pix)
	require.NotEqual(t, before, after)

	require.True(t, m.Undo(s))
	assert.Equal(t, before, s.Layer(0).Surface.Pix)
	assert.Empty(t, s.Layer(0).Shapes)

	require.True(t, m.Redo(s))
	assert.Equal(t, after, s.Layer(0).Surface.Pix)
	require.Len(t, s.Layer(0).Shapes, 1)
	assert.Equal(t, sh.ID, s.Layer(0).Shapes[0].ID)
	assert.NotSame(t, sh, s.Layer(0).Shapes[0])

	assert.False(t, m.Redo(s))
}

func TestRestoreIsIsolated(t *testing.T) {
	s := layer.New(8, 8)
	m := New()
	m.Snapshot(s)
	s.CreateLayer("")
	m.Snapshot(s)

	require.True(t, m.Undo(s))
	// scribbling on the restored surface must not reach the entry
	s.Layer(0).Surface.SetRGBA(1, 1, color.RGBA{A: 0xff})
	require.True(t, m.Redo(s))
	require.True(t, m.Undo(s))
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, s.Layer(0).Surface.RGBAAt(1, 1))
}

func TestSnapshotTruncatesRedo(t *testing.T) {
	s := layer.New(8, 8)
	m := New()
	m.Snapshot(s)
	s.CreateLayer("a")
	m.Snapshot(s)
	s.CreateLayer("b")
	m.Snapshot(s)

	require.True(t, m.Undo(s))
	require.True(t, m.Undo(s))
	assert.Equal(t, 1, s.Len())

	s.CreateLayer("c")
	m.Snapshot(s)
	assert.Equal(t, 2, m.Len())
	assert.False(t, m.CanRedo())
	assert.True(t, m.CanUndo())
}

func TestRestoresStructure(t *testing.T) {
	s := layer.New(8, 8)
	s.CreateLayer("ink")
	require.NoError(t, s.SetVisibility(1, false))
	require.NoError(t, s.SetActive(0))
	m := New()
	m.Snapshot(s)

	require.NoError(t, s.SetActive(1))
	require.NoError(t, s.DeleteActive())
	m.Snapshot(s)

	require.True(t, m.Undo(s))
	require.Equal(t, 2, s.Len())
	assert.Equal(t, "ink", s.Layer(1).Name)
	assert.False(t, s.Layer(1).Visible)
	assert.Equal(t, 0, s.ActiveIndex())
}

func TestPixelOnlySnapshots(t *testing.T) {
	s := layer.New(32, 32)
	m := New(WithShapes(false))
	require.NoError(t, s.AddShape(shape.NewLine(2, 2, 30, 30, blue, 0)))
	m.Snapshot(s)
	s.ClearActive()
	m.Snapshot(s)

	require.True(t, m.Undo(s))
	assert.Empty(t, s.Layer(0).Shapes, "shape lists are not recorded")
	assert.Equal(t, uint8(0xff), s.Layer(0).Surface.RGBAAt(16, 16).B)
	assert.Less(t, s.Layer(0).Surface.RGBAAt(16, 16).R, uint8(0xff))
}
