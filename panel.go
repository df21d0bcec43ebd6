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
	"fmt"
	"math"

	"seehuhn.de/go/sketch/layer"
	"seehuhn.de/go/sketch/shape"
)

// SelectedShape returns the selected shape, or nil.
func (s *Session) SelectedShape() *shape.Shape {
	return s.sel.Selected()
}

// SetShapeWidth resizes the selected shape to the given width, keeping its
// height.
func (s *Session) SetShapeWidth(w int) error {
	sh, err := s.selectedForResize(w)
	if err != nil {
		return err
	}
	_, h := sh.Size()
	sh.Resize(float64(w), h)
	return s.commitShapeEdit(sh)
}

// SetShapeHeight resizes the selected shape to the given height, keeping
// its width.
func (s *Session) SetShapeHeight(h int) error {
	sh, err := s.selectedForResize(h)
	if err != nil {
		return err
	}
	w, _ := sh.Size()
	sh.Resize(w, float64(h))
	return s.commitShapeEdit(sh)
}

func (s *Session) selectedForResize(v int) (*shape.Shape, error) {
	sh := s.sel.Selected()
	if sh == nil {
		return nil, ErrNoSelection
	}
	if v < 1 {
		return nil, fmt.Errorf("shape size %d: %w", v, ErrInvalidSize)
	}
	return sh, nil
}

// SetShapeRotation sets the rotation of the selected shape while the
// rotation control is being dragged.  The angle must be finite.  No
// history entry is recorded; call CommitShapeRotation when the control
// is released.
func (s *Session) SetShapeRotation(deg float64) error {
	sh := s.sel.Selected()
	if sh == nil {
		return ErrNoSelection
	}
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return fmt.Errorf("rotation %g: %w", deg, ErrInvalidStyle)
	}
	sh.SetRotation(deg)
	if err := s.store.RedrawFromShapes(sh.Layer); err != nil {
		return err
	}
	s.render()
	return nil
}

// CommitShapeRotation records the rotation set by SetShapeRotation.
func (s *Session) CommitShapeRotation() error {
	if s.sel.Selected() == nil {
		return ErrNoSelection
	}
	s.snapshot()
	return nil
}

// DeleteSelectedShape removes the selected shape and redraws its layer.
func (s *Session) DeleteSelectedShape() error {
	sh := s.sel.Selected()
	if sh == nil {
		return ErrNoSelection
	}
	s.store.RemoveShape(sh.ID)
	s.sel.Deselect()
	if err := s.store.RedrawFromShapes(sh.Layer); err != nil {
		return err
	}
	s.render()
	s.snapshot()
	return nil
}

func (s *Session) commitShapeEdit(sh *shape.Shape) error {
	if err := s.store.RedrawFromShapes(sh.Layer); err != nil {
		return err
	}
	s.render()
	s.snapshot()
	return nil
}

// Layers returns the layer stack, bottom first.  The slice must not be
// modified.
func (s *Session) Layers() []*layer.Layer {
	return s.store.Layers()
}

// ActiveLayer returns the index of the active layer.
func (s *Session) ActiveLayer() int {
	return s.store.ActiveIndex()
}

// AddLayer appends a new layer above all others and makes it active.  An
// empty name selects a default name.
func (s *Session) AddLayer(name string) *layer.Layer {
	l := s.store.CreateLayer(name)
	s.render()
	s.snapshot()
	return l
}

// DeleteLayer removes the active layer.  The only remaining layer cannot
// be deleted.
func (s *Session) DeleteLayer() error {
	if err := s.store.DeleteActive(); err != nil {
		s.log.Warn("delete layer rejected", "err", err)
		return fmt.Errorf("delete layer: %w", err)
	}
	s.render()
	s.snapshot()
	return nil
}

// MergeLayerDown merges the active layer into the layer below it.
func (s *Session) MergeLayerDown() error {
	if err := s.store.MergeActiveDown(); err != nil {
		s.log.Warn("merge rejected", "layer", s.store.ActiveIndex(), "err", err)
		return fmt.Errorf("merge layer: %w", err)
	}
	s.render()
	s.snapshot()
	return nil
}

// ClearLayer erases the active layer and its shapes.
func (s *Session) ClearLayer() {
	s.store.ClearActive()
	if s.sel.Selected() == nil {
		s.sel.Deselect()
	}
	s.render()
	s.snapshot()
}

// SelectLayer makes layer i active.
func (s *Session) SelectLayer(i int) error {
	if err := s.store.SetActive(i); err != nil {
		s.log.Warn("select layer rejected", "err", err)
		return err
	}
	return nil
}

// ToggleLayerVisibility shows or hides layer i.  Visibility changes are
// not recorded in the history by themselves.
func (s *Session) ToggleLayerVisibility(i int) error {
	l := s.store.Layer(i)
	if l == nil {
		err := fmt.Errorf("layer %d: %w", i, layer.ErrNoLayer)
		s.log.Warn("toggle visibility rejected", "err", err)
		return err
	}
	l.Visible = !l.Visible
	s.render()
	return nil
}
