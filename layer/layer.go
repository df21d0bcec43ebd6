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

// Package layer holds the ordered stack of raster layers of a sketch,
// together with the shapes which were drawn onto each of them.
//
// Layer 0 is the background.  It is filled with opaque white whenever it
// is created, cleared, or redrawn from its shapes.  The store always
// contains at least one layer, and exactly one layer is active.
package layer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"iter"
	"slices"

	"github.com/google/uuid"
	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/raster"
	"seehuhn.de/go/sketch/shape"
)

var (
	// ErrLastLayer is returned when deleting the only remaining layer.
	ErrLastLayer = errors.New("cannot delete the only layer")

	// ErrMergeBottom is returned when merging down from the bottom layer,
	// or when there is nothing to merge into.
	ErrMergeBottom = errors.New("no layer below to merge into")

	// ErrNoLayer is returned for out-of-range layer indices.
	ErrNoLayer = errors.New("no such layer")
)

// BackgroundName is the name of the layer created by New.
const BackgroundName = "Background"

// Layer is one raster surface of the canvas.
type Layer struct {
	Name    string
	Visible bool
	Surface *image.RGBA

	// Shapes lists the shapes drawn onto this layer, in drawing order.
	Shapes []*shape.Shape
}

// Store is the stack of layers, bottom first.
//
// A Store is not safe for concurrent use.
type Store struct {
	width, height int
	layers        []*Layer
	active        int

	r *raster.Rasteriser
}

// New returns a store of the given canvas size containing only the white
// background layer.
func New(width, height int) *Store {
	s := &Store{width: width, height: height}
	s.r = raster.NewRasteriser(rect.Rect{URx: float64(width), URy: float64(height)})
	s.CreateLayer(BackgroundName)
	return s
}

// Size returns the canvas size.
func (s *Store) Size() (width, height int) {
	return s.width, s.height
}

// Len returns the number of layers.
func (s *Store) Len() int {
	return len(s.layers)
}

// Layer returns the layer at index i, or nil if i is out of range.
func (s *Store) Layer(i int) *Layer {
	if i < 0 || i >= len(s.layers) {
		return nil
	}
	return s.layers[i]
}

// Layers returns the layers bottom to top.  The slice must not be
// modified.
func (s *Store) Layers() []*Layer {
	return s.layers
}

// ActiveIndex returns the index of the active layer.
func (s *Store) ActiveIndex() int {
	return s.active
}

// Active returns the active layer.
func (s *Store) Active() *Layer {
	return s.layers[s.active]
}

// CreateLayer appends a new, transparent layer and makes it active.  The
// first layer of a store is filled with white instead.  An empty name is
// replaced by "Layer N", where N is the new number of layers.
func (s *Store) CreateLayer(name string) *Layer {
	if name == "" {
		name = fmt.Sprintf("Layer %d", len(s.layers)+1)
	}
	l := &Layer{
		Name:    name,
		Visible: true,
		Surface: image.NewRGBA(image.Rect(0, 0, s.width, s.height)),
	}
	if len(s.layers) == 0 {
		fillWhite(l.Surface)
	}
	s.layers = append(s.layers, l)
	s.active = len(s.layers) - 1
	return l
}

// DeleteActive removes the active layer.  The new active layer is the one
// at the same index, or the new top layer if the top was removed.
func (s *Store) DeleteActive() error {
	if len(s.layers) <= 1 {
		return ErrLastLayer
	}
	s.layers = slices.Delete(s.layers, s.active, s.active+1)
	s.active = min(s.active, len(s.layers)-1)
	s.reindex(s.active)
	return nil
}

// MergeActiveDown composites the active layer onto the layer below it,
// moves the shapes across and removes the active layer.  The target layer
// becomes active.  Hidden layers contribute no pixels, but their shapes
// are still moved.
func (s *Store) MergeActiveDown() error {
	if s.active == 0 || len(s.layers) <= 1 {
		return ErrMergeBottom
	}
	src := s.layers[s.active]
	target := s.active - 1
	dst := s.layers[target]

	if src.Visible {
		draw.Draw(dst.Surface, dst.Surface.Bounds(), src.Surface, image.Point{}, draw.Over)
	}
	for _, sh := range src.Shapes {
		sh.Layer = target
	}
	dst.Shapes = append(dst.Shapes, src.Shapes...)

	s.layers = slices.Delete(s.layers, s.active, s.active+1)
	s.active = target
	s.reindex(target)
	return nil
}

// SetVisibility shows or hides layer i.
func (s *Store) SetVisibility(i int, visible bool) error {
	l := s.Layer(i)
	if l == nil {
		return fmt.Errorf("layer %d: %w", i, ErrNoLayer)
	}
	l.Visible = visible
	return nil
}

// SetActive makes layer i the active layer.
func (s *Store) SetActive(i int) error {
	if s.Layer(i) == nil {
		return fmt.Errorf("layer %d: %w", i, ErrNoLayer)
	}
	s.active = i
	return nil
}

// ClearActive erases the active layer and drops its shapes.  The
// background is refilled with white.
func (s *Store) ClearActive() {
	l := s.layers[s.active]
	s.blank(s.active)
	l.Shapes = nil
}

// RedrawFromShapes clears layer i and draws its shapes onto it in list
// order.  Freehand strokes, fills and text on the layer are lost.
func (s *Store) RedrawFromShapes(i int) error {
	l := s.Layer(i)
	if l == nil {
		return fmt.Errorf("layer %d: %w", i, ErrNoLayer)
	}
	s.blank(i)
	for _, sh := range l.Shapes {
		sh.Draw(l.Surface, s.r)
	}
	return nil
}

// AddShape draws sh onto its layer and appends it to the layer's shape
// list.
func (s *Store) AddShape(sh *shape.Shape) error {
	l := s.Layer(sh.Layer)
	if l == nil {
		return fmt.Errorf("shape layer %d: %w", sh.Layer, ErrNoLayer)
	}
	sh.Draw(l.Surface, s.r)
	l.Shapes = append(l.Shapes, sh)
	return nil
}

// RemoveShape removes the shape with the given ID from its layer list and
// returns it.  The layer surface is not changed.
func (s *Store) RemoveShape(id uuid.UUID) (*shape.Shape, bool) {
	for _, l := range s.layers {
		for j, sh := range l.Shapes {
			if sh.ID == id {
				l.Shapes = slices.Delete(l.Shapes, j, j+1)
				return sh, true
			}
		}
	}
	return nil, false
}

// Find returns the shape with the given ID.
func (s *Store) Find(id uuid.UUID) *shape.Shape {
	for _, l := range s.layers {
		for _, sh := range l.Shapes {
			if sh.ID == id {
				return sh
			}
		}
	}
	return nil
}

// ShapesTopDown iterates over the shapes of all visible layers in
// hit-test order: layers from top to bottom, and within each layer the
// most recently drawn shape first.
func (s *Store) ShapesTopDown() iter.Seq[*shape.Shape] {
	return func(yield func(*shape.Shape) bool) {
		for i := len(s.layers) - 1; i >= 0; i-- {
			l := s.layers[i]
			if !l.Visible {
				continue
			}
			for j := len(l.Shapes) - 1; j >= 0; j-- {
				if !yield(l.Shapes[j]) {
					return
				}
			}
		}
	}
}

// HitTest returns the topmost shape on a visible layer which contains p.
func (s *Store) HitTest(px, py, lineTolerance float64) *shape.Shape {
	for sh := range s.ShapesTopDown() {
		if sh.Contains(vec.Vec2{X: px, Y: py}, lineTolerance) {
			return sh
		}
	}
	return nil
}

// Replace installs a new layer stack, as restored from history.
// The active index is clamped to the new stack.
func (s *Store) Replace(layers []*Layer, active int) {
	s.layers = layers
	s.active = max(0, min(active, len(layers)-1))
}

// reindex renumbers the shape layer indices from layer i upwards.
func (s *Store) reindex(from int) {
	for i := from; i < len(s.layers); i++ {
		for _, sh := range s.layers[i].Shapes {
			sh.Layer = i
		}
	}
}

// blank clears layer i, refilling the background with white.
func (s *Store) blank(i int) {
	surf := s.layers[i].Surface
	if i == 0 {
		fillWhite(surf)
		return
	}
	clear(surf.Pix)
}

func fillWhite(img *image.RGBA) {
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
}
