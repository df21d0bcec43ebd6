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

// Package history implements linear undo and redo over full copies of the
// layer stack.
//
// Every committed user action records one snapshot.  The manager keeps a
// bounded list of snapshots and a cursor.  Recording a snapshot discards
// everything after the cursor, appends the copy and evicts the oldest
// entries beyond the depth limit; afterwards the cursor is always on the
// newest entry.
package history

import (
	"image"

	"github.com/anthonynsimon/bild/clone"

	"seehuhn.de/go/sketch/layer"
	"seehuhn.de/go/sketch/shape"
)

// DefaultDepth is the default number of snapshots kept.
const DefaultDepth = 20

// Snapshot is an immutable copy of a layer stack.
type Snapshot struct {
	Layers []LayerState
	Active int
}

// LayerState is the recorded state of one layer.
type LayerState struct {
	Name    string
	Visible bool
	Surface *image.RGBA
	Shapes  []*shape.Shape
}

// Manager records snapshots of a layer store.
//
// A Manager is not safe for concurrent use.
type Manager struct {
	depth         int
	restoreShapes bool

	entries []*Snapshot
	cursor  int
}

// Option configures a Manager.
type Option func(*Manager)

// WithDepth sets the maximum number of snapshots.  Values below one are
// ignored.
func WithDepth(n int) Option {
	return func(m *Manager) {
		if n >= 1 {
			m.depth = n
		}
	}
}

// WithShapes controls whether snapshots record and restore the shape
// lists.  If disabled, only pixels are restored and the shape lists of
// restored layers are empty.
func WithShapes(enabled bool) Option {
	return func(m *Manager) {
		m.restoreShapes = enabled
	}
}

// New returns an empty manager.  By default it keeps DefaultDepth
// snapshots and restores shapes.
func New(opts ...Option) *Manager {
	m := &Manager{
		depth:         DefaultDepth,
		restoreShapes: true,
		cursor:        -1,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Snapshot records the current state of store.
func (m *Manager) Snapshot(store *layer.Store) {
	m.entries = m.entries[:m.cursor+1]
	m.entries = append(m.entries, m.capture(store))
	if over := len(m.entries) - m.depth; over > 0 {
		clear(m.entries[:over])
		m.entries = m.entries[over:]
	}
	m.cursor = len(m.entries) - 1
}

// Undo restores the previous snapshot into store.  It returns false and
// leaves store unchanged if there is nothing to undo.
func (m *Manager) Undo(store *layer.Store) bool {
	if !m.CanUndo() {
		return false
	}
	m.cursor--
	m.restore(store, m.entries[m.cursor])
	return true
}

// Redo restores the next snapshot into store.  It returns false and
// leaves store unchanged if there is nothing to redo.
func (m *Manager) Redo(store *layer.Store) bool {
	if !m.CanRedo() {
		return false
	}
	m.cursor++
	m.restore(store, m.entries[m.cursor])
	return true
}

// Len returns the number of snapshots kept.
func (m *Manager) Len() int { return len(m.entries) }

// Cursor returns the index of the current snapshot, or -1 if none was
// recorded.
func (m *Manager) Cursor() int { return m.cursor }

// CanUndo reports whether Undo would succeed.
func (m *Manager) CanUndo() bool { return m.cursor > 0 }

// CanRedo reports whether Redo would succeed.
func (m *Manager) CanRedo() bool { return m.cursor < len(m.entries)-1 }

// Current returns the snapshot at the cursor, or nil.
func (m *Manager) Current() *Snapshot {
	if m.cursor < 0 {
		return nil
	}
	return m.entries[m.cursor]
}

func (m *Manager) capture(store *layer.Store) *Snapshot {
	src := store.Layers()
	snap := &Snapshot{
		Layers: make([]LayerState, len(src)),
		Active: store.ActiveIndex(),
	}
	for i, l := range src {
		st := LayerState{
			Name:    l.Name,
			Visible: l.Visible,
			Surface: clone.AsRGBA(l.Surface),
		}
		if m.restoreShapes {
			st.Shapes = cloneShapes(l.Shapes)
		}
		snap.Layers[i] = st
	}
	return snap
}

// restore replaces the layers of store by fresh copies of snap, so that
// later edits never reach the recorded entry.
func (m *Manager) restore(store *layer.Store, snap *Snapshot) {
	layers := make([]*layer.Layer, len(snap.Layers))
	for i, st := range snap.Layers {
		l := &layer.Layer{
			Name:    st.Name,
			Visible: st.Visible,
			Surface: clone.AsRGBA(st.Surface),
		}
		if m.restoreShapes {
			l.Shapes = cloneShapes(st.Shapes)
		}
		layers[i] = l
	}
	store.Replace(layers, snap.Active)
}

func cloneShapes(in []*shape.Shape) []*shape.Shape {
	if len(in) == 0 {
		return nil
	}
	out := make([]*shape.Shape, len(in))
	for i, sh := range in {
		out[i] = sh.Clone()
	}
	return out
}
