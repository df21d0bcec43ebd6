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

// Package selection implements selecting, moving, resizing and rotating
// shapes with the pointer.
//
// The Controller is a synchronous state machine.  Each pointer event is
// processed completely by [Controller.Handle], which mutates the selected
// shape, redraws the layer the shape lives on and reports the resulting
// state transition.
package selection

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/sketch/layer"
	"seehuhn.de/go/sketch/shape"
)

// EventKind is the type of a pointer event.
type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
	PointerLeave
)

func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerLeave:
		return "leave"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a pointer event in surface coordinates.
type Event struct {
	Kind EventKind
	X, Y float64
}

// Pos returns the event position.
func (e Event) Pos() vec.Vec2 {
	return vec.Vec2{X: e.X, Y: e.Y}
}

// State is the state of the controller.
type State int

const (
	Idle State = iota
	Dragging
	Resizing
	Rotating
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Resizing:
		return "resizing"
	case Rotating:
		return "rotating"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Transition describes the effect of one event.
type Transition struct {
	From, To State

	// Committed is set when a transform gesture ended and the change
	// should be recorded in the history.
	Committed bool

	// Redrawn lists the layer which was redrawn, or -1.
	Redrawn int
}

// Default hit-test tolerances.
const (
	// DefaultHandleTolerance is the half-size of the square around a
	// handle in which the pointer hits it.
	DefaultHandleTolerance = 4
)

// Controller owns the selection of a layer store.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	store *layer.Store

	// HandleTolerance is the half-size of the hit square of handles.
	HandleTolerance float64

	// RotationOffset is the distance of the rotation handle above the
	// top edge of the selected shape.
	RotationOffset float64

	// LineTolerance is the hit distance for lines.
	LineTolerance float64

	// Logger receives debug messages for state changes.
	Logger *slog.Logger

	state    State
	handle   shape.Handle
	selected uuid.UUID
	last     vec.Vec2
	angle    float64 // pointer angle about the center, radians
}

// New returns an idle controller without selection.
func New(store *layer.Store) *Controller {
	return &Controller{
		store:           store,
		HandleTolerance: DefaultHandleTolerance,
		RotationOffset:  shape.DefaultRotationOffset,
		LineTolerance:   shape.DefaultLineTolerance,
		Logger:          slog.New(slog.DiscardHandler),
	}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// ActiveHandle returns the handle being dragged while Resizing.
func (c *Controller) ActiveHandle() shape.Handle {
	return c.handle
}

// Selected returns the selected shape, or nil.  A selection whose shape
// no longer exists in the store reads as no selection.
func (c *Controller) Selected() *shape.Shape {
	if c.selected == uuid.Nil {
		return nil
	}
	return c.store.Find(c.selected)
}

// Select makes sh the selected shape.  A nil shape deselects.
func (c *Controller) Select(sh *shape.Shape) {
	if sh == nil {
		c.Deselect()
		return
	}
	c.selected = sh.ID
}

// Deselect clears the selection and returns to Idle.
func (c *Controller) Deselect() {
	c.selected = uuid.Nil
	c.state = Idle
}

// Handle processes one pointer event.
func (c *Controller) Handle(ev Event) Transition {
	tr := Transition{From: c.state, Redrawn: -1}
	p := ev.Pos()

	switch ev.Kind {
	case PointerDown:
		c.pointerDown(p)
	case PointerMove:
		tr.Redrawn = c.pointerMove(p)
	case PointerUp, PointerLeave:
		if c.state != Idle {
			tr.Committed = true
		}
		c.state = Idle
	}
	c.last = p

	tr.To = c.state
	if tr.From != tr.To {
		c.Logger.Debug("selection state", "event", ev.Kind, "from", tr.From, "to", tr.To)
	}
	return tr
}

func (c *Controller) pointerDown(p vec.Vec2) {
	if sh := c.Selected(); sh != nil {
		if sh.HitRotationHandle(p, c.RotationOffset, c.HandleTolerance) {
			d := p.Sub(sh.Center())
			c.angle = math.Atan2(d.Y, d.X)
			c.state = Rotating
			return
		}
		if h, ok := sh.HitHandle(p, c.HandleTolerance); ok {
			c.handle = h
			c.state = Resizing
			return
		}
	}

	if sh := c.store.HitTest(p.X, p.Y, c.LineTolerance); sh != nil {
		c.selected = sh.ID
		c.state = Dragging
		return
	}
	c.Deselect()
}

// pointerMove applies the active transform and returns the index of the
// redrawn layer, or -1.
func (c *Controller) pointerMove(p vec.Vec2) int {
	sh := c.Selected()
	if sh == nil || c.state == Idle {
		return -1
	}

	switch c.state {
	case Dragging:
		d := p.Sub(c.last)
		sh.Move(d.X, d.Y)
	case Resizing:
		resize(sh, c.handle, p)
	case Rotating:
		d := p.Sub(sh.Center())
		a := math.Atan2(d.Y, d.X)
		sh.Rotate((a - c.angle) * 180 / math.Pi)
		c.angle = a
	}

	if err := c.store.RedrawFromShapes(sh.Layer); err != nil {
		c.Logger.Warn("redraw failed", "layer", sh.Layer, "err", err)
		return -1
	}
	return sh.Layer
}

// resize drags handle h of sh to p.  The edges opposite to the handle stay
// in place.  The anchor only follows the pointer while the resulting
// extent exceeds one unit; extents are never smaller than one.
func resize(sh *shape.Shape, h shape.Handle, p vec.Vec2) {
	b := sh.Bounds()
	anchor := sh.Anchor()
	w, ht := b.W, b.H
	x, y := anchor.X, anchor.Y

	switch h {
	case shape.TopLeft:
		w = b.W + (b.X - p.X)
		ht = b.H + (b.Y - p.Y)
		x, y = p.X, p.Y
	case shape.Top:
		ht = b.H + (b.Y - p.Y)
		y = p.Y
	case shape.TopRight:
		w = p.X - b.X
		ht = b.H + (b.Y - p.Y)
		y = p.Y
	case shape.Right:
		w = p.X - b.X
	case shape.BottomRight:
		w = p.X - b.X
		ht = p.Y - b.Y
	case shape.Bottom:
		ht = p.Y - b.Y
	case shape.BottomLeft:
		w = b.W + (b.X - p.X)
		ht = p.Y - b.Y
		x = p.X
	case shape.Left:
		w = b.W + (b.X - p.X)
		x = p.X
	}

	if w > 1 {
		anchor.X = x
	}
	if ht > 1 {
		anchor.Y = y
	}
	sh.SetAnchor(anchor)
	sh.Resize(max(w, 1), max(ht, 1))
}
