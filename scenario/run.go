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

package scenario

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/config"
)

var (
	// ErrIgnored is reported for a gesture on a hidden layer.
	ErrIgnored = errors.New("gesture ignored")

	// ErrRejected is reported when the session refused an action which
	// has no error return, like an undo with nothing to undo.
	ErrRejected = errors.New("action rejected")
)

// NewSession creates a session for sc.  The canvas size of sc, if set,
// overrides the one in cfg.  A nil cfg selects the defaults.
func NewSession(cfg *config.Config, sc Scenario, opts ...sketch.Option) (*sketch.Session, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	c := *cfg
	if sc.Width > 0 {
		c.Canvas.Width = sc.Width
	}
	if sc.Height > 0 {
		c.Canvas.Height = sc.Height
	}
	return sketch.New(&c, opts...)
}

// Run replays the steps of sc.  It stops at the first step which fails
// unexpectedly, or which unexpectedly succeeds.
func Run(s *sketch.Session, sc Scenario) error {
	for i, st := range sc.Steps {
		err := apply(s, st)
		switch {
		case st.Fails && err == nil:
			return fmt.Errorf("%s: step %d (%s): expected failure", sc.Name, i+1, st.Action)
		case !st.Fails && err != nil:
			return fmt.Errorf("%s: step %d (%s): %w", sc.Name, i+1, st.Action, err)
		}
	}
	return nil
}

// Summarize returns the current state of s in the form of a Result.
func Summarize(s *sketch.Session) Result {
	res := Result{
		Layers:  len(s.Layers()),
		History: s.History().Len(),
	}
	for _, l := range s.Layers() {
		res.Shapes += len(l.Shapes)
	}
	return res
}

// Check compares the state of s to sc.Want.
func Check(s *sketch.Session, sc Scenario) error {
	if sc.Want == nil {
		return nil
	}
	got := Summarize(s)
	if got != *sc.Want {
		return fmt.Errorf("%s: got %d layers, %d shapes, %d history entries; want %d, %d, %d",
			sc.Name, got.Layers, got.Shapes, got.History,
			sc.Want.Layers, sc.Want.Shapes, sc.Want.History)
	}
	return nil
}

func apply(s *sketch.Session, st Step) error {
	switch st.Action {
	case SetTool:
		t, err := sketch.ParseTool(st.Tool)
		if err != nil {
			return err
		}
		s.SetTool(t)
		return nil
	case SetColor:
		return s.SetColor(st.Color)
	case SetWidth:
		return s.SetLineWidth(round(st.Value))
	case SetOpacity:
		return s.SetOpacity(round(st.Value))

	case Drag:
		return drive(s, st.Points, st.Leave)
	case TypeText:
		if len(st.Points) != 2 {
			return fmt.Errorf("text needs one anchor point, got %d values", len(st.Points))
		}
		if err := drive(s, st.Points, false); err != nil {
			return err
		}
		anchor, ok := s.PendingText()
		if !ok {
			return fmt.Errorf("no text anchor for tool %s", s.Tool())
		}
		if !s.CommitText(st.Text, anchor.X, anchor.Y) {
			return ErrRejected
		}
		return nil

	case AddLayer:
		s.AddLayer(st.Name)
		return nil
	case DeleteLayer:
		return s.DeleteLayer()
	case MergeDown:
		return s.MergeLayerDown()
	case ClearLayer:
		s.ClearLayer()
		return nil
	case SelectLayer:
		return s.SelectLayer(st.Layer)
	case ToggleLayer:
		return s.ToggleLayerVisibility(st.Layer)

	case Undo:
		if !s.Undo() {
			return ErrRejected
		}
		return nil
	case Redo:
		if !s.Redo() {
			return ErrRejected
		}
		return nil

	case ShapeWidth:
		return s.SetShapeWidth(round(st.Value))
	case ShapeHeight:
		return s.SetShapeHeight(round(st.Value))
	case ShapeRotate:
		if err := s.SetShapeRotation(st.Value); err != nil {
			return err
		}
		return s.CommitShapeRotation()
	case DeleteShape:
		return s.DeleteSelectedShape()
	}
	return fmt.Errorf("unknown action %q", st.Action)
}

// drive sends a pointer gesture through the given x, y pairs.
func drive(s *sketch.Session, pts []float64, leave bool) error {
	if len(pts) < 2 || len(pts)%2 != 0 {
		return fmt.Errorf("invalid point list of length %d", len(pts))
	}
	n := len(pts) / 2
	at := func(k sketch.EventKind, i int) sketch.Event {
		return sketch.Event{Kind: k, X: pts[2*i], Y: pts[2*i+1]}
	}

	if tr := s.HandleEvent(at(sketch.PointerDown, 0)); tr.Ignored {
		return ErrIgnored
	}
	for i := 1; i < n; i++ {
		s.HandleEvent(at(sketch.PointerMove, i))
	}
	end := sketch.PointerUp
	if leave {
		end = sketch.PointerLeave
	}
	s.HandleEvent(at(end, n-1))
	return nil
}

func round(x float64) int {
	return int(math.Round(x))
}
