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

// Package scenario holds scripted editing sessions.
//
// A scenario is a list of steps, each one user action: choosing a tool or
// style, a pointer gesture, a layer or property panel action, undo or
// redo.  Scenarios are replayed against a [sketch.Session] by [Run].  The
// built-in scenarios in [All] are used by the tests and by the sketch
// command; further scenarios can be read from TOML files with [Decode].
package scenario

// Scenario is a named editing script.
type Scenario struct {
	Name   string `toml:"name"`   // lowercase a-z and _ only
	Width  int    `toml:"width"`  // canvas width in pixels, 0 for the default
	Height int    `toml:"height"` // canvas height in pixels, 0 for the default
	Steps  []Step `toml:"step"`

	// Want describes the expected final state.  Nil means unchecked.
	Want *Result `toml:"want,omitempty"`
}

// Result summarises the state of a session after a scenario.
type Result struct {
	Layers  int `toml:"layers"`  // number of layers
	Shapes  int `toml:"shapes"`  // number of shapes over all layers
	History int `toml:"history"` // number of history entries
}

// Action names the kind of a step.
type Action string

// The step actions.  The fields of Step used by each action are listed in
// parentheses.
const (
	SetTool     Action = "tool"    // (Tool)
	SetColor    Action = "color"   // (Color)
	SetWidth    Action = "width"   // (Value)
	SetOpacity  Action = "opacity" // (Value, percent)
	Drag        Action = "drag"    // (Points, Leave)
	TypeText    Action = "text"    // (Points: anchor, Text)
	AddLayer    Action = "add_layer"
	DeleteLayer Action = "delete_layer"
	MergeDown   Action = "merge_down"
	ClearLayer  Action = "clear_layer"
	SelectLayer Action = "select_layer" // (Layer)
	ToggleLayer Action = "toggle_layer" // (Layer)
	Undo        Action = "undo"
	Redo        Action = "redo"
	ShapeWidth  Action = "shape_width"    // (Value)
	ShapeHeight Action = "shape_height"   // (Value)
	ShapeRotate Action = "shape_rotation" // (Value)
	DeleteShape Action = "delete_shape"
)

// Step is one user action.
type Step struct {
	Action Action `toml:"action"`

	Tool  string  `toml:"tool,omitempty"`
	Color string  `toml:"color,omitempty"`
	Value float64 `toml:"value,omitempty"`
	Name  string  `toml:"name,omitempty"`
	Text  string  `toml:"text,omitempty"`
	Layer int     `toml:"layer,omitempty"`

	// Points lists pointer positions as x, y pairs.  A drag presses at the
	// first position, moves through the others and releases at the last.
	Points []float64 `toml:"points,omitempty"`

	// Leave ends a drag by leaving the surface instead of releasing.
	Leave bool `toml:"leave,omitempty"`

	// Fails marks a step which the session is expected to reject.
	Fails bool `toml:"fails,omitempty"`
}

// Helpers for writing scenarios.

func tool(name string) Step { return Step{Action: SetTool, Tool: name} }

func colour(hex string) Step { return Step{Action: SetColor, Color: hex} }

func width(w float64) Step { return Step{Action: SetWidth, Value: w} }

func drag(pts ...float64) Step { return Step{Action: Drag, Points: pts} }

func click(x, y float64) Step { return Step{Action: Drag, Points: []float64{x, y}} }

func act(a Action) Step { return Step{Action: a} }

func fails(s Step) Step {
	s.Fails = true
	return s
}
