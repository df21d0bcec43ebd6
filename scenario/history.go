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

var historyCases = []Scenario{
	{
		Name:   "undo_redo",
		Width:  120,
		Height: 90,
		Steps: []Step{
			tool("brush"),
			drag(10, 10, 110, 10),
			drag(10, 80, 110, 80),
			act(Undo),
			act(Undo),
			act(Redo),
		},
		Want: &Result{Layers: 1, Shapes: 0, History: 3},
	},
	{
		Name:   "undo_past_start",
		Width:  120,
		Height: 90,
		Steps: []Step{
			fails(act(Undo)),
			fails(act(Redo)),
		},
		Want: &Result{Layers: 1, Shapes: 0, History: 1},
	},
	{
		Name:   "undo_shape",
		Width:  120,
		Height: 90,
		Steps: []Step{
			tool("rectangle"),
			drag(20, 20, 60, 50),
			act(Undo),
			fails(Step{Action: ShapeWidth, Value: 10}),
		},
		Want: &Result{Layers: 1, Shapes: 0, History: 2},
	},
	{
		Name:   "redo_truncated",
		Width:  120,
		Height: 90,
		Steps: []Step{
			tool("brush"),
			drag(10, 10, 110, 10),
			drag(10, 45, 110, 45),
			act(Undo),
			drag(10, 80, 110, 80),
			fails(act(Redo)),
		},
		Want: &Result{Layers: 1, Shapes: 0, History: 3},
	},
	{
		Name:   "undo_layer",
		Width:  120,
		Height: 90,
		Steps: []Step{
			act(AddLayer),
			act(AddLayer),
			act(Undo),
		},
		Want: &Result{Layers: 2, Shapes: 0, History: 3},
	},
	{
		Name:   "depth_limit",
		Width:  120,
		Height: 90,
		Steps:  manyStrokes(25),
		Want:   &Result{Layers: 1, Shapes: 0, History: 20},
	},
}

// manyStrokes returns n short horizontal brush strokes.
func manyStrokes(n int) []Step {
	steps := []Step{tool("brush"), width(2)}
	for i := range n {
		y := float64(3 + 3*i)
		steps = append(steps, drag(10, y, 110, y))
	}
	return steps
}
