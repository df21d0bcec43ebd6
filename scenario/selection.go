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

var selectionCases = []Scenario{
	{
		Name:   "move",
		Width:  120,
		Height: 90,
		Steps: []Step{
			tool("rectangle"),
			drag(20, 20, 60, 50),
			tool("select"),
			drag(40, 35, 50, 40, 70, 60),
		},
		Want: &Result{Layers: 1, Shapes: 1, History: 3},
	},
	{
		Name:   "resize_corner",
		Width:  120,
		Height: 90,
		Steps: []Step{
			tool("rectangle"),
			drag(20, 20, 60, 50),
			tool("select"),
			drag(60, 50, 75, 65, 90, 80),
		},
		Want: &Result{Layers: 1, Shapes: 1, History: 3},
	},
	{
		Name:   "rotate",
		Width:  120,
		Height: 90,
		Steps: []Step{
			tool("rectangle"),
			drag(20, 30, 60, 60),
			tool("select"),
			// the rotation handle is 20 above the top edge center
			drag(40, 10, 60, 20, 70, 45),
		},
		Want: &Result{Layers: 1, Shapes: 1, History: 3},
	},
	{
		Name:   "deselect",
		Width:  120,
		Height: 90,
		Steps: []Step{
			tool("rectangle"),
			drag(20, 20, 60, 50),
			tool("select"),
			click(110, 85),
			fails(Step{Action: ShapeWidth, Value: 10}),
		},
		Want: &Result{Layers: 1, Shapes: 1, History: 2},
	},
	{
		Name:   "panel",
		Width:  120,
		Height: 90,
		Steps: []Step{
			tool("rectangle"),
			drag(20, 20, 60, 50),
			{Action: ShapeWidth, Value: 50},
			{Action: ShapeHeight, Value: 30},
			fails(Step{Action: ShapeHeight, Value: 0}),
			{Action: ShapeRotate, Value: 30},
			act(DeleteShape),
		},
		Want: &Result{Layers: 1, Shapes: 0, History: 6},
	},
	{
		Name:   "pick_topmost",
		Width:  120,
		Height: 90,
		Steps: []Step{
			tool("rectangle"),
			drag(10, 10, 70, 60),
			act(AddLayer),
			drag(40, 30, 100, 80),
			tool("select"),
			drag(50, 40, 55, 40),
			{Action: ToggleLayer, Layer: 1},
			drag(50, 40, 45, 40),
		},
		Want: &Result{Layers: 2, Shapes: 2, History: 6},
	},
}
