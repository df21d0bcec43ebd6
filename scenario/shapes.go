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

var shapeCases = []Scenario{
	{
		Name:   "rectangle_reverse_drag",
		Width:  120,
		Height: 90,
		Steps: []Step{
			tool("rectangle"),
			drag(100, 70, 60, 40, 20, 20),
		},
		Want: &Result{Layers: 1, Shapes: 1, History: 2},
	},
	{
		Name:   "circle",
		Width:  120,
		Height: 90,
		Steps: []Step{
			tool("circle"),
			width(3),
			drag(60, 45, 70, 45, 85, 45),
		},
		Want: &Result{Layers: 1, Shapes: 1, History: 2},
	},
	{
		Name:   "line",
		Width:  120,
		Height: 90,
		Steps: []Step{
			tool("line"),
			drag(10, 80, 110, 10),
		},
		Want: &Result{Layers: 1, Shapes: 1, History: 2},
	},
	{
		Name:   "degenerate",
		Width:  120,
		Height: 90,
		Steps: []Step{
			tool("rectangle"),
			click(50, 50),
			tool("line"),
			click(70, 50),
		},
		Want: &Result{Layers: 1, Shapes: 2, History: 3},
	},
	{
		Name:   "mixed",
		Width:  120,
		Height: 90,
		Steps: []Step{
			tool("rectangle"),
			colour("#008000"),
			drag(10, 10, 50, 40),
			tool("circle"),
			colour("#0000ff"),
			drag(80, 30, 100, 30),
			tool("line"),
			colour("#000000"),
			width(1),
			drag(10, 80, 110, 60),
		},
		Want: &Result{Layers: 1, Shapes: 3, History: 4},
	},
	{
		Name:   "hidden_layer",
		Width:  120,
		Height: 90,
		Steps: []Step{
			act(AddLayer),
			{Action: ToggleLayer, Layer: 1},
			tool("rectangle"),
			fails(drag(20, 20, 60, 60)),
		},
		Want: &Result{Layers: 2, Shapes: 0, History: 2},
	},
}
