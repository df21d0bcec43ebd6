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

var layerCases = []Scenario{
	{
		Name:   "delete_only_layer",
		Width:  120,
		Height: 90,
		Steps: []Step{
			fails(act(DeleteLayer)),
			fails(act(MergeDown)),
		},
		Want: &Result{Layers: 1, Shapes: 0, History: 1},
	},
	{
		Name:   "merge_down",
		Width:  120,
		Height: 90,
		Steps: []Step{
			act(AddLayer),
			tool("rectangle"),
			colour("#c00000"),
			drag(20, 20, 70, 60),
			act(MergeDown),
		},
		Want: &Result{Layers: 1, Shapes: 1, History: 4},
	},
	{
		Name:   "merge_hidden",
		Width:  120,
		Height: 90,
		Steps: []Step{
			act(AddLayer),
			tool("rectangle"),
			drag(20, 20, 70, 60),
			{Action: ToggleLayer, Layer: 1},
			act(MergeDown),
		},
		Want: &Result{Layers: 1, Shapes: 1, History: 4},
	},
	{
		Name:   "delete_middle",
		Width:  120,
		Height: 90,
		Steps: []Step{
			{Action: AddLayer, Name: "ink"},
			{Action: AddLayer, Name: "notes"},
			{Action: SelectLayer, Layer: 1},
			act(DeleteLayer),
			fails(Step{Action: SelectLayer, Layer: 5}),
			fails(Step{Action: ToggleLayer, Layer: -1}),
		},
		Want: &Result{Layers: 2, Shapes: 0, History: 4},
	},
	{
		Name:   "clear",
		Width:  120,
		Height: 90,
		Steps: []Step{
			tool("circle"),
			drag(60, 45, 80, 45),
			tool("brush"),
			drag(10, 10, 110, 80),
			act(ClearLayer),
		},
		Want: &Result{Layers: 1, Shapes: 0, History: 4},
	},
	{
		Name:   "stacked",
		Width:  120,
		Height: 90,
		Steps: []Step{
			tool("brush"),
			width(8),
			colour("#ff0000"),
			drag(10, 30, 110, 30),
			act(AddLayer),
			colour("#0000ff"),
			drag(60, 10, 60, 80),
			{Action: SelectLayer, Layer: 0},
			colour("#00a000"),
			drag(10, 60, 110, 60),
		},
		Want: &Result{Layers: 2, Shapes: 0, History: 5},
	},
}
