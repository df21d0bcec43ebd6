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

var textCases = []Scenario{
	{
		Name:   "hello",
		Width:  120,
		Height: 90,
		Steps: []Step{
			tool("text"),
			width(5),
			{Action: TypeText, Points: []float64{10, 20}, Text: "Hello"},
		},
		Want: &Result{Layers: 1, Shapes: 0, History: 2},
	},
	{
		Name:   "blank",
		Width:  120,
		Height: 90,
		Steps: []Step{
			tool("text"),
			fails(Step{Action: TypeText, Points: []float64{10, 20}, Text: "   "}),
			fails(Step{Action: TypeText, Points: []float64{10, 20}}),
		},
		Want: &Result{Layers: 1, Shapes: 0, History: 1},
	},
	{
		Name:   "hidden_layer",
		Width:  120,
		Height: 90,
		Steps: []Step{
			{Action: ToggleLayer, Layer: 0},
			tool("text"),
			fails(Step{Action: TypeText, Points: []float64{10, 20}, Text: "lost"}),
		},
		Want: &Result{Layers: 1, Shapes: 0, History: 1},
	},
	{
		Name:   "coloured",
		Width:  120,
		Height: 90,
		Steps: []Step{
			tool("text"),
			colour("#b03060"),
			width(4),
			{Action: TypeText, Points: []float64{5, 10}, Text: "ab"},
			{Action: TypeText, Points: []float64{5, 50}, Text: "cd"},
		},
		Want: &Result{Layers: 1, Shapes: 0, History: 3},
	},
}
