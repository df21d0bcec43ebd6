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

var freehandCases = []Scenario{
	{
		Name:   "brush_zigzag",
		Width:  120,
		Height: 90,
		Steps: []Step{
			tool("brush"),
			width(4),
			drag(10, 10, 40, 60, 70, 10, 100, 60),
		},
		Want: &Result{Layers: 1, Shapes: 0, History: 2},
	},
	{
		Name:   "pencil_then_erase",
		Width:  120,
		Height: 90,
		Steps: []Step{
			tool("pencil"),
			width(2),
			drag(10, 45, 60, 40, 110, 45),
			tool("eraser"),
			width(12),
			drag(60, 20, 60, 45, 60, 70),
		},
		Want: &Result{Layers: 1, Shapes: 0, History: 3},
	},
	{
		Name:   "translucent_brush",
		Width:  120,
		Height: 90,
		Steps: []Step{
			tool("brush"),
			colour("#2060c0"),
			{Action: SetOpacity, Value: 40},
			width(10),
			drag(10, 45, 110, 45),
			drag(60, 10, 60, 80),
		},
		Want: &Result{Layers: 1, Shapes: 0, History: 3},
	},
	{
		Name:   "leave_ends_stroke",
		Width:  120,
		Height: 90,
		Steps: []Step{
			tool("brush"),
			{Action: Drag, Points: []float64{20, 20, 80, 50, 130, 70}, Leave: true},
		},
		Want: &Result{Layers: 1, Shapes: 0, History: 2},
	},
	{
		Name:   "fill_closed_rectangle",
		Width:  120,
		Height: 90,
		Steps: []Step{
			tool("rectangle"),
			drag(20, 20, 100, 70),
			colour("#ff0000"),
			tool("fill"),
			click(60, 45),
		},
		Want: &Result{Layers: 1, Shapes: 1, History: 3},
	},
	{
		Name:   "fill_same_colour",
		Width:  120,
		Height: 90,
		Steps: []Step{
			colour("#ffffff"),
			tool("fill"),
			click(60, 45),
		},
		Want: &Result{Layers: 1, Shapes: 0, History: 2},
	},
}
