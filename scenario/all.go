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

// All contains the built-in scenarios, grouped by category.
// The category name is used as a prefix in output file names.
var All = map[string][]Scenario{
	"freehand":  freehandCases,
	"shapes":    shapeCases,
	"selection": selectionCases,
	"layers":    layerCases,
	"history":   historyCases,
	"text":      textCases,
}

// Find returns the scenario with the given category and name.
func Find(category, name string) (Scenario, bool) {
	for _, sc := range All[category] {
		if sc.Name == name {
			return sc, true
		}
	}
	return Scenario{}, false
}
