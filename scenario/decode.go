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
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

var actions = map[Action]bool{
	SetTool: true, SetColor: true, SetWidth: true, SetOpacity: true,
	Drag: true, TypeText: true,
	AddLayer: true, DeleteLayer: true, MergeDown: true, ClearLayer: true,
	SelectLayer: true, ToggleLayer: true,
	Undo: true, Redo: true,
	ShapeWidth: true, ShapeHeight: true, ShapeRotate: true, DeleteShape: true,
}

// Load reads a scenario from a TOML file.
func Load(path string) (Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return Scenario{}, err
	}
	defer f.Close()

	sc, err := Decode(f)
	if err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Decode reads a scenario in TOML format.  Steps are given as an array of
// tables:
//
//	name = "demo"
//	width = 200
//	height = 100
//
//	[[step]]
//	action = "tool"
//	tool = "rectangle"
//
//	[[step]]
//	action = "drag"
//	points = [20, 20, 120, 80]
func Decode(r io.Reader) (Scenario, error) {
	var sc Scenario
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&sc); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Scenario{}, fmt.Errorf("unknown scenario keys:\n%s", strict.String())
		}
		return Scenario{}, err
	}
	if err := sc.Validate(); err != nil {
		return Scenario{}, err
	}
	return sc, nil
}

// Encode writes sc in the format read by Decode.
func (sc Scenario) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(sc)
}

// Validate checks the name, the canvas size and the step actions.
func (sc Scenario) Validate() error {
	var errs []error
	if !validName(sc.Name) {
		errs = append(errs, fmt.Errorf("invalid scenario name %q", sc.Name))
	}
	if sc.Width < 0 || sc.Height < 0 {
		errs = append(errs, fmt.Errorf("invalid canvas size %dx%d", sc.Width, sc.Height))
	}
	for i, st := range sc.Steps {
		if !actions[st.Action] {
			errs = append(errs, fmt.Errorf("step %d: unknown action %q", i+1, st.Action))
		}
		if st.Action == Drag && (len(st.Points) < 2 || len(st.Points)%2 != 0) {
			errs = append(errs, fmt.Errorf("step %d: drag needs x, y pairs", i+1))
		}
	}
	return errors.Join(errs...)
}

func validName(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if (c < 'a' || c > 'z') && c != '_' {
			return false
		}
	}
	return true
}
