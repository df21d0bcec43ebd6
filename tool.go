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

package sketch

import (
	"fmt"

	"seehuhn.de/go/sketch/config"
	"seehuhn.de/go/sketch/shape"
)

// Tool is the active pointer tool.
type Tool int

const (
	Brush Tool = iota
	Pencil
	Eraser
	Fill
	Rectangle
	Circle
	Line
	Text
	Select
)

// The tool names are the ones accepted in configuration files.
var toolNames = config.Tools

func (t Tool) String() string {
	if t >= 0 && int(t) < len(toolNames) {
		return toolNames[t]
	}
	return fmt.Sprintf("Tool(%d)", int(t))
}

// ParseTool returns the tool with the given name.
func ParseTool(name string) (Tool, error) {
	for i, n := range toolNames {
		if n == name {
			return Tool(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tool %q", name)
}

// shapeKind returns the shape kind created by t.
func (t Tool) shapeKind() (shape.Kind, bool) {
	switch t {
	case Rectangle:
		return shape.Rectangle, true
	case Circle:
		return shape.Circle, true
	case Line:
		return shape.Line, true
	}
	return 0, false
}

// freehand reports whether t writes pixels while the pointer moves.
func (t Tool) freehand() bool {
	return t == Brush || t == Pencil || t == Eraser
}
