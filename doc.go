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

// Package sketch is a headless, layered paint engine.
//
// A [Session] holds the complete editing state: a stack of raster layers,
// the shapes drawn onto them, the current tool and stroke style, the
// selection and the undo history.  Pointer input is fed in through
// [Session.HandleEvent], one event at a time; the composited result is
// available from [Session.Frame] and can be exported as PNG or PDF.
//
// Freehand tools (brush, pencil and eraser), flood fill and text write
// pixels directly into the active layer.  Rectangles, circles and lines
// are rasterised into the active layer as well, but are also kept as
// editable shapes which the select tool can move, resize and rotate.
// Editing a shape redraws its layer from the layer's shape list, which
// discards freehand pixels on that layer.
//
// Every completed action records one snapshot of all layers; [Session.Undo]
// and [Session.Redo] step through these snapshots.
package sketch
