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

// Package config holds the settings of a sketch session and reads them
// from TOML files.
//
// Every field has a default, so a configuration file only needs to list
// the values it changes.  Unknown keys are rejected.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

// Config is the complete session configuration.
type Config struct {
	Canvas    Canvas    `toml:"canvas"`
	History   History   `toml:"history"`
	Style     Style     `toml:"style"`
	Selection Selection `toml:"selection"`
	Fill      Fill      `toml:"fill"`
	Export    Export    `toml:"export"`
}

// Canvas sets the surface size in pixels.
type Canvas struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// History controls undo.
type History struct {
	Depth int `toml:"depth"`

	// RestoreShapes makes undo restore the editable shapes together with
	// the pixels.  If false, restored layers keep their pixels but lose
	// their shapes.
	RestoreShapes bool `toml:"restore_shapes"`
}

// Style is the initial tool and stroke style.
type Style struct {
	Tool    string `toml:"tool"`
	Color   string `toml:"color"`   // hex, "#rrggbb"
	Width   int    `toml:"width"`   // stroke width in pixels
	Opacity int    `toml:"opacity"` // percent
}

// Selection holds the hit-test tolerances of the select tool.
type Selection struct {
	HandleTolerance float64 `toml:"handle_tolerance"`
	RotationOffset  float64 `toml:"rotation_offset"`
	LineTolerance   float64 `toml:"line_tolerance"`
}

// Fill configures the flood fill tool.
type Fill struct {
	Tolerance int `toml:"tolerance"`
}

// Export configures the output of the CLI.
type Export struct {
	Format string  `toml:"format"` // "png" or "pdf"
	Scale  float64 `toml:"scale"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Canvas:  Canvas{Width: 800, Height: 600},
		History: History{Depth: 20, RestoreShapes: true},
		Style: Style{
			Tool:    "brush",
			Color:   "#000000",
			Width:   5,
			Opacity: 100,
		},
		Selection: Selection{
			HandleTolerance: 4,
			RotationOffset:  20,
			LineTolerance:   5,
		},
		Fill:   Fill{Tolerance: 5},
		Export: Export{Format: "png", Scale: 1},
	}
}

// Load reads a configuration file on top of the defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads TOML from r on top of the defaults and validates the
// result.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("unknown configuration keys:\n%s", strict.String())
		}
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func (cfg *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// Tools lists the valid values of Style.Tool, in the order of the
// sketch.Tool constants.
var Tools = []string{
	"brush", "pencil", "eraser", "fill", "rectangle", "circle", "line", "text", "select",
}

// Validate checks the ranges of all settings.  All problems are reported
// together.
func (cfg *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(cfg.Canvas.Width >= 1 && cfg.Canvas.Height >= 1,
		"canvas: invalid size %dx%d", cfg.Canvas.Width, cfg.Canvas.Height)
	check(cfg.History.Depth >= 1, "history: depth must be positive, got %d", cfg.History.Depth)
	check(slices.Contains(Tools, cfg.Style.Tool), "style: unknown tool %q", cfg.Style.Tool)
	check(validHex(cfg.Style.Color), "style: invalid colour %q", cfg.Style.Color)
	check(cfg.Style.Width >= 1, "style: width must be positive, got %d", cfg.Style.Width)
	check(cfg.Style.Opacity >= 0 && cfg.Style.Opacity <= 100,
		"style: opacity %d outside 0..100", cfg.Style.Opacity)
	check(cfg.Selection.HandleTolerance > 0, "selection: handle_tolerance must be positive")
	check(cfg.Selection.LineTolerance > 0, "selection: line_tolerance must be positive")
	check(cfg.Selection.RotationOffset >= 0, "selection: rotation_offset must not be negative")
	check(cfg.Fill.Tolerance >= 0 && cfg.Fill.Tolerance <= 255,
		"fill: tolerance %d outside 0..255", cfg.Fill.Tolerance)
	check(cfg.Export.Format == "png" || cfg.Export.Format == "pdf",
		"export: unknown format %q", cfg.Export.Format)
	check(cfg.Export.Scale > 0, "export: scale must be positive")

	return errors.Join(errs...)
}

// validHex reports whether s is a colour in "#rrggbb" or "#rgb" form.
func validHex(s string) bool {
	_, err := colorful.Hex(s)
	return err == nil
}
