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

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestDecodeOverridesDefaults(t *testing.T) {
	in := `
[canvas]
width = 320
height = 240

[history]
restore_shapes = false

[style]
tool = "rectangle"
color = "#ff8800"
`
	cfg, err := Decode(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 320, cfg.Canvas.Width)
	assert.Equal(t, 240, cfg.Canvas.Height)
	assert.False(t, cfg.History.RestoreShapes)
	assert.Equal(t, 20, cfg.History.Depth)
	assert.Equal(t, "rectangle", cfg.Style.Tool)
	assert.Equal(t, 5, cfg.Style.Width)
	assert.Equal(t, 5, cfg.Fill.Tolerance)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := Decode(strings.NewReader("[canvas]\ndepth = 3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "depth")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Canvas.Width = 0
	cfg.Style.Tool = "airbrush"
	cfg.Style.Color = "red"
	cfg.Style.Opacity = 101
	cfg.Export.Format = "gif"

	err := cfg.Validate()
	require.Error(t, err)
	msg := err.Error()
	for _, want := range []string{"canvas", "airbrush", `"red"`, "opacity", "gif"} {
		assert.Contains(t, msg, want)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Selection.HandleTolerance = 6
	cfg.Export.Format = "pdf"

	var buf bytes.Buffer
	require.NoError(t, cfg.Encode(&buf))
	path := filepath.Join(t.TempDir(), "sketch.toml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidateColour(t *testing.T) {
	cases := map[string]bool{
		"#336699": true,
		"#ABCDEF": true,
		"#abc":    true,
		"336699":  false,
		"red":     false,
		"":        false,
		"#xyzxyz": false,
	}
	for in, ok := range cases {
		cfg := Default()
		cfg.Style.Color = in
		err := cfg.Validate()
		if ok {
			assert.NoError(t, err, "colour %q", in)
		} else {
			assert.Error(t, err, "colour %q", in)
		}
	}
}
