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

// Command sketch replays editing scenarios and writes the resulting
// drawings as PNG or PDF files.
//
// Usage:
//
//	sketch [flags]
//
// Without -script, the built-in scenarios selected by -scenario are run.
// The selector is "all", a category like "layers", or a single scenario
// like "layers/merge_down".  Each drawing is written to the -out
// directory as <category>_<name>.<format>.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"seehuhn.de/go/sketch"
	"seehuhn.de/go/sketch/config"
	"seehuhn.de/go/sketch/scenario"
)

type job struct {
	category string
	sc       scenario.Scenario
}

func main() {
	configPath := flag.String("config", "", "configuration file (TOML)")
	selector := flag.String("scenario", "all", "built-in scenarios to run")
	script := flag.String("script", "", "run the scenario in this TOML file")
	outDir := flag.String("out", "out", "output directory")
	format := flag.String("format", "", "output format, png or pdf (overrides the configuration)")
	overlay := flag.Bool("overlay", false, "draw the selection decoration (png only)")
	list := flag.Bool("list", false, "list the built-in scenarios and exit")
	dump := flag.String("dump", "", "write the built-in scenarios as TOML files to this directory and exit")
	verbose := flag.Bool("v", false, "log every history entry")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger, *configPath, *selector, *script, *outDir, *format, *overlay, *list, *dump); err != nil {
		logger.Error("sketch failed", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, configPath, selector, script, outDir, format string, overlay, list bool, dump string) error {
	if list {
		for _, category := range slices.Sorted(maps.Keys(scenario.All)) {
			for _, sc := range scenario.All[category] {
				fmt.Println(category + "/" + sc.Name)
			}
		}
		return nil
	}
	if dump != "" {
		return dumpAll(dump)
	}

	cfg := config.Default()
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
	}
	if format != "" {
		cfg.Export.Format = format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if overlay && cfg.Export.Format != "png" {
		return fmt.Errorf("-overlay needs png output, not %s", cfg.Export.Format)
	}

	var jobs []job
	if script != "" {
		sc, err := scenario.Load(script)
		if err != nil {
			return err
		}
		jobs = append(jobs, job{category: "script", sc: sc})
	} else {
		var err error
		jobs, err = selectBuiltin(selector)
		if err != nil {
			return err
		}
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}
	for _, j := range jobs {
		name := j.category + "_" + j.sc.Name
		fname := filepath.Join(outDir, name+"."+cfg.Export.Format)
		if err := render(logger.With("scenario", name), cfg, j.sc, fname, overlay); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		logger.Info("wrote drawing", "file", fname)
	}
	return nil
}

func selectBuiltin(selector string) ([]job, error) {
	var jobs []job
	category, name, single := strings.Cut(selector, "/")
	for _, cat := range slices.Sorted(maps.Keys(scenario.All)) {
		if selector != "all" && cat != category {
			continue
		}
		for _, sc := range scenario.All[cat] {
			if single && sc.Name != name {
				continue
			}
			jobs = append(jobs, job{category: cat, sc: sc})
		}
	}
	if len(jobs) == 0 {
		return nil, fmt.Errorf("no scenario matches %q", selector)
	}
	return jobs, nil
}

func render(logger *slog.Logger, cfg *config.Config, sc scenario.Scenario, fname string, overlay bool) error {
	s, err := scenario.NewSession(cfg, sc, sketch.WithLogger(logger))
	if err != nil {
		return err
	}
	if err := scenario.Run(s, sc); err != nil {
		return err
	}
	if err := scenario.Check(s, sc); err != nil {
		logger.Warn("unexpected final state", "err", err)
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if overlay {
		err = png.Encode(f, s.Frame().Decorated())
	} else {
		err = s.Export(f)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func dumpAll(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for category, list := range scenario.All {
		for _, sc := range list {
			fname := filepath.Join(dir, category+"_"+sc.Name+".toml")
			f, err := os.Create(fname)
			if err != nil {
				return err
			}
			err = sc.Encode(f)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return fmt.Errorf("%s: %w", fname, err)
			}
		}
	}
	return nil
}
