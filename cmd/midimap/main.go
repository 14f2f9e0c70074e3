// Package main provides the CLI entrypoint for the canonical-to-target MIDI
// map converter.
//
// midimap reads a canonical controller/plugin map (YAML or JSON), validates
// it, resolves every mapping entry against the controller's catalog context,
// and writes the rendered target binding map. All file I/O lives here; the
// conversion core operates on in-memory text only.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oletizi/audio-control/internal/canonical"
	"github.com/oletizi/audio-control/internal/convert"
	"github.com/oletizi/audio-control/internal/maplib"
	"github.com/oletizi/audio-control/internal/target"
)

func main() {
	inputPath := flag.String("input", "", "Path to the canonical map file")
	outputPath := flag.String("output", "", "Path to write the target map (default: stdout)")
	format := flag.String("format", "", "Input format: yaml or json (default: by file extension)")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	log := newLogger(*logLevel)

	if *inputPath == "" {
		log.Error("missing required -input flag")
		flag.Usage()
		os.Exit(2)
	}

	syntax, err := pickSyntax(*format, *inputPath)
	if err != nil {
		log.Fatalf("%v", err)
	}

	content, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatalf("Failed to read canonical map: %v", err)
	}

	m, outcome := canonical.Parse(content, syntax)

	for _, w := range outcome.Warnings {
		log.Warn(w.String())
	}

	if !outcome.IsValid() {
		for _, e := range outcome.Errors {
			log.Error(e.String())
		}

		log.Fatalf("Canonical map is invalid (%d errors)", len(outcome.Errors))
	}

	ctx := maplib.Lookup(m.Controller.Manufacturer, m.Controller.Model)
	log.WithFields(logrus.Fields{
		"controller": ctx.Manufacturer + " " + ctx.Model,
		"plugin":     m.Plugin.Manufacturer + " " + m.Plugin.Name,
		"mappings":   len(m.Mappings),
	}).Info("Converting canonical map")

	rendered := target.Render(convert.Convert(m, ctx), target.RenderOptions{})

	if *outputPath == "" {
		fmt.Print(rendered)
		return
	}

	if err := os.WriteFile(*outputPath, []byte(rendered), 0o644); err != nil {
		log.Fatalf("Failed to write target map: %v", err)
	}

	log.Infof("Wrote target map to %s", *outputPath)
}

// newLogger builds the CLI logger at the requested level.
func newLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}

	log.SetLevel(parsed)

	return log
}

// pickSyntax selects the input syntax from the -format flag, falling back to
// the file extension.
func pickSyntax(format, path string) (canonical.Syntax, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return canonical.SyntaxYAML, nil
	case "json":
		return canonical.SyntaxJSON, nil
	case "":
	default:
		return canonical.SyntaxYAML, fmt.Errorf("unknown format %q (expected yaml or json)", format)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return canonical.SyntaxJSON, nil
	default:
		return canonical.SyntaxYAML, nil
	}
}
