package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/fretboard"
	"github.com/jsphweid/fretdex/highlight"
	"github.com/jsphweid/fretdex/pitch"
)

// render writes v in the selected --output format, calling text for the
// human readable form.
func render(w io.Writer, v any, text func(w io.Writer) error) error {
	switch output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	}
	return text(w)
}

func boardOptions() fretboard.Options {
	return fretboard.Options{Frets: constants.GetFrets()}
}

func drawBoard(w io.Writer, tones []pitch.Class, labels []string, fills highlight.Fills) error {
	opts := boardOptions()
	return fretboard.Render(w, opts, fretboard.Layout(opts, tones, labels, fills))
}

func printLine(w io.Writer, label string, values []string) {
	fmt.Fprintf(w, "%-8s %s\n", label+":", strings.Join(values, " "))
}
