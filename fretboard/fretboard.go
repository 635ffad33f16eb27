package fretboard

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/fretdex/highlight"
	"github.com/jsphweid/fretdex/pitch"
)

// Tuning holds the MIDI key of each open string, string 1 (high E) first.
type Tuning []uint8

// E4 B3 G3 D3 A2 E2
var Standard = Tuning{64, 59, 55, 50, 45, 40}

const (
	DefaultFrets = 15
	MaxFrets     = 24
)

type Options struct {
	Tuning Tuning
	Frets  int
}

func (o Options) withDefaults() Options {
	if len(o.Tuning) == 0 {
		o.Tuning = Standard
	}
	if o.Frets <= 0 {
		o.Frets = DefaultFrets
	}
	if o.Frets > MaxFrets {
		o.Frets = MaxFrets
	}
	return o
}

// Dot is one highlighted position on the neck.
type Dot struct {
	String int         `json:"string" yaml:"string"`
	Fret   int         `json:"fret" yaml:"fret"`
	Class  pitch.Class `json:"class" yaml:"class"`
	Note   string      `json:"note" yaml:"note"`
	Label  string      `json:"label,omitempty" yaml:"label,omitempty"`
	Fill   string      `json:"fill,omitempty" yaml:"fill,omitempty"`
}

// Text is the "interval/note" caption drawn inside a dot.
func (d Dot) Text() string {
	if d.Label == "" {
		return d.Note
	}
	return d.Label + "/" + d.Note
}

// Layout places a dot on every position of tones, from the open string up
// to opts.Frets. labels runs parallel to tones and may be shorter.
func Layout(opts Options, tones []pitch.Class, labels []string, fills highlight.Fills) []Dot {
	opts = opts.withDefaults()

	labelOf := make(map[pitch.Class]string)
	for i, pc := range tones {
		if i < len(labels) {
			if _, ok := labelOf[pc]; !ok {
				labelOf[pc] = labels[i]
			}
		}
	}
	members := pitch.NewSet(tones...)

	var dots []Dot
	for s, open := range opts.Tuning {
		for fret := 0; fret <= opts.Frets; fret++ {
			pc := pitch.Class((int(open) + fret) % pitch.NumClasses)
			if !members.Has(pc) {
				continue
			}
			dots = append(dots, Dot{
				String: s + 1,
				Fret:   fret,
				Class:  pc,
				Note:   pitch.Name(pc),
				Label:  labelOf[pc],
				Fill:   fills[pc],
			})
		}
	}
	return dots
}

const cellWidth = 5

// Render draws the neck as text, one line per string. Filled dots are
// bracketed, unfilled ones are plain.
func Render(w io.Writer, opts Options, dots []Dot) error {
	opts = opts.withDefaults()

	grid := make([][]string, len(opts.Tuning))
	for s := range grid {
		grid[s] = make([]string, opts.Frets+1)
	}
	for _, d := range dots {
		if d.String < 1 || d.String > len(grid) || d.Fret < 0 || d.Fret > opts.Frets {
			continue
		}
		cell := d.Note
		if d.Fill != "" {
			cell = "[" + cell + "]"
		}
		grid[d.String-1][d.Fret] = cell
	}

	var b strings.Builder
	b.WriteString("   ")
	for fret := 0; fret <= opts.Frets; fret++ {
		b.WriteString(center(fmt.Sprint(fret), cellWidth, ' '))
	}
	b.WriteString("\n")
	for s, row := range grid {
		b.WriteString(fmt.Sprintf("%-3s", pitch.Name(pitch.FromMIDI(opts.Tuning[s]))))
		for fret, cell := range row {
			pad := '-'
			if fret == 0 {
				pad = ' '
			}
			b.WriteString(center(cell, cellWidth, pad))
			if fret == 0 {
				b.WriteString("|")
			}
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func center(s string, width int, pad rune) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(string(pad), left) + s + strings.Repeat(string(pad), right)
}
