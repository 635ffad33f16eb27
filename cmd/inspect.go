package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/midi"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/pitch"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Names the chords sounding in a MIDI file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := midi.ReadFile(args[0])
		if err != nil {
			return err
		}
		res := inspect(chord.NewIndex(), midi.Chords(s))
		slog.Debug("inspected midi file", "path", args[0], "chords", len(res))
		return render(cmd.OutOrStdout(), res, func(w io.Writer) error {
			for _, c := range res {
				names := "-"
				if len(c.Chords) > 0 {
					names = strings.Join(c.Chords, " / ")
				}
				fmt.Fprintf(w, "%10s  %-18s %s\n", time.Duration(c.OffsetMicros)*time.Microsecond,
					strings.Join(c.Notes, " "), names)
			}
			return nil
		})
	},
}

type inspectedChord struct {
	OffsetMicros int64    `json:"offset_us" yaml:"offset_us"`
	Keys         []int    `json:"keys" yaml:"keys"`
	Notes        []string `json:"notes" yaml:"notes"`
	Chords       []string `json:"chords" yaml:"chords"`
}

func inspect(idx *chord.Index, sounding []model.SoundingChord) []inspectedChord {
	res := make([]inspectedChord, 0, len(sounding))
	for _, sc := range sounding {
		pcs := midi.PitchClasses(sc.Notes)
		ic := inspectedChord{
			OffsetMicros: sc.Offset,
			Keys:         keys(sc.Notes),
			Notes:        pitch.Names(pcs),
			Chords:       make([]string, 0),
		}
		for _, c := range idx.Identify(pcs) {
			ic.Chords = append(ic.Chords, c.Name())
		}
		res = append(res, ic)
	}
	return res
}

func keys(notes model.Notes) []int {
	res := make([]int, 0, len(notes))
	for _, n := range notes {
		res = append(res, int(n))
	}
	return res
}
