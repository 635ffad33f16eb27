package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsphweid/fretdex/highlight"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/scale"
)

var (
	diatonicDegree    string
	diatonicFretboard bool
)

func init() {
	diatonicCmd.Flags().StringVarP(&diatonicDegree, "degree", "d", "", "pick one chord by degree (2, ii or II_m7)")
	diatonicCmd.Flags().BoolVarP(&diatonicFretboard, "fretboard", "f", false, "draw the scale with the picked chord highlighted")
	rootCmd.AddCommand(diatonicCmd)
}

var diatonicCmd = &cobra.Command{
	Use:     "diatonic <root> [mode]",
	Short:   "Lists the seventh chords of a scale",
	Example: "  fretdex diatonic C\n  fretdex diatonic Eb ionian --degree V_7 --fretboard",
	Args:    cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := scale.Ionian.String()
		if len(args) == 2 {
			mode = args[1]
		}
		sc, err := scale.Parse(args[0], mode)
		if err != nil {
			return err
		}

		if diatonicDegree == "" {
			res, err := model.NewDiatonicResult(sc)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), res, func(w io.Writer) error {
				fmt.Fprintln(w, res.Scale.Name)
				for _, c := range res.Chords {
					fmt.Fprintf(w, "%-4s %-7s %-12s %s\n", c.Numeral, c.Name,
						strings.Join(c.Tones, " "), strings.Join(c.Labels, " "))
				}
				return nil
			})
		}

		set, err := scale.Diatonic(sc.Root, sc.Mode)
		if err != nil {
			return err
		}
		dc, ok := set.Lookup(diatonicDegree)
		if !ok {
			return fmt.Errorf("unknown scale degree %q", diatonicDegree)
		}
		res := model.NewDiatonicChordResult(dc)
		return render(cmd.OutOrStdout(), res, func(w io.Writer) error {
			fmt.Fprintf(w, "%s of %s\n", strings.ReplaceAll(res.Key, "_", ""), sc.Name())
			printLine(w, "chord", []string{res.Name})
			printLine(w, "tones", res.Tones)
			printLine(w, "labels", res.Labels)
			if !diatonicFretboard {
				return nil
			}
			tones, _ := sc.Tones()
			labels, _ := sc.Labels()
			return drawBoard(w, tones, labels, highlight.Diatonic(dc))
		})
	},
}
