package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/highlight"
	"github.com/jsphweid/fretdex/model"
)

var chordFretboard bool

func init() {
	chordCmd.Flags().BoolVarP(&chordFretboard, "fretboard", "f", false, "draw the chord tones on the neck")
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:     "chord <root> <quality>",
	Short:   "Lists the tones of a chord",
	Long:    `Lists the tones of a seventh chord. Qualities: Maj7, m7, 7, m7b5, mMaj7, Maj7#5.`,
	Example: "  fretdex chord G 7",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := chord.Parse(args[0], args[1])
		if err != nil {
			return err
		}
		res, err := model.NewChordResult(c)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), res, func(w io.Writer) error {
			fmt.Fprintln(w, res.Name)
			printLine(w, "tones", res.Tones)
			printLine(w, "labels", res.Labels)
			if !chordFretboard {
				return nil
			}
			tones, _ := c.Tones()
			fills := highlight.Fills{c.Root: highlight.RootFill}
			return drawBoard(w, tones, res.Labels, fills)
		})
	},
}
