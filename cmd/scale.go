package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/scale"
)

var scaleFretboard bool

func init() {
	scaleCmd.Flags().BoolVarP(&scaleFretboard, "fretboard", "f", false, "draw the scale on the neck")
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:     "scale <root> <mode>",
	Short:   "Lists the tones of a scale",
	Long:    `Lists the seven tones of a diatonic mode: ionian, dorian, phrygian, lydian, mixolydian, aeolian, locrian (major and minor are accepted too).`,
	Example: "  fretdex scale D dorian --fretboard",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := scale.Parse(args[0], args[1])
		if err != nil {
			return err
		}
		res, err := model.NewScaleResult(sc)
		if err != nil {
			return err
		}
		return render(cmd.OutOrStdout(), res, func(w io.Writer) error {
			fmt.Fprintln(w, res.Name)
			printLine(w, "tones", res.Tones)
			printLine(w, "labels", res.Labels)
			if !scaleFretboard {
				return nil
			}
			tones, _ := sc.Tones()
			return drawBoard(w, tones, res.Labels, nil)
		})
	},
}
