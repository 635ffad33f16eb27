package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/highlight"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/overlap"
	"github.com/jsphweid/fretdex/scale"
)

var (
	compareScaleRoot string
	compareMode      string
)

func init() {
	compareCmd.Flags().StringVar(&compareScaleRoot, "scale-root", "", "draw this scale with the comparison colours")
	compareCmd.Flags().StringVar(&compareMode, "mode", "ionian", "mode of --scale-root")
	rootCmd.AddCommand(compareCmd)
}

var compareCmd = &cobra.Command{
	Use:     "compare <rootA> <qualityA> <rootB> <qualityB>",
	Short:   "Shows which tones two chords share",
	Example: "  fretdex compare G 7 C Maj7 --scale-root C",
	Args:    cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := chord.Parse(args[0], args[1])
		if err != nil {
			return err
		}
		b, err := chord.Parse(args[2], args[3])
		if err != nil {
			return err
		}
		res, err := model.NewCompareResult(a, b)
		if err != nil {
			return err
		}

		var sc *scale.Scale
		if compareScaleRoot != "" {
			parsed, err := scale.Parse(compareScaleRoot, compareMode)
			if err != nil {
				return err
			}
			sc = &parsed
		}

		return render(cmd.OutOrStdout(), res, func(w io.Writer) error {
			fmt.Fprintf(w, "%s -> %s\n", res.A.Name, res.B.Name)
			printLine(w, "both", res.Both)
			printLine(w, "only "+res.A.Name, res.OnlyA)
			printLine(w, "only "+res.B.Name, res.OnlyB)
			if sc == nil {
				return nil
			}
			ta, _ := a.Tones()
			tb, _ := b.Tones()
			tones, _ := sc.Tones()
			labels, _ := sc.Labels()
			// only scale positions are drawn, chord tones outside it are left off
			return drawBoard(w, tones, labels, highlight.Compare(overlap.Compare(ta, tb)))
		})
	},
}
