package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/store"
	"github.com/jsphweid/fretdex/util"
)

func init() {
	selectionCmd.AddCommand(selectionGetCmd, selectionSetCmd)
	rootCmd.AddCommand(selectionCmd)
}

var selectionCmd = &cobra.Command{
	Use:   "selection",
	Short: "Reads or writes the last selection of a view",
}

var selectionGetCmd = &cobra.Command{
	Use:   "get <view>",
	Short: "Prints the stored selection of a view",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, _, err := openStore(false)
		if err != nil {
			return err
		}
		sel, err := s.Load(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("view %q: %w", args[0], err)
		}
		return printSelection(cmd.OutOrStdout(), sel)
	},
}

var selectionSetCmd = &cobra.Command{
	Use:     "set <view> <key=value>...",
	Short:   "Replaces the stored selection of a view",
	Example: "  fretdex selection set majScale root=Eb chord=V_7",
	Args:    cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		values := make(map[string]string)
		for _, kv := range args[1:] {
			k, v, ok := strings.Cut(kv, "=")
			if !ok || k == "" {
				return fmt.Errorf("expected key=value, got %q", kv)
			}
			values[k] = v
		}
		if err := model.ValidateSelection(values); err != nil {
			return err
		}

		s, _, err := openStore(false)
		if err != nil {
			return err
		}
		sel := store.Selection{View: args[0], Values: values}
		if err := s.Save(cmd.Context(), sel); err != nil {
			return err
		}
		return printSelection(cmd.OutOrStdout(), sel)
	},
}

func printSelection(w io.Writer, sel store.Selection) error {
	body := model.SelectionBody{View: sel.View, Values: sel.Values}
	return render(w, body, func(w io.Writer) error {
		fmt.Fprintln(w, sel.View)
		for _, k := range util.GetKeysSorted(sel.Values) {
			fmt.Fprintf(w, "  %s=%s\n", k, sel.Values[k])
		}
		return nil
	})
}
