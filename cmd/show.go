package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/tabloom-cli/internal/utils"
)

var showFlags inputFlags

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Load a CSV/TSV/XLSX file and print it as a typed table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, t, err := showFlags.load(cmd, args[0])
		if err != nil {
			return err
		}
		rows, cols := t.Shape()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %d rows × %d columns (%s)\n", ds.Name, rows, cols, utils.HumanBytes(ds.FileSize))
		fmt.Fprintln(out, t.Render(showFlags.renderOptions(cmd)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showFlags.register(showCmd)
}
