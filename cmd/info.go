package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/tabloom-cli/internal/report"
)

var infoFlags inputFlags

var infoCmd = &cobra.Command{
	Use:   "info <file>",
	Short: "Print per-column statistics, null counts and types",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printReport(cmd, &infoFlags, args[0], report.KindInfo)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoFlags.register(infoCmd)
}
