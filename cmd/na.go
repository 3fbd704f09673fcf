package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/tabloom-cli/internal/report"
)

var naFlags inputFlags

var naCmd = &cobra.Command{
	Use:     "na <file>",
	Aliases: []string{"check_na"},
	Short:   "Print the null count of every column",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printReport(cmd, &naFlags, args[0], report.KindNA)
	},
}

func init() {
	rootCmd.AddCommand(naCmd)
	naFlags.register(naCmd)
}
