package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/tabloom-cli/internal/report"
)

var (
	statsFlags  inputFlags
	statsLayout string
)

var statsCmd = &cobra.Command{
	Use:     "stats <file>",
	Aliases: []string{"calculate_statistics"},
	Short:   "Print mean, max, min and sum for every column",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var kind report.Kind
		switch strings.ToLower(strings.TrimSpace(statsLayout)) {
		case "", "wide":
			kind = report.KindWide
		case "long":
			kind = report.KindLong
		default:
			return fmt.Errorf("unsupported --layout: %s (use wide|long)", statsLayout)
		}
		return printReport(cmd, &statsFlags, args[0], kind)
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsFlags.register(statsCmd)
	statsCmd.Flags().StringVar(&statsLayout, "layout", "wide", "statistics layout: wide (one column per input column) | long (one row per column and metric)")
}
