package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/tabloom-cli/internal/export"
	"github.com/KaramelBytes/tabloom-cli/internal/report"
	"github.com/KaramelBytes/tabloom-cli/internal/utils"
)

var (
	exportFlags    inputFlags
	exportOutput   string
	exportFormat   string
	exportCompress string
	exportReport   string
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write a table (or one of its reports) as JSON or Arrow IPC",
	Long: `Export loads a file, infers column types and writes the typed table as JSON
or as an Arrow IPC file. With --report the derived report (info, na, wide or
long) is written instead of the data. Output can be compressed with gzip,
zstd, lz4 or s2.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		opt, err := exportOptions(cmd)
		if err != nil {
			return err
		}
		_, t, err := exportFlags.load(cmd, path)
		if err != nil {
			return err
		}
		if exportReport != "" {
			t, err = reportOptions().Generate(report.Kind(strings.ToLower(exportReport)), t)
			if err != nil {
				return err
			}
		}

		out := exportOutput
		if out == "" {
			base := filepath.Base(path)
			stem := strings.TrimSuffix(base, filepath.Ext(base))
			if exportReport != "" {
				stem += "." + strings.ToLower(exportReport)
			}
			out = filepath.Join(filepath.Dir(path), stem+opt.Format.Ext()+opt.Codec.Ext())
		}
		n, err := export.WriteFile(out, t, opt)
		if err != nil {
			return fmt.Errorf("export %s: %w", path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Exported %s to %s (%s)\n", filepath.Base(path), out, utils.HumanBytes(int64(n)))
		return nil
	},
}

// exportOptions resolves format and codec from flags, falling back to config.
func exportOptions(cmd *cobra.Command) (export.Options, error) {
	format, codec := exportFormat, exportCompress
	if !cmd.Flags().Changed("format") && cfg != nil {
		format = cfg.ExportFormat
	}
	if !cmd.Flags().Changed("compress") && cfg != nil {
		codec = cfg.ExportCompression
	}
	f, err := export.ParseFormat(format)
	if err != nil {
		return export.Options{}, err
	}
	c, err := export.ParseCodec(codec)
	if err != nil {
		return export.Options{}, err
	}
	return export.Options{Format: f, Codec: c}, nil
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportFlags.register(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output path (default: next to the input, named after format and codec)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format: json | arrow")
	exportCmd.Flags().StringVar(&exportCompress, "compress", "none", "compression: none | gzip | zstd | lz4 | s2")
	exportCmd.Flags().StringVar(&exportReport, "report", "", "export a report instead of the data: info | na | wide | long")
}
