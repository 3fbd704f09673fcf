package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	cfgpkg "github.com/KaramelBytes/tabloom-cli/internal/config"
	"github.com/KaramelBytes/tabloom-cli/internal/export"
	"github.com/KaramelBytes/tabloom-cli/internal/parser"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set Tabloom configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if cfg == nil {
			fmt.Fprintln(out, "No config loaded")
			return nil
		}
		fmt.Fprintf(out, "log_level: %s\n", cfg.LogLevel)
		fmt.Fprintf(out, "log_encoding: %s\n", cfg.LogEncoding)
		if cfg.Delimiter != "" {
			fmt.Fprintf(out, "delimiter: %s\n", cfg.Delimiter)
		}
		fmt.Fprintf(out, "display_max_rows: %d\n", cfg.DisplayMaxRows)
		fmt.Fprintf(out, "display_min_width: %d\n", cfg.DisplayMinWidth)
		fmt.Fprintf(out, "display_max_width: %d\n", cfg.DisplayMaxWidth)
		fmt.Fprintf(out, "report_precision: %d\n", cfg.ReportPrecision)
		fmt.Fprintf(out, "export_format: %s\n", cfg.ExportFormat)
		fmt.Fprintf(out, "export_compression: %s\n", cfg.ExportCompression)
		fmt.Fprintf(out, "projects_dir: %s\n", cfg.ProjectsDir)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "log_level":
			lvl, err := zapcore.ParseLevel(val)
			if err != nil {
				return fmt.Errorf("invalid log_level: %s", val)
			}
			cfg.LogLevel = lvl.String()
		case "log_encoding":
			switch v := strings.ToLower(val); v {
			case "console", "json":
				cfg.LogEncoding = v
			default:
				return fmt.Errorf("invalid log_encoding: %s (use console or json)", val)
			}
		case "delimiter":
			if _, err := parser.ParseDelimiter(val); err != nil {
				return err
			}
			cfg.Delimiter = val
		case "display_max_rows":
			i, err := positiveInt(key, val)
			if err != nil {
				return err
			}
			cfg.DisplayMaxRows = i
		case "display_min_width":
			i, err := positiveInt(key, val)
			if err != nil {
				return err
			}
			cfg.DisplayMinWidth = i
		case "display_max_width":
			i, err := positiveInt(key, val)
			if err != nil {
				return err
			}
			cfg.DisplayMaxWidth = i
		case "report_precision":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for report_precision: %v", val)
			}
			cfg.ReportPrecision = i
		case "export_format":
			f, err := export.ParseFormat(val)
			if err != nil {
				return err
			}
			cfg.ExportFormat = string(f)
		case "export_compression":
			c, err := export.ParseCodec(val)
			if err != nil {
				return err
			}
			cfg.ExportCompression = string(c)
		case "projects_dir":
			cfg.ProjectsDir = val
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func positiveInt(key, val string) (int, error) {
	i, err := strconv.Atoi(val)
	if err != nil || i <= 0 {
		return 0, fmt.Errorf("invalid int for %s: %v", key, val)
	}
	return i, nil
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
