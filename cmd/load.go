package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KaramelBytes/tabloom-cli/internal/logging"
	"github.com/KaramelBytes/tabloom-cli/internal/parser"
	"github.com/KaramelBytes/tabloom-cli/internal/report"
	"github.com/KaramelBytes/tabloom-cli/internal/table"
)

// inputFlags are the reader and display flags shared by every command that
// loads a file.
type inputFlags struct {
	delimiter  string
	sheetName  string
	sheetIndex int
	maxRows    int
	minWidth   int
	maxWidth   int
}

func (f *inputFlags) register(c *cobra.Command) {
	c.Flags().StringVar(&f.delimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab' | '|' (auto-detect if omitted)")
	c.Flags().StringVar(&f.sheetName, "sheet-name", "", "XLSX sheet name to read")
	c.Flags().IntVar(&f.sheetIndex, "sheet-index", 0, "XLSX sheet index (1-based) when --sheet-name is not set")
	c.Flags().IntVar(&f.maxRows, "max-rows", 0, "rows shown before collapsing to head/tail (default from config)")
	c.Flags().IntVar(&f.minWidth, "min-width", 0, "minimum column width (default from config)")
	c.Flags().IntVar(&f.maxWidth, "max-width", 0, "maximum column width (default from config)")
}

func (f *inputFlags) parserOptions(c *cobra.Command) (parser.Options, error) {
	raw := f.delimiter
	if !c.Flags().Changed("delimiter") && cfg != nil {
		raw = cfg.Delimiter
	}
	delim, err := parser.ParseDelimiter(raw)
	if err != nil {
		return parser.Options{}, err
	}
	return parser.Options{Delimiter: delim, SheetName: f.sheetName, SheetIndex: f.sheetIndex}, nil
}

// renderOptions starts from config and applies any flags the user set.
func (f *inputFlags) renderOptions(c *cobra.Command) table.RenderOptions {
	opt := table.DefaultRenderOptions()
	if cfg != nil {
		opt = table.RenderOptions{MaxRows: cfg.DisplayMaxRows, MinWidth: cfg.DisplayMinWidth, MaxWidth: cfg.DisplayMaxWidth}
	}
	if c.Flags().Changed("max-rows") {
		opt.MaxRows = f.maxRows
	}
	if c.Flags().Changed("min-width") {
		opt.MinWidth = f.minWidth
	}
	if c.Flags().Changed("max-width") {
		opt.MaxWidth = f.maxWidth
	}
	return opt
}

// load reads path and runs type inference over it.
func (f *inputFlags) load(c *cobra.Command, path string) (*parser.Dataset, *table.Table, error) {
	opt, err := f.parserOptions(c)
	if err != nil {
		return nil, nil, err
	}
	ds, err := parser.Load(path, opt)
	if err != nil {
		return nil, nil, err
	}
	t, err := ds.Table()
	if err != nil {
		return nil, nil, err
	}
	if ce := logging.L().Check(zap.DebugLevel, "columns inferred"); ce != nil {
		dtypes := make([]string, 0, len(t.Columns()))
		for _, col := range t.Columns() {
			dtypes = append(dtypes, col.DType().String())
		}
		ce.Write(zap.String("path", path), zap.Strings("dtype", dtypes))
	}
	return ds, t, nil
}

func reportOptions() report.Options {
	opt := report.DefaultOptions()
	if cfg != nil {
		opt.Precision = cfg.ReportPrecision
	}
	return opt
}

// printReport loads path, derives the report of the given kind and prints it.
func printReport(c *cobra.Command, f *inputFlags, path string, kind report.Kind) error {
	_, t, err := f.load(c, path)
	if err != nil {
		return err
	}
	out, err := reportOptions().Generate(kind, t)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.OutOrStdout(), out.Render(f.renderOptions(c)))
	return nil
}
