package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KaramelBytes/tabloom-cli/internal/logging"
	"github.com/KaramelBytes/tabloom-cli/internal/parser"
	"github.com/KaramelBytes/tabloom-cli/internal/project"
	"github.com/KaramelBytes/tabloom-cli/internal/report"
)

var (
	batchFlags   inputFlags
	batchProject string
	batchReport  string
	batchQuiet   bool
)

var batchCmd = &cobra.Command{
	Use:   "batch <files...>",
	Short: "Report on multiple CSV/TSV/XLSX files with progress and optional project attachment",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files := expandInputs(cmd.ErrOrStderr(), args)
		if len(files) == 0 {
			return fmt.Errorf("no input files matched")
		}
		kind := report.Kind(strings.ToLower(strings.TrimSpace(batchReport)))
		switch kind {
		case report.KindInfo, report.KindNA, report.KindWide, report.KindLong:
		default:
			return fmt.Errorf("unsupported --report: %s (use info|na|wide|long)", batchReport)
		}
		ropt := batchFlags.renderOptions(cmd)
		out := cmd.OutOrStdout()

		var p *project.Project
		if batchProject != "" {
			projDir, err := resolveProjectDirByName(batchProject)
			if err != nil {
				return err
			}
			if p, err = project.LoadProject(projDir); err != nil {
				return err
			}
		}

		total := len(files)
		for i, path := range files {
			if !batchQuiet {
				fmt.Fprintf(out, "[%d/%d] Processing %s...\n", i+1, total, filepath.Base(path))
			}
			_, t, err := batchFlags.load(cmd, path)
			if err != nil {
				return err
			}
			rep, err := reportOptions().Generate(kind, t)
			if err != nil {
				return err
			}
			body := rep.Render(ropt)

			if p == nil {
				if !batchQuiet {
					fmt.Fprintln(out, body)
				}
				continue
			}
			rows, cols := rep.Shape()
			e, err := p.AddReport(project.Entry{
				Source:  path,
				Sheet:   batchFlags.sheetName,
				Kind:    string(kind),
				Rows:    rows,
				Columns: cols,
			}, []byte(body+"\n"))
			if err != nil {
				return err
			}
			if err := p.Save(); err != nil {
				return err
			}
			logging.L().Debug("report attached", zap.String("project", p.Name), zap.String("file", e.File))
			if !batchQuiet {
				fmt.Fprintf(out, "✓ Added %s report to project '%s' as %s\n", kind, p.Name, filepath.Base(e.File))
			}
		}
		return nil
	},
}

// expandInputs resolves glob patterns, keeps literal paths that exist, skips
// files no reader handles, and returns the sorted, de-duplicated result.
func expandInputs(warn io.Writer, args []string) []string {
	var files []string
	seen := map[string]struct{}{}
	for _, arg := range args {
		matches, _ := filepath.Glob(arg)
		if len(matches) == 0 {
			if _, err := os.Stat(arg); err == nil {
				matches = []string{arg}
			}
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			if !parser.Supported(m) {
				fmt.Fprintf(warn, "⚠ Warning: skipping unsupported file %s\n", m)
				continue
			}
			files = append(files, m)
		}
	}
	sort.Strings(files)
	return files
}

func init() {
	rootCmd.AddCommand(batchCmd)
	batchFlags.register(batchCmd)
	batchCmd.Flags().StringVarP(&batchProject, "project", "p", "", "project name to attach reports to")
	batchCmd.Flags().StringVar(&batchReport, "report", "info", "report to produce: info | na | wide | long")
	batchCmd.Flags().BoolVar(&batchQuiet, "quiet", false, "suppress progress and report output")
}
