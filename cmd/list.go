package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/tabloom-cli/internal/project"
	"github.com/KaramelBytes/tabloom-cli/internal/utils"
)

var (
	listProjects bool
	listReports  bool
	listProjName string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects or saved reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if listProjects == listReports { // either both true or both false
			return fmt.Errorf("specify exactly one of --projects or --reports")
		}
		if listProjects {
			return listAllProjects(out)
		}
		projDir, err := reportsProjectDir(listProjName)
		if err != nil {
			return err
		}
		p, err := project.LoadProject(projDir)
		if err != nil {
			return err
		}
		if len(p.Reports) == 0 {
			fmt.Fprintln(out, "(no reports)")
			return nil
		}
		for _, e := range p.SortedReports() {
			fmt.Fprintf(out, "- %s: %s [%s] %d×%d from %s\n", e.ID, e.File, e.Kind, e.Rows, e.Columns, filepath.Base(e.Source))
		}
		return nil
	},
}

// reportsProjectDir resolves a project by name, or by walking up from the
// working directory when no name is given.
func reportsProjectDir(name string) (string, error) {
	if name != "" {
		return resolveProjectDirByName(name)
	}
	dir, err := utils.FindProjectRoot("")
	if err != nil {
		return "", fmt.Errorf("--project is required outside a project directory: %w", err)
	}
	return dir, nil
}

func listAllProjects(out io.Writer) error {
	root, err := defaultProjectsDir()
	if err != nil {
		return err
	}
	dirs, err := os.ReadDir(root)
	if err != nil {
		return err
	}
	found := false
	for _, e := range dirs {
		if !e.IsDir() {
			continue
		}
		pj := filepath.Join(root, e.Name(), "project.json")
		if _, err := os.Stat(pj); err == nil {
			fmt.Fprintf(out, "- %s\n", e.Name())
			found = true
		}
	}
	if !found {
		fmt.Fprintln(out, "(no projects)")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listProjects, "projects", false, "list projects")
	listCmd.Flags().BoolVar(&listReports, "reports", false, "list reports saved in a project")
	listCmd.Flags().StringVarP(&listProjName, "project", "p", "", "project name for --reports (default: the project containing the working directory)")
}
