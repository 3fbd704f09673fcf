package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatch_AttachWithCollisionSuffix(t *testing.T) {
	home := tempHome(t)

	// Two CSV files with the same basename in different directories
	csv := "col1,col2\nA,1\nB,2\nC,3\n"
	writeFile(t, filepath.Join(home, "d1", "metrics.csv"), csv)
	writeFile(t, filepath.Join(home, "d2", "metrics.csv"), csv)

	runCmd(t, "init", "batchp", "-d", "batch project")
	out := runCmd(t, "batch", filepath.Join(home, "d*", "metrics.csv"), "-p", "batchp", "--report", "na")
	assert.Contains(t, out, "[1/2] Processing metrics.csv...")
	assert.Contains(t, out, "[2/2] Processing metrics.csv...")

	projDir, err := resolveProjectDirByName("batchp")
	require.NoError(t, err)
	reports := filepath.Join(projDir, "reports")
	first := filepath.Join(reports, "metrics.na.txt")
	second := filepath.Join(reports, "metrics.na__2.txt")
	require.FileExists(t, first)
	require.FileExists(t, second)

	body, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Contains(t, string(body), "null_count")
	assert.Contains(t, string(body), "2 rows × 2 columns")

	listed := runCmd(t, "list", "--reports", "-p", "batchp")
	assert.Equal(t, 2, strings.Count(listed, "[na] 2×2"))
}

func TestBatch_PrintsAndValidates(t *testing.T) {
	home := tempHome(t)
	a := writeFile(t, filepath.Join(home, "a.csv"), "x\n1\n")
	b := writeFile(t, filepath.Join(home, "b.csv"), "y\ntrue\n")

	out := runCmd(t, "batch", b, a, a)
	assert.Equal(t, 2, strings.Count(out, "Processing"))
	assert.Less(t, strings.Index(out, "a.csv"), strings.Index(out, "b.csv"))

	quiet := runCmd(t, "batch", a, "--quiet")
	assert.Empty(t, quiet)

	_, err := execute(t, "batch", a, "--report", "pie")
	require.Error(t, err)
	_, err = execute(t, "batch", filepath.Join(home, "missing*.csv"))
	require.Error(t, err)
	_, err = execute(t, "batch", a, "-p", "ghost")
	require.Error(t, err)
}

func TestBatch_SkipsUnsupportedMatches(t *testing.T) {
	home := tempHome(t)
	dir := filepath.Join(home, "mixed")
	writeFile(t, filepath.Join(dir, "a.csv"), "x\n1\n")
	writeFile(t, filepath.Join(dir, "notes.md"), "# notes\n")

	out := runCmd(t, "batch", filepath.Join(dir, "*"))
	assert.Contains(t, out, "[1/1] Processing a.csv...")
	assert.NotContains(t, out, "notes.md")

	_, err := execute(t, "batch", filepath.Join(dir, "*.md"))
	require.Error(t, err)
}

func TestList_ReportsFromWorkingDirectory(t *testing.T) {
	home := tempHome(t)
	data := writeFile(t, filepath.Join(home, "m.csv"), "x\n1\n")
	runCmd(t, "init", "here")
	runCmd(t, "batch", data, "-p", "here", "--quiet")

	projDir, err := resolveProjectDirByName("here")
	require.NoError(t, err)
	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(wd) })
	require.NoError(t, os.Chdir(filepath.Join(projDir, "reports")))

	out := runCmd(t, "list", "--reports")
	assert.Contains(t, out, "[info]")
	assert.Contains(t, out, "from m.csv")

	require.NoError(t, os.Chdir(home))
	_, err = execute(t, "list", "--reports")
	require.Error(t, err)
}
