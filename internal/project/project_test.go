package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/tabloom-cli/internal/project"
)

func TestSaveAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "proj")
	p := project.NewProject("harvest", "field trials", dir)
	if err := p.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := project.LoadProject(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Name != "harvest" || got.Description != "field trials" || got.RootDir() != dir {
		t.Fatalf("loaded = %+v", got)
	}
	if got.Reports == nil {
		t.Fatalf("reports map not initialized")
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := project.LoadProject(t.TempDir()); err == nil {
		t.Fatalf("expected error for missing project.json")
	}
}

func TestAddReportAvoidsOverwrite(t *testing.T) {
	dir := t.TempDir()
	p := project.NewProject("p", "", dir)

	first, err := p.AddReport(project.Entry{Source: "/data/yield.csv", Kind: "info", Rows: 3, Columns: 7}, []byte("one"))
	if err != nil {
		t.Fatalf("add first: %v", err)
	}
	second, err := p.AddReport(project.Entry{Source: "/data/yield.csv", Kind: "info"}, []byte("two"))
	if err != nil {
		t.Fatalf("add second: %v", err)
	}
	if first.File != filepath.Join("reports", "yield.info.txt") {
		t.Fatalf("first file = %q", first.File)
	}
	if second.File != filepath.Join("reports", "yield.info__2.txt") {
		t.Fatalf("second file = %q", second.File)
	}
	if first.ID == "" || first.ID == second.ID {
		t.Fatalf("ids = %q %q", first.ID, second.ID)
	}
	b, err := os.ReadFile(filepath.Join(dir, second.File))
	if err != nil || string(b) != "two" {
		t.Fatalf("second body = %q, %v", b, err)
	}

	if err := p.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	again, err := project.LoadProject(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	sorted := again.SortedReports()
	if len(sorted) != 2 || sorted[0].Rows != 3 {
		t.Fatalf("sorted = %+v", sorted)
	}
}

func TestAddReportSheetSlug(t *testing.T) {
	p := project.NewProject("p", "", t.TempDir())
	e, err := p.AddReport(project.Entry{Source: "book.xlsx", Sheet: "Q1 Sales!", Kind: "wide"}, []byte("x"))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if want := filepath.Join("reports", "book__sheet-q1-sales.wide.txt"); e.File != want {
		t.Fatalf("file = %q, want %q", e.File, want)
	}
}
