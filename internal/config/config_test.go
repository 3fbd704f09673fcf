package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/tabloom-cli/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	c, err := config.Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.LogLevel != "info" || c.LogEncoding != "console" {
		t.Fatalf("log defaults = %q %q", c.LogLevel, c.LogEncoding)
	}
	if c.DisplayMaxRows != 10 || c.DisplayMinWidth != 8 || c.DisplayMaxWidth != 20 {
		t.Fatalf("display defaults = %d %d %d", c.DisplayMaxRows, c.DisplayMinWidth, c.DisplayMaxWidth)
	}
	if c.ReportPrecision != 2 || c.ExportFormat != "json" || c.ExportCompression != "none" {
		t.Fatalf("defaults = %+v", c)
	}
	if want := filepath.Join(home, ".tabloom", "projects"); c.ProjectsDir != want {
		t.Fatalf("projects_dir = %q, want %q", c.ProjectsDir, want)
	}
}

func TestSaveAndReload(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.yaml")

	c, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	c.DisplayMaxRows = 25
	c.Delimiter = ";"
	if err := config.Save(c, path); err != nil {
		t.Fatalf("save: %v", err)
	}
	again, err := config.Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if again.DisplayMaxRows != 25 || again.Delimiter != ";" {
		t.Fatalf("reloaded = %+v", again)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TABLOOM_LOG_LEVEL", "debug")
	t.Setenv("TABLOOM_DISPLAY_MAX_WIDTH", "40")

	c, err := config.Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.LogLevel != "debug" || c.DisplayMaxWidth != 40 {
		t.Fatalf("env not applied: %+v", c)
	}
}

func TestBrokenConfigFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("display_max_rows: [unclosed\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := config.Load(path); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}

func TestDefaultsMatchLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	c, err := config.Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	d := config.Defaults()
	d.ProjectsDir = c.ProjectsDir
	if *c != *d {
		t.Fatalf("Load() = %+v, want %+v", *c, *d)
	}
}
