package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/KaramelBytes/tabloom-cli/internal/utils"
)

const (
	projectFileName = "project.json"
	reportsDirName  = "reports"
)

// Project is a named folder of saved reports, persisted as project.json.
type Project struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Reports     map[string]*Entry `json:"reports"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`

	rootDir string
}

// NewProject constructs an in-memory project. Call Save() to persist.
func NewProject(name, description, rootDir string) *Project {
	now := time.Now()
	return &Project{
		Name:        name,
		Description: description,
		Reports:     make(map[string]*Entry),
		CreatedAt:   now,
		UpdatedAt:   now,
		rootDir:     rootDir,
	}
}

// LoadProject loads a project.json from the provided directory.
func LoadProject(dir string) (*Project, error) {
	path := filepath.Join(dir, projectFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("project not found at %s: %w", path, err)
		}
		return nil, fmt.Errorf("read project: %w", err)
	}
	var p Project
	if err := json.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("parse project: %w", err)
	}
	if p.Reports == nil {
		p.Reports = make(map[string]*Entry)
	}
	p.rootDir = dir
	return &p, nil
}

// RootDir returns the on-disk project directory path.
func (p *Project) RootDir() string { return p.rootDir }

// ReportsDir is where report bodies are written.
func (p *Project) ReportsDir() string { return filepath.Join(p.rootDir, reportsDirName) }

// Save writes project.json using atomic write.
func (p *Project) Save() error {
	if p.rootDir == "" {
		return errors.New("project root directory not set")
	}
	if err := utils.EnsureDir(p.rootDir); err != nil {
		return fmt.Errorf("ensure dir: %w", err)
	}
	p.UpdatedAt = time.Now()
	data, err := utils.PrettyJSON(p)
	if err != nil {
		return err
	}
	return utils.SafeWriteFile(filepath.Join(p.rootDir, projectFileName), data)
}

// AddReport writes body under reports/ and records it. The file is named
// after the source (and sheet) plus the report kind; an existing file gets a
// __2, __3, ... suffix instead of being overwritten. Call Save() to persist
// the entry.
func (p *Project) AddReport(e Entry, body []byte) (*Entry, error) {
	dir := p.ReportsDir()
	if err := utils.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("ensure reports dir: %w", err)
	}
	base := filepath.Base(e.Source)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if e.Sheet != "" {
		stem += "__sheet-" + slug(e.Sheet, "sheet")
	}
	stem += "." + slug(e.Kind, "report")

	name := stem + ".txt"
	for i := 2; ; i++ {
		if _, err := os.Stat(filepath.Join(dir, name)); os.IsNotExist(err) {
			break
		}
		name = fmt.Sprintf("%s__%d.txt", stem, i)
	}
	if err := utils.SafeWriteFile(filepath.Join(dir, name), body); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}

	e.ID = uuid.NewString()
	e.File = filepath.Join(reportsDirName, name)
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	if p.Reports == nil {
		p.Reports = make(map[string]*Entry)
	}
	entry := &e
	p.Reports[e.ID] = entry
	p.UpdatedAt = time.Now()
	return entry, nil
}

// SortedReports returns the entries oldest first, ties broken by file name.
func (p *Project) SortedReports() []*Entry {
	out := make([]*Entry, 0, len(p.Reports))
	for _, e := range p.Reports {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].File < out[j].File
	})
	return out
}

// slug lowercases s and keeps [a-z0-9], mapping space, dash and underscore
// to '-'.
func slug(s, fallback string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('-')
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return fallback
	}
	return out
}
