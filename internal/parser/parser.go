// Package parser reads tabular files into raw header and row cells.
package parser

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/KaramelBytes/tabloom-cli/internal/logging"
	"github.com/KaramelBytes/tabloom-cli/internal/table"
)

// ErrUnsupported indicates a file format no registered reader handles.
var ErrUnsupported = errors.New("unsupported file format")

// Dataset is the raw content of a tabular file before type inference.
type Dataset struct {
	Name     string
	Path     string
	Headers  []string
	Rows     [][]string
	FileSize int64
}

// Table runs type inference over the dataset.
func (d *Dataset) Table() (*table.Table, error) {
	t, err := table.FromRows(d.Headers, d.Rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.Name, err)
	}
	return t, nil
}

// Options tunes the readers. Zero values mean auto-detect or first sheet.
type Options struct {
	// Delimiter for CSV. If 0, it is sniffed from the extension and header line.
	Delimiter rune
	// SheetName selects an XLSX sheet by name (case-insensitive).
	SheetName string
	// SheetIndex selects an XLSX sheet by 1-based sheetId when SheetName is empty.
	SheetIndex int
}

// Reader decodes one family of file formats.
type Reader interface {
	CanRead(path string) bool
	Read(path string, opt Options) (headers []string, rows [][]string, err error)
}

var registry []Reader

// Register adds a reader implementation to the registry.
func Register(r Reader) {
	registry = append(registry, r)
}

func init() {
	Register(csvReader{})
	Register(xlsxReader{})
}

// Load reads path with the first registered reader that accepts it.
func Load(path string, opt Options) (*Dataset, error) {
	var rd Reader
	for _, r := range registry {
		if r.CanRead(path) {
			rd = r
			break
		}
	}
	if rd == nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrUnsupported)
	}
	st, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat: %w", err)
	}
	headers, rows, err := rd.Read(path, opt)
	if err != nil {
		return nil, err
	}
	ds := &Dataset{
		Name:     filepath.Base(path),
		Path:     path,
		Headers:  headers,
		Rows:     rows,
		FileSize: st.Size(),
	}
	logging.L().Debug("dataset loaded",
		zap.String("path", path),
		zap.Int("rows", len(rows)),
		zap.Int("columns", len(headers)),
		zap.Int64("bytes", ds.FileSize),
	)
	return ds, nil
}

// Supported reports whether any registered reader accepts path.
func Supported(path string) bool {
	for _, r := range registry {
		if r.CanRead(path) {
			return true
		}
	}
	return false
}

// ParseDelimiter maps a flag or config value to a delimiter rune. The empty
// string means auto-detect and yields 0.
func ParseDelimiter(s string) (rune, error) {
	switch strings.ToLower(s) {
	case "":
		return 0, nil
	case ",", "comma":
		return ',', nil
	case "\t", "\\t", "tab":
		return '\t', nil
	case ";", "semicolon":
		return ';', nil
	case "|", "pipe":
		return '|', nil
	}
	return 0, fmt.Errorf("unsupported delimiter: %q (use ',' | ';' | 'tab' | '|')", s)
}
