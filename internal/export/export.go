// Package export writes tables as JSON or Arrow IPC files, optionally
// compressed.
package export

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"go.uber.org/zap"

	"github.com/KaramelBytes/tabloom-cli/internal/logging"
	"github.com/KaramelBytes/tabloom-cli/internal/table"
	"github.com/KaramelBytes/tabloom-cli/internal/utils"
)

// Format is the payload encoding.
type Format string

const (
	JSON  Format = "json"
	Arrow Format = "arrow"
)

// ParseFormat accepts json or arrow (also "ipc"); the empty string means JSON.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return JSON, nil
	case "arrow", "ipc":
		return Arrow, nil
	}
	return "", fmt.Errorf("unsupported export format %q (use json or arrow)", s)
}

// Ext is the file suffix for the format, before any codec suffix.
func (f Format) Ext() string {
	if f == Arrow {
		return ".arrow"
	}
	return ".json"
}

type Options struct {
	Format Format
	Codec  Codec
}

// Write encodes t to w.
func Write(w io.Writer, t *table.Table, opt Options) error {
	cw, err := NewWriter(w, opt.Codec)
	if err != nil {
		return err
	}
	switch opt.Format {
	case JSON, "":
		err = writeJSON(cw, t)
	case Arrow:
		err = writeArrow(cw, t)
	default:
		err = fmt.Errorf("unsupported export format %q", opt.Format)
	}
	if err != nil {
		_ = cw.Close()
		return err
	}
	if err := cw.Close(); err != nil {
		return fmt.Errorf("flush %s: %w", opt.Codec, err)
	}
	return nil
}

// WriteFile encodes t and atomically replaces path with the result. It
// returns the number of bytes written.
func WriteFile(path string, t *table.Table, opt Options) (int, error) {
	var buf bytes.Buffer
	if err := Write(&buf, t, opt); err != nil {
		return 0, err
	}
	if err := utils.SafeWriteFile(path, buf.Bytes()); err != nil {
		return 0, err
	}
	logging.L().Info("table exported",
		zap.String("path", path),
		zap.String("format", string(opt.Format)),
		zap.String("codec", string(opt.Codec)),
		zap.Int("bytes", buf.Len()),
	)
	return buf.Len(), nil
}

func writeJSON(w io.Writer, t *table.Table) error {
	b, err := t.ToJSON()
	if err != nil {
		return err
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

func writeArrow(w io.Writer, t *table.Table) error {
	mem := memory.NewGoAllocator()
	rec, err := t.ToArrow(mem)
	if err != nil {
		return fmt.Errorf("convert to arrow: %w", err)
	}
	defer rec.Release()

	fw, err := ipc.NewFileWriter(w, ipc.WithSchema(rec.Schema()), ipc.WithAllocator(mem))
	if err != nil {
		return fmt.Errorf("create arrow writer: %w", err)
	}
	if err := fw.Write(rec); err != nil {
		_ = fw.Close()
		return fmt.Errorf("write record batch: %w", err)
	}
	if err := fw.Close(); err != nil {
		return fmt.Errorf("close arrow writer: %w", err)
	}
	return nil
}
