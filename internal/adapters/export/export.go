// Package export renders a grade report to CSV, JSON, PDF or XLSX.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/atvirokodosprendimai/deskkit/internal/domain"
)

var ErrNothingToExport = errors.New("nothing to export")

type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

var Formats = []Format{FormatCSV, FormatJSON, FormatPDF, FormatXLSX}

func ParseFormat(value string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q", value)
}

func (f Format) Ext() string { return "." + string(f) }

// DefaultFileName returns prefix_YYYY-MM-DD_HH-MM-SS.ext.
func DefaultFileName(prefix string, f Format, at time.Time) string {
	return prefix + "_" + at.Format("2006-01-02_15-04-05") + f.Ext()
}

// Write renders report in format f.
func Write(w io.Writer, f Format, report domain.GradeReport) error {
	switch f {
	case FormatCSV:
		return writeCSV(w, report)
	case FormatJSON:
		return writeJSON(w, report)
	case FormatPDF:
		return writePDF(w, report)
	case FormatXLSX:
		return writeXLSX(w, report)
	default:
		return fmt.Errorf("unknown export format %q", f)
	}
}

// WriteFile renders report to path, or to a timestamped file in dir when path
// is empty, and returns the path written. A report without rows writes
// nothing and returns ErrNothingToExport.
func WriteFile(dir, path string, f Format, report domain.GradeReport) (string, error) {
	if len(report.Rows) == 0 {
		return "", ErrNothingToExport
	}
	if path == "" {
		if dir == "" {
			dir = "."
		}
		path = filepath.Join(dir, DefaultFileName("noten", f, report.GeneratedAt))
	}

	var buf bytes.Buffer
	if err := Write(&buf, f, report); err != nil {
		return "", fmt.Errorf("render %s: %w", f, err)
	}
	if parent := filepath.Dir(path); parent != "." {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return "", fmt.Errorf("create export dir: %w", err)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}

	log.Info().Str("path", path).Str("format", string(f)).Int("rows", len(report.Rows)).Msg("grades exported")
	return path, nil
}

func formatGrade(value float64) string {
	return fmt.Sprintf("%.1f", value)
}
