// Package report renders the per-file outcome of a formatting batch.
package report

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bjaus/textfmt"
)

// ErrUnsupportedFormat is returned for an unknown report format.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// Format is a report output format.
type Format string

const (
	Plain    Format = "plain"
	Table    Format = "table"
	Markdown Format = "markdown"
	JSON     Format = "json"
	YAML     Format = "yaml"
)

var formats = []Format{Plain, Table, Markdown, JSON, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name, as given on the command line.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Status values of an [Entry].
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Entry is the rendered view of one [textfmt.Result].
type Entry struct {
	Path     string `json:"path" yaml:"path"`
	Status   string `json:"status" yaml:"status"`
	Lines    int    `json:"lines" yaml:"lines"`
	Duration string `json:"duration" yaml:"duration"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Row returns the cells of e in header order.
func (e Entry) Row() []string {
	return []string{e.Status, e.Path, fmt.Sprint(e.Lines), e.Duration, e.Error}
}

var header = []string{"Status", "Path", "Lines", "Duration", "Error"}

var aligns = []alignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft}

// Entries converts batch results into report entries, preserving order.
func Entries(results []textfmt.Result) []Entry {
	out := make([]Entry, len(results))
	for i, r := range results {
		e := Entry{
			Path:     r.Path,
			Status:   StatusOK,
			Lines:    r.Lines,
			Duration: r.Duration.Round(time.Microsecond).String(),
		}
		if r.Err != nil {
			e.Status = StatusFailed
			e.Error = r.Err.Error()
		}
		out[i] = e
	}
	return out
}

// Summary counts succeeded and failed results.
func Summary(results []textfmt.Result) (ok, failed int) {
	for _, r := range results {
		if r.OK() {
			ok++
		} else {
			failed++
		}
	}
	return ok, failed
}

// Write renders results to w in format f.
func Write(w io.Writer, f Format, results []textfmt.Result) error {
	entries := Entries(results)
	switch f {
	case Plain:
		return writePlain(w, entries)
	case Table:
		return writeTable(w, entries)
	case Markdown:
		return writeMarkdown(w, entries)
	case JSON:
		return writeJSON(w, entries)
	case YAML:
		return writeYAML(w, entries)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}
