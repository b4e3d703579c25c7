package report

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"calsdt/domain/core"
	"calsdt/domain/run"
	"calsdt/internal/errors"
	"calsdt/ports"
)

// Format names an output encoding
type Format string

const (
	FormatText  Format = "txt"
	FormatCSV   Format = "csv"
	FormatXLSX  Format = "xlsx"
	FormatHTML  Format = "html"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

type encoder func(w io.Writer, r *run.Report) error

var encoders = map[Format]encoder{
	FormatText:  writeText,
	FormatCSV:   writeCSV,
	FormatXLSX:  writeXLSX,
	FormatHTML:  writeHTML,
	FormatTable: writeTable,
	FormatJSON:  writeJSON,
}

// ParseFormat accepts a format name; "" infers it from the path extension,
// falling back to text.
func ParseFormat(name, path string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
		switch ext {
		case "htm":
			return FormatHTML, nil
		case "":
			return FormatText, nil
		}
		name = ext
	}
	if name == "text" {
		name = string(FormatText)
	}
	if _, ok := encoders[Format(name)]; !ok {
		return "", core.NewUnsupportedFormatError(name)
	}
	return Format(name), nil
}

// Sink writes a report in one format to a file or writer
type Sink struct {
	name   string
	format Format
	open   func() (io.WriteCloser, error)
}

var _ ports.ResultSink = (*Sink)(nil)

// NewFileSink writes to path, "-" meaning stdout. The file is created on Write,
// so a failed run never truncates a previous result.
func NewFileSink(path string, format Format) (*Sink, error) {
	if _, ok := encoders[format]; !ok {
		return nil, core.NewUnsupportedFormatError(string(format))
	}
	if path == "-" {
		return NewWriterSink(os.Stdout, "stdout", format)
	}
	return &Sink{
		name:   path,
		format: format,
		open: func() (io.WriteCloser, error) {
			return os.Create(path)
		},
	}, nil
}

// NewWriterSink writes to w, which is never closed
func NewWriterSink(w io.Writer, name string, format Format) (*Sink, error) {
	if _, ok := encoders[format]; !ok {
		return nil, core.NewUnsupportedFormatError(string(format))
	}
	return &Sink{
		name:   name,
		format: format,
		open: func() (io.WriteCloser, error) {
			return nopCloser{w}, nil
		},
	}, nil
}

func (s *Sink) Name() string { return s.name }

func (s *Sink) Format() Format { return s.format }

func (s *Sink) Write(ctx context.Context, r *run.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w, err := s.open()
	if err != nil {
		return errors.SinkError(s.name, err)
	}
	if err := encoders[s.format](w, r); err != nil {
		w.Close()
		return errors.SinkError(s.name, err)
	}
	if err := w.Close(); err != nil {
		return errors.SinkError(s.name, err)
	}
	return nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
