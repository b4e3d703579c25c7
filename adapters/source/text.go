package source

import (
	"bufio"
	"context"
	"os"
	"strings"

	"calsdt/internal/errors"
	"calsdt/ports"
)

// maxLineBytes bounds a single input line; candidate lists never come close
const maxLineBytes = 1 << 20

// TextSource reads one candidate per line from a plain text file
type TextSource struct {
	path string
}

var _ ports.LineSource = (*TextSource)(nil)

// NewTextSource creates a text file source
func NewTextSource(path string) *TextSource {
	return &TextSource{path: path}
}

func (s *TextSource) Name() string { return s.path }

// ReadLines returns every line with its trailing CR stripped. Blank lines are
// kept so positions match the file.
func (s *TextSource) ReadLines(ctx context.Context) ([]string, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, errors.SourceError(s.path, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		if len(lines)%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.SourceError(s.path, err)
	}
	return lines, nil
}
