package ports

import (
	"context"
)

// LineSource supplies raw candidate lines in their original order.
// Sources never filter or normalize: a malformed line is still a line.
type LineSource interface {
	// Name identifies the source in logs and reports, e.g. a file path
	Name() string
	ReadLines(ctx context.Context) ([]string, error)
}
