package ports

import (
	"context"

	"calsdt/domain/run"
)

// ResultSink receives the ranked report of a finished batch run
type ResultSink interface {
	Name() string
	Write(ctx context.Context, report *run.Report) error
}
