package analysis

import (
	"context"
	"sort"

	"calsdt/domain/run"
	"calsdt/domain/verdict"

	"golang.org/x/sync/semaphore"
)

// batchChunk is how many lines one goroutine evaluates at a time
const batchChunk = 512

// Result is one accepted number with its final score
type Result = run.Entry

// BatchResult is the ranked output of a batch run plus rejection statistics
type BatchResult struct {
	Results    []Result                        `json:"results"`
	Total      int                             `json:"total"`
	Accepted   int                             `json:"accepted"`
	Rejections map[verdict.RejectionReason]int `json:"rejections"`
	Summary    Summary                         `json:"summary"`
}

// Analyze evaluates every line, drops the rejects and ranks the rest. Lines
// are evaluated in parallel but collected by input position, so the ranking
// does not depend on completion order. If ctx is cancelled, chunks not yet
// started are skipped and ctx.Err() is returned.
func (p *Pipeline) Analyze(ctx context.Context, lines []string) (*BatchResult, error) {
	evaluations := make([]Evaluation, len(lines))

	sem := semaphore.NewWeighted(int64(p.workers))
	var runErr error
	for start := 0; start < len(lines); start += batchChunk {
		end := start + batchChunk
		if end > len(lines) {
			end = len(lines)
		}
		if err := sem.Acquire(ctx, 1); err != nil {
			runErr = err
			break
		}
		go func(start, end int) {
			defer sem.Release(1)
			for i := start; i < end; i++ {
				evaluations[i] = p.Evaluate(lines[i])
			}
		}(start, end)
	}

	// wait for in-flight chunks regardless of ctx
	if err := sem.Acquire(context.Background(), int64(p.workers)); err != nil {
		return nil, err
	}
	if runErr != nil {
		return nil, runErr
	}

	return collect(evaluations), nil
}

func collect(evaluations []Evaluation) *BatchResult {
	out := &BatchResult{
		Total:      len(evaluations),
		Rejections: make(map[verdict.RejectionReason]int),
	}

	accepted := make([]Result, 0, len(evaluations)/4)
	for _, ev := range evaluations {
		if ev.Accepted() {
			accepted = append(accepted, Result{Number: ev.Number, Score: ev.Score.Final})
			continue
		}
		if ev.Rejection != nil {
			out.Rejections[ev.Rejection.Reason]++
		}
	}

	out.Results = Rank(accepted)
	out.Accepted = len(out.Results)
	out.Summary = Summarize(out.Results)
	return out
}

// Rank returns the results sorted by score, highest first. Equal scores keep
// their input order.
func Rank(results []Result) []Result {
	ranked := make([]Result, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
