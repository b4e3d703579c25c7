// Package analysis runs candidate numbers through the gates and the scorer.
// Single-number checks and batch runs share one evaluation path, so a
// reason reported for a number always matches its batch fate.
package analysis

import (
	"runtime"

	"calsdt/domain/element"
	"calsdt/domain/phone"
	"calsdt/domain/verdict"
	"calsdt/internal/referee"
)

// Stage is the last pipeline stage a number completed
type Stage string

const (
	StageReceived       Stage = "received"
	StageParsed         Stage = "parsed"
	StageCustomFiltered Stage = "custom_filtered"
	StageStaticChecked  Stage = "static_checked"
	StageModeFiltered   Stage = "mode_filtered"
	StageScored         Stage = "scored"
)

const malformedMessage = "must have 10 digits"

// Evaluation is everything the pipeline learned about one input line
type Evaluation struct {
	Input       string               `json:"input"`
	Number      string               `json:"number,omitempty"`
	Transformed string               `json:"transformed,omitempty"`
	Stage       Stage                `json:"stage"`
	Gates       []referee.GateResult `json:"gates,omitempty"`
	Counts      map[string]int       `json:"counts,omitempty"`
	Score       *Score               `json:"score,omitempty"`
	Rejection   *verdict.Rejection   `json:"rejection,omitempty"`
}

// Accepted reports whether every stage passed
func (e Evaluation) Accepted() bool {
	return e.Rejection == nil && e.Score != nil
}

// Outcome converts the evaluation to the single-check result
func (e Evaluation) Outcome() verdict.Outcome {
	if e.Accepted() {
		return verdict.Accept(e.Score.Final)
	}
	return verdict.Reject(*e.Rejection)
}

// Pipeline evaluates numbers against one immutable Config. It holds no
// mutable state and is safe for concurrent use.
type Pipeline struct {
	cfg     Config
	roles   element.Roles
	custom  referee.CustomFilters
	scorer  Scorer
	workers int
}

// Option customises a Pipeline
type Option func(*Pipeline)

// WithWorkers bounds how many goroutines Analyze uses. Values below 1 mean
// runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.workers = n
		}
	}
}

// NewPipeline compiles cfg once for reuse across many numbers
func NewPipeline(cfg Config, opts ...Option) *Pipeline {
	if !cfg.UserMenh.Valid() {
		cfg.UserMenh = DefaultConfig().UserMenh
	}
	p := &Pipeline{
		cfg:     cfg,
		roles:   element.RolesFor(cfg.UserMenh),
		custom:  referee.NewCustomFilters(cfg.Custom),
		scorer:  NewScorer(cfg),
		workers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Config returns the pipeline's configuration
func (p *Pipeline) Config() Config {
	return p.cfg
}

// Evaluate runs one line and stops at the first failing check
func (p *Pipeline) Evaluate(line string) Evaluation {
	return p.run(line, false)
}

// Explain runs every check and the scorer even after a failure. The
// rejection is still the first failing check, so Explain and Evaluate agree.
func (p *Pipeline) Explain(line string) Evaluation {
	return p.run(line, true)
}

// Check is the single-number entry point
func (p *Pipeline) Check(line string) verdict.Outcome {
	return p.Evaluate(line).Outcome()
}

func (p *Pipeline) run(line string, trace bool) Evaluation {
	ev := Evaluation{Input: line, Stage: StageReceived}

	n, err := phone.Extract(line)
	if err != nil {
		ev.Rejection = &verdict.Rejection{Reason: verdict.ReasonMalformed, Message: malformedMessage}
		return ev
	}
	ev.Number = n.String()
	ev.Stage = StageParsed

	// record returns true when evaluation should stop
	record := func(results ...referee.GateResult) bool {
		ev.Gates = append(ev.Gates, results...)
		if ev.Rejection == nil {
			if failed, ok := referee.FirstFailure(results); ok {
				r := failed.Rejection()
				ev.Rejection = &r
			}
		}
		return ev.Rejection != nil && !trace
	}

	if record(p.custom.Check(n, !trace)...) {
		return ev
	}
	if ev.Rejection == nil {
		ev.Stage = StageCustomFiltered
	}

	if p.cfg.StaticBalance {
		if record(referee.StaticBalance(n.Digits())) {
			return ev
		}
	}
	if ev.Rejection == nil {
		ev.Stage = StageStaticChecked
	}

	transformed := n.Transformed()
	counts := phone.ElementCounts(transformed)
	ev.Transformed = digitsString(transformed)
	ev.Counts = countsMap(counts)

	var modeResults []referee.GateResult
	switch p.cfg.Mode {
	case ModeAbsoluteBalance:
		modeResults = []referee.GateResult{referee.AbsoluteBalance(counts)}
	default:
		modeResults = referee.Compatibility(counts, p.roles, p.cfg.Thresholds, p.cfg.Completeness, !trace)
	}
	if record(modeResults...) {
		return ev
	}
	if ev.Rejection == nil {
		ev.Stage = StageModeFiltered
	}

	score := p.scorer.Score(transformed)
	ev.Score = &score
	if ev.Rejection == nil {
		ev.Stage = StageScored
	}
	return ev
}

func digitsString(d phone.Digits) string {
	b := make([]byte, len(d))
	for i, v := range d {
		b[i] = '0' + v
	}
	return string(b)
}

func countsMap(c phone.Counts) map[string]int {
	m := make(map[string]int, element.Count)
	for _, e := range element.All {
		m[e.String()] = c.Of(e)
	}
	return m
}
