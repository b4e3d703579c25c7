package app

import (
	"context"
	"time"

	"calsdt/domain/core"
	"calsdt/domain/run"
	"calsdt/domain/verdict"
	"calsdt/internal/analysis"
	"calsdt/internal/errors"
	"calsdt/ports"

	"go.uber.org/zap"
)

// AnalysisService runs batch analyses: source lines through the pipeline,
// ranked, into one or more sinks
type AnalysisService struct {
	logger  *zap.Logger
	workers int
}

// AnalysisRequest defines the inputs of one batch run
type AnalysisRequest struct {
	Config analysis.Config
	Source ports.LineSource
	Sinks  []ports.ResultSink
	RunID  core.RunID // optional, will be generated if empty
}

// NewAnalysisService creates an analysis service. workers <= 0 uses one per CPU.
func NewAnalysisService(logger *zap.Logger, workers int) *AnalysisService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalysisService{logger: logger, workers: workers}
}

// Run reads the source, analyzes every line and writes the report to each sink.
// A sink failure aborts the remaining sinks.
func (s *AnalysisService) Run(ctx context.Context, req AnalysisRequest) (*run.Report, error) {
	if req.Source == nil {
		return nil, errors.InvalidInput("no line source")
	}

	lines, err := req.Source.ReadLines(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", req.Source.Name())
	}

	report, err := s.Analyze(ctx, req.Config, req.RunID, req.Source.Name(), lines)
	if err != nil {
		return nil, err
	}

	for _, sink := range req.Sinks {
		if err := sink.Write(ctx, report); err != nil {
			s.logger.Error("failed to write report",
				zap.String("run_id", report.RunID.String()),
				zap.String("sink", sink.Name()),
				zap.Error(err))
			return report, errors.Wrapf(err, "failed to write %s", sink.Name())
		}
		s.logger.Debug("report written",
			zap.String("run_id", report.RunID.String()),
			zap.String("sink", sink.Name()))
	}
	return report, nil
}

// Analyze runs the batch pipeline over lines already in memory
func (s *AnalysisService) Analyze(ctx context.Context, cfg analysis.Config, runID core.RunID, source string, lines []string) (*run.Report, error) {
	startTime := time.Now()
	if runID == "" {
		runID = core.NewRunID()
	}
	configHash := cfg.Hash()

	log := s.logger.With(
		zap.String("run_id", runID.String()),
		zap.String("source", source),
		zap.String("config", configHash.Short()),
	)
	log.Info("analysis started",
		zap.Int("lines", len(lines)),
		zap.String("mode", string(cfg.Mode)),
		zap.String("menh", cfg.UserMenh.String()))

	pipeline := analysis.NewPipeline(cfg, analysis.WithWorkers(s.workers))
	batch, err := pipeline.Analyze(ctx, lines)
	if err != nil {
		log.Warn("analysis aborted", zap.Error(err))
		return nil, errors.Wrap(err, "analysis aborted")
	}

	report := &run.Report{
		RunID:       runID,
		Fingerprint: run.NewFingerprint(configHash, lines),
		Source:      source,
		Mode:        string(cfg.Mode),
		Menh:        cfg.UserMenh.String(),
		StartedAt:   startTime,
		Elapsed:     time.Since(startTime),
		Total:       batch.Total,
		Accepted:    batch.Accepted,
		Rejections:  rejectionCounts(batch.Rejections),
		Results:     batch.Results,
		Stats:       batch.Summary,
	}

	log.Info("analysis completed",
		zap.Int("accepted", report.Accepted),
		zap.Int("rejected", report.Total-report.Accepted),
		zap.Duration("elapsed", report.Elapsed))
	return report, nil
}

// Check evaluates a single line
func (s *AnalysisService) Check(cfg analysis.Config, line string) verdict.Outcome {
	return analysis.NewPipeline(cfg).Check(line)
}

// Explain returns the full gate trace for a single line
func (s *AnalysisService) Explain(cfg analysis.Config, line string) analysis.Evaluation {
	return analysis.NewPipeline(cfg).Explain(line)
}

func rejectionCounts(in map[verdict.RejectionReason]int) map[string]int {
	out := make(map[string]int, len(in))
	for reason, n := range in {
		out[string(reason)] = n
	}
	return out
}
