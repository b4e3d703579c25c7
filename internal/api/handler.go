package api

import (
	"net/http"
	"strings"

	"calsdt/adapters/report"
	"calsdt/app"
	"calsdt/domain/run"
	"calsdt/internal/analysis"
	"calsdt/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// AnalysisHandler serves the analyze and check endpoints
type AnalysisHandler struct {
	service *app.AnalysisService
	metrics *Metrics
	logger  *zap.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(service *app.AnalysisService, metrics *Metrics, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		service: service,
		metrics: metrics,
		logger:  logger,
	}
}

// AnalyzeResponse is the JSON body of a batch analysis
type AnalyzeResponse struct {
	RunID      string         `json:"run_id"`
	Count      int            `json:"count"`
	Total      int            `json:"total"`
	ElapsedMs  float64        `json:"elapsed_ms"`
	Results    []run.Entry    `json:"results"`
	Rejections map[string]int `json:"rejections"`
	Summary    run.Stats      `json:"summary"`
}

// Analyze ranks a list of candidates.
//
// Body: {"lines": ["..."], "config": {...}} or {"text": "one\nper\nline", "config": {...}}.
// The config is decoded leniently; missing or invalid options take their defaults.
// ?format=txt|csv|html|table|xlsx returns the rendered report instead of JSON.
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}
	if !gjson.ValidBytes(body) {
		writeError(c, errors.InvalidInput("request body must be JSON"))
		return
	}

	lines := requestLines(body)
	cfg := analysis.DecodeJSON([]byte(gjson.GetBytes(body, "config").Raw))

	rep, err := h.service.Analyze(c.Request.Context(), cfg, "", "api", lines)
	if err != nil {
		writeError(c, err)
		return
	}
	h.metrics.observeRun(rep.Elapsed.Seconds(), rep.Accepted, rep.Total, rep.Rejections)

	if format := c.Query("format"); format != "" && format != "json" {
		h.writeReport(c, format, rep)
		return
	}

	results := rep.Results
	if results == nil {
		results = []run.Entry{}
	}
	c.JSON(http.StatusOK, AnalyzeResponse{
		RunID:      rep.RunID.String(),
		Count:      rep.Accepted,
		Total:      rep.Total,
		ElapsedMs:  float64(rep.Elapsed.Microseconds()) / 1000,
		Results:    results,
		Rejections: rep.Rejections,
		Summary:    rep.Stats,
	})
}

func (h *AnalysisHandler) writeReport(c *gin.Context, name string, rep *run.Report) {
	format, err := report.ParseFormat(name, "")
	if err != nil {
		writeError(c, errors.WithCode(errors.CodeInvalidInput, err))
		return
	}

	c.Header("Content-Type", contentTypes[format])
	c.Status(http.StatusOK)
	sink, err := report.NewWriterSink(c.Writer, "response", format)
	if err == nil {
		err = sink.Write(c.Request.Context(), rep)
	}
	if err != nil {
		// headers are gone; all that is left is to log it
		h.logger.Error("failed to render report",
			zap.String("run_id", rep.RunID.String()),
			zap.String("format", string(format)),
			zap.Error(err))
	}
}

var contentTypes = map[report.Format]string{
	report.FormatText:  "text/plain; charset=utf-8",
	report.FormatTable: "text/plain; charset=utf-8",
	report.FormatCSV:   "text/csv; charset=utf-8",
	report.FormatHTML:  "text/html; charset=utf-8",
	report.FormatXLSX:  "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	report.FormatJSON:  "application/json; charset=utf-8",
}

// Check evaluates one number.
//
// Body: {"number": "...", "config": {...}}. The response is {"Valid":{"score":x}}
// or {"Invalid":{"reason":"..."}}; with "explain": true it is
// {"outcome": ..., "trace": ...} carrying every gate result.
func (h *AnalysisHandler) Check(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}
	if !gjson.ValidBytes(body) {
		writeError(c, errors.InvalidInput("request body must be JSON"))
		return
	}

	number := gjson.GetBytes(body, "number")
	if number.Type != gjson.String {
		writeError(c, errors.InvalidInput("number must be a string"))
		return
	}
	cfg := analysis.DecodeJSON([]byte(gjson.GetBytes(body, "config").Raw))

	ev := h.service.Explain(cfg, number.String())
	outcome := ev.Outcome()
	if outcome.IsValid() {
		h.metrics.observeCheck(true, "")
	} else {
		h.metrics.observeCheck(false, string(outcome.Invalid.Code))
	}

	if gjson.GetBytes(body, "explain").Bool() {
		c.JSON(http.StatusOK, gin.H{"outcome": outcome, "trace": ev})
		return
	}
	c.JSON(http.StatusOK, outcome)
}

// Health reports liveness
func (h *AnalysisHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// requestLines takes "lines" when it is an array, else splits "text" on newlines
func requestLines(body []byte) []string {
	if arr := gjson.GetBytes(body, "lines"); arr.IsArray() {
		items := arr.Array()
		lines := make([]string, len(items))
		for i, item := range items {
			lines[i] = item.String()
		}
		return lines
	}
	text := gjson.GetBytes(body, "text").String()
	if text == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}
