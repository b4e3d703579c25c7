package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	apperrors "calsdt/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// RouterConfig carries what NewRouter needs besides the handler
type RouterConfig struct {
	MaxBodyBytes int64
	Gatherer     prometheus.Gatherer
	Logger       *zap.Logger
}

// NewRouter wires the routes, body limit, request logging and metrics
func NewRouter(h *AnalysisHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(cfg.Logger, h.metrics))
	router.Use(bodyLimit(cfg.MaxBodyBytes))

	router.GET("/healthz", h.Health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))

	api := router.Group("/api")
	{
		api.POST("/analyze", h.Analyze)
		api.POST("/check", h.Check)
	}
	return router
}

func requestLogger(logger *zap.Logger, metrics *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		metrics.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
		logger.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Duration("elapsed", time.Since(start)))
	}
}

func bodyLimit(max int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if max > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, max)
		}
		c.Next()
	}
}

func readBody(c *gin.Context) ([]byte, bool) {
	body, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": "request body too large",
				"code":  apperrors.CodeInvalidInput,
			})
			return nil, false
		}
		writeError(c, apperrors.InvalidInput(err.Error()))
		return nil, false
	}
	return body, true
}

func writeError(c *gin.Context, err error) {
	code := apperrors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case apperrors.CodeInvalidInput, apperrors.CodeConfigInvalid:
		status = http.StatusBadRequest
	}
	if ctxErr := c.Request.Context().Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"error": err.Error(), "code": code})
}
