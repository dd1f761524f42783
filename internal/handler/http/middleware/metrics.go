package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/digipants/quicksquad-api/internal/infrastructure/metrics"
)

// Metrics returns a gin middleware that records Prometheus metrics for HTTP
// requests: volume by method/path/status and a duration histogram.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip the metrics endpoint to avoid self-referential metrics
		if c.FullPath() == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(duration)
	}
}
