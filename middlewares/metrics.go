package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/caprice1026-disc/aws-parody-page/metrics"
)

// Metrics records request counts and latencies per route template.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		metrics.IncHTTPRequest(c.Request.Method, route, c.Writer.Status())
		metrics.ObserveHTTPRequest(c.Request.Method, route, time.Since(start))
	}
}
