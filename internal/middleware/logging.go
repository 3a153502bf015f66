package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

const (
	LogPrefixRequest   = "internal.middleware.Request"
	LogPrefixRateLimit = "internal.middleware.RateLimit"
)

// RequestLog logs every request with method, path, status and latency.
func (m Middleware) RequestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		m.l.Infof(c.Request.Context(), "%s: %s %s status=%d latency=%s",
			LogPrefixRequest, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
