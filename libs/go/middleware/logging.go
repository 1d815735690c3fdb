package middleware

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestMetrics records per-route request outcomes
type RequestMetrics interface {
	ObserveRequest(method, route string, status int, d time.Duration)
}

var redactedHeaders = map[string]bool{
	"Authorization": true,
	"Cookie":        true,
	"X-Api-Key":     true,
}

// RequestLoggingMiddleware logs one line per completed request and feeds the
// route-level metrics. Unmatched routes are recorded as "unmatched" to keep
// label cardinality bounded.
func RequestLoggingMiddleware(collector RequestMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		if collector != nil {
			collector.ObserveRequest(c.Request.Method, route, c.Writer.Status(), duration)
		}

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("route", route),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", duration),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("body_size", c.Writer.Size()),
		}
		log := LogWithCorrelationID(c.Request.Context())
		switch {
		case c.Writer.Status() >= 500:
			log.Error("Request completed", append(fields, zap.Strings("errors", c.Errors.Errors()))...)
		case len(c.Errors) > 0:
			log.Warn("Request completed", append(fields, zap.Strings("errors", c.Errors.Errors()))...)
		default:
			log.Info("Request completed", fields...)
		}
	}
}

// EnhancedLoggingMiddleware logs request headers and JSON bodies. It is a
// no-op outside development.
func EnhancedLoggingMiddleware(isDevelopment bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isDevelopment {
			c.Next()
			return
		}

		body, _ := drainBody(c)

		headers := make(map[string]string, len(c.Request.Header))
		for key, values := range c.Request.Header {
			if redactedHeaders[key] {
				headers[key] = "[REDACTED]"
				continue
			}
			headers[key] = strings.Join(values, ",")
		}

		var parsed interface{}
		if strings.HasPrefix(c.GetHeader("Content-Type"), "application/json") && len(body) > 0 {
			if err := json.Unmarshal(body, &parsed); err != nil {
				parsed = string(body)
			}
		}

		LogWithCorrelationID(c.Request.Context()).Debug("Request detail",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Any("headers", headers),
			zap.Any("body", parsed),
		)

		c.Next()
	}
}
