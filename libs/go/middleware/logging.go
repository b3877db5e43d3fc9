package middleware

import (
	"bytes"
	"io"
	"time"

	"github.com/budget-planner/planner-api/libs/go/logger"
	"github.com/gin-gonic/gin"
)

// maxLoggedBody caps the request body echoed by the development logger
const maxLoggedBody = 4 << 10

// RequestLoggingMiddleware logs method, path, status and duration of every request
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		LoggerFromContext(c.Request.Context(), logger.ComponentMiddleware).
			WithField("client_ip", c.ClientIP()).
			WithField("body_size", c.Writer.Size()).
			LogHTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}

// DevelopmentLoggingMiddleware additionally logs query strings and request
// bodies, and every error attached to the context. It does nothing unless
// enabled.
func DevelopmentLoggingMiddleware(enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enabled {
			c.Next()
			return
		}

		log := LoggerFromContext(c.Request.Context(), logger.ComponentMiddleware).
			WithField("http_method", c.Request.Method).
			WithField("http_path", c.Request.URL.Path)

		var body []byte
		if c.Request.Body != nil {
			body, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
		}
		logged := body
		if len(logged) > maxLoggedBody {
			logged = logged[:maxLoggedBody]
		}
		log.WithField("query", c.Request.URL.RawQuery).
			WithField("body", string(logged)).
			WithField("body_size", len(body)).
			Debug("Request details")

		c.Next()

		for _, err := range c.Errors {
			log.WithField("meta", err.Meta).Error("Request error", err.Err)
		}
	}
}
