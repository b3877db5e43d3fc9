package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DefaultMaxBodySize bounds request bodies; a timeline of operations is well below it
const DefaultMaxBodySize int64 = 1 << 20

// BodyLimitMiddleware rejects requests whose declared body exceeds maxBytes
// and caps the reader for the rest
func BodyLimitMiddleware(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
				"error":          "Request body too large",
				"correlation_id": GetCorrelationID(c),
			})
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
