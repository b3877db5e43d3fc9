package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCorrelationIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name                 string
		requestCorrelationID string
		expectNewID          bool
	}{
		{
			name:        "generates an ID when the header is missing",
			expectNewID: true,
		},
		{
			name:                 "keeps the ID sent by the client",
			requestCorrelationID: "test-correlation-id-123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fromGin, fromContext string
			router := gin.New()
			router.Use(CorrelationIDMiddleware())
			router.GET("/api/v1/profiles", func(c *gin.Context) {
				fromGin = GetCorrelationID(c)
				fromContext = CorrelationIDFromContext(c.Request.Context())
				c.Status(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles", nil)
			if tt.requestCorrelationID != "" {
				req.Header.Set(CorrelationIDHeader, tt.requestCorrelationID)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			header := w.Header().Get(CorrelationIDHeader)
			assert.Equal(t, header, fromGin)
			assert.Equal(t, header, fromContext)
			if tt.expectNewID {
				assert.Len(t, header, 36)
			} else {
				assert.Equal(t, tt.requestCorrelationID, header)
			}
		})
	}
}

func TestGetCorrelationID_Missing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Empty(t, GetCorrelationID(c))

	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, CorrelationIDFromContext(c.Request.Context()))
	assert.NotNil(t, LoggerFromContext(c.Request.Context(), "test"))
}
