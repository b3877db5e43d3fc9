package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/budget-planner/planner-api/libs/go/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	previous := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = previous })
	return logs
}

func TestRequestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logs := observeLogs(t)

	router := gin.New()
	router.Use(CorrelationIDMiddleware(), RequestLoggingMiddleware())
	router.GET("/api/v1/profiles/:profile", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profiles/ghost", nil)
	req.Header.Set(CorrelationIDHeader, "corr-1")
	router.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("HTTP request rejected").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "corr-1", fields["correlation_id"])
	assert.Equal(t, "/api/v1/profiles/:profile", fields["http_path"])
	assert.EqualValues(t, http.StatusNotFound, fields["http_status"])
}

func TestDevelopmentLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := func(c *gin.Context) {
		body, _ := c.GetRawData()
		c.String(http.StatusOK, string(body))
	}

	t.Run("disabled", func(t *testing.T) {
		logs := observeLogs(t)
		router := gin.New()
		router.Use(DevelopmentLoggingMiddleware(false))
		router.PUT("/ops", handler)

		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPut, "/ops", strings.NewReader(`[]`)))
		assert.Zero(t, logs.FilterMessage("Request details").Len())
	})

	t.Run("logs the body and keeps it readable", func(t *testing.T) {
		logs := observeLogs(t)
		router := gin.New()
		router.Use(DevelopmentLoggingMiddleware(true))
		router.PUT("/ops", handler)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/ops?x=1", strings.NewReader(`[{"type":"OneTime"}]`)))

		assert.Equal(t, `[{"type":"OneTime"}]`, w.Body.String())
		entries := logs.FilterMessage("Request details").All()
		require.Len(t, entries, 1)
		assert.Equal(t, `[{"type":"OneTime"}]`, entries[0].ContextMap()["body"])
		assert.Equal(t, "x=1", entries[0].ContextMap()["query"])
	})
}

func TestBodyLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(BodyLimitMiddleware(8))
	router.PUT("/ops", func(c *gin.Context) {
		if _, err := c.GetRawData(); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/ops", strings.NewReader(`[]`)))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/ops", strings.NewReader(`[{"type":"OneTime"}]`)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "Request body too large")
}
