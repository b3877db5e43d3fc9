package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/budget-planner/planner-api/libs/go/logger"
	"github.com/budget-planner/planner-api/libs/go/middleware"
	"github.com/budget-planner/planner-api/libs/go/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	logger.Log = zap.NewNop()
}

type testEnv struct {
	router     *gin.Engine
	store      *mocks.MockProfileStore
	projection *mocks.MockProjectionService
}

// newTestEnv wires the profile and projection handlers on their API paths
// with mocked services
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		router:     gin.New(),
		store:      mocks.NewMockProfileStoreForTest(t),
		projection: mocks.NewMockProjectionServiceForTest(t),
	}
	common := NewCommonServices(CommonServicesConfig{
		Store:      env.store,
		Projection: env.projection,
		Location:   time.UTC,
		Logger:     zap.NewNop(),
	})
	profiles := NewProfileHandler(common)
	projections := NewProjectionHandler(common)

	env.router.Use(middleware.CorrelationIDMiddleware())
	v1 := env.router.Group("/api/v1")
	v1.GET("/profiles", profiles.ListProfiles)
	v1.POST("/profiles", profiles.CreateProfile)
	v1.GET("/profiles/:profile", profiles.GetProfile)
	v1.DELETE("/profiles/:profile", profiles.DeleteProfile)
	v1.PUT("/profiles/:profile/default", profiles.SetDefaultProfile)

	tl := v1.Group("/profiles/:profile/timelines/:timeline")
	tl.GET("/operations", profiles.ListOperations)
	tl.PUT("/operations", profiles.SaveOperations)
	tl.GET("/projection", projections.GetProjection)
	tl.GET("/projection/amount", projections.GetAmount)
	tl.GET("/projection/series", projections.GetSeries)
	tl.GET("/projection/chart", projections.GetChart)

	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

