package handlers

import (
	"net/http"

	"github.com/budget-planner/planner-api/libs/go/constants"
	"github.com/budget-planner/planner-api/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	stage string
}

func NewHealthHandler(stage string) *HealthHandler {
	return &HealthHandler{stage: stage}
}

type HealthResponse = responses.HealthResponse

// Health reports that the server is up
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "ok",
		Service: constants.ServiceName,
		Stage:   h.stage,
	})
}
