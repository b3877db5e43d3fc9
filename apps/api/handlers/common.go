package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/budget-planner/planner-api/apps/api/constants"
	"github.com/budget-planner/planner-api/libs/go/interfaces"
	"github.com/budget-planner/planner-api/libs/go/logger"
	"github.com/budget-planner/planner-api/libs/go/middleware"
	"github.com/budget-planner/planner-api/libs/go/services"
	"github.com/budget-planner/planner-api/libs/go/timeline"
	"github.com/budget-planner/planner-api/libs/go/types/api/responses"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CommonServices holds the dependencies shared by every handler
type CommonServices struct {
	store      interfaces.ProfileStore
	projection interfaces.ProjectionService
	location   *time.Location
	logger     *zap.Logger
}

// CommonServicesConfig contains all dependencies needed to create CommonServices
type CommonServicesConfig struct {
	Store      interfaces.ProfileStore
	Projection interfaces.ProjectionService
	// Location maps query dates to calendar days; defaults to time.Local
	Location *time.Location
	Logger   *zap.Logger
}

// NewCommonServices creates a new instance of CommonServices
func NewCommonServices(config CommonServicesConfig) *CommonServices {
	if config.Logger == nil {
		config.Logger = logger.Log
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	if config.Location == nil {
		config.Location = time.Local
	}
	return &CommonServices{
		store:      config.Store,
		projection: config.Projection,
		location:   config.Location,
		logger:     config.Logger,
	}
}

// GetLogger returns the logger
func (s *CommonServices) GetLogger() *zap.Logger {
	return s.logger
}

// sendError logs err and sends a JSON error carrying the correlation ID
func sendError(c *gin.Context, statusCode int, message string, err error) {
	correlationID := middleware.GetCorrelationID(c)

	fields := []zap.Field{
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("correlation_id", correlationID),
		zap.Int("status", statusCode),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	if statusCode >= http.StatusInternalServerError {
		logger.Error(message, fields...)
	} else {
		logger.Warn(message, fields...)
	}

	c.JSON(statusCode, responses.ErrorResponse{
		Error:         message,
		CorrelationID: correlationID,
	})
}

// handleServiceError maps store and engine errors to HTTP statuses
func handleServiceError(c *gin.Context, err error) {
	var recurrenceErr *timeline.InvalidRecurrenceError
	switch {
	case errors.Is(err, services.ErrProfileNotFound):
		sendError(c, http.StatusNotFound, constants.ProfileNotFound, err)
	case errors.Is(err, services.ErrTimelineNotFound):
		sendError(c, http.StatusNotFound, constants.TimelineNotFound, err)
	case errors.Is(err, services.ErrProfileExists):
		sendError(c, http.StatusConflict, constants.ProfileAlreadyExists, err)
	case errors.Is(err, services.ErrInvalidName), errors.Is(err, services.ErrInvalidRange):
		sendError(c, http.StatusBadRequest, err.Error(), err)
	case errors.As(err, &recurrenceErr):
		sendError(c, http.StatusBadRequest, recurrenceErr.Error(), err)
	default:
		sendError(c, http.StatusInternalServerError, constants.InternalServerError, err)
	}
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendSuccessMessage is a helper function that sends a success message
func sendSuccessMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, responses.SuccessResponse{Message: message})
}

// sendList sends items wrapped in a list object
func sendList(c *gin.Context, items interface{}) {
	c.JSON(http.StatusOK, responses.ListResponse{Object: "list", Data: items})
}
