package handlers

import (
	"fmt"
	"net/http"

	"github.com/budget-planner/planner-api/apps/api/constants"
	"github.com/budget-planner/planner-api/libs/go/helpers"
	"github.com/budget-planner/planner-api/libs/go/types/api/requests"
	"github.com/budget-planner/planner-api/libs/go/types/api/responses"
	"github.com/budget-planner/planner-api/libs/go/types/business"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileHandler serves profiles and the operations of their timelines
type ProfileHandler struct {
	common *CommonServices
}

// NewProfileHandler creates a profile handler
func NewProfileHandler(common *CommonServices) *ProfileHandler {
	return &ProfileHandler{common: common}
}

// ListProfiles returns every profile
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.common.store.ListProfiles(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendList(c, helpers.ToProfileSummaryResponses(profiles))
}

// CreateProfile creates a profile with an empty default timeline
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	var req requests.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, constants.InvalidRequestBody, err)
		return
	}

	profile, err := h.common.store.CreateProfile(c.Request.Context(), req.Name, req.IsDefault)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	for _, t := range profile.Timelines {
		h.common.projection.Invalidate(profile.Name, t.Name)
	}

	h.common.logger.Info("Profile created", zap.String("profile", profile.Name))
	sendSuccess(c, http.StatusCreated, helpers.ToProfileResponse(profile))
}

// GetProfile returns a profile with all of its timelines
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.common.store.GetProfile(c.Request.Context(), c.Param("profile"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, helpers.ToProfileResponse(profile))
}

// DeleteProfile deletes a profile and forgets its cached projections
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	ctx := c.Request.Context()
	name := c.Param("profile")

	profile, err := h.common.store.GetProfile(ctx, name)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	if err := h.common.store.DeleteProfile(ctx, name); err != nil {
		handleServiceError(c, err)
		return
	}
	for _, t := range profile.Timelines {
		h.common.projection.Invalidate(name, t.Name)
	}

	sendSuccessMessage(c, http.StatusOK, fmt.Sprintf("profile %q deleted", name))
}

// SetDefaultProfile marks a profile as the default one
func (h *ProfileHandler) SetDefaultProfile(c *gin.Context) {
	name := c.Param("profile")
	if err := h.common.store.SetDefaultProfile(c.Request.Context(), name); err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccessMessage(c, http.StatusOK, fmt.Sprintf("profile %q is now the default", name))
}

// ListOperations returns the operations of a timeline
func (h *ProfileHandler) ListOperations(c *gin.Context) {
	profile, timelineName := c.Param("profile"), c.Param("timeline")

	ops, err := h.common.store.ListOperations(c.Request.Context(), profile, timelineName)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, responses.OperationsResponse{
		Object:   "list",
		Profile:  profile,
		Timeline: timelineName,
		Data:     business.ToDocuments(ops),
	})
}

// SaveOperations validates and replaces the operations of a timeline
func (h *ProfileHandler) SaveOperations(c *gin.Context) {
	profile, timelineName := c.Param("profile"), c.Param("timeline")

	var req requests.SaveOperationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, constants.InvalidRequestBody, err)
		return
	}
	for i, doc := range req.Operations {
		if err := doc.Validate(); err != nil {
			sendError(c, http.StatusBadRequest, fmt.Sprintf("operation %d: %s", i, err), err)
			return
		}
	}
	ops, err := business.FromDocuments(req.Operations, h.common.location)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	if err := h.common.store.SaveOperations(c.Request.Context(), profile, timelineName, ops); err != nil {
		handleServiceError(c, err)
		return
	}
	h.common.projection.Invalidate(profile, timelineName)

	stored, err := h.common.store.ListOperations(c.Request.Context(), profile, timelineName)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, responses.OperationsResponse{
		Object:   "list",
		Profile:  profile,
		Timeline: timelineName,
		Data:     business.ToDocuments(stored),
	})
}
