package handlers

import (
	"net/http"

	"github.com/budget-planner/planner-api/apps/api/constants"
	"github.com/budget-planner/planner-api/libs/go/chart"
	"github.com/budget-planner/planner-api/libs/go/helpers"
	"github.com/budget-planner/planner-api/libs/go/types/api/requests"
	"github.com/budget-planner/planner-api/libs/go/types/api/responses"
	"github.com/budget-planner/planner-api/libs/go/types/business"

	"github.com/gin-gonic/gin"
)

// ProjectionHandler serves balance projections of a timeline
type ProjectionHandler struct {
	common *CommonServices
}

// NewProjectionHandler creates a projection handler
func NewProjectionHandler(common *CommonServices) *ProjectionHandler {
	return &ProjectionHandler{common: common}
}

// GetProjection returns the computed points of a timeline
func (h *ProjectionHandler) GetProjection(c *gin.Context) {
	profile, timelineName := c.Param("profile"), c.Param("timeline")

	var query requests.ProjectionQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		sendError(c, http.StatusBadRequest, constants.InvalidQuery, err)
		return
	}
	from, err := helpers.ParseOptionalDate(query.From, h.common.location)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}
	to, err := helpers.ParseOptionalDate(query.To, h.common.location)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	points, err := h.common.projection.Points(c.Request.Context(), profile, timelineName, from, to, query.IncludePrevious)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, responses.ProjectionResponse{
		Object:   "list",
		Profile:  profile,
		Timeline: timelineName,
		Data:     helpers.ToPointResponses(points),
	})
}

// GetAmount returns the projected balance at a date
func (h *ProjectionHandler) GetAmount(c *gin.Context) {
	profile, timelineName := c.Param("profile"), c.Param("timeline")

	var query requests.AmountQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		sendError(c, http.StatusBadRequest, constants.InvalidQuery, err)
		return
	}
	date, err := helpers.ParseDate(query.Date, h.common.location)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	amount, err := h.common.projection.AmountAt(c.Request.Context(), profile, timelineName, date)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, responses.AmountResponse{
		Object:   "amount",
		Profile:  profile,
		Timeline: timelineName,
		Date:     date.Format(business.DateLayout),
		Amount:   amount,
	})
}

// GetSeries returns the balance sampled at a fixed step
func (h *ProjectionHandler) GetSeries(c *gin.Context) {
	profile, timelineName := c.Param("profile"), c.Param("timeline")

	var query requests.SeriesQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		sendError(c, http.StatusBadRequest, constants.InvalidQuery, err)
		return
	}
	from, err := helpers.ParseDate(query.From, h.common.location)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}
	to, err := helpers.ParseDate(query.To, h.common.location)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	samples, err := h.common.projection.Series(c.Request.Context(), profile, timelineName, from, to, query.StepDays)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, responses.SeriesResponse{
		Object:   "list",
		Profile:  profile,
		Timeline: timelineName,
		StepDays: query.StepDays,
		Data:     helpers.ToSampleResponses(samples),
	})
}

// GetChart returns the chart layout of a timeline
func (h *ProjectionHandler) GetChart(c *gin.Context) {
	profile, timelineName := c.Param("profile"), c.Param("timeline")

	var query requests.ChartQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		sendError(c, http.StatusBadRequest, constants.InvalidQuery, err)
		return
	}
	from, err := helpers.ParseOptionalDate(query.From, h.common.location)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}
	to, err := helpers.ParseOptionalDate(query.To, h.common.location)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	dims := chart.Dims{Width: query.Width, Height: query.Height}
	layout, err := h.common.projection.Chart(c.Request.Context(), profile, timelineName, from, to, dims)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, responses.ChartResponse{
		Object:   "chart",
		Profile:  profile,
		Timeline: timelineName,
		Chart:    layout,
	})
}
