package helpers

import (
	"github.com/budget-planner/planner-api/libs/go/timeline"
	"github.com/budget-planner/planner-api/libs/go/types/api/responses"
	"github.com/budget-planner/planner-api/libs/go/types/business"
)

// ToProfileSummaryResponses converts a profile listing to its API shape
func ToProfileSummaryResponses(profiles []business.ProfileSummary) []responses.ProfileSummaryResponse {
	out := make([]responses.ProfileSummaryResponse, len(profiles))
	for i, p := range profiles {
		out[i] = responses.ProfileSummaryResponse{Object: "profile_summary", Name: p.Name, IsDefault: p.IsDefault}
	}
	return out
}

// ToProfileResponse converts a profile with its timelines to its API shape
func ToProfileResponse(profile *business.Profile) responses.ProfileResponse {
	resp := responses.ProfileResponse{
		ID:        profile.ID.String(),
		Object:    "profile",
		Name:      profile.Name,
		Version:   profile.Version,
		IsDefault: profile.IsDefault,
		Timelines: make([]responses.TimelineResponse, len(profile.Timelines)),
	}
	if !profile.CreatedAt.IsZero() {
		resp.CreatedAt = profile.CreatedAt.Unix()
	}
	if !profile.UpdatedAt.IsZero() {
		resp.UpdatedAt = profile.UpdatedAt.Unix()
	}
	for i, t := range profile.Timelines {
		resp.Timelines[i] = responses.TimelineResponse{
			ID:         t.ID.String(),
			Object:     "timeline",
			Name:       t.Name,
			Operations: business.ToDocuments(t.Operations),
		}
	}
	return resp
}

// ToPointResponse converts a computed point to its API shape
func ToPointResponse(p timeline.ComputedDataPoint) responses.PointResponse {
	resp := responses.PointResponse{
		Date:        p.Date.Format(business.DateLayout),
		DayCode:     p.Code,
		Min:         p.Expected.Min,
		Max:         p.Expected.Max,
		Sum:         p.Expected.Sum,
		Actual:      p.Actual,
		Occurrences: make([]responses.OccurrenceResponse, len(p.Operations)),
	}
	for i, op := range p.Operations {
		resp.Occurrences[i] = responses.OccurrenceResponse{
			Type:       string(op.Result.Type()),
			Label:      op.Result.Base().Label,
			Amount:     op.Result.Base().Amount,
			SourceType: string(op.Source.Type()),
		}
	}
	return resp
}

// ToPointResponses converts a list of computed points
func ToPointResponses(points []timeline.ComputedDataPoint) []responses.PointResponse {
	out := make([]responses.PointResponse, len(points))
	for i, p := range points {
		out[i] = ToPointResponse(p)
	}
	return out
}

// ToSampleResponses converts a balance series
func ToSampleResponses(samples []business.BalanceSample) []responses.SampleResponse {
	out := make([]responses.SampleResponse, len(samples))
	for i, s := range samples {
		out[i] = responses.SampleResponse{Date: s.Date.Format(business.DateLayout), Amount: s.Amount}
	}
	return out
}
