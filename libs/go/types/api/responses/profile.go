package responses

import "github.com/budget-planner/planner-api/libs/go/types/business"

// ProfileSummaryResponse is one entry of the profile listing
type ProfileSummaryResponse struct {
	Object    string `json:"object"`
	Name      string `json:"name"`
	IsDefault bool   `json:"is_default"`
}

// TimelineResponse is a timeline with its operations
type TimelineResponse struct {
	ID         string                       `json:"id"`
	Object     string                       `json:"object"`
	Name       string                       `json:"name"`
	Operations []business.OperationDocument `json:"operations"`
}

// ProfileResponse is a profile with all of its timelines
type ProfileResponse struct {
	ID        string             `json:"id"`
	Object    string             `json:"object"`
	Name      string             `json:"name"`
	Version   int                `json:"version"`
	IsDefault bool               `json:"is_default"`
	Timelines []TimelineResponse `json:"timelines"`
	CreatedAt int64              `json:"created_at,omitempty"`
	UpdatedAt int64              `json:"updated_at,omitempty"`
}

// OperationsResponse lists the operations of one timeline
type OperationsResponse struct {
	Object   string                       `json:"object"`
	Profile  string                       `json:"profile"`
	Timeline string                       `json:"timeline"`
	Data     []business.OperationDocument `json:"data"`
}
