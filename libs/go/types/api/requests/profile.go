package requests

import "github.com/budget-planner/planner-api/libs/go/types/business"

// CreateProfileRequest represents the request body for creating a profile
type CreateProfileRequest struct {
	Name      string `json:"name" binding:"required,max=128"`
	IsDefault bool   `json:"is_default"`
}

// SaveOperationsRequest replaces the operations of a timeline
type SaveOperationsRequest struct {
	Operations []business.OperationDocument `json:"operations" binding:"required"`
}
