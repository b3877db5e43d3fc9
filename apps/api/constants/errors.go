package constants

// Error messages returned by the API handlers
const (
	ProfileNotFound      = "profile not found"
	TimelineNotFound     = "timeline not found"
	ProfileAlreadyExists = "profile already exists"
	InvalidRequestBody   = "invalid request body"
	InvalidQuery         = "invalid query parameters"
	InternalServerError  = "internal server error"
)
