package responses

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error         string `json:"error"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by the health check
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Stage   string `json:"stage,omitempty"`
}

// ListResponse wraps list payloads
type ListResponse struct {
	Object string      `json:"object"`
	Data   interface{} `json:"data"`
}
