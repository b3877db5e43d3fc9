package constants

// Common string constants used throughout the codebase
const (
	// Environments
	ProdEnvironment = "prod"

	// Service name attached to every log line
	ServiceName = "planner-api"
)
