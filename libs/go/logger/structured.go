package logger

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogComponent represents different system components for filtering
type LogComponent string

const (
	ComponentAPI        LogComponent = "api"
	ComponentDB         LogComponent = "database"
	ComponentStore      LogComponent = "store"
	ComponentProjection LogComponent = "projection"
	ComponentMiddleware LogComponent = "middleware"
	ComponentServer     LogComponent = "server"
	ComponentCLI        LogComponent = "cli"
)

// LogContext holds structured context information for logs
type LogContext struct {
	CorrelationID string
	Profile       string
	Timeline      string
	Component     LogComponent
	Operation     string
	Duration      time.Duration
	Fields        map[string]interface{}
}

// StructuredLogger provides enhanced logging with structured context
type StructuredLogger struct {
	logger  *zap.Logger
	context LogContext
}

// NewStructuredLogger creates a new structured logger for a specific component.
// It writes through the global Log, falling back to a no-op logger when
// InitLogger has not been called.
func NewStructuredLogger(component LogComponent) *StructuredLogger {
	base := Log
	if base == nil {
		base = zap.NewNop()
	}
	return &StructuredLogger{
		logger:  base,
		context: LogContext{Component: component, Fields: make(map[string]interface{})},
	}
}

// WithField adds a field to the log context
func (sl *StructuredLogger) WithField(key string, value interface{}) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.Fields[key] = value
	return newLogger
}

// WithCorrelationID adds correlation ID to the log context
func (sl *StructuredLogger) WithCorrelationID(correlationID string) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.CorrelationID = correlationID
	return newLogger
}

// WithTimeline scopes the logger to a profile and one of its timelines
func (sl *StructuredLogger) WithTimeline(profile, timeline string) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.Profile = profile
	newLogger.context.Timeline = timeline
	return newLogger
}

// WithOperation adds operation name to the log context
func (sl *StructuredLogger) WithOperation(operation string) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.Operation = operation
	return newLogger
}

// WithDuration adds duration to the log context
func (sl *StructuredLogger) WithDuration(duration time.Duration) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.Duration = duration
	return newLogger
}

func (sl *StructuredLogger) clone() *StructuredLogger {
	newFields := make(map[string]interface{}, len(sl.context.Fields))
	for k, v := range sl.context.Fields {
		newFields[k] = v
	}

	ctx := sl.context
	ctx.Fields = newFields
	return &StructuredLogger{logger: sl.logger, context: ctx}
}

func (sl *StructuredLogger) buildFields() []zapcore.Field {
	fields := make([]zapcore.Field, 0, 6+len(sl.context.Fields))

	if sl.context.Component != "" {
		fields = append(fields, zap.String("component", string(sl.context.Component)))
	}
	if sl.context.CorrelationID != "" {
		fields = append(fields, zap.String("correlation_id", sl.context.CorrelationID))
	}
	if sl.context.Profile != "" {
		fields = append(fields, zap.String("profile", sl.context.Profile))
	}
	if sl.context.Timeline != "" {
		fields = append(fields, zap.String("timeline", sl.context.Timeline))
	}
	if sl.context.Operation != "" {
		fields = append(fields, zap.String("operation", sl.context.Operation))
	}
	if sl.context.Duration > 0 {
		fields = append(fields, zap.Duration("duration", sl.context.Duration))
	}

	for key, value := range sl.context.Fields {
		fields = append(fields, zap.Any(key, value))
	}

	return fields
}

// Debug logs a debug message with structured context
func (sl *StructuredLogger) Debug(msg string) {
	sl.logger.Debug(msg, sl.buildFields()...)
}

// Info logs an info message with structured context
func (sl *StructuredLogger) Info(msg string) {
	sl.logger.Info(msg, sl.buildFields()...)
}

// Warn logs a warning message with structured context
func (sl *StructuredLogger) Warn(msg string) {
	sl.logger.Warn(msg, sl.buildFields()...)
}

// Error logs an error message with structured context
func (sl *StructuredLogger) Error(msg string, err error) {
	fields := sl.buildFields()
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	sl.logger.Error(msg, fields...)
}

// LogOperation runs fn and logs its outcome with timing
func (sl *StructuredLogger) LogOperation(operation string, fn func() error) error {
	start := time.Now()
	err := fn()

	opLogger := sl.WithOperation(operation).WithDuration(time.Since(start))
	if err != nil {
		opLogger.Error("Operation failed", err)
	} else {
		opLogger.Debug("Operation completed")
	}

	return err
}

// LogHTTPRequest logs HTTP request details
func (sl *StructuredLogger) LogHTTPRequest(method, path string, statusCode int, duration time.Duration) {
	l := sl.WithField("http_method", method).
		WithField("http_path", path).
		WithField("http_status", statusCode).
		WithDuration(duration)

	switch {
	case statusCode >= 500:
		l.Error("HTTP request failed", nil)
	case statusCode >= 400:
		l.Warn("HTTP request rejected")
	default:
		l.Info("HTTP request processed")
	}
}
