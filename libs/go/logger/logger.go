package logger

import (
	"fmt"
	"os"

	"github.com/budget-planner/planner-api/libs/go/constants"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process logger. It is a no-op until Init runs.
var Log = zap.NewNop()

// Format is the encoding of log entries
type Format string

const (
	FormatJSON    Format = "json"
	FormatConsole Format = "console"
)

// Config selects how the process logs
type Config struct {
	// Stage is attached to every JSON entry
	Stage  string
	Level  zapcore.Level
	Format Format
	// Color enables level colors in console output
	Color bool
}

// ConfigForStage returns the logging config of an API stage: JSON in prod,
// colored console elsewhere. LOG_LEVEL and LOG_FORMAT override the defaults;
// an unknown value is reported and ignored.
func ConfigForStage(stage string) (Config, []error) {
	cfg := Config{
		Stage:  stage,
		Level:  zapcore.InfoLevel,
		Format: FormatConsole,
		Color:  true,
	}
	if stage == constants.ProdEnvironment {
		cfg.Format = FormatJSON
		cfg.Color = false
	}

	var problems []error
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		level, err := zapcore.ParseLevel(raw)
		if err != nil {
			problems = append(problems, fmt.Errorf("LOG_LEVEL: %w", err))
		} else {
			cfg.Level = level
		}
	}
	switch raw := Format(os.Getenv("LOG_FORMAT")); raw {
	case "":
	case FormatJSON, FormatConsole:
		cfg.Format = raw
	default:
		problems = append(problems, fmt.Errorf("LOG_FORMAT: unknown format %q", raw))
	}
	return cfg, problems
}

// InitLogger sets up Log for an API stage
func InitLogger(stage string) {
	cfg, problems := ConfigForStage(stage)
	Init(cfg)
	for _, err := range problems {
		Log.Warn("Ignoring logging override", zap.Error(err))
	}
}

// Init replaces Log with a logger writing cfg's format to stderr
func Init(cfg Config) {
	var encoder zapcore.Encoder
	if cfg.Format == FormatJSON {
		enc := zap.NewProductionEncoderConfig()
		enc.TimeKey = "timestamp"
		enc.MessageKey = "message"
		enc.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(enc)
	} else {
		enc := zap.NewDevelopmentEncoderConfig()
		enc.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		enc.EncodeCaller = zapcore.ShortCallerEncoder
		if cfg.Color {
			enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
		}
		encoder = zapcore.NewConsoleEncoder(enc)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), zap.NewAtomicLevelAt(cfg.Level))
	opts := []zap.Option{zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)}
	if cfg.Format == FormatJSON {
		opts = append(opts, zap.Fields(
			zap.String("service", constants.ServiceName),
			zap.String("stage", cfg.Stage),
		))
	}
	Log = zap.New(core, opts...)
}

// Info logs a message at InfoLevel
func Info(msg string, fields ...zapcore.Field) {
	Log.Info(msg, fields...)
}

// Error logs a message at ErrorLevel
func Error(msg string, fields ...zapcore.Field) {
	Log.Error(msg, fields...)
}

// Debug logs a message at DebugLevel
func Debug(msg string, fields ...zapcore.Field) {
	Log.Debug(msg, fields...)
}

// Warn logs a message at WarnLevel
func Warn(msg string, fields ...zapcore.Field) {
	Log.Warn(msg, fields...)
}

// Fatal logs a message and exits with status 1
func Fatal(msg string, fields ...zapcore.Field) {
	Log.Fatal(msg, fields...)
}

// Sync flushes buffered entries. Errors from syncing a terminal are ignored.
func Sync() {
	_ = Log.Sync()
}
