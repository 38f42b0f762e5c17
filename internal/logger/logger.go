// Package logger builds the zap loggers used by the command line tools.
package logger

import (
	"fmt"

	"github.com/blendle/zapdriver"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewDevelopment returns a new *zap.Logger for local use.
// Logging is enabled at DebugLevel and above.
func NewDevelopment(service string) (*zap.Logger, error) {
	return newLoggerFromConfig(zapdriver.NewDevelopmentConfig(), service, zapcore.DebugLevel)
}

// NewProduction returns a new *zap.Logger with structured output
// enabled at the given level and above.
func NewProduction(service string, level zapcore.Level) (*zap.Logger, error) {
	return newLoggerFromConfig(zapdriver.NewProductionConfig(), service, level)
}

func newLoggerFromConfig(cfg zap.Config, service string, level zapcore.Level) (*zap.Logger, error) {
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.InitialFields = map[string]interface{}{
		"service": service,
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("config build: %w", err)
	}

	return log, nil
}
