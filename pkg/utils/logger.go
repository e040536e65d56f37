package utils

import (
	"go.uber.org/zap"
)

// NewLogger creates a new zap logger. Besides stderr/stdout, events are
// appended to logFile so the request history survives console scrollback
// (pass an empty string to disable the file sink).
func NewLogger(level, logFile string) (*zap.Logger, error) {
	var config zap.Config

	if level == "debug" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}

	// Parse log level
	var zapLevel zap.AtomicLevel
	switch level {
	case "debug":
		zapLevel = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapLevel = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapLevel = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		zapLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	config.Level = zapLevel

	if logFile != "" {
		config.OutputPaths = append(config.OutputPaths, logFile)
	}

	return config.Build()
}
