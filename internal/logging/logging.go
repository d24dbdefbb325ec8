// Package logging sets up the debug logger. The TUI owns the terminal, so
// log output goes to a file and is disabled unless explicitly requested.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultFile is the debug log written in the working directory.
const DefaultFile = "debug.log"

// New returns a development logger writing to path when enabled, and a
// no-op logger otherwise.
func New(enabled bool, path string) (*zap.Logger, error) {
	if !enabled {
		return zap.NewNop(), nil
	}
	if path == "" {
		path = DefaultFile
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
