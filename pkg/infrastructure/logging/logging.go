// Package logging builds the per-file loggers: everything goes to the
// console, and a copy of each processed file's messages lands next to it in
// a text log with the file's name.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// NewFileLogger returns a console logger that also appends to logPath. The
// caller must Sync the logger when the file is done.
func NewFileLogger(logPath string, verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg.OutputPaths = []string{"stderr", logPath}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger for %s: %w", logPath, err)
	}
	return logger, nil
}

// NewConsoleLogger returns a console-only logger for messages not tied to a
// particular input file.
func NewConsoleLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build console logger: %w", err)
	}
	return logger, nil
}
