// SPDX-License-Identifier: MIT

// Package logging builds the process-wide zap logger from configuration.
package logging

import (
	"fmt"

	"github.com/katalvlaran/precisiongraph/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a production logger at cfg.Level, encoded as cfg.Format
// ("json" or "console"). verbose forces debug level.
func New(cfg config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	switch cfg.Format {
	case "", "json":
	case "console":
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	default:
		return nil, fmt.Errorf("logging: unknown format %q", cfg.Format)
	}
	// Debug runs log every stage; sampling would drop them.
	zc.Sampling = nil
	zc.OutputPaths = []string{"stderr"}

	return zc.Build()
}
