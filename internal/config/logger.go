// SPDX-License-Identifier: EPL-2.0

package config

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// DefaultLogLevel keeps successful runs silent.
const DefaultLogLevel = "warn"

// NewLogger builds a zap logger writing to stderr at level
// (debug, info, warn or error).
func NewLogger(level string) (*zap.Logger, error) {
	var zapConfig zap.Config

	switch strings.ToLower(level) {
	case "debug":
		zapConfig = zap.NewDevelopmentConfig()
	case "info":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "", "warn":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLogLevel, level)
	}

	zapConfig.OutputPaths = []string{"stderr"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create zap logger: %w", err)
	}

	return logger, nil
}
