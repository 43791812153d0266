package tui

import (
	"go.uber.org/zap"
)

// NewLogger builds the file-backed logger for a dashboard session.
// Passing an empty path disables logging (a no-op logger is returned).
func NewLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
