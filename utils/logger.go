package utils

import (
	"strings"

	"go.uber.org/zap"
)

// NewLogger builds the process logger and installs it as zap's global.
// mode "development" gives human-readable console output; anything else is JSON.
func NewLogger(mode string) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if strings.EqualFold(strings.TrimSpace(mode), "development") {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}
