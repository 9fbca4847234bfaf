// Package logging constructs the structured loggers used throughout promptcat.
package logging

import (
	"go.uber.org/zap"
)

// Setup builds the application logger. Debug mode selects the
// human-readable development config; otherwise the JSON production
// config is used. The returned logger is also installed as zap's
// global logger.
func Setup(debug bool, appName, appVersion string) (*zap.Logger, error) {
	var cfg zap.Config

	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	// Add default fields
	cfg.InitialFields = map[string]interface{}{
		"appName":    appName,
		"appVersion": appVersion,
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	zap.ReplaceGlobals(logger)
	return logger, nil
}
