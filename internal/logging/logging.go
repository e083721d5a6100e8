// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging configures the process-wide logrus logger.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/spread-splitter/pkg/types"
)

// Setup applies cfg to the standard logrus logger, directs it to w, and
// returns it. Records are line-oriented: timestamp, level, message, fields.
func Setup(cfg types.LogConfig, w io.Writer) (*logrus.Logger, error) {
	logger := logrus.StandardLogger()
	if err := Configure(logger, cfg, w); err != nil {
		return nil, err
	}
	return logger, nil
}

// Configure applies cfg to logger.
func Configure(logger *logrus.Logger, cfg types.LogConfig, w io.Writer) error {
	level := logrus.InfoLevel
	if cfg.Level != "" {
		l, err := logrus.ParseLevel(cfg.Level)
		if err != nil {
			return fmt.Errorf("parsing log level: %w", err)
		}
		level = l
	}

	switch cfg.Format {
	case types.LogText, "":
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
			DisableColors:   true,
		})
	case types.LogJSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unsupported log format %q: use text or json", cfg.Format)
	}

	logger.SetLevel(level)
	logger.SetOutput(w)
	return nil
}
