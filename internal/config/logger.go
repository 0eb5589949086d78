package config

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger builds a logrus logger writing to w in the configured format.
// Production environments always log JSON. debug lowers the level from warn.
func (s Settings) NewLogger(w io.Writer, debug bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)

	if s.LogFormat == "json" || s.IsProduction() {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	logger.SetLevel(logrus.WarnLevel)
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}
