package config

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the process logger: JSON unless LOG_FORMAT=text, level from LOG_LEVEL.
func NewLogger(cfg *Config) *logrus.Logger {
	return newLogger(cfg.LogLevel, cfg.LogFormat, os.Stdout)
}

func newLogger(level, format string, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	if strings.EqualFold(format, "text") {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

func LogError(logger logrus.FieldLogger, moduleName string, funcName string, context string, data any, err error) {
	fields := logrus.Fields{
		"module":   moduleName,
		"funcName": funcName,
		"context":  context,
	}
	if data != nil {
		fields["data"] = data
	}
	logger.WithFields(fields).Error(err.Error())
}
