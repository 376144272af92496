package helpers

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger creates a configured Logrus logger. Development gets text output at
// debug level, everything else JSON at info. level overrides either default.
func NewLogger(appName, env, level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	if env == "development" {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	if level != "" {
		if lvl, err := logrus.ParseLevel(level); err == nil {
			logger.SetLevel(lvl)
		} else {
			logger.WithField("level", level).Warn("unknown log level, keeping default")
		}
	}
	logger.WithFields(logrus.Fields{"app": appName, "env": env}).Info("logger initialized")
	return logger
}

// LogError Convenience methods to keep a unified logging interface
func LogError(logger logrus.FieldLogger, msg string, err error, fields logrus.Fields) {
	if noLogger(logger) {
		return
	}
	logger.WithFields(withError(fields, err)).Error(msg)
}

// LogWarn is for best-effort side effects (cache, search index, queue) that must not fail a request.
func LogWarn(logger logrus.FieldLogger, msg string, err error, fields logrus.Fields) {
	if noLogger(logger) {
		return
	}
	logger.WithFields(withError(fields, err)).Warn(msg)
}

func LogInfo(logger logrus.FieldLogger, msg string, fields logrus.Fields) {
	if noLogger(logger) {
		return
	}
	if fields == nil {
		fields = logrus.Fields{}
	}
	logger.WithFields(fields).Info(msg)
}

// noLogger also catches a nil *logrus.Logger stored in the interface.
func noLogger(logger logrus.FieldLogger) bool {
	if logger == nil {
		return true
	}
	l, ok := logger.(*logrus.Logger)
	return ok && l == nil
}

func withError(fields logrus.Fields, err error) logrus.Fields {
	out := logrus.Fields{}
	for k, v := range fields {
		out[k] = v
	}
	if err != nil {
		out["error"] = err.Error()
	}
	return out
}
