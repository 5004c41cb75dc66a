package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Init configures the shared logger. Call once at startup.
func Init(level string) {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
}

// L returns the shared logger instance.
func L() *logrus.Logger {
	return log
}

// WithField is a shorthand for L().WithField.
func WithField(key string, value interface{}) *logrus.Entry {
	return log.WithField(key, value)
}
