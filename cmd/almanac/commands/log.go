package commands

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/rangemap/internal/config"
)

// newLogger builds a logrus logger for cfg writing to w. Tracing needs at
// least info level to be visible, so it raises lower levels to info.
func newLogger(cfg config.Config, w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if cfg.Trace && level < logrus.InfoLevel {
		level = logrus.InfoLevel
	}

	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(level)
	switch cfg.LogFormat {
	case config.FormatJSON:
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return log, nil
}
