package puzzle

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"aoc2023/internal/config"
)

// SetupLogger applies the log configuration to the standard logrus logger
func SetupLogger(cfg config.Config) error {
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			return fmt.Errorf("could not parse log level: %w", err)
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{})
	}

	return nil
}
