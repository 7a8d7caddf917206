package puzzle

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"aoc2023/internal/config"
)

func TestSetupLogger(t *testing.T) {
	a := assert.New(t)
	defer func() {
		logrus.SetLevel(logrus.InfoLevel)
		logrus.SetFormatter(&logrus.TextFormatter{})
	}()

	cfg := config.DefaultConfig()
	cfg.Log.Level = "debug"
	cfg.Log.Format = "JSON"
	a.NoError(SetupLogger(cfg))
	a.Equal(logrus.DebugLevel, logrus.GetLevel())
	a.IsType(&logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)

	cfg.Log.Level = "warn"
	cfg.Log.Format = "text"
	a.NoError(SetupLogger(cfg))
	a.Equal(logrus.WarnLevel, logrus.GetLevel())
	a.IsType(&logrus.TextFormatter{}, logrus.StandardLogger().Formatter)

	cfg.Log.Level = "chatty"
	a.Error(SetupLogger(cfg))
}
