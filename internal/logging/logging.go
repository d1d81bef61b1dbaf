package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/carson-networks/ledger-store/internal/config"
)

func SetupLogging() *logrus.Logger {
	logger := logrus.Logger{
		Formatter: &logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyLevel: "loglevel",
			},
		},
		Out:   os.Stdout,
		Level: logrus.InfoLevel,
		Hooks: make(logrus.LevelHooks),
	}

	return &logger
}

// ApplyConfig sets the level and, when LogFile is configured, tees output
// into a size-rotated file. The package-level logrus logger gets the same
// settings so storage code logging through logrus.* ends up in one place.
func ApplyConfig(logger *logrus.Logger, env *config.Config) error {
	level, err := logrus.ParseLevel(env.LogLevel)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}

	var out io.Writer = os.Stdout
	if env.LogFile != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   env.LogFile,
			MaxSize:    env.LogMaxSizeMB,
			MaxBackups: env.LogMaxBackups,
			MaxAge:     env.LogMaxAgeDays,
		})
	}

	logger.SetLevel(level)
	logger.SetOutput(out)

	logrus.SetLevel(level)
	logrus.SetOutput(out)
	logrus.SetFormatter(logger.Formatter)
	return nil
}
