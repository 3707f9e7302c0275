package logger

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Setup configures the package-level logrus logger. Output goes to stdout unless filePath is set.
func Setup(level, filePath string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("unknown logging level %q: %w", level, err)
	}
	log.SetLevel(lvl)

	if filePath != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   filePath,
			MaxSize:    32, // megabytes
			MaxBackups: 2,
			MaxAge:     28, // days
			Compress:   true,
		})
	} else {
		log.SetOutput(os.Stdout)
	}

	log.SetFormatter(&log.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	return nil
}
