package logger

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"wine-quality-service/internal/config"
)

// Setup configures the standard logrus logger. When cfg.File is set, output
// goes to stdout and a size-rotated file.
func Setup(cfg config.LoggerConfig) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	log.SetOutput(Writer(cfg, os.Stdout))
}

// Writer returns the destination for log output.
func Writer(cfg config.LoggerConfig, stdout io.Writer) io.Writer {
	if cfg.File == "" {
		return stdout
	}
	return io.MultiWriter(stdout, &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	})
}
