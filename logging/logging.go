// Package logging configures logrus for the skyplan binaries: text output
// with full timestamps, written to the console and, when a log directory is
// configured, to a lumberjack-rotated file as well.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/katalvlaran/skyplan/config"
)

// TimestampFormat is the layout used by the text formatter.
const TimestampFormat = "2006-01-02 15:04:05"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup configures the standard logrus logger with console output on stdout.
// The returned Closer releases the log file, if any.
func Setup(cfg config.Log) (io.Closer, error) {
	return Configure(log.StandardLogger(), cfg, os.Stdout)
}

// Configure applies cfg to logger. Console output goes to console; with
// cfg.Dir set, output is duplicated to cfg.Dir/cfg.File under rotation.
func Configure(logger *log.Logger, cfg config.Log, console io.Writer) (io.Closer, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	logger.SetLevel(level)
	logger.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: TimestampFormat,
	})

	if cfg.Dir == "" {
		logger.SetOutput(console)
		return nopCloser{}, nil
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("logging: create log dir: %w", err)
	}
	fileLogger := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.Dir, cfg.File),
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	logger.SetOutput(io.MultiWriter(console, fileLogger))
	logger.Infof("logging initialized: file=%s, level=%s", fileLogger.Filename, level)

	return fileLogger, nil
}
