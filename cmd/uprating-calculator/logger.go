package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iwvelando/uprating-calculator/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logLevels = map[string]zapcore.Level{
	"debug":   zapcore.DebugLevel,
	"info":    zapcore.InfoLevel,
	"warn":    zapcore.WarnLevel,
	"warning": zapcore.WarnLevel,
	"error":   zapcore.ErrorLevel,
}

// mergeLogging layers logging sections on top of each other. Later sections
// win field by field, so a server config that only sets an output file keeps
// the level and format of the calculator config.
func mergeLogging(layers ...config.LoggingConfig) config.LoggingConfig {
	var merged config.LoggingConfig
	for _, layer := range layers {
		if layer.Level != "" {
			merged.Level = layer.Level
		}
		if layer.Format != "" {
			merged.Format = layer.Format
		}
		if layer.OutputFile != "" {
			merged.OutputFile = layer.OutputFile
		}
	}
	return merged
}

// initializeLogger builds a zap logger from the merged logging layers. A
// non-empty levelOverride (the --log-level flag) beats every layer.
func initializeLogger(levelOverride string, layers ...config.LoggingConfig) (*zap.Logger, error) {
	settings := mergeLogging(layers...)
	if levelOverride != "" {
		settings.Level = levelOverride
	}
	if settings.Level == "" {
		settings.Level = "info"
	}
	if settings.Format == "" {
		settings.Format = "json"
	}

	level, ok := logLevels[strings.ToLower(settings.Level)]
	if !ok {
		return nil, fmt.Errorf("invalid log level: %s", settings.Level)
	}

	var zapConfig zap.Config
	switch settings.Format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
	case "json":
		zapConfig = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", settings.Format)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	if settings.OutputFile != "" {
		if err := ensureLogFile(settings.OutputFile); err != nil {
			return nil, err
		}
		zapConfig.OutputPaths = []string{settings.OutputFile}
		zapConfig.ErrorOutputPaths = []string{settings.OutputFile}
	}

	return zapConfig.Build()
}

func ensureLogFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory %s: %w", dir, err)
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return file.Close()
}
