// Released under an MIT license. See LICENSE.

// Package logger configures tup's structured logging.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	DebugLevelStr   string = "debug"
	InfoLevelStr    string = "info"
	WarningLevelStr string = "warning"
	ErrorLevelStr   string = "error"
)

// New creates a sugared logger called name that writes to the paths in
// outputs at level. With no outputs, messages go to stderr.
func New(name, level string, outputs ...string) (*zap.SugaredLogger, error) {
	l, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	if len(outputs) == 0 {
		outputs = []string{"stderr"}
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(l),
		Encoding:         "console",
		EncoderConfig:    encoderConfig,
		OutputPaths:      outputs,
		ErrorOutputPaths: []string{"stderr"},
	}

	built, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return built.Named(name).Sugar(), nil
}

func parseLevel(level string) (zapcore.Level, error) {
	switch level {
	case DebugLevelStr:
		return zap.DebugLevel, nil
	case InfoLevelStr:
		return zap.InfoLevel, nil
	case WarningLevelStr:
		return zap.WarnLevel, nil
	case ErrorLevelStr:
		return zap.ErrorLevel, nil
	}

	return zap.InfoLevel, fmt.Errorf("unknown log level %s", level)
}
