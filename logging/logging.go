// Package logging builds the zap logger shared by the sandbox systems.
package logging

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	innerLogger          = zap.NewNop()
	loggerInitializeOnce sync.Once
)

// New builds a console logger writing to stderr. The first logger built
// becomes the one returned by Provide.
func New(verbose bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	config := zap.Config{
		Level:       zap.NewAtomicLevelAt(level),
		Development: false,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}

	logger, err := config.Build()
	if err != nil {
		return nil, err
	}

	loggerInitializeOnce.Do(func() { innerLogger = logger })
	return logger, nil
}

// Provide returns the process logger, or a no-op logger before New.
func Provide() *zap.Logger {
	return innerLogger
}
