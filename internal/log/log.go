// Package log provides centralized logging functionality using zap logger.
package log

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

var log *zap.SugaredLogger
var baseLogger *zap.Logger

// Init initializes the package-level logger.
// An empty path logs to stderr; otherwise entries are appended to path.
func Init(debug bool, path string) error {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("can't create log directory: %w", err)
		}
		cfg.OutputPaths = []string{path}
		cfg.ErrorOutputPaths = []string{path}
	}

	zapLogger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %w", err)
	}

	baseLogger = zapLogger
	log = zapLogger.Sugar()
	return nil
}

// Sugar returns the sugared logger for components that take one explicitly.
// The returned logger reports its own caller, unlike the package functions.
func Sugar() *zap.SugaredLogger {
	if baseLogger == nil {
		return zap.NewNop().Sugar()
	}
	return baseLogger.WithOptions(zap.AddCallerSkip(-1)).Sugar()
}

// Sync flushes any buffered log entries
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}

func logger() *zap.SugaredLogger {
	if log == nil {
		return zap.NewNop().Sugar()
	}
	return log
}

func Debugw(msg string, keysAndValues ...any) {
	logger().Debugw(msg, keysAndValues...)
}

func Infow(msg string, keysAndValues ...any) {
	logger().Infow(msg, keysAndValues...)
}

func Warnw(msg string, keysAndValues ...any) {
	logger().Warnw(msg, keysAndValues...)
}

func Errorw(msg string, keysAndValues ...any) {
	logger().Errorw(msg, keysAndValues...)
}
