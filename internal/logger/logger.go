package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. It is a no-op until InitLevel succeeds.
var Log = zap.NewNop()

// InitLevel builds a console logger at the given level writing to outputs
// (zap sink URLs or file paths). With no outputs it writes to stderr.
func InitLevel(level zapcore.Level, outputs ...string) error {
	if len(outputs) == 0 {
		outputs = []string{"stderr"}
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = outputs
	cfg.ErrorOutputPaths = outputs
	cfg.DisableStacktrace = true

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	Log = l
	return nil
}

// Sync flushes buffered entries.
func Sync() {
	_ = Log.Sync()
}
