// Package logger builds the diagnostic logger used by the CLI.
//
// Diagnostics go to stderr in zap's console encoding so they never mix with
// command output on stdout. The audit trail lives in internal/log; this
// package is for the human watching the terminal.
package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level returns the level for the given verbosity. Quiet runs only show
// warnings and errors, verbose runs show everything.
func Level(verbose bool) zapcore.Level {
	if verbose {
		return zapcore.DebugLevel
	}
	return zapcore.WarnLevel
}

// New creates a console logger writing to w.
func New(w io.Writer, verbose bool) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	enc.CallerKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(enc),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(Level(verbose)),
	)
	return zap.New(core, zap.AddStacktrace(zapcore.FatalLevel))
}
