// Package logging builds the diagnostic logger. Diagnostics go to stderr so
// that stdout carries only the translated document.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options holds logging configuration.
type Options struct {
	// Verbose enables debug output; otherwise only warnings and errors are
	// logged.
	Verbose bool
	// Output defaults to stderr.
	Output zapcore.WriteSyncer
}

// New returns a console logger without timestamps.
func New(opts Options) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.CallerKey = ""

	level := zapcore.WarnLevel
	if opts.Verbose {
		level = zapcore.DebugLevel
	}

	out := opts.Output
	if out == nil {
		out = zapcore.Lock(os.Stderr)
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), out, level)
	return zap.New(core)
}
