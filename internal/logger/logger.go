// Package logger holds the process-wide structured logger.
package logger

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log writes info and above to stderr until Init replaces it, so errors
// raised before flags are parsed are still reported.
var Log = New(false, "", os.Stderr)

// Init replaces the global logger. Output goes to stderr so that command
// payloads on stdout stay machine readable. A non-empty logPath truncates
// and writes that file instead, without color codes.
func Init(verbose bool, logPath string) {
	Log = New(verbose, logPath, os.Stderr)
}

// New builds a console logger writing to logPath, or to fallback when
// logPath is empty or cannot be created.
func New(verbose bool, logPath string, fallback io.Writer) *zap.SugaredLogger {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	encoderConfig.EncodeCaller = nil

	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	writer := zapcore.AddSync(fallback)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			fmt.Fprintf(fallback, "failed to create log file: %v\n", err)
		} else {
			encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
			writer = zapcore.AddSync(f)
		}
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), writer, level)
	return zap.New(core).Sugar()
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = Log.Sync()
}
