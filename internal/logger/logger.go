// Package logger provides structured logging using zap.
//
// Library packages take component loggers from Named; nothing is written
// until a command calls Init.
package logger

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Faultbox/cavemesh/internal/config"
)

var (
	base    = zap.NewNop()
	wrapped = base // base with one extra caller frame for the helpers below

	// Sugar is the sugared global logger.
	Sugar = base.Sugar()
)

// FileConfig holds rotating log file settings.
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultFileConfig returns rotation settings sized for batch runs.
func DefaultFileConfig(path string) FileConfig {
	return FileConfig{
		Path:       path,
		MaxSizeMB:  50,
		MaxBackups: 3,
		MaxAgeDays: 7,
		Compress:   true,
	}
}

// Options selects the outputs of a logger built by New.
type Options struct {
	Level   zapcore.Level
	Console io.Writer  // nil disables console output
	File    FileConfig // empty Path disables file output
}

// New builds a logger writing to the outputs in opts. With no outputs it
// returns a no-op logger.
func New(opts Options) *zap.Logger {
	var cores []zapcore.Core

	if opts.Console != nil {
		enc := zapcore.NewConsoleEncoder(encoderConfig(
			zapcore.TimeEncoderOfLayout("15:04:05"),
			zapcore.CapitalColorLevelEncoder,
		))
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(opts.Console), opts.Level))
	}

	if opts.File.Path != "" {
		w := &lumberjack.Logger{
			Filename:   opts.File.Path,
			MaxSize:    opts.File.MaxSizeMB,
			MaxBackups: opts.File.MaxBackups,
			MaxAge:     opts.File.MaxAgeDays,
			Compress:   opts.File.Compress,
			LocalTime:  true,
		}
		enc := zapcore.NewConsoleEncoder(encoderConfig(
			zapcore.ISO8601TimeEncoder,
			zapcore.CapitalLevelEncoder,
		))
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(w), opts.Level))
	}

	if len(cores) == 0 {
		return zap.NewNop()
	}
	return zap.New(zapcore.NewTee(cores...), zap.AddCaller())
}

func encoderConfig(timeEnc zapcore.TimeEncoder, levelEnc zapcore.LevelEncoder) zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		NameKey:          "logger",
		MessageKey:       "msg",
		CallerKey:        "caller",
		EncodeTime:       timeEnc,
		EncodeLevel:      levelEnc,
		EncodeCaller:     zapcore.ShortCallerEncoder,
		ConsoleSeparator: " ",
	}
}

// Init installs the global logger from the logging section of the config.
// Console output goes to stderr so stdout stays free for command output.
func Init(cfg config.LoggingConfig) error {
	lvl, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("logging level: %w", err)
	}

	opts := Options{Level: lvl, Console: os.Stderr}
	if cfg.LogFile != "" {
		opts.File = DefaultFileConfig(cfg.LogFile)
	}
	Set(New(opts))
	return nil
}

// Set replaces the global logger and returns a function restoring the
// previous one.
func Set(l *zap.Logger) (restore func()) {
	prev := base
	base = l
	wrapped = l.WithOptions(zap.AddCallerSkip(1))
	Sugar = l.Sugar()
	return func() { Set(prev) }
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = base.Sync()
}

// Named returns a child of the global logger for one component.
func Named(name string) *zap.Logger {
	return base.Named(name)
}

// Debug logs a debug message.
func Debug(msg string, fields ...zap.Field) {
	wrapped.Debug(msg, fields...)
}

// Info logs an info message.
func Info(msg string, fields ...zap.Field) {
	wrapped.Info(msg, fields...)
}

// Warn logs a warning message.
func Warn(msg string, fields ...zap.Field) {
	wrapped.Warn(msg, fields...)
}

// Error logs an error message.
func Error(msg string, fields ...zap.Field) {
	wrapped.Error(msg, fields...)
}
