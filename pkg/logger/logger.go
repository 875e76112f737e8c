// Package logger provides the process-wide structured log sink.
//
// Built on uber-go/zap. Every line is emitted synchronously in the shape
//
//	APP [2024-01-29T15:04:05Z] [INFO] message {attrs...}
//
// so host and renderer logs interleave legibly in one stream. Debug output
// is suppressed unless the app runs unpackaged or PAINTAPP_DEV is set.
package logger

import (
	"os"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Attrs is the optional attribute mapping attached to a log line.
type Attrs map[string]interface{}

var (
	logger *zap.Logger
	sugar  *zap.SugaredLogger
	once   sync.Once

	// level is shared by every sink so EnableDebug works after init.
	level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

// Init initializes the log sink. Safe to call more than once; only the
// first call configures anything.
//
// Environment:
//   - PAINTAPP_DEV: any non-empty value enables debug output
//   - LOG_FILE: when set, lines are also written to a rotating file
func Init() error {
	var initErr error
	once.Do(func() {
		if os.Getenv("PAINTAPP_DEV") != "" {
			level.SetLevel(zapcore.DebugLevel)
		}

		encoder := zapcore.NewConsoleEncoder(encoderConfig())

		cores := []zapcore.Core{
			zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level),
		}

		// Optional rotating file sink for packaged builds.
		if logFile := os.Getenv("LOG_FILE"); logFile != "" {
			rotator := &lumberjack.Logger{
				Filename:   logFile,
				MaxSize:    10, // megabytes
				MaxBackups: 3,
				MaxAge:     14, // days
			}
			cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(rotator), level))
		}

		logger = zap.New(zapcore.NewTee(cores...))
		sugar = logger.Sugar()
	})
	return initErr
}

// encoderConfig produces the "APP [ts] [LEVEL] msg" line shape.
func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		ConsoleSeparator: " ",
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString("APP [" + t.UTC().Format(time.RFC3339) + "]")
		},
		EncodeLevel: func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString("[" + l.CapitalString() + "]")
		},
		EncodeDuration: zapcore.SecondsDurationEncoder,
	}
}

// EnableDebug turns on debug output at runtime. The lifecycle controller
// calls this for unpackaged runs, where PAINTAPP_DEV may not be set.
func EnableDebug() {
	level.SetLevel(zapcore.DebugLevel)
}

// DebugEnabled reports whether debug lines are currently emitted.
func DebugEnabled() bool {
	return level.Enabled(zapcore.DebugLevel)
}

// get returns the global logger, initializing lazily so early callers
// (package init, tests) never hit a nil sink.
func get() *zap.Logger {
	if logger == nil {
		_ = Init()
	}
	return logger
}

// fields flattens the optional attribute mappings into zap fields with a
// stable key order.
func fields(attrs []Attrs) []zap.Field {
	if len(attrs) == 0 {
		return nil
	}
	merged := Attrs{}
	for _, m := range attrs {
		for k, v := range m {
			merged[k] = v
		}
	}
	if len(merged) == 0 {
		return nil
	}
	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fs := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		fs = append(fs, zap.Any(k, merged[k]))
	}
	return fs
}

// Info logs at INFO with optional attributes.
func Info(msg string, attrs ...Attrs) {
	get().Info(msg, fields(attrs)...)
}

// Warn logs at WARN with optional attributes.
func Warn(msg string, attrs ...Attrs) {
	get().Warn(msg, fields(attrs)...)
}

// Error logs at ERROR with optional attributes.
func Error(msg string, attrs ...Attrs) {
	get().Error(msg, fields(attrs)...)
}

// Debug logs at DEBUG with optional attributes. No-op unless debug output
// is enabled (unpackaged run or PAINTAPP_DEV).
func Debug(msg string, attrs ...Attrs) {
	get().Debug(msg, fields(attrs)...)
}

// Sync flushes buffered output. Called once on shutdown.
func Sync() error {
	if logger != nil {
		return logger.Sync()
	}
	return nil
}
