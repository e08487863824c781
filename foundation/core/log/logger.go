// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type that provides structured logging
//              with contextual fields on top of go.uber.org/zap, and its
//              integration with the foundation error system.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-16 v0.2.0: Replaced hand written formatters with a zap backend

package log

import (
	"errors"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	mdwerror "github.com/msto63/devconsole/foundation/core/error"
)

// Format selects the zap encoder used for output
type Format int

const (
	// FormatJSON writes one JSON object per line
	FormatJSON Format = iota

	// FormatConsole writes tab separated human readable lines
	FormatConsole
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatConsole:
		return "console"
	default:
		return "unknown"
	}
}

// ParseFormat parses "json", "console" or "text" into a Format
func ParseFormat(s string) Format {
	switch s {
	case "console", "text":
		return FormatConsole
	default:
		return FormatJSON
	}
}

// Logger represents a structured logger with contextual information
type Logger struct {
	zl     *zap.Logger
	level  *atomic.Int32
	name   string
	fields Fields
	mutex  sync.RWMutex
}

// Config represents logger configuration
type Config struct {
	Level        Level
	Format       Format
	Output       io.Writer
	Name         string
	EnableCaller bool
}

// New creates a new logger with default configuration
func New() *Logger {
	return NewWithConfig(Config{
		Level:  DefaultLevel(),
		Format: FormatJSON,
		Output: os.Stdout,
	})
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stdout
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = encodeLevel

	var encoder zapcore.Encoder
	if config.Format == FormatConsole {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encCfg)
	}

	// Level filtering happens in Logger.log, which knows the custom
	// Trace and Audit levels.
	core := zapcore.NewCore(encoder, zapcore.AddSync(output), zap.LevelEnablerFunc(func(zapcore.Level) bool {
		return true
	}))

	opts := []zap.Option{}
	if config.EnableCaller {
		opts = append(opts, zap.AddCaller(), zap.AddCallerSkip(2))
	}

	logger := newLogger(zap.New(core, opts...), config.Level)
	if config.Name != "" {
		logger.name = config.Name
		logger.zl = logger.zl.Named(config.Name)
	}
	return logger
}

// NewFromCore wraps an existing zap core. All levels are passed through to
// the core, which applies its own enabler.
func NewFromCore(core zapcore.Core) *Logger {
	return newLogger(zap.New(core), LevelTrace)
}

// NewNop returns a logger that discards everything
func NewNop() *Logger {
	return newLogger(zap.NewNop(), LevelFatal)
}

func newLogger(zl *zap.Logger, level Level) *Logger {
	lv := &atomic.Int32{}
	lv.Store(int32(level))
	return &Logger{
		zl:     zl,
		level:  lv,
		fields: make(Fields),
	}
}

// Zap exposes the underlying zap logger
func (l *Logger) Zap() *zap.Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.zl
}

// WithName returns a clone with the given logger name appended
func (l *Logger) WithName(name string) *Logger {
	clone := l.clone()
	clone.zl = clone.zl.Named(name)
	if clone.name == "" {
		clone.name = name
	} else {
		clone.name = clone.name + "." + name
	}
	return clone
}

// WithField adds a persistent field to all log entries
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(Fields{key: value})
}

// WithFields adds persistent fields to all log entries
func (l *Logger) WithFields(fields Fields) *Logger {
	clone := l.clone()
	for k, v := range fields {
		clone.fields[k] = v
	}
	clone.zl = clone.zl.With(fields.zapFields()...)
	return clone
}

// Trace logs a trace level message
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

// Debug logs a debug level message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs an info level message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a warning level message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs an error level message
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// Audit logs an audit level message (always logged regardless of level)
func (l *Logger) Audit(message string, fields ...Fields) {
	l.log(LevelAudit, message, nil, fields...)
}

// ErrorWithErr logs an error with an error object
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// WarnWithErr logs a warning with an error object
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, err, fields...)
}

// LogError logs a foundation error with full context. The log level is
// derived from the error severity.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	var mdwErr *mdwerror.Error
	if !errors.As(err, &mdwErr) {
		l.log(LevelError, err.Error(), err)
		return
	}

	fields := Fields{
		"error_code":     mdwErr.Code().String(),
		"error_severity": mdwErr.Severity().String(),
	}
	if op := mdwErr.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range mdwErr.Details() {
		fields["error_"+k] = v
	}

	switch mdwErr.Severity() {
	case mdwerror.SeverityLow:
		l.log(LevelInfo, mdwErr.Error(), nil, fields)
	case mdwerror.SeverityMedium:
		l.log(LevelWarn, mdwErr.Error(), nil, fields)
	default:
		l.log(LevelError, mdwErr.Error(), nil, fields)
	}
}

// IsLevelEnabled returns true if the given level is enabled
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.ShouldLog(l.GetLevel())
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() Level {
	return Level(l.level.Load())
}

// Sync flushes any buffered log entries
func (l *Logger) Sync() error {
	return l.Zap().Sync()
}

// log is the internal logging method
func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	if !level.ShouldLog(l.GetLevel()) {
		return
	}

	l.mutex.RLock()
	zl := l.zl
	l.mutex.RUnlock()

	ce := zl.Check(level.zapLevel(), message)
	if ce == nil {
		return
	}

	var zf []zap.Field
	for _, set := range fields {
		zf = append(zf, set.zapFields()...)
	}
	if err != nil {
		zf = append(zf, zap.Error(err))
	}
	ce.Write(zf...)
}

// clone creates a copy of the logger for immutable operations
func (l *Logger) clone() *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return &Logger{
		zl:     l.zl,
		level:  l.level,
		name:   l.name,
		fields: l.fields.Clone(),
	}
}

var defaultLogger = New()

// GetDefault returns the default logger used when none is configured
func GetDefault() *Logger {
	return defaultLogger
}
