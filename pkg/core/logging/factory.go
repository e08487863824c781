// File: factory.go
// Title: Logger Factory
// Description: Builds foundation loggers for the devconsole binary from
//              command line settings: level, encoding, and output targets.
// Author: msto63
// Version: v0.2.0
// Created: 2025-12-06
// Modified: 2026-10-16
//
// Change History:
// - 2025-12-06 v0.1.0: Factory functions with remote log shipping
// - 2026-10-16 v0.2.0: Local outputs only, log file support

package logging

import (
	"io"
	"os"

	mdwerror "github.com/msto63/devconsole/foundation/core/error"
	mdwlog "github.com/msto63/devconsole/foundation/core/log"
	mdwstringx "github.com/msto63/devconsole/foundation/utils/stringx"
)

// DefaultServiceName names loggers built without a service name
const DefaultServiceName = "devconsole"

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name
	ServiceName string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format
	Format string // "json" or "console" (default: json)

	// Primary output (default: stderr)
	Output io.Writer

	// Additional outputs
	AdditionalOutputs []io.Writer

	// Discard everything
	Quiet bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "info",
		Format:      "json",
	}
}

// NewLogger creates a new foundation logger
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	if cfg.Quiet {
		return mdwlog.NewNop()
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:        parseLevel(cfg.Level),
		Format:       mdwlog.ParseFormat(cfg.Format),
		Output:       output,
		Name:         mdwstringx.FirstNonBlank(cfg.ServiceName, DefaultServiceName),
		EnableCaller: true,
	})
}

// OpenLogFile opens path for appending log output
func OpenLogFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to open log file").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("logging.OpenLogFile").
			WithDetail("path", path)
	}
	return f, nil
}

// parseLevel converts a string level to mdwlog.Level. Unknown names fall
// back to info.
func parseLevel(level string) mdwlog.Level {
	parsed, err := mdwlog.ParseLevel(level)
	if err != nil {
		return mdwlog.LevelInfo
	}
	return parsed
}
