// Package log provides structured logging for the devconsole foundation.
//
// Package: log
// Title: Structured Logging Framework
// Description: This package implements a structured logging API with contextual
//              fields, log levels and integration with the foundation error
//              handling system. Output is encoded by go.uber.org/zap.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-16 v0.2.0: zap backend, console encoder, observer friendly constructor
//
// Features:
// - Structured logging with JSON and console encoders
// - Trace to audit levels, audit entries bypass the level filter
// - Persistent context fields through WithField/WithFields
// - Severity aware logging of foundation errors via LogError
// - NewFromCore for tests that observe entries with zaptest/observer
//
// Usage:
//
//	import mdwlog "github.com/msto63/devconsole/foundation/core/log"
//
//	logger := mdwlog.NewWithConfig(mdwlog.Config{
//		Level:  mdwlog.LevelDebug,
//		Format: mdwlog.FormatConsole,
//	}).WithField("component", "console")
//
//	logger.Info("Command registered", mdwlog.Fields{
//		"command": "SetSize",
//		"params":  2,
//	})
//	logger.LogError(err)
package log
