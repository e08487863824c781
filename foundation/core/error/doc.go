// Package error provides structured error handling for the devconsole foundation.
//
// Package: error
// Title: Structured Error Handling Framework
// Description: This package implements errors with codes, severities, the
//              failing operation and key-value details. Console diagnostics
//              such as unknown commands or argument parse failures are
//              expressed as coded errors and logged, never raised.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-16 v0.2.0: Console diagnostic taxonomy
//
// Usage:
//
//	import mdwerror "github.com/msto63/devconsole/foundation/core/error"
//
//	err := mdwerror.New("command does not exist").
//		WithCode(mdwerror.CodeUnknownCommand).
//		WithOperation("executor.Execute").
//		WithDetail("command", name)
//
//	if mdwerror.HasCode(err, mdwerror.CodeUnknownCommand) {
//		// suggest a similar command
//	}
package error
