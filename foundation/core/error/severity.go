// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger maps severities
//              onto log levels so that user input mistakes stay quiet while
//              registration problems and failures are visible.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-16 v0.2.0: Severity table for console codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error such as invalid user input
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the system unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeCommandFailed, CodeConfigError:
		return SeverityHigh

	case CodeAccessDenied, CodeDuplicateRegistration, CodeInvalidIdentifier,
		CodeNoLiveInstances, CodeInvalidConfig:
		return SeverityMedium

	case CodeUnknownCommand, CodeArgumentCountMismatch, CodeArgumentParseError,
		CodeNullReturned, CodeInvalidInput, CodeNotFound,
		CodeValidationFailed, CodeValueOutOfRange:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
