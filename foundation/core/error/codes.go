// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error classification
//              across the console engine and its hosts. Console codes cover the
//              complete diagnostic taxonomy reported by registration and dispatch.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-16 v0.2.0: Console diagnostic codes replace TCOL and service codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Console dispatch
	CodeUnknownCommand        Code = "UNKNOWN_COMMAND"
	CodeAccessDenied          Code = "ACCESS_DENIED"
	CodeArgumentCountMismatch Code = "ARGUMENT_COUNT_MISMATCH"
	CodeArgumentParseError    Code = "ARGUMENT_PARSE_ERROR"
	CodeNoLiveInstances       Code = "NO_LIVE_INSTANCES"
	CodeNullReturned          Code = "NULL_RETURNED"
	CodeCommandFailed         Code = "COMMAND_FAILED"

	// Console registration
	CodeDuplicateRegistration Code = "DUPLICATE_REGISTRATION"
	CodeInvalidIdentifier     Code = "INVALID_IDENTIFIER"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeUnknownCommand, CodeAccessDenied, CodeArgumentCountMismatch, CodeArgumentParseError,
		CodeNoLiveInstances, CodeNullReturned, CodeCommandFailed,
		CodeDuplicateRegistration, CodeInvalidIdentifier,
		CodeConfigError, CodeInvalidConfig,
		CodeValidationFailed, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeUnknownCommand, CodeAccessDenied, CodeArgumentCountMismatch, CodeArgumentParseError,
		CodeNoLiveInstances, CodeNullReturned, CodeCommandFailed:
		return "dispatch"
	case CodeDuplicateRegistration, CodeInvalidIdentifier:
		return "registration"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeValueOutOfRange, CodeInvalidInput:
		return "validation"
	default:
		return "generic"
	}
}
