// Package stringx provides string helpers for the devconsole foundation.
//
// Package: stringx
// Title: Extended String Operations
// Description: This package provides the small set of string utilities the
//              console packages share. Functions are Unicode aware where the
//              console renders text, and byte oriented where it parses the
//              ASCII command grammar.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation
// - 2026-10-16 v0.3.0: Reduced to console helpers
//
// Usage:
//
//	import mdwstringx "github.com/msto63/devconsole/foundation/utils/stringx"
//
//	if mdwstringx.IsBlank(name) {
//		return errEmptyName
//	}
//	value := mdwstringx.QuoteIfSeparated("dark-red", '-') // "\"dark-red\""
package stringx
