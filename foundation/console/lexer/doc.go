// File: doc.go
// Title: Console Lexer Package Documentation
// Description: Tokenizes console input lines into positional arguments and
//              splits array and constructor literals into their elements.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial lexer implementation
// - 2026-10-16 v0.2.0: Console argument grammar with mode stack splitting

/*
Package lexer provides the lexical layer of the console command grammar.

A console line has the shape

	<command> [ - <arg1> [ - <arg2> ... ] ]

The separator '-' only splits outside string literals and only when it is
not directly followed by a digit, so negative numbers need no quoting.
Inside a string literal a backslash escapes a double quote.

Array literals ([a, b]) and constructor literals (Type(a, b) or (a, b))
are split into elements by SplitElements, which tracks nested strings,
constructors and arrays on an explicit mode stack so that commas inside
nested regions are not treated as element separators.
*/
package lexer
