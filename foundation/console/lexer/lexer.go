// File: lexer.go
// Title: Console Argument Lexer
// Description: Implements the tokenizer for console input lines. Converts a
//              raw line into text, string and separator tokens, and provides
//              the nested element splitter used for array and constructor
//              literals.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial lexer implementation
// - 2026-10-16 v0.2.0: Console argument grammar with mode stack splitting

package lexer

import (
	"fmt"
	"strings"
)

// Grammar characters
const (
	Separator        = '-'
	ElementSeparator = ','
	StringDelimiter  = '"'
	Escape           = '\\'
	ArrayOpen        = '['
	ArrayClose       = ']'
	CtorOpen         = '('
	CtorClose        = ')'
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	TokenEOF       TokenType = iota
	TokenText                // unquoted characters
	TokenString              // "string literal", quotes included
	TokenSeparator           // -
)

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenText:
		return "TEXT"
	case TokenString:
		return "STRING"
	case TokenSeparator:
		return "SEPARATOR"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with position information
type Token struct {
	Type     TokenType // Token type
	Value    string    // Token text with escapes resolved
	Position int       // Byte position in input
}

// String returns a string representation of the token
func (t Token) String() string {
	if t.Type == TokenEOF {
		return "EOF"
	}
	return fmt.Sprintf("%s(%s)", t.Type.String(), t.Value)
}

// Lexer performs lexical analysis of a console input line
type Lexer struct {
	input    string // Input string
	position int    // Current position in input (points to current char)
	readPos  int    // Current reading position (after current char)
	ch       byte   // Current char under examination
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	pos := l.position

	switch {
	case l.position >= len(l.input):
		return Token{Type: TokenEOF, Position: pos}
	case l.ch == StringDelimiter:
		return Token{Type: TokenString, Value: l.readString(), Position: pos}
	case l.atSeparator():
		l.readChar()
		return Token{Type: TokenSeparator, Value: string(Separator), Position: pos}
	default:
		return Token{Type: TokenText, Value: l.readText(), Position: pos}
	}
}

// Tokenize returns all tokens up to and including EOF
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens
		}
	}
}

// readChar reads the next character and advances position
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.position = l.readPos
	l.readPos++
}

// peekChar returns the next character without advancing position
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) atSeparator() bool {
	return l.ch == Separator && !isDigit(l.peekChar())
}

func (l *Lexer) atEscapedQuote() bool {
	return l.ch == Escape && l.peekChar() == StringDelimiter
}

// readText reads unquoted characters up to the next string or separator.
// An escaped quote outside a string is taken literally.
func (l *Lexer) readText() string {
	var sb strings.Builder
	for l.position < len(l.input) && l.ch != StringDelimiter && !l.atSeparator() {
		if l.atEscapedQuote() {
			l.readChar()
		}
		sb.WriteByte(l.ch)
		l.readChar()
	}
	return sb.String()
}

// readString reads a double-quoted string literal including its quotes.
// An unterminated literal runs to the end of the input.
func (l *Lexer) readString() string {
	var sb strings.Builder
	sb.WriteByte(l.ch)
	l.readChar()

	for l.position < len(l.input) {
		if l.atEscapedQuote() {
			l.readChar()
			sb.WriteByte(l.ch)
			l.readChar()
			continue
		}
		sb.WriteByte(l.ch)
		if l.ch == StringDelimiter {
			l.readChar()
			break
		}
		l.readChar()
	}
	return sb.String()
}

// SplitArgs splits a console line into its command name and positional
// arguments. Every element is trimmed; the result has at least one element.
func SplitArgs(line string) []string {
	args := []string{""}
	var current strings.Builder

	for _, tok := range NewLexer(line).Tokenize() {
		switch tok.Type {
		case TokenSeparator:
			args[len(args)-1] = strings.TrimSpace(current.String())
			args = append(args, "")
			current.Reset()
		case TokenText, TokenString:
			current.WriteString(tok.Value)
		}
	}
	args[len(args)-1] = strings.TrimSpace(current.String())
	return args
}

// IsSeparatorAt reports whether s[i] splits parameters, ignoring string state.
func IsSeparatorAt(s string, i int) bool {
	return s[i] == Separator && !(i+1 < len(s) && isDigit(s[i+1]))
}

// HasParams reports whether text contains an unquoted separator or space,
// meaning the command name has been completed.
func HasParams(text string) bool {
	inString := false
	for i := 0; i < len(text); i++ {
		if text[i] == StringDelimiter {
			inString = !inString
			continue
		}
		if !inString && (text[i] == Separator || text[i] == ' ') {
			return true
		}
	}
	return false
}

// IsIdentifier reports whether s is a valid command or variable name:
// one or more ASCII letters, digits or underscores.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if !isLetter(ch) && !isDigit(ch) && ch != '_' {
			return false
		}
	}
	return true
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
