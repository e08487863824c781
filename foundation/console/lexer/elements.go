// File: elements.go
// Title: Nested Element Splitter
// Description: Splits the body of array and constructor literals on
//              top-level commas. Nested strings, constructors and arrays are
//              tracked on an explicit mode stack.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.2.0: Initial implementation

package lexer

import "strings"

// Mode is a nesting region entered while scanning a literal
type Mode int

const (
	ModeInString Mode = iota
	ModeInComposite
	ModeInArray
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeInString:
		return "InString"
	case ModeInComposite:
		return "InComposite"
	case ModeInArray:
		return "InArray"
	default:
		return "Unknown"
	}
}

type modeStack []Mode

func (s *modeStack) push(m Mode) { *s = append(*s, m) }

func (s *modeStack) pop() {
	if len(*s) > 0 {
		*s = (*s)[:len(*s)-1]
	}
}

func (s modeStack) top() (Mode, bool) {
	if len(s) == 0 {
		return 0, false
	}
	return s[len(s)-1], true
}

// scan walks s and calls visit for every byte with the nesting depth in
// effect before that byte is applied. Bytes inside strings are reported
// with inString set.
func scan(s string, visit func(i int, depth int, inString bool)) {
	var stack modeStack

	for i := 0; i < len(s); i++ {
		ch := s[i]
		mode, nested := stack.top()

		if nested && mode == ModeInString {
			visit(i, len(stack), true)
			switch {
			case ch == Escape && i+1 < len(s) && s[i+1] == StringDelimiter:
				i++
			case ch == StringDelimiter:
				stack.pop()
			}
			continue
		}

		visit(i, len(stack), false)
		switch ch {
		case StringDelimiter:
			stack.push(ModeInString)
		case CtorOpen:
			stack.push(ModeInComposite)
		case ArrayOpen:
			stack.push(ModeInArray)
		case CtorClose:
			if nested && mode == ModeInComposite {
				stack.pop()
			}
		case ArrayClose:
			if nested && mode == ModeInArray {
				stack.pop()
			}
		}
	}
}

// SplitElements splits the body of a literal (the text between its
// delimiters) on top-level commas. Elements are trimmed. A blank body
// yields no elements and a single trailing comma is ignored.
func SplitElements(body string) []string {
	if strings.TrimSpace(body) == "" {
		return []string{}
	}

	var elements []string
	start := 0
	scan(body, func(i, depth int, inString bool) {
		if !inString && depth == 0 && body[i] == ElementSeparator {
			elements = append(elements, strings.TrimSpace(body[start:i]))
			start = i + 1
		}
	})

	last := strings.TrimSpace(body[start:])
	if last != "" || len(elements) == 0 {
		elements = append(elements, last)
	}
	return elements
}

// CommaIndex counts the commas in s that separate the arguments of the
// innermost constructor still open at the end of s. Commas of closed
// literals, strings and enclosing arrays are skipped. Without an open
// constructor the top-level commas are counted. The result is the
// zero-based argument position at the end of s.
func CommaIndex(s string) int {
	type level struct {
		open   byte // Opening delimiter; 0 at top level
		commas int
	}
	levels := []level{{}}

	scan(s, func(i, _ int, inString bool) {
		if inString {
			return
		}
		top := &levels[len(levels)-1]
		switch s[i] {
		case ElementSeparator:
			top.commas++
		case CtorOpen:
			levels = append(levels, level{open: CtorOpen})
		case ArrayOpen:
			levels = append(levels, level{open: ArrayOpen})
		case CtorClose:
			if top.open == CtorOpen {
				levels = levels[:len(levels)-1]
			}
		case ArrayClose:
			if top.open == ArrayOpen {
				levels = levels[:len(levels)-1]
			}
		}
	})

	for i := len(levels) - 1; i > 0; i-- {
		if levels[i].open == CtorOpen {
			return levels[i].commas
		}
	}
	return levels[0].commas
}

// Unwrap returns the text between open and close when token starts with
// open and ends with close.
func Unwrap(token string, open, close byte) (string, bool) {
	if len(token) < 2 || token[0] != open || token[len(token)-1] != close {
		return "", false
	}
	return token[1 : len(token)-1], true
}

// SplitCall splits constructor syntax Type(a, b) or (a, b) into the type
// name, which may be empty, and the argument body.
func SplitCall(token string) (typeName, body string, ok bool) {
	if len(token) < 2 || token[len(token)-1] != CtorClose {
		return "", "", false
	}
	open := strings.IndexByte(token, CtorOpen)
	if open < 0 {
		return "", "", false
	}
	typeName = strings.TrimSpace(token[:open])
	if typeName != "" && !IsIdentifier(typeName) {
		return "", "", false
	}
	return typeName, token[open+1 : len(token)-1], true
}
