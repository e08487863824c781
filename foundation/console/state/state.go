// File: state.go
// Title: Console Input State Machine
// Description: Classifies the current input line into one of five modes
//              and tracks which parameter and constructor argument the caret
//              is in, so suggestions can be computed for that position.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package state

import (
	"strings"

	"github.com/msto63/devconsole/foundation/console/lexer"
)

// Mode is the discrete input mode
type Mode int

const (
	// SuggestingCmds is the initial mode: no parameters typed yet
	SuggestingCmds Mode = iota
	ShowingCmdSignature
	SelectingCmds
	SelectingFromHistory
	SelectingParamValues
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case SuggestingCmds:
		return "SuggestingCmds"
	case ShowingCmdSignature:
		return "ShowingCmdSignature"
	case SelectingCmds:
		return "SelectingCmds"
	case SelectingFromHistory:
		return "SelectingFromHistory"
	case SelectingParamValues:
		return "SelectingParamValues"
	default:
		return "Unknown"
	}
}

// IsCommandMode reports whether suggestions are command names
func (m Mode) IsCommandMode() bool {
	return m == SuggestingCmds || m == SelectingCmds
}

// IsParamMode reports whether suggestions are values for a parameter
func (m Mode) IsParamMode() bool {
	return m == ShowingCmdSignature || m == SelectingParamValues
}

// State is recomputed from the input line on every Update
type State struct {
	Text  string // Input with leading whitespace removed
	Caret int    // Caret position within Text

	CurrParamIndex     int // Zero-based parameter under the caret; -1 for the command name
	PrevParamIndex     int // CurrParamIndex before its last change
	CurrCtorParamIndex int // Constructor argument under the caret; -1 for empty input

	CurrParamPos int // Position of the separator opening the current parameter, or -1
	NextParamPos int // Position of the separator after the caret, or len(Text)

	Mode                 Mode
	CanSelectSuggestions bool

	paramChanged bool
}

// New returns the state of an empty input line
func New() *State {
	return &State{
		CurrParamIndex:     -1,
		PrevParamIndex:     -1,
		CurrCtorParamIndex: -1,
		CurrParamPos:       -1,
		Mode:               SuggestingCmds,
	}
}

// Update recomputes the state. caret is relative to text before trimming;
// navigating is true while the user moves through suggestions and
// hasSuggestions tells whether any are currently shown.
func (s *State) Update(text string, caret int, navigating, hasSuggestions bool) {
	trimmed := strings.TrimLeft(text, " \t")
	caret -= len(text) - len(trimmed)
	s.Text = trimmed
	s.Caret = min(max(caret, 0), len(trimmed))

	s.updateMode(navigating, hasSuggestions)
	s.updateParamInfo()
	s.updateCtorParamIndex()
}

func (s *State) updateMode(navigating, hasSuggestions bool) {
	writingParams := lexer.HasParams(s.Text)

	switch {
	case navigating && writingParams:
		s.Mode = SelectingParamValues
	case navigating && !hasSuggestions:
		s.Mode = SelectingFromHistory
	case navigating:
		s.Mode = SelectingCmds
	case writingParams:
		s.Mode = ShowingCmdSignature
	default:
		s.Mode = SuggestingCmds
	}
}

func (s *State) updateParamInfo() {
	index, pos, next := -1, -1, len(s.Text)
	inString, pastCaret := false, false

	for i := 0; i < len(s.Text); i++ {
		if i == s.Caret {
			pastCaret = true
		}
		if s.Text[i] == lexer.StringDelimiter {
			inString = !inString
			continue
		}
		if inString || !lexer.IsSeparatorAt(s.Text, i) {
			continue
		}
		if pastCaret {
			next = i
			break
		}
		index++
		pos = i
	}

	s.paramChanged = index != s.CurrParamIndex
	if s.paramChanged {
		s.PrevParamIndex = s.CurrParamIndex
	}
	s.CurrParamIndex = index
	s.CurrParamPos = pos
	s.NextParamPos = next
}

// updateCtorParamIndex counts constructor argument commas between the
// start of the current parameter and the caret.
func (s *State) updateCtorParamIndex() {
	if s.Text == "" {
		s.CurrCtorParamIndex = -1
		return
	}
	start := s.CurrParamPos + 1
	end := min(s.Caret, s.NextParamPos)
	if end < start {
		end = start
	}
	s.CurrCtorParamIndex = lexer.CommaIndex(s.Text[start:end])
}

// ParamChanged reports whether the last Update moved the caret into a
// different parameter. Cached parameter suggestions are stale then.
func (s *State) ParamChanged() bool {
	return s.paramChanged
}

// CommandName returns the text before the first separator or space
func (s *State) CommandName() string {
	name := s.Text
	if i := strings.IndexAny(name, " -"); i >= 0 {
		name = name[:i]
	}
	return name
}

// ParamText returns the trimmed text of the parameter under the caret
func (s *State) ParamText() string {
	start := s.CurrParamPos + 1
	if start > s.NextParamPos {
		return ""
	}
	return strings.TrimSpace(s.Text[start:s.NextParamPos])
}
