// File: state_test.go
// Title: Console Input State Machine Tests
// Description: Tests mode transitions, parameter index tracking and the
//              constructor argument index.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial tests

package state

import "testing"

func TestModeTransitions(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		navigating     bool
		hasSuggestions bool
		expected       Mode
	}{
		{"empty input", "", false, false, SuggestingCmds},
		{"typing command", "Set", false, true, SuggestingCmds},
		{"space ends command", "SetSize ", false, true, ShowingCmdSignature},
		{"separator typed", "SetSize - 5", false, false, ShowingCmdSignature},
		{"navigate commands", "Set", true, true, SelectingCmds},
		{"navigate history", "", true, false, SelectingFromHistory},
		{"navigate values", "SetSize - ", true, false, SelectingParamValues},
		{"quoted space is not a param", `"a b"`, false, false, SuggestingCmds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.Update(tt.text, len(tt.text), tt.navigating, tt.hasSuggestions)
			if s.Mode != tt.expected {
				t.Errorf("Mode = %s, want %s", s.Mode, tt.expected)
			}
		})
	}
}

func TestParamInfo(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		caret     int
		index     int
		pos       int
		next      int
		paramText string
	}{
		{"command name", "SetSize", 7, -1, -1, 7, "SetSize"},
		{"first param", "SetSize - 5", 11, 0, 8, 11, "5"},
		{"second param", "SetSize - 5 - 7", 15, 1, 12, 15, "7"},
		{"caret in first of two", "SetSize - 5 - 7", 10, 0, 8, 12, "5"},
		{"negative number", "Move - -5", 9, 0, 5, 9, "-5"},
		{"separator in string", `Say - "a - b"`, 13, 0, 4, 13, `"a - b"`},
		{"caret on separator", "A - 1 - 2", 6, 0, 2, 6, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.Update(tt.text, tt.caret, false, false)

			if s.CurrParamIndex != tt.index {
				t.Errorf("CurrParamIndex = %d, want %d", s.CurrParamIndex, tt.index)
			}
			if s.CurrParamPos != tt.pos {
				t.Errorf("CurrParamPos = %d, want %d", s.CurrParamPos, tt.pos)
			}
			if s.NextParamPos != tt.next {
				t.Errorf("NextParamPos = %d, want %d", s.NextParamPos, tt.next)
			}
			if got := s.ParamText(); got != tt.paramText {
				t.Errorf("ParamText() = %q, want %q", got, tt.paramText)
			}
		})
	}
}

func TestLeadingWhitespaceShiftsCaret(t *testing.T) {
	s := New()
	s.Update("   SetSize - 5", 14, false, false)

	if s.Text != "SetSize - 5" {
		t.Errorf("Text = %q", s.Text)
	}
	if s.Caret != 11 {
		t.Errorf("Caret = %d, want 11", s.Caret)
	}
	if s.CurrParamIndex != 0 {
		t.Errorf("CurrParamIndex = %d, want 0", s.CurrParamIndex)
	}
	if s.CommandName() != "SetSize" {
		t.Errorf("CommandName() = %q", s.CommandName())
	}
}

func TestParamChangeTracking(t *testing.T) {
	s := New()

	s.Update("SetSize", 7, false, true)
	if s.ParamChanged() {
		t.Error("command name keeps index -1")
	}

	s.Update("SetSize - ", 10, false, false)
	if !s.ParamChanged() || s.PrevParamIndex != -1 || s.CurrParamIndex != 0 {
		t.Errorf("after first separator: changed=%v prev=%d curr=%d",
			s.ParamChanged(), s.PrevParamIndex, s.CurrParamIndex)
	}

	s.Update("SetSize - 5", 11, false, false)
	if s.ParamChanged() {
		t.Error("typing within a param must not invalidate suggestions")
	}
	if s.PrevParamIndex != -1 {
		t.Errorf("PrevParamIndex = %d, want -1", s.PrevParamIndex)
	}

	s.Update("SetSize - 5 - ", 14, false, false)
	if !s.ParamChanged() || s.PrevParamIndex != 0 || s.CurrParamIndex != 1 {
		t.Errorf("after second separator: changed=%v prev=%d curr=%d",
			s.ParamChanged(), s.PrevParamIndex, s.CurrParamIndex)
	}
}

func TestCtorParamIndex(t *testing.T) {
	tests := []struct {
		text     string
		caret    int
		expected int
	}{
		{"", 0, -1},
		{"AddCube", 7, 0},
		{"AddCube - (1", 12, 0},
		{"AddCube - (1, 2", 15, 1},
		{"AddCube - (1, 2, 3) - (255, 0", 29, 1},
		{"AddCube - (1, 2, 3) - (255, 0", 13, 1},
		{`Tag - ("a,b", "c`, 16, 1},
		{"Path - [(1, 2), (3", 18, 0},
		{"Path - [(1, 2), (3, 4", 21, 1},
	}

	for _, tt := range tests {
		s := New()
		s.Update(tt.text, tt.caret, false, false)
		if s.CurrCtorParamIndex != tt.expected {
			t.Errorf("Update(%q, %d): CurrCtorParamIndex = %d, want %d",
				tt.text, tt.caret, s.CurrCtorParamIndex, tt.expected)
		}
	}
}
