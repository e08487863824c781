// File: stringx_test.go
// Title: String Utility Tests
// Description: Table driven tests for the console string helpers.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial tests
// - 2026-10-16 v0.3.0: Tests for quoting helpers

package stringx

import "testing"

func TestIsBlank(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{" a ", false},
	}

	for _, tt := range tests {
		if got := IsBlank(tt.input); got != tt.expected {
			t.Errorf("IsBlank(%q) = %v, want %v", tt.input, got, tt.expected)
		}
		if got := IsNotBlank(tt.input); got == tt.expected {
			t.Errorf("IsNotBlank(%q) = %v, want %v", tt.input, got, !tt.expected)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		ellipsis string
		expected string
	}{
		{"fits", "hello", 10, "...", "hello"},
		{"truncated", "hello world", 8, "...", "hello..."},
		{"ellipsis too long", "hello", 2, "...", "he"},
		{"unicode", "größenänderung", 5, "…", "größ…"},
		{"zero", "hello", 0, "...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxLen, tt.ellipsis); got != tt.expected {
				t.Errorf("Truncate() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 5, '.'); got != "ab..." {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadRight("abcdef", 3, '.'); got != "abcdef" {
		t.Errorf("PadRight longer = %q", got)
	}
}

func TestUnquote(t *testing.T) {
	tests := map[string]string{
		`"hello"`:      "hello",
		`"`:            `"`,
		`plain`:        "plain",
		`""`:           "",
		`"a "quoted""`: `a "quoted"`,
	}
	for input, want := range tests {
		if got := Unquote(input); got != want {
			t.Errorf("Unquote(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestQuoteIfSeparated(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"red", "red"},
		{"-5", "-5"},
		{"10-20", "10-20"},
		{"dark-red", `"dark-red"`},
		{`say-"hi"`, `"say-\"hi\""`},
	}

	for _, tt := range tests {
		if got := QuoteIfSeparated(tt.input, '-'); got != tt.expected {
			t.Errorf("QuoteIfSeparated(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestContainsIgnoreCaseAndFirstNonBlank(t *testing.T) {
	if !ContainsIgnoreCase("SetSize", "setsi") {
		t.Error("expected case-insensitive match")
	}
	if ContainsIgnoreCase("SetSize", "color") {
		t.Error("unexpected match")
	}
	if got := FirstNonBlank("", "  ", "x", "y"); got != "x" {
		t.Errorf("FirstNonBlank = %q", got)
	}
}
