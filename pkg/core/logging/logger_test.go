// File: logger_test.go
// Title: Logger Factory Tests
// Description: Tests level parsing, output fan-out, and the quiet logger.
// Author: msto63
// Version: v0.2.0
// Created: 2025-12-06
// Modified: 2026-10-16
//
// Change History:
// - 2025-12-06 v0.1.0: Factory and compatibility tests
// - 2026-10-16 v0.2.0: Output and log file tests

package logging

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mdwerror "github.com/msto63/devconsole/foundation/core/error"
	mdwlog "github.com/msto63/devconsole/foundation/core/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected mdwlog.Level
	}{
		{"trace", mdwlog.LevelTrace},
		{"debug", mdwlog.LevelDebug},
		{"info", mdwlog.LevelInfo},
		{"warn", mdwlog.LevelWarn},
		{"warning", mdwlog.LevelWarn},
		{"error", mdwlog.LevelError},
		{"bogus", mdwlog.LevelInfo},
		{"", mdwlog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewLoggerWritesToAllOutputs(t *testing.T) {
	var primary, extra bytes.Buffer
	logger := NewLogger(LoggerConfig{
		ServiceName:       "devconsole",
		Level:             "debug",
		Format:            "json",
		Output:            &primary,
		AdditionalOutputs: []io.Writer{&extra},
	})

	logger.Debug("console ready", mdwlog.String("sessionID", "abc"))

	for name, buf := range map[string]*bytes.Buffer{"primary": &primary, "extra": &extra} {
		out := buf.String()
		if !strings.Contains(out, "console ready") || !strings.Contains(out, `"sessionID":"abc"`) {
			t.Errorf("%s output missing entry: %q", name, out)
		}
	}
}

func TestNewLoggerDefaultsServiceName(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: "info", Format: "json", Output: &buf})
	logger.Info("started")

	if !strings.Contains(buf.String(), `"logger":"`+DefaultServiceName+`"`) {
		t.Errorf("service name missing: %q", buf.String())
	}
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: "warn", Format: "console", Output: &buf})

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info entry written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn entry missing: %q", out)
	}
}

func TestQuietLoggerDiscards(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Quiet: true, Output: &buf})
	logger.Error("nothing")

	if buf.Len() != 0 {
		t.Errorf("quiet logger wrote %q", buf.String())
	}
}

func TestOpenLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devconsole.log")

	f, err := OpenLogFile(path)
	if err != nil {
		t.Fatalf("OpenLogFile: %v", err)
	}
	logger := NewLogger(LoggerConfig{Output: f})
	logger.Info("to file")
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("log file content = %q", data)
	}

	_, err = OpenLogFile(filepath.Join(t.TempDir(), "missing", "x.log"))
	if !mdwerror.HasCode(err, mdwerror.CodeConfigError) {
		t.Errorf("expected CONFIG_ERROR, got %v", err)
	}
}
