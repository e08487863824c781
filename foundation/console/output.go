// File: output.go
// Title: Console Output Log
// Description: Bounded line buffer for console output. Lines carry a level,
//              get the configured prefix, are mirrored to the structured
//              logger, and are forwarded to an optional sink.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package console

import (
	"strings"

	"github.com/msto63/devconsole/foundation/console/executor"
	"github.com/msto63/devconsole/foundation/core/log"
)

// Level classifies an output line
type Level = executor.Level

// Line is one line of console output
type Line = executor.Line

// Output levels
const (
	LevelPlain   = executor.LevelPlain
	LevelInfo    = executor.LevelInfo
	LevelWarning = executor.LevelWarning
	LevelError   = executor.LevelError
)

// Line prefixes
const (
	LogPrefix     = "[LOG]: "
	WarningPrefix = "[WARNING]: "
	ErrorPrefix   = "[ERROR]: "
)

// Sink receives every line written to the console log
type Sink interface {
	WriteLine(line Line)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(Line)

// WriteLine calls f
func (f SinkFunc) WriteLine(line Line) {
	f(line)
}

func (s Settings) prefix(level Level) string {
	switch {
	case level == LevelInfo && s.ShowLogPrefix:
		return LogPrefix
	case level == LevelWarning && s.ShowWarningPrefix:
		return WarningPrefix
	case level == LevelError && s.ShowErrorPrefix:
		return ErrorPrefix
	}
	return ""
}

// Print writes a plain line to the console log
func (c *Console) Print(text string) {
	c.emit(Line{Level: LevelPlain, Text: text})
}

// Log writes a line with the given level; multi-line text is split
func (c *Console) Log(level Level, text string) {
	text = strings.TrimRight(text, "\n")
	parts := strings.Split(text, "\n")
	lines := make([]Line, len(parts))
	for i, p := range parts {
		lines[i] = Line{Level: level, Text: p}
	}
	c.emit(lines...)
}

func (c *Console) emit(lines ...Line) {
	if len(lines) == 0 {
		return
	}

	c.mutex.Lock()
	for i := range lines {
		lines[i].Text = c.settings.prefix(lines[i].Level) + lines[i].Text
	}
	c.output = append(c.output, lines...)
	if over := len(c.output) - c.settings.MaxLogLines; over > 0 {
		c.output = append(c.output[:0:0], c.output[over:]...)
	}
	sink := c.sink
	c.mutex.Unlock()

	for _, line := range lines {
		c.logger.Debug(line.Text, log.Fields{"level": line.Level.String()})
		if sink != nil {
			sink.WriteLine(line)
		}
	}
}

// Output returns a copy of the console log
func (c *Console) Output() []Line {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return append([]Line(nil), c.output...)
}

// ClearOutput empties the console log
func (c *Console) ClearOutput() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.output = nil
}

// SetSink replaces the output sink; nil disables forwarding
func (c *Console) SetSink(sink Sink) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.sink = sink
}
