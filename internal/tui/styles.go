// File: styles.go
// Title: Console TUI Styles
// Description: Colors and lipgloss styles of the terminal console.
// Author: msto63
// Version: v0.2.0
// Created: 2025-12-06
// Modified: 2026-10-16
//
// Change History:
// - 2025-12-06 v0.1.0: Chat and status view styles
// - 2026-10-16 v0.2.0: Console log, suggestion and input styles

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/devconsole/foundation/console"
	"github.com/msto63/devconsole/foundation/console/coerce"
	mdwstringx "github.com/msto63/devconsole/foundation/utils/stringx"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
	colorFg        = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	// Log line styles
	EchoStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	PlainStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	InfoStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	// Suggestion styles
	HeaderStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	HighlightStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	SuggestionStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	SelectedSuggestionStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				PaddingLeft(2)

	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#374151")).
			Foreground(colorFg).
			Padding(0, 1)

	FocusedInputStyle = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder()).
				BorderForeground(colorPrimary).
				Padding(0, 1)
)

// RenderLine styles a console log line by its level. Echoed input lines
// start with "> ".
func RenderLine(line console.Line) string {
	switch line.Level {
	case console.LevelError:
		return ErrorStyle.Render(line.Text)
	case console.LevelWarning:
		return WarningStyle.Render(line.Text)
	case console.LevelInfo:
		return InfoStyle.Render(line.Text)
	}
	if strings.HasPrefix(line.Text, "> ") {
		return EchoStyle.Render(line.Text)
	}
	return PlainStyle.Render(line.Text)
}

// RenderSignature styles a signature line, emphasising the part between
// highlight markers.
func RenderSignature(s string) string {
	parts := strings.Split(s, coerce.HighlightMarker)
	var b strings.Builder
	for i, p := range parts {
		if i%2 == 1 {
			b.WriteString(HighlightStyle.Render(p))
		} else {
			b.WriteString(HeaderStyle.Render(p))
		}
	}
	return b.String()
}

// SuggestionCell fits a suggestion into a column of width runes so the
// selection background spans the whole column.
func SuggestionCell(item string, width int) string {
	return mdwstringx.PadRight(mdwstringx.Truncate(item, width, "…"), width, ' ')
}

// RenderHelp renders a help line
func RenderHelp(help string) string {
	return SubtitleStyle.Render(help)
}
