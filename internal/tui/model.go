// File: model.go
// Title: Console TUI Model
// Description: Bubble Tea model that drives a console from a terminal: a
//              scrolling log, a paged suggestion list under the input line,
//              history navigation, completion, and the open and close
//              toggle.
// Author: msto63
// Version: v0.2.0
// Created: 2025-12-06
// Modified: 2026-10-16
//
// Change History:
// - 2025-12-06 v0.1.0: Chat, search, agent and status views
// - 2026-10-16 v0.2.0: Developer console view

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/devconsole/foundation/console"
	"github.com/msto63/devconsole/foundation/console/suggest"
)

// refreshInterval picks up lines written by other goroutines
const refreshInterval = 500 * time.Millisecond

type refreshMsg time.Time

// Model is the console TUI model
type Model struct {
	ctx     context.Context
	console *console.Console
	keys    keyMap

	width  int
	height int
	ready  bool

	input    textinput.Model
	viewport viewport.Model

	list       suggest.List
	selected   int // Index into the selectable suggestions, -1 for none
	navigating bool
	rendered   string // Last output line rendered into the viewport
	lines      int
}

// NewModel creates a TUI model for c
func NewModel(ctx context.Context, c *console.Console) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Befehl eingeben..."
	ti.CharLimit = 1024
	ti.Focus()

	return Model{
		ctx:      ctx,
		console:  c,
		keys:     defaultKeyMap(),
		input:    ti,
		selected: -1,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.console.Close(m.ctx)
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			if m.console.IsOpen() {
				m.console.Close(m.ctx)
			} else {
				m.console.Open(m.ctx)
			}
			m.refresh()
			return m, nil
		}

		if !m.console.IsOpen() {
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Clear):
			m.console.ClearOutput()
		case key.Matches(msg, m.keys.Up):
			m.move(-1)
		case key.Matches(msg, m.keys.Down):
			m.move(1)
		case key.Matches(msg, m.keys.Complete):
			m.complete(max(m.selected, 0))
		case key.Matches(msg, m.keys.Cancel):
			m.resetSelection()
			m.suggest(false)
		case key.Matches(msg, m.keys.Submit):
			if m.navigating && m.selected >= 0 {
				m.complete(m.selected)
			} else {
				m.submit()
			}
		default:
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
			m.resetSelection()
			m.suggest(false)
		}
		m.refresh()
		return m, tea.Batch(cmds...)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, m.logHeight())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = m.logHeight()
		}
		m.input.Width = msg.Width - 6
		m.lines = -1
		m.refresh()

	case refreshMsg:
		m.refresh()
		return m, tick()
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m *Model) logHeight() int {
	return max(m.height-m.console.Settings().MaxSuggestions-8, 3)
}

func (m *Model) resetSelection() {
	m.navigating = false
	m.selected = -1
}

func (m *Model) suggest(navigating bool) {
	m.list = m.console.Update(m.input.Value(), m.input.Position(), navigating)
}

// move walks the suggestion list, or the history when there is none.
// A recalled line keeps the list empty until the user edits it.
func (m *Model) move(delta int) {
	if m.list.Len() == 0 {
		var line string
		var ok bool
		if delta < 0 {
			line, ok = m.console.HistoryPrev()
		} else {
			line, ok = m.console.HistoryNext()
		}
		if ok {
			m.input.SetValue(line)
			m.input.CursorEnd()
		}
		return
	}

	m.navigating = true
	m.selected = min(max(m.selected+delta, 0), m.list.Len()-1)
	m.suggest(true)
}

func (m *Model) complete(index int) {
	text, caret, ok := m.console.Complete(index)
	if ok {
		m.input.SetValue(text)
		m.input.SetCursor(caret)
	}
	m.resetSelection()
	m.suggest(false)
}

func (m *Model) submit() {
	line := m.input.Value()
	m.input.Reset()
	m.resetSelection()
	m.suggest(false)
	m.console.Submit(m.ctx, line)
}

// refresh renders the console log into the viewport when it changed
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	out := m.console.Output()
	last := ""
	if len(out) > 0 {
		last = out[len(out)-1].Text
	}
	if len(out) == m.lines && last == m.rendered {
		return
	}
	m.lines, m.rendered = len(out), last

	rendered := make([]string, len(out))
	for i, line := range out {
		rendered[i] = RenderLine(line)
	}
	m.viewport.SetContent(strings.Join(rendered, "\n"))
	m.viewport.GotoBottom()
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Lade..."
	}

	var s strings.Builder
	s.WriteString(m.renderHeader())
	s.WriteString("\n")

	if !m.console.IsOpen() {
		s.WriteString(BoxStyle.Width(max(m.width-4, 20)).Render(
			"Konsole geschlossen.\n\n" + RenderHelp("` drücken zum Öffnen, Ctrl+C zum Beenden")))
		s.WriteString("\n")
		s.WriteString(m.renderFooter())
		return s.String()
	}

	s.WriteString(m.viewport.View())
	s.WriteString("\n")
	s.WriteString(FocusedInputStyle.Render(m.input.View()))
	s.WriteString("\n")
	if suggestions := m.renderSuggestions(); suggestions != "" {
		s.WriteString(suggestions)
		s.WriteString("\n")
	}
	s.WriteString(m.renderFooter())
	return s.String()
}

func (m *Model) renderHeader() string {
	title := TitleStyle.Render("devconsole")
	session := SubtitleStyle.Render("Sitzung " + shortID(m.console.ID()))
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", session)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// renderSuggestions renders the visible page. Header lines are only on
// the first page.
func (m *Model) renderSuggestions() string {
	page, highlight := m.console.Visible(m.selected)
	if len(page) == 0 {
		return ""
	}

	size := m.console.Settings().MaxSuggestions
	start := 0
	if m.selected >= 0 {
		start = (m.list.Offset + m.selected) / size * size
	}

	column := max(m.width-4, 20)
	lines := make([]string, len(page))
	for i, item := range page {
		switch {
		case start+i < m.list.Offset:
			lines[i] = RenderSignature(item)
		case i == highlight:
			lines[i] = SelectedSuggestionStyle.Render(SuggestionCell(item, column))
		default:
			lines[i] = SuggestionStyle.Render(SuggestionCell(item, column))
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderFooter() string {
	help := m.keys.helpLine()
	mode := "Modus: " + m.console.Settings().RuntimeMode.String()
	return StatusBarStyle.Width(m.width).Render(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			help,
			strings.Repeat(" ", max(0, m.width-lipgloss.Width(help)-lipgloss.Width(mode)-4)),
			mode,
		),
	)
}
