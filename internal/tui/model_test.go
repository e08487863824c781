// File: model_test.go
// Title: Console TUI Model Tests
// Description: Drives the TUI model with key messages and checks the
//              console state behind it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/devconsole/foundation/console"
	"github.com/msto63/devconsole/foundation/core/log"
	"github.com/msto63/devconsole/internal/demo"
)

func newModel(t *testing.T) (Model, *console.Console, *demo.Scene) {
	t.Helper()
	c, err := console.New(console.Options{Logger: log.NewNop()})
	require.NoError(t, err)
	scene := demo.NewScene()
	require.NoError(t, demo.Register(c, scene))

	m := NewModel(context.Background(), c)
	m = send(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, c, scene
}

func send(m Model, msg tea.Msg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func toggle(m Model) Model {
	return send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'`'}})
}

func TestClosedConsoleIgnoresInput(t *testing.T) {
	m, c, _ := newModel(t)

	m = typeText(m, "Help")
	assert.Empty(t, m.input.Value())
	assert.Contains(t, m.View(), "Konsole geschlossen")

	m = toggle(m)
	assert.True(t, c.IsOpen())
	assert.Contains(t, m.View(), "Scene console opened (1)")

	m = toggle(m)
	assert.False(t, c.IsOpen())
}

func TestTypeCompleteAndSubmit(t *testing.T) {
	m, c, scene := newModel(t)
	m = toggle(m)

	m = typeText(m, "SpawnC")
	require.Equal(t, 1, m.list.Len())

	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "SpawnCube ", m.input.Value())
	assert.Equal(t, len("SpawnCube "), m.input.Position())

	m = typeText(m, "- gamma")
	assert.Contains(t, m.View(), "SpawnCube -")

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, m.input.Value())
	_, ok := scene.Cube("gamma")
	assert.True(t, ok)
	assert.Equal(t, []string{"SpawnCube - gamma"}, c.History())
	assert.Contains(t, m.viewport.View(), "Spawned gamma")
}

func TestArrowsSelectSuggestions(t *testing.T) {
	m, _, _ := newModel(t)
	m = toggle(m)

	m = typeText(m, "Paint - ")
	require.Equal(t, 4, m.list.Len())

	m = send(m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.selected)
	assert.True(t, m.navigating)

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "Paint - Green ", m.input.Value())
	assert.Equal(t, -1, m.selected)
	assert.False(t, m.navigating)
}

func TestArrowsWalkHistoryWithoutSuggestions(t *testing.T) {
	m, c, _ := newModel(t)
	m = toggle(m)

	for _, line := range []string{"SpawnCube - a", "SpawnCube - b"} {
		m = typeText(m, line)
		m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	}
	require.Len(t, c.History(), 2)

	m = send(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "SpawnCube - b", m.input.Value())
	m = send(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "SpawnCube - a", m.input.Value())
	m = send(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "SpawnCube - b", m.input.Value())
}

func TestClearAndQuit(t *testing.T) {
	m, c, _ := newModel(t)
	m = toggle(m)
	require.NotEmpty(t, c.Output())

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Empty(t, c.Output())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, c.IsOpen())
	assert.True(t, strings.Contains(m.View(), "DevBuild"))
}

func TestSuggestionCellFitsColumn(t *testing.T) {
	assert.Equal(t, "Help      ", SuggestionCell("Help", 10))
	assert.Equal(t, "SpawnCube…", SuggestionCell("SpawnCube. Spawns a cube", 10))
}

func TestNarrowWindowTruncatesSuggestions(t *testing.T) {
	m, _, _ := newModel(t)
	m = send(m, tea.WindowSizeMsg{Width: 24, Height: 40})
	m = toggle(m)
	m = typeText(m, "Spawn")

	view := m.View()
	assert.Contains(t, view, "…")
	assert.NotContains(t, view, "SpawnCube. Creates a cube")
}
