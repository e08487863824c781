// File: suggestions_test.go
// Title: Console Suggestion Tests
// Description: Tests command and parameter suggestions, the suggestion
//              cache, paging, and completion of the input line.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package console

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/devconsole/foundation/console/state"
)

func TestUpdateSuggestsAccessibleCommands(t *testing.T) {
	c, _ := newTestConsole(t, Options{DisableBuiltins: true})

	list := c.Update("Se", 2, false)
	assert.Equal(t, state.SuggestingCmds, c.State().Mode)
	assert.Equal(t, 0, list.Offset)
	assert.Equal(t, []string{"SetColor. Paints the cube", "SetSize. Resizes the cube"}, list.Items)

	assert.Empty(t, c.Update("Expl", 4, false).Items, "EditorOnly in a dev build")
	assert.Empty(t, c.Update("", 0, false).Items)
	assert.Empty(t, c.Update("Zzz", 3, false).Items)

	text, caret, ok := c.Complete(0)
	assert.False(t, ok)
	assert.Empty(t, text)
	assert.Zero(t, caret)
}

func TestCompleteCommandName(t *testing.T) {
	c, _ := newTestConsole(t, Options{DisableBuiltins: true})
	c.Update("  setS", 6, false)

	text, caret, ok := c.Complete(0)
	require.True(t, ok)
	assert.Equal(t, "SetSize ", text)
	assert.Equal(t, len(text), caret)
}

func TestUpdateShowsSignature(t *testing.T) {
	c, _ := newTestConsole(t, Options{DisableBuiltins: true})

	list := c.Update("SetSize ", 8, false)
	assert.Equal(t, state.ShowingCmdSignature, c.State().Mode)
	assert.Equal(t, []string{"SetSize -int w -int h = 2"}, list.Items)
	assert.Equal(t, 1, list.Offset)
	assert.Zero(t, list.Len())

	list = c.Update("SetSize - 4 - ", 14, false)
	assert.Equal(t, []string{"SetSize -int w -*int h = 2*"}, list.Items)

	list = c.Update("SetSize - 4 - 1 - ", 18, false)
	assert.Equal(t, []string{"SetSize -int w -int h = 2"}, list.Items)

	assert.Empty(t, c.Update("Explode ", 8, false).Items)
	assert.Empty(t, c.Update("Nope - ", 7, false).Items)
}

func TestEnumSuggestionsAreRanked(t *testing.T) {
	c, _ := newTestConsole(t, Options{DisableBuiltins: true})

	list := c.Update("Spawn - B", 9, false)
	assert.Equal(t, 1, list.Offset)
	assert.Equal(t, []string{"Box", "Sphere"}, list.Selectable())

	text, caret, ok := c.Complete(0)
	require.True(t, ok)
	assert.Equal(t, "Spawn - Box ", text)
	assert.Equal(t, 12, caret)
}

func TestCompleteQuotesSeparatedValues(t *testing.T) {
	c, _ := newTestConsole(t, Options{DisableBuiltins: true})
	require.NoError(t, c.SetParameterSuggestions("SetColor", "color", "dark-red", "blue", "-5"))

	list := c.Update("SetColor - ", 11, false)
	require.Equal(t, []string{"dark-red", "blue", "-5"}, list.Selectable())

	text, caret, ok := c.Complete(0)
	require.True(t, ok)
	assert.Equal(t, `SetColor - "dark-red" `, text)
	assert.Equal(t, len(text), caret)

	text, _, _ = c.Complete(2)
	assert.Equal(t, "SetColor - -5 ", text)
}

func TestCompleteReplacesParameterUnderCaret(t *testing.T) {
	c, _ := newTestConsole(t, Options{DisableBuiltins: true})
	c.SetTypeSuggestions("int", "10", "20")

	// Caret inside the first argument, a second argument follows
	c.Update("SetSize - 1 - 7", 11, false)
	assert.Equal(t, 0, c.State().CurrParamIndex)

	text, caret, ok := c.Complete(1)
	require.True(t, ok)
	assert.Equal(t, "SetSize - 20 - 7", text)
	assert.Equal(t, 13, caret)
}

func TestCompositeSuggestionsShowConstructors(t *testing.T) {
	c, _ := newTestConsole(t, Options{DisableBuiltins: true})

	list := c.Update("Move - (1, ", 11, false)
	require.Equal(t, 3, list.Offset)
	assert.Equal(t, "Move -*Vector3 to*", list.Items[0])
	assert.Equal(t, "Vector3(float32 x, *float32 y*, float32 z)", list.Items[1])
	assert.Equal(t, "Vector3(float32 x, *float32 y*)", list.Items[2])
	assert.Equal(t, []string{"up", "zero"}, list.Selectable())

	require.NoError(t, c.RegisterNamed("Vector3", "spawn", vector3{X: 4}))
	list = c.Update("Move - ", 7, false)
	assert.Equal(t, []string{"up", "zero", "spawn"}, list.Selectable())
}

func TestParameterValuesAreCachedPerParameter(t *testing.T) {
	c, _ := newTestConsole(t, Options{DisableBuiltins: true})

	calls := 0
	require.NoError(t, c.SetParameterGenerator("SetColor", "color", func() []string {
		calls++
		return []string{"red", "blue"}
	}))

	c.Update("SetColor - ", 11, false)
	assert.Equal(t, 1, calls)

	list := c.Update("SetColor - b", 12, false)
	assert.Equal(t, 1, calls)
	assert.Equal(t, []string{"blue", "red"}, list.Selectable())

	c.Update("SetColor ", 9, false)
	c.Update("SetColor - ", 11, false)
	assert.Equal(t, 2, calls)

	c.SetTypeSuggestions("string", "green")
	list = c.Update("SetColor - ", 11, false)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []string{"red", "blue", "green"}, list.Selectable())
}

func TestVisiblePagesSuggestions(t *testing.T) {
	c, _ := newTestConsole(t, Options{DisableBuiltins: true, Settings: &Settings{MaxSuggestions: 1}})
	assert.Equal(t, MinMaxSuggestions, c.Settings().MaxSuggestions)

	values := make([]string, 12)
	for i := range values {
		values[i] = fmt.Sprintf("c%02d", i)
	}
	require.NoError(t, c.SetParameterSuggestions("SetColor", "color", values...))
	c.Update("SetColor - ", 11, false)

	page, at := c.Visible(0)
	assert.Equal(t, []string{"SetColor -*string color*", "c00", "c01", "c02", "c03"}, page)
	assert.Equal(t, 1, at)

	page, at = c.Visible(6)
	assert.Equal(t, []string{"c04", "c05", "c06", "c07", "c08"}, page)
	assert.Equal(t, 2, at)

	page, at = c.Visible(11)
	assert.Equal(t, []string{"c09", "c10", "c11"}, page)
	assert.Equal(t, 2, at)

	_, at = c.Visible(-1)
	assert.Equal(t, -1, at)
}

func TestNavigatingWithoutSuggestionsSelectsHistory(t *testing.T) {
	c, _ := newTestConsole(t, Options{DisableBuiltins: true})

	list := c.Update("", 0, true)
	assert.Equal(t, state.SelectingFromHistory, c.State().Mode)
	assert.Empty(t, list.Items)

	c.Update("Se", 2, false)
	c.Update("Se", 2, true)
	assert.Equal(t, state.SelectingCmds, c.State().Mode)
	text, _, ok := c.Complete(1)
	require.True(t, ok)
	assert.Equal(t, "SetSize ", text)
}
