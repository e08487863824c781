// File: suggestions.go
// Title: Console Suggestions and Completion
// Description: Computes the suggestion list for the current input line and
//              caret, pages it for display, and writes a selected
//              suggestion back into the input line.
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

	"github.com/msto63/devconsole/foundation/console/coerce"
	"github.com/msto63/devconsole/foundation/console/lexer"
	"github.com/msto63/devconsole/foundation/console/registry"
	"github.com/msto63/devconsole/foundation/console/state"
	"github.com/msto63/devconsole/foundation/console/suggest"
	mdwstringx "github.com/msto63/devconsole/foundation/utils/stringx"
)

type suggestionCache struct {
	list        suggest.List
	completions []string // Raw values behind the selectable items

	// Parameter values are kept while the caret stays in one parameter
	valid   bool
	command string
	param   int
	values  []string
}

// Update recomputes the input state for text and caret and returns the
// suggestion list for it. navigating is true while the user moves
// through the list.
func (c *Console) Update(text string, caret int, navigating bool) suggest.List {
	c.mutex.Lock()
	c.input.Update(text, caret, navigating, c.suggestions.list.Len() > 0)
	st := *c.input
	mode := c.settings.RuntimeMode
	cache := c.suggestions
	c.mutex.Unlock()

	// Generators are host code and run without the lock
	var list suggest.List
	var completions []string
	switch {
	case st.Mode == state.SelectingFromHistory:
	case st.Mode.IsCommandMode():
		list, completions = c.commandSuggestions(strings.TrimSpace(st.Text), mode)
		cache.valid = false
	default:
		list, completions = c.paramSuggestions(&st, mode, &cache)
	}

	cache.list = list
	cache.completions = completions
	c.mutex.Lock()
	c.suggestions = cache
	c.mutex.Unlock()
	return list
}

func (c *Console) accessibleCommands(filter string, mode registry.RuntimeMode) []*registry.Command {
	var out []*registry.Command
	for _, cmd := range c.commands.Commands() {
		if cmd.Access.AllowedIn(mode) && mdwstringx.ContainsIgnoreCase(cmd.Name, filter) {
			out = append(out, cmd)
		}
	}
	return out
}

func (c *Console) commandSuggestions(filter string, mode registry.RuntimeMode) (suggest.List, []string) {
	if filter == "" {
		return suggest.List{}, nil
	}

	cmds := c.accessibleCommands(filter, mode)
	names := make([]string, len(cmds))
	byName := make(map[string]*registry.Command, len(cmds))
	for i, cmd := range cmds {
		names[i] = cmd.Name
		byName[cmd.Name] = cmd
	}
	suggest.Rank(names, filter, 0)

	items := make([]string, len(names))
	for i, name := range names {
		items[i] = registry.Summary(byName[name])
	}
	return suggest.List{Items: items}, names
}

func (c *Console) paramSuggestions(st *state.State, mode registry.RuntimeMode, cache *suggestionCache) (suggest.List, []string) {
	name := st.CommandName()
	cmd, ok := c.commands.Lookup(name)
	if !ok || !cmd.Access.AllowedIn(mode) {
		cache.valid = false
		return suggest.List{}, nil
	}

	index := st.CurrParamIndex
	header := []string{registry.Signature(cmd, index)}
	if index < 0 || index >= len(cmd.Params) {
		cache.valid = false
		return suggest.List{Items: header, Offset: 1}, nil
	}

	t := cmd.Params[index].Type
	if t.Kind == coerce.KindArray {
		t = t.Elem
	}
	header = append(header, coerce.ConstructorSignatures(t, st.CurrCtorParamIndex)...)

	reuse := cache.valid && cache.command == name && cache.param == index && !st.ParamChanged()
	if !reuse {
		values := c.commands.ParamSuggestions(cmd, index)
		values = append(values, c.coercer.Candidates(t)...)
		cache.values = dedupe(values)
		cache.valid, cache.command, cache.param = true, name, index
	}

	values := append([]string(nil), cache.values...)
	suggest.Rank(values, st.ParamText(), 0)

	items := append(header, values...)
	return suggest.List{Items: items, Offset: len(header)}, values
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := values[:0]
	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func (c *Console) invalidateSuggestions() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.suggestions.valid = false
}

// Visible returns the page of the last suggestion list that contains the
// selectable item at index selected, at most MaxSuggestions lines. The
// second result is the position of the selected item within the page, or
// -1 when it is not shown.
func (c *Console) Visible(selected int) ([]string, int) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	list := c.suggestions.list
	size := c.settings.MaxSuggestions
	if len(list.Items) == 0 {
		return nil, -1
	}

	abs := list.Offset
	if selected >= 0 && selected < list.Len() {
		abs += selected
	} else {
		abs = -1
	}

	start := 0
	if abs > 0 {
		start = abs / size * size
	}
	end := min(start+size, len(list.Items))
	page := append([]string(nil), list.Items[start:end]...)

	if abs < start || abs >= end {
		return page, -1
	}
	return page, abs - start
}

// Complete writes the selectable item at index into the input line and
// returns the new text and caret. A command name replaces the whole line;
// a parameter value replaces the parameter under the caret and is quoted
// when it contains a separator and is not a number.
func (c *Console) Complete(index int) (string, int, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	comps := c.suggestions.completions
	if index < 0 || index >= len(comps) {
		return "", 0, false
	}

	st := c.input
	switch {
	case st.Mode.IsCommandMode():
		text := comps[index] + " "
		return text, len(text), true
	case st.Mode.IsParamMode() && st.CurrParamPos >= 0:
		value := mdwstringx.QuoteIfSeparated(comps[index], lexer.Separator)
		insert := string(lexer.Separator) + " " + value + " "
		text := st.Text[:st.CurrParamPos] + insert + st.Text[st.NextParamPos:]
		return text, st.CurrParamPos + len(insert), true
	default:
		return "", 0, false
	}
}

// State returns a copy of the current input state
func (c *Console) State() state.State {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return *c.input
}
