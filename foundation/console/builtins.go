// File: builtins.go
// Title: Built-in Console Commands
// Description: Commands every console provides, registered on the static
//              Console type: command listing, log and view management,
//              variable editing, and settings.
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

	"github.com/msto63/devconsole/foundation/console/coerce"
	"github.com/msto63/devconsole/foundation/console/registry"
	"github.com/msto63/devconsole/foundation/console/suggest"
)

// BuiltinOwner is the static type the built-in commands belong to
const BuiltinOwner = "Console"

func (c *Console) registerBuiltins() {
	c.AddStaticType(BuiltinOwner)

	static := func(name, summary string, params []registry.Param, fn func(args []any) error) *registry.Command {
		return &registry.Command{
			Name:    name,
			Summary: summary,
			Access:  registry.Everywhere,
			Owner:   BuiltinOwner,
			Static:  true,
			Void:    true,
			Params:  params,
			Invoke: func(_ any, args []any) (any, error) {
				return nil, fn(args)
			},
		}
	}
	boolParam := []registry.Param{{Name: "state", Type: coerce.Bool}}

	printCmds := func([]any) error {
		cmds := c.commands.Commands()
		lines := []string{fmt.Sprintf("%d Cmds:", len(cmds))}
		for _, cmd := range cmds {
			lines = append(lines, "\t"+registry.Summary(cmd))
		}
		for _, l := range lines {
			c.Print(l)
		}
		return nil
	}

	builtins := []*registry.Command{
		static("Help", "Shows all commands", nil, printCmds),
		static("PrintCmds", "Shows all commands", nil, printCmds),
		static("ClearConsole", "Clears the console log", nil, func([]any) error {
			c.ClearOutput()
			return nil
		}),
		static("ShowVars", "Shows the variables of all live instances", nil, func([]any) error {
			lines := c.VarsView()
			if len(lines) == 0 {
				c.Log(LevelInfo, "No variables to show")
			}
			for _, l := range lines {
				c.Print(l)
			}
			return nil
		}),
		static("SetVarValue", "Sets a variable on all live instances of its class",
			[]registry.Param{
				{Name: "variable", Type: coerce.String, Generator: c.commands.VariableRefs},
				{Name: "value", Type: coerce.String},
			},
			func(args []any) error {
				// Already reported to the console log
				_ = c.SetVarValue(args[0].(string), args[1].(string))
				return nil
			}),
		static("SetMaxLogLines", fmt.Sprintf("Sets the console log size. Minimum is %d", MinMaxLogLines),
			[]registry.Param{{Name: "maxLines", Type: coerce.Int, Generator: rangeOf(MinMaxLogLines, 10000, 900)}},
			func(args []any) error {
				s := c.Settings()
				s.MaxLogLines = args[0].(int)
				c.ApplySettings(s)
				return nil
			}),
		static("SetMaxSuggsToShow", fmt.Sprintf("Sets how many suggestions are shown. Minimum is %d", MinMaxSuggestions),
			[]registry.Param{{Name: "suggsToShow", Type: coerce.Int, Generator: rangeOf(MinMaxSuggestions, 50, 5)}},
			func(args []any) error {
				s := c.Settings()
				s.MaxSuggestions = args[0].(int)
				c.ApplySettings(s)
				return nil
			}),
		static("SetLogPrefix", "Shows or hides the [LOG] prefix", boolParam, func(args []any) error {
			s := c.Settings()
			s.ShowLogPrefix = args[0].(bool)
			c.ApplySettings(s)
			return nil
		}),
		static("SetWarningPrefix", "Shows or hides the [WARNING] prefix", boolParam, func(args []any) error {
			s := c.Settings()
			s.ShowWarningPrefix = args[0].(bool)
			c.ApplySettings(s)
			return nil
		}),
		static("SetErrorPrefix", "Shows or hides the [ERROR] prefix", boolParam, func(args []any) error {
			s := c.Settings()
			s.ShowErrorPrefix = args[0].(bool)
			c.ApplySettings(s)
			return nil
		}),
		static("Clean", "Removes instances that no longer exist", nil, func([]any) error {
			c.Log(LevelInfo, fmt.Sprintf("Removed %d dead instances", c.Clean()))
			return nil
		}),
	}

	for _, cmd := range builtins {
		_ = c.RegisterCommand(cmd)
	}
}

func rangeOf(start, end, inc int) func() []string {
	return func() []string {
		values, _ := suggest.IntRange(start, end, inc)
		return values
	}
}
