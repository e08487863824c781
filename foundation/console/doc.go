// Package console provides an embeddable interactive command console.
//
// Package: console
// Title: Interactive Developer Console
// Description: A console holds the commands and variables a host exposes,
//              tracks the live objects commands run on, and turns single
//              input lines into calls. It also provides what a front end
//              needs to present it: a bounded output log with an optional
//              sink, ranked suggestions for the current input and caret,
//              completion, an in-memory input history, a variables view,
//              and hooks that run when the console opens or closes. The
//              presentation itself is left to the host.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial high-level engine
// - 2026-10-16 v0.2.0: Developer console facade
//
// Usage:
//
//	c, err := console.New(console.Options{Logger: logger})
//	if err != nil {
//		return err
//	}
//
//	c.RegisterCommand(&registry.Command{
//		Name:   "SetSize",
//		Owner:  "Cube",
//		Access: registry.Everywhere,
//		Params: []registry.Param{{Name: "w", Type: coerce.Int}},
//		Void:   true,
//		Invoke: func(target any, args []any) (any, error) {
//			target.(*Cube).Size = args[0].(int)
//			return nil, nil
//		},
//	})
//	console.Track(c, "Cube", cube, console.Owner{})
//
//	c.Submit(ctx, "SetSize - 5")
//	list := c.Update("SetS", 4, false) // SetSize. ...
//
// Settings can be loaded from the [console] section of a TOML or YAML file
// and hot reloaded:
//
//	[console]
//	max_log_lines   = 1000
//	max_suggestions = 20
//	runtime_mode    = "DevBuild"
//	access_level    = "Everywhere"
//
//	[console.prefixes]
//	log     = true
//	warning = true
//	error   = true
package console
