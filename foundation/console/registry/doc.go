// Package registry stores the commands and variables a host exposes to the
// console.
//
// Package: registry
// Title: Console Command and Variable Registry
// Description: Commands are registered once with typed parameters and an
//              explicit invoker. Registration validates identifiers, rejects
//              duplicates (the first registration wins), and derives the
//              minimum argument count. Variables are unique per owner type.
//              The registry also keeps value suggestions for parameters and
//              parameter types, and renders command signatures.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial registry implementation
// - 2026-10-16 v0.2.0: Console command and variable registry
//
// Usage:
//
//	reg := registry.New(registry.Options{Logger: logger})
//	err := reg.RegisterCommand(&registry.Command{
//		Name:   "SetSize",
//		Owner:  "Cube",
//		Access: registry.Everywhere,
//		Params: []registry.Param{
//			{Name: "w", Type: coerce.Int},
//			{Name: "h", Type: coerce.Int, Optional: true, Default: 2},
//		},
//		Invoke: setSize,
//	})
//	fmt.Println(registry.Signature(cmd, 1)) // SetSize -int w -*int h = 2*
package registry
