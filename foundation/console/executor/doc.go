// Package executor dispatches console input lines to registered commands.
//
// Package: executor
// Title: Console Command Execution Engine
// Description: The engine turns one line of input into zero or more calls of
//              a registered invoker. It checks, in order: that the command
//              exists, that its access level allows the current runtime
//              mode, that enough arguments were given, and that none is
//              empty. It then coerces the arguments, fills defaults, and
//              invokes the command once for static commands or on the live
//              instances selected by the call mode. The outcome, including
//              the output lines for the console log, is returned as a
//              Result.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial executor implementation
// - 2026-10-16 v0.2.0: In-process console dispatcher
//
// Usage:
//
//	engine, err := executor.New(executor.Options{
//		Registry:  commands,
//		Instances: instances,
//		Mode:      registry.DevBuild,
//	})
//	result := engine.Execute(ctx, "SetSize - 5")
//	for _, line := range result.Output {
//		fmt.Println(line.Text)
//	}
package executor
