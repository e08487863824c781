// File: main.go
// Title: devconsole Entry Point
// Description: Starts the devconsole command line interface.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package main

import (
	"os"

	"github.com/msto63/devconsole/cmd/devconsole/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
