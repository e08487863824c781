// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config provides configuration management with TOML
//              and YAML support, environment overrides and hot reloading.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-16 v0.2.0: fsnotify watcher, removed discovery and rule validation

/*
Package config provides configuration management for devconsole hosts.

Package: config
Title: Core Configuration Management
Description: Loads TOML or YAML files into a nested map and exposes typed,
             dot-path access with defaults. Environment variables override
             file values. A file watcher reloads the data when the file
             changes and notifies registered handlers.
Author: msto63
Version: v0.2.0
Created: 2025-01-25
Modified: 2026-10-16

# Basic Configuration Loading

	cfg, err := mdwconfig.LoadWithOptions("devconsole.toml", mdwconfig.LoadOptions{
		Format:    mdwconfig.FormatAuto,
		EnvPrefix: "DEVCONSOLE",
	})
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	maxLines := cfg.GetInt("console.max_log_lines", 1000)
	mode := cfg.GetString("console.runtime_mode", "DevBuild")

# Environment Overrides

With EnvPrefix "DEVCONSOLE" the key console.max_log_lines is overridden by
DEVCONSOLE_CONSOLE_MAX_LOG_LINES. Slices are never read from the
environment.

# Hot Reloading

	cfg.OnChange(func(oldCfg, newCfg *mdwconfig.Config) {
		applySettings(newCfg)
	})
	if err := cfg.WatchWithOptions(ctx, mdwconfig.WatchOptions{}); err != nil {
		return err
	}
	defer cfg.StopWatching()

Handlers run on the watcher goroutine and must not call StopWatching.
*/
package config
