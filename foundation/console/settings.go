// File: settings.go
// Title: Console Settings
// Description: Runtime settings of the console, loaded from the [console]
//              section of a TOML or YAML file and optionally hot reloaded
//              when the file changes.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: Startup lines and watch debounce

package console

import (
	"context"
	"time"

	"github.com/msto63/devconsole/foundation/console/registry"
	"github.com/msto63/devconsole/foundation/core/config"
	mdwerror "github.com/msto63/devconsole/foundation/core/error"
	"github.com/msto63/devconsole/foundation/core/log"
)

// Limits and defaults
const (
	MinMaxLogLines        = 100
	MinMaxSuggestions     = 5
	DefaultMaxLogLines    = 1000
	DefaultMaxSuggestions = 20
)

// EnvPrefix is the prefix of environment overrides, e.g.
// DEVCONSOLE_CONSOLE_RUNTIME_MODE
const EnvPrefix = "DEVCONSOLE"

// Settings are the tunables of a console
type Settings struct {
	MaxLogLines       int
	MaxSuggestions    int
	RuntimeMode       registry.RuntimeMode
	AccessLevel       registry.AccessLevel // Gates the console itself
	ShowLogPrefix     bool
	ShowWarningPrefix bool
	ShowErrorPrefix   bool

	Startup       []string      // Lines submitted by hosts after registration
	WatchDebounce time.Duration // Quiet period before a changed file is reloaded
}

// DefaultSettings returns the settings used when none are given
func DefaultSettings() Settings {
	return Settings{
		MaxLogLines:       DefaultMaxLogLines,
		MaxSuggestions:    DefaultMaxSuggestions,
		RuntimeMode:       registry.DevBuild,
		AccessLevel:       registry.Everywhere,
		ShowLogPrefix:     true,
		ShowWarningPrefix: true,
		ShowErrorPrefix:   true,
		WatchDebounce:     config.DefaultDebounce,
	}
}

// normalized clamps the limits to their minimums
func (s Settings) normalized() Settings {
	s.MaxLogLines = max(s.MaxLogLines, MinMaxLogLines)
	s.MaxSuggestions = max(s.MaxSuggestions, MinMaxSuggestions)
	if s.AccessLevel == 0 {
		s.AccessLevel = registry.Everywhere
	}
	if s.WatchDebounce <= 0 {
		s.WatchDebounce = config.DefaultDebounce
	}
	return s
}

func settingsDefaults() map[string]interface{} {
	d := DefaultSettings()
	return map[string]interface{}{
		"console": map[string]interface{}{
			"max_log_lines":   d.MaxLogLines,
			"max_suggestions": d.MaxSuggestions,
			"runtime_mode":    d.RuntimeMode.String(),
			"access_level":    d.AccessLevel.String(),
			"watch_debounce":  d.WatchDebounce.String(),
			"prefixes": map[string]interface{}{
				"log":     d.ShowLogPrefix,
				"warning": d.ShowWarningPrefix,
				"error":   d.ShowErrorPrefix,
			},
		},
	}
}

// SettingsFromConfig reads the [console] section of cfg
func SettingsFromConfig(cfg *config.Config) (Settings, error) {
	d := DefaultSettings()

	mode, err := registry.ParseRuntimeMode(cfg.GetString("console.runtime_mode", d.RuntimeMode.String()))
	if err != nil {
		return d, mdwerror.Wrap(err, "invalid console.runtime_mode").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("console.SettingsFromConfig")
	}
	level, err := registry.ParseAccessLevel(cfg.GetString("console.access_level", d.AccessLevel.String()))
	if err != nil {
		return d, mdwerror.Wrap(err, "invalid console.access_level").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("console.SettingsFromConfig")
	}

	s := Settings{
		MaxLogLines:       cfg.GetInt("console.max_log_lines", d.MaxLogLines),
		MaxSuggestions:    cfg.GetInt("console.max_suggestions", d.MaxSuggestions),
		RuntimeMode:       mode,
		AccessLevel:       level,
		ShowLogPrefix:     cfg.GetBool("console.prefixes.log", d.ShowLogPrefix),
		ShowWarningPrefix: cfg.GetBool("console.prefixes.warning", d.ShowWarningPrefix),
		ShowErrorPrefix:   cfg.GetBool("console.prefixes.error", d.ShowErrorPrefix),
		Startup:           cfg.GetStringSlice("console.startup"),
		WatchDebounce:     cfg.GetDuration("console.watch_debounce", d.WatchDebounce),
	}
	return s.normalized(), nil
}

// LoadSettingsConfig loads a TOML or YAML file with the console defaults
// and DEVCONSOLE_ environment overrides. Hosts read their own sections
// from the returned config.
func LoadSettingsConfig(path string) (*config.Config, error) {
	return config.LoadWithOptions(path, config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: EnvPrefix,
		Defaults:  settingsDefaults(),
	})
}

// LoadSettings loads console settings from a TOML or YAML file
func LoadSettings(path string) (Settings, error) {
	cfg, err := LoadSettingsConfig(path)
	if err != nil {
		return DefaultSettings(), err
	}
	return SettingsFromConfig(cfg)
}

// WatchSettings loads the settings file, applies it to c, and keeps
// applying it whenever the file changes until ctx is cancelled. Invalid
// reloads are logged and leave the current settings in place.
func WatchSettings(ctx context.Context, path string, c *Console) (*config.Config, error) {
	cfg, err := LoadSettingsConfig(path)
	if err != nil {
		return nil, err
	}
	settings, err := SettingsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	c.ApplySettings(settings)

	cfg.OnChange(func(_, updated *config.Config) {
		s, err := SettingsFromConfig(updated)
		if err != nil {
			c.logger.LogError(err)
			return
		}
		c.ApplySettings(s)
		c.logger.Info("Console settings reloaded", log.Fields{"path": path})
	})

	err = cfg.WatchWithOptions(ctx, config.WatchOptions{
		Debounce: settings.WatchDebounce,
		OnError: func(err error) {
			c.logger.WarnWithErr("Console settings watcher error", err)
		},
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Settings returns the current settings
func (c *Console) Settings() Settings {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.settings
}

// ApplySettings replaces the current settings. Limits below their
// minimum are raised to it.
func (c *Console) ApplySettings(s Settings) {
	s = s.normalized()

	c.mutex.Lock()
	c.settings = s
	if over := len(c.output) - s.MaxLogLines; over > 0 {
		c.output = append(c.output[:0:0], c.output[over:]...)
	}
	c.mutex.Unlock()

	c.engine.SetMode(s.RuntimeMode)
}
