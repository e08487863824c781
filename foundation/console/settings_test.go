// File: settings_test.go
// Title: Console Settings Tests
// Description: Tests loading console settings from TOML and YAML files,
//              environment overrides, and hot reloading.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package console

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/msto63/devconsole/foundation/console/registry"
	mdwerror "github.com/msto63/devconsole/foundation/core/error"
)

func writeSettings(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSettingsFromTOML(t *testing.T) {
	path := writeSettings(t, "devconsole.toml", `
[console]
max_log_lines = 2500
max_suggestions = 8
runtime_mode = "editor"
access_level = "EditorOnly"
startup = ["Help", "ShowVars"]
watch_debounce = "50ms"

[console.prefixes]
warning = false
`)

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 2500, s.MaxLogLines)
	assert.Equal(t, 8, s.MaxSuggestions)
	assert.Equal(t, registry.Editor, s.RuntimeMode)
	assert.Equal(t, registry.EditorOnly, s.AccessLevel)
	assert.True(t, s.ShowLogPrefix)
	assert.False(t, s.ShowWarningPrefix)
	assert.True(t, s.ShowErrorPrefix)
	assert.Equal(t, []string{"Help", "ShowVars"}, s.Startup)
	assert.Equal(t, 50*time.Millisecond, s.WatchDebounce)
}

func TestLoadSettingsFromYAMLUsesDefaults(t *testing.T) {
	path := writeSettings(t, "devconsole.yaml", "console:\n  max_suggestions: 12\n")

	s, err := LoadSettings(path)
	require.NoError(t, err)

	want := DefaultSettings()
	want.MaxSuggestions = 12
	assert.Equal(t, want, s)
}

func TestLoadSettingsEnvironmentOverride(t *testing.T) {
	path := writeSettings(t, "devconsole.toml", "[console]\nmax_log_lines = 2500\n")
	t.Setenv(EnvPrefix+"_CONSOLE_MAX_LOG_LINES", "4000")

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 4000, s.MaxLogLines)
}

func TestLoadSettingsErrors(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeNotFound))

	path := writeSettings(t, "bad.toml", "[console]\nruntime_mode = \"arcade\"\n")
	_, err = LoadSettings(path)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidConfig))

	path = writeSettings(t, "bad-level.toml", "[console]\naccess_level = \"Nowhere\"\n")
	_, err = LoadSettings(path)
	assert.True(t, mdwerror.HasCode(err, mdwerror.CodeInvalidConfig))
}

func TestLoadSettingsConfigExposesHostSections(t *testing.T) {
	path := writeSettings(t, "devconsole.toml", "[demo]\ngravity = 3.5\n")

	cfg, err := LoadSettingsConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3.5, cfg.GetFloat("demo.gravity", 9.81))
	assert.Equal(t, DefaultMaxLogLines, cfg.GetInt("console.max_log_lines"))
}

func TestApplySettingsChangesCommandAccess(t *testing.T) {
	c, _ := newTestConsole(t, Options{})
	cb := &cube{}
	Track(c, "Cube", cb, Owner{})

	result := c.Submit(context.Background(), "Explode")
	assert.True(t, mdwerror.HasCode(result.Err, mdwerror.CodeAccessDenied))

	s := c.Settings()
	s.RuntimeMode = registry.Editor
	c.ApplySettings(s)

	result = c.Submit(context.Background(), "Explode")
	require.True(t, result.OK())
	assert.Equal(t, "boom", outputTexts(c)[len(c.Output())-1])
}

func TestWatchSettingsReloads(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := writeSettings(t, "devconsole.toml", "[console]\nmax_log_lines = 200\nwatch_debounce = \"20ms\"\n")
	c, _ := newTestConsole(t, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := WatchSettings(ctx, path, c)
	require.NoError(t, err)
	defer cfg.StopWatching()
	assert.Equal(t, 200, c.Settings().MaxLogLines)
	assert.Equal(t, 20*time.Millisecond, c.Settings().WatchDebounce)

	require.NoError(t, os.WriteFile(path, []byte("[console]\nmax_log_lines = 800\n"), 0o644))
	require.Eventually(t, func() bool {
		return c.Settings().MaxLogLines == 800
	}, 5*time.Second, 20*time.Millisecond)

	// An invalid file keeps the current settings
	require.NoError(t, os.WriteFile(path, []byte("[console]\nruntime_mode = \"arcade\"\n"), 0o644))
	time.Sleep(400 * time.Millisecond)
	assert.Equal(t, 800, c.Settings().MaxLogLines)
}
