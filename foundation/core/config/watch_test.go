// File: watch_test.go
// Title: Configuration Watcher Tests
// Description: Tests debounced hot reloading and clean watcher shutdown.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.2.0: Initial watcher tests

package config

import (
	"context"
	"os"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestWatchReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := writeFile(t, "devconsole.toml", "[console]\nmax_log_lines = 200\n")
	cfg, err := load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	changed := make(chan int, 4)
	cfg.OnChange(func(oldCfg, newCfg *Config) {
		changed <- newCfg.GetInt("console.max_log_lines")
	})

	if err := cfg.WatchWithOptions(context.Background(), WatchOptions{Debounce: 20 * time.Millisecond}); err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer cfg.StopWatching()

	if err := cfg.WatchWithOptions(context.Background(), WatchOptions{}); err != nil {
		t.Errorf("second Watch should be a no-op, got %v", err)
	}

	if err := os.WriteFile(path, []byte("[console]\nmax_log_lines = 800\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case got := <-changed:
		if got != 800 {
			t.Errorf("handler saw %d, want 800", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload within timeout")
	}

	if got := cfg.GetInt("console.max_log_lines"); got != 800 {
		t.Errorf("config not updated: %d", got)
	}
}

func TestWatchStopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg, err := load(writeFile(t, "devconsole.toml", "[console]\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	if err := cfg.WatchWithOptions(ctx, WatchOptions{}); err != nil {
		t.Fatalf("Watch: %v", err)
	}
	cancel()
	cfg.StopWatching()

	if cfg.watch != nil {
		t.Error("watcher still active after stop")
	}
}

func TestWatchRequiresFile(t *testing.T) {
	cfg := &Config{data: map[string]interface{}{}}
	if err := cfg.WatchWithOptions(context.Background(), WatchOptions{}); err == nil {
		t.Error("Watch without file path should fail")
	}
}

func TestReloadKeepsOldDataOnParseError(t *testing.T) {
	path := writeFile(t, "devconsole.toml", "[console]\nmax_log_lines = 200\n")
	cfg, err := load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if err := os.WriteFile(path, []byte("[console\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := cfg.reload(); err == nil {
		t.Error("reload of broken file should fail")
	}
	if got := cfg.GetInt("console.max_log_lines"); got != 200 {
		t.Errorf("data replaced after failed reload: %d", got)
	}
}
