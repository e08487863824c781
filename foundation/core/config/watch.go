// File: watch.go
// Title: Configuration File Watching Implementation
// Description: Implements file system watching for configuration files with
//              fsnotify. Bursts of write events are debounced into a single
//              reload, after which all change handlers are notified.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file watching
// - 2026-10-16 v0.2.0: fsnotify based watcher with debounce and explicit stop

package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	mdwerror "github.com/msto63/devconsole/foundation/core/error"
	mdwstringx "github.com/msto63/devconsole/foundation/utils/stringx"
)

// DefaultDebounce is the quiet period after the last file event before a
// reload happens. Editors often emit several writes per save.
const DefaultDebounce = 200 * time.Millisecond

type watchState struct {
	watcher  *fsnotify.Watcher
	cancel   context.CancelFunc
	done     chan struct{}
	debounce time.Duration
	errors   func(error)
}

// WatchOptions tunes the file watcher.
type WatchOptions struct {
	Debounce time.Duration // Default: DefaultDebounce
	OnError  func(error)   // Called for reload and watcher errors; may be nil
}

// WatchWithOptions starts monitoring the configuration file. The watcher
// runs until ctx is cancelled or StopWatching is called. The parent
// directory is watched so that atomic rename-on-save is detected.
func (c *Config) WatchWithOptions(ctx context.Context, opts WatchOptions) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if mdwstringx.IsBlank(c.filePath) {
		return mdwerror.New("file path required for watching").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation("config.Watch")
	}
	if c.watch != nil {
		select {
		case <-c.watch.done:
		default:
			return nil
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return mdwerror.Wrap(err, "failed to create file watcher").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Watch")
	}
	if err := watcher.Add(filepath.Dir(c.filePath)); err != nil {
		watcher.Close()
		return mdwerror.Wrap(err, "failed to watch config directory").
			WithCode(mdwerror.CodeConfigError).
			WithOperation("config.Watch").
			WithDetail("filePath", c.filePath)
	}

	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}

	ctx, cancel := context.WithCancel(ctx)
	c.watch = &watchState{
		watcher:  watcher,
		cancel:   cancel,
		done:     make(chan struct{}),
		debounce: opts.Debounce,
		errors:   opts.OnError,
	}

	go c.run(ctx, c.watch)
	return nil
}

func (c *Config) run(ctx context.Context, ws *watchState) {
	defer close(ws.done)
	defer ws.watcher.Close()

	target := filepath.Clean(c.FilePath())

	timer := time.NewTimer(ws.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-ws.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			timer.Reset(ws.debounce)

		case err, ok := <-ws.watcher.Errors:
			if !ok {
				return
			}
			ws.report(err)

		case <-timer.C:
			if err := c.reload(); err != nil {
				ws.report(err)
			}
		}
	}
}

func (ws *watchState) report(err error) {
	if ws.errors != nil {
		ws.errors(err)
	}
}

// reload reloads the configuration from the file and notifies handlers
func (c *Config) reload() error {
	c.mu.RLock()
	filePath, format, defaults := c.filePath, c.format, c.defaults
	c.mu.RUnlock()

	newData, err := readFile(filePath, format)
	if err != nil {
		return mdwerror.Wrap(err, "failed to reload config file").
			WithOperation("config.reload")
	}

	c.mu.Lock()
	oldConfig := c.snapshot()
	c.data = mergeDefaults(newData, defaults)
	newConfig := c.snapshot()
	handlers := append([]ChangeHandler(nil), c.handlers...)
	c.mu.Unlock()

	for _, handler := range handlers {
		if handler != nil {
			handler(oldConfig, newConfig)
		}
	}

	return nil
}

// StopWatching stops file monitoring and waits for the watcher to exit
func (c *Config) StopWatching() {
	c.mu.Lock()
	ws := c.watch
	c.watch = nil
	c.mu.Unlock()

	if ws == nil {
		return
	}
	ws.cancel()
	<-ws.done
}
