// File: root.go
// Title: devconsole Root Command
// Description: Root command, global flags, and the session setup shared by
//              the subcommands: logger, settings, console, and demo scene.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: Demo gravity and startup lines from the config file

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/devconsole/foundation/console"
	"github.com/msto63/devconsole/foundation/console/registry"
	mdwlog "github.com/msto63/devconsole/foundation/core/log"
	"github.com/msto63/devconsole/internal/demo"
	"github.com/msto63/devconsole/pkg/core/logging"
)

var (
	cfgFile string
	verbose bool
	logFile string
	mode    string
)

var rootCmd = &cobra.Command{
	Use:   "devconsole",
	Short: "devconsole - Eingebettete Entwicklerkonsole",
	Long: `devconsole ist eine interaktive Befehlskonsole für laufende Anwendungen.

Befehle werden als Zeile eingegeben:
  Befehl - arg1 - arg2

Die mitgelieferte Demo-Szene registriert Würfel, Variablen und Befehle,
an denen sich Autovervollständigung, Verlauf und Variablen ausprobieren
lassen.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (TOML oder YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log in diese Datei schreiben")
	rootCmd.PersistentFlags().StringVar(&mode, "mode", "", "Laufzeitmodus überschreiben (Editor, DevBuild, ProductionBuild)")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}

// session is a console with the demo scene registered
type session struct {
	console *console.Console
	scene   *demo.Scene
	logger  *mdwlog.Logger
	closer  io.Closer
}

func (s *session) Close() error {
	_ = s.logger.Sync()
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

// newSession builds the logger and console from the global flags. quiet
// suppresses logging to stderr, which the TUI draws on.
func newSession(quiet bool, sink console.Sink) (*session, error) {
	cfg := logging.DefaultLoggerConfig("devconsole")
	cfg.Format = "console"
	cfg.Quiet = quiet || !verbose
	if verbose {
		cfg.Level = "debug"
	}

	var closer io.Closer
	if logFile != "" {
		f, err := logging.OpenLogFile(logFile)
		if err != nil {
			return nil, err
		}
		cfg.Output, cfg.Format, cfg.Quiet = f, "json", false
		closer = f
	}
	logger := logging.NewLogger(cfg)

	settings := console.DefaultSettings()
	gravity := demo.DefaultGravity
	if cfgFile != "" {
		fileCfg, err := console.LoadSettingsConfig(cfgFile)
		if err != nil {
			return nil, err
		}
		if settings, err = console.SettingsFromConfig(fileCfg); err != nil {
			return nil, err
		}
		gravity = fileCfg.GetFloat("demo.gravity", demo.DefaultGravity)
	}
	if mode != "" {
		m, err := registry.ParseRuntimeMode(mode)
		if err != nil {
			return nil, err
		}
		settings.RuntimeMode = m
	}

	c, err := console.New(console.Options{
		Logger:         logger,
		Settings:       &settings,
		Sink:           sink,
		EnableAuditLog: verbose,
	})
	if err != nil {
		return nil, err
	}

	scene := demo.NewScene()
	scene.SetGravity(gravity)
	if err := demo.Register(c, scene); err != nil {
		return nil, err
	}
	return &session{console: c, scene: scene, logger: logger, closer: closer}, nil
}

// startup submits the console.startup lines of the settings. A failing
// line is reported in the console log and does not stop the others.
func (s *session) startup(ctx context.Context) {
	for _, line := range s.console.Settings().Startup {
		if result := s.console.Submit(ctx, line); result != nil && !result.OK() {
			s.logger.WarnWithErr("Startzeile fehlgeschlagen", result.Err, mdwlog.Fields{"line": line})
		}
	}
}
