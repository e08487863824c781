// File: run.go
// Title: devconsole Run Command
// Description: Starts the interactive terminal console on the demo scene.
//              With --config the settings file is watched and reloaded.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package cmd

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/msto63/devconsole/foundation/console"
	"github.com/msto63/devconsole/internal/tui"
)

var openOnStart bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Startet die interaktive Konsole",
	Long: `Startet die Terminal-Konsole auf der Demo-Szene.

Navigation:
  Enter     - Befehl ausführen oder Vorschlag übernehmen
  Tab       - Vorschlag übernehmen
  ↑/↓       - Vorschläge oder Verlauf durchblättern
  Esc       - Auswahl aufheben
  ` + "`" + `         - Konsole öffnen/schließen
  Ctrl+L    - Log leeren
  Ctrl+C    - Beenden

Mit --config wird die Konfigurationsdatei überwacht; Änderungen werden
ohne Neustart übernommen.`,
	RunE: runTUI,
}

func init() {
	runCmd.Flags().BoolVar(&openOnStart, "open", true, "Konsole beim Start öffnen")
	rootCmd.AddCommand(runCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	s, err := newSession(true, nil)
	if err != nil {
		printError("Sitzung konnte nicht erstellt werden", err)
		return err
	}
	defer s.Close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if cfgFile != "" {
		cfg, err := console.WatchSettings(ctx, cfgFile, s.console)
		if err != nil {
			printError("Konfiguration konnte nicht überwacht werden", err)
			return err
		}
		defer cfg.StopWatching()
	}

	if openOnStart {
		s.console.Open(ctx)
	}
	s.startup(ctx)

	p := tea.NewProgram(tui.NewModel(ctx, s.console), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		s.logger.ErrorWithErr("TUI beendet mit Fehler", err)
		printError("TUI Fehler", err)
		return err
	}
	return nil
}
