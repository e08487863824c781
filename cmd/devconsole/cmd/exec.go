// File: exec.go
// Title: devconsole Exec Command
// Description: Runs console lines non-interactively, from arguments or a
//              script file, and prints the console output.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/devconsole/foundation/console"
	mdwerror "github.com/msto63/devconsole/foundation/core/error"
	mdwstringx "github.com/msto63/devconsole/foundation/utils/stringx"
)

var (
	scriptFile string
	failFast   bool
)

var execCmd = &cobra.Command{
	Use:   "exec [zeile...]",
	Short: "Führt Konsolenzeilen aus",
	Long: `Führt Konsolenzeilen nacheinander aus und gibt das Konsolen-Log aus.

Jedes Argument ist eine Zeile. Mit -f wird eine Skriptdatei gelesen, eine
Zeile pro Befehl; leere Zeilen und Zeilen mit # werden übersprungen.

Beispiel:
  devconsole exec "SpawnCube - alpha - 3" "Describe"`,
	RunE: runExec,
}

func init() {
	execCmd.Flags().StringVarP(&scriptFile, "file", "f", "", "Skriptdatei mit Konsolenzeilen")
	execCmd.Flags().BoolVar(&failFast, "fail-fast", false, "Beim ersten Fehler abbrechen")
	rootCmd.AddCommand(execCmd)
}

func runExec(cmd *cobra.Command, args []string) error {
	lines := args
	if scriptFile != "" {
		script, err := readScript(scriptFile)
		if err != nil {
			printError("Skript konnte nicht gelesen werden", err)
			return err
		}
		lines = append(lines, script...)
	}
	if len(lines) == 0 {
		return mdwerror.New("no console lines given").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmd.exec")
	}

	out := cmd.OutOrStdout()
	s, err := newSession(false, console.SinkFunc(func(l console.Line) {
		fmt.Fprintln(out, l.Text)
	}))
	if err != nil {
		printError("Sitzung konnte nicht erstellt werden", err)
		return err
	}
	defer s.Close()

	s.startup(cmd.Context())
	return execLines(cmd, s.console, lines)
}

func execLines(cmd *cobra.Command, c *console.Console, lines []string) error {
	failed := 0
	for _, line := range lines {
		result := c.Submit(cmd.Context(), line)
		if result == nil || result.OK() {
			continue
		}
		failed++
		if failFast {
			return result.Err
		}
	}
	if failed > 0 {
		return mdwerror.New(fmt.Sprintf("%d of %d lines failed", failed, len(lines))).
			WithCode(mdwerror.CodeCommandFailed).
			WithOperation("cmd.exec").
			WithDetail("failed", failed)
	}
	return nil
}

func readScript(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to open script").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("cmd.readScript").
			WithDetail("path", path)
	}
	defer f.Close()
	return parseScript(f)
}

func parseScript(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if mdwstringx.IsNotBlank(line) && !strings.HasPrefix(line, "#") {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, mdwerror.Wrap(err, "failed to read script").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmd.parseScript")
	}
	return lines, nil
}
