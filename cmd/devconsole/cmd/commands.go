// File: commands.go
// Title: devconsole Commands Command
// Description: Lists the registered console commands as text, JSON or YAML.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/msto63/devconsole/foundation/console/registry"
	mdwerror "github.com/msto63/devconsole/foundation/core/error"
)

var outputFormat string

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "Listet alle registrierten Befehle",
	Long: `Listet alle registrierten Befehle mit Signatur, Zugriffsstufe und Typ.

Formate: text (Standard), json, yaml`,
	RunE: runCommands,
}

func init() {
	commandsCmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "Ausgabeformat (text, json, yaml)")
	rootCmd.AddCommand(commandsCmd)
}

// commandInfo is the exported view of a command
type commandInfo struct {
	Name      string `json:"name" yaml:"name"`
	Summary   string `json:"summary,omitempty" yaml:"summary,omitempty"`
	Signature string `json:"signature" yaml:"signature"`
	Owner     string `json:"owner,omitempty" yaml:"owner,omitempty"`
	Static    bool   `json:"static" yaml:"static"`
	Access    string `json:"access" yaml:"access"`
	Type      string `json:"type" yaml:"type"`
	CallMode  string `json:"callMode" yaml:"callMode"`
	MinArgs   int    `json:"minArgs" yaml:"minArgs"`
}

func describeCommands(cmds []*registry.Command) []commandInfo {
	infos := make([]commandInfo, len(cmds))
	for i, c := range cmds {
		access := c.Access
		if access == 0 {
			access = registry.Everywhere
		}
		infos[i] = commandInfo{
			Name:      c.Name,
			Summary:   c.Summary,
			Signature: registry.Signature(c, -1),
			Owner:     c.Owner,
			Static:    c.Static,
			Access:    access.String(),
			Type:      c.Type.String(),
			CallMode:  c.CallMode.String(),
			MinArgs:   c.MinArgs,
		}
	}
	return infos
}

func runCommands(cmd *cobra.Command, args []string) error {
	s, err := newSession(false, nil)
	if err != nil {
		printError("Sitzung konnte nicht erstellt werden", err)
		return err
	}
	defer s.Close()

	return writeCommands(cmd.OutOrStdout(), outputFormat, describeCommands(s.console.Commands().Commands()))
}

func writeCommands(w io.Writer, format string, infos []commandInfo) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(infos)
	case "text", "":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "BEFEHL\tZUGRIFF\tTYP\tSIGNATUR")
		for _, info := range infos {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", info.Name, info.Access, info.Type, info.Signature)
		}
		return tw.Flush()
	default:
		return mdwerror.New("unknown output format '" + format + "'").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmd.commands").
			WithDetail("format", format)
	}
}
