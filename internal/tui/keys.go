// File: keys.go
// Title: Console TUI Key Bindings
// Description: Key bindings of the terminal console.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit   key.Binding
	Complete key.Binding
	Up       key.Binding
	Down     key.Binding
	Cancel   key.Binding
	Clear    key.Binding
	Toggle   key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Ausführen")),
		Complete: key.NewBinding(key.WithKeys("tab"), key.WithHelp("Tab", "Vervollständigen")),
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "Auswahl/Verlauf")),
		Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "Auswahl/Verlauf")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Auswahl aufheben")),
		Clear:    key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("Ctrl+L", "Leeren")),
		Toggle:   key.NewBinding(key.WithKeys("`", "f1"), key.WithHelp("`", "Öffnen/Schließen")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("Ctrl+C", "Beenden")),
	}
}

func (k keyMap) helpLine() string {
	var s string
	for i, b := range []key.Binding{k.Submit, k.Complete, k.Up, k.Toggle, k.Clear, k.Quit} {
		if i > 0 {
			s += " • "
		}
		s += b.Help().Key + ": " + b.Help().Desc
	}
	return s
}
