// File: signature.go
// Title: Command Signature Rendering
// Description: Renders commands as one-line signatures and summaries for the
//              suggestion list. Highlighting is a plain-text marker; styling
//              is left to the presentation layer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package registry

import (
	"strings"

	"github.com/msto63/devconsole/foundation/console/coerce"
)

// Signature renders a command as "Name -type name -type name = default".
// The parameter at index highlight is wrapped in coerce.HighlightMarker;
// pass -1 for none.
func Signature(cmd *Command, highlight int) string {
	var b strings.Builder
	b.WriteString(cmd.Name)

	for i, p := range cmd.Params {
		part := p.Type.String() + " " + p.Name
		if p.Optional {
			part += " = " + defaultText(p)
		}
		if i == highlight {
			part = coerce.HighlightMarker + part + coerce.HighlightMarker
		}
		b.WriteString(" -")
		b.WriteString(part)
	}
	return b.String()
}

func defaultText(p Param) string {
	if p.Default == nil {
		return coerce.Null
	}
	return coerce.Format(p.Type, p.Default)
}

// Summary renders a command as "Name. summary"
func Summary(cmd *Command) string {
	if cmd.Summary == "" {
		return cmd.Name
	}
	return cmd.Name + ". " + cmd.Summary
}
