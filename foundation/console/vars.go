// File: vars.go
// Title: Console Variables View
// Description: Renders the registered variables of all live instances,
//              grouped like the instance registry, and sets a variable on
//              every live instance of its class.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package console

import (
	"fmt"
	"strings"

	"github.com/msto63/devconsole/foundation/console/coerce"
	mdwerror "github.com/msto63/devconsole/foundation/core/error"
	"github.com/msto63/devconsole/foundation/core/log"
)

// VarsView cleans the instance registry and renders the current value of
// every variable of every live instance:
//
//	[Group:0]
//	  (Class:0)
//	    Var: value
func (c *Console) VarsView() []string {
	c.Clean()

	var lines []string
	for gi, g := range c.instances.Groups() {
		var body []string
		j := 0
		for _, class := range g.Classes {
			vars := c.commands.Variables(class.Class)
			if len(vars) == 0 {
				continue
			}
			targets := class.Objects
			if class.Static {
				targets = []any{nil}
			}
			for _, target := range targets {
				body = append(body, fmt.Sprintf("  (%s:%d)", class.Class, j))
				j++
				for _, v := range vars {
					body = append(body, fmt.Sprintf("    %s: %s", v.Name, coerce.Format(v.Type, v.Get(target))))
				}
			}
		}
		if len(body) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("[%s:%d]", g.Name, gi))
		lines = append(lines, body...)
	}
	return lines
}

// SetVarValue coerces value to the type of the variable referenced as
// Class.Var and sets it on every live instance of the class. Failures are
// written to the console log and returned.
func (c *Console) SetVarValue(varRef, value string) error {
	err := c.setVarValue(varRef, value)
	if err != nil {
		c.logger.LogError(err)
		c.Log(LevelError, err.Message())
		return err
	}
	return nil
}

func (c *Console) setVarValue(varRef, value string) *mdwerror.Error {
	const op = "console.SetVarValue"

	owner, name, ok := strings.Cut(varRef, ".")
	if !ok {
		return mdwerror.New("Variable reference must be Class.Var").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation(op).
			WithDetail("variable", varRef)
	}

	v, ok := c.commands.LookupVariable(owner, name)
	if !ok {
		return mdwerror.New("Variable not found").
			WithCode(mdwerror.CodeNotFound).
			WithOperation(op).
			WithDetail("variable", varRef)
	}
	if v.Set == nil {
		return mdwerror.New("Variable '" + varRef + "' is read-only").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation(op).
			WithDetail("variable", varRef)
	}

	parsed, err := c.coercer.Coerce(v.Type, value)
	if err != nil {
		return mdwerror.Wrap(err, "New variable value is invalid").
			WithOperation(op).
			WithDetail("variable", varRef)
	}

	targets := c.instances.Live(owner)
	if c.instances.IsStatic(owner) {
		targets = []any{nil}
	}
	if len(targets) == 0 {
		return mdwerror.New("No live class instances found").
			WithCode(mdwerror.CodeNoLiveInstances).
			WithOperation(op).
			WithDetail("variable", varRef)
	}

	for _, target := range targets {
		if err := v.Set(target, parsed); err != nil {
			return mdwerror.Wrap(err, "Failed to set variable '"+varRef+"'").
				WithCode(mdwerror.CodeCommandFailed).
				WithOperation(op).
				WithDetail("variable", varRef)
		}
	}

	c.logger.Debug("Variable set", log.Fields{
		"variable":  varRef,
		"instances": len(targets),
	})
	return nil
}
