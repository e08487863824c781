// File: types.go
// Title: Command and Variable Descriptors
// Description: Defines the descriptors hosts register with the console:
//              commands with their typed parameters and invokers, variables
//              with their accessors, and the policies attached to commands.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial object and method definitions
// - 2026-10-16 v0.2.0: Console command and variable descriptors

package registry

import (
	"fmt"
	"strings"

	"github.com/msto63/devconsole/foundation/console/coerce"
	mdwerror "github.com/msto63/devconsole/foundation/core/error"
)

// AccessLevel is a bitset of runtime modes a command may run in
type AccessLevel int

const (
	EditorOnly          AccessLevel = 1
	ProductionBuildOnly AccessLevel = 2
	DevBuildOnly        AccessLevel = 4
	EditorAndDevBuild   AccessLevel = EditorOnly | DevBuildOnly
	AnyBuild            AccessLevel = ProductionBuildOnly | DevBuildOnly
	Everywhere          AccessLevel = EditorOnly | ProductionBuildOnly | DevBuildOnly
)

var accessLevelNames = []struct {
	level AccessLevel
	name  string
}{
	{EditorOnly, "EditorOnly"},
	{ProductionBuildOnly, "ProductionBuildOnly"},
	{DevBuildOnly, "DevBuildOnly"},
	{EditorAndDevBuild, "EditorAndDevBuild"},
	{AnyBuild, "AnyBuild"},
	{Everywhere, "Everywhere"},
}

// String returns the access level name
func (a AccessLevel) String() string {
	for _, n := range accessLevelNames {
		if n.level == a {
			return n.name
		}
	}
	return fmt.Sprintf("AccessLevel(%d)", int(a))
}

// ParseAccessLevel parses an access level name, case-insensitive
func ParseAccessLevel(s string) (AccessLevel, error) {
	for _, n := range accessLevelNames {
		if strings.EqualFold(n.name, s) {
			return n.level, nil
		}
	}
	return 0, mdwerror.New(fmt.Sprintf("unknown access level %q", s)).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("registry.ParseAccessLevel")
}

// RuntimeMode is the environment the host application runs in
type RuntimeMode int

const (
	Editor RuntimeMode = iota
	DevBuild
	ProductionBuild
)

// String returns the runtime mode name
func (m RuntimeMode) String() string {
	switch m {
	case Editor:
		return "Editor"
	case DevBuild:
		return "DevBuild"
	case ProductionBuild:
		return "ProductionBuild"
	default:
		return fmt.Sprintf("RuntimeMode(%d)", int(m))
	}
}

// ParseRuntimeMode parses a runtime mode name, case-insensitive
func ParseRuntimeMode(s string) (RuntimeMode, error) {
	for _, m := range []RuntimeMode{Editor, DevBuild, ProductionBuild} {
		if strings.EqualFold(m.String(), s) {
			return m, nil
		}
	}
	return 0, mdwerror.New(fmt.Sprintf("unknown runtime mode %q", s)).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("registry.ParseRuntimeMode")
}

func (m RuntimeMode) bit() AccessLevel {
	switch m {
	case Editor:
		return EditorOnly
	case ProductionBuild:
		return ProductionBuildOnly
	default:
		return DevBuildOnly
	}
}

// AllowedIn reports whether the level permits running in mode. The zero
// level is treated as Everywhere.
func (a AccessLevel) AllowedIn(mode RuntimeMode) bool {
	return a == 0 || a&mode.bit() != 0
}

// CallMode selects which live instances a command runs on
type CallMode int

const (
	AllInstances CallMode = iota
	SingleInstance
	RandomInstance
)

// String returns the call mode name
func (c CallMode) String() string {
	switch c {
	case AllInstances:
		return "AllInstances"
	case SingleInstance:
		return "SingleInstance"
	case RandomInstance:
		return "RandomInstance"
	default:
		return fmt.Sprintf("CallMode(%d)", int(c))
	}
}

// ReturnPolicy controls whether a command's result is logged
type ReturnPolicy int

const (
	LogReturn ReturnPolicy = iota
	NoLogReturn
)

// CommandType marks commands that run automatically when the console
// opens or closes
type CommandType int

const (
	Manual CommandType = iota
	OnOpen
	OnClose
	OnOpenOrClose
)

// String returns the command type name
func (t CommandType) String() string {
	switch t {
	case Manual:
		return "Manual"
	case OnOpen:
		return "OnOpen"
	case OnClose:
		return "OnClose"
	case OnOpenOrClose:
		return "OnOpenOrClose"
	default:
		return fmt.Sprintf("CommandType(%d)", int(t))
	}
}

// RunsOnOpen reports whether the command runs when the console opens
func (t CommandType) RunsOnOpen() bool {
	return t == OnOpen || t == OnOpenOrClose
}

// RunsOnClose reports whether the command runs when the console closes
func (t CommandType) RunsOnClose() bool {
	return t == OnClose || t == OnOpenOrClose
}

// Param describes one positional command parameter
type Param struct {
	Name        string
	Type        *coerce.Type
	Optional    bool
	Default     any
	Suggestions []string        // Static value suggestions
	Generator   func() []string // Computed value suggestions
}

// Invoker calls the bound operation. target is nil for static commands.
type Invoker func(target any, args []any) (any, error)

// Command describes a host operation callable from the console
type Command struct {
	Name       string
	Summary    string
	Access     AccessLevel
	Params     []Param
	MinArgs    int // Computed at registration
	Owner      string
	CallMode   CallMode
	Returns    ReturnPolicy
	Static     bool
	Type       CommandType
	Invoke     Invoker
	Void       bool
	ReturnType string
}

// Variable describes an observable field of a host type
type Variable struct {
	Owner string
	Name  string
	Type  *coerce.Type
	Get   func(target any) any
	Set   func(target any, value any) error // nil for read-only variables
}

// Ref returns the Owner.Name reference of the variable
func (v *Variable) Ref() string {
	return v.Owner + "." + v.Name
}
