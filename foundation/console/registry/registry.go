// File: registry.go
// Title: Console Command Registry
// Description: Holds the commands and variables exposed to the console,
//              validates registrations, derives argument counts, and keeps
//              the user-supplied value suggestions for parameters and types.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial simplified registry implementation
// - 2026-10-16 v0.2.0: Command and variable registry for the console

package registry

import (
	"sort"
	"sync"

	"github.com/msto63/devconsole/foundation/console/lexer"
	mdwerror "github.com/msto63/devconsole/foundation/core/error"
	"github.com/msto63/devconsole/foundation/core/log"
	mdwstringx "github.com/msto63/devconsole/foundation/utils/stringx"
)

// Options configures a registry
type Options struct {
	Logger *log.Logger
}

// Registry stores command and variable descriptors. Entries are never
// removed once registered.
type Registry struct {
	commands       map[string]*Command
	variables      map[string][]*Variable
	typeValues     map[string][]string
	typeGenerators map[string]func() []string
	logger         *log.Logger
	mutex          sync.RWMutex
}

// New creates an empty registry
func New(opts Options) *Registry {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}

	return &Registry{
		commands:       make(map[string]*Command),
		variables:      make(map[string][]*Variable),
		typeValues:     make(map[string][]string),
		typeGenerators: make(map[string]func() []string),
		logger:         opts.Logger.WithField("component", "console-registry"),
	}
}

// RegisterCommand validates and stores a command. On a name clash the
// first registration is kept and an error is returned.
func (r *Registry) RegisterCommand(cmd *Command) error {
	if err := r.validateCommand(cmd); err != nil {
		r.logger.LogError(err)
		return err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if existing, exists := r.commands[cmd.Name]; exists {
		err := mdwerror.New("command '"+cmd.Name+"' is already registered").
			WithCode(mdwerror.CodeDuplicateRegistration).
			WithOperation("registry.RegisterCommand").
			WithDetail("command", cmd.Name).
			WithDetail("owner", cmd.Owner).
			WithDetail("existingOwner", existing.Owner)
		r.logger.LogError(err)
		return err
	}

	cmd.MinArgs = countRequired(cmd.Params)
	r.commands[cmd.Name] = cmd

	r.logger.Debug("Command registered", log.Fields{
		"command": cmd.Name,
		"owner":   cmd.Owner,
		"params":  len(cmd.Params),
		"minArgs": cmd.MinArgs,
		"static":  cmd.Static,
	})
	return nil
}

func (r *Registry) validateCommand(cmd *Command) error {
	const op = "registry.RegisterCommand"

	if cmd == nil {
		return mdwerror.New("command cannot be nil").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation(op)
	}
	if !lexer.IsIdentifier(cmd.Name) {
		return mdwerror.New("invalid command name '"+cmd.Name+"'").
			WithCode(mdwerror.CodeInvalidIdentifier).
			WithOperation(op).
			WithDetail("command", cmd.Name).
			WithDetail("owner", cmd.Owner)
	}
	if !cmd.Static && mdwstringx.IsBlank(cmd.Owner) {
		return mdwerror.New("instance command '"+cmd.Name+"' needs an owner type").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation(op).
			WithDetail("command", cmd.Name)
	}
	if cmd.Invoke == nil {
		return mdwerror.New("command '"+cmd.Name+"' has no invoker").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation(op).
			WithDetail("command", cmd.Name)
	}

	for i, p := range cmd.Params {
		if mdwstringx.IsBlank(p.Name) || p.Type == nil {
			return mdwerror.New("command '"+cmd.Name+"' has an incomplete parameter").
				WithCode(mdwerror.CodeValidationFailed).
				WithOperation(op).
				WithDetail("command", cmd.Name).
				WithDetail("index", i)
		}
	}

	if cmd.Type != Manual && countRequired(cmd.Params) > 0 {
		return mdwerror.New("automatic command '"+cmd.Name+"' cannot have required parameters").
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation(op).
			WithDetail("command", cmd.Name).
			WithDetail("type", cmd.Type.String())
	}
	return nil
}

func countRequired(params []Param) int {
	n := 0
	for _, p := range params {
		if !p.Optional {
			n++
		}
	}
	return n
}

// RegisterVariable validates and stores a variable. Names are unique per
// owner type.
func (r *Registry) RegisterVariable(v *Variable) error {
	const op = "registry.RegisterVariable"

	var err *mdwerror.Error
	switch {
	case v == nil:
		err = mdwerror.New("variable cannot be nil").
			WithCode(mdwerror.CodeValidationFailed)
	case !lexer.IsIdentifier(v.Owner) || !lexer.IsIdentifier(v.Name):
		err = mdwerror.New("invalid variable reference '"+v.Ref()+"'").
			WithCode(mdwerror.CodeInvalidIdentifier).
			WithDetail("variable", v.Ref())
	case v.Type == nil || v.Get == nil:
		err = mdwerror.New("variable '"+v.Ref()+"' needs a type and a getter").
			WithCode(mdwerror.CodeValidationFailed).
			WithDetail("variable", v.Ref())
	}
	if err != nil {
		err = err.WithOperation(op)
		r.logger.LogError(err)
		return err
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, existing := range r.variables[v.Owner] {
		if existing.Name == v.Name {
			err := mdwerror.New("variable '"+v.Ref()+"' is already registered").
				WithCode(mdwerror.CodeDuplicateRegistration).
				WithOperation(op).
				WithDetail("variable", v.Ref())
			r.logger.LogError(err)
			return err
		}
	}
	r.variables[v.Owner] = append(r.variables[v.Owner], v)

	r.logger.Debug("Variable registered", log.Fields{
		"variable": v.Ref(),
		"type":     v.Type.String(),
		"writable": v.Set != nil,
	})
	return nil
}

// Lookup returns the command registered under name
func (r *Registry) Lookup(name string) (*Command, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Commands returns all commands sorted by name
func (r *Registry) Commands() []*Command {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	cmds := make([]*Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Name < cmds[j].Name
	})
	return cmds
}

// Names returns all command names sorted
func (r *Registry) Names() []string {
	cmds := r.Commands()
	names := make([]string, len(cmds))
	for i, cmd := range cmds {
		names[i] = cmd.Name
	}
	return names
}

// Variables returns the variables of an owner type in registration order
func (r *Registry) Variables(owner string) []*Variable {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	return append([]*Variable(nil), r.variables[owner]...)
}

// VariableRefs returns the Owner.Name references of all variables, sorted
func (r *Registry) VariableRefs() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var refs []string
	for _, vars := range r.variables {
		for _, v := range vars {
			refs = append(refs, v.Ref())
		}
	}
	sort.Strings(refs)
	return refs
}

// LookupVariable resolves an Owner.Name reference
func (r *Registry) LookupVariable(owner, name string) (*Variable, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	for _, v := range r.variables[owner] {
		if v.Name == name {
			return v, true
		}
	}
	return nil, false
}

// SetParameterSuggestions replaces the static suggestions of a parameter
func (r *Registry) SetParameterSuggestions(command, param string, values []string) error {
	return r.updateParam("registry.SetParameterSuggestions", command, param, func(p *Param) {
		p.Suggestions = append([]string(nil), values...)
	})
}

// SetParameterGenerator replaces the suggestion generator of a parameter
func (r *Registry) SetParameterGenerator(command, param string, fn func() []string) error {
	return r.updateParam("registry.SetParameterGenerator", command, param, func(p *Param) {
		p.Generator = fn
	})
}

func (r *Registry) updateParam(op, command, param string, update func(*Param)) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	cmd, ok := r.commands[command]
	if !ok {
		return mdwerror.New("command '"+command+"' does not exist").
			WithCode(mdwerror.CodeUnknownCommand).
			WithOperation(op).
			WithDetail("command", command)
	}
	for i := range cmd.Params {
		if cmd.Params[i].Name == param {
			update(&cmd.Params[i])
			return nil
		}
	}
	return mdwerror.New("command '"+command+"' has no parameter '"+param+"'").
		WithCode(mdwerror.CodeNotFound).
		WithOperation(op).
		WithDetail("command", command).
		WithDetail("param", param)
}

// SetTypeSuggestions sets the values suggested for every parameter of the
// named type
func (r *Registry) SetTypeSuggestions(typeName string, values []string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.typeValues[typeName] = append([]string(nil), values...)
}

// SetTypeGenerator sets a suggestion generator for every parameter of the
// named type
func (r *Registry) SetTypeGenerator(typeName string, fn func() []string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if fn == nil {
		delete(r.typeGenerators, typeName)
		return
	}
	r.typeGenerators[typeName] = fn
}

// ParamSuggestions returns the user-supplied suggestions for a parameter:
// its own static values and generator output, then those of its type.
// Generators run without the registry lock held.
func (r *Registry) ParamSuggestions(cmd *Command, index int) []string {
	if cmd == nil || index < 0 || index >= len(cmd.Params) {
		return nil
	}

	r.mutex.RLock()
	p := cmd.Params[index]
	typeName := p.Type.Name
	typeValues := r.typeValues[typeName]
	typeGen := r.typeGenerators[typeName]
	r.mutex.RUnlock()

	var values []string
	values = append(values, p.Suggestions...)
	if p.Generator != nil {
		values = append(values, p.Generator()...)
	}
	values = append(values, typeValues...)
	if typeGen != nil {
		values = append(values, typeGen()...)
	}
	return values
}
