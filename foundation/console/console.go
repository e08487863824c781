// File: console.go
// Title: Interactive Developer Console
// Description: The console ties the command registry, the instance
//              registry, the coercer, and the executor together behind one
//              object. Hosts register commands and variables, track live
//              objects, and drive the console with input lines; the console
//              keeps the output log and the input history.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial high-level engine
// - 2026-10-16 v0.2.0: Developer console facade

package console

import (
	"context"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"

	"github.com/msto63/devconsole/foundation/console/coerce"
	"github.com/msto63/devconsole/foundation/console/executor"
	"github.com/msto63/devconsole/foundation/console/instance"
	"github.com/msto63/devconsole/foundation/console/registry"
	"github.com/msto63/devconsole/foundation/console/state"
	"github.com/msto63/devconsole/foundation/core/log"
	mdwstringx "github.com/msto63/devconsole/foundation/utils/stringx"
)

// Owner selects the instance group of a tracked object
type Owner = instance.Owner

// OwnerOf derives an owner from the identity of obj
func OwnerOf[T any](obj *T, name string) Owner {
	return instance.OwnerOf(obj, name)
}

// Options configures a console
type Options struct {
	Logger          *log.Logger
	Settings        *Settings // nil uses DefaultSettings
	Sink            Sink
	Rand            *rand.Rand // Source for RandomInstance commands
	EnableAuditLog  bool
	DisableBuiltins bool
}

// Console is an embeddable command console. All methods are safe for
// concurrent use; commands run on the calling goroutine without the
// console lock held, so they may call back into the console.
type Console struct {
	id        string
	commands  *registry.Registry
	instances *instance.Registry
	coercer   *coerce.Coercer
	engine    *executor.Engine
	logger    *log.Logger

	mutex        sync.Mutex
	settings     Settings
	output       []Line
	sink         Sink
	history      []string
	historyIndex int
	open         bool
	input        *state.State
	suggestions  suggestionCache
}

// New creates a console
func New(opts Options) (*Console, error) {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}
	settings := DefaultSettings()
	if opts.Settings != nil {
		settings = opts.Settings.normalized()
	}

	id := uuid.NewString()
	logger := opts.Logger.WithName("console").WithFields(log.Fields{
		"component": "console",
		"sessionID": id,
	})

	commands := registry.New(registry.Options{Logger: logger})
	instances := instance.New(instance.Options{Logger: logger})
	coercer := coerce.New()

	c := &Console{
		id:        id,
		commands:  commands,
		instances: instances,
		coercer:   coercer,
		logger:    logger,
		settings:  settings,
		sink:      opts.Sink,
		input:     state.New(),
	}

	engine, err := executor.New(executor.Options{
		Logger:         logger,
		Registry:       commands,
		Instances:      instances,
		Coercer:        coercer,
		Mode:           settings.RuntimeMode,
		Rand:           opts.Rand,
		EnableAuditLog: opts.EnableAuditLog,
		Output: func(line Line) {
			c.emit(line)
		},
	})
	if err != nil {
		return nil, err
	}
	c.engine = engine

	if !opts.DisableBuiltins {
		c.registerBuiltins()
	}

	logger.Info("Console initialized", log.Fields{
		"mode":     settings.RuntimeMode.String(),
		"commands": len(commands.Commands()),
		"builtins": !opts.DisableBuiltins,
	})
	return c, nil
}

// ID returns the session ID of the console
func (c *Console) ID() string {
	return c.id
}

// Commands returns the command registry
func (c *Console) Commands() *registry.Registry {
	return c.commands
}

// RegisterCommand registers a command. Rejections are written to the
// console log and returned.
func (c *Console) RegisterCommand(cmd *registry.Command) error {
	if err := c.commands.RegisterCommand(cmd); err != nil {
		c.Log(LevelError, err.Error())
		return err
	}
	return nil
}

// RegisterVariable registers a variable. Rejections are written to the
// console log and returned.
func (c *Console) RegisterVariable(v *registry.Variable) error {
	if err := c.commands.RegisterVariable(v); err != nil {
		c.Log(LevelError, err.Error())
		return err
	}
	return nil
}

// Track adds obj to the live instances of className. The console holds
// obj weakly. It reports whether obj was added.
func Track[T any](c *Console, className string, obj *T, owner Owner) bool {
	_, added := instance.Add(c.instances, className, obj, owner)
	return added
}

// AddStaticType registers a class whose commands take no instance
func (c *Console) AddStaticType(className string) bool {
	return c.instances.AddStatic(className)
}

// Clean drops collected instances and returns how many were removed
func (c *Console) Clean() int {
	return c.instances.Clean()
}

// RegisterNamed makes value available by name for composite parameters of
// typeName
func (c *Console) RegisterNamed(typeName, name string, value any) error {
	if err := c.coercer.RegisterNamed(typeName, name, value); err != nil {
		c.Log(LevelError, err.Error())
		return err
	}
	c.invalidateSuggestions()
	return nil
}

// SetParameterSuggestions replaces the suggested values of a parameter
func (c *Console) SetParameterSuggestions(command, param string, values ...string) error {
	if err := c.commands.SetParameterSuggestions(command, param, values); err != nil {
		c.Log(LevelError, err.Error())
		return err
	}
	c.invalidateSuggestions()
	return nil
}

// SetParameterGenerator sets a function that computes suggested values
// for a parameter
func (c *Console) SetParameterGenerator(command, param string, fn func() []string) error {
	if err := c.commands.SetParameterGenerator(command, param, fn); err != nil {
		c.Log(LevelError, err.Error())
		return err
	}
	c.invalidateSuggestions()
	return nil
}

// SetTypeSuggestions sets values suggested for every parameter of typeName
func (c *Console) SetTypeSuggestions(typeName string, values ...string) {
	c.commands.SetTypeSuggestions(typeName, values)
	c.invalidateSuggestions()
}

// SetTypeGenerator sets a generator for every parameter of typeName
func (c *Console) SetTypeGenerator(typeName string, fn func() []string) {
	c.commands.SetTypeGenerator(typeName, fn)
	c.invalidateSuggestions()
}

// Submit records line in the history and dispatches it. Blank lines are
// ignored and return nil.
func (c *Console) Submit(ctx context.Context, line string) *executor.Result {
	if mdwstringx.IsBlank(line) {
		return nil
	}

	c.mutex.Lock()
	c.history = append(c.history, line)
	c.historyIndex = len(c.history)
	c.mutex.Unlock()

	return c.execute(ctx, line)
}

// RunCommand runs a command with raw argument text as it would be typed
// after the name, e.g. RunCommand(ctx, "SetSize", " - 5"). It is not
// recorded in the history.
func (c *Console) RunCommand(ctx context.Context, name, rawArgs string) *executor.Result {
	return c.execute(ctx, name+rawArgs)
}

func (c *Console) execute(ctx context.Context, line string) *executor.Result {
	return c.engine.Execute(ctx, line)
}

// IsOpen reports whether the console is open
func (c *Console) IsOpen() bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.open
}

// Open opens the console and runs the OnOpen and OnOpenOrClose commands.
// It does nothing if the console access level excludes the runtime mode
// or the console is already open.
func (c *Console) Open(ctx context.Context) bool {
	return c.toggle(ctx, true)
}

// Close closes the console and runs the OnClose and OnOpenOrClose
// commands.
func (c *Console) Close(ctx context.Context) bool {
	return c.toggle(ctx, false)
}

func (c *Console) toggle(ctx context.Context, open bool) bool {
	c.mutex.Lock()
	if !c.settings.AccessLevel.AllowedIn(c.settings.RuntimeMode) || c.open == open {
		c.mutex.Unlock()
		return false
	}
	c.open = open
	c.mutex.Unlock()

	c.logger.Debug("Console toggled", log.Fields{"open": open})

	var first, both []*registry.Command
	for _, cmd := range c.commands.Commands() {
		switch {
		case cmd.Type == registry.OnOpenOrClose:
			both = append(both, cmd)
		case open && cmd.Type == registry.OnOpen, !open && cmd.Type == registry.OnClose:
			first = append(first, cmd)
		}
	}
	for _, cmd := range append(first, both...) {
		c.engine.Run(ctx, cmd)
	}
	return true
}

// HistoryPrev returns the previous history entry
func (c *Console) HistoryPrev() (string, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if len(c.history) == 0 {
		return "", false
	}
	c.historyIndex = max(c.historyIndex-1, 0)
	return c.history[c.historyIndex], true
}

// HistoryNext returns the next history entry
func (c *Console) HistoryNext() (string, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if len(c.history) == 0 {
		return "", false
	}
	c.historyIndex = min(c.historyIndex+1, len(c.history)-1)
	return c.history[c.historyIndex], true
}

// History returns a copy of the input history
func (c *Console) History() []string {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return append([]string(nil), c.history...)
}
