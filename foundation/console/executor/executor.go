// File: executor.go
// Title: Console Command Execution Engine
// Description: Dispatches one console input line: tokenizes it, resolves
//              the command, checks access and argument count, coerces the
//              arguments, fills defaults, selects the target instances by
//              call mode, and reports the return value. Every failure is
//              reported through the result; nothing is returned as a Go
//              error to the caller.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial executor implementation
// - 2026-10-16 v0.2.0: In-process console dispatcher
// - 2026-10-16 v0.2.1: Stream result lines through Options.Output

package executor

import (
	"context"
	"fmt"
	"math/rand/v2"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/msto63/devconsole/foundation/console/coerce"
	"github.com/msto63/devconsole/foundation/console/instance"
	"github.com/msto63/devconsole/foundation/console/lexer"
	"github.com/msto63/devconsole/foundation/console/registry"
	"github.com/msto63/devconsole/foundation/console/suggest"
	mdwerror "github.com/msto63/devconsole/foundation/core/error"
	mdwlog "github.com/msto63/devconsole/foundation/core/log"
)

// Level classifies an output line
type Level int

const (
	LevelPlain Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

// String returns the level name
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "plain"
	}
}

// Line is one line of console output
type Line struct {
	Level Level
	Text  string
}

// Result describes one dispatch. It is informational; a failed dispatch
// is reported through Err and Output.
type Result struct {
	RequestID string
	Command   string
	Calls     int
	Err       *mdwerror.Error
	Output    []Line
	Duration  time.Duration

	emit func(Line)
}

// OK reports whether the dispatch completed without error
func (r *Result) OK() bool {
	return r.Err == nil
}

func (r *Result) print(level Level, text string) {
	line := Line{Level: level, Text: text}
	r.Output = append(r.Output, line)
	if r.emit != nil {
		r.emit(line)
	}
}

// Options configures the engine
type Options struct {
	Logger         *mdwlog.Logger
	Registry       *registry.Registry
	Instances      *instance.Registry
	Coercer        *coerce.Coercer
	Mode           registry.RuntimeMode
	Rand           *rand.Rand // Source for RandomInstance; nil uses the global source
	EnableAuditLog bool

	// Output receives every result line as it is produced, before the
	// handler runs for the echo. Result.Output keeps the full record.
	Output func(Line)
}

// Engine executes console input lines
type Engine struct {
	registry  *registry.Registry
	instances *instance.Registry
	coercer   *coerce.Coercer
	logger    *mdwlog.Logger
	rng       *rand.Rand
	options   Options
	mode      registry.RuntimeMode
	mutex     sync.RWMutex
}

// New creates an execution engine
func New(opts Options) (*Engine, error) {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.Registry == nil || opts.Instances == nil {
		return nil, mdwerror.New("registry and instance registry are required").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("executor.New")
	}
	if opts.Coercer == nil {
		opts.Coercer = coerce.New()
	}

	engine := &Engine{
		registry:  opts.Registry,
		instances: opts.Instances,
		coercer:   opts.Coercer,
		logger:    opts.Logger.WithField("component", "console-executor"),
		rng:       opts.Rand,
		options:   opts,
		mode:      opts.Mode,
	}

	engine.logger.Debug("Console executor initialized", mdwlog.Fields{
		"mode":         opts.Mode.String(),
		"auditEnabled": opts.EnableAuditLog,
	})
	return engine, nil
}

// Mode returns the runtime mode access levels are checked against
func (e *Engine) Mode() registry.RuntimeMode {
	e.mutex.RLock()
	defer e.mutex.RUnlock()
	return e.mode
}

// SetMode changes the runtime mode
func (e *Engine) SetMode(mode registry.RuntimeMode) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.mode = mode
}

type requestIDKey struct{}

// WithRequestID returns a context carrying the request ID for Execute
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}

// Execute parses and dispatches one input line of the form
// "Name - arg1 - arg2". Handlers run on the calling goroutine; a handler
// panic is not recovered.
func (e *Engine) Execute(ctx context.Context, line string) *Result {
	start := time.Now()
	result := &Result{RequestID: requestID(ctx), emit: e.options.Output}
	logger := e.logger.WithField("requestID", result.RequestID)

	e.dispatch(logger, line, result)
	e.finish(logger, result, start)
	return result
}

// Run invokes cmd with the defaults of its parameters. It neither echoes
// nor checks access; callers such as the open and close hooks gate
// access themselves.
func (e *Engine) Run(ctx context.Context, cmd *registry.Command) *Result {
	start := time.Now()
	result := &Result{RequestID: requestID(ctx), Command: cmd.Name, emit: e.options.Output}
	logger := e.logger.WithField("requestID", result.RequestID)

	values, err := e.coerceArgs(cmd, nil)
	if err != nil {
		e.fail(result, mdwerror.Wrap(err, "Invalid default arguments").
			WithDetail("command", cmd.Name))
	} else {
		e.run(logger, cmd, values, result)
	}

	e.finish(logger, result, start)
	return result
}

func (e *Engine) finish(logger *mdwlog.Logger, result *Result, start time.Time) {
	result.Duration = time.Since(start)
	if result.Err != nil {
		logger.LogError(result.Err)
	}
	if e.options.EnableAuditLog {
		logger.Audit("Console command processed", mdwlog.Fields{
			"command":  result.Command,
			"calls":    result.Calls,
			"success":  result.OK(),
			"duration": result.Duration,
		})
	}
}

func (e *Engine) fail(result *Result, err *mdwerror.Error) {
	result.Err = err.WithOperation("executor.Execute")
	result.print(LevelError, err.Message())
}

func (e *Engine) dispatch(logger *mdwlog.Logger, line string, result *Result) {
	tokens := lexer.SplitArgs(line)
	name := tokens[0]
	args := tokens[1:]
	result.Command = name

	cmd, ok := e.registry.Lookup(name)
	if !ok {
		result.print(LevelPlain, line)
		msg := "Command '" + name + "' does not exist"
		if hint, found := suggest.DidYouMean(name, e.registry.Names()); found {
			msg += ". Did you mean '" + hint + "'?"
		}
		e.fail(result, mdwerror.New(msg).
			WithCode(mdwerror.CodeUnknownCommand).
			WithDetail("command", name))
		return
	}

	if mode := e.Mode(); !cmd.Access.AllowedIn(mode) {
		result.print(LevelPlain, line)
		e.fail(result, mdwerror.New("Command not accessible. Access Level is: "+cmd.Access.String()).
			WithCode(mdwerror.CodeAccessDenied).
			WithDetail("command", name).
			WithDetail("mode", mode.String()))
		return
	}

	if len(args) < cmd.MinArgs {
		result.print(LevelPlain, line)
		e.fail(result, mdwerror.New(fmt.Sprintf("Not enough arguments. Min: %d", cmd.MinArgs)).
			WithCode(mdwerror.CodeArgumentCountMismatch).
			WithDetail("command", name).
			WithDetail("given", len(args)))
		return
	}

	for _, arg := range args {
		if arg == "" {
			result.print(LevelPlain, line)
			e.fail(result, mdwerror.New("Empty arguments are not allowed").
				WithCode(mdwerror.CodeArgumentParseError).
				WithDetail("command", name))
			return
		}
	}

	result.print(LevelPlain, "> "+line)

	values, err := e.coerceArgs(cmd, args)
	if err != nil {
		e.fail(result, mdwerror.Wrap(err, "Wrong arg types or invalid input").
			WithDetail("command", name))
		result.print(LevelError, err.Error())
		return
	}

	e.run(logger, cmd, values, result)
}

// coerceArgs converts the argument tokens and fills defaults for the
// optional parameters that were not given. Extra tokens are ignored.
func (e *Engine) coerceArgs(cmd *registry.Command, args []string) ([]any, error) {
	values := make([]any, len(cmd.Params))
	for i, p := range cmd.Params {
		if i >= len(args) {
			values[i] = p.Default
			continue
		}
		v, err := e.coercer.Coerce(p.Type, args[i])
		if err != nil {
			return nil, err
		}
		values[i] = v
	}

	if e.logger.IsLevelEnabled(mdwlog.LevelTrace) {
		for i, p := range cmd.Params {
			e.logger.Trace("Argument coerced", mdwlog.Fields{
				"command": cmd.Name,
				"param":   p.Name,
				"type":    p.Type.String(),
				"value":   values[i],
				"given":   i < len(args),
			})
		}
	}
	return values, nil
}

// run resolves the targets of cmd and invokes it on each of them
func (e *Engine) run(logger *mdwlog.Logger, cmd *registry.Command, args []any, result *Result) {
	if cmd.Static {
		e.invoke(logger, cmd, nil, args, result)
		return
	}

	live := e.instances.Live(cmd.Owner)
	if len(live) == 0 {
		e.fail(result, mdwerror.New("Failed to run the command because there are no active class instances").
			WithCode(mdwerror.CodeNoLiveInstances).
			WithDetail("command", cmd.Name).
			WithDetail("owner", cmd.Owner))
		return
	}

	switch cmd.CallMode {
	case registry.SingleInstance:
		e.invoke(logger, cmd, live[0], args, result)
	case registry.RandomInstance:
		e.invoke(logger, cmd, live[e.intN(len(live))], args, result)
	default:
		for _, target := range live {
			e.invoke(logger, cmd, target, args, result)
		}
	}
}

func (e *Engine) intN(n int) int {
	if e.rng != nil {
		return e.rng.IntN(n)
	}
	return rand.IntN(n)
}

func (e *Engine) invoke(logger *mdwlog.Logger, cmd *registry.Command, target any, args []any, result *Result) {
	result.Calls++
	ret, err := cmd.Invoke(target, args)
	if err != nil {
		failure := mdwerror.Wrap(err, "Command '"+cmd.Name+"' failed").
			WithCode(mdwerror.CodeCommandFailed).
			WithDetail("command", cmd.Name)
		if result.Err == nil {
			e.fail(result, failure)
		}
		result.print(LevelError, err.Error())
		return
	}

	if cmd.Void || cmd.Returns == registry.NoLogReturn {
		return
	}
	if isNil(ret) {
		notice := mdwerror.New("null returned for type: '" + cmd.ReturnType + "'").
			WithCode(mdwerror.CodeNullReturned).
			WithOperation("executor.Execute").
			WithDetail("command", cmd.Name)
		logger.LogError(notice)
		result.print(LevelWarning, notice.Message())
		return
	}
	result.print(LevelPlain, fmt.Sprint(ret))
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
