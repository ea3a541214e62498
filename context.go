package plug

import (
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Action is the sub-command name chosen by a dispatcher.
// The zero value is unset.
type Action struct {
	name string
	set  bool
}

// Name returns the action name, and whether one was committed.
func (a Action) Name() (string, bool) { return a.name, a.set }

// String returns the action name, or an empty string when unset.
func (a Action) String() string { return a.name }

// EnvValue is a snapshot of an environment variable.
// When Set is false the variable was undefined and had no default.
type EnvValue struct {
	Value string
	Set   bool
}

// payloadSlot holds at most one pending value.
type payloadSlot struct {
	value any
	full  bool
}

// Context is the state shared by all plugs of a chain during one invocation.
// It is created once, mutated in call order, and discarded when the chain
// returns. A Context is not safe for concurrent use, and must not be reused
// after a chain returned an error.
type Context struct {
	// ID identifies the invocation in log records.
	ID string

	help    bool
	verbose bool
	action  Action
	params  map[string][]string
	env     map[string]EnvValue
	payload payloadSlot

	out       io.Writer
	environ   Environ
	files     FileReader
	logger    *zap.Logger
	level     zap.AtomicLevel
	validator *validator.Validate
}

// NewContext returns a context ready to be bound to a chain.
func NewContext(optFuncs ...OptFunc) *Context {
	opt := defOpts().apply(optFuncs...)

	ctx := &Context{
		ID:        uuid.NewString(),
		params:    map[string][]string{},
		env:       map[string]EnvValue{},
		out:       opt.out,
		environ:   opt.env,
		files:     opt.files,
		level:     opt.level,
		validator: opt.validator,
	}

	logger := opt.logger
	if logger == nil {
		logger = newLogger(opt.level)
	}

	ctx.logger = logger.With(zap.String("invocation", ctx.ID))

	if ctx.validator == nil {
		ctx.validator = validator.New()
	}

	return ctx
}

func newLogger(level zap.AtomicLevel) *zap.Logger {
	config := zap.NewProductionConfig()
	config.Level = level
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}

	return logger
}

//
// Modes ----------------------------------------------------------------------------------
//

// IsHelp reports whether the chain runs in help mode.
func (c *Context) IsHelp() bool { return c.help }

// SetHelp switches the context to help mode. It cannot be undone.
func (c *Context) SetHelp() { c.help = true }

// IsVerbose reports whether debug logging is enabled.
func (c *Context) IsVerbose() bool { return c.verbose }

// SetVerbose enables debug logging. It cannot be undone.
func (c *Context) SetVerbose() {
	c.verbose = true
	c.level.SetLevel(zap.DebugLevel)
}

//
// Action ---------------------------------------------------------------------------------
//

// Action returns the committed sub-command, if any.
func (c *Context) Action() Action { return c.action }

// SetAction commits the sub-command name. It succeeds only once:
// any later call fails with ErrProtocolViolation, even with the same name.
func (c *Context) SetAction(name string) error {
	if current, set := c.action.Name(); set {
		return newErrorf(ErrProtocolViolation, "action already set to %q, cannot set %q", current, name)
	}

	c.action = Action{name: name, set: true}

	return nil
}

//
// Payload --------------------------------------------------------------------------------
//

// PutPayload hands a value to a later plug. It fails with
// ErrProtocolViolation if a value is already pending.
func (c *Context) PutPayload(val any) error {
	if c.payload.full {
		return newError(ErrProtocolViolation, "payload already pending")
	}

	c.payload = payloadSlot{value: val, full: true}

	return nil
}

// TakePayload returns the pending value and empties the slot. It fails
// with ErrProtocolViolation if nothing is pending.
func (c *Context) TakePayload() (any, error) {
	if !c.payload.full {
		return nil, newError(ErrProtocolViolation, "no payload pending")
	}

	val := c.payload.value
	c.payload = payloadSlot{}

	return val, nil
}

// HasPayload reports whether a value is pending.
func (c *Context) HasPayload() bool { return c.payload.full }

//
// Parameters -----------------------------------------------------------------------------
//

// AddParam appends values to the named parameter.
func (c *Context) AddParam(name string, values ...string) {
	c.params[name] = append(c.params[name], values...)
}

// SetParams replaces all values of the named parameter.
func (c *Context) SetParams(name string, values ...string) {
	c.params[name] = append([]string{}, values...)
}

// HasParam reports whether the parameter was ever recorded, even empty.
func (c *Context) HasParam(name string) bool {
	_, ok := c.params[name]

	return ok
}

// Param returns the first value recorded for name, or def.
func (c *Context) Param(name, def string) string {
	if values := c.params[name]; len(values) > 0 {
		return values[0]
	}

	return def
}

// Params returns all values recorded for name, in order.
// It returns an empty slice if the name was never recorded.
func (c *Context) Params(name string) []string {
	values, ok := c.params[name]
	if !ok {
		return []string{}
	}

	return append([]string{}, values...)
}

//
// Environment ----------------------------------------------------------------------------
//

// Env returns the recorded environment value, and whether it is defined.
func (c *Context) Env(name string) (string, bool) {
	val := c.env[name]

	return val.Value, val.Set
}

// SetEnv records an environment snapshot.
func (c *Context) SetEnv(name string, val EnvValue) { c.env[name] = val }

//
// Output & logging -----------------------------------------------------------------------
//

// Println writes a line of help text to the context output.
func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// Printf writes formatted help text to the context output.
func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Output returns the writer receiving help text.
func (c *Context) Output() io.Writer { return c.out }

// Logger returns the invocation logger.
func (c *Context) Logger() *zap.Logger { return c.logger }

// Log writes an informational record, regardless of verbose mode.
func (c *Context) Log(msg string, keysAndValues ...any) {
	c.logger.Sugar().Infow(msg, keysAndValues...)
}

// Debug writes a debug record only when verbose mode is on.
func (c *Context) Debug(msg string, keysAndValues ...any) {
	if !c.verbose {
		return
	}

	c.logger.Sugar().Debugw(msg, keysAndValues...)
}

//
// Snapshot -------------------------------------------------------------------------------
//

// Snapshot is an exported view of a context, suitable for serialization.
type Snapshot struct {
	ID         string              `json:"id"`
	Help       bool                `json:"help"`
	Verbose    bool                `json:"verbose"`
	Action     string              `json:"action,omitempty"`
	Params     map[string][]string `json:"params"`
	Env        map[string]*string  `json:"env"`
	HasPayload bool                `json:"hasPayload"`
}

// Snapshot returns a copy of the current context state.
func (c *Context) Snapshot() Snapshot {
	snap := Snapshot{
		ID:         c.ID,
		Help:       c.help,
		Verbose:    c.verbose,
		Action:     c.action.String(),
		Params:     make(map[string][]string, len(c.params)),
		Env:        make(map[string]*string, len(c.env)),
		HasPayload: c.payload.full,
	}

	for name, values := range c.params {
		snap.Params[name] = append([]string{}, values...)
	}

	for name, val := range c.env {
		if !val.Set {
			snap.Env[name] = nil
			continue
		}

		value := val.Value
		snap.Env[name] = &value
	}

	return snap
}
