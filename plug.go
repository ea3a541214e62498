// Package plug builds command-line programs out of composable middleware.
//
// A Plug is a single step over the argument vector: given the next handler
// of the chain, it returns a new handler. Plugs are composed right-to-left
// into one Handler, and all share one *Context for the whole invocation:
//
//	ctx := plug.NewContext()
//	run := plug.New(ctx,
//		plug.LogError,
//		plug.HelpCheck,
//		plug.SwitchAction(plug.Actions{
//			"version": versionPlug,
//			"search":  plug.Combine(plug.CollectParams("-q", 1, nil), searchPlug),
//		}),
//	)
//	err := run(os.Args[1:])
//
// Each plug may consume a prefix of the vector before passing the remainder
// down, stop the chain by returning without calling the next handler, or
// fail by returning an error, which travels back up unmodified.
package plug

// Handler consumes an argument vector.
type Handler func(args []string) error

// Plug wraps the next handler of a chain into a new handler,
// bound to the context shared by the whole chain.
type Plug func(ctx *Context, next Handler) Handler

// Noop is the terminal handler of every chain built by New.
func Noop([]string) error { return nil }

// New composes plugs into a single handler bound to ctx. The first plug
// runs first, and decides whether and when the rest of the chain runs.
// No argument is inspected until the returned handler is called.
//
// New panics if a plug is nil or returns a nil handler.
func New(ctx *Context, plugs ...Plug) Handler {
	return Chain(ctx, Noop, plugs...)
}

// Chain composes plugs over an explicit downstream handler.
func Chain(ctx *Context, next Handler, plugs ...Plug) Handler {
	handler := next

	for i := len(plugs) - 1; i >= 0; i-- {
		if plugs[i] == nil {
			panic(newErrorf(ErrConfiguration, "plug %d of %d is nil", i, len(plugs)))
		}

		handler = plugs[i](ctx, handler)
		if handler == nil {
			panic(newErrorf(ErrConfiguration, "plug %d of %d returned no handler", i, len(plugs)))
		}
	}

	return handler
}

// Combine composes several plugs into one. Combining no plug
// yields a plug passing the vector straight down.
func Combine(plugs ...Plug) Plug {
	return func(ctx *Context, next Handler) Handler {
		return Chain(ctx, next, plugs...)
	}
}
