package plug

import (
	"golang.org/x/exp/slices"
)

// DefaultAction is the reserved key of the plug run by SwitchAction
// when the first argument matches no other name.
const DefaultAction = "_default_"

// Actions maps sub-command names to the plug handling each of them.
// Use Combine to register a whole sub-chain under one name.
type Actions map[string]Plug

// Names returns the registered sub-command names, sorted,
// without the default action.
func (a Actions) Names() []string {
	names := make([]string, 0, len(a))

	for name := range a {
		if name == DefaultAction {
			continue
		}

		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// SwitchAction dispatches on the first argument, used as a sub-command name.
//
// All branches are bound eagerly to the same downstream handler. When a
// branch matches, its name is committed with Context.SetAction and the
// branch runs with the full vector: it receives its own name as args[0].
// With no match, the DefaultAction plug runs if registered; otherwise
// the dispatch fails with ErrConfiguration.
//
// In help mode with nothing left to dispatch on, SwitchAction only
// lists the sub-command names.
func SwitchAction(actions Actions) Plug {
	return func(ctx *Context, next Handler) Handler {
		handlers := make(map[string]Handler, len(actions))
		for name, action := range actions {
			if action == nil {
				continue
			}

			handlers[name] = Chain(ctx, next, action)
		}

		names := make([]string, 0, len(handlers))
		for name := range handlers {
			names = append(names, name)
		}

		slices.Sort(names)

		return func(args []string) error {
			if ctx.IsHelp() && len(args) == 0 {
				printHeading(ctx, "Switch Sub Commands:")

				for _, name := range names {
					ctx.Println("command", name)
				}

				return nil
			}

			actionName := DefaultAction
			if len(args) > 0 {
				if _, found := handlers[args[0]]; found {
					actionName = args[0]
				}
			}

			handler, found := handlers[actionName]
			if !found {
				return unknownAction(args, actions.Names())
			}

			if err := ctx.SetAction(actionName); err != nil {
				return err
			}

			ctx.Debug("dispatch", "action", actionName, "args", args)

			return handler(args)
		}
	}
}

func unknownAction(args []string, names []string) error {
	if len(args) == 0 {
		return newError(ErrConfiguration, "no sub-command given, and no default action")
	}

	if closest, ok := suggest(args[0], names); ok {
		return newErrorf(ErrConfiguration,
			"no sub-command handler for %q and no default, did you mean %q?", args[0], closest)
	}

	return newErrorf(ErrConfiguration, "no sub-command handler for %q and no default", args[0])
}
