package plug

import (
	"github.com/fatih/color"
)

// HelpCommand is the first token switching a chain to help mode.
const HelpCommand = "help"

var heading = color.New(color.Bold, color.FgCyan)

// HelpCheck switches the context to help mode when the first argument is
// "help", and passes the remaining arguments down. Any other vector is
// passed down unchanged.
//
// In help mode, every plug prints what it would do instead of doing it.
func HelpCheck(ctx *Context, next Handler) Handler {
	return func(args []string) error {
		if len(args) > 0 && args[0] == HelpCommand {
			ctx.SetHelp()
			ctx.Debug("help mode", "args", args[1:])

			return next(args[1:])
		}

		return next(args)
	}
}

// HelpDoc prints its lines in help mode before passing down.
// In normal mode it passes down immediately.
func HelpDoc(lines ...string) Plug {
	return func(ctx *Context, next Handler) Handler {
		return func(args []string) error {
			if ctx.IsHelp() {
				for _, line := range lines {
					ctx.Println(line)
				}
			}

			return next(args)
		}
	}
}

// HelpSkip stops the chain in help mode. Put it in front of plugs
// with side effects, so that help traversal never reaches them.
func HelpSkip(ctx *Context, next Handler) Handler {
	return func(args []string) error {
		if ctx.IsHelp() {
			return nil
		}

		return next(args)
	}
}

// Test decides which branch of an Ifp plug runs.
type Test func(ctx *Context, args []string) bool

// Ifp runs the then plug when test passes, or the else plug otherwise.
// Both branches are bound to the same downstream handler, and a nil
// else plug passes straight down.
//
// In help mode, test is not evaluated: both branches run, separated
// by a blank line, so that help documents every path.
func Ifp(test Test, thenPlug, elsePlug Plug) Plug {
	return func(ctx *Context, next Handler) Handler {
		thenHandler := Chain(ctx, next, thenPlug)

		elseHandler := next
		if elsePlug != nil {
			elseHandler = Chain(ctx, next, elsePlug)
		}

		return func(args []string) error {
			if ctx.IsHelp() {
				if err := thenHandler(args); err != nil {
					return err
				}

				ctx.Println()

				return elseHandler(args)
			}

			if test(ctx, args) {
				return thenHandler(args)
			}

			return elseHandler(args)
		}
	}
}

// printHeading writes a colored section title to the context output.
func printHeading(ctx *Context, title string) {
	heading.Fprintln(ctx.Output(), title)
}
