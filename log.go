package plug

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/reeflective/plug/internal/scan"
)

// VerboseFlags are the tokens recognized by VerboseCheck.
var VerboseFlags = []string{"-v", "--verbose"}

// LogError logs any error coming back from the rest of the chain, then
// returns it unchanged, so that the program entry point can exit with a
// non-zero status. Put it first in a chain.
func LogError(ctx *Context, next Handler) Handler {
	return func(args []string) error {
		err := next(args)
		if err == nil {
			return nil
		}

		fields := []zap.Field{zap.Error(err)}

		var perr *Error
		if errors.As(err, &perr) {
			fields = append(fields, zap.Stringer("kind", perr.Kind))
		}

		if action, set := ctx.Action().Name(); set {
			fields = append(fields, zap.String("action", action))
		}

		ctx.Logger().Error("command failed", fields...)

		return err
	}
}

// LogContext writes the current context state as indented JSON
// to the context output, then passes down.
func LogContext(ctx *Context, next Handler) Handler {
	return func(args []string) error {
		data, err := json.MarshalIndent(ctx.Snapshot(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal context: %w", err)
		}

		ctx.Println(string(data))

		return next(args)
	}
}

// VerboseCheck removes every -v or --verbose token from the vector,
// enables verbose mode if it found any, and passes the rest down.
func VerboseCheck(ctx *Context, next Handler) Handler {
	return func(args []string) error {
		if ctx.IsHelp() {
			ctx.Printf("- VerboseCheck: %v enable debug logs.\n", VerboseFlags)
		}

		rest, found := scan.Remove(args, VerboseFlags...)
		if found > 0 {
			ctx.SetVerbose()
			ctx.Debug("verbose mode", "args", rest)
		}

		return next(rest)
	}
}
