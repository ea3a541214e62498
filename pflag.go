package plug

import (
	"github.com/spf13/pflag"
)

// ParseFlags parses the vector against a pflag flag set. Each flag set
// on the command line is recorded as a "--<name>" parameter holding its
// value. Unknown flags and positional words are ignored, and the vector
// is passed down unchanged. In help mode, it prints name and the flag usages.
//
// The flag set is parsed once per invocation: use a new one per context.
func ParseFlags(name string, flags *pflag.FlagSet) Plug {
	return func(ctx *Context, next Handler) Handler {
		return func(args []string) error {
			if ctx.IsHelp() {
				ctx.Printf("- ParseFlags: %s\n", name)
				ctx.Printf("%s", flags.FlagUsages())

				return next(args)
			}

			flags.ParseErrorsWhitelist.UnknownFlags = true
			flags.SetOutput(ctx.Output())

			if err := flags.Parse(args); err != nil {
				return wrapErrorf(ErrMissingParameter, err, "invalid flags")
			}

			flags.Visit(func(flag *pflag.Flag) {
				ctx.AddParam("--"+flag.Name, flagValues(flag)...)
			})

			return next(args)
		}
	}
}

// flagValues returns the values of a flag, one per element for slices.
func flagValues(flag *pflag.Flag) []string {
	if slice, ok := flag.Value.(pflag.SliceValue); ok {
		return slice.GetSlice()
	}

	return []string{flag.Value.String()}
}
