// Package command runs plug chains as cobra commands, with carapace completions.
package command

import (
	"os"

	comp "github.com/rsteube/carapace"
	"github.com/spf13/cobra"

	"github.com/reeflective/plug"
)

// OptFunc sets values in the generator options.
type OptFunc func(opt *opts)

type opts struct {
	short    string
	long     string
	actions  plug.Actions
	ctxOpts  []plug.OptFunc
	onResult func(ctx *plug.Context, err error)
}

// Short sets the one-line description of the command.
func Short(val string) OptFunc { return func(opt *opts) { opt.short = val } }

// Long sets the long description of the command.
func Long(val string) OptFunc { return func(opt *opts) { opt.long = val } }

// WithActions registers the dispatcher actions of the chain as completions
// for the first positional argument, along with the help command.
func WithActions(actions plug.Actions) OptFunc {
	return func(opt *opts) { opt.actions = actions }
}

// WithContext adds options to the context built for each run.
// The context output is always the cobra command output.
func WithContext(ctxOpts ...plug.OptFunc) OptFunc {
	return func(opt *opts) { opt.ctxOpts = append(opt.ctxOpts, ctxOpts...) }
}

// OnResult sets a function called with the context and the error
// of each run, once the chain has returned.
func OnResult(fn func(ctx *plug.Context, err error)) OptFunc {
	return func(opt *opts) { opt.onResult = fn }
}

// Generate returns a cobra command running the plugs as one chain.
// Cobra does not parse any flag: the chain receives the raw arguments.
// Each run builds a new context, since a context serves one invocation.
func Generate(use string, plugs []plug.Plug, optFuncs ...OptFunc) *cobra.Command {
	opt := opts{}
	for _, optFunc := range optFuncs {
		optFunc(&opt)
	}

	cmd := &cobra.Command{
		Use:                use,
		Short:              opt.short,
		Long:               opt.long,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		Annotations:        map[string]string{},
	}

	// The chain handles "help" itself: the cobra help command must not
	// shadow it once completions add a subcommand.
	cmd.SetHelpCommand(&cobra.Command{Use: "__help", Hidden: true})
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctxOpts := append([]plug.OptFunc{plug.WithOutput(cmd.OutOrStdout())}, opt.ctxOpts...)
		ctx := plug.NewContext(ctxOpts...)

		err := plug.New(ctx, plugs...)(args)

		if opt.onResult != nil {
			opt.onResult(ctx, err)
		}

		return err
	}

	if opt.actions != nil {
		names := append([]string{plug.HelpCommand}, opt.actions.Names()...)

		comps := comp.Gen(cmd)
		comps.PositionalCompletion(comp.ActionValues(names...))
	}

	return cmd
}

// Run executes the command with the process arguments, and returns
// the exit status: 0 on success, 1 on any error.
func Run(cmd *cobra.Command) int {
	cmd.SetArgs(os.Args[1:])

	if err := cmd.Execute(); err != nil {
		return 1
	}

	return 0
}
