package main

import (
	"fmt"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/exp/slices"

	"github.com/reeflective/plug"
)

// Config is the file read by the config command.
type Config struct {
	Name    string   `yaml:"name" validate:"required"`
	Format  string   `yaml:"format" validate:"omitempty,oneof=json yaml text"`
	Sources []string `yaml:"sources" validate:"dive,required"`
}

// run turns a function into the last plug of a sub-chain.
// It never runs in help mode.
func run(fn func(ctx *plug.Context, args []string) error) plug.Plug {
	return plug.Combine(plug.HelpSkip, func(ctx *plug.Context, next plug.Handler) plug.Handler {
		return func(args []string) error {
			if err := fn(ctx, args); err != nil {
				return err
			}

			return next(args)
		}
	})
}

func versionCommand() plug.Plug {
	return plug.Combine(
		plug.HelpDoc("version: print the build version."),
		run(func(ctx *plug.Context, _ []string) error {
			version := "(devel)"
			if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
				version = info.Main.Version
			}

			ctx.Println(version)

			return nil
		}),
	)
}

func searchCommand() plug.Plug {
	return plug.Combine(
		plug.HelpDoc("search: search sources for a query."),
		plug.CollectParams("-q", 1, nil),
		plug.Validate("-q", "max=64"),
		plug.CollectOptionalParams("--limit", 1, []string{"10"}, positive),
		plug.Ifp(
			func(_ *plug.Context, args []string) bool { return slices.Contains(args, "--exact") },
			run(func(ctx *plug.Context, _ []string) error {
				ctx.Printf("exact search for %q (limit %s)\n", ctx.Param("-q", ""), ctx.Param("--limit", ""))
				return nil
			}),
			run(func(ctx *plug.Context, _ []string) error {
				query := strings.ToLower(ctx.Param("-q", ""))
				ctx.Printf("fuzzy search for %q (limit %s)\n", query, ctx.Param("--limit", ""))

				return nil
			}),
		),
	)
}

func configCommand() plug.Plug {
	flags := pflag.NewFlagSet("config", pflag.ContinueOnError)
	flags.Bool("dump", false, "dump the context state")

	return plug.Combine(
		plug.HelpDoc("config: load and print a YAML configuration."),
		plug.ParseFlags("config", flags),
		plug.DecodeFileParam("-f", plug.YAML[Config]()),
		plug.Ifp(
			func(ctx *plug.Context, _ []string) bool { return ctx.Param("--dump", "false") == "true" },
			plug.LogContext,
			nil,
		),
		run(func(ctx *plug.Context, _ []string) error {
			payload, err := ctx.TakePayload()
			if err != nil {
				return err
			}

			cfg, ok := payload.(*Config)
			if !ok {
				return fmt.Errorf("unexpected configuration type %T", payload)
			}

			ctx.Printf("name: %s\nformat: %s\nsources: %s\n",
				cfg.Name, cfg.Format, strings.Join(cfg.Sources, ", "))

			return nil
		}),
	)
}

func envCommand() plug.Plug {
	return plug.Combine(
		plug.HelpDoc("env: print the environment used by the application."),
		plug.GetEnvOr("HOME"),
		plug.GetEnvOr("EXAMPLE_FORMAT", "text"),
		run(func(ctx *plug.Context, _ []string) error {
			for _, name := range []string{"HOME", "EXAMPLE_FORMAT"} {
				val, set := ctx.Env(name)
				if !set {
					val = "<undefined>"
				}

				ctx.Printf("%s=%s\n", name, val)
			}

			return nil
		}),
	)
}

// positive accepts only values that are integers greater than zero.
func positive(values []string) ([]string, error) {
	for _, val := range values {
		n, err := strconv.Atoi(val)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number: %w", val, err)
		}

		if n < 1 {
			return nil, fmt.Errorf("%d is lower than 1", n)
		}
	}

	return values, nil
}
