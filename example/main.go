package main

import (
	"os"

	"github.com/reeflective/plug"
	"github.com/reeflective/plug/gen/command"
)

//
// This file contains the root chain, in which we integrate all example sub-commands.
//

func main() {
	actions := plug.Actions{
		"version": versionCommand(),
		"search":  searchCommand(),
		"config":  configCommand(),
		"env":     envCommand(),
	}

	chain := []plug.Plug{
		plug.LogError,
		plug.VerboseCheck,
		plug.HelpCheck,
		plug.HelpDoc(
			"A CLI application showing how to chain plugs.",
			"Usage: example [help] [-v] <command> [params]",
			"",
		),
		plug.SwitchAction(actions),
	}

	rootCmd := command.Generate("example", chain,
		command.Short("A CLI application showing how to chain plugs."),
		command.WithActions(actions),
	)

	os.Exit(command.Run(rootCmd))
}
