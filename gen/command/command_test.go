package command

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/reeflective/plug"
)

func echo(ctx *plug.Context, next plug.Handler) plug.Handler {
	return func(args []string) error {
		ctx.Printf("%s %v\n", ctx.Action(), args)
		return next(args)
	}
}

func newTestCommand(results *[]*plug.Context) (*bytes.Buffer, func(args ...string) error) {
	actions := plug.Actions{
		"version": echo,
		"search":  plug.Combine(plug.CollectParams("-q", 1, nil), echo),
	}

	chain := []plug.Plug{
		plug.HelpCheck,
		plug.SwitchAction(actions),
	}

	cmd := Generate("test", chain,
		Short("test command"),
		WithActions(actions),
		WithContext(plug.WithLogger(zap.NewNop()), plug.WithEnv(plug.MapEnv{})),
		OnResult(func(ctx *plug.Context, _ error) { *results = append(*results, ctx) }),
	)

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)

	return out, func(args ...string) error {
		cmd.SetArgs(args)
		return cmd.Execute()
	}
}

func TestGenerate_RawArgs(t *testing.T) {
	var results []*plug.Context
	out, execute := newTestCommand(&results)

	require.NoError(t, execute("search", "-q", "go"))

	assert.Equal(t, "search [search -q go]\n", out.String())
	require.Len(t, results, 1)
	assert.Equal(t, []string{"go"}, results[0].Params("-q"))
}

func TestGenerate_ContextPerRun(t *testing.T) {
	var results []*plug.Context
	_, execute := newTestCommand(&results)

	require.NoError(t, execute("version"))
	require.NoError(t, execute("search", "-q", "go"), "a new run must not see the previous action")

	require.Len(t, results, 2)
	assert.NotSame(t, results[0], results[1])
	assert.Equal(t, "search", results[1].Action().String())
}

func TestGenerate_Help(t *testing.T) {
	var results []*plug.Context
	out, execute := newTestCommand(&results)

	require.NoError(t, execute("help"))

	assert.Contains(t, out.String(), "command search\ncommand version\n")
	require.Len(t, results, 1)
	assert.True(t, results[0].IsHelp())
}

func TestGenerate_Error(t *testing.T) {
	var results []*plug.Context
	_, execute := newTestCommand(&results)

	err := execute("bogus")
	require.ErrorIs(t, err, plug.ErrConfiguration)

	err = execute("search")
	require.ErrorIs(t, err, plug.ErrMissingParameter)
}

func TestGenerate_Completions(t *testing.T) {
	actions := plug.Actions{"version": echo}

	withComps := Generate("test", []plug.Plug{plug.SwitchAction(actions)}, WithActions(actions))
	without := Generate("test", []plug.Plug{plug.SwitchAction(actions)})

	assert.True(t, withComps.HasSubCommands(), "completions are served by a hidden subcommand")
	assert.False(t, without.HasSubCommands())
}
