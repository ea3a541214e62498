package plug

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.BoolP("dump", "d", false, "dump the context")
	flags.String("format", "text", "output format")
	flags.StringSlice("tag", nil, "tags to apply")

	return flags
}

func TestParseFlags(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	ctx, _ := newTestContext()

	args := []string{"config", "-d", "--tag", "a,b", "--unknown", "positional"}

	run := New(ctx, ParseFlags("test", newFlagSet()), rec.plug("next"))
	require.NoError(t, run(args))

	assert.Equal(t, []string{"true"}, ctx.Params("--dump"))
	assert.Equal(t, []string{"a", "b"}, ctx.Params("--tag"))
	assert.False(t, ctx.HasParam("--format"), "flags left to their default are not recorded")
	assert.Equal(t, []call{{name: "next", args: args}}, rec.calls)
}

func TestParseFlags_Invalid(t *testing.T) {
	t.Parallel()

	ctx, _ := newTestContext()

	err := New(ctx, ParseFlags("test", newFlagSet()))([]string{"config", "--format"})
	require.ErrorIs(t, err, ErrMissingParameter)
}

func TestParseFlags_Help(t *testing.T) {
	t.Parallel()

	ctx, out := newTestContext()
	ctx.SetHelp()

	require.NoError(t, New(ctx, ParseFlags("test", newFlagSet()))(nil))

	assert.Contains(t, out.String(), "- ParseFlags: test\n")
	assert.Contains(t, out.String(), "--format string")
	assert.Contains(t, out.String(), "dump the context")
}
