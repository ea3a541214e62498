package plug

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		wantHelp bool
		wantArgs []string
	}{
		{name: "help first", args: []string{"help", "version"}, wantHelp: true, wantArgs: []string{"version"}},
		{name: "help alone", args: []string{"help"}, wantHelp: true, wantArgs: []string{}},
		{name: "help later", args: []string{"version", "help"}, wantArgs: []string{"version", "help"}},
		{name: "no args", args: []string{}, wantArgs: []string{}},
		{name: "flag help", args: []string{"--help"}, wantArgs: []string{"--help"}},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			rec := &recorder{}
			ctx, _ := newTestContext()

			run := New(ctx, HelpCheck, rec.plug("next"))
			require.NoError(t, run(test.args))

			assert.Equal(t, test.wantHelp, ctx.IsHelp())
			require.Len(t, rec.calls, 1)
			assert.Equal(t, test.wantArgs, rec.calls[0].args)
		})
	}
}

func TestHelpDoc(t *testing.T) {
	t.Parallel()

	t.Run("help mode", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		ctx, out := newTestContext()
		ctx.SetHelp()

		run := New(ctx, HelpDoc("first line", "second line"), rec.plug("next"))
		require.NoError(t, run([]string{"a"}))

		assert.Equal(t, "first line\nsecond line\n", out.String())
		assert.Equal(t, []string{"next"}, rec.names())
	})

	t.Run("normal mode", func(t *testing.T) {
		t.Parallel()

		rec := &recorder{}
		ctx, out := newTestContext()

		run := New(ctx, HelpDoc("first line"), rec.plug("next"))
		require.NoError(t, run([]string{"a"}))

		assert.Empty(t, out.String())
		assert.Equal(t, []call{{name: "next", args: []string{"a"}}}, rec.calls)
	})
}

func TestHelpSkip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		help bool
		want []string
	}{
		{name: "help mode", help: true, want: []string{"before"}},
		{name: "normal mode", help: false, want: []string{"before", "after"}},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			rec := &recorder{}
			ctx, _ := newTestContext()
			if test.help {
				ctx.SetHelp()
			}

			run := New(ctx, rec.plug("before"), HelpSkip, rec.plug("after"))
			require.NoError(t, run(nil))

			assert.Equal(t, test.want, rec.names())
		})
	}
}

func TestIfp(t *testing.T) {
	t.Parallel()

	isFirst := func(word string) Test {
		return func(_ *Context, args []string) bool {
			return len(args) > 0 && args[0] == word
		}
	}

	tests := []struct {
		name     string
		args     []string
		withElse bool
		want     []string
	}{
		{name: "then branch", args: []string{"yes"}, withElse: true, want: []string{"then", "next"}},
		{name: "else branch", args: []string{"no"}, withElse: true, want: []string{"else", "next"}},
		{name: "no else branch", args: []string{"no"}, want: []string{"next"}},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			rec := &recorder{}
			ctx, _ := newTestContext()

			var elsePlug Plug
			if test.withElse {
				elsePlug = rec.plug("else")
			}

			run := New(ctx, Ifp(isFirst("yes"), rec.plug("then"), elsePlug), rec.plug("next"))
			require.NoError(t, run(test.args))

			assert.Equal(t, test.want, rec.names())
		})
	}
}

func TestIfp_TestSeesContext(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	ctx, _ := newTestContext()

	verbose := func(ctx *Context, _ []string) bool { return ctx.IsVerbose() }

	run := New(ctx, VerboseCheck, Ifp(verbose, rec.plug("then"), rec.plug("else")))
	require.NoError(t, run([]string{"cmd", "-v"}))

	assert.Equal(t, []string{"then"}, rec.names())
}

func TestIfp_HelpMode(t *testing.T) {
	t.Parallel()

	for _, result := range []bool{true, false} {
		rec := &recorder{}
		ctx, out := newTestContext()

		called := false
		test := func(*Context, []string) bool {
			called = true
			return result
		}

		run := New(ctx,
			HelpCheck,
			Ifp(test, Combine(HelpDoc("then doc"), rec.plug("then")), Combine(HelpDoc("else doc"), rec.plug("else"))),
		)
		require.NoError(t, run([]string{"help"}))

		assert.False(t, called, "the test is not evaluated in help mode")
		assert.Equal(t, "then doc\n\nelse doc\n", out.String())
		assert.Equal(t, []string{"then", "else"}, rec.names())
	}
}
