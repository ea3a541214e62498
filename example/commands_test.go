package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/reeflective/plug"
)

func TestSearchCommand_Limit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{name: "default", args: []string{"search", "-q", "Go"}, want: "fuzzy search for \"go\" (limit 10)\n"},
		{name: "given", args: []string{"search", "-q", "Go", "--limit", "3", "--exact"}, want: "exact search for \"Go\" (limit 3)\n"},
		{name: "zero", args: []string{"search", "-q", "Go", "--limit", "0"}, wantErr: true},
		{name: "negative", args: []string{"search", "-q", "Go", "--limit", "-1"}, wantErr: true},
		{name: "not a number", args: []string{"search", "-q", "Go", "--limit", "ten"}, wantErr: true},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			out := &bytes.Buffer{}
			ctx := plug.NewContext(plug.WithOutput(out), plug.WithLogger(zap.NewNop()))

			err := plug.New(ctx, searchCommand())(test.args)

			if test.wantErr {
				require.ErrorIs(t, err, plug.ErrMissingParameter)
				assert.Empty(t, out.String())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.want, out.String())
		})
	}
}

func TestPositive(t *testing.T) {
	t.Parallel()

	values, err := positive([]string{"1", "42"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "42"}, values)

	_, err = positive([]string{"0"})
	require.Error(t, err)
}
