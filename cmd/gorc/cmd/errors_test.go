package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: exitOK},
		{name: "argument count", err: &ArgCountError{Command: "balance", Want: 1, Got: 0}, want: exitUsage},
		{name: "wrapped unsupported", err: fmt.Errorf("run: %w", ErrUnsupportedCommand), want: exitUsage},
		{name: "missing", err: ErrMissingCommand, want: exitUsage},
		{name: "unknown", err: ErrUnknownCommand, want: exitUsage},
		{name: "other", err: errors.New("load config: permission denied"), want: exitError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestArgCountError(t *testing.T) {
	require := require.New(t)

	err := checkArgCount("balance", 1, []string{"a", "b"})
	require.EqualError(err, "invalid argument count: balance expects exactly 1 argument(s), got 2")
	require.ErrorIs(err, ErrInvalidArgumentCount)
	require.ErrorIs(err, ErrUsage)
	require.NotErrorIs(err, ErrUnknownCommand)

	require.NoError(checkArgCount("balance", 1, []string{"a"}))
}
