/*
 * Copyright (c) 2021. Baidu Inc. All Rights Reserved.
 */

package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ErrUsage matches every error caused by a malformed command line.
var ErrUsage = errors.New("usage error")

var (
	// ErrInvalidArgumentCount error
	ErrInvalidArgumentCount error = usageError("invalid argument count")
	// ErrMissingCommand error
	ErrMissingCommand error = usageError("missing subcommand")
	// ErrUnknownCommand error
	ErrUnknownCommand error = usageError("unknown command")
	// ErrUnsupportedCommand error
	ErrUnsupportedCommand error = usageError("unsupported command")
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type usageError string

func (e usageError) Error() string {
	return string(e)
}

func (e usageError) Is(target error) bool {
	return target == ErrUsage
}

// ArgCountError reports a command that received the wrong number of
// positional arguments.
type ArgCountError struct {
	Command string
	Want    int
	Got     int
}

func (e *ArgCountError) Error() string {
	return fmt.Sprintf("%s: %s expects exactly %d argument(s), got %d",
		ErrInvalidArgumentCount, e.Command, e.Want, e.Got)
}

func (e *ArgCountError) Unwrap() error {
	return ErrInvalidArgumentCount
}

// ExitCode maps an error returned by Execute to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, ErrUsage):
		return exitUsage
	default:
		return exitError
	}
}

func checkArgCount(command string, want int, args []string) error {
	if len(args) != want {
		return &ArgCountError{Command: command, Want: want, Got: len(args)}
	}
	return nil
}

// exactArgs is cobra.ExactArgs reporting through ArgCountError.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return checkArgCount(cmd.Name(), n, args)
	}
}
