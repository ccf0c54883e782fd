/*
 * Copyright (c) 2021. Baidu Inc. All Rights Reserved.
 */

package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// EthBalanceCommand eth balance cmd
type EthBalanceCommand struct {
	cli *Cli
	cmd *cobra.Command

	keyName string
}

// NewEthBalanceCommand new eth balance cmd
func NewEthBalanceCommand(cli *Cli) *cobra.Command {
	c := new(EthBalanceCommand)
	c.cli = cli
	c.cmd = &cobra.Command{
		Use:     "balance [key-name]",
		Short:   "Ethereum balance of a key: balance [key-name].",
		Example: c.example(),
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context(), args)
		},
	}
	return c.cmd
}

func (c *EthBalanceCommand) example() string {
	return `
gorc query eth balance $keyname
`
}

// run captures the key name; the balance lookup itself is not wired.
func (c *EthBalanceCommand) run(_ context.Context, free []string) error {
	if err := checkArgCount("balance", 1, free); err != nil {
		return err
	}
	c.keyName = free[0]
	c.cli.Logger().Debug("eth balance", zap.String("key", c.keyName))
	return nil
}
