package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// EthContractCommand eth contract cmd
type EthContractCommand struct {
	cli *Cli
	cmd *cobra.Command
}

// NewEthContractCommand new eth contract cmd
func NewEthContractCommand(cli *Cli) *cobra.Command {
	c := new(EthContractCommand)
	c.cli = cli
	c.cmd = &cobra.Command{
		Use:   "contract [args...]",
		Short: "Ethereum contract queries (no handler available).",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context(), args)
		},
	}
	return c.cmd
}

func (c *EthContractCommand) run(_ context.Context, free []string) error {
	c.cli.Logger().Debug("eth contract", zap.Strings("args", free))
	return fmt.Errorf("%w: %q has no handler", ErrUnsupportedCommand, c.cmd.CommandPath())
}
