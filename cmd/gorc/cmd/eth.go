package cmd

import (
	"github.com/spf13/cobra"
)

// NewEthCommand new eth cmd. It only dispatches: invoked without a
// subcommand, or with an unknown one, it fails with a usage error.
func NewEthCommand(cli *Cli) *cobra.Command {
	cmd := newGroupCommand("eth", "Ethereum subcommands: balance|contract.")
	cmd.AddCommand(NewEthBalanceCommand(cli))
	cmd.AddCommand(NewEthContractCommand(cli))
	return cmd
}
