/*
 * Copyright (c) 2021. Baidu Inc. All Rights Reserved.
 */

package cmd

import (
	"github.com/spf13/cobra"
)

// NewQueryCommand new query cmd
func NewQueryCommand(cli *Cli) *cobra.Command {
	cmd := newGroupCommand("query", "Query chain state: eth.")
	cmd.AddCommand(NewEthCommand(cli))
	return cmd
}

func init() {
	AddCommand(NewQueryCommand)
}
