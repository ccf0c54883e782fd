package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

// NewConfigCommand new config cmd
func NewConfigCommand(cli *Cli) *cobra.Command {
	cmd := newGroupCommand("config", "Inspect client configuration: show.")
	cmd.AddCommand(NewConfigShowCommand(cli))
	return cmd
}

// ConfigShowCommand prints the effective configuration
type ConfigShowCommand struct {
	cli *Cli
	cmd *cobra.Command
}

// NewConfigShowCommand new config show cmd
func NewConfigShowCommand(cli *Cli) *cobra.Command {
	c := new(ConfigShowCommand)
	c.cli = cli
	c.cmd = &cobra.Command{
		Use:     "show",
		Short:   "Print the configuration after merging flags, env and config file.",
		Example: "gorc config show --conf ./conf/gorc.yaml",
		Args:    exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.show()
		},
	}
	return c.cmd
}

func (c *ConfigShowCommand) show() error {
	data, err := yaml.Marshal(&c.cli.Config)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	c.cli.Logger().Debug("render config", zap.Int("bytes", len(data)))
	_, err = c.cmd.OutOrStdout().Write(data)
	return err
}

func init() {
	AddCommand(NewConfigCommand)
}
