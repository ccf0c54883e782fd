/*
 * Copyright (c) 2021. Baidu Inc. All Rights Reserved.
 */

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// CommandFunc builds one top level subcommand against the Cli it is registered on.
type CommandFunc func(c *Cli) *cobra.Command

var (
	// Commands collects every top level subcommand, registered from init().
	Commands []CommandFunc
)

// Cli is the context every subcommand executes in.
type Cli struct {
	Config CliConfig

	rootCmd *cobra.Command
	viper   *viper.Viper
	cfgFile string
	build   BuildInfo

	logger   *zap.Logger
	fixedLog bool
	errOut   io.Writer
}

// NewCli new cli cmd
func NewCli() *Cli {
	rootCmd := newGroupCommand("gorc", "Gravity bridge orchestrator client.")
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return &Cli{
		Config:  *NewCliConfig(),
		rootCmd: rootCmd,
		viper:   viper.New(),
		logger:  zap.NewNop(),
		errOut:  os.Stderr,
	}
}

// SetVer sets the string printed by --version.
func (c *Cli) SetVer(ver string) {
	c.rootCmd.Version = ver
}

// SetBuildInfo records link time build values for the version command.
func (c *Cli) SetBuildInfo(info BuildInfo) {
	c.build = info
	c.SetVer(info.String())
}

// SetOutput redirects command output and error output.
func (c *Cli) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
	c.errOut = errOut
}

// SetArgs overrides os.Args[1:].
func (c *Cli) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetLogger pins the logger; the log settings in the config are then ignored.
func (c *Cli) SetLogger(logger *zap.Logger) {
	c.logger = logger
	c.fixedLog = true
}

// Logger returns the process logger.
func (c *Cli) Logger() *zap.Logger {
	return c.logger
}

func (c *Cli) initFlags() error {
	// priority: 1. command line 2. env 3. config file 4. default
	rootFlag := c.rootCmd.PersistentFlags()
	rootFlag.StringVarP(&c.cfgFile, "conf", "C", defaultConfFile, "client config file")
	rootFlag.String("log-level", c.Config.Log.Level, "log level, debug|info|warn|error")
	rootFlag.String("log-format", c.Config.Log.Format, "log format, console|json")
	for key, name := range map[string]string{
		"log.level":  "log-level",
		"log.format": "log-format",
	} {
		if err := c.viper.BindPFlag(key, rootFlag.Lookup(name)); err != nil {
			return err
		}
	}

	c.Config.setDefaults(c.viper)
	c.viper.SetEnvPrefix(envPrefix)
	c.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	c.viper.AutomaticEnv()

	c.rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})
	c.rootCmd.PersistentPreRunE = func(*cobra.Command, []string) error {
		return c.loadConfig()
	}
	return nil
}

func (c *Cli) loadConfig() error {
	required := c.rootCmd.PersistentFlags().Changed("conf")
	if err := c.Config.LoadConfig(c.viper, c.cfgFile, required); err != nil {
		return err
	}
	if !c.fixedLog {
		logger, err := NewLogger(c.Config.Log, c.errOut)
		if err != nil {
			return err
		}
		c.logger = logger
	}
	c.logger.Debug("client config loaded",
		zap.String("conf", c.cfgFile),
		zap.String("logLevel", c.Config.Log.Level),
		zap.String("logFormat", c.Config.Log.Format),
	)
	return nil
}

// Init cmd init entrance
func (c *Cli) Init() error {
	return c.initFlags()
}

// AddCommands add sub commands
func (c *Cli) AddCommands(cmds []CommandFunc) {
	for _, cmd := range cmds {
		c.rootCmd.AddCommand(cmd(c))
	}
}

// Execute runs the command selected by the arguments.
func (c *Cli) Execute(ctx context.Context) error {
	_, err := c.execute(ctx)
	return err
}

// Run executes the command line, reports any error and returns the exit code.
func (c *Cli) Run(ctx context.Context) int {
	cmd, err := c.execute(ctx)
	if err != nil {
		fmt.Fprintf(c.errOut, "Error: %v\n", err)
		if errors.Is(err, ErrUsage) && cmd != nil {
			fmt.Fprintf(c.errOut, "Run '%s --help' for usage.\n", cmd.CommandPath())
		}
	}
	return ExitCode(err)
}

func (c *Cli) execute(ctx context.Context) (*cobra.Command, error) {
	defer func() {
		_ = c.logger.Sync()
	}()
	return c.rootCmd.ExecuteContextC(ctx)
}

// AddCommand add sub cmd
func AddCommand(cmd CommandFunc) {
	Commands = append(Commands, cmd)
}

// newGroupCommand returns a command that only dispatches to its children.
func newGroupCommand(use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w %q for %q", ErrUnknownCommand, args[0], cmd.CommandPath())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return fmt.Errorf("%w for %q", ErrMissingCommand, cmd.CommandPath())
		},
	}
}
