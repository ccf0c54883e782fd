/*
 * Copyright (c) 2021. Baidu Inc. All Rights Reserved.
 */

package cmd

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// BuildInfo holds the values injected with -ldflags at build time.
type BuildInfo struct {
	Version   string `json:"version"`
	CommitID  string `json:"commit"`
	BuildTime string `json:"buildTime"`
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("%s-%s %s", b.Version, b.CommitID, b.BuildTime)
}

type versionJSON struct {
	BuildInfo
	Go   string `json:"go"`
	OS   string `json:"os"`
	Arch string `json:"arch"`
}

// VersionCommand version cmd
type VersionCommand struct {
	cli *Cli
	cmd *cobra.Command

	json bool
}

// NewVersionCommand new version cmd
func NewVersionCommand(cli *Cli) *cobra.Command {
	c := new(VersionCommand)
	c.cli = cli
	c.cmd = &cobra.Command{
		Use:     "version",
		Short:   "View process version information.",
		Example: "gorc version --json",
		Args:    exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.printVersion()
		},
	}
	c.addFlags()
	return c.cmd
}

func (c *VersionCommand) addFlags() {
	c.cmd.Flags().BoolVar(&c.json, "json", false, "print version information as JSON")
}

func (c *VersionCommand) printVersion() error {
	out := c.cmd.OutOrStdout()
	if !c.json {
		_, err := fmt.Fprintln(out, c.cli.build.String())
		return err
	}

	v := versionJSON{
		BuildInfo: c.cli.build,
		Go:        runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal version: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

func init() {
	AddCommand(NewVersionCommand)
}
