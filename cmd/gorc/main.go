/*
 * Copyright (c) 2021. Baidu Inc. All Rights Reserved.
 */

package main

import (
	"context"
	"log"
	"os"

	"github.com/mikeyhodl/gravity-bridge/cmd/gorc/cmd"
)

var (
	Version   = ""
	BuildTime = ""
	CommitID  = ""
)

func main() {
	cli := cmd.NewCli()
	cli.SetBuildInfo(cmd.BuildInfo{
		Version:   Version,
		CommitID:  CommitID,
		BuildTime: BuildTime,
	})

	err := cli.Init()
	if err != nil {
		log.Fatal(err)
	}

	cli.AddCommands(cmd.Commands)
	os.Exit(cli.Run(context.Background()))
}
