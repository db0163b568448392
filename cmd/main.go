package main

import (
	"context"
	"os"

	"shrike/tutil/cmd/size"
	"shrike/tutil/cmd/version"
	"shrike/tutil/cmd/watch"
	"shrike/tutil/pkg/log"

	"github.com/urfave/cli/v3"
)

func main() {
	root := &cli.Command{
		Name:  "tutil",
		Usage: "terminal toolbox for querying and watching terminal dimensions",
		Commands: []*cli.Command{
			size.GetCommand(),
			watch.GetCommand(),
			version.GetCommand(),
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		log.ErrorMsg("%s\n", err)
		os.Exit(1)
	}
}
