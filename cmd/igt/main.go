package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "igt",
		Usage: "inspect, query and store interlinear glossed text corpora",
		Commands: []*cli.Command{
			lsCommand(),
			statsCommand(),
			showCommand(),
			checkCommand(),
			concordanceCommand(),
			conceptsCommand(),
			wordlistCommand(),
			importCommand(),
			exportCommand(),
			graidCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "igt: %v\n", err)
		os.Exit(1)
	}
}
