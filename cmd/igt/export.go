package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/igt/file"
	"github.com/revelaction/igt/render"
)

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "write a corpus as JSON, to a file or to standard output",
		Flags: append(sourceFlags(),
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "destination .json file (default: standard output)",
			},
		),
		Action: func(c *cli.Context) error {
			rows, err := loadRows(c)
			if err != nil {
				return err
			}

			if out := c.String("out"); out != "" {
				return file.WriteRows(out, rows)
			}
			return render.NewJSONRenderer(c.App.Writer).Render(rows)
		},
	}
}
