package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/igt/render"
)

func statsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "print example, word and morpheme counts",
		Flags: sourceFlags(),
		Action: func(c *cli.Context) error {
			corp, err := loadCorpus(c)
			if err != nil {
				return err
			}
			return render.NewRenderer(c.App.Writer).Stats(corp)
		},
	}
}

func showCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "pretty print examples, or a single example by id",
		ArgsUsage: "[id]",
		Flags: append(sourceFlags(),
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable terminal colors",
			},
		),
		Action: func(c *cli.Context) error {
			corp, err := loadCorpus(c)
			if err != nil {
				return err
			}

			r := render.NewRenderer(c.App.Writer)
			r.HasColor = !c.Bool("no-color")

			if id := c.Args().First(); id != "" {
				x, ok := corp.ByID(id)
				if !ok {
					return fmt.Errorf("no example with id %s", id)
				}
				return r.IGT(x)
			}

			for _, x := range corp.IGTs() {
				if err := r.IGT(x); err != nil {
					return err
				}
				fmt.Fprintln(c.App.Writer)
			}
			return nil
		},
	}
}

func checkCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "report examples whose phrase and gloss lines are misaligned",
		Flags: append(sourceFlags(),
			&cli.IntFlag{
				Name:  "level",
				Usage: "alignment level: 1 words, 2 morphemes",
				Value: 2,
			},
		),
		Action: func(c *cli.Context) error {
			corp, err := loadCorpus(c)
			if err != nil {
				return err
			}

			bad := corp.CheckGlosses(c.App.Writer, c.Int("level"))
			fmt.Fprintf(c.App.Writer, "%d of %d examples misaligned\n", bad, corp.Len())
			return nil
		},
	}
}
