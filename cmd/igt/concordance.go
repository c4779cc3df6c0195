package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/igt/render"
)

func kindFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "type",
		Aliases: []string{"t"},
		Usage:   "concordance type: grammar, lexicon or form",
		Value:   "lexicon",
	}
}

func concordanceCommand() *cli.Command {
	return &cli.Command{
		Name:  "concordance",
		Usage: "print the morpheme concordance as a tab separated table",
		Flags: append(sourceFlags(), kindFlag()),
		Action: func(c *cli.Context) error {
			kind, err := concordanceKind(c.String("type"))
			if err != nil {
				return err
			}
			corp, err := loadCorpus(c)
			if err != nil {
				return err
			}
			return render.NewRenderer(c.App.Writer).Concordance(corp, kind)
		},
	}
}

func conceptsCommand() *cli.Command {
	return &cli.Command{
		Name:  "concepts",
		Usage: "print glossed concepts with their forms and an example",
		Flags: append(sourceFlags(), kindFlag()),
		Action: func(c *cli.Context) error {
			kind, err := concordanceKind(c.String("type"))
			if err != nil {
				return err
			}
			corp, err := loadCorpus(c)
			if err != nil {
				return err
			}
			return render.NewRenderer(c.App.Writer).Concepts(corp, kind)
		},
	}
}

func wordlistCommand() *cli.Command {
	return &cli.Command{
		Name:  "wordlist",
		Usage: "print the corpus as wordlist records",
		Flags: sourceFlags(),
		Action: func(c *cli.Context) error {
			corp, err := loadCorpus(c)
			if err != nil {
				return err
			}
			return render.NewRenderer(c.App.Writer).Wordlist(corp, nil)
		},
	}
}
