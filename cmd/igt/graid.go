package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/igt/graid"
)

func graidCommand() *cli.Command {
	return &cli.Command{
		Name:  "graid",
		Usage: "interactively parse GRAID annotations",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "cross-index",
				Usage: "recognize person cross-index annotations",
			},
		},
		Action: func(c *cli.Context) error {
			parser, err := graid.New(&graid.Config{
				WithCrossIndex: c.Bool("cross-index"),
			})
			if err != nil {
				return err
			}
			return graidRepl(parser)
		},
	}
}

func graidRepl(parser *graid.Parser) error {
	fmt.Println("🔤 Enter a GRAID annotation, 🔧 quit")

	suggestions := symbolSuggestions(parser)
	history := []string{}

	for {
		in := prompt.Input("      🔤 ", graidCompleter(suggestions),
			prompt.OptionTitle("igt graid"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
		)

		if in == "quit" {
			return nil
		}
		if strings.TrimSpace(in) == "" {
			continue
		}
		history = append(history, in)

		glosses, err := parser.Parse(in)
		if err != nil {
			fmt.Printf("✗ %v\n", err)
			continue
		}

		for _, g := range glosses {
			fmt.Printf("%-20s %s\n", g, g.Describe(parser))
		}
	}
}

func symbolSuggestions(parser *graid.Parser) []prompt.Suggest {
	symbols := parser.Symbols()

	names := make([]string, 0, len(symbols))
	for sym := range symbols {
		names = append(names, sym)
	}
	sort.Strings(names)

	s := make([]prompt.Suggest, 0, len(names))
	for _, sym := range names {
		s = append(s, prompt.Suggest{Text: sym, Description: symbols[sym]})
	}
	return s
}

// graidCompleter completes the annotation segment under the cursor, so
// symbols are still offered after separators, functions and qualifiers.
func graidCompleter(suggestions []prompt.Suggest) func(in prompt.Document) []prompt.Suggest {
	return func(in prompt.Document) []prompt.Suggest {
		befCursor := in.TextBeforeCursor()
		if befCursor == "" {
			return nil
		}

		start := strings.LastIndexAny(befCursor, " -=:_.")
		segment := befCursor[start+1:]
		if segment == "" {
			return nil
		}

		var s []prompt.Suggest
		for _, sug := range suggestions {
			if strings.HasPrefix(sug.Text, segment) {
				s = append(s, sug)
			}
		}
		return s
	}
}
