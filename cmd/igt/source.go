package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/igt/corpus"
	"github.com/revelaction/igt/file"
	"github.com/revelaction/igt/storage/sqlite/zombiezen"
)

// sourceFlags are shared by every command that reads a corpus, either
// from a standalone file or from a corpus stored in a SQLite database.
func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "corpus file (.json or .tsv)",
		},
		&cli.StringFlag{
			Name:  "db",
			Usage: "SQLite database path",
		},
		&cli.StringFlag{
			Name:    "corpus",
			Aliases: []string{"c"},
			Usage:   "corpus name inside the database",
		},
	}
}

func loadRows(c *cli.Context) ([]file.Row, error) {
	if path := c.String("file"); path != "" {
		if strings.EqualFold(filepath.Ext(path), ".tsv") {
			return file.ReadTSVFile(path)
		}
		return file.ReadRows(path)
	}

	db := c.String("db")
	name := c.String("corpus")
	if db == "" || name == "" {
		return nil, errors.New("no corpus source: use --file, or --db together with --corpus")
	}

	pool, err := zombiezen.NewPool(db)
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	return zombiezen.NewCorpusStore(pool).Read(name)
}

func loadCorpus(c *cli.Context) (*corpus.Corpus, error) {
	rows, err := loadRows(c)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("corpus is empty")
	}
	return corpus.New(file.IGTs(rows)), nil
}

func concordanceKind(name string) (corpus.Kind, error) {
	switch name {
	case "grammar":
		return corpus.Grammar, nil
	case "lexicon":
		return corpus.Lexicon, nil
	case "form":
		return corpus.Form, nil
	}
	return 0, fmt.Errorf("unknown concordance type: %s (want grammar, lexicon or form)", name)
}
