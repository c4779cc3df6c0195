package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/igt/file"
	"github.com/revelaction/igt/storage/filesystem"
	"github.com/revelaction/igt/storage/sqlite/zombiezen"
)

func importCommand() *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "import corpus files into a SQLite database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "from",
				Usage:    "corpus file (.json or .tsv) or directory of .json corpora",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "db",
				Usage:    "destination SQLite database path",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "name",
				Usage: "corpus name for a single file import (default: file name)",
			},
		},
		Action: func(c *cli.Context) error {
			return importAction(c.String("from"), c.String("db"), c.String("name"), c)
		},
	}
}

func importAction(from, db, name string, c *cli.Context) error {
	corpora, err := collect(from, name)
	if err != nil {
		return err
	}
	if len(corpora) == 0 {
		return fmt.Errorf("no corpora found in %s", from)
	}

	pool, err := zombiezen.NewPool(db)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := zombiezen.CreateCorpusTables(pool); err != nil {
		return fmt.Errorf("failed to create corpus tables: %w", err)
	}

	dst := zombiezen.NewCorpusStore(pool)

	fmt.Fprintf(c.App.Writer, "Reading corpora from %s...\n", from)

	uiprogress.Start()
	bar := uiprogress.AddBar(len(corpora))
	bar.AppendCompleted()
	bar.PrependElapsed()

	count := 0
	for _, src := range corpora {
		if err := dst.Write(src.name, src.rows); err != nil {
			uiprogress.Stop()
			return fmt.Errorf("failed to write corpus %s: %w", src.name, err)
		}
		count++
		bar.Incr()
	}
	uiprogress.Stop()

	fmt.Fprintf(c.App.Writer, "Successfully imported %d corpora from %s to %s\n", count, from, db)
	return nil
}

type namedRows struct {
	name string
	rows []file.Row
}

// collect gathers the corpora under from: a directory of stored .json
// corpora, or one .json/.tsv file imported under a single name.
func collect(from, name string) ([]namedRows, error) {
	switch strings.ToLower(filepath.Ext(from)) {
	case ".tsv":
		rows, err := file.ReadTSVFile(from)
		if err != nil {
			return nil, err
		}
		return []namedRows{{name: corpusName(from, name), rows: rows}}, nil
	case ".json":
		rows, err := file.ReadRows(from)
		if err != nil {
			return nil, err
		}
		return []namedRows{{name: corpusName(from, name), rows: rows}}, nil
	}

	src, err := filesystem.NewCorpusStore(from)
	if err != nil {
		return nil, errors.New("--from must be a .json file, a .tsv file or a directory")
	}

	infos, err := src.List()
	if err != nil {
		return nil, err
	}

	var corpora []namedRows
	for _, info := range infos {
		rows, err := src.Read(info.Name)
		if err != nil {
			return nil, err
		}
		corpora = append(corpora, namedRows{name: info.Name, rows: rows})
	}
	return corpora, nil
}

func corpusName(from, name string) string {
	if name != "" {
		return name
	}
	base := filepath.Base(from)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
