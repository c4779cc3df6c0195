package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/igt/storage"
	"github.com/revelaction/igt/storage/filesystem"
	"github.com/revelaction/igt/storage/sqlite/zombiezen"
)

func lsCommand() *cli.Command {
	return &cli.Command{
		Name:  "ls",
		Usage: "list stored corpora and their example counts",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "db",
				Usage: "SQLite database path",
			},
			&cli.StringFlag{
				Name:  "dir",
				Usage: "directory of corpus .json files",
			},
		},
		Action: func(c *cli.Context) error {
			var (
				reader storage.CorpusReader
				err    error
			)

			switch {
			case c.String("db") != "":
				pool, poolErr := zombiezen.NewPool(c.String("db"))
				if poolErr != nil {
					return poolErr
				}
				defer pool.Close()
				reader = zombiezen.NewCorpusStore(pool)
			case c.String("dir") != "":
				reader, err = filesystem.NewCorpusStore(c.String("dir"))
				if err != nil {
					return err
				}
			default:
				return errors.New("no corpus store: use --db or --dir")
			}

			infos, err := reader.List()
			if err != nil {
				return err
			}

			for _, info := range infos {
				fmt.Fprintf(c.App.Writer, "📖 %s\t%d\n", info.Name, info.Examples)
			}
			return nil
		},
	}
}
