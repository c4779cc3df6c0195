// Package zombiezen stores corpora in SQLite through the zombiezen
// sqlite bindings.
package zombiezen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/revelaction/igt/file"
	"github.com/revelaction/igt/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

type CorpusStore struct {
	pool *sqlitex.Pool
}

var _ storage.CorpusRepository = (*CorpusStore)(nil)

func NewCorpusStore(pool *sqlitex.Pool) *CorpusStore {
	return &CorpusStore{pool: pool}
}

func (s *CorpusStore) List() ([]storage.Info, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	var infos []storage.Info
	err = sqlitex.Execute(conn, `
		SELECT c.name, COUNT(e.id)
		FROM corpora c LEFT JOIN examples e ON e.corpus_id = c.id
		GROUP BY c.id ORDER BY c.name
	`, &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			infos = append(infos, storage.Info{
				Name:     stmt.ColumnText(0),
				Examples: stmt.ColumnInt(1),
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return infos, nil
}

func (s *CorpusStore) Read(name string) ([]file.Row, error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer s.pool.Put(conn)

	var rows []file.Row
	found := false
	err = sqlitex.Execute(conn, `
		SELECT e.example_id, e.phrase, e.gloss, e.translation, e.language, e.properties
		FROM examples e JOIN corpora c ON e.corpus_id = c.id
		WHERE c.name = ? ORDER BY e.id
	`, &sqlitex.ExecOptions{
		Args: []interface{}{name},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			found = true
			row := file.Row{
				ID:          stmt.ColumnText(0),
				Phrase:      stmt.ColumnText(1),
				Gloss:       stmt.ColumnText(2),
				Translation: stmt.ColumnText(3),
				Language:    stmt.ColumnText(4),
			}
			if props := stmt.ColumnText(5); props != "" {
				if err := json.Unmarshal([]byte(props), &row.Properties); err != nil {
					return err
				}
			}
			rows = append(rows, row)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("corpus not found: %s", name)
	}
	return rows, nil
}

func (s *CorpusStore) Write(name string, rows []file.Row) (err error) {
	conn, err := s.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer s.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	err = sqlitex.Execute(conn, `
		INSERT INTO corpora (name, updated)
		VALUES (?, strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
		ON CONFLICT(name) DO UPDATE SET updated = excluded.updated
	`, &sqlitex.ExecOptions{
		Args: []interface{}{name},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert corpus: %w", err)
	}

	var corpusID int64
	err = sqlitex.Execute(conn, "SELECT id FROM corpora WHERE name = ?", &sqlitex.ExecOptions{
		Args: []interface{}{name},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			corpusID = stmt.ColumnInt64(0)
			return nil
		},
	})
	if err != nil {
		return err
	}

	err = sqlitex.Execute(conn, "DELETE FROM examples WHERE corpus_id = ?", &sqlitex.ExecOptions{
		Args: []interface{}{corpusID},
	})
	if err != nil {
		return err
	}

	for _, row := range rows {
		props := ""
		if len(row.Properties) > 0 {
			data, marshalErr := json.Marshal(row.Properties)
			if marshalErr != nil {
				return marshalErr
			}
			props = string(data)
		}
		err = sqlitex.Execute(conn, `
			INSERT INTO examples (corpus_id, example_id, phrase, gloss, translation, language, properties)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, &sqlitex.ExecOptions{
			Args: []interface{}{corpusID, row.ID, row.Phrase, row.Gloss, row.Translation, row.Language, props},
		})
		if err != nil {
			return fmt.Errorf("failed to insert example %s: %w", row.ID, err)
		}
	}

	return nil
}
