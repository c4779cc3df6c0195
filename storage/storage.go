// Package storage defines the repository interfaces for persisting IGT
// corpora.
package storage

import (
	"github.com/revelaction/igt/file"
)

// Info is the stored metadata of a corpus.
type Info struct {
	Name     string
	Examples int
}

// CorpusReader defines read operations for corpus storage
type CorpusReader interface {
	// List returns the metadata of stored corpora, sorted by name.
	List() ([]Info, error)

	// Read returns all rows of a corpus by name, in stored order.
	Read(name string) ([]file.Row, error)
}

// CorpusWriter defines write operations for corpus storage
type CorpusWriter interface {
	// Write persists a corpus under the given name, replacing any
	// previous rows.
	Write(name string, rows []file.Row) error
}

// CorpusRepository combines read and write operations
type CorpusRepository interface {
	CorpusReader
	CorpusWriter
}
