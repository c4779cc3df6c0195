// Package filesystem stores corpora as JSON row files in a directory.
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/revelaction/igt/file"
	"github.com/revelaction/igt/storage"
)

type CorpusStore struct {
	dir string
}

var _ storage.CorpusRepository = (*CorpusStore)(nil)

// NewCorpusStore creates a filesystem corpus store rooted at dir.
func NewCorpusStore(dir string) (*CorpusStore, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}
	return &CorpusStore{dir: dir}, nil
}

func (s *CorpusStore) List() ([]storage.Info, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}
	var infos []storage.Info
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".json")
		rows, err := file.ReadRows(s.path(name))
		if err != nil {
			return nil, fmt.Errorf("corpus %s: %w", name, err)
		}
		infos = append(infos, storage.Info{Name: name, Examples: len(rows)})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

func (s *CorpusStore) Read(name string) ([]file.Row, error) {
	rows, err := file.ReadRows(s.path(name))
	if err != nil {
		return nil, fmt.Errorf("corpus %s: %w", name, err)
	}
	return rows, nil
}

func (s *CorpusStore) Write(name string, rows []file.Row) error {
	if err := file.WriteRows(s.path(name), rows); err != nil {
		return fmt.Errorf("corpus %s: %w", name, err)
	}
	return nil
}

func (s *CorpusStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}
