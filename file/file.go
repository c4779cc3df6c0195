// Package file reads and writes corpus rows in the JSON and TSV exchange
// formats.
package file

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/revelaction/igt/igt"
)

// CellSeparator is the literal two-character sequence separating words
// inside a phrase or gloss cell of a TSV export.
const CellSeparator = `\t`

// Row is one interlinear example as stored on disk.
type Row struct {
	ID          string            `json:"id"`
	Phrase      string            `json:"phrase"`
	Gloss       string            `json:"gloss"`
	Translation string            `json:"translation,omitempty"`
	Language    string            `json:"language,omitempty"`
	Properties  map[string]string `json:"properties,omitempty"`
}

// IGT parses the row into an interlinear example.
func (r Row) IGT() *igt.IGT {
	var opts []igt.Option
	if r.Translation != "" {
		opts = append(opts, igt.Translation(r.Translation))
	}
	if r.Language != "" {
		opts = append(opts, igt.Language(r.Language))
	}
	if len(r.Properties) > 0 {
		opts = append(opts, igt.Properties(r.Properties))
	}
	return igt.New(r.ID, splitCell(r.Phrase), splitCell(r.Gloss), opts...)
}

// splitCell splits a phrase or gloss cell into words. Exported cells use
// the literal cell separator; free text falls back to whitespace
// tokenization.
func splitCell(s string) []string {
	if strings.Contains(s, CellSeparator) {
		parts := strings.Split(s, CellSeparator)
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return igt.Tokenize(s)
}

// IGTs parses all rows.
func IGTs(rows []Row) []*igt.IGT {
	res := make([]*igt.IGT, 0, len(rows))
	for _, r := range rows {
		res = append(res, r.IGT())
	}
	return res
}

// ReadRows reads a JSON array of rows from the given path.
func ReadRows(path string) ([]Row, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}
	var rows []Row
	if err := json.Unmarshal(f, &rows); err != nil {
		return nil, fmt.Errorf("JSON decoding error: %w", err)
	}
	return rows, nil
}

// WriteRows writes rows as a JSON array to the given path.
func WriteRows(path string, rows []Row) error {
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// tsv column names
const (
	colID          = "ID"
	colPhrase      = "PHRASE"
	colGloss       = "GLOSS"
	colTranslation = "TRANSLATION"
	colLanguage    = "LANGUAGE"
)

// ReadTSV reads rows from tab separated data with a header line. The ID,
// PHRASE and GLOSS columns are required; TRANSLATION and LANGUAGE are
// optional, and any further column goes into the row's properties.
func ReadTSV(r io.Reader) ([]Row, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("missing header line")
	}
	header := strings.Split(sc.Text(), "\t")
	cols := map[string]int{}
	for i, h := range header {
		cols[strings.TrimSpace(h)] = i
	}
	for _, required := range []string{colID, colPhrase, colGloss} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing column %s", required)
		}
	}

	var rows []Row
	line := 1
	for sc.Scan() {
		line++
		text := sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		fields := strings.Split(text, "\t")
		cell := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(fields) {
				return ""
			}
			return strings.TrimSpace(fields[i])
		}
		row := Row{
			ID:          cell(colID),
			Phrase:      cell(colPhrase),
			Gloss:       cell(colGloss),
			Translation: cell(colTranslation),
			Language:    cell(colLanguage),
		}
		if row.ID == "" {
			return nil, fmt.Errorf("line %d: empty id", line)
		}
		for name, i := range cols {
			switch name {
			case colID, colPhrase, colGloss, colTranslation, colLanguage:
				continue
			}
			if i < len(fields) && strings.TrimSpace(fields[i]) != "" {
				if row.Properties == nil {
					row.Properties = map[string]string{}
				}
				row.Properties[name] = strings.TrimSpace(fields[i])
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

// ReadTSVFile reads rows from a TSV file.
func ReadTSVFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}
	defer f.Close()
	return ReadTSV(f)
}
