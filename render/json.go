package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/igt/file"
)

// JSONRenderer writes corpus rows as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes the rows as a JSON array.
func (r *JSONRenderer) Render(rows []file.Row) error {
	enc := json.NewEncoder(r.W)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
