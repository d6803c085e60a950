package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/srslint/corpus"
)

// JSONRenderer writes the corpus report as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes the report as a single JSON object.
func (r *JSONRenderer) Render(rep corpus.Report) error {
	enc := json.NewEncoder(r.W)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// compile-time interface check
var _ Renderer = (*JSONRenderer)(nil)
