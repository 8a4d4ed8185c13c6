package surface

import (
	"encoding/json"
	"io"

	"github.com/herpmatch/herpmatch/pkg/scoring"
)

// JSONRenderer marshals a Recommendation to indented JSON.
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, rec *scoring.Recommendation) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rec)
}
