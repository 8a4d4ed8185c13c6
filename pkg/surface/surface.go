// Package surface defines output rendering for HerpMatch results.
// Implementations handle different output targets: terminal and JSON.
package surface

import (
	"io"

	"github.com/herpmatch/herpmatch/pkg/scoring"
)

// Renderer produces formatted output from a Recommendation.
type Renderer interface {
	// Render writes the formatted recommendation to the writer.
	Render(w io.Writer, rec *scoring.Recommendation) error
}
