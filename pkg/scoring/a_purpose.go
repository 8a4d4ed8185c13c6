package scoring

import (
	"fmt"

	"github.com/herpmatch/herpmatch/pkg/species"
)

// PurposeScorer scores the keeping purpose. An exact match scores full;
// a species suited for both ornamental and pet keeping scores 80 against
// any specific preference.
type PurposeScorer struct {
	DefaultWeight int
}

func (s *PurposeScorer) Key() string  { return KeyPurpose }
func (s *PurposeScorer) Name() string { return "Keeping purpose" }

func (s *PurposeScorer) Evaluate(sp *species.Species, ctx *Context) float64 {
	if ctx.prefs.Purpose == "" {
		return 0
	}
	weight := ctx.Weight(KeyPurpose, s.DefaultWeight)
	if weight == 0 {
		return 0
	}

	var score float64
	switch {
	case sp.Purpose == ctx.prefs.Purpose:
		score = 100
		ctx.AddReason(fmt.Sprintf("Keeping purpose matches your preference (%s)", ctx.prefs.Purpose))
	case sp.Purpose == species.PurposeBoth:
		score = 80
		ctx.AddReason("Suited for both ornamental and pet keeping")
	}

	contribution := score / 100 * float64(weight)
	ctx.AddContribution(KeyPurpose, contribution)
	return contribution
}
