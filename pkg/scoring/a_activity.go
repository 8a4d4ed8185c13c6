package scoring

import (
	"fmt"

	"github.com/herpmatch/herpmatch/pkg/species"
)

// ActivityPatternScorer is an exact-match scorer for nocturnal/diurnal
// preference. Mismatches contribute zero but are still recorded.
type ActivityPatternScorer struct {
	DefaultWeight int
}

func (s *ActivityPatternScorer) Key() string  { return KeyActivityPattern }
func (s *ActivityPatternScorer) Name() string { return "Activity pattern" }

func (s *ActivityPatternScorer) Evaluate(sp *species.Species, ctx *Context) float64 {
	if ctx.prefs.ActivityPattern == "" {
		return 0
	}
	weight := ctx.Weight(KeyActivityPattern, s.DefaultWeight)
	if weight == 0 {
		return 0
	}

	var score float64
	if sp.ActivityPattern == ctx.prefs.ActivityPattern {
		score = 100
		ctx.AddReason(fmt.Sprintf("Activity pattern matches your preference (%s)", ctx.prefs.ActivityPattern))
	}

	contribution := score / 100 * float64(weight)
	ctx.AddContribution(KeyActivityPattern, contribution)
	return contribution
}
