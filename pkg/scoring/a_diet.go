package scoring

import (
	"fmt"

	"github.com/herpmatch/herpmatch/pkg/species"
)

// DietTypeScorer is an exact-match scorer for the keeper's preferred
// feeding classification (omnivore/herbivore/carnivore).
type DietTypeScorer struct {
	DefaultWeight int
}

func (s *DietTypeScorer) Key() string  { return KeyDietType }
func (s *DietTypeScorer) Name() string { return "Diet type" }

func (s *DietTypeScorer) Evaluate(sp *species.Species, ctx *Context) float64 {
	if ctx.prefs.DietType == "" {
		return 0
	}
	weight := ctx.Weight(KeyDietType, s.DefaultWeight)
	if weight == 0 {
		return 0
	}

	var score float64
	if sp.DietType == ctx.prefs.DietType {
		score = 100
		ctx.AddReason(fmt.Sprintf("Diet type matches your preference (%s)", ctx.prefs.DietType))
	}

	contribution := score / 100 * float64(weight)
	ctx.AddContribution(KeyDietType, contribution)
	return contribution
}
