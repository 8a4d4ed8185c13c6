package scoring

import "github.com/herpmatch/herpmatch/pkg/species"

// HandlingScorer scores handling suitability against the keeper's
// minimum preferred grade. Higher species grades always satisfy.
type HandlingScorer struct {
	DefaultWeight int
}

func (s *HandlingScorer) Key() string  { return KeyHandling }
func (s *HandlingScorer) Name() string { return "Handling suitability" }

func (s *HandlingScorer) Evaluate(sp *species.Species, ctx *Context) float64 {
	if ctx.prefs.HandlingMin == nil {
		return 0
	}
	weight := ctx.Weight(KeyHandling, s.DefaultWeight)
	if weight == 0 {
		return 0
	}

	var score float64
	if sp.Handling >= *ctx.prefs.HandlingMin {
		score = 100
		ctx.AddReason("Handling suitability meets your preferred grade")
	} else if *ctx.prefs.HandlingMin-sp.Handling == 1 {
		score = 50
		ctx.AddReason("Handling suitability is one grade below your preference")
	} else {
		score = 25
		ctx.AddReason("Handling suitability is far below your preference")
	}

	contribution := score / 100 * float64(weight)
	ctx.AddContribution(KeyHandling, contribution)
	return contribution
}
