package scoring

import "github.com/herpmatch/herpmatch/pkg/species"

// InitialCostScorer scores the species' setup cost grade against the
// keeper's maximum budget grade.
type InitialCostScorer struct {
	DefaultWeight int
}

func (s *InitialCostScorer) Key() string  { return KeyInitialCost }
func (s *InitialCostScorer) Name() string { return "Initial cost" }

func (s *InitialCostScorer) Evaluate(sp *species.Species, ctx *Context) float64 {
	if ctx.prefs.InitialCostMax == nil {
		return 0
	}
	weight := ctx.Weight(KeyInitialCost, s.DefaultWeight)
	if weight == 0 {
		return 0
	}

	var score float64
	if sp.InitialCost <= *ctx.prefs.InitialCostMax {
		score = 100
		ctx.AddReason("Initial cost is within your budget")
	} else if sp.InitialCost-*ctx.prefs.InitialCostMax == 1 {
		score = 33
		ctx.AddReason("Initial cost exceeds your budget by one grade")
	} else {
		score = 0
		ctx.AddReason("Initial cost significantly exceeds your budget")
	}

	contribution := score / 100 * float64(weight)
	ctx.AddContribution(KeyInitialCost, contribution)
	return contribution
}
