package scoring

import "github.com/herpmatch/herpmatch/pkg/species"

// AdultSizeScorer scores full-grown size. There is no user preference
// for this attribute; smaller always scores higher (1 -> 100%, 3 -> 0%).
type AdultSizeScorer struct {
	DefaultWeight int
}

func (s *AdultSizeScorer) Key() string  { return KeyAdultSize }
func (s *AdultSizeScorer) Name() string { return "Adult size" }

func (s *AdultSizeScorer) Evaluate(sp *species.Species, ctx *Context) float64 {
	weight := ctx.Weight(KeyAdultSize, s.DefaultWeight)
	if weight == 0 {
		return 0
	}

	score := clampScore(100 - float64(sp.AdultSize-1)*50)

	contribution := score / 100 * float64(weight)
	ctx.AddContribution(KeyAdultSize, contribution)
	return contribution
}
