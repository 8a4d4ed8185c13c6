package scoring

import "github.com/herpmatch/herpmatch/pkg/species"

// EnclosureSizeScorer is a strict max-threshold scorer: a species whose
// enclosure requirement exceeds the keeper's space scores zero.
type EnclosureSizeScorer struct {
	DefaultWeight int
}

func (s *EnclosureSizeScorer) Key() string  { return KeyEnclosureSize }
func (s *EnclosureSizeScorer) Name() string { return "Enclosure size" }

func (s *EnclosureSizeScorer) Evaluate(sp *species.Species, ctx *Context) float64 {
	if ctx.prefs.EnclosureSizeMax == nil {
		return 0
	}
	weight := ctx.Weight(KeyEnclosureSize, s.DefaultWeight)
	if weight == 0 {
		return 0
	}

	var score float64
	if sp.EnclosureSize <= *ctx.prefs.EnclosureSizeMax {
		score = 100
		ctx.AddReason("Enclosure size fits within your available space")
	} else {
		ctx.AddReason("Enclosure size exceeds your available space")
	}

	contribution := score / 100 * float64(weight)
	ctx.AddContribution(KeyEnclosureSize, contribution)
	return contribution
}
