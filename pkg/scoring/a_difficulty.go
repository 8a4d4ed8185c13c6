package scoring

import "github.com/herpmatch/herpmatch/pkg/species"

// DifficultyScorer scores how closely a species' care difficulty matches
// the keeper's exact target level. Easier-than-preferred is penalized far
// less than harder-than-preferred.
type DifficultyScorer struct {
	DefaultWeight int
}

func (s *DifficultyScorer) Key() string  { return KeyDifficulty }
func (s *DifficultyScorer) Name() string { return "Care difficulty" }

func (s *DifficultyScorer) Evaluate(sp *species.Species, ctx *Context) float64 {
	if ctx.prefs.Difficulty == nil {
		return 0
	}
	weight := ctx.Weight(KeyDifficulty, s.DefaultWeight)
	if weight == 0 {
		return 0
	}

	diff := sp.Difficulty - *ctx.prefs.Difficulty

	var score float64
	switch {
	case diff == 0:
		score = 100
		ctx.AddReason("Care difficulty matches your preferred level")
	case diff == -1:
		score = 90
		ctx.AddReason("Care difficulty is one level easier than you preferred")
	case diff == -2:
		score = 75
		ctx.AddReason("Care difficulty is two levels easier than you preferred")
	case diff <= -3:
		score = 60
		ctx.AddReason("Care difficulty is far easier than you preferred")
	case diff == 1:
		score = 50
		ctx.AddReason("Care difficulty is one level harder than you preferred")
	default: // diff >= 2
		score = 25
		ctx.AddReason("Care difficulty is far harder than you preferred")
	}

	contribution := score / 100 * float64(weight)
	ctx.AddContribution(KeyDifficulty, contribution)
	return contribution
}
