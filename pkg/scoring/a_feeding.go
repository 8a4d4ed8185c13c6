package scoring

import "github.com/herpmatch/herpmatch/pkg/species"

// FeedingFrequencyScorer scores feeding workload against the keeper's
// maximum preferred frequency grade.
type FeedingFrequencyScorer struct {
	DefaultWeight int
}

func (s *FeedingFrequencyScorer) Key() string  { return KeyFeedingFrequency }
func (s *FeedingFrequencyScorer) Name() string { return "Feeding frequency" }

func (s *FeedingFrequencyScorer) Evaluate(sp *species.Species, ctx *Context) float64 {
	if ctx.prefs.FeedingFrequencyMax == nil {
		return 0
	}
	weight := ctx.Weight(KeyFeedingFrequency, s.DefaultWeight)
	if weight == 0 {
		return 0
	}

	var score float64
	if sp.FeedingFrequency <= *ctx.prefs.FeedingFrequencyMax {
		score = 100
		ctx.AddReason("Feeding frequency is at or below your preferred level")
	} else if sp.FeedingFrequency-*ctx.prefs.FeedingFrequencyMax == 1 {
		score = 50
		ctx.AddReason("Feeding frequency is one grade above your preferred level")
	} else {
		score = 25
		ctx.AddReason("Feeding frequency is far above your preferred level")
	}

	contribution := score / 100 * float64(weight)
	ctx.AddContribution(KeyFeedingFrequency, contribution)
	return contribution
}
