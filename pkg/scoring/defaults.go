package scoring

import "github.com/herpmatch/herpmatch/pkg/species"

// Scorer is the interface all attribute scorers implement.
// Evaluate returns the attribute's weighted contribution and records
// bookkeeping (contribution, optional reason) on the context. Scorers
// are pure given their inputs; the context never feeds back into the
// score within a call.
type Scorer interface {
	// Key returns the machine-readable attribute identifier.
	Key() string
	// Name returns the human-readable attribute name.
	Name() string
	// Evaluate computes the attribute's weighted contribution for a species.
	Evaluate(sp *species.Species, ctx *Context) float64
}

// DefaultScorers returns the standard attribute scorers in their fixed
// evaluation order. The category hard filter runs before all of these.
func DefaultScorers() []Scorer {
	w := DefaultWeights()
	return []Scorer{
		&DifficultyScorer{DefaultWeight: w[KeyDifficulty]},
		&InitialCostScorer{DefaultWeight: w[KeyInitialCost]},
		&TemperatureHumidityScorer{DefaultWeight: w[KeyTemperatureHumidity]},
		&ActivityPatternScorer{DefaultWeight: w[KeyActivityPattern]},
		&DietTypeScorer{DefaultWeight: w[KeyDietType]},
		&FeedingFrequencyScorer{DefaultWeight: w[KeyFeedingFrequency]},
		&HandlingScorer{DefaultWeight: w[KeyHandling]},
		&EnclosureSizeScorer{DefaultWeight: w[KeyEnclosureSize]},
		&AdultSizeScorer{DefaultWeight: w[KeyAdultSize]},
		&AppearanceTagsScorer{DefaultWeight: w[KeyAppearanceTags]},
		&PurposeScorer{DefaultWeight: w[KeyPurpose]},
	}
}
