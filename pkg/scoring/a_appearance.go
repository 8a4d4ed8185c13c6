package scoring

import (
	"fmt"
	"strings"

	"github.com/herpmatch/herpmatch/pkg/species"
)

// AppearanceTagsScorer scores the overlap between the keeper's desired
// appearance tags and the species' tags. Both sides are normalized with
// synonym folding before comparison. The sub-score is the matched
// fraction of the keeper's tags.
type AppearanceTagsScorer struct {
	DefaultWeight int
}

func (s *AppearanceTagsScorer) Key() string  { return KeyAppearanceTags }
func (s *AppearanceTagsScorer) Name() string { return "Appearance tags" }

func (s *AppearanceTagsScorer) Evaluate(sp *species.Species, ctx *Context) float64 {
	if len(ctx.prefs.AppearanceTags) == 0 {
		return 0
	}
	weight := ctx.Weight(KeyAppearanceTags, s.DefaultWeight)
	if weight == 0 {
		return 0
	}
	// A species with no tags is not scored on appearance at all.
	if len(sp.AppearanceTags) == 0 {
		return 0
	}

	var matched []string
	for _, tag := range ctx.prefs.AppearanceTags {
		if normalized := species.NormalizeTag(tag); sp.HasTag(normalized) {
			matched = append(matched, normalized)
		}
	}

	var score float64
	if len(matched) > 0 {
		score = float64(len(matched)) / float64(len(ctx.prefs.AppearanceTags)) * 100
		ctx.AddReason(fmt.Sprintf("Appearance tags match (%s)", strings.Join(matched, ", ")))
	}

	contribution := score / 100 * float64(weight)
	ctx.AddContribution(KeyAppearanceTags, contribution)
	return contribution
}
