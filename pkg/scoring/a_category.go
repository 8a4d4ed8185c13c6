package scoring

import (
	"fmt"

	"github.com/herpmatch/herpmatch/pkg/species"
)

// evaluateCategory is the category hard filter, run before every other
// scorer. A species whose category is not in the requested list returns
// zero and the engine short-circuits, excluding it from results.
// Matched categories contribute a full sub-score under an optional
// per-category weight override.
func evaluateCategory(sp *species.Species, ctx *Context) float64 {
	if len(ctx.prefs.Categories) == 0 {
		return 0
	}

	found := false
	for _, c := range ctx.prefs.Categories {
		if sp.Category == c {
			found = true
			break
		}
	}
	if !found {
		return 0
	}

	weight := DefaultCategoryWeight
	if w, ok := ctx.prefs.CategoryWeights[sp.Category]; ok {
		weight = w
	}

	ctx.AddReason(fmt.Sprintf("Category %s is one of your selected categories", sp.Category))

	contribution := float64(weight)
	ctx.AddContribution(KeyCategory, contribution)
	return contribution
}
