package scoring

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/herpmatch/herpmatch/pkg/dataset"
	"github.com/herpmatch/herpmatch/pkg/species"
)

// Engine scores and ranks species against keeper preferences.
// It is immutable after construction and safe for concurrent use; the
// dataset table is shared read-only for the engine's lifetime. Reloading
// the dataset means constructing a new Engine.
type Engine struct {
	table    *dataset.Table
	scorers  []Scorer
	defaults map[string]int
}

// NewEngine creates an engine over a validated species table using the
// default weight table.
func NewEngine(table *dataset.Table) *Engine {
	return NewEngineWithWeights(table, nil)
}

// NewEngineWithWeights creates an engine whose default weight table has
// operator overrides applied. Request-level custom weights still replace
// the table wholesale.
func NewEngineWithWeights(table *dataset.Table, overrides map[string]int) *Engine {
	return &Engine{
		table:    table,
		scorers:  DefaultScorers(),
		defaults: MergeWeights(overrides),
	}
}

// DatasetVersion returns the version tag of the table the engine serves.
func (e *Engine) DatasetVersion() string { return e.table.Version }

// MatchScore computes the normalized 0-100 match score for one species.
// The category hard filter runs first; a filtered-out species scores 0
// and no other attribute is evaluated. The returned context carries the
// per-attribute contributions and reasons collected along the way.
func (e *Engine) MatchScore(sp *species.Species, prefs *Preferences, weights map[string]int) (float64, *Context) {
	ctx := NewContext(prefs, weights)

	total := evaluateCategory(sp, ctx)
	if total == 0 {
		return 0, ctx
	}

	for _, s := range e.scorers {
		total += s.Evaluate(sp, ctx)
	}

	// Normalize against the sum of the active weight table. The category
	// weight is not part of the denominator; the clamp absorbs it.
	maxPossible := 0
	for _, w := range weights {
		maxPossible += w
	}
	if maxPossible <= 0 {
		return 0, ctx
	}

	normalized := total / float64(maxPossible) * 100
	return clampScore(normalized), ctx
}

// Recommend scores every species in the table, ranks the survivors, and
// returns the top N in a result envelope. Species that fail the category
// filter, or whose contributions normalize to 0, are excluded.
func (e *Engine) Recommend(prefs *Preferences, opts *Options) (*Recommendation, error) {
	if prefs == nil {
		return nil, fmt.Errorf("preferences are required")
	}

	topN := 10
	includeReasons := true
	if opts != nil {
		if opts.TopN > 0 {
			topN = opts.TopN
		}
		if opts.IncludeReasons != nil {
			includeReasons = *opts.IncludeReasons
		}
	}

	weights := e.defaults
	if len(prefs.CustomWeights) > 0 {
		weights = prefs.CustomWeights
	}

	type scored struct {
		score float64
		entry ResultEntry
	}

	var ranked []scored
	for i := range e.table.Species {
		sp := &e.table.Species[i]
		score, ctx := e.MatchScore(sp, prefs, weights)
		if score <= 0 {
			continue
		}

		entry := ResultEntry{
			Name:             sp.Name,
			Category:         sp.Category,
			Purpose:          sp.Purpose,
			PhotoURL:         sp.PhotoURL,
			PhotoPageURL:     sp.PhotoPageURL,
			MatchScore:       round1(score),
			InitialCostGrade: sp.InitialCost,
			MonthlyCostGrade: MonthlyCostGrade(sp),
			CareSummary:      CareSummary(sp),
		}
		if includeReasons {
			entry.MatchReasons = ctx.Reasons(2)
			entry.TopContributions = ctx.TopContributions(5)
		}

		ranked = append(ranked, scored{score: score, entry: entry})
	}

	// Rank by raw score descending; equal scores keep dataset row order.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	results := make([]ResultEntry, len(ranked))
	for i := range ranked {
		results[i] = ranked[i].entry
	}

	return &Recommendation{
		RequestID:            newRequestID(),
		DatasetVersion:       e.table.Version,
		TopN:                 topN,
		Results:              results,
		ScoringPolicyVersion: PolicyVersion,
	}, nil
}

// newRequestID generates a traceable request identifier. Not a security
// token; the random suffix only keeps same-second requests apart.
func newRequestID() string {
	return fmt.Sprintf("req_%s_%s", time.Now().Format("20060102_150405"), uuid.NewString()[:8])
}
