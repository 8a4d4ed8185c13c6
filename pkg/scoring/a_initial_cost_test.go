package scoring_test

import (
	"strings"
	"testing"

	"github.com/herpmatch/herpmatch/pkg/scoring"
	"github.com/herpmatch/herpmatch/pkg/species"
)

func TestInitialCostScorer_WithinBudget(t *testing.T) {
	sp := &species.Species{InitialCost: 2}
	ctx := scoring.NewContext(&scoring.Preferences{InitialCostMax: intp(3)}, scoring.DefaultWeights())

	s := &scoring.InitialCostScorer{DefaultWeight: 15}
	if got := s.Evaluate(sp, ctx); got != 15 {
		t.Errorf("contribution = %f, want 15", got)
	}
}

func TestInitialCostScorer_OneOver(t *testing.T) {
	sp := &species.Species{InitialCost: 3}
	ctx := scoring.NewContext(&scoring.Preferences{InitialCostMax: intp(2)}, scoring.DefaultWeights())

	s := &scoring.InitialCostScorer{DefaultWeight: 15}
	got := s.Evaluate(sp, ctx)
	want := 33.0 / 100 * 15
	if got != want {
		t.Errorf("contribution = %f, want %f", got, want)
	}
}

func TestInitialCostScorer_FarOverBudget(t *testing.T) {
	// Grade 4 against a max of 2: two grades over means sub-score 0.
	sp := &species.Species{InitialCost: 4}
	ctx := scoring.NewContext(&scoring.Preferences{InitialCostMax: intp(2)}, scoring.DefaultWeights())

	s := &scoring.InitialCostScorer{DefaultWeight: 15}
	if got := s.Evaluate(sp, ctx); got != 0 {
		t.Errorf("contribution = %f, want 0", got)
	}

	reasons := ctx.Reasons(2)
	if len(reasons) != 1 || !strings.Contains(reasons[0], "significantly exceeds") {
		t.Errorf("reasons = %v, want budget-exceeded reason", reasons)
	}

	// The zero contribution is still recorded for the breakdown.
	contribs := ctx.TopContributions(5)
	if len(contribs) != 1 || contribs[0].Key != scoring.KeyInitialCost || contribs[0].Amount != 0 {
		t.Errorf("contributions = %v", contribs)
	}
}
