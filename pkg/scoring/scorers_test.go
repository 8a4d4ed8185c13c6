package scoring_test

import (
	"testing"

	"github.com/herpmatch/herpmatch/pkg/scoring"
	"github.com/herpmatch/herpmatch/pkg/species"
)

func TestTemperatureHumidityScorer_LinearDescending(t *testing.T) {
	s := &scoring.TemperatureHumidityScorer{DefaultWeight: 10}
	// 1 -> 100%, 2 -> 80%, ..., 5 -> 20% of weight 10.
	wants := map[int]float64{1: 10, 2: 8, 3: 6, 4: 4, 5: 2}
	for demand, want := range wants {
		ctx := scoring.NewContext(&scoring.Preferences{}, scoring.DefaultWeights())
		sp := &species.Species{TemperatureHumidity: demand}
		if got := s.Evaluate(sp, ctx); got != want {
			t.Errorf("demand %d: contribution = %f, want %f", demand, got, want)
		}
	}
}

func TestAdultSizeScorer_LinearDescending(t *testing.T) {
	s := &scoring.AdultSizeScorer{DefaultWeight: 5}
	wants := map[int]float64{1: 5, 2: 2.5, 3: 0}
	for size, want := range wants {
		ctx := scoring.NewContext(&scoring.Preferences{}, scoring.DefaultWeights())
		sp := &species.Species{AdultSize: size}
		if got := s.Evaluate(sp, ctx); got != want {
			t.Errorf("size %d: contribution = %f, want %f", size, got, want)
		}
	}
}

func TestActivityPatternScorer_ExactMatch(t *testing.T) {
	s := &scoring.ActivityPatternScorer{DefaultWeight: 10}

	sp := &species.Species{ActivityPattern: species.ActivityNocturnal}
	ctx := scoring.NewContext(&scoring.Preferences{ActivityPattern: species.ActivityNocturnal}, scoring.DefaultWeights())
	if got := s.Evaluate(sp, ctx); got != 10 {
		t.Errorf("match contribution = %f, want 10", got)
	}

	ctx = scoring.NewContext(&scoring.Preferences{ActivityPattern: species.ActivityDiurnal}, scoring.DefaultWeights())
	if got := s.Evaluate(sp, ctx); got != 0 {
		t.Errorf("mismatch contribution = %f, want 0", got)
	}
	// Mismatch is still recorded in the breakdown.
	if len(ctx.TopContributions(5)) != 1 {
		t.Errorf("contributions = %v, want recorded zero", ctx.TopContributions(5))
	}
}

func TestFeedingFrequencyScorer_Thresholds(t *testing.T) {
	s := &scoring.FeedingFrequencyScorer{DefaultWeight: 10}
	cases := []struct {
		freq, max int
		want      float64
	}{
		{2, 3, 10},  // at or below: 100%
		{3, 3, 10},  // equal counts as below
		{4, 3, 5},   // one over: 50%
		{5, 3, 2.5}, // two over: 25%
	}
	for _, tc := range cases {
		ctx := scoring.NewContext(&scoring.Preferences{FeedingFrequencyMax: intp(tc.max)}, scoring.DefaultWeights())
		sp := &species.Species{FeedingFrequency: tc.freq}
		if got := s.Evaluate(sp, ctx); got != tc.want {
			t.Errorf("freq %d max %d: contribution = %f, want %f", tc.freq, tc.max, got, tc.want)
		}
	}
}

func TestHandlingScorer_Thresholds(t *testing.T) {
	s := &scoring.HandlingScorer{DefaultWeight: 10}
	cases := []struct {
		handling, min int
		want          float64
	}{
		{5, 3, 10},  // above minimum: 100%
		{3, 3, 10},  // equal satisfies
		{2, 3, 5},   // one short: 50%
		{1, 3, 2.5}, // two short: 25%
	}
	for _, tc := range cases {
		ctx := scoring.NewContext(&scoring.Preferences{HandlingMin: intp(tc.min)}, scoring.DefaultWeights())
		sp := &species.Species{Handling: tc.handling}
		if got := s.Evaluate(sp, ctx); got != tc.want {
			t.Errorf("handling %d min %d: contribution = %f, want %f", tc.handling, tc.min, got, tc.want)
		}
	}
}

func TestEnclosureSizeScorer_AllOrNothing(t *testing.T) {
	s := &scoring.EnclosureSizeScorer{DefaultWeight: 10}

	ctx := scoring.NewContext(&scoring.Preferences{EnclosureSizeMax: intp(2)}, scoring.DefaultWeights())
	if got := s.Evaluate(&species.Species{EnclosureSize: 2}, ctx); got != 10 {
		t.Errorf("fits: contribution = %f, want 10", got)
	}

	ctx = scoring.NewContext(&scoring.Preferences{EnclosureSizeMax: intp(2)}, scoring.DefaultWeights())
	if got := s.Evaluate(&species.Species{EnclosureSize: 3}, ctx); got != 0 {
		t.Errorf("exceeds: contribution = %f, want 0", got)
	}
}

func TestPurposeScorer_BothScoresEighty(t *testing.T) {
	s := &scoring.PurposeScorer{DefaultWeight: 10}

	sp := &species.Species{Purpose: species.PurposeBoth}
	ctx := scoring.NewContext(&scoring.Preferences{Purpose: species.PurposePet}, scoring.DefaultWeights())
	if got := s.Evaluate(sp, ctx); got != 8 {
		t.Errorf("both vs pet: contribution = %f, want 8 (80%% of 10)", got)
	}

	sp = &species.Species{Purpose: species.PurposePet}
	ctx = scoring.NewContext(&scoring.Preferences{Purpose: species.PurposePet}, scoring.DefaultWeights())
	if got := s.Evaluate(sp, ctx); got != 10 {
		t.Errorf("exact: contribution = %f, want 10", got)
	}

	sp = &species.Species{Purpose: species.PurposeOrnamental}
	ctx = scoring.NewContext(&scoring.Preferences{Purpose: species.PurposePet}, scoring.DefaultWeights())
	if got := s.Evaluate(sp, ctx); got != 0 {
		t.Errorf("mismatch: contribution = %f, want 0", got)
	}
}

func TestDietTypeScorer_ExactMatch(t *testing.T) {
	s := &scoring.DietTypeScorer{DefaultWeight: 5}

	sp := &species.Species{DietType: species.DietHerbivore}
	ctx := scoring.NewContext(&scoring.Preferences{DietType: species.DietHerbivore}, scoring.DefaultWeights())
	if got := s.Evaluate(sp, ctx); got != 5 {
		t.Errorf("match contribution = %f, want 5", got)
	}

	ctx = scoring.NewContext(&scoring.Preferences{DietType: species.DietCarnivore}, scoring.DefaultWeights())
	if got := s.Evaluate(sp, ctx); got != 0 {
		t.Errorf("mismatch contribution = %f, want 0", got)
	}
}
