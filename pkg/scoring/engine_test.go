package scoring_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/herpmatch/herpmatch/pkg/dataset"
	"github.com/herpmatch/herpmatch/pkg/scoring"
	"github.com/herpmatch/herpmatch/pkg/species"
)

// makeTable wraps fully-populated species rows in a test table.
func makeTable(rows ...species.Species) *dataset.Table {
	return &dataset.Table{Species: rows, Version: "test"}
}

// testSpecies returns a valid lizard row with every grade at its easiest.
func testSpecies(name string) species.Species {
	return species.Species{
		Name:                name,
		Category:            species.CategoryLizard,
		Difficulty:          1,
		InitialCost:         1,
		AdultSize:           1,
		TemperatureHumidity: 1,
		ActivityPattern:     species.ActivityNocturnal,
		DietType:            species.DietOmnivore,
		FeedingFrequency:    1,
		Handling:            3,
		EnclosureSize:       1,
		Purpose:             species.PurposePet,
	}
}

func lizardPrefs() *scoring.Preferences {
	return &scoring.Preferences{Categories: []species.Category{species.CategoryLizard}}
}

func TestRecommendCategoryFilter(t *testing.T) {
	gecko := testSpecies("Crested Gecko")
	gecko.Category = species.CategoryGecko
	engine := scoring.NewEngine(makeTable(testSpecies("Bearded Dragon"), gecko))

	rec, err := engine.Recommend(lizardPrefs(), nil)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(rec.Results) != 1 {
		t.Fatalf("got %d results, want 1", len(rec.Results))
	}
	if rec.Results[0].Name != "Bearded Dragon" {
		t.Errorf("got %q", rec.Results[0].Name)
	}
}

func TestRecommendOrderingAndBounds(t *testing.T) {
	exact := testSpecies("Exact")
	exact.Difficulty = 3
	near := testSpecies("Near")
	near.Difficulty = 2
	far := testSpecies("Far")
	far.Difficulty = 5
	engine := scoring.NewEngine(makeTable(far, exact, near))

	prefs := lizardPrefs()
	prefs.Difficulty = intp(3)
	rec, err := engine.Recommend(prefs, nil)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(rec.Results) != 3 {
		t.Fatalf("got %d results, want 3", len(rec.Results))
	}

	want := []string{"Exact", "Near", "Far"}
	for i, name := range want {
		if rec.Results[i].Name != name {
			t.Errorf("rank %d = %q, want %q", i, rec.Results[i].Name, name)
		}
	}
	for _, r := range rec.Results {
		if r.MatchScore <= 0 || r.MatchScore > 100 {
			t.Errorf("%s: score %v outside (0,100]", r.Name, r.MatchScore)
		}
	}
	for i := 1; i < len(rec.Results); i++ {
		if rec.Results[i].MatchScore > rec.Results[i-1].MatchScore {
			t.Errorf("results not in descending score order")
		}
	}
}

func TestRecommendTieBreakKeepsRowOrder(t *testing.T) {
	first := testSpecies("First")
	second := testSpecies("Second")
	engine := scoring.NewEngine(makeTable(first, second))

	rec, err := engine.Recommend(lizardPrefs(), nil)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(rec.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(rec.Results))
	}
	if rec.Results[0].Name != "First" || rec.Results[1].Name != "Second" {
		t.Errorf("tie did not preserve dataset order: %q, %q",
			rec.Results[0].Name, rec.Results[1].Name)
	}
}

func TestRecommendTopN(t *testing.T) {
	engine := scoring.NewEngine(makeTable(
		testSpecies("A"), testSpecies("B"), testSpecies("C")))

	rec, err := engine.Recommend(lizardPrefs(), &scoring.Options{TopN: 2})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if rec.TopN != 2 {
		t.Errorf("TopN = %d, want 2", rec.TopN)
	}
	if len(rec.Results) != 2 {
		t.Errorf("got %d results, want 2", len(rec.Results))
	}

	// Default top N is 10 and does not pad short result sets.
	rec, err = engine.Recommend(lizardPrefs(), nil)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if rec.TopN != 10 {
		t.Errorf("TopN = %d, want 10", rec.TopN)
	}
	if len(rec.Results) != 3 {
		t.Errorf("got %d results, want 3", len(rec.Results))
	}
}

func TestRecommendZeroSumCustomWeights(t *testing.T) {
	engine := scoring.NewEngine(makeTable(testSpecies("A")))

	prefs := lizardPrefs()
	prefs.Difficulty = intp(1)
	prefs.CustomWeights = map[string]int{
		scoring.KeyDifficulty:          0,
		scoring.KeyTemperatureHumidity: 0,
	}
	rec, err := engine.Recommend(prefs, nil)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(rec.Results) != 0 {
		t.Errorf("got %d results, want 0 for a zero-sum weight table", len(rec.Results))
	}
}

func TestRecommendCustomWeightNullifiesAttribute(t *testing.T) {
	engine := scoring.NewEngine(makeTable(testSpecies("A")))

	prefs := lizardPrefs()
	prefs.Difficulty = intp(1)
	prefs.CustomWeights = map[string]int{
		scoring.KeyDifficulty:          0,
		scoring.KeyTemperatureHumidity: 10,
	}
	rec, err := engine.Recommend(prefs, nil)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(rec.Results) != 1 {
		t.Fatalf("got %d results, want 1", len(rec.Results))
	}
	for _, c := range rec.Results[0].TopContributions {
		if c.Key == scoring.KeyDifficulty {
			t.Errorf("zero-weighted attribute still contributed %v", c.Amount)
		}
	}
}

func TestRecommendDifficultyContribution(t *testing.T) {
	sp := testSpecies("Bearded Dragon")
	sp.Difficulty = 3
	engine := scoring.NewEngine(makeTable(sp))

	prefs := lizardPrefs()
	prefs.Difficulty = intp(3)
	rec, err := engine.Recommend(prefs, nil)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(rec.Results) != 1 {
		t.Fatalf("got %d results, want 1", len(rec.Results))
	}

	found := false
	for _, c := range rec.Results[0].TopContributions {
		if c.Key == scoring.KeyDifficulty {
			found = true
			if c.Amount != 20 {
				t.Errorf("difficulty contribution = %v, want 20", c.Amount)
			}
		}
	}
	if !found {
		t.Errorf("difficulty missing from top contributions: %+v",
			rec.Results[0].TopContributions)
	}
}

func TestRecommendReasonsAndContributionLimits(t *testing.T) {
	engine := scoring.NewEngine(makeTable(testSpecies("A")))

	prefs := lizardPrefs()
	prefs.Difficulty = intp(1)
	prefs.InitialCostMax = intp(1)
	prefs.FeedingFrequencyMax = intp(1)
	prefs.HandlingMin = intp(1)
	prefs.EnclosureSizeMax = intp(1)
	prefs.ActivityPattern = species.ActivityNocturnal
	prefs.DietType = species.DietOmnivore
	prefs.Purpose = species.PurposePet
	rec, err := engine.Recommend(prefs, nil)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	r := rec.Results[0]
	if len(r.MatchReasons) != 2 {
		t.Errorf("got %d reasons, want 2", len(r.MatchReasons))
	}
	if len(r.TopContributions) != 5 {
		t.Errorf("got %d contributions, want 5", len(r.TopContributions))
	}
	for i := 1; i < len(r.TopContributions); i++ {
		if r.TopContributions[i].Amount > r.TopContributions[i-1].Amount {
			t.Errorf("contributions not in descending order: %+v", r.TopContributions)
		}
	}
}

func TestRecommendWithoutReasons(t *testing.T) {
	engine := scoring.NewEngine(makeTable(testSpecies("A")))

	include := false
	prefs := lizardPrefs()
	prefs.Difficulty = intp(1)
	rec, err := engine.Recommend(prefs, &scoring.Options{IncludeReasons: &include})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	r := rec.Results[0]
	if r.MatchReasons != nil || r.TopContributions != nil {
		t.Errorf("reasons present despite include_reasons=false: %+v", r)
	}
}

func TestRecommendIdempotent(t *testing.T) {
	engine := scoring.NewEngine(makeTable(
		testSpecies("A"), testSpecies("B"), testSpecies("C")))

	prefs := lizardPrefs()
	prefs.Difficulty = intp(2)
	first, err := engine.Recommend(prefs, nil)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	second, err := engine.Recommend(prefs, nil)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if !reflect.DeepEqual(first.Results, second.Results) {
		t.Errorf("identical requests produced different results")
	}
	if first.RequestID == second.RequestID {
		t.Errorf("request IDs should differ between calls")
	}
}

func TestRecommendEnvelope(t *testing.T) {
	engine := scoring.NewEngine(makeTable(testSpecies("A")))

	rec, err := engine.Recommend(lizardPrefs(), nil)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if !strings.HasPrefix(rec.RequestID, "req_") {
		t.Errorf("RequestID = %q", rec.RequestID)
	}
	if rec.DatasetVersion != "test" {
		t.Errorf("DatasetVersion = %q", rec.DatasetVersion)
	}
	if rec.ScoringPolicyVersion != scoring.PolicyVersion {
		t.Errorf("ScoringPolicyVersion = %q", rec.ScoringPolicyVersion)
	}
}

func TestRecommendNilPreferences(t *testing.T) {
	engine := scoring.NewEngine(makeTable(testSpecies("A")))
	if _, err := engine.Recommend(nil, nil); err == nil {
		t.Fatal("expected error for nil preferences")
	}
}
