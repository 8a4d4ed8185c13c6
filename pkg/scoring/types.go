// Package scoring implements the HerpMatch preference-matching engine.
// It scores every species against a keeper's preferences, producing
// normalized 0-100 match scores with explainable per-attribute breakdowns.
package scoring

import (
	"github.com/herpmatch/herpmatch/pkg/species"
)

// PolicyVersion identifies the scoring rule set reflected in results.
const PolicyVersion = "v1.0"

// Attribute keys. These identify weights, contributions, and breakdown
// entries across the engine, API, and configuration.
const (
	KeyDifficulty          = "difficulty"
	KeyInitialCost         = "initial_cost"
	KeyTemperatureHumidity = "temperature_humidity"
	KeyActivityPattern     = "activity_pattern"
	KeyDietType            = "diet_type"
	KeyFeedingFrequency    = "feeding_frequency"
	KeyHandling            = "handling"
	KeyEnclosureSize       = "enclosure_size"
	KeyAdultSize           = "adult_size"
	KeyAppearanceTags      = "appearance_tags"
	KeyPurpose             = "purpose"
	KeyCategory            = "category"
)

// Preferences is the keeper's input to a recommendation request.
// Categories is required; every other field is optional and an absent
// field excludes its attribute from scoring entirely.
// The API layer validates shapes and ranges before the engine sees this.
type Preferences struct {
	Categories      []species.Category       `json:"categories" yaml:"categories"`
	CategoryWeights map[species.Category]int `json:"category_weights,omitempty" yaml:"category_weights"`

	Difficulty          *int                    `json:"difficulty,omitempty" yaml:"difficulty"`                     // exact target, 1-5
	InitialCostMax      *int                    `json:"initial_cost_max,omitempty" yaml:"initial_cost_max"`         // max threshold, 1-5
	ActivityPattern     species.ActivityPattern `json:"activity_pattern,omitempty" yaml:"activity_pattern"`         // exact target
	DietType            species.DietType        `json:"diet_type,omitempty" yaml:"diet_type"`                       // exact target
	FeedingFrequencyMax *int                    `json:"feeding_frequency_max,omitempty" yaml:"feeding_frequency_max"` // max preferred, 1-5
	HandlingMin         *int                    `json:"handling_min,omitempty" yaml:"handling_min"`                 // min preferred, 1-5
	EnclosureSizeMax    *int                    `json:"enclosure_size_max,omitempty" yaml:"enclosure_size_max"`     // max threshold, 1-3
	AppearanceTags      []string                `json:"appearance_tags,omitempty" yaml:"appearance_tags"`           // desired tags
	Purpose             species.Purpose         `json:"purpose,omitempty" yaml:"purpose"`                           // exact target

	// CustomWeights replaces the default weight table entirely when non-empty.
	CustomWeights map[string]int `json:"custom_weights,omitempty" yaml:"custom_weights"`
}

// Options controls result shaping for a recommendation request.
type Options struct {
	TopN           int   `json:"top_n,omitempty" yaml:"top_n"`
	IncludeReasons *bool `json:"include_reasons,omitempty" yaml:"include_reasons"`
}

// Contribution is one attribute's accumulated weighted contribution.
type Contribution struct {
	Key    string  `json:"key"`
	Amount float64 `json:"amount"`
}

// ResultEntry is one recommended species in a result list.
type ResultEntry struct {
	Name             string           `json:"name"`
	Category         species.Category `json:"category"`
	Purpose          species.Purpose  `json:"purpose,omitempty"`
	PhotoURL         string           `json:"photo_url,omitempty"`
	PhotoPageURL     string           `json:"photo_page_url,omitempty"`
	MatchScore       float64          `json:"match_score"` // rounded to 1 decimal
	InitialCostGrade int              `json:"initial_cost_grade"`
	MonthlyCostGrade int              `json:"monthly_cost_grade"`
	CareSummary      string           `json:"care_summary"`
	MatchReasons     []string         `json:"match_reasons,omitempty"`     // at most 2, evaluation order
	TopContributions []Contribution   `json:"top_contributions,omitempty"` // at most 5, descending
}

// Recommendation is the engine's result envelope.
type Recommendation struct {
	RequestID            string        `json:"request_id"`
	DatasetVersion       string        `json:"dataset_version"`
	TopN                 int           `json:"top_n"`
	Results              []ResultEntry `json:"results"`
	ScoringPolicyVersion string        `json:"scoring_policy_version"`
}
