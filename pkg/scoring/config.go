package scoring

// DefaultCategoryWeight applies to each matched category unless the
// request carries a per-category override.
const DefaultCategoryWeight = 10

// DefaultWeights returns the default per-attribute weight table.
// The category weight is handled separately and is not part of the
// normalization denominator.
func DefaultWeights() map[string]int {
	return map[string]int{
		KeyDifficulty:          20,
		KeyInitialCost:         15,
		KeyTemperatureHumidity: 10,
		KeyActivityPattern:     10,
		KeyDietType:            5,
		KeyFeedingFrequency:    10,
		KeyHandling:            10,
		KeyEnclosureSize:       10,
		KeyAdultSize:           5,
		KeyAppearanceTags:      5,
		KeyPurpose:             10,
	}
}

// MergeWeights overlays operator overrides onto the default table.
// Used at engine construction; request-level custom weights replace the
// table instead of merging.
func MergeWeights(overrides map[string]int) map[string]int {
	weights := DefaultWeights()
	for key, w := range overrides {
		weights[key] = w
	}
	return weights
}
