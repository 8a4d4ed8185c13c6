package scoring

import (
	"fmt"
	"math"

	"github.com/herpmatch/herpmatch/pkg/species"
)

// difficultyTexts keys care summary openings by difficulty grade.
var difficultyTexts = map[int]string{
	1: "Suitable for complete beginners",
	2: "Approachable for beginners",
	3: "Best suited to intermediate keepers",
	4: "Best suited to advanced keepers",
	5: "Expert-level care requirements",
}

// CareSummary generates a short fixed-template care description from the
// species' difficulty grade and activity pattern.
func CareSummary(sp *species.Species) string {
	text, ok := difficultyTexts[sp.Difficulty]
	if !ok {
		text = "Moderate care requirements"
	}

	activity := "active mainly at night"
	if sp.ActivityPattern == species.ActivityDiurnal {
		activity = "active mainly during the day"
	}

	return fmt.Sprintf("%s. This species is %s.", text, activity)
}

// MonthlyCostGrade derives an estimated monthly upkeep grade from
// feeding workload, climate-control demand, and adult size. It does not
// depend on user preferences.
//
// cost_score = 0.4*feeding + 0.4*temperature_humidity + 0.2*(adult_size*1.7)
//
// The score is rounded half-to-even, then clamped to [1, 5].
func MonthlyCostGrade(sp *species.Species) int {
	costScore := 0.4*float64(sp.FeedingFrequency) +
		0.4*float64(sp.TemperatureHumidity) +
		0.2*(float64(sp.AdultSize)*1.7)

	grade := int(math.RoundToEven(costScore))
	if grade < 1 {
		grade = 1
	}
	if grade > 5 {
		grade = 5
	}
	return grade
}

// round1 rounds to one decimal place for display, half-to-even to match
// the cost grade rounding policy.
func round1(v float64) float64 {
	return math.RoundToEven(v*10) / 10
}
