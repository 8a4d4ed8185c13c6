package scoring

import "github.com/herpmatch/herpmatch/pkg/species"

// TemperatureHumidityScorer scores climate-control demand. There is no
// user preference for this attribute; an undemanding species always
// scores higher (1 -> 100%, 5 -> 20%).
type TemperatureHumidityScorer struct {
	DefaultWeight int
}

func (s *TemperatureHumidityScorer) Key() string  { return KeyTemperatureHumidity }
func (s *TemperatureHumidityScorer) Name() string { return "Temperature and humidity demand" }

func (s *TemperatureHumidityScorer) Evaluate(sp *species.Species, ctx *Context) float64 {
	weight := ctx.Weight(KeyTemperatureHumidity, s.DefaultWeight)
	if weight == 0 {
		return 0
	}

	score := clampScore(100 - float64(sp.TemperatureHumidity-1)*20)

	contribution := score / 100 * float64(weight)
	ctx.AddContribution(KeyTemperatureHumidity, contribution)
	return contribution
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
