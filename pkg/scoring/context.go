package scoring

import "sort"

// Context is the per-species scoring accumulator. It carries the active
// preferences and weight map and collects attribute contributions and
// match reasons as scorers run. One Context per species per call; it is
// never shared across species or requests.
type Context struct {
	prefs   *Preferences
	weights map[string]int

	contributions map[string]float64
	order         []string // contribution keys in first-accumulation order
	reasons       []string // append order = evaluation order
}

// NewContext creates a fresh scoring context for one species evaluation.
func NewContext(prefs *Preferences, weights map[string]int) *Context {
	return &Context{
		prefs:         prefs,
		weights:       weights,
		contributions: make(map[string]float64),
	}
}

// Weight returns the active weight for key, falling back to the given
// default when the active map has no entry for it.
func (c *Context) Weight(key string, fallback int) int {
	if w, ok := c.weights[key]; ok {
		return w
	}
	return fallback
}

// AddContribution accumulates a weighted contribution under key.
func (c *Context) AddContribution(key string, amount float64) {
	if _, ok := c.contributions[key]; !ok {
		c.order = append(c.order, key)
	}
	c.contributions[key] += amount
}

// AddReason appends a human-readable match reason. No deduplication.
func (c *Context) AddReason(text string) {
	c.reasons = append(c.reasons, text)
}

// Reasons returns up to n reasons in evaluation order, not by value.
// The first-evaluated attributes win the explanation slots.
func (c *Context) Reasons(n int) []string {
	if len(c.reasons) <= n {
		return c.reasons
	}
	return c.reasons[:n]
}

// TopContributions returns up to n contributions sorted descending by
// amount, ties keeping first-accumulation order. Amounts are rounded to
// one decimal for display.
func (c *Context) TopContributions(n int) []Contribution {
	ranked := make([]Contribution, 0, len(c.order))
	for _, key := range c.order {
		ranked = append(ranked, Contribution{Key: key, Amount: c.contributions[key]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Amount > ranked[j].Amount
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	for i := range ranked {
		ranked[i].Amount = round1(ranked[i].Amount)
	}
	return ranked
}
