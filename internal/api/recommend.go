package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/herpmatch/herpmatch/pkg/scoring"
)

type recommendRequest struct {
	Preferences *scoring.Preferences `json:"preferences"`
	Options     *scoring.Options     `json:"options"`
}

func (h *Handler) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "request body must be valid JSON", nil)
		return
	}

	if errs := validatePreferences(req.Preferences); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, "INVALID_INPUT", "invalid preference values", errs)
		return
	}

	engine, _ := h.snapshot()
	rec, err := engine.Recommend(req.Preferences, req.Options)
	if err != nil {
		h.log.Error("recommend failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "recommendation failed", nil)
		return
	}

	h.log.Debug("recommendation served",
		zap.String("request_id", rec.RequestID),
		zap.Int("results", len(rec.Results)))
	writeJSON(w, http.StatusOK, rec)
}

// validatePreferences checks shapes, ranges, and enum values before the
// engine sees the request. Returns one message per problem.
func validatePreferences(p *scoring.Preferences) []string {
	if p == nil {
		return []string{"'preferences' field is required"}
	}

	var errs []string

	if len(p.Categories) == 0 {
		errs = append(errs, "'categories' must contain at least one entry")
	}
	for _, c := range p.Categories {
		if !c.Valid() {
			errs = append(errs, fmt.Sprintf("unknown category %q", string(c)))
		}
	}
	for c, w := range p.CategoryWeights {
		if !c.Valid() {
			errs = append(errs, fmt.Sprintf("unknown category %q in category_weights", string(c)))
		}
		if w < 0 {
			errs = append(errs, fmt.Sprintf("category weight for %q must be >= 0", string(c)))
		}
	}

	grades := []struct {
		name     string
		val      *int
		min, max int
	}{
		{"difficulty", p.Difficulty, 1, 5},
		{"initial_cost_max", p.InitialCostMax, 1, 5},
		{"feeding_frequency_max", p.FeedingFrequencyMax, 1, 5},
		{"handling_min", p.HandlingMin, 1, 5},
		{"enclosure_size_max", p.EnclosureSizeMax, 1, 3},
	}
	for _, g := range grades {
		if g.val != nil && (*g.val < g.min || *g.val > g.max) {
			errs = append(errs, fmt.Sprintf("'%s' must be an integer between %d and %d", g.name, g.min, g.max))
		}
	}

	if !p.ActivityPattern.Valid() {
		errs = append(errs, fmt.Sprintf("unknown activity pattern %q", string(p.ActivityPattern)))
	}
	if !p.DietType.Valid() {
		errs = append(errs, fmt.Sprintf("unknown diet type %q", string(p.DietType)))
	}
	if !p.Purpose.Valid() {
		errs = append(errs, fmt.Sprintf("unknown purpose %q", string(p.Purpose)))
	}

	for key, w := range p.CustomWeights {
		if w < 0 {
			errs = append(errs, fmt.Sprintf("custom weight for %q must be >= 0", key))
		}
	}

	return errs
}
