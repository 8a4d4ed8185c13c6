package api

import (
	"net/http"

	"github.com/herpmatch/herpmatch/pkg/species"
)

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_, table := h.snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"server":      "HerpMatch API",
		"data_loaded": table != nil && table.Len() > 0,
	})
}

func (h *Handler) handleMetadata(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"allowed_categories":        species.Categories(),
		"allowed_activity_patterns": species.ActivityPatterns(),
		"allowed_diet_types":        species.DietTypes(),
		"allowed_purposes":          species.Purposes(),
		"grade_ranges": map[string]map[string]int{
			"five_level":  {"min": 1, "max": 5},
			"three_level": {"min": 1, "max": 3},
		},
		"importance_levels": []int{0, 1, 5, 10, 15, 20},
	})
}

func (h *Handler) handleDatasetInfo(w http.ResponseWriter, r *http.Request) {
	_, table := h.snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"dataset_version": table.Version,
		"total_species":   table.Len(),
		"categories":      table.CategoryCounts(),
		"warnings":        table.Warnings,
	})
}
