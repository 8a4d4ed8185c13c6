package api

import (
	"fmt"
	"net/http"
)

func (h *Handler) handleGetSpecies(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	_, table := h.snapshot()
	sp := table.Lookup(name)
	if sp == nil {
		writeError(w, http.StatusNotFound, "SPECIES_NOT_FOUND",
			fmt.Sprintf("species not found: %s", name), nil)
		return
	}

	writeJSON(w, http.StatusOK, sp)
}
