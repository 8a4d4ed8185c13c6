package api

import (
	"net/http"

	"go.uber.org/zap"
)

func (h *Handler) handleReload(w http.ResponseWriter, r *http.Request) {
	if h.reload == nil {
		writeError(w, http.StatusServiceUnavailable, "RELOAD_UNAVAILABLE",
			"dataset reloading is not configured", nil)
		return
	}

	table, err := h.reload(r.Context())
	if err != nil {
		h.log.Error("dataset reload failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "RELOAD_FAILED",
			"failed to reload dataset: "+err.Error(), nil)
		return
	}

	h.swap(table)
	h.log.Info("dataset reloaded",
		zap.String("version", table.Version),
		zap.Int("species", table.Len()))

	writeJSON(w, http.StatusOK, map[string]any{
		"status":          "reloaded",
		"dataset_version": table.Version,
		"total_species":   table.Len(),
	})
}
