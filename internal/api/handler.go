// Package api implements the HerpMatch REST API: recommendations,
// species lookup, metadata, and dataset administration.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"github.com/herpmatch/herpmatch/pkg/dataset"
	"github.com/herpmatch/herpmatch/pkg/scoring"
)

// ReloadFunc loads a fresh species table, from a file or the catalog.
type ReloadFunc func(ctx context.Context) (*dataset.Table, error)

// Handler is the top-level API handler. The engine pointer is swapped
// atomically on reload; requests in flight keep the engine they started
// with.
type Handler struct {
	mu     sync.RWMutex
	engine *scoring.Engine
	table  *dataset.Table

	weights map[string]int // operator weight overrides, reapplied on reload
	reload  ReloadFunc
	log     *zap.Logger
}

// NewHandler creates an API handler serving the given table.
func NewHandler(table *dataset.Table, weights map[string]int, reload ReloadFunc, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		engine:  scoring.NewEngineWithWeights(table, weights),
		table:   table,
		weights: weights,
		reload:  reload,
		log:     log,
	}
}

// RegisterRoutes registers all API routes on the given ServeMux. The
// admin middleware, if non-nil, wraps the reload endpoint.
func (h *Handler) RegisterRoutes(mux *http.ServeMux, adminAuth func(http.Handler) http.Handler) {
	mux.HandleFunc("POST /api/recommend", h.handleRecommend)
	mux.HandleFunc("GET /api/species/{name}", h.handleGetSpecies)
	mux.HandleFunc("GET /api/metadata", h.handleMetadata)
	mux.HandleFunc("GET /api/dataset/info", h.handleDatasetInfo)
	mux.HandleFunc("GET /api/health", h.handleHealth)

	var reloadHandler http.Handler = http.HandlerFunc(h.handleReload)
	if adminAuth != nil {
		reloadHandler = adminAuth(reloadHandler)
	}
	mux.Handle("POST /api/admin/reload", reloadHandler)
}

// snapshot returns the engine and table consistent with each other.
func (h *Handler) snapshot() (*scoring.Engine, *dataset.Table) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.engine, h.table
}

// swap installs a freshly loaded table and a new engine built from it.
func (h *Handler) swap(table *dataset.Table) {
	engine := scoring.NewEngineWithWeights(table, h.weights)
	h.mu.Lock()
	h.engine = engine
	h.table = table
	h.mu.Unlock()
}

type errorBody struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, code, msg string, details []string) {
	if details == nil {
		details = []string{}
	}
	writeJSON(w, status, map[string]errorBody{"error": {
		Code:    code,
		Message: msg,
		Details: details,
	}})
}
