package http

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/mailfleet/mailfleet/pkg/logger"
)

// RootHandler serves the service banner and the health endpoint.
type RootHandler struct {
	db      *sql.DB
	logger  logger.Logger
	version string
}

// NewRootHandler creates a new root handler.
func NewRootHandler(db *sql.DB, logger logger.Logger, version string) *RootHandler {
	return &RootHandler{
		db:      db,
		logger:  logger,
		version: version,
	}
}

// RegisterRoutes registers the root routes.
func (h *RootHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", h.handleRoot)
	mux.HandleFunc("/health", h.handleHealth)
}

func (h *RootHandler) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"service": "mailfleet",
		"version": h.version,
	})
}

// handleHealth reports liveness including a database ping.
func (h *RootHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.WithField("error", err.Error()).Error("Health check database ping failed")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"error":  "database unreachable",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": h.version,
	})
}
