package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/mailfleet/mailfleet/internal/domain"
	"github.com/mailfleet/mailfleet/pkg/logger"
)

// RecurringHandler handles recurring campaign API endpoints.
type RecurringHandler struct {
	repo   domain.RecurringRepository
	logger logger.Logger
}

// NewRecurringHandler creates a new recurring campaign handler.
func NewRecurringHandler(repo domain.RecurringRepository, logger logger.Logger) *RecurringHandler {
	return &RecurringHandler{
		repo:   repo,
		logger: logger,
	}
}

// RegisterRoutes registers the recurring campaign routes.
func (h *RecurringHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/recurring.create", h.handleCreate)
	mux.HandleFunc("/api/recurring.update", h.handleUpdate)
	mux.HandleFunc("/api/recurring.delete", h.handleDelete)
	mux.HandleFunc("/api/recurring.list", h.handleList)
}

func (h *RecurringHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var rc domain.RecurringCampaign
	if err := json.NewDecoder(r.Body).Decode(&rc); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := rc.Validate(); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	nextRun, err := rc.NextRun(time.Now().UTC())
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	rc.NextRunAt = nextRun

	if err := h.repo.Create(r.Context(), &rc); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to create recurring campaign")
		WriteJSONError(w, "Failed to create recurring campaign", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"recurring": &rc,
	})
}

func (h *RecurringHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var rc domain.RecurringCampaign
	if err := json.NewDecoder(r.Body).Decode(&rc); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if rc.ID < 1 {
		WriteJSONError(w, "Invalid recurring campaign id", http.StatusBadRequest)
		return
	}
	if err := rc.Validate(); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// The schedule may have changed; recompute the next fire.
	nextRun, err := rc.NextRun(time.Now().UTC())
	if err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	rc.NextRunAt = nextRun

	if err := h.repo.Update(r.Context(), &rc); err != nil {
		if errors.Is(err, domain.ErrRecurringNotFound) {
			WriteJSONError(w, "Recurring campaign not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to update recurring campaign")
		WriteJSONError(w, "Failed to update recurring campaign", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"recurring": &rc,
	})
}

func (h *RecurringHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID < 1 {
		WriteJSONError(w, "Invalid recurring campaign id", http.StatusBadRequest)
		return
	}

	if err := h.repo.Delete(r.Context(), req.ID); err != nil {
		if errors.Is(err, domain.ErrRecurringNotFound) {
			WriteJSONError(w, "Recurring campaign not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to delete recurring campaign")
		WriteJSONError(w, "Failed to delete recurring campaign", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *RecurringHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	recurring, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list recurring campaigns")
		WriteJSONError(w, "Failed to list recurring campaigns", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"recurring": recurring,
	})
}
