package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/mailfleet/mailfleet/internal/domain"
	"github.com/mailfleet/mailfleet/pkg/logger"
)

// SequenceHandler handles drip sequence API endpoints.
type SequenceHandler struct {
	repo   domain.SequenceRepository
	logger logger.Logger
}

// NewSequenceHandler creates a new sequence handler.
func NewSequenceHandler(repo domain.SequenceRepository, logger logger.Logger) *SequenceHandler {
	return &SequenceHandler{
		repo:   repo,
		logger: logger,
	}
}

// RegisterRoutes registers the sequence routes.
func (h *SequenceHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/sequences.create", h.handleCreate)
	mux.HandleFunc("/api/sequences.enroll", h.handleEnroll)
	mux.HandleFunc("/api/sequences.list", h.handleList)
}

type createSequenceRequest struct {
	Name    string                 `json:"name"`
	Enabled bool                   `json:"enabled"`
	Steps   []*domain.SequenceStep `json:"steps"`
}

func (h *SequenceHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req createSequenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		WriteJSONError(w, "sequence name is required", http.StatusBadRequest)
		return
	}
	if len(req.Steps) == 0 {
		WriteJSONError(w, "sequence requires at least one step", http.StatusBadRequest)
		return
	}
	for i, step := range req.Steps {
		step.StepOrder = i
		if err := step.Validate(); err != nil {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	seq := &domain.Sequence{
		Name:    req.Name,
		Enabled: req.Enabled,
	}
	if err := h.repo.CreateSequence(r.Context(), seq, req.Steps); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to create sequence")
		WriteJSONError(w, "Failed to create sequence", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"sequence": seq,
		"steps":    req.Steps,
	})
}

type enrollRequest struct {
	SequenceID     int64          `json:"sequence_id"`
	RecipientEmail string         `json:"recipient_email"`
	RecipientData  domain.JSONMap `json:"recipient_data,omitempty"`
}

// handleEnroll enrolls a recipient at step 0. The first step's delay is
// measured from the enrollment time.
func (h *SequenceHandler) handleEnroll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req enrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.SequenceID < 1 {
		WriteJSONError(w, "Invalid sequence id", http.StatusBadRequest)
		return
	}
	if err := (domain.Recipient{Email: req.RecipientEmail}).Validate(); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	firstStep, err := h.repo.GetStep(r.Context(), req.SequenceID, 0)
	if errors.Is(err, domain.ErrSequenceNotFound) {
		WriteJSONError(w, "Sequence not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to load first sequence step")
		WriteJSONError(w, "Failed to enroll recipient", http.StatusInternalServerError)
		return
	}

	nextSendAt := firstStep.NextSendAt(time.Now().UTC())
	enrollment := &domain.SequenceEnrollment{
		SequenceID:     req.SequenceID,
		RecipientEmail: req.RecipientEmail,
		RecipientData:  req.RecipientData,
		CurrentStep:    0,
		Status:         domain.EnrollmentStatusActive,
		NextSendAt:     &nextSendAt,
	}
	if err := h.repo.Enroll(r.Context(), enrollment); err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to enroll recipient")
		WriteJSONError(w, "Failed to enroll recipient", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"enrollment": enrollment,
	})
}

func (h *SequenceHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sequences, err := h.repo.ListSequences(r.Context())
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list sequences")
		WriteJSONError(w, "Failed to list sequences", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sequences": sequences,
	})
}
