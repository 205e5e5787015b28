package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mailfleet/mailfleet/internal/domain"
	"github.com/mailfleet/mailfleet/pkg/logger"
)

// CampaignHandler handles campaign API endpoints: the streaming one-shot
// send, scheduling and reads.
type CampaignHandler struct {
	executor  domain.ExecutorService
	campaigns domain.CampaignService
	logger    logger.Logger
}

// NewCampaignHandler creates a new campaign handler.
func NewCampaignHandler(executor domain.ExecutorService, campaigns domain.CampaignService, logger logger.Logger) *CampaignHandler {
	return &CampaignHandler{
		executor:  executor,
		campaigns: campaigns,
		logger:    logger,
	}
}

// RegisterRoutes registers the campaign routes.
func (h *CampaignHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/campaigns.send", h.handleSend)
	mux.HandleFunc("/api/campaigns.schedule", h.handleSchedule)
	mux.HandleFunc("/api/campaigns.list", h.handleList)
	mux.HandleFunc("/api/campaigns.get", h.handleGet)
}

func validateCampaignParams(params *domain.CampaignParams) error {
	if params.Name == "" {
		return domain.NewValidationError("campaign name is required")
	}
	if params.Subject == "" {
		return domain.NewValidationError("campaign subject is required")
	}
	if len(params.Blocks) == 0 {
		return domain.NewValidationError("campaign requires at least one block")
	}
	if len(params.Recipients) == 0 {
		return domain.NewValidationError("campaign requires at least one recipient")
	}
	for _, r := range params.Recipients {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// handleSend runs a campaign and streams its progress as server-sent events.
// The run keeps going if the client disconnects; the outcome is in the
// campaign row and send logs either way.
func (h *CampaignHandler) handleSend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var params domain.CampaignParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validateCampaignParams(&params); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		WriteJSONError(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	// Detached from the request context: a dropped connection must not
	// abort a half-sent campaign.
	ctx := context.WithoutCancel(r.Context())

	h.executor.Run(ctx, &params, func(event domain.ProgressEvent) {
		payload, err := json.Marshal(event)
		if err != nil {
			h.logger.Error(fmt.Sprintf("Failed to marshal progress event: %v", err))
			return
		}
		// Write errors mean the client left; the run continues regardless.
		if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
			return
		}
		flusher.Flush()
	})
}

type scheduleCampaignRequest struct {
	domain.CampaignParams
	ScheduledFor time.Time `json:"scheduled_for"`
}

func (h *CampaignHandler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req scheduleCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validateCampaignParams(&req.CampaignParams); err != nil {
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.ScheduledFor.IsZero() {
		WriteJSONError(w, "scheduled_for is required", http.StatusBadRequest)
		return
	}

	campaign, err := h.campaigns.Schedule(r.Context(), &req.CampaignParams, req.ScheduledFor)
	if err != nil {
		var vErr domain.ValidationError
		if errors.As(err, &vErr) {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to schedule campaign")
		WriteJSONError(w, "Failed to schedule campaign", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"campaign": campaign,
	})
}

func (h *CampaignHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	campaigns, err := h.campaigns.List(r.Context())
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list campaigns")
		WriteJSONError(w, "Failed to list campaigns", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"campaigns": campaigns,
	})
}

func (h *CampaignHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id, ok := queryID(r)
	if !ok {
		WriteJSONError(w, "Invalid campaign id", http.StatusBadRequest)
		return
	}

	campaign, err := h.campaigns.Get(r.Context(), id)
	if errors.Is(err, domain.ErrCampaignNotFound) {
		WriteJSONError(w, "Campaign not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to get campaign")
		WriteJSONError(w, "Failed to get campaign", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"campaign": campaign,
	})
}
