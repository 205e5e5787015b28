package http

import (
	"net/http"

	"github.com/mailfleet/mailfleet/internal/domain"
	"github.com/mailfleet/mailfleet/pkg/logger"
)

// QueueHandler exposes the deferred-send queue: an on-demand drain and a
// status-filtered listing.
type QueueHandler struct {
	processor domain.QueueProcessorService
	queueRepo domain.QueueRepository
	logger    logger.Logger
}

// NewQueueHandler creates a new queue handler.
func NewQueueHandler(processor domain.QueueProcessorService, queueRepo domain.QueueRepository, logger logger.Logger) *QueueHandler {
	return &QueueHandler{
		processor: processor,
		queueRepo: queueRepo,
		logger:    logger,
	}
}

// RegisterRoutes registers the queue routes.
func (h *QueueHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/queue.drain", h.handleDrain)
	mux.HandleFunc("/api/queue.list", h.handleList)
}

func (h *QueueHandler) handleDrain(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	processed, failed, err := h.processor.Drain(r.Context())
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Queue drain failed")
		WriteJSONError(w, "Queue drain failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{
		"processed": processed,
		"failed":    failed,
	})
}

func (h *QueueHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	status := domain.QueueStatus(r.URL.Query().Get("status"))
	if status == "" {
		status = domain.QueueStatusPending
	}
	switch status {
	case domain.QueueStatusPending, domain.QueueStatusSent, domain.QueueStatusFailed:
	default:
		WriteJSONError(w, "Invalid queue status", http.StatusBadRequest)
		return
	}

	entries, err := h.queueRepo.ListByStatus(r.Context(), status)
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list queue entries")
		WriteJSONError(w, "Failed to list queue entries", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"entries": entries,
	})
}
