package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mailfleet/mailfleet/internal/domain"
	"github.com/mailfleet/mailfleet/pkg/logger"
)

// AccountHandler handles sender account API endpoints. Provider configs come
// in as plaintext JSON, are sealed by the account service, and only redacted
// views ever go back out.
type AccountHandler struct {
	service domain.AccountService
	logger  logger.Logger
}

// NewAccountHandler creates a new account handler.
func NewAccountHandler(service domain.AccountService, logger logger.Logger) *AccountHandler {
	return &AccountHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the account routes.
func (h *AccountHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/accounts.create", h.handleCreate)
	mux.HandleFunc("/api/accounts.update", h.handleUpdate)
	mux.HandleFunc("/api/accounts.delete", h.handleDelete)
	mux.HandleFunc("/api/accounts.list", h.handleList)
	mux.HandleFunc("/api/accounts.verify", h.handleVerify)
}

type accountRequest struct {
	ID           int64                  `json:"id,omitempty"`
	Name         string                 `json:"name"`
	ProviderKind domain.ProviderKind    `json:"provider_kind"`
	Config       *domain.ProviderConfig `json:"config"`
	DailyCap     int                    `json:"daily_cap"`
	CampaignCap  int                    `json:"campaign_cap"`
	Priority     int                    `json:"priority"`
	Enabled      bool                   `json:"enabled"`
}

func (r *accountRequest) account() *domain.SenderAccount {
	return &domain.SenderAccount{
		ID:           r.ID,
		Name:         r.Name,
		ProviderKind: r.ProviderKind,
		DailyCap:     r.DailyCap,
		CampaignCap:  r.CampaignCap,
		Priority:     r.Priority,
		Enabled:      r.Enabled,
	}
}

func (h *AccountHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req accountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Config == nil {
		WriteJSONError(w, "config is required", http.StatusBadRequest)
		return
	}

	redacted, err := h.service.Create(r.Context(), req.account(), req.Config)
	if err != nil {
		var vErr domain.ValidationError
		if errors.As(err, &vErr) {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to create account")
		WriteJSONError(w, "Failed to create account", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"account": redacted,
	})
}

func (h *AccountHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req accountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.ID < 1 {
		WriteJSONError(w, "Invalid account id", http.StatusBadRequest)
		return
	}
	if req.Config == nil {
		WriteJSONError(w, "config is required", http.StatusBadRequest)
		return
	}

	redacted, err := h.service.Update(r.Context(), req.account(), req.Config)
	if err != nil {
		var vErr domain.ValidationError
		if errors.As(err, &vErr) {
			WriteJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		if errors.Is(err, domain.ErrAccountNotFound) {
			WriteJSONError(w, "Account not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to update account")
		WriteJSONError(w, "Failed to update account", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"account": redacted,
	})
}

func (h *AccountHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID < 1 {
		WriteJSONError(w, "Invalid account id", http.StatusBadRequest)
		return
	}

	if err := h.service.Delete(r.Context(), req.ID); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			WriteJSONError(w, "Account not found", http.StatusNotFound)
			return
		}
		h.logger.WithField("error", err.Error()).Error("Failed to delete account")
		WriteJSONError(w, "Failed to delete account", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *AccountHandler) handleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	accounts, err := h.service.List(r.Context())
	if err != nil {
		h.logger.WithField("error", err.Error()).Error("Failed to list accounts")
		WriteJSONError(w, "Failed to list accounts", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"accounts": accounts,
	})
}

// handleVerify builds the account's provider from its decrypted config and
// checks the credentials against the live service.
func (h *AccountHandler) handleVerify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		ID int64 `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID < 1 {
		WriteJSONError(w, "Invalid account id", http.StatusBadRequest)
		return
	}

	if err := h.service.Verify(r.Context(), req.ID); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			WriteJSONError(w, "Account not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"verified": false,
			"error":    err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"verified": true})
}
