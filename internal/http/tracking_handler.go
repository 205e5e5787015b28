package http

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/mailfleet/mailfleet/internal/domain"
	"github.com/mailfleet/mailfleet/pkg/botdetection"
	"github.com/mailfleet/mailfleet/pkg/logger"
)

// transparentGIF is the 1×1 transparent pixel served by the open endpoint.
var transparentGIF = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x01, 0x00, 0x01, 0x00, 0x80, 0x00,
	0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0x21, 0xf9, 0x04, 0x01, 0x00,
	0x00, 0x00, 0x00, 0x2c, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00,
	0x00, 0x02, 0x02, 0x44, 0x01, 0x00, 0x3b,
}

// TrackingHandler serves the public open-pixel and click-redirect endpoints
// under /t/{token}/. Events from bot user agents are dropped; the pixel and
// the redirect still work so the recipient experience never changes.
type TrackingHandler struct {
	tokens domain.TrackingTokenService
	logger logger.Logger
}

// NewTrackingHandler creates a new tracking handler.
func NewTrackingHandler(tokens domain.TrackingTokenService, logger logger.Logger) *TrackingHandler {
	return &TrackingHandler{
		tokens: tokens,
		logger: logger,
	}
}

// RegisterRoutes registers the tracking routes.
func (h *TrackingHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/t/", h.handleTracking)
}

// handleTracking dispatches /t/{token}/open.gif and /t/{token}/c/{index}.
func (h *TrackingHandler) handleTracking(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/t/"), "/")
	if len(parts) < 2 || parts[0] == "" {
		http.NotFound(w, r)
		return
	}
	token := parts[0]

	switch {
	case len(parts) == 2 && parts[1] == "open.gif":
		h.handleOpen(w, r, token)
	case len(parts) == 3 && parts[1] == "c":
		h.handleClick(w, r, token, parts[2])
	default:
		http.NotFound(w, r)
	}
}

func (h *TrackingHandler) handleOpen(w http.ResponseWriter, r *http.Request, token string) {
	if _, err := h.tokens.GetTokenDetails(r.Context(), token); err != nil {
		if !errors.Is(err, domain.ErrTokenNotFound) {
			h.logger.WithField("error", err.Error()).Error("Failed to resolve tracking token")
		}
		// Unknown tokens still get the pixel; a 404 would leak which
		// addresses exist.
		h.writeGIF(w)
		return
	}

	userAgent := r.UserAgent()
	if !botdetection.IsBotUserAgent(userAgent) {
		event := &domain.TrackingEvent{
			Token:     token,
			EventType: domain.TrackingEventOpen,
			UserAgent: userAgent,
		}
		if err := h.tokens.RecordEvent(r.Context(), event); err != nil {
			h.logger.WithField("token", token).
				Error("Failed to record open event: " + err.Error())
		}
	}

	h.writeGIF(w)
}

func (h *TrackingHandler) handleClick(w http.ResponseWriter, r *http.Request, token, rawIndex string) {
	index, err := strconv.Atoi(rawIndex)
	if err != nil || index < 0 {
		WriteJSONError(w, "Invalid link index", http.StatusBadRequest)
		return
	}

	target := r.URL.Query().Get("url")
	if !isSafeRedirect(target) {
		WriteJSONError(w, "Invalid redirect url", http.StatusBadRequest)
		return
	}

	if _, err := h.tokens.GetTokenDetails(r.Context(), token); err == nil {
		userAgent := r.UserAgent()
		if !botdetection.IsBotUserAgent(userAgent) {
			event := &domain.TrackingEvent{
				Token:     token,
				EventType: domain.TrackingEventClick,
				LinkIndex: &index,
				URL:       &target,
				UserAgent: userAgent,
			}
			if recordErr := h.tokens.RecordEvent(r.Context(), event); recordErr != nil {
				h.logger.WithField("token", token).
					Error("Failed to record click event: " + recordErr.Error())
			}
		}
	} else if !errors.Is(err, domain.ErrTokenNotFound) {
		h.logger.WithField("error", err.Error()).Error("Failed to resolve tracking token")
	}

	// The recipient lands on their link whether or not the event recorded.
	http.Redirect(w, r, target, http.StatusFound)
}

// isSafeRedirect accepts only absolute http(s) URLs, rejecting scheme-relative
// and javascript: targets outright.
func isSafeRedirect(target string) bool {
	if target == "" {
		return false
	}
	u, err := url.Parse(target)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func (h *TrackingHandler) writeGIF(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "image/gif")
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(transparentGIF)
}
