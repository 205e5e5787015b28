package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/mailfleet/mailfleet/internal/domain"
	"github.com/mailfleet/mailfleet/pkg/logger"
)

// TrackingTokenService mints opaque per-(campaign, recipient) tokens and
// records open and click events against them.
type TrackingTokenService struct {
	trackingRepo domain.TrackingRepository
	logger       logger.Logger
}

// NewTrackingTokenService creates a tracking token service.
func NewTrackingTokenService(trackingRepo domain.TrackingRepository, log logger.Logger) *TrackingTokenService {
	return &TrackingTokenService{trackingRepo: trackingRepo, logger: log}
}

// newToken returns 16 bytes of randomness as an URL-safe string.
func newToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// GetOrCreateToken returns the token for the pair, minting one if needed.
// Concurrent callers converge on a single token: a lost insert race falls
// back to re-reading the winner's row.
func (s *TrackingTokenService) GetOrCreateToken(ctx context.Context, campaignID int64, recipientEmail string) (string, error) {
	existing, err := s.trackingRepo.GetToken(ctx, campaignID, recipientEmail)
	if err == nil {
		return existing.Token, nil
	}
	if err != domain.ErrTokenNotFound {
		return "", fmt.Errorf("failed to look up tracking token: %w", err)
	}

	token, err := newToken()
	if err != nil {
		return "", err
	}

	inserted, err := s.trackingRepo.InsertToken(ctx, &domain.TrackingToken{
		Token:          token,
		CampaignID:     campaignID,
		RecipientEmail: recipientEmail,
	})
	if err != nil {
		return "", fmt.Errorf("failed to store tracking token: %w", err)
	}
	if inserted {
		return token, nil
	}

	// Lost the race; the winner's token is now in place.
	winner, err := s.trackingRepo.GetToken(ctx, campaignID, recipientEmail)
	if err != nil {
		return "", fmt.Errorf("failed to re-read tracking token: %w", err)
	}
	return winner.Token, nil
}

// GetTokenDetails resolves a token back to its campaign and recipient.
func (s *TrackingTokenService) GetTokenDetails(ctx context.Context, token string) (*domain.TrackingToken, error) {
	return s.trackingRepo.GetByToken(ctx, token)
}

// RecordEvent appends an open or click event.
func (s *TrackingTokenService) RecordEvent(ctx context.Context, event *domain.TrackingEvent) error {
	return s.trackingRepo.RecordEvent(ctx, event)
}
