package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mailfleet/mailfleet/internal/domain"
	"github.com/mailfleet/mailfleet/pkg/logger"
)

func newRecurringFixture() (*mockRecurringRepo, *mockTemplateRepo, *mockExecutor, *RecurringDispatcher) {
	recurring := &mockRecurringRepo{}
	templates := &mockTemplateRepo{}
	executor := &mockExecutor{}
	dispatcher := NewRecurringDispatcher(recurring, templates, executor,
		logger.NewLoggerWithLevel("disabled"))
	return recurring, templates, executor, dispatcher
}

func inlineRecurring(id int64) *domain.RecurringCampaign {
	return &domain.RecurringCampaign{
		ID:         id,
		Name:       "weekly digest",
		TemplateID: 99,
		CronExpr:   "0 9 * * 1",
		RecipientSource: domain.RecipientSource{
			Type:       domain.RecipientSourceInline,
			Recipients: domain.RecipientList{{Email: "a@example.com"}},
		},
		TrackOpens: true,
		Enabled:    true,
	}
}

func TestRecurringDispatcher_FiresAndReschedules(t *testing.T) {
	recurring, templates, executor, dispatcher := newRecurringFixture()
	ctx := context.Background()

	rc := inlineRecurring(5)
	recurring.On("ListDue", ctx, mock.AnythingOfType("time.Time")).
		Return([]*domain.RecurringCampaign{rc}, nil)
	templates.On("GetByID", ctx, int64(99)).
		Return(&domain.Template{ID: 99, Subject: "Digest", Blocks: textBlocks()}, nil)
	executor.On("Run", ctx, mock.MatchedBy(func(params *domain.CampaignParams) bool {
		return len(params.Recipients) == 1 &&
			params.Recipients[0].Email == "a@example.com" &&
			params.Subject == "Digest" && // empty row subject falls back to the template
			params.Tracking.TrackOpens
	}), mock.Anything).Return()
	recurring.On("MarkRun", ctx, int64(5), mock.AnythingOfType("time.Time"),
		mock.MatchedBy(func(next time.Time) bool {
			return next.After(time.Now().UTC())
		})).Return(nil)

	dispatcher.Tick(ctx)

	executor.AssertExpectations(t)
	recurring.AssertExpectations(t)
}

func TestRecurringDispatcher_RunFailureStillReschedules(t *testing.T) {
	recurring, templates, executor, dispatcher := newRecurringFixture()
	ctx := context.Background()

	rc := inlineRecurring(5)
	recurring.On("ListDue", ctx, mock.AnythingOfType("time.Time")).
		Return([]*domain.RecurringCampaign{rc}, nil)
	templates.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrTemplateNotFound)
	recurring.On("MarkRun", ctx, int64(5), mock.AnythingOfType("time.Time"),
		mock.AnythingOfType("time.Time")).Return(nil)

	dispatcher.Tick(ctx)

	// The row stays enabled and moves to its next fire.
	recurring.AssertCalled(t, "MarkRun", ctx, int64(5),
		mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"))
	executor.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecurringDispatcher_ResolvesCSVSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Email,Name,Plan\na@example.com,Ada,pro\n,Nobody,free\nb@example.com,Bo,\n"))
	}))
	defer server.Close()

	_, _, _, dispatcher := newRecurringFixture()
	recipients, err := dispatcher.resolveRecipients(context.Background(), domain.RecipientSource{
		Type: domain.RecipientSourceCSVURL,
		URL:  server.URL,
	})
	require.NoError(t, err)
	require.Len(t, recipients, 2, "blank email rows are skipped")
	assert.Equal(t, "a@example.com", recipients[0].Email)
	assert.Equal(t, map[string]string{"Name": "Ada", "Plan": "pro"}, recipients[0].Data)
	assert.Equal(t, "b@example.com", recipients[1].Email)
}

func TestRecurringDispatcher_ResolvesJSONSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"email":"a@example.com","name":"Ada"},{"name":"no address"},{"email":"b@example.com"}]`))
	}))
	defer server.Close()

	_, _, _, dispatcher := newRecurringFixture()
	recipients, err := dispatcher.resolveRecipients(context.Background(), domain.RecipientSource{
		Type: domain.RecipientSourceJSONURL,
		URL:  server.URL,
	})
	require.NoError(t, err)
	require.Len(t, recipients, 2)
	assert.Equal(t, map[string]string{"name": "Ada"}, recipients[0].Data)
	assert.Equal(t, "b@example.com", recipients[1].Email)
}

func TestRecurringDispatcher_SourceFetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, _, _, dispatcher := newRecurringFixture()
	_, err := dispatcher.resolveRecipients(context.Background(), domain.RecipientSource{
		Type: domain.RecipientSourceCSVURL,
		URL:  server.URL,
	})
	assert.ErrorContains(t, err, "status 500")
}

func TestParseCSVRecipients_NoEmailColumn(t *testing.T) {
	_, err := parseCSVRecipients([]byte("Name,Plan\nAda,pro\n"))
	assert.ErrorContains(t, err, "no email column")
}

func TestParseJSONRecipients_NotAnArray(t *testing.T) {
	_, err := parseJSONRecipients([]byte(`{"email":"a@example.com"}`))
	assert.ErrorContains(t, err, "not an array")
}
