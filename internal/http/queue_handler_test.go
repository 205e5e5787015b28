package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailfleet/mailfleet/internal/domain"
	"github.com/mailfleet/mailfleet/internal/domain/mocks"
	"github.com/mailfleet/mailfleet/pkg/logger"
)

func setupQueueHandlerTest(t *testing.T) (*QueueHandler, *mocks.MockQueueProcessorService, *mocks.MockQueueRepository, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockProcessor := mocks.NewMockQueueProcessorService(ctrl)
	mockRepo := mocks.NewMockQueueRepository(ctrl)
	handler := NewQueueHandler(mockProcessor, mockRepo, logger.NewLoggerWithLevel("disabled"))
	return handler, mockProcessor, mockRepo, ctrl
}

func TestQueueHandler_handleDrain(t *testing.T) {
	t.Run("reports processed and failed counts", func(t *testing.T) {
		handler, mockProcessor, _, ctrl := setupQueueHandlerTest(t)
		defer ctrl.Finish()

		mockProcessor.EXPECT().Drain(gomock.Any()).Return(4, 1, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/queue.drain", nil)
		w := httptest.NewRecorder()
		handler.handleDrain(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]int
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 4, resp["processed"])
		assert.Equal(t, 1, resp["failed"])
	})

	t.Run("drain failure maps to 500", func(t *testing.T) {
		handler, mockProcessor, _, ctrl := setupQueueHandlerTest(t)
		defer ctrl.Finish()

		mockProcessor.EXPECT().Drain(gomock.Any()).Return(0, 0, errors.New("db down"))

		req := httptest.NewRequest(http.MethodPost, "/api/queue.drain", nil)
		w := httptest.NewRecorder()
		handler.handleDrain(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("rejects GET", func(t *testing.T) {
		handler, _, _, ctrl := setupQueueHandlerTest(t)
		defer ctrl.Finish()

		req := httptest.NewRequest(http.MethodGet, "/api/queue.drain", nil)
		w := httptest.NewRecorder()
		handler.handleDrain(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})
}

func TestQueueHandler_handleList(t *testing.T) {
	t.Run("defaults to pending", func(t *testing.T) {
		handler, _, mockRepo, ctrl := setupQueueHandlerTest(t)
		defer ctrl.Finish()

		mockRepo.EXPECT().
			ListByStatus(gomock.Any(), domain.QueueStatusPending).
			Return([]*domain.QueueEntry{
				{ID: 1, CampaignID: 11, RecipientEmail: "a@example.com", Status: domain.QueueStatusPending},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/queue.list", nil)
		w := httptest.NewRecorder()
		handler.handleList(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Entries []*domain.QueueEntry `json:"entries"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Entries, 1)
		assert.Equal(t, "a@example.com", resp.Entries[0].RecipientEmail)
	})

	t.Run("filters by explicit status", func(t *testing.T) {
		handler, _, mockRepo, ctrl := setupQueueHandlerTest(t)
		defer ctrl.Finish()

		mockRepo.EXPECT().
			ListByStatus(gomock.Any(), domain.QueueStatusFailed).
			Return([]*domain.QueueEntry{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/queue.list?status=failed", nil)
		w := httptest.NewRecorder()
		handler.handleList(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		handler, _, _, ctrl := setupQueueHandlerTest(t)
		defer ctrl.Finish()

		req := httptest.NewRequest(http.MethodGet, "/api/queue.list?status=bogus", nil)
		w := httptest.NewRecorder()
		handler.handleList(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid queue status")
	})

	t.Run("repository failure maps to 500", func(t *testing.T) {
		handler, _, mockRepo, ctrl := setupQueueHandlerTest(t)
		defer ctrl.Finish()

		mockRepo.EXPECT().
			ListByStatus(gomock.Any(), domain.QueueStatusPending).
			Return(nil, errors.New("db down"))

		req := httptest.NewRequest(http.MethodGet, "/api/queue.list", nil)
		w := httptest.NewRecorder()
		handler.handleList(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
