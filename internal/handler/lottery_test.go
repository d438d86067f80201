package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/luckstr/luckstr-go/internal/domain"
	"github.com/luckstr/luckstr-go/internal/lottery"
)

// MockLotteryService mocks lottery.Service
type MockLotteryService struct {
	mock.Mock
}

func (m *MockLotteryService) PublishAnnouncement(ctx context.Context) (*domain.RunOutcome, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RunOutcome), args.Error(1)
}

func (m *MockLotteryService) RunDraw(ctx context.Context) *domain.RunOutcome {
	args := m.Called(ctx)
	return args.Get(0).(*domain.RunOutcome)
}

func (m *MockLotteryService) LatestRoundStatus(ctx context.Context) (*lottery.RoundStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*lottery.RoundStatus), args.Error(1)
}

func TestHandleTriggerAnnouncement(t *testing.T) {
	t.Run("returns outcome on success", func(t *testing.T) {
		svc := &MockLotteryService{}
		svc.On("PublishAnnouncement", mock.Anything).Return(&domain.RunOutcome{
			Success: true,
			RoundID: "event-1",
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/lottery/publish", nil)
		w := httptest.NewRecorder()

		HandleTriggerAnnouncement(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "event-1")
		svc.AssertExpectations(t)
	})

	t.Run("maps publish failure to bad gateway", func(t *testing.T) {
		svc := &MockLotteryService{}
		svc.On("PublishAnnouncement", mock.Anything).Return(nil, domain.ErrPublishFailed)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/lottery/publish", nil)
		w := httptest.NewRecorder()

		HandleTriggerAnnouncement(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		svc.AssertExpectations(t)
	})
}

func TestHandleTriggerDraw(t *testing.T) {
	t.Run("returns outcome on success", func(t *testing.T) {
		svc := &MockLotteryService{}
		svc.On("RunDraw", mock.Anything).Return(&domain.RunOutcome{
			Success:       true,
			RoundID:       "round-1",
			WinnerPubkey:  "pk-winner",
			PrizeAmount:   950,
			SettlementRef: "preimage",
		})

		req := httptest.NewRequest(http.MethodPost, "/api/v1/lottery/draw", nil)
		w := httptest.NewRecorder()

		HandleTriggerDraw(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp DataResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, MsgDrawCompleted, resp.Message)
		svc.AssertExpectations(t)
	})

	t.Run("failed outcome still carries the body", func(t *testing.T) {
		cases := []struct {
			kind       string
			wantStatus int
		}{
			{domain.KindNoActiveRound, http.StatusNotFound},
			{domain.KindRoundAlreadyComplete, http.StatusConflict},
			{domain.KindNoContributions, http.StatusConflict},
			{domain.KindNoVerifiedContributions, http.StatusConflict},
			{domain.KindLedgerUnavailable, http.StatusBadGateway},
			{domain.KindPaymentDispatchFailed, http.StatusBadGateway},
			{domain.KindInternal, http.StatusInternalServerError},
		}

		for _, tc := range cases {
			svc := &MockLotteryService{}
			svc.On("RunDraw", mock.Anything).Return(&domain.RunOutcome{Kind: tc.kind})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/lottery/draw", nil)
			w := httptest.NewRecorder()

			HandleTriggerDraw(svc).ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code, "kind %s", tc.kind)
			assert.Contains(t, w.Body.String(), tc.kind)
		}
	})
}

func TestHandleGetLatestRound(t *testing.T) {
	t.Run("returns round status", func(t *testing.T) {
		svc := &MockLotteryService{}
		svc.On("LatestRoundStatus", mock.Anything).Return(&lottery.RoundStatus{
			Round:     &domain.Round{ID: "round-1"},
			Completed: true,
			Record:    &domain.RoundRecord{RoundID: "round-1", WinnerPubkey: "pk", PrizeAmount: 950},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/lottery/rounds/latest", nil)
		w := httptest.NewRecorder()

		HandleGetLatestRound(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"completed":true`)
		svc.AssertExpectations(t)
	})

	t.Run("empty status when no round is open", func(t *testing.T) {
		svc := &MockLotteryService{}
		svc.On("LatestRoundStatus", mock.Anything).Return(&lottery.RoundStatus{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/lottery/rounds/latest", nil)
		w := httptest.NewRecorder()

		HandleGetLatestRound(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"round":null`)
		svc.AssertExpectations(t)
	})

	t.Run("maps ledger failure to bad gateway", func(t *testing.T) {
		svc := &MockLotteryService{}
		svc.On("LatestRoundStatus", mock.Anything).Return(nil, domain.ErrLedgerUnavailable)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/lottery/rounds/latest", nil)
		w := httptest.NewRecorder()

		HandleGetLatestRound(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		svc.AssertExpectations(t)
	})
}
