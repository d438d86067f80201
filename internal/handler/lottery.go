package handler

import (
	"net/http"

	"github.com/luckstr/luckstr-go/internal/domain"
	"github.com/luckstr/luckstr-go/internal/logger"
	"github.com/luckstr/luckstr-go/internal/lottery"
)

// HandleTriggerAnnouncement publishes a new round announcement note.
// @Summary Publish round announcement
// @Description Opens a new lottery round by publishing the announcement note to the configured relays
// @Tags lottery
// @Produce json
// @Success 201 {object} DataResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/lottery/publish [post]
func HandleTriggerAnnouncement(svc lottery.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		outcome, err := svc.PublishAnnouncement(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgAnnouncementFailed, err)
			return
		}

		respondJSON(w, http.StatusCreated, DataResponse{
			Message: MsgAnnouncementPublished,
			Data:    outcome,
		})
	}
}

// HandleTriggerDraw runs the draw pipeline for the current round.
// The outcome body is always returned; failed runs carry the failure kind
// so operators can reconcile without reading server logs.
// @Summary Run the draw
// @Description Executes the full draw-and-settlement pipeline for the current round
// @Tags lottery
// @Produce json
// @Success 200 {object} DataResponse
// @Failure 409 {object} DataResponse
// @Failure 502 {object} DataResponse
// @Router /api/v1/lottery/draw [post]
func HandleTriggerDraw(svc lottery.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		outcome := svc.RunDraw(r.Context())
		if !outcome.Success {
			logger.FromContext(r.Context()).Warn("Draw run failed", "kind", outcome.Kind)
			respondJSON(w, statusForFailureKind(outcome.Kind), DataResponse{Data: outcome})
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{
			Message: MsgDrawCompleted,
			Data:    outcome,
		})
	}
}

// HandleGetLatestRound reports the active round and its completion state.
// @Summary Latest round status
// @Description Returns the most recent round announcement and its completion record, if any
// @Tags lottery
// @Produce json
// @Success 200 {object} DataResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/lottery/rounds/latest [get]
func HandleGetLatestRound(svc lottery.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := svc.LatestRoundStatus(r.Context())
		if err != nil {
			respondServiceError(w, r, ErrMsgRoundStatusFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: status})
	}
}

// statusForFailureKind maps outcome kinds onto HTTP status codes. Empty or
// no-op conditions are conflicts, upstream dependencies are bad gateways.
func statusForFailureKind(kind string) int {
	switch kind {
	case domain.KindNoActiveRound:
		return http.StatusNotFound
	case domain.KindRoundAlreadyComplete,
		domain.KindNoContributions,
		domain.KindNoVerifiedContributions,
		domain.KindNoPrize,
		domain.KindNoPayoutAddress:
		return http.StatusConflict
	case domain.KindAuthenticationFailed,
		domain.KindLedgerUnavailable,
		domain.KindQuoteUnavailable,
		domain.KindPaymentDispatchFailed,
		domain.KindPublishFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
