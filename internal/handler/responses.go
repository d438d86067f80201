package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/luckstr/luckstr-go/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Log the error - we can't write to response at this point since headers are sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	// Write the buffer to the response
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
// These messages are derived from domain errors and provide helpful guidance to operators
const (
	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	// Round messages
	ErrMsgNoActiveRoundError   = "No active round was found on the relays"
	ErrMsgRoundCompletedError  = "This round has already been drawn"
	ErrMsgNoContributionsError = "No zaps were found for this round"
	ErrMsgNoVerifiedError      = "No zaps could be verified as paid"

	// Ledger messages
	ErrMsgLedgerAuthError        = "Wallet provider authentication failed"
	ErrMsgLedgerUnavailableError = "Wallet provider is unavailable. Try again later"

	// Payout messages
	ErrMsgNoPrizeError          = "Prize pool is empty"
	ErrMsgNoPayoutAddressError  = "Winner has no usable lightning address"
	ErrMsgQuoteUnavailableError = "Could not obtain a payout invoice"
	ErrMsgDispatchFailedError   = "Payment dispatch failed. Manual reconciliation required"

	// Publishing messages
	ErrMsgPublishFailedError = "Failed to publish to relays"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrNoActiveRound):
		return http.StatusNotFound, ErrMsgNoActiveRoundError
	case errors.Is(err, domain.ErrRoundAlreadyComplete):
		return http.StatusConflict, ErrMsgRoundCompletedError
	case errors.Is(err, domain.ErrNoContributions):
		return http.StatusConflict, ErrMsgNoContributionsError
	case errors.Is(err, domain.ErrNoVerifiedContributions):
		return http.StatusConflict, ErrMsgNoVerifiedError
	case errors.Is(err, domain.ErrNoPrize):
		return http.StatusConflict, ErrMsgNoPrizeError
	case errors.Is(err, domain.ErrAuthenticationFailed):
		return http.StatusBadGateway, ErrMsgLedgerAuthError
	case errors.Is(err, domain.ErrLedgerUnavailable):
		return http.StatusBadGateway, ErrMsgLedgerUnavailableError
	case errors.Is(err, domain.ErrNoPayoutAddress):
		return http.StatusConflict, ErrMsgNoPayoutAddressError
	case errors.Is(err, domain.ErrQuoteUnavailable):
		return http.StatusBadGateway, ErrMsgQuoteUnavailableError
	case errors.Is(err, domain.ErrPaymentDispatchFailed):
		return http.StatusBadGateway, ErrMsgDispatchFailedError
	case errors.Is(err, domain.ErrPublishFailed):
		return http.StatusBadGateway, ErrMsgPublishFailedError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs a failed service call and writes the mapped
// error response.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	slog.Default().Error(opName, "error", err)
	status, message := mapServiceErrorToUserMessage(err)
	respondError(w, status, message)
}
