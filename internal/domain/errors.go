package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Round errors
	ErrMsgNoActiveRound        = "no active lottery round"
	ErrMsgRoundAlreadyComplete = "round already completed"

	// Contribution errors
	ErrMsgNoContributions         = "no zap receipts for round"
	ErrMsgNoVerifiedContributions = "no verified contributions"

	// Ledger errors
	ErrMsgAuthenticationFailed = "ledger authentication failed"
	ErrMsgLedgerUnavailable    = "ledger unavailable"

	// Prize errors
	ErrMsgNoPrize = "prize pool is empty"

	// Payout errors
	ErrMsgNoPayoutAddress       = "winner has no payout address"
	ErrMsgQuoteUnavailable      = "payout quote unavailable"
	ErrMsgPaymentDispatchFailed = "payment dispatch failed"

	// Publishing errors
	ErrMsgPublishFailed = "failed to publish note"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Round errors
	ErrNoActiveRound        = errors.New(ErrMsgNoActiveRound)
	ErrRoundAlreadyComplete = errors.New(ErrMsgRoundAlreadyComplete)

	// Contribution errors
	ErrNoContributions         = errors.New(ErrMsgNoContributions)
	ErrNoVerifiedContributions = errors.New(ErrMsgNoVerifiedContributions)

	// Ledger errors
	ErrAuthenticationFailed = errors.New(ErrMsgAuthenticationFailed)
	ErrLedgerUnavailable    = errors.New(ErrMsgLedgerUnavailable)

	// Prize errors
	ErrNoPrize = errors.New(ErrMsgNoPrize)

	// Payout errors
	ErrNoPayoutAddress       = errors.New(ErrMsgNoPayoutAddress)
	ErrQuoteUnavailable      = errors.New(ErrMsgQuoteUnavailable)
	ErrPaymentDispatchFailed = errors.New(ErrMsgPaymentDispatchFailed)

	// Publishing errors
	ErrPublishFailed = errors.New(ErrMsgPublishFailed)
)

// FailureKind maps a pipeline error to its taxonomy kind for the
// operator-facing RunOutcome. Unknown errors report as internal.
func FailureKind(err error) string {
	switch {
	case errors.Is(err, ErrNoActiveRound):
		return KindNoActiveRound
	case errors.Is(err, ErrRoundAlreadyComplete):
		return KindRoundAlreadyComplete
	case errors.Is(err, ErrNoContributions):
		return KindNoContributions
	case errors.Is(err, ErrAuthenticationFailed):
		return KindAuthenticationFailed
	case errors.Is(err, ErrLedgerUnavailable):
		return KindLedgerUnavailable
	case errors.Is(err, ErrNoVerifiedContributions):
		return KindNoVerifiedContributions
	case errors.Is(err, ErrNoPrize):
		return KindNoPrize
	case errors.Is(err, ErrNoPayoutAddress):
		return KindNoPayoutAddress
	case errors.Is(err, ErrQuoteUnavailable):
		return KindQuoteUnavailable
	case errors.Is(err, ErrPaymentDispatchFailed):
		return KindPaymentDispatchFailed
	case errors.Is(err, ErrPublishFailed):
		return KindPublishFailed
	default:
		return KindInternal
	}
}
