package repository

import (
	"context"

	"github.com/luckstr/luckstr-go/internal/domain"
)

// Rounds defines the interface for the once-per-round completion store.
// It exists to guard the payout pipeline against double execution: a round
// that holds a record is never drawn again, and the claim step serializes
// concurrent invocations racing on the same round.
type Rounds interface {
	// GetRound returns the record for a round id, or nil when the round has
	// never been claimed.
	GetRound(ctx context.Context, roundID string) (*domain.RoundRecord, error)

	// ClaimRound atomically claims a round for payout dispatch. Returns
	// false when another invocation already claimed or completed it.
	ClaimRound(ctx context.Context, roundID string) (bool, error)

	// CompleteRound upgrades a claim to a completion record after funds
	// were dispatched.
	CompleteRound(ctx context.Context, record *domain.RoundRecord) error

	// ReleaseRound drops an unfinished claim so a later invocation can draw
	// the round. Never called after dispatch; a claim whose dispatch failed
	// ambiguously is left in place for manual reconciliation.
	ReleaseRound(ctx context.Context, roundID string) error
}
