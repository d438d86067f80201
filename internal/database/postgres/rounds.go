package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/luckstr/luckstr-go/internal/domain"
)

// RoundsRepository implements the round completion store for PostgreSQL.
// One row per round: inserted at claim time, filled in at completion. The
// primary key on round_id is what makes concurrent claims race safely.
type RoundsRepository struct {
	db *pgxpool.Pool
}

// NewRoundsRepository creates a new RoundsRepository
func NewRoundsRepository(db *pgxpool.Pool) *RoundsRepository {
	return &RoundsRepository{db: db}
}

const getRoundQuery = `
SELECT round_id, COALESCE(winner_pubkey, ''), COALESCE(prize_amount, 0), COALESCE(settlement_ref, ''), COALESCE(completed_at, '0001-01-01'::timestamptz)
FROM lottery_rounds
WHERE round_id = $1`

// GetRound returns the record for a round id, or nil when the round was
// never claimed.
func (r *RoundsRepository) GetRound(ctx context.Context, roundID string) (*domain.RoundRecord, error) {
	var record domain.RoundRecord
	err := r.db.QueryRow(ctx, getRoundQuery, roundID).Scan(
		&record.RoundID,
		&record.WinnerPubkey,
		&record.PrizeAmount,
		&record.SettlementRef,
		&record.CompletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetRound, err)
	}
	return &record, nil
}

const claimRoundQuery = `
INSERT INTO lottery_rounds (round_id) VALUES ($1)
ON CONFLICT (round_id) DO NOTHING`

// ClaimRound atomically claims a round. Returns false when another
// invocation holds the row already.
func (r *RoundsRepository) ClaimRound(ctx context.Context, roundID string) (bool, error) {
	tag, err := r.db.Exec(ctx, claimRoundQuery, roundID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", ErrMsgFailedToClaimRound, err)
	}
	return tag.RowsAffected() == 1, nil
}

const completeRoundQuery = `
UPDATE lottery_rounds
SET winner_pubkey = $2, prize_amount = $3, settlement_ref = $4, completed_at = NOW()
WHERE round_id = $1`

// CompleteRound upgrades a claim to a completion record.
func (r *RoundsRepository) CompleteRound(ctx context.Context, record *domain.RoundRecord) error {
	tag, err := r.db.Exec(ctx, completeRoundQuery,
		record.RoundID,
		record.WinnerPubkey,
		record.PrizeAmount,
		record.SettlementRef,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCompleteRound, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: round %s was never claimed", ErrMsgFailedToCompleteRound, record.RoundID)
	}
	return nil
}

const releaseRoundQuery = `
DELETE FROM lottery_rounds
WHERE round_id = $1 AND completed_at IS NULL`

// ReleaseRound drops an unfinished claim. Completed rounds are never
// deleted.
func (r *RoundsRepository) ReleaseRound(ctx context.Context, roundID string) error {
	if _, err := r.db.Exec(ctx, releaseRoundQuery, roundID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToReleaseRound, err)
	}
	return nil
}
