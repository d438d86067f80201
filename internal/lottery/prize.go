package lottery

import (
	"math"

	"github.com/luckstr/luckstr-go/internal/domain"
)

// CalculatePool derives the prize pool from the verified contribution set.
// Pure function: no I/O, no randomness.
//
// The fee is applied in basis points with integer arithmetic and the prize
// truncated toward zero to whole sats, so the payable amount is always
// exact (1000 sats at 5% yields 950, never 949.999...). A pool whose total
// is not positive comes back degenerate; callers must treat that as
// ErrNoPrize and never proceed to selection or payout.
func CalculatePool(contributions []domain.VerifiedContribution, feeRate float64) domain.PrizePool {
	var total int64
	for _, c := range contributions {
		total += c.Amount
	}

	if total <= 0 {
		return domain.PrizePool{}
	}

	feeBasisPoints := int64(math.Round(feeRate * BasisPointsPerUnit))
	prize := total * (BasisPointsPerUnit - feeBasisPoints) / BasisPointsPerUnit

	if prize <= 0 {
		return domain.PrizePool{}
	}

	return domain.PrizePool{
		TotalParticipants: len(contributions),
		TotalAmount:       total,
		PrizeAmount:       prize,
	}
}
