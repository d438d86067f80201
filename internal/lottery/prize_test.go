package lottery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/luckstr/luckstr-go/internal/domain"
)

func contributionsOf(amounts ...int64) []domain.VerifiedContribution {
	out := make([]domain.VerifiedContribution, len(amounts))
	for i, a := range amounts {
		out[i] = domain.VerifiedContribution{Pubkey: testPubkey(byte(i + 1)), Amount: a}
	}
	return out
}

func TestCalculatePool(t *testing.T) {
	t.Run("five percent fee is exact", func(t *testing.T) {
		pool := CalculatePool(contributionsOf(1000), 0.05)
		assert.Equal(t, int64(1000), pool.TotalAmount)
		assert.Equal(t, int64(950), pool.PrizeAmount)
		assert.Equal(t, 1, pool.TotalParticipants)
		assert.True(t, pool.Valid())
	})

	t.Run("prize truncates toward zero", func(t *testing.T) {
		// 999 * 9500 / 10000 = 949.05 -> 949
		pool := CalculatePool(contributionsOf(999), 0.05)
		assert.Equal(t, int64(949), pool.PrizeAmount)
	})

	t.Run("sums all contributions", func(t *testing.T) {
		pool := CalculatePool(contributionsOf(100, 50, 200), 0.05)
		assert.Equal(t, int64(350), pool.TotalAmount)
		assert.Equal(t, int64(332), pool.PrizeAmount) // 350*9500/10000 = 332.5
		assert.Equal(t, 3, pool.TotalParticipants)
	})

	t.Run("zero fee pays the whole pool", func(t *testing.T) {
		pool := CalculatePool(contributionsOf(123), 0)
		assert.Equal(t, int64(123), pool.PrizeAmount)
	})

	t.Run("empty contributions yield a degenerate pool", func(t *testing.T) {
		pool := CalculatePool(nil, 0.05)
		assert.False(t, pool.Valid())
		assert.Zero(t, pool.PrizeAmount)
	})

	t.Run("zero total yields a degenerate pool", func(t *testing.T) {
		pool := CalculatePool(contributionsOf(0, 0), 0.05)
		assert.False(t, pool.Valid())
	})

	t.Run("prize rounded away to zero yields a degenerate pool", func(t *testing.T) {
		// 1 sat at 95% fee: 1*500/10000 = 0
		pool := CalculatePool(contributionsOf(1), 0.95)
		assert.False(t, pool.Valid())
	})
}
