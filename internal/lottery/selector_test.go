package lottery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luckstr/luckstr-go/internal/domain"
)

func TestSecureSeed(t *testing.T) {
	a, err := SecureSeed()
	require.NoError(t, err)
	b, err := SecureSeed()
	require.NoError(t, err)
	assert.NotEqual(t, a, b, "two seeds colliding is astronomically unlikely")
}

func TestDraw(t *testing.T) {
	t.Run("same seed replays the same draw", func(t *testing.T) {
		contributions := contributionsOf(100, 50, 200)

		first, fallback := NewSelector(42).Draw(contributions, 350)
		require.False(t, fallback)

		for i := 0; i < 5; i++ {
			winner, fb := NewSelector(42).Draw(contributions, 350)
			assert.False(t, fb)
			assert.Equal(t, first, winner)
		}
	})

	t.Run("single contributor always wins", func(t *testing.T) {
		contributions := contributionsOf(10)
		for seed := int64(0); seed < 20; seed++ {
			winner, fallback := NewSelector(seed).Draw(contributions, 10)
			assert.False(t, fallback)
			assert.Equal(t, contributions[0], winner)
		}
	})

	t.Run("win frequency tracks contribution weight", func(t *testing.T) {
		// A 100/50/200 split over many seeded draws should land near
		// 2/7, 1/7, 4/7. Wide tolerances keep this robust.
		contributions := contributionsOf(100, 50, 200)
		wins := make(map[string]int)

		const draws = 10000
		for seed := int64(0); seed < draws; seed++ {
			winner, fallback := NewSelector(seed).Draw(contributions, 350)
			require.False(t, fallback)
			wins[winner.Pubkey]++
		}

		assert.InDelta(t, draws*100/350, wins[contributions[0].Pubkey], draws*0.03)
		assert.InDelta(t, draws*50/350, wins[contributions[1].Pubkey], draws*0.03)
		assert.InDelta(t, draws*200/350, wins[contributions[2].Pubkey], draws*0.03)
	})

	t.Run("empty input reports fallback", func(t *testing.T) {
		winner, fallback := NewSelector(1).Draw(nil, 0)
		assert.True(t, fallback)
		assert.Equal(t, domain.VerifiedContribution{}, winner)
	})

	t.Run("inconsistent total falls back to first contribution", func(t *testing.T) {
		// Total larger than the slice's actual sum can exhaust the walk;
		// the first entry is returned and the anomaly flagged.
		contributions := contributionsOf(1)
		seenFallback := false
		for seed := int64(0); seed < 200; seed++ {
			winner, fallback := NewSelector(seed).Draw(contributions, 1000)
			assert.Equal(t, contributions[0], winner)
			if fallback {
				seenFallback = true
			}
		}
		assert.True(t, seenFallback)
	})
}
