package lottery

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"

	"github.com/luckstr/luckstr-go/internal/domain"
)

// Selector performs the weighted draw. It is pure logic seeded at
// construction, so tests can replay draws deterministically while
// production seeds from crypto/rand via SecureSeed.
type Selector struct {
	rng *rand.Rand
}

// NewSelector creates a selector from a seed.
func NewSelector(seed int64) *Selector {
	//nolint:gosec // G404: the seed itself comes from crypto/rand in production; see SecureSeed
	return &Selector{rng: rand.New(rand.NewSource(seed))}
}

// SecureSeed produces a draw seed from the system CSPRNG.
func SecureSeed() (int64, error) {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("failed to read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(buf[:])), nil //nolint:gosec // intentional wraparound
}

// Draw selects one contribution with probability proportional to its
// amount: a uniform value in [0, total) walks the slice in order,
// subtracting each amount, and the entry that drives it negative wins.
// Contributions are visited in slice order, which the matcher keeps
// stable, so a draw is reproducible from the same seed and input.
//
// The boolean reports the fallback path: if the walk exhausts the
// slice without a winner (possible only when entries carry non-positive
// amounts), the first contribution is returned and the caller must log
// the anomaly rather than treat it as a normal draw.
func (s *Selector) Draw(contributions []domain.VerifiedContribution, totalAmount int64) (domain.VerifiedContribution, bool) {
	if len(contributions) == 0 || totalAmount <= 0 {
		return domain.VerifiedContribution{}, true
	}

	r := s.rng.Int63n(totalAmount)
	for _, c := range contributions {
		r -= c.Amount
		if r < 0 {
			return c, false
		}
	}

	// Should never happen with a positive total.
	return contributions[0], true
}
