package lottery

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luckstr/luckstr-go/internal/domain"
)

func testPubkey(seed byte) string {
	return fmt.Sprintf("%064x", seed)
}

func zapDescription(pubkey string) string {
	return fmt.Sprintf(`{"kind":9734,"pubkey":"%s","content":""}`, pubkey)
}

func TestMatchContributions(t *testing.T) {
	ctx := context.Background()
	pkA := testPubkey(0xaa)
	pkB := testPubkey(0xbb)

	t.Run("amount comes from the ledger, identity from the receipt", func(t *testing.T) {
		receipts := []domain.ZapReceipt{
			{EventID: "r1", Bolt11: "lnbc100", Description: zapDescription(pkA)},
		}
		invoices := []domain.LedgerInvoice{
			{PaymentRequest: "lnbc100", Amount: 100, Settled: true},
		}

		contributions, err := MatchContributions(ctx, receipts, invoices)
		require.NoError(t, err)
		require.Len(t, contributions, 1)
		assert.Equal(t, pkA, contributions[0].Pubkey)
		assert.Equal(t, int64(100), contributions[0].Amount)
	})

	t.Run("unpaid invoices never verify", func(t *testing.T) {
		receipts := []domain.ZapReceipt{
			{EventID: "r1", Bolt11: "lnbc100", Description: zapDescription(pkA)},
			{EventID: "r2", Bolt11: "lnbc50", Description: zapDescription(pkB)},
		}
		invoices := []domain.LedgerInvoice{
			{PaymentRequest: "lnbc100", Amount: 100, Settled: true},
			{PaymentRequest: "lnbc50", Amount: 50, Settled: false},
		}

		contributions, err := MatchContributions(ctx, receipts, invoices)
		require.NoError(t, err)
		require.Len(t, contributions, 1)
		assert.Equal(t, pkA, contributions[0].Pubkey)
	})

	t.Run("receipts with no ledger match are dropped", func(t *testing.T) {
		receipts := []domain.ZapReceipt{
			{EventID: "r1", Bolt11: "lnbc-forged", Description: zapDescription(pkA)},
			{EventID: "r2", Bolt11: "lnbc100", Description: zapDescription(pkB)},
		}
		invoices := []domain.LedgerInvoice{
			{PaymentRequest: "lnbc100", Amount: 100, Settled: true},
		}

		contributions, err := MatchContributions(ctx, receipts, invoices)
		require.NoError(t, err)
		require.Len(t, contributions, 1)
		assert.Equal(t, pkB, contributions[0].Pubkey)
	})

	t.Run("malformed payloads fail closed", func(t *testing.T) {
		receipts := []domain.ZapReceipt{
			{EventID: "r1", Bolt11: "lnbc100", Description: "not json"},
			{EventID: "r2", Bolt11: "lnbc100", Description: `{"content":"no pubkey"}`},
			{EventID: "r3", Bolt11: "lnbc100", Description: `{"pubkey":"too-short"}`},
			{EventID: "r4", Bolt11: "lnbc100", Description: zapDescription(pkA)},
		}
		invoices := []domain.LedgerInvoice{
			{PaymentRequest: "lnbc100", Amount: 100, Settled: true},
		}

		contributions, err := MatchContributions(ctx, receipts, invoices)
		require.NoError(t, err)

		// Note r4 still verifies; the three malformed receipts are dropped,
		// never attributed to an empty identity.
		require.Len(t, contributions, 1)
		assert.Equal(t, pkA, contributions[0].Pubkey)
	})

	t.Run("distinct receipts for one paid invoice each count", func(t *testing.T) {
		// Preserved behavior of the reconciliation: the match key is the
		// bolt11 string, so two receipt events referencing the same paid
		// invoice both enter the pool.
		receipts := []domain.ZapReceipt{
			{EventID: "r1", Bolt11: "lnbc100", Description: zapDescription(pkA)},
			{EventID: "r2", Bolt11: "lnbc100", Description: zapDescription(pkA)},
		}
		invoices := []domain.LedgerInvoice{
			{PaymentRequest: "lnbc100", Amount: 100, Settled: true},
		}

		contributions, err := MatchContributions(ctx, receipts, invoices)
		require.NoError(t, err)
		require.Len(t, contributions, 2)
		assert.Equal(t, int64(100), contributions[0].Amount)
		assert.Equal(t, int64(100), contributions[1].Amount)
	})

	t.Run("no verified contributions is an error", func(t *testing.T) {
		receipts := []domain.ZapReceipt{
			{EventID: "r1", Bolt11: "lnbc999", Description: zapDescription(pkA)},
		}
		invoices := []domain.LedgerInvoice{
			{PaymentRequest: "lnbc100", Amount: 100, Settled: true},
		}

		_, err := MatchContributions(ctx, receipts, invoices)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNoVerifiedContributions))
	})

	t.Run("preserves receipt order", func(t *testing.T) {
		receipts := []domain.ZapReceipt{
			{EventID: "r1", Bolt11: "lnbc2", Description: zapDescription(pkB)},
			{EventID: "r2", Bolt11: "lnbc1", Description: zapDescription(pkA)},
		}
		invoices := []domain.LedgerInvoice{
			{PaymentRequest: "lnbc1", Amount: 10, Settled: true},
			{PaymentRequest: "lnbc2", Amount: 20, Settled: true},
		}

		contributions, err := MatchContributions(ctx, receipts, invoices)
		require.NoError(t, err)
		require.Len(t, contributions, 2)
		assert.Equal(t, pkB, contributions[0].Pubkey)
		assert.Equal(t, pkA, contributions[1].Pubkey)
	})
}
