package lottery

import (
	"context"
	"encoding/json"

	"github.com/go-playground/validator/v10"

	"github.com/luckstr/luckstr-go/internal/domain"
	"github.com/luckstr/luckstr-go/internal/logger"
)

var payloadValidator = validator.New()

// zapRequestPayload is the embedded zap request carried in a receipt's
// description tag. Only the payer identity matters here; everything else
// in the payload is ignored. Validation fails closed: a receipt whose
// payload lacks a well-formed pubkey is dropped rather than attributed to
// an empty identity.
type zapRequestPayload struct {
	Pubkey string `json:"pubkey" validate:"required,len=64,hexadecimal"`
}

// payerPubkey extracts the claimed payer identity from a receipt's
// description payload. Returns false for malformed payloads.
func payerPubkey(description string) (string, bool) {
	var payload zapRequestPayload
	if err := json.Unmarshal([]byte(description), &payload); err != nil {
		return "", false
	}
	if err := payloadValidator.Struct(payload); err != nil {
		return "", false
	}
	return payload.Pubkey, true
}

// MatchContributions reconciles zap receipts against the ledger of
// confirmed invoices. A receipt becomes a verified contribution only when
// its bolt11 equals a paid invoice's payment request; the amount is always
// the ledger's, the identity always the receipt's. Receipts with no match,
// an unpaid match, or a malformed payload are expected noise and dropped
// silently. Distinct receipts referencing the same paid invoice each
// produce their own entry; reconciliation trusts the receipt feed's own
// multiplicity.
func MatchContributions(ctx context.Context, receipts []domain.ZapReceipt, invoices []domain.LedgerInvoice) ([]domain.VerifiedContribution, error) {
	log := logger.FromContext(ctx)

	paid := make(map[string]domain.LedgerInvoice, len(invoices))
	for _, inv := range invoices {
		if !inv.Settled {
			continue
		}
		// First paid entry for a reference wins; the ledger should never
		// hold two settled invoices with the same payment request.
		if _, ok := paid[inv.PaymentRequest]; !ok {
			paid[inv.PaymentRequest] = inv
		}
	}

	var contributions []domain.VerifiedContribution
	for _, receipt := range receipts {
		inv, ok := paid[receipt.Bolt11]
		if !ok {
			continue
		}

		pubkey, ok := payerPubkey(receipt.Description)
		if !ok {
			log.Debug(LogMsgDroppingReceipt, "event_id", receipt.EventID)
			continue
		}

		contributions = append(contributions, domain.VerifiedContribution{
			Pubkey: pubkey,
			Amount: inv.Amount,
		})
	}

	if len(contributions) == 0 {
		return nil, domain.ErrNoVerifiedContributions
	}

	return contributions, nil
}
