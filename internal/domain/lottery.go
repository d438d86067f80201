package domain

import "time"

// Round identifies one lottery cycle. It is the most recent announcement
// note published by the lottery's own key and tagged as a round. Read-only
// to the draw pipeline; the publisher creates it before the draw runs.
type Round struct {
	ID          string    `json:"id"`           // hex event id of the announcement note
	AnnouncedAt time.Time `json:"announced_at"` // created_at of the announcement note
}

// ZapReceipt is a kind-9735 receipt asserting a payment was made toward a
// round. The bolt11 tag is the payment reference; the description tag holds
// the JSON zap request whose pubkey field names the payer. Receipts come
// from public relays and may be duplicated, malformed, or reference other
// rounds entirely.
type ZapReceipt struct {
	EventID     string
	RoundID     string // value of the e tag pointing at the round note
	Bolt11      string // payment request the receipt claims was paid
	Description string // embedded zap request JSON, carries the payer pubkey
}

// LedgerInvoice is one entry from the wallet provider's ledger of incoming
// invoices. This is the source of truth for whether money actually moved;
// payment success is never inferred from relay data.
type LedgerInvoice struct {
	PaymentRequest string `json:"payment_request" validate:"required"`
	Amount         int64  `json:"amount" validate:"gte=0"`
	Settled        bool   `json:"is_paid"`
}

// VerifiedContribution is the join of a zap receipt and a matching paid
// ledger invoice. The pubkey is the receipt's claim; the amount is the
// ledger's. One payer may hold several entries; they are never merged.
type VerifiedContribution struct {
	Pubkey string
	Amount int64
}

// PrizePool is derived from the verified contribution set and never
// persisted. TotalParticipants counts contributions, not distinct payers.
type PrizePool struct {
	TotalParticipants int
	TotalAmount       int64
	PrizeAmount       int64
}

// Valid reports whether the pool can fund a prize.
func (p PrizePool) Valid() bool {
	return p.TotalParticipants > 0 && p.TotalAmount > 0 && p.PrizeAmount > 0
}

// DrawResult is the chosen contribution plus the prize it wins. Computed
// once per round and immediately consumed by payout.
type DrawResult struct {
	Winner      VerifiedContribution
	PrizeAmount int64
}

// RoundRecord is the persisted once-per-round completion marker. Its
// presence for a round id means the draw ran and funds were dispatched;
// the pipeline checks it before any payout to guard against double
// execution.
type RoundRecord struct {
	RoundID       string    `json:"round_id"`
	WinnerPubkey  string    `json:"winner_pubkey"`
	PrizeAmount   int64     `json:"prize_amount"`
	SettlementRef string    `json:"settlement_ref"` // preimage or payment hash returned by the wallet
	CompletedAt   time.Time `json:"completed_at"`
}

// RunOutcome is the structured, operator-facing result of one pipeline
// invocation. Failures carry the taxonomy kind plus enough detail for
// manual reconciliation of the sensitive payout stages.
type RunOutcome struct {
	Success bool   `json:"success"`
	Kind    string `json:"error,omitempty"` // failure kind, empty on success

	RoundID           string `json:"round_id,omitempty"`
	TotalParticipants int    `json:"total_participants,omitempty"`
	TotalAmount       int64  `json:"total_amount,omitempty"`
	PrizeAmount       int64  `json:"prize_amount,omitempty"`

	// DrawSeed is the RNG seed the winner was drawn with; together with the
	// contribution set it makes a completed draw replayable.
	DrawSeed int64 `json:"draw_seed,omitempty"`

	WinnerPubkey  string `json:"winner_pubkey,omitempty"`
	WinnerAddress string `json:"winner_address,omitempty"` // resolved lud16
	QuoteRef      string `json:"quote_ref,omitempty"`      // bolt11 of the payout quote
	SettlementRef string `json:"settlement_ref,omitempty"`

	// PublishFailed is set when settlement succeeded but the result note
	// could not be delivered to any relay; the financial outcome stands and
	// the announcement must be republished manually.
	PublishFailed bool `json:"publish_failed,omitempty"`
}
