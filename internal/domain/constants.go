package domain

// Failure kinds reported in RunOutcome. Stable identifiers for operator
// alerting; do not rename without updating dashboards.
const (
	KindNoActiveRound           = "NoActiveRound"
	KindRoundAlreadyComplete    = "RoundAlreadyCompleted"
	KindNoContributions         = "NoContributions"
	KindAuthenticationFailed    = "AuthenticationFailed"
	KindLedgerUnavailable       = "LedgerUnavailable"
	KindNoVerifiedContributions = "NoVerifiedContributions"
	KindNoPrize                 = "NoPrize"
	KindNoPayoutAddress         = "NoPayoutAddress"
	KindQuoteUnavailable        = "QuoteUnavailable"
	KindPaymentDispatchFailed   = "PaymentDispatchFailed"
	KindPublishFailed           = "PublishFailed"
	KindInternal                = "Internal"
)

// Nostr event kinds the lottery works with.
const (
	KindProfileMetadata = 0    // kind-0 profile, carries lud16
	KindTextNote        = 1    // round announcements and winner notes
	KindZapReceipt      = 9735 // zap receipts from lightning providers
)

// Tag values used on lottery notes.
const (
	TagHashtag     = "t"
	TagEvent       = "e"
	TagPubkey      = "p"
	TagBolt11      = "bolt11"
	TagDescription = "description"

	HashtagLottery = "lottery"
	HashtagWinner  = "winner"

	MarkerRoot = "root"
)
