package payout

import "time"

// ============================================================================
// HTTP
// ============================================================================

const (
	DefaultRequestTimeout = 15 * time.Second

	LNURLPayPathFormat = "https://%s/.well-known/lnurlp/%s"
	LNURLTagPayRequest = "payRequest"

	HeaderAccept    = "Accept"
	ContentTypeJSON = "application/json"
)

// ============================================================================
// Wallet connection
// ============================================================================

const (
	WalletConnectScheme = "nostr+walletconnect"

	// NIP-47 event kinds for wallet requests and responses
	KindWalletRequest  = 23194
	KindWalletResponse = 23195

	MethodPayInvoice = "pay_invoice"

	DefaultWalletResponseTimeout = 60 * time.Second
)

// ============================================================================
// Caching
// ============================================================================

// AddressCacheSize bounds the pubkey-to-lightning-address cache. Profiles
// rarely change between rounds, so even a small cache removes most
// metadata lookups for repeat contributors.
const AddressCacheSize = 512

// ============================================================================
// Millisat conversion
// ============================================================================

const MillisatsPerSat = 1000

// ============================================================================
// Error Context
// ============================================================================

const (
	ErrContextInvalidWalletURL = "invalid wallet connect URL"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgAddressResolved = "Resolved payout address"
	LogMsgQuoteObtained   = "Obtained payout quote"
	LogMsgInvoicePaid     = "Payout invoice paid"
)
