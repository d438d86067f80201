package nostr

import "time"

// DefaultQueryTimeout bounds a single relay query when the caller does not
// configure one.
const DefaultQueryTimeout = 15 * time.Second

// Error message constants
const (
	ErrMsgNoRelays   = "at least one relay is required"
	ErrMsgNoIdentity = "lottery public key is required"
)

// Log message constants
const (
	LogMsgSkippingMalformedReceipt = "Skipping malformed zap receipt"
	LogMsgRelayRejectedNote        = "Relay rejected note"
	LogMsgNotePublished            = "Note published"
)
