package ledger

import "time"

// Provider endpoints, relative to the configured base URL.
const (
	DefaultBaseURL           = "https://ln.getalby.com"
	AuthEndpoint             = "/auth"
	IncomingInvoicesEndpoint = "/v2/invoices/incoming"
)

// HTTP constants
const (
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	ContentTypeJSON     = "application/json"
	BearerPrefix        = "Bearer "
)

// DefaultRequestTimeout bounds each provider call.
const DefaultRequestTimeout = 30 * time.Second

// Log message constants
const (
	LogMsgRejectingInvoice = "Rejecting malformed ledger invoice"
)
