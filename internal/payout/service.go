package payout

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Service resolves winners to payable lightning addresses, quotes invoices
// for the exact prize amount, and dispatches payment through the operator's
// wallet connection.
type Service struct {
	httpClient  *http.Client
	validate    *validator.Validate
	addresses   *lru.Cache[string, string]
	wallet      *walletConn
	lnurlFormat string
}

// NewService creates a payout service. The wallet connect URL is parsed
// eagerly so a misconfigured wallet fails at startup, not mid-draw.
func NewService(walletConnectURL string) (*Service, error) {
	wallet, err := parseWalletURL(walletConnectURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextInvalidWalletURL, err)
	}

	addresses, err := lru.New[string, string](AddressCacheSize)
	if err != nil {
		return nil, err
	}

	return &Service{
		httpClient:  &http.Client{Timeout: DefaultRequestTimeout},
		validate:    validator.New(),
		addresses:   addresses,
		wallet:      wallet,
		lnurlFormat: LNURLPayPathFormat,
	}, nil
}
