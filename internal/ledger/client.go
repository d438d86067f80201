package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/luckstr/luckstr-go/internal/domain"
	"github.com/luckstr/luckstr-go/internal/logger"
)

// Client talks to the wallet provider's REST API. It is the trusted source
// for whether an invoice was actually paid; nothing downstream ever infers
// payment success from relay data.
type Client struct {
	baseURL    string
	login      string
	password   string
	httpClient *http.Client
	validate   *validator.Validate
}

// Credential is the short-lived token pair returned by the provider.
type Credential struct {
	AccessToken  string `json:"access_token" validate:"required"`
	RefreshToken string `json:"refresh_token"`
}

// NewClient creates a ledger client for the given provider endpoint.
func NewClient(baseURL, login, password string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		login:      login,
		password:   password,
		httpClient: &http.Client{Timeout: DefaultRequestTimeout},
		validate:   validator.New(),
	}
}

type authRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Authenticate exchanges the configured login for a short-lived credential.
func (c *Client) Authenticate(ctx context.Context) (*Credential, error) {
	body, err := json.Marshal(authRequest{Login: c.login, Password: c.password})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAuthenticationFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+AuthEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAuthenticationFailed, err)
	}
	req.Header.Set(HeaderContentType, ContentTypeJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAuthenticationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: provider returned %d", domain.ErrAuthenticationFailed, resp.StatusCode)
	}

	var cred Credential
	if err := json.NewDecoder(resp.Body).Decode(&cred); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAuthenticationFailed, err)
	}

	// Fail closed on a token-less 200 rather than carrying an empty
	// credential into the invoice call.
	if err := c.validate.Struct(cred); err != nil {
		return nil, fmt.Errorf("%w: malformed auth response", domain.ErrAuthenticationFailed)
	}

	return &cred, nil
}

// IncomingInvoices lists the provider's recently confirmed incoming
// invoices. Entries that fail schema validation are rejected outright;
// a zero-defaulted amount could masquerade as a real zero-sat contribution.
func (c *Client) IncomingInvoices(ctx context.Context, cred *Credential) ([]domain.LedgerInvoice, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+IncomingInvoicesEndpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLedgerUnavailable, err)
	}
	req.Header.Set(HeaderAuthorization, BearerPrefix+cred.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLedgerUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: provider returned %d", domain.ErrLedgerUnavailable, resp.StatusCode)
	}

	var raw []domain.LedgerInvoice
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLedgerUnavailable, err)
	}

	log := logger.FromContext(ctx)
	invoices := make([]domain.LedgerInvoice, 0, len(raw))
	for _, inv := range raw {
		if err := c.validate.Struct(inv); err != nil {
			log.Warn(LogMsgRejectingInvoice, "error", err)
			continue
		}
		invoices = append(invoices, inv)
	}

	if len(invoices) == 0 {
		return nil, fmt.Errorf("%w: no incoming invoices", domain.ErrLedgerUnavailable)
	}

	return invoices, nil
}

// SetTimeout overrides the per-request timeout. Intended for tests.
func (c *Client) SetTimeout(d time.Duration) {
	c.httpClient.Timeout = d
}
