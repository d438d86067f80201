package payout

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/luckstr/luckstr-go/internal/domain"
	"github.com/luckstr/luckstr-go/internal/logger"
)

// payParams is the LNURL-pay descriptor served from the address's
// well-known endpoint.
type payParams struct {
	Callback       string `json:"callback" validate:"required,url"`
	MinSendable    int64  `json:"minSendable"`
	MaxSendable    int64  `json:"maxSendable"`
	Tag            string `json:"tag"`
	CommentAllowed int    `json:"commentAllowed"`
}

type payQuote struct {
	PR     string `json:"pr" validate:"required"`
	Status string `json:"status"`
	Reason string `json:"reason"`
}

// RequestQuote walks the LNURL-pay flow for the given lightning address
// and returns a bolt11 invoice for exactly amountSats. The invoice is
// what gets paid; the address itself never receives funds directly.
func (s *Service) RequestQuote(ctx context.Context, address string, amountSats int64, memo string) (string, error) {
	name, host, ok := strings.Cut(address, "@")
	if !ok || name == "" || host == "" {
		return "", fmt.Errorf("%w: malformed address %q", domain.ErrQuoteUnavailable, address)
	}

	params, err := s.fetchPayParams(ctx, fmt.Sprintf(s.lnurlFormat, host, name))
	if err != nil {
		return "", err
	}

	amountMsat := amountSats * MillisatsPerSat
	if params.MinSendable > 0 && amountMsat < params.MinSendable {
		return "", fmt.Errorf("%w: %d msat below minimum %d", domain.ErrQuoteUnavailable, amountMsat, params.MinSendable)
	}
	if params.MaxSendable > 0 && amountMsat > params.MaxSendable {
		return "", fmt.Errorf("%w: %d msat above maximum %d", domain.ErrQuoteUnavailable, amountMsat, params.MaxSendable)
	}

	quote, err := s.fetchQuote(ctx, params, amountMsat, memo)
	if err != nil {
		return "", err
	}

	logger.FromContext(ctx).Info(LogMsgQuoteObtained, "address", address, "amount_sats", amountSats)
	return quote, nil
}

func (s *Service) fetchPayParams(ctx context.Context, endpoint string) (*payParams, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrQuoteUnavailable, err)
	}
	req.Header.Set(HeaderAccept, ContentTypeJSON)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrQuoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: pay endpoint returned %d", domain.ErrQuoteUnavailable, resp.StatusCode)
	}

	var params payParams
	if err := json.NewDecoder(resp.Body).Decode(&params); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrQuoteUnavailable, err)
	}
	if err := s.validate.Struct(params); err != nil {
		return nil, fmt.Errorf("%w: malformed pay parameters", domain.ErrQuoteUnavailable)
	}
	if params.Tag != LNURLTagPayRequest {
		return nil, fmt.Errorf("%w: unexpected tag %q", domain.ErrQuoteUnavailable, params.Tag)
	}

	return &params, nil
}

func (s *Service) fetchQuote(ctx context.Context, params *payParams, amountMsat int64, memo string) (string, error) {
	callback, err := url.Parse(params.Callback)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrQuoteUnavailable, err)
	}

	query := callback.Query()
	query.Set("amount", strconv.FormatInt(amountMsat, 10))
	if memo != "" && params.CommentAllowed >= len(memo) {
		query.Set("comment", memo)
	}
	callback.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, callback.String(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrQuoteUnavailable, err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrQuoteUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: callback returned %d", domain.ErrQuoteUnavailable, resp.StatusCode)
	}

	var quote payQuote
	if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrQuoteUnavailable, err)
	}
	if quote.Status == "ERROR" {
		return "", fmt.Errorf("%w: %s", domain.ErrQuoteUnavailable, quote.Reason)
	}
	if err := s.validate.Struct(quote); err != nil {
		return "", fmt.Errorf("%w: callback returned no invoice", domain.ErrQuoteUnavailable)
	}

	return quote.PR, nil
}
