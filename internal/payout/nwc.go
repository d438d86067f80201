package payout

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/nbd-wtf/go-nostr"
	"github.com/nbd-wtf/go-nostr/nip04"

	"github.com/luckstr/luckstr-go/internal/domain"
	"github.com/luckstr/luckstr-go/internal/logger"
)

// walletConn holds the parsed wallet connect pairing: the wallet service's
// pubkey, the relay it listens on, and the client secret issued for this
// application.
type walletConn struct {
	pubkey       string
	relayURL     string
	secret       string
	clientPubkey string
	sharedKey    []byte
}

func parseWalletURL(raw string) (*walletConn, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme != WalletConnectScheme {
		return nil, fmt.Errorf("unexpected scheme %q", u.Scheme)
	}

	pubkey := u.Host
	if pubkey == "" {
		pubkey = u.Opaque
	}
	if !nostr.IsValidPublicKey(pubkey) {
		return nil, fmt.Errorf("invalid wallet pubkey %q", pubkey)
	}

	query := u.Query()
	relayURL := query.Get("relay")
	secret := query.Get("secret")
	if relayURL == "" || secret == "" {
		return nil, fmt.Errorf("missing relay or secret parameter")
	}

	clientPubkey, err := nostr.GetPublicKey(secret)
	if err != nil {
		return nil, fmt.Errorf("invalid wallet secret: %w", err)
	}
	sharedKey, err := nip04.ComputeSharedSecret(pubkey, secret)
	if err != nil {
		return nil, fmt.Errorf("invalid wallet pairing: %w", err)
	}

	return &walletConn{
		pubkey:       pubkey,
		relayURL:     relayURL,
		secret:       secret,
		clientPubkey: clientPubkey,
		sharedKey:    sharedKey,
	}, nil
}

type walletRequest struct {
	Method string       `json:"method"`
	Params walletParams `json:"params"`
}

type walletParams struct {
	Invoice string `json:"invoice"`
}

type walletResponse struct {
	ResultType string `json:"result_type"`
	Error      *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Result *struct {
		Preimage string `json:"preimage"`
	} `json:"result"`
}

// Settle pays the quoted invoice through the wallet connection and returns
// the payment preimage as the settlement reference. A missing or ambiguous
// response is reported as a dispatch failure; the caller decides how to
// reconcile since the payment may still have gone through.
func (s *Service) Settle(ctx context.Context, bolt11 string) (string, error) {
	payload, err := json.Marshal(walletRequest{
		Method: MethodPayInvoice,
		Params: walletParams{Invoice: bolt11},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrPaymentDispatchFailed, err)
	}

	content, err := nip04.Encrypt(string(payload), s.wallet.sharedKey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrPaymentDispatchFailed, err)
	}

	evt := nostr.Event{
		Kind:      KindWalletRequest,
		CreatedAt: nostr.Now(),
		Tags:      nostr.Tags{{domain.TagPubkey, s.wallet.pubkey}},
		Content:   content,
	}
	if err := evt.Sign(s.wallet.secret); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrPaymentDispatchFailed, err)
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultWalletResponseTimeout)
	defer cancel()

	relay, err := nostr.RelayConnect(ctx, s.wallet.relayURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrPaymentDispatchFailed, err)
	}
	defer relay.Close()

	// Subscribe before publishing so a fast wallet response cannot slip
	// past the subscription window.
	sub, err := relay.Subscribe(ctx, nostr.Filters{{
		Kinds:   []int{KindWalletResponse},
		Authors: []string{s.wallet.pubkey},
		Tags:    nostr.TagMap{domain.TagEvent: []string{evt.GetID()}},
	}})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrPaymentDispatchFailed, err)
	}
	defer sub.Unsub()

	if err := relay.Publish(ctx, evt); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrPaymentDispatchFailed, err)
	}

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%w: no wallet response: %v", domain.ErrPaymentDispatchFailed, ctx.Err())
	case respEvt := <-sub.Events:
		if respEvt == nil {
			return "", fmt.Errorf("%w: wallet subscription closed", domain.ErrPaymentDispatchFailed)
		}
		return s.decodeWalletResponse(ctx, respEvt)
	}
}

func (s *Service) decodeWalletResponse(ctx context.Context, evt *nostr.Event) (string, error) {
	plaintext, err := nip04.Decrypt(evt.Content, s.wallet.sharedKey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrPaymentDispatchFailed, err)
	}

	var resp walletResponse
	if err := json.Unmarshal([]byte(plaintext), &resp); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrPaymentDispatchFailed, err)
	}
	if resp.Error != nil {
		return "", fmt.Errorf("%w: %s (%s)", domain.ErrPaymentDispatchFailed, resp.Error.Message, resp.Error.Code)
	}
	if resp.Result == nil || resp.Result.Preimage == "" {
		return "", fmt.Errorf("%w: wallet response carried no preimage", domain.ErrPaymentDispatchFailed)
	}

	logger.FromContext(ctx).Info(LogMsgInvoicePaid, "preimage", resp.Result.Preimage)
	return resp.Result.Preimage, nil
}
