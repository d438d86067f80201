package nostr

import (
	"context"
	"fmt"
	"time"

	"github.com/nbd-wtf/go-nostr"

	"github.com/luckstr/luckstr-go/internal/domain"
	"github.com/luckstr/luckstr-go/internal/logger"
)

// Session owns one relay pool for the duration of a single invocation.
// Construct with NewSession, pass explicitly to each stage, and Close on
// exit regardless of outcome. Nothing here is shared across invocations.
type Session struct {
	pool    *nostr.SimplePool
	cancel  context.CancelFunc
	relays  []string
	pubkey  string
	privkey string
	timeout time.Duration
}

// Options configures a Session.
type Options struct {
	Relays     []string
	PublicKey  string
	PrivateKey string
	// Timeout bounds each relay query; queries against slow relays give up
	// at this deadline rather than stalling the pipeline.
	Timeout time.Duration
}

// NewSession creates a relay session scoped to one pipeline invocation.
func NewSession(opts Options) (*Session, error) {
	if len(opts.Relays) == 0 {
		return nil, fmt.Errorf("%s", ErrMsgNoRelays)
	}
	if opts.PublicKey == "" {
		return nil, fmt.Errorf("%s", ErrMsgNoIdentity)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultQueryTimeout
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Session{
		pool:    nostr.NewSimplePool(ctx),
		cancel:  cancel,
		relays:  opts.Relays,
		pubkey:  opts.PublicKey,
		privkey: opts.PrivateKey,
		timeout: timeout,
	}, nil
}

// Close releases all relay connections held by the session.
func (s *Session) Close() {
	s.cancel()
}

// OwnPubkey returns the lottery's own public key.
func (s *Session) OwnPubkey() string {
	return s.pubkey
}

// LatestRound returns the most recent round announcement authored by the
// lottery's own key. It is the single source for "which round is active".
func (s *Session) LatestRound(ctx context.Context) (*domain.Round, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	filter := nostr.Filter{
		Kinds:   []int{domain.KindTextNote},
		Authors: []string{s.pubkey},
		Tags:    nostr.TagMap{domain.TagHashtag: []string{domain.HashtagLottery}},
		Limit:   1,
	}

	evt := s.pool.QuerySingle(ctx, s.relays, filter)
	if evt == nil {
		return nil, domain.ErrNoActiveRound
	}

	return &domain.Round{
		ID:          evt.ID,
		AnnouncedAt: evt.CreatedAt.Time(),
	}, nil
}

// RoundZapReceipts returns every zap receipt referencing the round note via
// an e tag. An empty result is not an error; the caller decides whether a
// zapless round is fatal. Duplicates are passed through untouched.
func (s *Session) RoundZapReceipts(ctx context.Context, roundID string) ([]domain.ZapReceipt, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	filter := nostr.Filter{
		Kinds: []int{domain.KindZapReceipt},
		Tags:  nostr.TagMap{domain.TagEvent: []string{roundID}},
	}

	seen := make(map[string]struct{})
	var receipts []domain.ZapReceipt
	for evt := range s.pool.FetchMany(ctx, s.relays, filter) {
		// The same event arrives once per relay that has it; collapse on
		// event id. Distinct receipt events for one invoice still all pass.
		if _, ok := seen[evt.ID]; ok {
			continue
		}
		seen[evt.ID] = struct{}{}

		receipt, ok := ParseZapReceipt(evt.Event)
		if !ok {
			logger.FromContext(ctx).Debug(LogMsgSkippingMalformedReceipt, "event_id", evt.ID)
			continue
		}
		receipts = append(receipts, receipt)
	}

	return receipts, nil
}

// ProfileMetadata returns the content of the newest kind-0 profile event
// for the given pubkey, or an empty string when none is found.
func (s *Session) ProfileMetadata(ctx context.Context, pubkey string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	filter := nostr.Filter{
		Kinds:   []int{domain.KindProfileMetadata},
		Authors: []string{pubkey},
		Limit:   1,
	}

	evt := s.pool.QuerySingle(ctx, s.relays, filter)
	if evt == nil {
		return "", nil
	}
	return evt.Content, nil
}

// Publish signs a kind-1 note and broadcasts it to every session relay.
// Delivery counts as soon as one relay acknowledges; per-relay failures are
// logged but only a total miss is an error.
func (s *Session) Publish(ctx context.Context, content string, tags nostr.Tags) (string, error) {
	evt := nostr.Event{
		PubKey:    s.pubkey,
		CreatedAt: nostr.Now(),
		Kind:      domain.KindTextNote,
		Tags:      tags,
		Content:   content,
	}
	if err := evt.Sign(s.privkey); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrPublishFailed, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	log := logger.FromContext(ctx)
	acked := 0
	for result := range s.pool.PublishMany(ctx, s.relays, evt) {
		if result.Error != nil {
			log.Warn(LogMsgRelayRejectedNote, "relay", result.RelayURL, "error", result.Error)
			continue
		}
		acked++
	}

	if acked == 0 {
		return "", fmt.Errorf("%w: no relay acknowledged event %s", domain.ErrPublishFailed, evt.ID)
	}

	log.Info(LogMsgNotePublished, "event_id", evt.ID, "relays_acked", acked)
	return evt.ID, nil
}

// ParseZapReceipt extracts the lottery-relevant fields from a kind-9735
// event. Returns false when the receipt lacks a bolt11 or description tag;
// such events are expected noise, not errors.
func ParseZapReceipt(evt *nostr.Event) (domain.ZapReceipt, bool) {
	if evt == nil || evt.Kind != domain.KindZapReceipt {
		return domain.ZapReceipt{}, false
	}

	bolt11 := firstTagValue(evt.Tags, domain.TagBolt11)
	description := firstTagValue(evt.Tags, domain.TagDescription)
	if bolt11 == "" || description == "" {
		return domain.ZapReceipt{}, false
	}

	return domain.ZapReceipt{
		EventID:     evt.ID,
		RoundID:     firstTagValue(evt.Tags, domain.TagEvent),
		Bolt11:      bolt11,
		Description: description,
	}, true
}

func firstTagValue(tags nostr.Tags, name string) string {
	for _, tag := range tags {
		if len(tag) >= 2 && tag[0] == name {
			return tag[1]
		}
	}
	return ""
}
