package lottery

import (
	"context"
	"errors"
	"fmt"

	gonostr "github.com/nbd-wtf/go-nostr"
	"github.com/nbd-wtf/go-nostr/nip19"

	"github.com/luckstr/luckstr-go/internal/domain"
	"github.com/luckstr/luckstr-go/internal/ledger"
	"github.com/luckstr/luckstr-go/internal/logger"
	"github.com/luckstr/luckstr-go/internal/metrics"
	"github.com/luckstr/luckstr-go/internal/repository"
)

// Service defines the interface for lottery operations
type Service interface {
	// PublishAnnouncement opens a round by publishing the announcement note.
	PublishAnnouncement(ctx context.Context) (*domain.RunOutcome, error)
	// RunDraw executes the full draw-and-settlement pipeline for the
	// current round. Failures are reported in the outcome, not returned.
	RunDraw(ctx context.Context) *domain.RunOutcome
	// LatestRoundStatus reports the current round and its completion state.
	LatestRoundStatus(ctx context.Context) (*RoundStatus, error)
}

// RelaySession is one invocation's view of the broadcast log. Constructed
// per run through a SessionFactory and closed when the run ends.
type RelaySession interface {
	OwnPubkey() string
	LatestRound(ctx context.Context) (*domain.Round, error)
	RoundZapReceipts(ctx context.Context, roundID string) ([]domain.ZapReceipt, error)
	ProfileMetadata(ctx context.Context, pubkey string) (string, error)
	Publish(ctx context.Context, content string, tags gonostr.Tags) (string, error)
	Close()
}

// SessionFactory builds a fresh relay session for each invocation; no
// relay state survives across runs.
type SessionFactory func() (RelaySession, error)

// Ledger defines the interface to the payment provider's invoice ledger
type Ledger interface {
	Authenticate(ctx context.Context) (*ledger.Credential, error)
	IncomingInvoices(ctx context.Context, cred *ledger.Credential) ([]domain.LedgerInvoice, error)
}

// Payout defines the interface for resolving and paying the winner
type Payout interface {
	// ResolveAddress returns the winner's lightning address (lud16).
	ResolveAddress(ctx context.Context, session RelaySession, pubkey string) (string, error)
	// RequestQuote obtains a bolt11 invoice for exactly amountSats.
	RequestQuote(ctx context.Context, address string, amountSats int64, memo string) (string, error)
	// Settle pays the quoted invoice and returns the settlement reference.
	Settle(ctx context.Context, bolt11 string) (string, error)
}

// RoundStatus is the read-model for the HTTP surface.
type RoundStatus struct {
	Round     *domain.Round       `json:"round"`
	Completed bool                `json:"completed"`
	Record    *domain.RoundRecord `json:"record,omitempty"`
}

type service struct {
	sessions SessionFactory
	ledger   Ledger
	payout   Payout
	rounds   repository.Rounds
	feeRate  float64
	seed     func() (int64, error)
}

// NewService creates a new lottery service
func NewService(sessions SessionFactory, ledgerClient Ledger, payout Payout, rounds repository.Rounds, feeRate float64) Service {
	return &service{
		sessions: sessions,
		ledger:   ledgerClient,
		payout:   payout,
		rounds:   rounds,
		feeRate:  feeRate,
		seed:     SecureSeed,
	}
}

// PublishAnnouncement publishes the round announcement note that
// participants zap to enter.
func (s *service) PublishAnnouncement(ctx context.Context) (*domain.RunOutcome, error) {
	log := logger.FromContext(ctx)

	session, err := s.sessions()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToOpenSession, err)
	}
	defer session.Close()

	eventID, err := session.Publish(ctx, AnnouncementContent, gonostr.Tags{
		{domain.TagHashtag, domain.HashtagLottery},
	})
	if err != nil {
		return &domain.RunOutcome{Kind: domain.FailureKind(err)}, err
	}

	metrics.RoundsAnnounced.Inc()
	log.Info(LogMsgRoundAnnounced, "event_id", eventID)
	return &domain.RunOutcome{Success: true, RoundID: eventID}, nil
}

// RunDraw executes the draw pipeline. Every stage validates its output
// before the next runs; the first failure short-circuits the whole run and
// is reported as a structured outcome for the operator log.
func (s *service) RunDraw(ctx context.Context) *domain.RunOutcome {
	outcome := &domain.RunOutcome{}
	log := logger.FromContext(ctx)

	if err := s.runDraw(ctx, outcome); err != nil {
		outcome.Success = false
		outcome.Kind = domain.FailureKind(err)
		metrics.DrawFailures.WithLabelValues(outcome.Kind).Inc()
		log.Error(LogMsgDrawFailed,
			"kind", outcome.Kind,
			"round_id", outcome.RoundID,
			"winner_address", outcome.WinnerAddress,
			"prize_amount", outcome.PrizeAmount,
			"quote_ref", outcome.QuoteRef,
			"error", err)
		return outcome
	}

	outcome.Success = true
	metrics.DrawsCompleted.Inc()
	log.Info(LogMsgDrawCompleted,
		"round_id", outcome.RoundID,
		"winner", outcome.WinnerPubkey,
		"prize_amount", outcome.PrizeAmount,
		"participants", outcome.TotalParticipants)
	return outcome
}

func (s *service) runDraw(ctx context.Context, outcome *domain.RunOutcome) error {
	log := logger.FromContext(ctx)

	session, err := s.sessions()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToOpenSession, err)
	}
	defer session.Close()

	// Stage 1: locate the active round.
	round, err := session.LatestRound(ctx)
	if err != nil {
		return err
	}
	outcome.RoundID = round.ID
	log.Info(LogMsgRoundLocated, "round_id", round.ID, "announced_at", round.AnnouncedAt)

	// Stage 2: idempotency guard. A completed round is never drawn twice;
	// an unfinished claim means a dispatch ended ambiguously and needs
	// manual reconciliation before the round can run again.
	if existing, err := s.rounds.GetRound(ctx, round.ID); err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToCheckRound, err)
	} else if existing != nil {
		return fmt.Errorf("%w: round %s", domain.ErrRoundAlreadyComplete, round.ID)
	}

	// Stage 3: fetch receipts from the broadcast log.
	receipts, err := session.RoundZapReceipts(ctx, round.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToFetchReceipts, err)
	}
	if len(receipts) == 0 {
		return fmt.Errorf("%w: round %s", domain.ErrNoContributions, round.ID)
	}
	metrics.ZapReceiptsFetched.Add(float64(len(receipts)))

	// Stages 4-5: the private ledger. Payment truth only ever comes from
	// here, never from receipts.
	cred, err := s.ledger.Authenticate(ctx)
	if err != nil {
		return err
	}
	invoices, err := s.ledger.IncomingInvoices(ctx, cred)
	if err != nil {
		return err
	}

	// Stage 6: reconcile the two feeds.
	contributions, err := MatchContributions(ctx, receipts, invoices)
	if err != nil {
		return err
	}
	metrics.ContributionsVerified.Add(float64(len(contributions)))

	// Stage 7: pool and prize.
	pool := CalculatePool(contributions, s.feeRate)
	if !pool.Valid() {
		return fmt.Errorf("%w: round %s", domain.ErrNoPrize, round.ID)
	}
	outcome.TotalParticipants = pool.TotalParticipants
	outcome.TotalAmount = pool.TotalAmount
	outcome.PrizeAmount = pool.PrizeAmount
	metrics.PoolSats.Add(float64(pool.TotalAmount))

	// Stage 8: weighted draw.
	seed, err := s.seed()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToSeedDraw, err)
	}
	outcome.DrawSeed = seed
	winner, fallback := NewSelector(seed).Draw(contributions, pool.TotalAmount)
	if fallback {
		// The walk should always terminate on a positive pool; reaching the
		// fallback means the inputs violated an invariant somewhere upstream.
		metrics.DrawFallbacks.Inc()
		log.Error(LogMsgDrawFallback, "round_id", round.ID, "participants", pool.TotalParticipants)
	}
	outcome.WinnerPubkey = winner.Pubkey

	// Stage 9: resolve the payable destination.
	address, err := s.payout.ResolveAddress(ctx, session, winner.Pubkey)
	if err != nil {
		return err
	}
	outcome.WinnerAddress = address

	// Stage 10: obtain the payout quote.
	quote, err := s.payout.RequestQuote(ctx, address, pool.PrizeAmount, PayoutMemo)
	if err != nil {
		return err
	}
	outcome.QuoteRef = quote

	// Honor cancellation up to this point; once dispatch is issued there
	// is nothing meaningful to abort.
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", ErrContextRunCancelled, err)
	}

	// Stage 11: claim the round, then dispatch. The claim is what makes a
	// concurrent re-trigger lose instead of double-paying.
	claimed, err := s.rounds.ClaimRound(ctx, round.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextFailedToClaimRound, err)
	}
	if !claimed {
		return fmt.Errorf("%w: round %s claimed concurrently", domain.ErrRoundAlreadyComplete, round.ID)
	}

	settlement, err := s.payout.Settle(ctx, quote)
	if err != nil {
		// Deliberately leave the claim in place: the dispatch outcome is
		// ambiguous and retrying automatically could double-pay. The
		// outcome carries destination, amount, and quote for manual
		// reconciliation.
		return err
	}
	outcome.SettlementRef = settlement
	metrics.PrizesPaidSats.Add(float64(pool.PrizeAmount))

	if err := s.rounds.CompleteRound(ctx, &domain.RoundRecord{
		RoundID:       round.ID,
		WinnerPubkey:  winner.Pubkey,
		PrizeAmount:   pool.PrizeAmount,
		SettlementRef: settlement,
	}); err != nil {
		// Funds already moved; the guard row stays claimed so the round
		// cannot rerun. Report loudly but do not fail the run.
		log.Error(LogMsgFailedToRecordRound, "round_id", round.ID, "error", err)
	}

	// Stage 12: announce the winner. A publish failure no longer affects
	// the financial outcome; flag it for manual republication.
	if err := s.publishResult(ctx, session, round, winner, pool); err != nil {
		outcome.PublishFailed = true
		log.Error(LogMsgFailedToPublishResult, "round_id", round.ID, "error", err)
	}

	return nil
}

func (s *service) publishResult(ctx context.Context, session RelaySession, round *domain.Round, winner domain.VerifiedContribution, pool domain.PrizePool) error {
	npub, err := nip19.EncodeNpub(winner.Pubkey)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPublishFailed, err)
	}

	content := fmt.Sprintf(WinnerContentFormat, npub, pool.PrizeAmount, pool.TotalParticipants, pool.TotalAmount)
	tags := gonostr.Tags{
		{domain.TagHashtag, domain.HashtagWinner},
		{domain.TagPubkey, winner.Pubkey},
		{domain.TagEvent, round.ID, "", domain.MarkerRoot},
		{domain.TagPubkey, session.OwnPubkey()},
	}

	_, err = session.Publish(ctx, content, tags)
	return err
}

// LatestRoundStatus reports the active round and whether it already
// completed. Used by the read-only HTTP endpoint.
func (s *service) LatestRoundStatus(ctx context.Context) (*RoundStatus, error) {
	session, err := s.sessions()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToOpenSession, err)
	}
	defer session.Close()

	round, err := session.LatestRound(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveRound) {
			return &RoundStatus{}, nil
		}
		return nil, err
	}

	record, err := s.rounds.GetRound(ctx, round.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCheckRound, err)
	}

	return &RoundStatus{
		Round:     round,
		Completed: record != nil && !record.CompletedAt.IsZero(),
		Record:    record,
	}, nil
}
