package lottery

import (
	"context"

	gonostr "github.com/nbd-wtf/go-nostr"
	"github.com/stretchr/testify/mock"

	"github.com/luckstr/luckstr-go/internal/domain"
	"github.com/luckstr/luckstr-go/internal/ledger"
)

// MockRelaySession mocks RelaySession
type MockRelaySession struct {
	mock.Mock
}

func (m *MockRelaySession) OwnPubkey() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockRelaySession) LatestRound(ctx context.Context) (*domain.Round, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Round), args.Error(1)
}

func (m *MockRelaySession) RoundZapReceipts(ctx context.Context, roundID string) ([]domain.ZapReceipt, error) {
	args := m.Called(ctx, roundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ZapReceipt), args.Error(1)
}

func (m *MockRelaySession) ProfileMetadata(ctx context.Context, pubkey string) (string, error) {
	args := m.Called(ctx, pubkey)
	return args.String(0), args.Error(1)
}

func (m *MockRelaySession) Publish(ctx context.Context, content string, tags gonostr.Tags) (string, error) {
	args := m.Called(ctx, content, tags)
	return args.String(0), args.Error(1)
}

func (m *MockRelaySession) Close() {
	m.Called()
}

// MockLedger mocks Ledger
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) Authenticate(ctx context.Context) (*ledger.Credential, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Credential), args.Error(1)
}

func (m *MockLedger) IncomingInvoices(ctx context.Context, cred *ledger.Credential) ([]domain.LedgerInvoice, error) {
	args := m.Called(ctx, cred)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerInvoice), args.Error(1)
}

// MockPayout mocks Payout
type MockPayout struct {
	mock.Mock
}

func (m *MockPayout) ResolveAddress(ctx context.Context, session RelaySession, pubkey string) (string, error) {
	args := m.Called(ctx, session, pubkey)
	return args.String(0), args.Error(1)
}

func (m *MockPayout) RequestQuote(ctx context.Context, address string, amountSats int64, memo string) (string, error) {
	args := m.Called(ctx, address, amountSats, memo)
	return args.String(0), args.Error(1)
}

func (m *MockPayout) Settle(ctx context.Context, bolt11 string) (string, error) {
	args := m.Called(ctx, bolt11)
	return args.String(0), args.Error(1)
}

// MockRounds mocks repository.Rounds
type MockRounds struct {
	mock.Mock
}

func (m *MockRounds) GetRound(ctx context.Context, roundID string) (*domain.RoundRecord, error) {
	args := m.Called(ctx, roundID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoundRecord), args.Error(1)
}

func (m *MockRounds) ClaimRound(ctx context.Context, roundID string) (bool, error) {
	args := m.Called(ctx, roundID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRounds) CompleteRound(ctx context.Context, record *domain.RoundRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRounds) ReleaseRound(ctx context.Context, roundID string) error {
	args := m.Called(ctx, roundID)
	return args.Error(0)
}
