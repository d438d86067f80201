package bootstrap

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/luckstr/luckstr-go/internal/config"
	"github.com/luckstr/luckstr-go/internal/database/postgres"
	"github.com/luckstr/luckstr-go/internal/ledger"
	"github.com/luckstr/luckstr-go/internal/lottery"
	"github.com/luckstr/luckstr-go/internal/nostr"
	"github.com/luckstr/luckstr-go/internal/payout"
)

// InitializeLotteryService wires the relay session factory, ledger client,
// payout service, and round store into the lottery service.
func InitializeLotteryService(cfg *config.Config, dbPool *pgxpool.Pool) (lottery.Service, error) {
	sessions := func() (lottery.RelaySession, error) {
		return nostr.NewSession(nostr.Options{
			Relays:     cfg.Relays,
			PublicKey:  cfg.NostrPublicKey,
			PrivateKey: cfg.NostrPrivateKey,
			Timeout:    cfg.RelayTimeout,
		})
	}

	ledgerClient := ledger.NewClient(cfg.LedgerBaseURL, cfg.LedgerLogin, cfg.LedgerPassword)

	payoutService, err := payout.NewService(cfg.WalletConnectURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize payout service: %w", err)
	}

	rounds := postgres.NewRoundsRepository(dbPool)

	return lottery.NewService(sessions, ledgerClient, payoutService, rounds, cfg.FeeRate), nil
}
