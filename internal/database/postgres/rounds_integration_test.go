package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/luckstr/luckstr-go/internal/database"
	"github.com/luckstr/luckstr-go/internal/domain"
)

var testDBConnString string

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()

	if !testing.Short() {
		ctx := context.Background()
		var connStr string
		connStr, terminate = setupContainer(ctx)
		testDBConnString = connStr
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}

	os.Exit(code)
}

func setupContainer(ctx context.Context) (string, func()) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", func() {}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		pgContainer.Terminate(ctx)
		return "", func() {}
	}

	if err := database.Migrate(connStr); err != nil {
		fmt.Printf("WARNING: Failed to migrate test database: %v\n", err)
		pgContainer.Terminate(ctx)
		return "", func() {}
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}

func newTestRepository(t *testing.T) *RoundsRepository {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}

	pool, err := pgxpool.New(context.Background(), testDBConnString)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return NewRoundsRepository(pool)
}

func TestRounds_ClaimAndComplete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	roundID := fmt.Sprintf("round-%d", time.Now().UnixNano())

	// Unclaimed round has no record
	record, err := repo.GetRound(ctx, roundID)
	require.NoError(t, err)
	assert.Nil(t, record)

	// First claim wins
	claimed, err := repo.ClaimRound(ctx, roundID)
	require.NoError(t, err)
	assert.True(t, claimed)

	// Second claim loses
	claimed, err = repo.ClaimRound(ctx, roundID)
	require.NoError(t, err)
	assert.False(t, claimed)

	// Claimed but not completed
	record, err = repo.GetRound(ctx, roundID)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.True(t, record.CompletedAt.IsZero())

	// Complete the claim
	err = repo.CompleteRound(ctx, &domain.RoundRecord{
		RoundID:       roundID,
		WinnerPubkey:  "winner-pk",
		PrizeAmount:   950,
		SettlementRef: "preimage-abc",
	})
	require.NoError(t, err)

	record, err = repo.GetRound(ctx, roundID)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "winner-pk", record.WinnerPubkey)
	assert.Equal(t, int64(950), record.PrizeAmount)
	assert.Equal(t, "preimage-abc", record.SettlementRef)
	assert.False(t, record.CompletedAt.IsZero())
}

func TestRounds_CompleteWithoutClaimFails(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	err := repo.CompleteRound(ctx, &domain.RoundRecord{
		RoundID:      fmt.Sprintf("never-claimed-%d", time.Now().UnixNano()),
		WinnerPubkey: "pk",
		PrizeAmount:  1,
	})
	require.Error(t, err)
}

func TestRounds_ReleaseDropsClaimOnly(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	roundID := fmt.Sprintf("release-%d", time.Now().UnixNano())

	claimed, err := repo.ClaimRound(ctx, roundID)
	require.NoError(t, err)
	require.True(t, claimed)

	// Release makes the round claimable again
	require.NoError(t, repo.ReleaseRound(ctx, roundID))
	claimed, err = repo.ClaimRound(ctx, roundID)
	require.NoError(t, err)
	assert.True(t, claimed)

	// A completed round survives a release attempt
	require.NoError(t, repo.CompleteRound(ctx, &domain.RoundRecord{
		RoundID:      roundID,
		WinnerPubkey: "pk",
		PrizeAmount:  10,
	}))
	require.NoError(t, repo.ReleaseRound(ctx, roundID))

	record, err := repo.GetRound(ctx, roundID)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.False(t, record.CompletedAt.IsZero())
}

func TestRounds_ConcurrentClaims(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	roundID := fmt.Sprintf("race-%d", time.Now().UnixNano())

	concurrency := 10
	var wg sync.WaitGroup
	wins := make(chan bool, concurrency)

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			claimed, err := repo.ClaimRound(ctx, roundID)
			if err != nil {
				t.Errorf("claim failed: %v", err)
				return
			}
			wins <- claimed
		}()
	}

	wg.Wait()
	close(wins)

	winners := 0
	for claimed := range wins {
		if claimed {
			winners++
		}
	}
	assert.Equal(t, 1, winners, "exactly one concurrent claim should win")
}
