package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/PotionGacha_Go/internal/database"
	"github.com/osse101/PotionGacha_Go/internal/domain"
	"github.com/osse101/PotionGacha_Go/migrations"
)

var (
	testPool *pgxpool.Pool
)

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		terminate = setupDatabase(context.Background())
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

// setupDatabase starts a container, migrates it and leaves testPool nil on any failure
func setupDatabase(ctx context.Context) func() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupDatabase: %v\n", r)
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
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return func() {}
	}
	terminate := func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		return terminate
	}

	pool, err := database.NewPool(ctx, database.PoolConfig{
		ConnString:      connStr,
		MaxConns:        30,
		MaxConnIdleTime: time.Minute,
		MaxConnLifetime: 10 * time.Minute,
	})
	if err != nil {
		fmt.Printf("WARNING: Failed to connect to database: %v\n", err)
		return terminate
	}

	if err := database.Migrate(ctx, pool, migrations.FS); err != nil {
		fmt.Printf("WARNING: Failed to apply migrations: %v\n", err)
		pool.Close()
		return terminate
	}

	testPool = pool
	return func() {
		pool.Close()
		terminate()
	}
}

func requireDB(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testPool == nil {
		t.Skip("Skipping integration test: database not available")
	}
}

func newTestRepo(t *testing.T) *InventoryRepository {
	t.Helper()
	requireDB(t)
	return NewInventoryRepository(testPool, 2*time.Second)
}

func createTestPlayer(t *testing.T, repo *InventoryRepository, hp, mp, currency int) int64 {
	t.Helper()
	p, err := repo.CreatePlayer(context.Background(), domain.Player{HP: hp, MP: mp, Currency: currency})
	require.NoError(t, err)
	return p.ID
}

func seedTestItem(t *testing.T, repo *InventoryRepository, playerID int64, itemID, count int) {
	t.Helper()
	ctx := context.Background()
	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	_, err = tx.UpsertAdd(ctx, playerID, itemID, count)
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))
}

func countOf(t *testing.T, repo *InventoryRepository, playerID int64, itemID int) int {
	t.Helper()
	items, err := repo.GetPlayerItems(context.Background(), playerID)
	require.NoError(t, err)
	for _, it := range items {
		if it.ItemID == itemID {
			return it.Count
		}
	}
	return 0
}
