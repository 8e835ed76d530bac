package pgsql

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/ChantierApp/site_ledger_app/internal/apperrors"
	portsrepo "github.com/ChantierApp/site_ledger_app/internal/core/ports/repositories"
	"github.com/ChantierApp/site_ledger_app/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// testDatabaseURLEnv names the env var holding the connection URL for
// integration tests. The suite is skipped when it is unset.
const testDatabaseURLEnv = "PGSQL_TEST_URL"

const capitalTestSchema = `
CREATE TABLE IF NOT EXISTS capital (
    capital_id      TEXT PRIMARY KEY,
    opening_balance NUMERIC(19, 4) NOT NULL,
    currency        CHAR(3) NOT NULL,
    opening_date    TIMESTAMPTZ NOT NULL,
    is_locked       BOOLEAN NOT NULL DEFAULT FALSE,
    created_at      TIMESTAMPTZ NOT NULL,
    last_updated_at TIMESTAMPTZ NOT NULL
);`

// CapitalRepositoryIntegrationTestSuite exercises the capital upsert against
// a real Postgres instance: concurrent first writes must collapse to one row
// and a locked row must survive a rejected write unchanged.
type CapitalRepositoryIntegrationTestSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo portsrepo.CapitalRepositoryFacade
}

func (suite *CapitalRepositoryIntegrationTestSuite) SetupSuite() {
	databaseURL := os.Getenv(testDatabaseURLEnv)
	if databaseURL == "" {
		suite.T().Skipf("%s not set, skipping integration tests", testDatabaseURLEnv)
	}

	pool, err := pgxpool.New(context.Background(), databaseURL)
	suite.Require().NoError(err, "failed to connect to test database")

	_, err = pool.Exec(context.Background(), capitalTestSchema)
	suite.Require().NoError(err, "failed to create capital table")

	suite.pool = pool
	suite.repo = newPgxCapitalRepository(pool)
}

func (suite *CapitalRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *CapitalRepositoryIntegrationTestSuite) SetupTest() {
	_, err := suite.pool.Exec(context.Background(), `TRUNCATE capital;`)
	suite.Require().NoError(err)
}

// --- Test Cases ---

func (suite *CapitalRepositoryIntegrationTestSuite) TestUpsertCapital_ConcurrentFirstWrites_SingleRow() {
	ctx := context.Background()
	openingDate := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	const writers = 16

	var wg sync.WaitGroup
	errs := make(chan error, writers)
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(balance int64) {
			defer wg.Done()
			_, err := suite.repo.UpsertCapital(ctx, decimal.NewFromInt(balance), openingDate, "DZD")
			errs <- err
		}(int64(1000 + i))
	}
	wg.Wait()
	close(errs)

	// While unlocked every write either inserts or overwrites, never conflicts.
	for err := range errs {
		suite.NoError(err)
	}

	var rowCount int
	err := suite.pool.QueryRow(ctx, `SELECT COUNT(*) FROM capital;`).Scan(&rowCount)
	suite.Require().NoError(err)
	suite.Equal(1, rowCount)

	capital, err := suite.repo.FindCapital(ctx)
	suite.Require().NoError(err)
	suite.Equal(models.CapitalSingletonID, capital.CapitalID)
	suite.False(capital.IsLocked)
}

func (suite *CapitalRepositoryIntegrationTestSuite) TestUpsertCapital_LockedRowLeftUnchanged() {
	ctx := context.Background()
	openingDate := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	_, err := suite.repo.UpsertCapital(ctx, decimal.NewFromInt(100000), openingDate, "DZD")
	suite.Require().NoError(err)
	locked, err := suite.repo.LockCapital(ctx)
	suite.Require().NoError(err)
	suite.Require().True(locked.IsLocked)

	_, err = suite.repo.UpsertCapital(ctx, decimal.NewFromInt(999999), openingDate.AddDate(0, 1, 0), "EUR")
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)

	after, err := suite.repo.FindCapital(ctx)
	suite.Require().NoError(err)
	suite.True(after.OpeningBalance.Equal(locked.OpeningBalance))
	suite.True(after.OpeningDate.Equal(locked.OpeningDate))
	suite.Equal(locked.Currency, after.Currency)
	suite.True(after.IsLocked)
	suite.True(after.CreatedAt.Equal(locked.CreatedAt))
	// A rejected write must not even touch the audit timestamp.
	suite.True(after.LastUpdatedAt.Equal(locked.LastUpdatedAt))
}

func (suite *CapitalRepositoryIntegrationTestSuite) TestLockCapital_Idempotent() {
	ctx := context.Background()

	_, err := suite.repo.UpsertCapital(ctx, decimal.NewFromInt(50000), time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), "DZD")
	suite.Require().NoError(err)

	first, err := suite.repo.LockCapital(ctx)
	suite.Require().NoError(err)
	second, err := suite.repo.LockCapital(ctx)
	suite.Require().NoError(err)

	suite.True(first.IsLocked)
	suite.True(second.IsLocked)
	suite.True(second.OpeningBalance.Equal(first.OpeningBalance))
}

func TestCapitalRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CapitalRepositoryIntegrationTestSuite))
}
