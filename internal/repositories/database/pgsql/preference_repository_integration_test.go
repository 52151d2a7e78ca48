//go:build integration

package pgsql_test

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/pricex_locale/internal/apperrors"
	"github.com/SscSPs/pricex_locale/internal/repositories/database/pgsql"
	"github.com/SscSPs/pricex_locale/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type PreferenceRepositorySuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	pool      *pgxpool.Pool
}

func (s *PreferenceRepositorySuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:17-alpine",
		tcpostgres.WithDatabase("pricex"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	s.Require().NoError(err, "failed to start postgres container")
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	migrationsDir, err := filepath.Abs("../../../../migrations")
	s.Require().NoError(err)
	s.Require().NoError(database.RunMigrations(dsn, "file://"+migrationsDir, slog.Default()))

	s.pool, err = database.NewPgxPool(ctx, dsn, true)
	s.Require().NoError(err)
}

func (s *PreferenceRepositorySuite) TearDownSuite() {
	database.ClosePgxPool(s.pool)
	if s.container != nil {
		_ = s.container.Terminate(context.Background())
	}
}

func (s *PreferenceRepositorySuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(), "TRUNCATE preferences")
	s.Require().NoError(err)
}

func (s *PreferenceRepositorySuite) TestFindMissing() {
	repo := pgsql.NewPreferenceRepository(s.pool)

	_, err := repo.FindPreference(context.Background(), "pricex-region-prefs:nobody")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *PreferenceRepositorySuite) TestUpsertOverwrites() {
	ctx := context.Background()
	repo := pgsql.NewPreferenceRepository(s.pool)

	s.Require().NoError(repo.SavePreference(ctx, "pricex-currency-prefs:s1", []byte(`{"currency":"EUR"}`)))
	s.Require().NoError(repo.SavePreference(ctx, "pricex-currency-prefs:s1", []byte(`{"currency":"GBP"}`)))

	got, err := repo.FindPreference(ctx, "pricex-currency-prefs:s1")
	s.Require().NoError(err)
	s.JSONEq(`{"currency":"GBP"}`, string(got))
}

func (s *PreferenceRepositorySuite) TestRejectsInvalidJSON() {
	repo := pgsql.NewPreferenceRepository(s.pool)

	err := repo.SavePreference(context.Background(), "pricex-currency-prefs:s1", []byte(`{not json`))
	s.Error(err)
}

func TestPreferenceRepositorySuite(t *testing.T) {
	suite.Run(t, new(PreferenceRepositorySuite))
}
