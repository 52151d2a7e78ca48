//go:build integration

package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/pricex_locale/internal/apperrors"
	"github.com/SscSPs/pricex_locale/internal/core/domain"
	redisrepo "github.com/SscSPs/pricex_locale/internal/repositories/redis"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

type RedisRepositorySuite struct {
	suite.Suite
	container *tcredis.RedisContainer
	client    *goredis.Client
}

func (s *RedisRepositorySuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	s.Require().NoError(err, "failed to start redis container")
	s.container = container

	addr, err := container.ConnectionString(ctx)
	s.Require().NoError(err)
	opts, err := goredis.ParseURL(addr)
	s.Require().NoError(err)

	s.client = goredis.NewClient(opts)
	s.Require().NoError(s.client.Ping(ctx).Err())
}

func (s *RedisRepositorySuite) TearDownSuite() {
	if s.client != nil {
		_ = s.client.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(context.Background())
	}
}

func (s *RedisRepositorySuite) SetupTest() {
	s.Require().NoError(s.client.FlushAll(context.Background()).Err())
}

func (s *RedisRepositorySuite) TestPreferenceRoundTrip() {
	ctx := context.Background()
	repo := redisrepo.NewPreferenceRepository(s.client)

	_, err := repo.FindPreference(ctx, "pricex-region-prefs:s1")
	s.ErrorIs(err, apperrors.ErrNotFound)

	s.Require().NoError(repo.SavePreference(ctx, "pricex-region-prefs:s1", []byte(`{"region":"north-america","country":"US"}`)))
	got, err := repo.FindPreference(ctx, "pricex-region-prefs:s1")
	s.Require().NoError(err)
	s.JSONEq(`{"region":"north-america","country":"US"}`, string(got))
}

func (s *RedisRepositorySuite) TestRateCacheRoundTripWithTTL() {
	ctx := context.Background()
	cache := redisrepo.NewRateCache(s.client)

	_, err := cache.FindCachedRates(ctx)
	s.ErrorIs(err, apperrors.ErrNotFound)

	fetchedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	table := domain.RateTable{
		Base:      "USD",
		Rates:     map[string]decimal.Decimal{"USD": decimal.NewFromInt(1), "EUR": decimal.RequireFromString("0.93")},
		FetchedAt: fetchedAt,
	}
	s.Require().NoError(cache.SaveCachedRates(ctx, table, time.Minute))

	cached, err := cache.FindCachedRates(ctx)
	s.Require().NoError(err)
	s.Equal("USD", cached.Base)
	s.True(cached.Rates["EUR"].Equal(decimal.RequireFromString("0.93")))
	s.True(cached.FetchedAt.Equal(fetchedAt))

	ttl, err := s.client.TTL(ctx, "pricex:fx-rates:latest").Result()
	s.Require().NoError(err)
	s.Greater(ttl, time.Duration(0))
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositorySuite))
}
