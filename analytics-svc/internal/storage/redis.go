package storage

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"pos-backend/analytics-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

// LedgerVersionKey is incremented by agg-svc for every order it records.
const LedgerVersionKey = "analytics:ledger:version"

// DashboardKey is the cache entry for the dashboard built at ledger version.
func DashboardKey(version int64) string {
	return "analytics:dashboard:" + strconv.FormatInt(version, 10)
}

// DailyProductsKey is the sorted set agg-svc bumps for every item sold on day.
func DailyProductsKey(day string) string {
	return "analytics:daily:" + day + ":products"
}

// RedisCache stores dashboards for TTL. A TTL of zero or less turns the
// dashboard cache off; the daily rankings are still read.
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

// DashboardVersion reads the ledger version; a missing counter is version 0.
func (c *RedisCache) DashboardVersion(ctx context.Context) (int64, error) {
	version, err := c.Client.Get(ctx, LedgerVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return version, err
}

// GetDashboard returns nil without error on a cache miss.
func (c *RedisCache) GetDashboard(ctx context.Context, version int64) (*domain.Dashboard, error) {
	if c.TTL <= 0 {
		return nil, nil
	}
	raw, err := c.Client.Get(ctx, DashboardKey(version)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var dashboard domain.Dashboard
	if err := json.Unmarshal(raw, &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

func (c *RedisCache) SetDashboard(ctx context.Context, version int64, dashboard *domain.Dashboard) error {
	if c.TTL <= 0 {
		return nil
	}
	payload, err := json.Marshal(dashboard)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, DashboardKey(version), payload, c.TTL).Err()
}

func (c *RedisCache) TopProductsForDay(ctx context.Context, day string, limit int) ([]domain.ProductRank, error) {
	result, err := c.Client.ZRevRangeWithScores(ctx, DailyProductsKey(day), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	ranks := make([]domain.ProductRank, 0, len(result))
	for _, z := range result {
		name, _ := z.Member.(string)
		ranks = append(ranks, domain.ProductRank{Name: name, Value: int64(z.Score)})
	}
	return ranks, nil
}
