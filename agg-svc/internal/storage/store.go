package storage

import (
	"context"
	"time"

	"pos-backend/agg-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	// LedgerVersionKey is bumped on every recorded sale. analytics-svc keys
	// its dashboard cache by this counter.
	LedgerVersionKey = "analytics:ledger:version"
	dailyKeepDays    = 7
)

func DailyProductsKey(day string) string {
	return "analytics:daily:" + day + ":products"
}

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// RecordSale bumps each item's quantity in the day's product ranking. Items
// without a name or with a non-positive quantity are skipped.
func (s *Store) RecordSale(ctx context.Context, day string, items []domain.EventItem) error {
	key := DailyProductsKey(day)
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, item := range items {
			if item.Name == "" || item.Quantity <= 0 {
				continue
			}
			pipe.ZIncrBy(ctx, key, float64(item.Quantity), item.Name)
		}
		pipe.Expire(ctx, key, dailyKeepDays*24*time.Hour)
		return nil
	})
	return err
}

// InvalidateDashboard moves readers to a fresh dashboard cache key. Entries
// under older versions are never read again and expire on their own TTL.
func (s *Store) InvalidateDashboard(ctx context.Context) error {
	return s.rdb.Incr(ctx, LedgerVersionKey).Err()
}
