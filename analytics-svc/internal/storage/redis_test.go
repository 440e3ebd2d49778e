package storage_test

import (
	"context"
	"testing"
	"time"

	"pos-backend/analytics-svc/internal/domain"
	"pos-backend/analytics-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) (*storage.RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return storage.NewRedisCache(client, 30*time.Second), mr
}

func TestDashboardCache(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()

	version, err := cache.DashboardVersion(ctx)
	require.NoError(t, err)
	assert.Zero(t, version)

	cached, err := cache.GetDashboard(ctx, version)
	require.NoError(t, err)
	assert.Nil(t, cached)

	dashboard := &domain.Dashboard{
		TotalRevenue: decimal.RequireFromString("42.50"),
		TotalOrders:  3,
		TodayRevenue: decimal.Zero,
		RecentSales:  []domain.Sale{},
		RevenueData:  []domain.DayRevenue{{Name: "Mon", Value: decimal.RequireFromString("42.50")}},
		TopProducts:  []domain.ProductRank{{Name: "Burger", Value: 2}},
	}
	require.NoError(t, cache.SetDashboard(ctx, version, dashboard))
	assert.Equal(t, 30*time.Second, mr.TTL(storage.DashboardKey(0)))

	cached, err = cache.GetDashboard(ctx, version)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.True(t, dashboard.TotalRevenue.Equal(cached.TotalRevenue))
	assert.Equal(t, int64(3), cached.TotalOrders)
	assert.Equal(t, dashboard.TopProducts, cached.TopProducts)

	mr.FastForward(31 * time.Second)
	cached, err = cache.GetDashboard(ctx, version)
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestDashboardCache_Versions(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()
	assert.Equal(t, "analytics:dashboard:7", storage.DashboardKey(7))

	require.NoError(t, cache.SetDashboard(ctx, 0, &domain.Dashboard{TotalOrders: 1}))
	mr.Set(storage.LedgerVersionKey, "3")

	version, err := cache.DashboardVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), version)

	cached, err := cache.GetDashboard(ctx, version)
	require.NoError(t, err)
	assert.Nil(t, cached)

	mr.Set(storage.LedgerVersionKey, "three")
	_, err = cache.DashboardVersion(ctx)
	assert.Error(t, err)
}

func TestDashboardCache_ZeroTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	cache := storage.NewRedisCache(client, 0)
	ctx := context.Background()

	require.NoError(t, cache.SetDashboard(ctx, 0, &domain.Dashboard{TotalOrders: 1}))
	assert.False(t, mr.Exists(storage.DashboardKey(0)))

	mr.Set(storage.DashboardKey(0), `{"totalOrders":9}`)
	cached, err := cache.GetDashboard(ctx, 0)
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestDashboardCache_Corrupt(t *testing.T) {
	cache, mr := setupCache(t)
	require.NoError(t, mr.Set(storage.DashboardKey(0), "{not json"))

	_, err := cache.GetDashboard(context.Background(), 0)
	assert.Error(t, err)
}

func TestTopProductsForDay(t *testing.T) {
	cache, mr := setupCache(t)
	key := storage.DailyProductsKey("2024-01-10")
	assert.Equal(t, "analytics:daily:2024-01-10:products", key)

	mr.ZAdd(key, 3, "Burger")
	mr.ZAdd(key, 5, "Fries")
	mr.ZAdd(key, 1, "Cola")

	ranks, err := cache.TopProductsForDay(context.Background(), "2024-01-10", 2)
	require.NoError(t, err)
	assert.Equal(t, []domain.ProductRank{{Name: "Fries", Value: 5}, {Name: "Burger", Value: 3}}, ranks)

	ranks, err = cache.TopProductsForDay(context.Background(), "2024-01-11", 5)
	require.NoError(t, err)
	assert.Empty(t, ranks)
}
