package service

import (
	"context"
	"time"

	"pos-backend/analytics-svc/internal/domain"
	"pos-backend/analytics-svc/internal/storage"

	"github.com/shopspring/decimal"
)

type SalesRepository interface {
	Totals(ctx context.Context, from, to time.Time) (decimal.Decimal, int64, error)
	RecentOrders(ctx context.Context, limit int) ([]domain.Sale, error)
	RevenueStamps(ctx context.Context, from, to time.Time) ([]domain.Stamp, error)
	TopProducts(ctx context.Context, from, to time.Time, limit int) ([]domain.ProductRank, error)
}

type Cache interface {
	DashboardVersion(ctx context.Context) (int64, error)
	GetDashboard(ctx context.Context, version int64) (*domain.Dashboard, error)
	SetDashboard(ctx context.Context, version int64, dashboard *domain.Dashboard) error
	TopProductsForDay(ctx context.Context, day string, limit int) ([]domain.ProductRank, error)
}

type AnalyticsInterface interface {
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
	Summary(ctx context.Context, from, to time.Time) (*domain.Summary, error)
	TopProducts(ctx context.Context, limit int) ([]domain.ProductRank, error)
	TopProductsToday(ctx context.Context, limit int) ([]domain.ProductRank, error)
	Now() time.Time
}

var (
	_ AnalyticsInterface = (*AnalyticsService)(nil)
	_ SalesRepository    = (*storage.PostgresRepository)(nil)
	_ Cache              = (*storage.RedisCache)(nil)
)
