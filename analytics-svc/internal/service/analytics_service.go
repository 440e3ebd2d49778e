package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"pos-backend/analytics-svc/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	recentSalesLimit  = 5
	revenueSeriesDays = 7
	topProductsLimit  = 5
)

type AnalyticsService struct {
	repo  SalesRepository
	cache Cache
	now   func() time.Time
}

// NewAnalyticsService builds the aggregator. cache may be nil.
func NewAnalyticsService(repo SalesRepository, cache Cache) *AnalyticsService {
	return &AnalyticsService{repo: repo, cache: cache, now: time.Now}
}

func (s *AnalyticsService) WithClock(now func() time.Time) *AnalyticsService {
	s.now = now
	return s
}

func (s *AnalyticsService) Now() time.Time {
	return s.now()
}

// DayBounds returns [local midnight, next local midnight) around t.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}

// Dashboard serves the cached dashboard for the current ledger version. The
// version is read before the build so a build that races a new order is
// stored under the old version and never served after it.
func (s *AnalyticsService) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	if s.cache == nil {
		return s.buildDashboard(ctx)
	}

	version, err := s.cache.DashboardVersion(ctx)
	if err != nil {
		log.Printf("[analytics-svc] WARNING: ledger version read failed: %v", err)
		return s.buildDashboard(ctx)
	}

	cached, err := s.cache.GetDashboard(ctx, version)
	if err != nil {
		log.Printf("[analytics-svc] WARNING: dashboard cache read failed: %v", err)
	} else if cached != nil {
		return cached, nil
	}

	dashboard, err := s.buildDashboard(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetDashboard(ctx, version, dashboard); err != nil {
		log.Printf("[analytics-svc] WARNING: dashboard cache write failed: %v", err)
	}
	return dashboard, nil
}

func (s *AnalyticsService) buildDashboard(ctx context.Context) (*domain.Dashboard, error) {
	todayStart, todayEnd := DayBounds(s.now())

	totalRevenue, totalOrders, err := s.repo.Totals(ctx, time.Time{}, time.Time{})
	if err != nil {
		return nil, fmt.Errorf("total revenue: %w", err)
	}

	todayRevenue, todayOrders, err := s.repo.Totals(ctx, todayStart, todayEnd)
	if err != nil {
		return nil, fmt.Errorf("today revenue: %w", err)
	}

	recent, err := s.repo.RecentOrders(ctx, recentSalesLimit)
	if err != nil {
		return nil, fmt.Errorf("recent sales: %w", err)
	}

	seriesStart := todayStart.AddDate(0, 0, -(revenueSeriesDays - 1))
	stamps, err := s.repo.RevenueStamps(ctx, seriesStart, todayEnd)
	if err != nil {
		return nil, fmt.Errorf("revenue series: %w", err)
	}

	top, err := s.repo.TopProducts(ctx, time.Time{}, time.Time{}, topProductsLimit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}

	if recent == nil {
		recent = []domain.Sale{}
	}
	if top == nil {
		top = []domain.ProductRank{}
	}

	return &domain.Dashboard{
		TotalRevenue: totalRevenue,
		TotalOrders:  totalOrders,
		TodayRevenue: todayRevenue,
		TodayOrders:  todayOrders,
		RecentSales:  recent,
		RevenueData:  RevenueSeries(stamps, seriesStart, revenueSeriesDays),
		TopProducts:  top,
	}, nil
}

// RevenueSeries buckets stamps into days local days starting at start,
// oldest first. Days without orders are zero.
func RevenueSeries(stamps []domain.Stamp, start time.Time, days int) []domain.DayRevenue {
	series := make([]domain.DayRevenue, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		series[i] = domain.DayRevenue{Name: day.Weekday().String()[:3], Value: decimal.Zero}
		index[day.Format("2006-01-02")] = i
	}

	for _, stamp := range stamps {
		key := stamp.CreatedAt.In(start.Location()).Format("2006-01-02")
		if i, ok := index[key]; ok {
			series[i].Value = series[i].Value.Add(stamp.Amount)
		}
	}
	return series
}

func (s *AnalyticsService) Summary(ctx context.Context, from, to time.Time) (*domain.Summary, error) {
	if !from.Before(to) {
		return nil, domain.ErrInvalidWindow
	}

	revenue, orders, err := s.repo.Totals(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return &domain.Summary{From: from, To: to, Revenue: revenue, Orders: orders}, nil
}

func (s *AnalyticsService) TopProducts(ctx context.Context, limit int) ([]domain.ProductRank, error) {
	return s.repo.TopProducts(ctx, time.Time{}, time.Time{}, limit)
}

// TopProductsToday prefers the live ranking agg-svc keeps in Redis and falls
// back to the ledger when it is empty or unreachable.
func (s *AnalyticsService) TopProductsToday(ctx context.Context, limit int) ([]domain.ProductRank, error) {
	start, end := DayBounds(s.now())

	if s.cache != nil {
		ranks, err := s.cache.TopProductsForDay(ctx, start.Format("2006-01-02"), limit)
		if err != nil {
			log.Printf("[analytics-svc] WARNING: live ranking unavailable: %v", err)
		} else if len(ranks) > 0 {
			return ranks, nil
		}
	}

	return s.repo.TopProducts(ctx, start, end, limit)
}
