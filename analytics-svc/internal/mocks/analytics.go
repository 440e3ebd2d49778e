package mocks

import (
	"context"
	"time"

	"pos-backend/analytics-svc/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// AnalyticsInterface is a mock type for the AnalyticsInterface type
type AnalyticsInterface struct {
	mock.Mock
}

func (_m *AnalyticsInterface) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	ret := _m.Called(ctx)

	var r0 *domain.Dashboard
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Dashboard)
	}
	return r0, ret.Error(1)
}

func (_m *AnalyticsInterface) Summary(ctx context.Context, from, to time.Time) (*domain.Summary, error) {
	ret := _m.Called(ctx, from, to)

	var r0 *domain.Summary
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Summary)
	}
	return r0, ret.Error(1)
}

func (_m *AnalyticsInterface) TopProducts(ctx context.Context, limit int) ([]domain.ProductRank, error) {
	ret := _m.Called(ctx, limit)

	var r0 []domain.ProductRank
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.ProductRank)
	}
	return r0, ret.Error(1)
}

func (_m *AnalyticsInterface) TopProductsToday(ctx context.Context, limit int) ([]domain.ProductRank, error) {
	ret := _m.Called(ctx, limit)

	var r0 []domain.ProductRank
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.ProductRank)
	}
	return r0, ret.Error(1)
}

func (_m *AnalyticsInterface) Now() time.Time {
	ret := _m.Called()
	return ret.Get(0).(time.Time)
}

func NewAnalyticsInterface(t testingT) *AnalyticsInterface {
	m := &AnalyticsInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// SalesRepository is a mock type for the SalesRepository type
type SalesRepository struct {
	mock.Mock
}

func (_m *SalesRepository) Totals(ctx context.Context, from, to time.Time) (decimal.Decimal, int64, error) {
	ret := _m.Called(ctx, from, to)
	return ret.Get(0).(decimal.Decimal), ret.Get(1).(int64), ret.Error(2)
}

func (_m *SalesRepository) RecentOrders(ctx context.Context, limit int) ([]domain.Sale, error) {
	ret := _m.Called(ctx, limit)

	var r0 []domain.Sale
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Sale)
	}
	return r0, ret.Error(1)
}

func (_m *SalesRepository) RevenueStamps(ctx context.Context, from, to time.Time) ([]domain.Stamp, error) {
	ret := _m.Called(ctx, from, to)

	var r0 []domain.Stamp
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Stamp)
	}
	return r0, ret.Error(1)
}

func (_m *SalesRepository) TopProducts(ctx context.Context, from, to time.Time, limit int) ([]domain.ProductRank, error) {
	ret := _m.Called(ctx, from, to, limit)

	var r0 []domain.ProductRank
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.ProductRank)
	}
	return r0, ret.Error(1)
}

func NewSalesRepository(t testingT) *SalesRepository {
	m := &SalesRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
