package mocks

import (
	"context"

	"pos-backend/agg-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// StoreInterface is a mock type for the StoreInterface type
type StoreInterface struct {
	mock.Mock
}

// RecordSale provides a mock function with given fields: ctx, day, items
func (_m *StoreInterface) RecordSale(ctx context.Context, day string, items []domain.EventItem) error {
	ret := _m.Called(ctx, day, items)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, []domain.EventItem) error); ok {
		r0 = rf(ctx, day, items)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// InvalidateDashboard provides a mock function with given fields: ctx
func (_m *StoreInterface) InvalidateDashboard(ctx context.Context) error {
	ret := _m.Called(ctx)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewStoreInterface creates a new instance of StoreInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewStoreInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *StoreInterface {
	m := &StoreInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
