package mocks

import (
	"context"

	"pos-backend/pos-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// OrderServiceInterface is a mock type for the OrderServiceInterface type
type OrderServiceInterface struct {
	mock.Mock
}

func (_m *OrderServiceInterface) Create(ctx context.Context, req *domain.CreateOrderRequest) (*domain.Order, error) {
	ret := _m.Called(ctx, req)

	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) Get(ctx context.Context, id int64) (*domain.Order, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) List(ctx context.Context, status string) ([]domain.Order, error) {
	ret := _m.Called(ctx, status)

	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Order, error) {
	ret := _m.Called(ctx, id, status)

	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) QRCode(ctx context.Context, id int64) ([]byte, error) {
	ret := _m.Called(ctx, id)

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) QRLink(id int64) string {
	ret := _m.Called(id)
	return ret.String(0)
}

func NewOrderServiceInterface(t testingT) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// TableServiceInterface is a mock type for the TableServiceInterface type
type TableServiceInterface struct {
	mock.Mock
}

func (_m *TableServiceInterface) Create(ctx context.Context, table *domain.Table) error {
	ret := _m.Called(ctx, table)
	return ret.Error(0)
}

func (_m *TableServiceInterface) List(ctx context.Context) ([]domain.Table, error) {
	ret := _m.Called(ctx)

	var r0 []domain.Table
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Table)
	}
	return r0, ret.Error(1)
}

func (_m *TableServiceInterface) Get(ctx context.Context, id int64) (*domain.Table, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Table
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Table)
	}
	return r0, ret.Error(1)
}

func (_m *TableServiceInterface) Update(ctx context.Context, table *domain.Table) error {
	ret := _m.Called(ctx, table)
	return ret.Error(0)
}

func (_m *TableServiceInterface) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Table, error) {
	ret := _m.Called(ctx, id, status)

	var r0 *domain.Table
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Table)
	}
	return r0, ret.Error(1)
}

func (_m *TableServiceInterface) Delete(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func NewTableServiceInterface(t testingT) *TableServiceInterface {
	m := &TableServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
