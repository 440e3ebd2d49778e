package mocks

import (
	"context"
	"time"

	"pos-backend/pos-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// OrderRepository is a mock type for the OrderRepository type
type OrderRepository struct {
	mock.Mock
}

func (_m *OrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	ret := _m.Called(ctx, order)
	return ret.Error(0)
}

func (_m *OrderRepository) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Order
	if rf, ok := ret.Get(0).(func(context.Context, int64) *domain.Order); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) ListOrders(ctx context.Context, status string) ([]domain.Order, error) {
	ret := _m.Called(ctx, status)

	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderRepository) UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) (time.Time, error) {
	ret := _m.Called(ctx, id, status)

	var r0 time.Time
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(time.Time)
	}
	return r0, ret.Error(1)
}

func NewOrderRepository(t testingT) *OrderRepository {
	m := &OrderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// CategoryRepository is a mock type for the CategoryRepository type
type CategoryRepository struct {
	mock.Mock
}

func (_m *CategoryRepository) CreateCategory(ctx context.Context, category *domain.Category) error {
	ret := _m.Called(ctx, category)
	return ret.Error(0)
}

func (_m *CategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	ret := _m.Called(ctx)

	var r0 []domain.Category
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Category)
	}
	return r0, ret.Error(1)
}

func (_m *CategoryRepository) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Category
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Category)
	}
	return r0, ret.Error(1)
}

func (_m *CategoryRepository) UpdateCategory(ctx context.Context, category *domain.Category) error {
	ret := _m.Called(ctx, category)
	return ret.Error(0)
}

func (_m *CategoryRepository) DeleteCategory(ctx context.Context, id int64) (int64, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(int64), ret.Error(1)
}

func NewCategoryRepository(t testingT) *CategoryRepository {
	m := &CategoryRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// ProductRepository is a mock type for the ProductRepository type
type ProductRepository struct {
	mock.Mock
}

func (_m *ProductRepository) CreateProduct(ctx context.Context, product *domain.Product) error {
	ret := _m.Called(ctx, product)
	return ret.Error(0)
}

func (_m *ProductRepository) ListProducts(ctx context.Context, search string) ([]domain.Product, error) {
	ret := _m.Called(ctx, search)

	var r0 []domain.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Product)
	}
	return r0, ret.Error(1)
}

func (_m *ProductRepository) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Product)
	}
	return r0, ret.Error(1)
}

func (_m *ProductRepository) UpdateProduct(ctx context.Context, product *domain.Product) error {
	ret := _m.Called(ctx, product)
	return ret.Error(0)
}

func (_m *ProductRepository) DeleteProduct(ctx context.Context, id int64) (int64, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(int64), ret.Error(1)
}

func NewProductRepository(t testingT) *ProductRepository {
	m := &ProductRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// TableRepository is a mock type for the TableRepository type
type TableRepository struct {
	mock.Mock
}

func (_m *TableRepository) CreateTable(ctx context.Context, table *domain.Table) error {
	ret := _m.Called(ctx, table)
	return ret.Error(0)
}

func (_m *TableRepository) ListTables(ctx context.Context) ([]domain.Table, error) {
	ret := _m.Called(ctx)

	var r0 []domain.Table
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Table)
	}
	return r0, ret.Error(1)
}

func (_m *TableRepository) GetTable(ctx context.Context, id int64) (*domain.Table, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Table
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Table)
	}
	return r0, ret.Error(1)
}

func (_m *TableRepository) GetTableByNumber(ctx context.Context, number string) (*domain.Table, error) {
	ret := _m.Called(ctx, number)

	var r0 *domain.Table
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Table)
	}
	return r0, ret.Error(1)
}

func (_m *TableRepository) UpdateTable(ctx context.Context, table *domain.Table) error {
	ret := _m.Called(ctx, table)
	return ret.Error(0)
}

func (_m *TableRepository) UpdateTableStatus(ctx context.Context, id int64, status domain.TableStatus) error {
	ret := _m.Called(ctx, id, status)
	return ret.Error(0)
}

func (_m *TableRepository) DeleteTable(ctx context.Context, id int64) (int64, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(int64), ret.Error(1)
}

func NewTableRepository(t testingT) *TableRepository {
	m := &TableRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// CustomerRepository is a mock type for the CustomerRepository type
type CustomerRepository struct {
	mock.Mock
}

func (_m *CustomerRepository) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	ret := _m.Called(ctx, customer)
	return ret.Error(0)
}

func (_m *CustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	ret := _m.Called(ctx)

	var r0 []domain.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Customer)
	}
	return r0, ret.Error(1)
}

func (_m *CustomerRepository) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Customer)
	}
	return r0, ret.Error(1)
}

func (_m *CustomerRepository) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	ret := _m.Called(ctx, customer)
	return ret.Error(0)
}

func (_m *CustomerRepository) DeleteCustomer(ctx context.Context, id int64) (int64, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(int64), ret.Error(1)
}

func NewCustomerRepository(t testingT) *CustomerRepository {
	m := &CustomerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// OrderPublisher is a mock type for the OrderPublisher type
type OrderPublisher struct {
	mock.Mock
}

func (_m *OrderPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	ret := _m.Called(ctx, event)
	return ret.Error(0)
}

func NewOrderPublisher(t testingT) *OrderPublisher {
	m := &OrderPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
