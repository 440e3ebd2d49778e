package service

import (
	"context"
	"time"

	"pos-backend/pos-svc/internal/domain"
	"pos-backend/pos-svc/internal/storage"
)

type OrderRepository interface {
	// CreateOrder stores the order and its items atomically. It fills in
	// ids and timestamps only after the transaction commits.
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	ListOrders(ctx context.Context, status string) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) (time.Time, error)
}

type CategoryRepository interface {
	CreateCategory(ctx context.Context, category *domain.Category) error
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	UpdateCategory(ctx context.Context, category *domain.Category) error
	DeleteCategory(ctx context.Context, id int64) (int64, error)
}

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *domain.Product) error
	ListProducts(ctx context.Context, search string) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, id int64) (int64, error)
}

type TableRepository interface {
	CreateTable(ctx context.Context, table *domain.Table) error
	ListTables(ctx context.Context) ([]domain.Table, error)
	GetTable(ctx context.Context, id int64) (*domain.Table, error)
	GetTableByNumber(ctx context.Context, number string) (*domain.Table, error)
	UpdateTable(ctx context.Context, table *domain.Table) error
	UpdateTableStatus(ctx context.Context, id int64, status domain.TableStatus) error
	DeleteTable(ctx context.Context, id int64) (int64, error)
}

type CustomerRepository interface {
	CreateCustomer(ctx context.Context, customer *domain.Customer) error
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer *domain.Customer) error
	DeleteCustomer(ctx context.Context, id int64) (int64, error)
}

// ProductLookup is the slice of the catalog the order ledger reads.
type ProductLookup interface {
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
}

// TableLookup is the slice of the table registry the order ledger reads.
type TableLookup interface {
	GetTableByNumber(ctx context.Context, number string) (*domain.Table, error)
}

type OrderPublisher interface {
	PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error
}

type OrderNumberGenerator interface {
	Next() string
}

type QRGenerator interface {
	Generate(orderNumber string) ([]byte, error)
}

type OrderServiceInterface interface {
	Create(ctx context.Context, req *domain.CreateOrderRequest) (*domain.Order, error)
	Get(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context, status string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*domain.Order, error)
	QRCode(ctx context.Context, id int64) ([]byte, error)
	QRLink(id int64) string
}

type CategoryServiceInterface interface {
	Create(ctx context.Context, category *domain.Category) error
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id int64) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id int64) error
}

type ProductServiceInterface interface {
	Create(ctx context.Context, product *domain.Product) error
	List(ctx context.Context, search string) ([]domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id int64) error
}

type TableServiceInterface interface {
	Create(ctx context.Context, table *domain.Table) error
	List(ctx context.Context) ([]domain.Table, error)
	Get(ctx context.Context, id int64) (*domain.Table, error)
	Update(ctx context.Context, table *domain.Table) error
	UpdateStatus(ctx context.Context, id int64, status string) (*domain.Table, error)
	Delete(ctx context.Context, id int64) error
}

type CustomerServiceInterface interface {
	Create(ctx context.Context, customer *domain.Customer) error
	List(ctx context.Context) ([]domain.Customer, error)
	Get(ctx context.Context, id int64) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int64) error
}

var (
	_ OrderServiceInterface    = (*OrderService)(nil)
	_ CategoryServiceInterface = (*CategoryService)(nil)
	_ ProductServiceInterface  = (*ProductService)(nil)
	_ TableServiceInterface    = (*TableService)(nil)
	_ CustomerServiceInterface = (*CustomerService)(nil)

	_ OrderRepository    = (*storage.PostgresRepository)(nil)
	_ CategoryRepository = (*storage.PostgresRepository)(nil)
	_ ProductRepository  = (*storage.PostgresRepository)(nil)
	_ TableRepository    = (*storage.PostgresRepository)(nil)
	_ CustomerRepository = (*storage.PostgresRepository)(nil)
	_ OrderPublisher     = (*storage.KafkaPublisher)(nil)
)
