package service_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"pos-backend/pos-svc/internal/domain"
	"pos-backend/pos-svc/internal/mocks"
	"pos-backend/pos-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memRepo is an in-memory order store that enforces unique order numbers
// the way the database index does.
type memRepo struct {
	mu      sync.Mutex
	nextID  int64
	orders  map[int64]domain.Order
	numbers map[string]bool
	updates int
}

func newMemRepo() *memRepo {
	return &memRepo{orders: map[int64]domain.Order{}, numbers: map[string]bool{}}
}

func (m *memRepo) CreateOrder(ctx context.Context, order *domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.numbers[order.OrderNumber] {
		return domain.ErrDuplicateOrderNumber
	}
	m.nextID++
	order.ID = m.nextID
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	for i := range order.Items {
		order.Items[i].ID = order.ID*100 + int64(i)
		order.Items[i].OrderID = order.ID
	}
	m.numbers[order.OrderNumber] = true

	stored := *order
	stored.Items = append([]domain.OrderItem(nil), order.Items...)
	m.orders[order.ID] = stored
	return nil
}

func (m *memRepo) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := stored
	out.Items = append([]domain.OrderItem(nil), stored.Items...)
	return &out, nil
}

func (m *memRepo) ListOrders(ctx context.Context, status string) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	orders := []domain.Order{}
	for _, o := range m.orders {
		if status == "" || string(o.Status) == status {
			orders = append(orders, o)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID > orders[j].ID })
	return orders, nil
}

func (m *memRepo) UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) (time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.orders[id]
	if !ok {
		return time.Time{}, domain.ErrNotFound
	}
	m.updates++
	stored.Status = status
	stored.UpdatedAt = time.Now()
	m.orders[id] = stored
	return stored.UpdatedAt, nil
}

type fakeCatalog struct {
	products map[int64]*domain.Product
	err      error
}

func (c *fakeCatalog) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	if c.err != nil {
		return nil, c.err
	}
	p, ok := c.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

type sequenceNumbers struct {
	mu   sync.Mutex
	seq  []string
	next int
}

func (s *sequenceNumbers) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.seq[s.next%len(s.seq)]
	s.next++
	return n
}

func int64Ptr(v int64) *int64 { return &v }

func strPtr(s string) *string { return &s }

func newCatalog() *fakeCatalog {
	return &fakeCatalog{products: map[int64]*domain.Product{
		1: {ID: 1, Name: "Burger", Price: dec("10.00")},
		2: {ID: 2, Name: "Fries", Price: dec("3.50")},
	}}
}

func burgerOrder() *domain.CreateOrderRequest {
	return &domain.CreateOrderRequest{
		OrderType:     "dine-in",
		PaymentMethod: "cash",
		Items: []domain.CreateOrderItemRequest{
			{ProductID: int64Ptr(1), Name: "Burger", Price: dec("10.00"), Quantity: 2},
			{ProductID: int64Ptr(2), Name: "Fries", Price: dec("3.50"), Quantity: 1},
		},
	}
}

func TestOrderService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("burger and fries", func(t *testing.T) {
		repo := newMemRepo()
		publisher := mocks.NewOrderPublisher(t)
		publisher.On("PublishOrderEvent", mock.Anything, mock.MatchedBy(func(e domain.OrderEvent) bool {
			return e.Type == domain.EventOrderCreated && len(e.Items) == 2 && e.Items[0].Quantity == 2
		})).Return(nil).Once()

		svc := service.NewOrderService(repo, newCatalog(), nil, publisher, nil)

		req := burgerOrder()
		req.CreatedBy = strPtr("cashier-1")
		order, err := svc.Create(ctx, req)

		require.NoError(t, err)
		assert.Regexp(t, `^ORD-[0-9A-F]{6}$`, order.OrderNumber)
		assert.Equal(t, domain.StatusPending, order.Status)
		assert.Equal(t, "23.50", order.Subtotal.StringFixed(2))
		assert.Equal(t, "0.00", order.Discount.StringFixed(2))
		assert.Equal(t, "23.50", order.TotalAmount.StringFixed(2))
		assert.Equal(t, "cashier-1", *order.CreatedBy)
		assert.Equal(t, "/api/orders/1/qrcode", order.QRCode)
		require.Len(t, order.Items, 2)
		assert.NotZero(t, order.Items[0].ID)
		assert.Equal(t, int64(1), *order.Items[0].ProductID)
	})

	t.Run("discount lowers total", func(t *testing.T) {
		svc := service.NewOrderService(newMemRepo(), newCatalog(), nil, nil, nil)

		req := burgerOrder()
		req.Discount = decPtr("5.00")
		order, err := svc.Create(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "23.50", order.Subtotal.StringFixed(2))
		assert.Equal(t, "5.00", order.Discount.StringFixed(2))
		assert.Equal(t, "18.50", order.TotalAmount.StringFixed(2))
	})

	t.Run("unknown product keeps snapshot without link", func(t *testing.T) {
		svc := service.NewOrderService(newMemRepo(), newCatalog(), nil, nil, nil)

		req := burgerOrder()
		req.Items[0].ProductID = int64Ptr(999)
		order, err := svc.Create(ctx, req)

		require.NoError(t, err)
		assert.Nil(t, order.Items[0].ProductID)
		assert.Equal(t, "Burger", order.Items[0].ProductName)
		assert.Equal(t, int64(2), *order.Items[1].ProductID)
	})

	t.Run("catalog outage degrades to no link", func(t *testing.T) {
		catalog := newCatalog()
		catalog.err = errors.New("connection refused")
		svc := service.NewOrderService(newMemRepo(), catalog, nil, nil, nil)

		order, err := svc.Create(ctx, burgerOrder())

		require.NoError(t, err)
		assert.Nil(t, order.Items[0].ProductID)
		assert.Nil(t, order.Items[1].ProductID)
	})

	t.Run("unknown table is not fatal", func(t *testing.T) {
		tables := mocks.NewTableRepository(t)
		tables.On("GetTableByNumber", mock.Anything, "T9").Return(nil, domain.ErrNotFound).Once()
		svc := service.NewOrderService(newMemRepo(), newCatalog(), tables, nil, nil)

		req := burgerOrder()
		req.TableNumber = strPtr("T9")
		order, err := svc.Create(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "T9", *order.TableNumber)
	})

	t.Run("validation error persists nothing", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		svc := service.NewOrderService(repo, newCatalog(), nil, nil, nil)

		req := burgerOrder()
		req.Items[1].Quantity = 0
		_, err := svc.Create(ctx, req)

		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "items_data[1].quantity", ve.Field)
		repo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})

	t.Run("amounts the ledger would round are rejected", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		svc := service.NewOrderService(repo, newCatalog(), nil, nil, nil)

		req := burgerOrder()
		req.Items = []domain.CreateOrderItemRequest{{Name: "Syrup", Price: dec("1.333"), Quantity: 3}}
		_, err := svc.Create(ctx, req)

		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "items_data[0].price", ve.Field)

		req = burgerOrder()
		req.Discount = decPtr("0.005")
		_, err = svc.Create(ctx, req)

		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "discount", ve.Field)
		repo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
	})

	t.Run("publish failure does not fail the order", func(t *testing.T) {
		publisher := mocks.NewOrderPublisher(t)
		publisher.On("PublishOrderEvent", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
		svc := service.NewOrderService(newMemRepo(), newCatalog(), nil, publisher, nil)

		order, err := svc.Create(ctx, burgerOrder())

		require.NoError(t, err)
		assert.NotZero(t, order.ID)
	})

	t.Run("storage failure is a persistence error", func(t *testing.T) {
		repo := mocks.NewOrderRepository(t)
		repo.On("CreateOrder", mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()
		svc := service.NewOrderService(repo, newCatalog(), nil, nil, nil)

		_, err := svc.Create(ctx, burgerOrder())

		var pe *domain.PersistenceError
		require.ErrorAs(t, err, &pe)
	})
}

func TestOrderService_CreateRetriesOnDuplicateNumber(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	repo.numbers["ORD-AAAAAA"] = true

	numbers := &sequenceNumbers{seq: []string{"ORD-AAAAAA", "ORD-AAAAAA", "ORD-BBBBBB"}}
	svc := service.NewOrderService(repo, newCatalog(), nil, nil, nil).WithNumberGenerator(numbers)

	order, err := svc.Create(ctx, burgerOrder())

	require.NoError(t, err)
	assert.Equal(t, "ORD-BBBBBB", order.OrderNumber)
	assert.Equal(t, 3, numbers.next)
}

func TestOrderService_CreateGivesUpAfterFiveCollisions(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	repo.numbers["ORD-AAAAAA"] = true

	numbers := &sequenceNumbers{seq: []string{"ORD-AAAAAA"}}
	svc := service.NewOrderService(repo, newCatalog(), nil, nil, nil).WithNumberGenerator(numbers)

	_, err := svc.Create(ctx, burgerOrder())

	var pe *domain.PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.ErrorIs(t, err, domain.ErrDuplicateOrderNumber)
	assert.Equal(t, 5, numbers.next)
	assert.Empty(t, repo.orders)
}

func TestOrderService_ConcurrentCreatesGetUniqueNumbers(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	svc := service.NewOrderService(repo, newCatalog(), nil, nil, nil)

	const n = 100
	var wg sync.WaitGroup
	results := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			order, err := svc.Create(ctx, burgerOrder())
			if assert.NoError(t, err) {
				results <- order.OrderNumber
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := map[string]bool{}
	for number := range results {
		assert.False(t, seen[number], "duplicate order number %s", number)
		seen[number] = true
	}
	assert.Len(t, seen, n)
}

func TestOrderService_SnapshotSurvivesCatalogChanges(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo()
	catalog := newCatalog()
	svc := service.NewOrderService(repo, catalog, nil, nil, nil)

	created, err := svc.Create(ctx, burgerOrder())
	require.NoError(t, err)

	catalog.products[1].Name = "Deluxe Burger"
	catalog.products[1].Price = dec("99.00")
	delete(catalog.products, 2)

	order, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Burger", order.Items[0].ProductName)
	assert.Equal(t, "10.00", order.Items[0].Price.StringFixed(2))
	assert.Equal(t, "Fries", order.Items[1].ProductName)
	assert.Equal(t, "23.50", order.TotalAmount.StringFixed(2))
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("pending to preparing then invalid value", func(t *testing.T) {
		repo := newMemRepo()
		publisher := mocks.NewOrderPublisher(t)
		publisher.On("PublishOrderEvent", mock.Anything, mock.MatchedBy(func(e domain.OrderEvent) bool {
			return e.Type == domain.EventOrderCreated
		})).Return(nil).Once()
		publisher.On("PublishOrderEvent", mock.Anything, mock.MatchedBy(func(e domain.OrderEvent) bool {
			return e.Type == domain.EventOrderStatusChanged && e.Status == domain.StatusPreparing
		})).Return(nil).Once()

		svc := service.NewOrderService(repo, newCatalog(), nil, publisher, nil)
		created, err := svc.Create(ctx, burgerOrder())
		require.NoError(t, err)

		updated, err := svc.UpdateStatus(ctx, created.ID, "preparing")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPreparing, updated.Status)
		assert.Len(t, updated.Items, 2)

		_, err = svc.UpdateStatus(ctx, created.ID, "done")
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "status", ve.Field)

		current, err := svc.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPreparing, current.Status)
		assert.Equal(t, 1, repo.updates)
	})

	t.Run("unknown order", func(t *testing.T) {
		svc := service.NewOrderService(newMemRepo(), nil, nil, nil, nil)

		_, err := svc.UpdateStatus(ctx, 42, "ready")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("strict policy blocks leaving served", func(t *testing.T) {
		repo := newMemRepo()
		svc := service.NewOrderService(repo, newCatalog(), nil, nil, nil).WithPolicy(service.StrictPolicy{})
		created, err := svc.Create(ctx, burgerOrder())
		require.NoError(t, err)

		_, err = svc.UpdateStatus(ctx, created.ID, "served")
		require.NoError(t, err)

		_, err = svc.UpdateStatus(ctx, created.ID, "pending")
		assert.True(t, domain.IsValidation(err))
		assert.Equal(t, 1, repo.updates)
	})

	t.Run("permissive policy allows reopening", func(t *testing.T) {
		svc := service.NewOrderService(newMemRepo(), newCatalog(), nil, nil, nil)
		created, err := svc.Create(ctx, burgerOrder())
		require.NoError(t, err)

		_, err = svc.UpdateStatus(ctx, created.ID, "cancelled")
		require.NoError(t, err)
		updated, err := svc.UpdateStatus(ctx, created.ID, "pending")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPending, updated.Status)
	})
}

func TestOrderService_List(t *testing.T) {
	ctx := context.Background()
	svc := service.NewOrderService(newMemRepo(), newCatalog(), nil, nil, nil)

	first, err := svc.Create(ctx, burgerOrder())
	require.NoError(t, err)
	second, err := svc.Create(ctx, burgerOrder())
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, first.ID, "ready")
	require.NoError(t, err)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)

	ready, err := svc.List(ctx, "ready")
	require.NoError(t, err)
	require.Len(t, ready, 1)
	assert.Equal(t, first.ID, ready[0].ID)

	none, err := svc.List(ctx, "bogus")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestOrderService_QRCode(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewOrderRepository(t)
	repo.On("GetOrder", mock.Anything, int64(7)).Return(&domain.Order{ID: 7, OrderNumber: "ORD-ABC123"}, nil).Once()
	repo.On("GetOrder", mock.Anything, int64(8)).Return(nil, domain.ErrNotFound).Once()

	svc := service.NewOrderService(repo, nil, nil, nil, service.DefaultQRGenerator{BaseURL: "http://pos.local"})

	png, err := svc.QRCode(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])

	_, err = svc.QRCode(ctx, 8)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
