package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"pos-backend/pos-svc/internal/domain"
)

const maxOrderNumberAttempts = 5

type OrderService struct {
	repo      OrderRepository
	products  ProductLookup
	tables    TableLookup
	publisher OrderPublisher
	qrEncoder QRGenerator
	numbers   OrderNumberGenerator
	policy    TransitionPolicy
}

// NewOrderService wires the order ledger. products, tables, publisher and qr
// may be nil; the matching step is then skipped.
func NewOrderService(repo OrderRepository, products ProductLookup, tables TableLookup, publisher OrderPublisher, qr QRGenerator) *OrderService {
	return &OrderService{
		repo:      repo,
		products:  products,
		tables:    tables,
		publisher: publisher,
		qrEncoder: qr,
		numbers:   UUIDNumberGenerator{},
		policy:    PermissivePolicy{},
	}
}

func (s *OrderService) WithPolicy(p TransitionPolicy) *OrderService {
	s.policy = p
	return s
}

func (s *OrderService) WithNumberGenerator(g OrderNumberGenerator) *OrderService {
	s.numbers = g
	return s
}

func (s *OrderService) Create(ctx context.Context, req *domain.CreateOrderRequest) (*domain.Order, error) {
	if err := ValidateCreateOrder(req); err != nil {
		return nil, err
	}

	subtotal, discount, total, err := PriceOrder(req.Items, req.Discount)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		OrderType:     domain.OrderType(req.OrderType),
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		Status:        domain.StatusPending,
		TableNumber:   req.TableNumber,
		WaiterName:    req.WaiterName,
		CreatedBy:     req.CreatedBy,
		Subtotal:      subtotal,
		Discount:      discount,
		TotalAmount:   total,
		Items:         make([]domain.OrderItem, 0, len(req.Items)),
	}

	for _, item := range req.Items {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID:   s.resolveProduct(ctx, item.ProductID),
			ProductName: item.Name,
			Price:       item.Price,
			Quantity:    item.Quantity,
			Notes:       item.Notes,
		})
	}

	s.checkTable(ctx, order.TableNumber)

	if err := s.insertWithUniqueNumber(ctx, order); err != nil {
		return nil, err
	}

	order.QRCode = s.QRLink(order.ID)
	s.publish(ctx, orderEvent(domain.EventOrderCreated, order))

	return order, nil
}

// resolveProduct returns the product id if the product still exists.
// Lookup failures only drop the association; the snapshot is kept either way.
func (s *OrderService) resolveProduct(ctx context.Context, id *int64) *int64 {
	if id == nil || s.products == nil {
		return nil
	}
	product, err := s.products.GetProduct(ctx, *id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Printf("[pos-svc] WARNING: product lookup %d failed: %v", *id, err)
		}
		return nil
	}
	pid := product.ID
	return &pid
}

func (s *OrderService) checkTable(ctx context.Context, number *string) {
	if number == nil || *number == "" || s.tables == nil {
		return
	}
	if _, err := s.tables.GetTableByNumber(ctx, *number); err != nil {
		log.Printf("[pos-svc] WARNING: order references unknown table %q: %v", *number, err)
	}
}

func (s *OrderService) insertWithUniqueNumber(ctx context.Context, order *domain.Order) error {
	var lastErr error
	for attempt := 1; attempt <= maxOrderNumberAttempts; attempt++ {
		order.OrderNumber = s.numbers.Next()

		err := s.repo.CreateOrder(ctx, order)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrDuplicateOrderNumber) {
			return &domain.PersistenceError{Op: "create order", Err: err}
		}

		log.Printf("[pos-svc] order number %s already taken (attempt %d/%d)", order.OrderNumber, attempt, maxOrderNumberAttempts)
		lastErr = err
	}

	return &domain.PersistenceError{
		Op:  "create order",
		Err: fmt.Errorf("no unique order number after %d attempts: %w", maxOrderNumberAttempts, lastErr),
	}
}

func (s *OrderService) Get(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, readError("get order", err)
	}
	order.QRCode = s.QRLink(order.ID)
	return order, nil
}

func (s *OrderService) List(ctx context.Context, status string) ([]domain.Order, error) {
	orders, err := s.repo.ListOrders(ctx, status)
	if err != nil {
		return nil, &domain.PersistenceError{Op: "list orders", Err: err}
	}
	for i := range orders {
		orders[i].QRCode = s.QRLink(orders[i].ID)
	}
	return orders, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Order, error) {
	next := domain.OrderStatus(status)
	if !next.Valid() {
		return nil, domain.NewValidationError("status", "%q is not a valid choice", status)
	}

	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, readError("get order", err)
	}

	if err := s.policy.Allow(order.Status, next); err != nil {
		return nil, err
	}

	updatedAt, err := s.repo.UpdateOrderStatus(ctx, id, next)
	if err != nil {
		return nil, readError("update order status", err)
	}

	order.Status = next
	order.UpdatedAt = updatedAt
	order.QRCode = s.QRLink(order.ID)

	s.publish(ctx, orderEvent(domain.EventOrderStatusChanged, order))

	return order, nil
}

// QRCode renders a PNG for the receipt link of an existing order.
func (s *OrderService) QRCode(ctx context.Context, id int64) ([]byte, error) {
	order, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, readError("get order", err)
	}
	if s.qrEncoder == nil {
		return nil, errors.New("qr encoder is not configured")
	}
	return s.qrEncoder.Generate(order.OrderNumber)
}

func (s *OrderService) QRLink(id int64) string {
	return fmt.Sprintf("/api/orders/%d/qrcode", id)
}

func (s *OrderService) publish(ctx context.Context, event domain.OrderEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		log.Printf("[pos-svc] WARNING: failed to publish %s for order %d: %v", event.Type, event.OrderID, err)
	}
}

func orderEvent(eventType string, order *domain.Order) domain.OrderEvent {
	event := domain.OrderEvent{
		Type:        eventType,
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
		TotalAmount: order.TotalAmount,
		Timestamp:   time.Now().UTC(),
	}
	if eventType == domain.EventOrderCreated {
		for _, item := range order.Items {
			event.Items = append(event.Items, domain.OrderEventItem{Name: item.ProductName, Quantity: item.Quantity})
		}
	}
	return event
}

func readError(op string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return &domain.PersistenceError{Op: op, Err: err}
}
