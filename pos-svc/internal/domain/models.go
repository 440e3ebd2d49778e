package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderType string

const (
	OrderTypeDineIn   OrderType = "dine-in"
	OrderTypeTakeaway OrderType = "takeaway"
	OrderTypeDelivery OrderType = "delivery"
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
	PaymentQR   PaymentMethod = "qr"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusServed    OrderStatus = "served"
	StatusCancelled OrderStatus = "cancelled"
)

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
	TableCleaning  TableStatus = "cleaning"
)

var (
	OrderTypes     = []OrderType{OrderTypeDineIn, OrderTypeTakeaway, OrderTypeDelivery}
	PaymentMethods = []PaymentMethod{PaymentCash, PaymentCard, PaymentQR}
	OrderStatuses  = []OrderStatus{StatusPending, StatusPreparing, StatusReady, StatusServed, StatusCancelled}
	TableStatuses  = []TableStatus{TableAvailable, TableOccupied, TableReserved, TableCleaning}
)

func (t OrderType) Valid() bool {
	for _, v := range OrderTypes {
		if v == t {
			return true
		}
	}
	return false
}

func (p PaymentMethod) Valid() bool {
	for _, v := range PaymentMethods {
		if v == p {
			return true
		}
	}
	return false
}

func (s OrderStatus) Valid() bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func (s TableStatus) Valid() bool {
	for _, v := range TableStatuses {
		if v == s {
			return true
		}
	}
	return false
}

type Category struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Image string `json:"image"`
}

type Product struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	CategoryID   int64           `json:"category"`
	CategoryName string          `json:"category_name,omitempty"`
	Image        string          `json:"image"`
	Description  string          `json:"description"`
	IsAvailable  bool            `json:"is_available"`
}

// Customer is a loyalty-program member. Phone is the natural key.
type Customer struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         *string   `json:"email"`
	Phone         string    `json:"phone"`
	Address       *string   `json:"address"`
	LoyaltyPoints int       `json:"loyalty_points"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DefaultSection is assigned to tables created without one.
const DefaultSection = "Main Hall"

type Table struct {
	ID          int64       `json:"id"`
	TableNumber string      `json:"table_number"`
	Capacity    int         `json:"capacity"`
	Status      TableStatus `json:"status"`
	Section     string      `json:"section"`
	IsActive    bool        `json:"is_active"`
}

// Order is the persisted ledger record. Subtotal, Discount and TotalAmount are
// fixed at creation.
type Order struct {
	ID            int64           `json:"id"`
	OrderNumber   string          `json:"order_number"`
	OrderType     OrderType       `json:"order_type"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Status        OrderStatus     `json:"status"`
	TableNumber   *string         `json:"table_number"`
	WaiterName    *string         `json:"waiter_name"`
	CreatedBy     *string         `json:"created_by"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	QRCode        string          `json:"qr_code,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Items         []OrderItem     `json:"items"`
}

// OrderItem holds a snapshot of the product name and price taken when the
// order was placed. ProductID is a weak reference and may be nil.
type OrderItem struct {
	ID          int64           `json:"id"`
	OrderID     int64           `json:"order"`
	ProductID   *int64          `json:"product"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Notes       string          `json:"notes"`
}

// LineTotal is price × quantity.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type CreateOrderRequest struct {
	OrderType     string                   `json:"order_type"`
	PaymentMethod string                   `json:"payment_method"`
	TableNumber   *string                  `json:"table_number"`
	WaiterName    *string                  `json:"waiter_name"`
	Discount      *decimal.Decimal         `json:"discount"`
	CreatedBy     *string                  `json:"-"`
	Items         []CreateOrderItemRequest `json:"items_data"`
}

type CreateOrderItemRequest struct {
	ProductID *int64          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Notes     string          `json:"notes"`
}

type OrderEventItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// OrderEvent is published to Kafka after an order is committed or its status changes.
type OrderEvent struct {
	Type        string           `json:"type"`
	OrderID     int64            `json:"order_id"`
	OrderNumber string           `json:"order_number"`
	Status      OrderStatus      `json:"status"`
	TotalAmount decimal.Decimal  `json:"total_amount"`
	Items       []OrderEventItem `json:"items,omitempty"`
	Timestamp   time.Time        `json:"timestamp"`
}

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
)
