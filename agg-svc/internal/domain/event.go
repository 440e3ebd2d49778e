package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
)

type EventItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// OrderEvent mirrors the payload pos-svc publishes on the orders topic.
type OrderEvent struct {
	Type        string          `json:"type"`
	OrderID     int64           `json:"order_id"`
	OrderNumber string          `json:"order_number"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Items       []EventItem     `json:"items,omitempty"`
	Timestamp   time.Time       `json:"timestamp"`
}
