package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidWindow = errors.New("invalid window: from must be before to")

// Sale is the read model of an order shown in the recent sales list.
type Sale struct {
	ID            int64           `json:"id"`
	OrderNumber   string          `json:"order_number"`
	OrderType     string          `json:"order_type"`
	PaymentMethod string          `json:"payment_method"`
	Status        string          `json:"status"`
	TableNumber   *string         `json:"table_number"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Stamp is one order's contribution to a revenue series.
type Stamp struct {
	CreatedAt time.Time
	Amount    decimal.Decimal
}

type DayRevenue struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

type ProductRank struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

type Dashboard struct {
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
	TotalOrders  int64           `json:"totalOrders"`
	TodayRevenue decimal.Decimal `json:"todayRevenue"`
	TodayOrders  int64           `json:"todayOrders"`
	RecentSales  []Sale          `json:"recentSales"`
	RevenueData  []DayRevenue    `json:"revenueData"`
	TopProducts  []ProductRank   `json:"topProducts"`
}

type Summary struct {
	From    time.Time       `json:"from"`
	To      time.Time       `json:"to"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int64           `json:"orders"`
}
