package service

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"pos-backend/pos-svc/internal/domain"

	"github.com/shopspring/decimal"
)

// Column limits of the orders, order_items and dining_tables tables.
const (
	maxTableNumberLen = 20
	maxWaiterNameLen  = 100
	maxSectionLen     = 100
	maxItemNameLen    = 200
	moneyPlaces       = 2
)

// maxAmount is the first value NUMERIC(10,2) cannot hold.
var maxAmount = decimal.New(1, 8)

// ValidateCreateOrder checks the order metadata and every line item. It does
// not look at discount bounds; PriceOrder does that once the subtotal is known.
func ValidateCreateOrder(req *domain.CreateOrderRequest) error {
	if req == nil {
		return domain.NewValidationError("", "order payload is required")
	}

	if req.OrderType == "" {
		return domain.NewValidationError("order_type", "this field is required")
	}
	if !domain.OrderType(req.OrderType).Valid() {
		return domain.NewValidationError("order_type", "%q is not a valid choice", req.OrderType)
	}

	if req.PaymentMethod == "" {
		return domain.NewValidationError("payment_method", "this field is required")
	}
	if !domain.PaymentMethod(req.PaymentMethod).Valid() {
		return domain.NewValidationError("payment_method", "%q is not a valid choice", req.PaymentMethod)
	}

	if req.TableNumber != nil && utf8.RuneCountInString(*req.TableNumber) > maxTableNumberLen {
		return domain.NewValidationError("table_number", "must be at most %d characters", maxTableNumberLen)
	}
	if req.WaiterName != nil && utf8.RuneCountInString(*req.WaiterName) > maxWaiterNameLen {
		return domain.NewValidationError("waiter_name", "must be at most %d characters", maxWaiterNameLen)
	}

	if len(req.Items) == 0 {
		return domain.NewValidationError("items_data", "at least one item is required")
	}

	for i, item := range req.Items {
		if err := validateItem(item, i); err != nil {
			return err
		}
	}

	return nil
}

func validateItem(item domain.CreateOrderItemRequest, index int) error {
	prefix := fmt.Sprintf("items_data[%d]", index)

	if strings.TrimSpace(item.Name) == "" {
		return domain.NewValidationError(prefix+".name", "this field is required")
	}
	if utf8.RuneCountInString(item.Name) > maxItemNameLen {
		return domain.NewValidationError(prefix+".name", "must be at most %d characters", maxItemNameLen)
	}
	if item.Quantity < 1 {
		return domain.NewValidationError(prefix+".quantity", "must be a positive integer")
	}
	if item.Quantity > math.MaxInt32 {
		return domain.NewValidationError(prefix+".quantity", "must be at most %d", math.MaxInt32)
	}
	if err := checkAmount(prefix+".price", item.Price); err != nil {
		return err
	}

	return nil
}

// PriceOrder returns subtotal, discount and total for the given items.
// A nil discount means zero.
func PriceOrder(items []domain.CreateOrderItemRequest, discount *decimal.Decimal) (decimal.Decimal, decimal.Decimal, decimal.Decimal, error) {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	d := decimal.Zero
	if discount != nil {
		d = *discount
	}

	if subtotal.GreaterThanOrEqual(maxAmount) {
		return decimal.Zero, decimal.Zero, decimal.Zero,
			domain.NewValidationError("items_data", "subtotal %s must be below %s", subtotal.StringFixed(2), maxAmount)
	}
	if err := checkAmount("discount", d); err != nil {
		return decimal.Zero, decimal.Zero, decimal.Zero, err
	}
	if d.GreaterThan(subtotal) {
		return decimal.Zero, decimal.Zero, decimal.Zero,
			domain.NewValidationError("discount", "%s exceeds subtotal %s", d.StringFixed(2), subtotal.StringFixed(2))
	}

	return subtotal, d, subtotal.Sub(d), nil
}

// checkAmount rejects values the NUMERIC(10,2) columns would round or refuse.
func checkAmount(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return domain.NewValidationError(field, "must not be negative")
	}
	if !v.Equal(v.Round(moneyPlaces)) {
		return domain.NewValidationError(field, "must have at most %d decimal places", moneyPlaces)
	}
	if v.GreaterThanOrEqual(maxAmount) {
		return domain.NewValidationError(field, "must be below %s", maxAmount)
	}
	return nil
}
