package storage

import (
	"context"
	"database/sql"
	"time"

	"pos-backend/pos-svc/internal/domain"

	"github.com/lib/pq"
)

const orderColumns = `id, order_number, order_type, payment_method, status,
	table_number, waiter_name, created_by, subtotal, discount, total_amount, created_at, updated_at`

// CreateOrder writes the order row and all item rows in one transaction.
// The order struct is only updated once the commit succeeds.
func (r *PostgresRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var (
		id                   int64
		createdAt, updatedAt time.Time
	)
	if err := tx.QueryRowContext(ctx, `
		INSERT INTO orders (order_number, order_type, payment_method, status, table_number,
			waiter_name, created_by, subtotal, discount, total_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`, order.OrderNumber, order.OrderType, order.PaymentMethod, order.Status, order.TableNumber,
		order.WaiterName, order.CreatedBy, order.Subtotal, order.Discount, order.TotalAmount).
		Scan(&id, &createdAt, &updatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateOrderNumber
		}
		return err
	}

	itemIDs := make([]int64, len(order.Items))
	for i, item := range order.Items {
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, product_id, product_name, price, quantity, notes)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`, id, item.ProductID, item.ProductName, item.Price, item.Quantity, item.Notes).Scan(&itemIDs[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	order.ID = id
	order.CreatedAt = createdAt
	order.UpdatedAt = updatedAt
	for i := range order.Items {
		order.Items[i].ID = itemIDs[i]
		order.Items[i].OrderID = id
	}
	return nil
}

func (r *PostgresRepository) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := scanOrder(r.DB.QueryRowContext(ctx, "SELECT "+orderColumns+" FROM orders WHERE id = $1", id))
	if err != nil {
		return nil, notFound(err)
	}

	items, err := r.loadItems(ctx, []int64{order.ID})
	if err != nil {
		return nil, err
	}
	order.Items = items[order.ID]
	if order.Items == nil {
		order.Items = []domain.OrderItem{}
	}
	return order, nil
}

// ListOrders returns orders newest first. An empty status means no filter;
// an unknown status simply matches nothing.
func (r *PostgresRepository) ListOrders(ctx context.Context, status string) ([]domain.Order, error) {
	query := "SELECT " + orderColumns + " FROM orders"
	var args []interface{}
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	var ids []int64
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
		ids = append(ids, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return orders, nil
	}

	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
		if orders[i].Items == nil {
			orders[i].Items = []domain.OrderItem{}
		}
	}
	return orders, nil
}

func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) (time.Time, error) {
	var updatedAt time.Time
	err := r.DB.QueryRowContext(ctx,
		"UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING updated_at",
		status, id).Scan(&updatedAt)
	if err != nil {
		return time.Time{}, notFound(err)
	}
	return updatedAt, nil
}

func (r *PostgresRepository) loadItems(ctx context.Context, orderIDs []int64) (map[int64][]domain.OrderItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, order_id, product_id, product_name, price, quantity, COALESCE(notes, '')
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, id
	`, pq.Array(orderIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make(map[int64][]domain.OrderItem, len(orderIDs))
	for rows.Next() {
		var (
			item      domain.OrderItem
			productID sql.NullInt64
		)
		if err := rows.Scan(&item.ID, &item.OrderID, &productID, &item.ProductName, &item.Price, &item.Quantity, &item.Notes); err != nil {
			return nil, err
		}
		if productID.Valid {
			pid := productID.Int64
			item.ProductID = &pid
		}
		items[item.OrderID] = append(items[item.OrderID], item)
	}
	return items, rows.Err()
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	var tableNumber, waiterName, createdBy sql.NullString
	if err := row.Scan(&order.ID, &order.OrderNumber, &order.OrderType, &order.PaymentMethod, &order.Status,
		&tableNumber, &waiterName, &createdBy, &order.Subtotal, &order.Discount, &order.TotalAmount,
		&order.CreatedAt, &order.UpdatedAt); err != nil {
		return nil, err
	}
	order.TableNumber = nullString(tableNumber)
	order.WaiterName = nullString(waiterName)
	order.CreatedBy = nullString(createdBy)
	return &order, nil
}
