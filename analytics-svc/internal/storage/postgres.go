package storage

import (
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"

	"pos-backend/analytics-svc/internal/domain"

	"github.com/shopspring/decimal"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// window renders created_at bounds for the given alias. Zero times are open ends.
func window(column string, from, to time.Time, args []interface{}) (string, []interface{}) {
	var conds []string
	if !from.IsZero() {
		args = append(args, from)
		conds = append(conds, column+" >= $"+strconv.Itoa(len(args)))
	}
	if !to.IsZero() {
		args = append(args, to)
		conds = append(conds, column+" < $"+strconv.Itoa(len(args)))
	}
	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// Totals sums total_amount and counts orders created in [from, to).
func (r *PostgresRepository) Totals(ctx context.Context, from, to time.Time) (decimal.Decimal, int64, error) {
	where, args := window("created_at", from, to, nil)

	var revenue decimal.Decimal
	var count int64
	err := r.DB.QueryRowContext(ctx,
		"SELECT COALESCE(SUM(total_amount), 0), COUNT(*) FROM orders"+where, args...).
		Scan(&revenue, &count)
	if err != nil {
		return decimal.Zero, 0, err
	}
	return revenue, count, nil
}

func (r *PostgresRepository) RecentOrders(ctx context.Context, limit int) ([]domain.Sale, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, order_number, order_type, payment_method, status, table_number, total_amount, created_at
		FROM orders
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := []domain.Sale{}
	for rows.Next() {
		var s domain.Sale
		var tableNumber sql.NullString
		if err := rows.Scan(&s.ID, &s.OrderNumber, &s.OrderType, &s.PaymentMethod, &s.Status,
			&tableNumber, &s.TotalAmount, &s.CreatedAt); err != nil {
			return nil, err
		}
		if tableNumber.Valid {
			s.TableNumber = &tableNumber.String
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

// RevenueStamps returns the creation time and total of every order in
// [from, to). Bucketing into local days happens in the service.
func (r *PostgresRepository) RevenueStamps(ctx context.Context, from, to time.Time) ([]domain.Stamp, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT created_at, total_amount FROM orders WHERE created_at >= $1 AND created_at < $2", from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stamps []domain.Stamp
	for rows.Next() {
		var s domain.Stamp
		if err := rows.Scan(&s.CreatedAt, &s.Amount); err != nil {
			return nil, err
		}
		stamps = append(stamps, s)
	}
	return stamps, rows.Err()
}

// TopProducts ranks snapshot product names by quantity sold in [from, to).
func (r *PostgresRepository) TopProducts(ctx context.Context, from, to time.Time, limit int) ([]domain.ProductRank, error) {
	where, args := window("o.created_at", from, to, nil)
	args = append(args, limit)

	rows, err := r.DB.QueryContext(ctx, `
		SELECT oi.product_name, SUM(oi.quantity) AS qty
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id`+where+`
		GROUP BY oi.product_name
		ORDER BY qty DESC, oi.product_name
		LIMIT $`+strconv.Itoa(len(args)), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ranks := []domain.ProductRank{}
	for rows.Next() {
		var p domain.ProductRank
		if err := rows.Scan(&p.Name, &p.Value); err != nil {
			return nil, err
		}
		ranks = append(ranks, p)
	}
	return ranks, rows.Err()
}
