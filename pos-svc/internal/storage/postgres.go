package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"pos-backend/pos-svc/internal/domain"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			slug VARCHAR(100) NOT NULL UNIQUE,
			image TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(200) NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			category_id BIGINT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
			image TEXT,
			description TEXT,
			is_available BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS dining_tables (
			id BIGSERIAL PRIMARY KEY,
			table_number VARCHAR(20) NOT NULL UNIQUE,
			capacity INTEGER NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'available',
			section VARCHAR(100) NOT NULL DEFAULT 'Main Hall',
			is_active BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id BIGSERIAL PRIMARY KEY,
			order_number VARCHAR(20) NOT NULL UNIQUE,
			order_type VARCHAR(20) NOT NULL,
			payment_method VARCHAR(20) NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			table_number VARCHAR(20),
			waiter_name VARCHAR(100),
			created_by VARCHAR(150),
			subtotal NUMERIC(10,2) NOT NULL,
			discount NUMERIC(10,2) NOT NULL DEFAULT 0,
			total_amount NUMERIC(10,2) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id BIGSERIAL PRIMARY KEY,
			order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			product_id BIGINT REFERENCES products(id) ON DELETE SET NULL,
			product_name VARCHAR(200) NOT NULL,
			price NUMERIC(10,2) NOT NULL,
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			notes TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS customers (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			email VARCHAR(254),
			phone VARCHAR(20) NOT NULL UNIQUE,
			address TEXT,
			loyalty_points INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		"CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders (created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_orders_status ON orders (status)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items (order_id)",
	}
	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func rowsOrNotFound(result sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
