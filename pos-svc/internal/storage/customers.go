package storage

import (
	"context"
	"database/sql"

	"pos-backend/pos-svc/internal/domain"
)

const customerSelect = `SELECT id, name, email, phone, address, loyalty_points, created_at, updated_at FROM customers`

func (r *PostgresRepository) CreateCustomer(ctx context.Context, c *domain.Customer) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO customers (name, email, phone, address, loyalty_points)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, c.Name, c.Email, c.Phone, c.Address, c.LoyaltyPoints).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if isUniqueViolation(err) {
		return domain.NewValidationError("phone", "customer with phone %q already exists", c.Phone)
	}
	return err
}

func (r *PostgresRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.DB.QueryContext(ctx, customerSelect+" ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, *c)
	}
	return customers, rows.Err()
}

func (r *PostgresRepository) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	c, err := scanCustomer(r.DB.QueryRowContext(ctx, customerSelect+" WHERE id = $1", id))
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

func (r *PostgresRepository) UpdateCustomer(ctx context.Context, c *domain.Customer) error {
	err := r.DB.QueryRowContext(ctx, `
		UPDATE customers
		SET name = $1, email = $2, phone = $3, address = $4, loyalty_points = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING created_at, updated_at
	`, c.Name, c.Email, c.Phone, c.Address, c.LoyaltyPoints, c.ID).Scan(&c.CreatedAt, &c.UpdatedAt)
	if isUniqueViolation(err) {
		return domain.NewValidationError("phone", "customer with phone %q already exists", c.Phone)
	}
	return notFound(err)
}

func (r *PostgresRepository) DeleteCustomer(ctx context.Context, id int64) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM customers WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	var (
		c       domain.Customer
		email   sql.NullString
		address sql.NullString
	)
	if err := row.Scan(&c.ID, &c.Name, &email, &c.Phone, &address, &c.LoyaltyPoints, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.Email = nullString(email)
	c.Address = nullString(address)
	return &c, nil
}
