package storage

import (
	"context"

	"pos-backend/pos-svc/internal/domain"
)

const tableSelect = `SELECT id, table_number, capacity, status, COALESCE(section, ''), is_active FROM dining_tables`

func (r *PostgresRepository) CreateTable(ctx context.Context, t *domain.Table) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO dining_tables (table_number, capacity, status, section, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, t.TableNumber, t.Capacity, t.Status, t.Section, t.IsActive).Scan(&t.ID)
	if isUniqueViolation(err) {
		return domain.NewValidationError("table_number", "table %q already exists", t.TableNumber)
	}
	return err
}

func (r *PostgresRepository) ListTables(ctx context.Context) ([]domain.Table, error) {
	rows, err := r.DB.QueryContext(ctx, tableSelect+" ORDER BY table_number")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := []domain.Table{}
	for rows.Next() {
		t, err := scanTable(rows)
		if err != nil {
			return nil, err
		}
		tables = append(tables, *t)
	}
	return tables, rows.Err()
}

func (r *PostgresRepository) GetTable(ctx context.Context, id int64) (*domain.Table, error) {
	t, err := scanTable(r.DB.QueryRowContext(ctx, tableSelect+" WHERE id = $1", id))
	if err != nil {
		return nil, notFound(err)
	}
	return t, nil
}

func (r *PostgresRepository) GetTableByNumber(ctx context.Context, number string) (*domain.Table, error) {
	t, err := scanTable(r.DB.QueryRowContext(ctx, tableSelect+" WHERE table_number = $1", number))
	if err != nil {
		return nil, notFound(err)
	}
	return t, nil
}

func (r *PostgresRepository) UpdateTable(ctx context.Context, t *domain.Table) error {
	err := rowsOrNotFound(r.DB.ExecContext(ctx, `
		UPDATE dining_tables
		SET table_number = $1, capacity = $2, status = $3, section = $4, is_active = $5
		WHERE id = $6
	`, t.TableNumber, t.Capacity, t.Status, t.Section, t.IsActive, t.ID))
	if isUniqueViolation(err) {
		return domain.NewValidationError("table_number", "table %q already exists", t.TableNumber)
	}
	return err
}

func (r *PostgresRepository) UpdateTableStatus(ctx context.Context, id int64, status domain.TableStatus) error {
	return rowsOrNotFound(r.DB.ExecContext(ctx, "UPDATE dining_tables SET status = $1 WHERE id = $2", status, id))
}

func (r *PostgresRepository) DeleteTable(ctx context.Context, id int64) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM dining_tables WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func scanTable(row rowScanner) (*domain.Table, error) {
	var t domain.Table
	if err := row.Scan(&t.ID, &t.TableNumber, &t.Capacity, &t.Status, &t.Section, &t.IsActive); err != nil {
		return nil, err
	}
	return &t, nil
}
