package storage

import (
	"context"

	"pos-backend/pos-svc/internal/domain"
)

func (r *PostgresRepository) CreateCategory(ctx context.Context, c *domain.Category) error {
	err := r.DB.QueryRowContext(ctx,
		"INSERT INTO categories (name, slug, image) VALUES ($1, $2, $3) RETURNING id",
		c.Name, c.Slug, c.Image).Scan(&c.ID)
	if isUniqueViolation(err) {
		return domain.NewValidationError("slug", "category with slug %q already exists", c.Slug)
	}
	return err
}

func (r *PostgresRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT id, name, slug, COALESCE(image, '') FROM categories ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Image); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	var c domain.Category
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, name, slug, COALESCE(image, '') FROM categories WHERE id = $1", id).
		Scan(&c.ID, &c.Name, &c.Slug, &c.Image)
	if err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *PostgresRepository) UpdateCategory(ctx context.Context, c *domain.Category) error {
	err := rowsOrNotFound(r.DB.ExecContext(ctx,
		"UPDATE categories SET name = $1, slug = $2, image = $3 WHERE id = $4",
		c.Name, c.Slug, c.Image, c.ID))
	if isUniqueViolation(err) {
		return domain.NewValidationError("slug", "category with slug %q already exists", c.Slug)
	}
	return err
}

func (r *PostgresRepository) DeleteCategory(ctx context.Context, id int64) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const productSelect = `
	SELECT p.id, p.name, p.price, p.category_id, c.name, COALESCE(p.image, ''),
		COALESCE(p.description, ''), p.is_available
	FROM products p
	JOIN categories c ON c.id = p.category_id`

func (r *PostgresRepository) CreateProduct(ctx context.Context, p *domain.Product) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO products (name, price, category_id, image, description, is_available)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, (SELECT name FROM categories WHERE id = $3)
	`, p.Name, p.Price, p.CategoryID, p.Image, p.Description, p.IsAvailable).Scan(&p.ID, &p.CategoryName)
}

// ListProducts matches search case-insensitively against the product name
// and its category name.
func (r *PostgresRepository) ListProducts(ctx context.Context, search string) ([]domain.Product, error) {
	query := productSelect
	var args []interface{}
	if search != "" {
		query += " WHERE p.name ILIKE $1 OR c.name ILIKE $1"
		args = append(args, "%"+search+"%")
	}
	query += " ORDER BY p.name"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *PostgresRepository) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := scanProduct(r.DB.QueryRowContext(ctx, productSelect+" WHERE p.id = $1", id))
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

func (r *PostgresRepository) UpdateProduct(ctx context.Context, p *domain.Product) error {
	return rowsOrNotFound(r.DB.ExecContext(ctx, `
		UPDATE products
		SET name = $1, price = $2, category_id = $3, image = $4, description = $5, is_available = $6
		WHERE id = $7
	`, p.Name, p.Price, p.CategoryID, p.Image, p.Description, p.IsAvailable, p.ID))
}

func (r *PostgresRepository) DeleteProduct(ctx context.Context, id int64) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var p domain.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Price, &p.CategoryID, &p.CategoryName, &p.Image, &p.Description, &p.IsAvailable); err != nil {
		return nil, err
	}
	return &p, nil
}
