package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"pos-backend/pos-svc/internal/domain"
)

type CategoryService struct {
	repo CategoryRepository
}

func NewCategoryService(repo CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) Create(ctx context.Context, category *domain.Category) error {
	if err := validateCategory(category); err != nil {
		return err
	}
	return s.repo.CreateCategory(ctx, category)
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*domain.Category, error) {
	return s.repo.GetCategory(ctx, id)
}

func (s *CategoryService) Update(ctx context.Context, category *domain.Category) error {
	if err := validateCategory(category); err != nil {
		return err
	}
	return s.repo.UpdateCategory(ctx, category)
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	return deleted(s.repo.DeleteCategory(ctx, id))
}

func validateCategory(c *domain.Category) error {
	if strings.TrimSpace(c.Name) == "" {
		return domain.NewValidationError("name", "this field is required")
	}
	if c.Slug == "" {
		c.Slug = slugify(c.Name)
	}
	return nil
}

func slugify(name string) string {
	fields := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	return strings.Join(fields, "-")
}

type ProductService struct {
	repo ProductRepository
}

func NewProductService(repo ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) Create(ctx context.Context, product *domain.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	return s.repo.CreateProduct(ctx, product)
}

func (s *ProductService) List(ctx context.Context, search string) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx, strings.TrimSpace(search))
}

func (s *ProductService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.GetProduct(ctx, id)
}

func (s *ProductService) Update(ctx context.Context, product *domain.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	return s.repo.UpdateProduct(ctx, product)
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	return deleted(s.repo.DeleteProduct(ctx, id))
}

func validateProduct(p *domain.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return domain.NewValidationError("name", "this field is required")
	}
	if p.Price.IsNegative() {
		return domain.NewValidationError("price", "must not be negative")
	}
	if p.CategoryID <= 0 {
		return domain.NewValidationError("category", "this field is required")
	}
	return nil
}

type TableService struct {
	repo TableRepository
}

func NewTableService(repo TableRepository) *TableService {
	return &TableService{repo: repo}
}

func (s *TableService) Create(ctx context.Context, table *domain.Table) error {
	if err := validateTable(table); err != nil {
		return err
	}
	return s.repo.CreateTable(ctx, table)
}

func (s *TableService) List(ctx context.Context) ([]domain.Table, error) {
	return s.repo.ListTables(ctx)
}

func (s *TableService) Get(ctx context.Context, id int64) (*domain.Table, error) {
	return s.repo.GetTable(ctx, id)
}

func (s *TableService) Update(ctx context.Context, table *domain.Table) error {
	if err := validateTable(table); err != nil {
		return err
	}
	return s.repo.UpdateTable(ctx, table)
}

func (s *TableService) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Table, error) {
	next := domain.TableStatus(status)
	if !next.Valid() {
		return nil, domain.NewValidationError("status", "%q is not a valid choice", status)
	}
	if err := s.repo.UpdateTableStatus(ctx, id, next); err != nil {
		return nil, err
	}
	return s.repo.GetTable(ctx, id)
}

func (s *TableService) Delete(ctx context.Context, id int64) error {
	return deleted(s.repo.DeleteTable(ctx, id))
}

func validateTable(t *domain.Table) error {
	if strings.TrimSpace(t.TableNumber) == "" {
		return domain.NewValidationError("table_number", "this field is required")
	}
	if utf8.RuneCountInString(t.TableNumber) > maxTableNumberLen {
		return domain.NewValidationError("table_number", "must be at most %d characters", maxTableNumberLen)
	}
	if strings.TrimSpace(t.Section) == "" {
		t.Section = domain.DefaultSection
	}
	if utf8.RuneCountInString(t.Section) > maxSectionLen {
		return domain.NewValidationError("section", "must be at most %d characters", maxSectionLen)
	}
	if t.Capacity < 1 {
		return domain.NewValidationError("capacity", "must be a positive integer")
	}
	if t.Status == "" {
		t.Status = domain.TableAvailable
	}
	if !t.Status.Valid() {
		return domain.NewValidationError("status", "%q is not a valid choice", t.Status)
	}
	return nil
}

func deleted(rows int64, err error) error {
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
