package service

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"pos-backend/pos-svc/internal/domain"
)

const (
	maxCustomerNameLen = 100
	maxPhoneLen        = 20
	maxEmailLen        = 254
)

var (
	phonePattern = regexp.MustCompile(`^\+?[0-9 ()-]{7,}$`)
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
)

type CustomerService struct {
	repo CustomerRepository
}

func NewCustomerService(repo CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

func (s *CustomerService) Create(ctx context.Context, customer *domain.Customer) error {
	if err := validateCustomer(customer); err != nil {
		return err
	}
	return s.repo.CreateCustomer(ctx, customer)
}

func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.ListCustomers(ctx)
}

func (s *CustomerService) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.repo.GetCustomer(ctx, id)
}

func (s *CustomerService) Update(ctx context.Context, customer *domain.Customer) error {
	if err := validateCustomer(customer); err != nil {
		return err
	}
	return s.repo.UpdateCustomer(ctx, customer)
}

func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	return deleted(s.repo.DeleteCustomer(ctx, id))
}

// validateCustomer trims the text fields in place, lowercases the email and
// drops empty optional fields to nil.
func validateCustomer(c *domain.Customer) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return domain.NewValidationError("name", "this field is required")
	}
	if utf8.RuneCountInString(c.Name) > maxCustomerNameLen {
		return domain.NewValidationError("name", "must be at most %d characters", maxCustomerNameLen)
	}

	c.Phone = strings.TrimSpace(c.Phone)
	if c.Phone == "" {
		return domain.NewValidationError("phone", "this field is required")
	}
	if utf8.RuneCountInString(c.Phone) > maxPhoneLen {
		return domain.NewValidationError("phone", "must be at most %d characters", maxPhoneLen)
	}
	if !phonePattern.MatchString(c.Phone) {
		return domain.NewValidationError("phone", "enter a valid phone number")
	}

	c.Email = trimmedOrNil(c.Email)
	if c.Email != nil {
		email := strings.ToLower(*c.Email)
		if len(email) > maxEmailLen || !emailPattern.MatchString(email) {
			return domain.NewValidationError("email", "enter a valid email address")
		}
		c.Email = &email
	}
	c.Address = trimmedOrNil(c.Address)

	if c.LoyaltyPoints < 0 {
		return domain.NewValidationError("loyalty_points", "must be zero or greater")
	}
	return nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
