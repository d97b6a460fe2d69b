package services

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"onlineshop/internal/models"
	"onlineshop/internal/repositories"
)

// CustomerServiceInterface defines the interface for customer operations
type CustomerServiceInterface interface {
	CreateCustomer(ctx context.Context, req *models.CustomerCreate) (*models.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*models.Customer, error)
	ListCustomers(ctx context.Context, limit, offset int) ([]*models.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, req *models.CustomerUpdate) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
}

type customerService struct {
	customers repositories.CustomerRepository
}

func NewCustomerService(customers repositories.CustomerRepository) CustomerServiceInterface {
	return &customerService{customers: customers}
}

// CreateCustomer creates a customer after checking the email is not taken.
// The unique constraint on customers.email closes the remaining race; its
// violation is reported as ErrEmailTaken too.
func (s *customerService) CreateCustomer(ctx context.Context, req *models.CustomerCreate) (*models.Customer, error) {
	if _, err := s.customers.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	customer := &models.Customer{
		Name:    req.Name,
		Surname: req.Surname,
		Email:   req.Email,
	}
	if err := s.customers.Create(ctx, customer); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return customer, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id int64) (*models.Customer, error) {
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context, limit, offset int) ([]*models.Customer, error) {
	customers, err := s.customers.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	if customers == nil {
		customers = []*models.Customer{}
	}
	return customers, nil
}

// UpdateCustomer applies the fields present in req; absent fields are left
// unchanged. An email change re-checks uniqueness.
func (s *customerService) UpdateCustomer(ctx context.Context, id int64, req *models.CustomerUpdate) (*models.Customer, error) {
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	if req.Email != nil && *req.Email != customer.Email {
		if _, err := s.customers.GetByEmail(ctx, *req.Email); err == nil {
			return nil, ErrEmailTaken
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		customer.Email = *req.Email
	}
	if req.Name != nil {
		customer.Name = *req.Name
	}
	if req.Surname != nil {
		customer.Surname = *req.Surname
	}

	if err := s.customers.Update(ctx, customer); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id int64) error {
	exists, err := s.customers.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return ErrCustomerNotFound
	}
	return s.customers.Delete(ctx, id)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
