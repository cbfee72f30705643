package service

import (
	"context"
	"fmt"

	"order-api/internal/model"

	"gorm.io/gorm"
)

// CustomerService exposes read access to the customer table
type CustomerService interface {
	ListCustomers(ctx context.Context) ([]model.Customer, error)
}

type customerServiceImpl struct {
	db *gorm.DB
}

// NewCustomerService creates a new customer service
func NewCustomerService(db *gorm.DB) CustomerService {
	return &customerServiceImpl{db: db}
}

// ListCustomers returns every customer row in storage order
func (s *customerServiceImpl) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	customers := []model.Customer{}
	if err := s.db.WithContext(ctx).Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch customers: %w", err)
	}
	return customers, nil
}
