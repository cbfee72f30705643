package service

import (
	"context"
	"fmt"
	"time"

	"order-api/internal/model"

	"gorm.io/gorm"
)

// OrderService exposes read and insert access to the order table
type OrderService interface {
	ListOrders(ctx context.Context) ([]model.Order, error)
	CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.Order, error)
}

type orderServiceImpl struct {
	db *gorm.DB
}

// NewOrderService creates a new order service
func NewOrderService(db *gorm.DB) OrderService {
	return &orderServiceImpl{db: db}
}

// ListOrders returns every order row in storage order
func (s *orderServiceImpl) ListOrders(ctx context.Context) ([]model.Order, error) {
	orders := []model.Order{}
	if err := s.db.WithContext(ctx).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}

// CreateOrder inserts a single order row. The order date is stamped with the
// current UTC time and the id comes back from the database, so the returned
// Order is fully populated. Foreign key checks are left to the database; a
// violation surfaces as a plain insert error.
func (s *orderServiceImpl) CreateOrder(ctx context.Context, req *model.OrderRequest) (*model.Order, error) {
	order := &model.Order{
		CustomerID: req.CustomerID,
		ProductID:  req.ProductID,
		Quantity:   *req.Quantity,
		OrderDate:  model.Timestamp{Time: time.Now().UTC()},
	}

	if err := s.db.WithContext(ctx).Create(order).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return order, nil
}
