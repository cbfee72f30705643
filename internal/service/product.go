package service

import (
	"context"
	"fmt"

	"order-api/internal/model"

	"gorm.io/gorm"
)

// ProductService exposes read access to the product table
type ProductService interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
}

type productServiceImpl struct {
	db *gorm.DB
}

// NewProductService creates a new product service
func NewProductService(db *gorm.DB) ProductService {
	return &productServiceImpl{db: db}
}

// ListProducts returns every product row in storage order
func (s *productServiceImpl) ListProducts(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	if err := s.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}
