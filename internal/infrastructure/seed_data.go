package infrastructure

import (
	"fmt"
	"log"

	"order-api/internal/model"

	"gorm.io/gorm"
)

// SeedDataManager handles sample data initialization. Products and customers
// are normally created by external tooling; this covers local development.
type SeedDataManager struct {
	db *gorm.DB
}

// NewSeedDataManager creates a new seed data manager
func NewSeedDataManager(db *gorm.DB) *SeedDataManager {
	return &SeedDataManager{db: db}
}

// SeedAll inserts sample products and customers. Tables that already contain
// rows are left untouched; orders are never seeded.
func (s *SeedDataManager) SeedAll() error {
	if err := s.seedSampleProducts(); err != nil {
		return fmt.Errorf("failed to seed sample products: %w", err)
	}

	if err := s.seedSampleCustomers(); err != nil {
		return fmt.Errorf("failed to seed sample customers: %w", err)
	}

	return nil
}

func (s *SeedDataManager) seedSampleProducts() error {
	var count int64
	if err := s.db.Model(&model.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check existing products: %w", err)
	}

	if count > 0 {
		log.Println("Sample products already exist, skipping creation")
		return nil
	}

	sampleProducts := []model.Product{
		{Name: "Keyboard"},
		{Name: "Monitor"},
		{Name: "USB-C Cable"},
	}

	if err := s.db.Create(&sampleProducts).Error; err != nil {
		return fmt.Errorf("failed to create sample products: %w", err)
	}

	return nil
}

func (s *SeedDataManager) seedSampleCustomers() error {
	var count int64
	if err := s.db.Model(&model.Customer{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check existing customers: %w", err)
	}

	if count > 0 {
		log.Println("Sample customers already exist, skipping creation")
		return nil
	}

	sampleCustomers := []model.Customer{
		{Name: "Alice Smith"},
		{Name: "Bob Jones"},
	}

	if err := s.db.Create(&sampleCustomers).Error; err != nil {
		return fmt.Errorf("failed to create sample customers: %w", err)
	}

	return nil
}
