package store

import (
	"context" // Request scoped queries
	"fmt"     // Error wrapping

	"investment_tracker/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

const investmentNotFound = "Investment not found"

// InvestmentStore owns the append-only investment ledger. It exposes no update or delete.
type InvestmentStore struct {
	db *gorm.DB
}

// NewInvestmentStore creates an InvestmentStore over db
func NewInvestmentStore(db *gorm.DB) *InvestmentStore {
	return &InvestmentStore{db: db}
}

// List returns every investment in store order
func (s *InvestmentStore) List(ctx context.Context) ([]domain.Investment, error) {
	var list []domain.Investment // Slice to hold investments
	if err := s.db.WithContext(ctx).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list investments: %w", err)
	}
	return list, nil
}

// Find returns the investment with id
func (s *InvestmentStore) Find(ctx context.Context, id uint) (domain.Investment, error) {
	var inv domain.Investment
	if err := s.db.WithContext(ctx).First(&inv, id).Error; err != nil {
		return inv, notFound(err, investmentNotFound)
	}
	return inv, nil
}

// Create inserts inv; created_at is stamped here
func (s *InvestmentStore) Create(ctx context.Context, inv *domain.Investment) error {
	if err := s.db.WithContext(ctx).Create(inv).Error; err != nil { // Insert fills ID and timestamps
		return fmt.Errorf("create investment: %w", err)
	}
	return nil
}
