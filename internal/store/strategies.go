package store

import (
	"context" // Request scoped queries
	"fmt"     // Error wrapping

	"investment_tracker/internal/domain" // Importing domain models

	"github.com/shopspring/decimal" // Yield and relief
	"gorm.io/gorm"                  // GORM ORM library
)

const (
	strategyNotFound = "Strategy not found"
	ratePlaces       = 4 // Scale of the yield and relief columns
)

// StrategyStore owns strategies
type StrategyStore struct {
	db *gorm.DB
}

// NewStrategyStore creates a StrategyStore over db
func NewStrategyStore(db *gorm.DB) *StrategyStore {
	return &StrategyStore{db: db}
}

// StrategyInput carries the strategy fields supplied by a client; nil fields are absent
type StrategyInput struct {
	Type   *string
	Tenure *string
	Yield  *decimal.Decimal
	Relief *decimal.Decimal
}

func (in StrategyInput) columns() map[string]any {
	cols := map[string]any{}
	if in.Type != nil {
		cols["type"] = *in.Type
	}
	if in.Tenure != nil {
		cols["tenure"] = *in.Tenure
	}
	if in.Yield != nil {
		cols["yield"] = in.Yield.Round(ratePlaces) // Stored scale
	}
	if in.Relief != nil {
		cols["relief"] = in.Relief.Round(ratePlaces) // Stored scale
	}
	return cols
}

// List returns every strategy joined with its investments
func (s *StrategyStore) List(ctx context.Context) ([]domain.Strategy, error) {
	var list []domain.Strategy
	if err := s.db.WithContext(ctx).Preload("Investments", orderByID).Order("id").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list strategies: %w", err)
	}
	return list, nil
}

// Find returns the strategy with id joined with its investments
func (s *StrategyStore) Find(ctx context.Context, id uint) (domain.Strategy, error) {
	var strategy domain.Strategy
	if err := s.db.WithContext(ctx).Preload("Investments", orderByID).First(&strategy, id).Error; err != nil {
		return strategy, notFound(err, strategyNotFound)
	}
	return strategy, nil
}

// FindBare returns the strategy with id without its investments
func (s *StrategyStore) FindBare(ctx context.Context, id uint) (domain.Strategy, error) {
	var strategy domain.Strategy
	if err := s.db.WithContext(ctx).First(&strategy, id).Error; err != nil {
		return strategy, notFound(err, strategyNotFound)
	}
	return strategy, nil
}

// Create persists whatever fields are supplied
func (s *StrategyStore) Create(ctx context.Context, in StrategyInput) (domain.Strategy, error) {
	var strategy domain.Strategy // Absent fields keep their zero value
	if in.Type != nil {
		strategy.Type = *in.Type
	}
	if in.Tenure != nil {
		strategy.Tenure = *in.Tenure
	}
	if in.Yield != nil {
		strategy.Yield = in.Yield.Round(ratePlaces) // Stored scale
	}
	if in.Relief != nil {
		strategy.Relief = in.Relief.Round(ratePlaces) // Stored scale
	}
	if err := s.db.WithContext(ctx).Omit("Investments").Create(&strategy).Error; err != nil {
		return domain.Strategy{}, fmt.Errorf("create strategy: %w", err)
	}
	strategy.Investments = []domain.Investment{} // A new strategy has no investments
	return strategy, nil
}

// Update replaces the supplied fields of the strategy with id
func (s *StrategyStore) Update(ctx context.Context, id uint, in StrategyInput) (domain.Strategy, error) {
	strategy, err := s.FindBare(ctx, id)
	if err != nil {
		return strategy, err
	}
	cols := in.columns()
	if len(cols) == 0 {
		return s.Find(ctx, id) // Nothing to change
	}
	if err := s.db.WithContext(ctx).Model(&strategy).Omit("Investments").Updates(cols).Error; err != nil {
		return strategy, fmt.Errorf("update strategy %d: %w", id, err)
	}
	return s.Find(ctx, id)
}

// Delete removes the strategy with id
func (s *StrategyStore) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&domain.Strategy{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete strategy %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Msg: strategyNotFound} // No such strategy
	}
	return nil
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}
