package db

import (
	"investment_tracker/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// Migrate performs automatic migration for the database schema
func Migrate(db *gorm.DB) error {
	// AutoMigrate will create tables, missing columns and indexes
	return db.AutoMigrate(&domain.User{}, &domain.Wallet{}, &domain.Strategy{}, &domain.Investment{})
}
