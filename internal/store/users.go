package store

import (
	"context" // Request scoped queries
	"fmt"     // Error wrapping

	"investment_tracker/internal/domain" // Importing domain models

	"github.com/shopspring/decimal" // Wallet balance
	"gorm.io/gorm"                  // GORM ORM library
)

const userNotFound = "User not found"

// UserStore owns users and their wallets
type UserStore struct {
	db *gorm.DB
}

// NewUserStore creates a UserStore over db
func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// UserInput carries the mutable user fields
type UserInput struct {
	FirstName string
	LastName  string
	Email     string
}

// UserPatch carries the user fields supplied on update; nil fields are kept
type UserPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
}

func (p UserPatch) columns() map[string]any {
	cols := map[string]any{} // Only supplied fields are written
	if p.FirstName != nil {
		cols["first_name"] = *p.FirstName
	}
	if p.LastName != nil {
		cols["last_name"] = *p.LastName
	}
	if p.Email != nil {
		cols["email"] = *p.Email
	}
	return cols
}

// List returns every user joined with its wallet
func (s *UserStore) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User // Slice to hold users
	if err := s.db.WithContext(ctx).Preload("Wallet").Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Find returns the user with id joined with its wallet
func (s *UserStore) Find(ctx context.Context, id uint) (domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).Preload("Wallet").First(&user, id).Error; err != nil {
		return user, notFound(err, userNotFound)
	}
	return user, nil
}

// Exists reports whether a user with id exists
func (s *UserStore) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64 // Matching rows
	if err := s.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create persists a user and provisions its empty wallet in one transaction
func (s *UserStore) Create(ctx context.Context, in UserInput) (domain.User, error) {
	user := domain.User{FirstName: in.FirstName, LastName: in.LastName, Email: in.Email}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Wallet").Create(&user).Error; err != nil {
			return err // Return error to rollback
		}
		wallet := domain.Wallet{UserID: user.ID, Balance: decimal.Zero} // Every user starts empty
		if err := tx.Create(&wallet).Error; err != nil {
			return err // Return error to rollback
		}
		user.Wallet = &wallet
		return nil // Commit transaction
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Update replaces the supplied fields of the user with id
func (s *UserStore) Update(ctx context.Context, id uint, patch UserPatch) (domain.User, error) {
	user, err := s.Find(ctx, id)
	if err != nil {
		return user, err
	}
	cols := patch.columns()
	if len(cols) == 0 {
		return user, nil // Nothing to change
	}
	if err := s.db.WithContext(ctx).Model(&user).Omit("Wallet").Updates(cols).Error; err != nil {
		return user, fmt.Errorf("update user %d: %w", id, err)
	}
	return s.Find(ctx, id)
}

// Delete removes the user with id and its wallet
func (s *UserStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&domain.User{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &NotFoundError{Msg: userNotFound} // Rollback, nothing deleted
		}
		return tx.Where("user_id = ?", id).Delete(&domain.Wallet{}).Error
	})
}

// Investments returns the investments owned by the user with id
func (s *UserStore) Investments(ctx context.Context, id uint) ([]domain.Investment, error) {
	ok, err := s.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &NotFoundError{Msg: userNotFound}
	}
	var list []domain.Investment
	if err := s.db.WithContext(ctx).Where("user_id = ?", id).Order("id").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list investments for user %d: %w", id, err)
	}
	return list, nil
}
