package domain

import "time"

// User Model
type User struct {
	ID        uint      `gorm:"primaryKey"`                                    // Primary key
	FirstName string    `gorm:"size:255;not null"`                             // First name
	LastName  string    `gorm:"size:255;not null"`                             // Last name
	Email     string    `gorm:"size:255;not null"`                             // Email address
	CreatedAt time.Time `gorm:"autoCreateTime"`                                // Timestamp of creation
	UpdatedAt time.Time `gorm:"autoUpdateTime"`                                // Timestamp of last update
	Wallet    *Wallet   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"` // One-to-one relationship with Wallet
}

// UserResource is the wire representation of a user with its wallet
type UserResource struct {
	ID        uint            `json:"id"`         // User ID
	FirstName string          `json:"first_name"` // First name
	LastName  string          `json:"last_name"`  // Last name
	Email     string          `json:"email"`      // Email address
	CreatedAt string          `json:"created_at"` // Creation timestamp
	Wallet    *WalletResource `json:"wallet"`     // Nested wallet
}

// NewUserResource projects a user and its preloaded wallet
func NewUserResource(u User) UserResource {
	res := UserResource{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		CreatedAt: FormatTime(u.CreatedAt),
	}
	if u.Wallet != nil {
		w := NewWalletResource(*u.Wallet)
		res.Wallet = &w
	}
	return res
}
