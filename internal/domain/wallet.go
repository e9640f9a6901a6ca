package domain

import "github.com/shopspring/decimal"

// Wallet Model
type Wallet struct {
	ID      uint            `gorm:"primaryKey"`                            // Primary key
	UserID  uint            `gorm:"uniqueIndex;not null"`                  // Foreign key to User
	Balance decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"` // Wallet balance
}

// WalletResource is the wire representation of a wallet
type WalletResource struct {
	ID      uint    `json:"id"`      // Wallet ID
	Balance float64 `json:"balance"` // Balance rounded to 2 places
}

// NewWalletResource projects a wallet
func NewWalletResource(w Wallet) WalletResource {
	return WalletResource{ID: w.ID, Balance: Round2(w.Balance)}
}
