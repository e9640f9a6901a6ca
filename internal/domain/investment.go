package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Investment Model. Rows are append-only.
type Investment struct {
	ID         uint            `gorm:"primaryKey"`                  // Primary key
	UserID     uint            `gorm:"not null;index"`              // Foreign key to User
	StrategyID uint            `gorm:"not null;index"`              // Foreign key to Strategy
	Amount     decimal.Decimal `gorm:"type:decimal(20,4);not null"` // Principal
	Successful bool            `gorm:"not null"`                    // Server-drawn outcome
	Returns    decimal.Decimal `gorm:"type:decimal(20,4);not null"` // Amount times the applied multiplier
	CreatedAt  time.Time       `gorm:"autoCreateTime"`              // Timestamp of creation
	UpdatedAt  time.Time       `gorm:"autoUpdateTime"`              // Timestamp of last update
}

// InvestmentResource is the wire representation of an investment
type InvestmentResource struct {
	ID         uint    `json:"id"`          // Investment ID
	UserID     uint    `json:"user_id"`     // Owner
	StrategyID uint    `json:"strategy_id"` // Strategy
	Successful bool    `json:"successful"`  // Outcome
	Amount     float64 `json:"amount"`      // Principal rounded to 2 places
	Returns    float64 `json:"returns"`     // Returns rounded to 2 places
	CreatedAt  string  `json:"created_at"`  // Creation timestamp
}

// NewInvestmentResource projects an investment
func NewInvestmentResource(i Investment) InvestmentResource {
	return InvestmentResource{
		ID:         i.ID,
		UserID:     i.UserID,
		StrategyID: i.StrategyID,
		Successful: i.Successful,
		Amount:     Round2(i.Amount),
		Returns:    Round2(i.Returns),
		CreatedAt:  FormatTime(i.CreatedAt),
	}
}

// NewInvestmentResources projects a list of investments, never returning nil
func NewInvestmentResources(list []Investment) []InvestmentResource {
	out := make([]InvestmentResource, 0, len(list))
	for _, i := range list {
		out = append(out, NewInvestmentResource(i))
	}
	return out
}
