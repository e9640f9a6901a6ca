package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Strategy Model
type Strategy struct {
	ID          uint            `gorm:"primaryKey"`            // Primary key
	Type        string          `gorm:"size:255"`              // Strategy label
	Tenure      string          `gorm:"size:255"`              // Holding period unit
	Yield       decimal.Decimal `gorm:"type:decimal(10,4)"`    // Multiplier applied on success
	Relief      decimal.Decimal `gorm:"type:decimal(10,4)"`    // Multiplier applied on failure
	CreatedAt   time.Time       `gorm:"autoCreateTime"`        // Timestamp of creation
	UpdatedAt   time.Time       `gorm:"autoUpdateTime"`        // Timestamp of last update
	Investments []Investment    `gorm:"foreignKey:StrategyID"` // Investments placed on this strategy
}

// StrategyResource is the wire representation of a strategy with its investments
type StrategyResource struct {
	ID          uint                 `json:"id"`          // Strategy ID
	Type        string               `json:"type"`        // Strategy label
	Tenure      string               `json:"tenure"`      // Holding period unit
	Yield       float64              `json:"yield"`       // Yield rounded to 2 places
	Relief      float64              `json:"relief"`      // Relief rounded to 2 places
	Investments []InvestmentResource `json:"investments"` // Nested investments
	CreatedAt   string               `json:"created_at"`  // Creation timestamp
}

// NewStrategyResource projects a strategy and its preloaded investments
func NewStrategyResource(s Strategy) StrategyResource {
	return StrategyResource{
		ID:          s.ID,
		Type:        s.Type,
		Tenure:      s.Tenure,
		Yield:       Round2(s.Yield),
		Relief:      Round2(s.Relief),
		Investments: NewInvestmentResources(s.Investments),
		CreatedAt:   FormatTime(s.CreatedAt),
	}
}
