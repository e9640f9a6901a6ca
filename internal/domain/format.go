package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeLayout is the format of every serialized timestamp
const TimeLayout = "2006-01-02 15:04:05"

// FormatTime renders t in UTC using TimeLayout
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// Round2 rounds half away from zero to 2 places for serialization
func Round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
