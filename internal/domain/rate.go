package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Rate struct {
	FromCurrency string
	ToCurrency   string
	Rate         decimal.Decimal
	Change24h    decimal.Decimal
	RateDate     time.Time
}

// RiskAssessment is the informational fraud signal attached to a transfer at
// creation time. It never blocks the transfer lifecycle.
type RiskAssessment struct {
	TransferID string
	Score      float64
	Level      string
	Factors    []string
	Confidence float64
	ScoredAt   time.Time
}
