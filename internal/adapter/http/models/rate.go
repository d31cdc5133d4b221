package models

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/kernel808/banknet/internal/domain"
)

type RateResponse struct {
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	Rate         decimal.Decimal `json:"rate"`
	Change24h    decimal.Decimal `json:"change24h"`
	RateDate     string          `json:"rateDate"`
}

func MapRateToResponse(rate domain.Rate) RateResponse {
	return RateResponse{
		FromCurrency: rate.FromCurrency,
		ToCurrency:   rate.ToCurrency,
		Rate:         rate.Rate,
		Change24h:    rate.Change24h,
		RateDate:     rate.RateDate.Format("2006-01-02"),
	}
}

type ConvertRequest struct {
	Amount       decimal.Decimal `json:"amount"`
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
}

func (r ConvertRequest) Validate() error {
	var problems []string

	if r.Amount.LessThanOrEqual(decimal.Zero) {
		problems = append(problems, "amount must be greater than zero")
	}
	if len(strings.TrimSpace(r.FromCurrency)) != 3 {
		problems = append(problems, "fromCurrency must be a 3-letter code")
	}
	if len(strings.TrimSpace(r.ToCurrency)) != 3 {
		problems = append(problems, "toCurrency must be a 3-letter code")
	}

	if len(problems) > 0 {
		return &domain.ValidationError{Problems: problems}
	}
	return nil
}

type ConvertResponse struct {
	Amount          decimal.Decimal `json:"amount"`
	FromCurrency    string          `json:"fromCurrency"`
	ToCurrency      string          `json:"toCurrency"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	RateUsed        decimal.Decimal `json:"rateUsed"`
	RateDate        string          `json:"rateDate"`
}
