package repo_interfaces

import (
	"context"

	"github.com/kernel808/banknet/internal/domain"
)

type RateRepository interface {
	GetRates(ctx context.Context, baseCurrency string) ([]domain.Rate, error)
	GetRate(ctx context.Context, fromCurrency, toCurrency string) (domain.Rate, error)
}
