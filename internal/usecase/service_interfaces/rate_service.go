package service_interfaces

import (
	"context"

	"github.com/kernel808/banknet/internal/adapter/http/models"
	"github.com/kernel808/banknet/internal/domain"
)

type RateService interface {
	ListRates(ctx context.Context, baseCurrency string) ([]domain.Rate, error)
	GetRate(ctx context.Context, fromCurrency, toCurrency string) (domain.Rate, error)
	Convert(ctx context.Context, req models.ConvertRequest) (models.ConvertResponse, error)
}
