package services

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kernel808/banknet/internal/adapter/http/models"
	"github.com/kernel808/banknet/internal/adapter/repository/repo_interfaces"
	"github.com/kernel808/banknet/internal/domain"
	"github.com/kernel808/banknet/internal/logger"
	"github.com/kernel808/banknet/internal/usecase/service_interfaces"
)

// Verify that RateService implements the service_interfaces.RateService interface
var _ service_interfaces.RateService = (*RateService)(nil)

type RateService struct {
	rateRepo repo_interfaces.RateRepository
}

func NewRateService(rateRepo repo_interfaces.RateRepository) *RateService {
	return &RateService{rateRepo: rateRepo}
}

func (s *RateService) ListRates(ctx context.Context, baseCurrency string) ([]domain.Rate, error) {
	rates, err := s.rateRepo.GetRates(ctx, baseCurrency)
	if err != nil {
		logger.Error("rate service list rates failed", err, logger.Fields{
			"baseCurrency": baseCurrency,
		})
		return nil, err
	}

	logger.Info("rate service list rates success", logger.Fields{
		"baseCurrency": baseCurrency,
		"count":        len(rates),
	})

	return rates, nil
}

func (s *RateService) GetRate(ctx context.Context, fromCurrency, toCurrency string) (domain.Rate, error) {
	from := strings.ToUpper(strings.TrimSpace(fromCurrency))
	to := strings.ToUpper(strings.TrimSpace(toCurrency))

	if from == to {
		return domain.Rate{
			FromCurrency: from,
			ToCurrency:   to,
			Rate:         decimal.NewFromInt(1),
			RateDate:     time.Now().UTC(),
		}, nil
	}

	return s.rateRepo.GetRate(ctx, from, to)
}

func (s *RateService) Convert(ctx context.Context, req models.ConvertRequest) (models.ConvertResponse, error) {
	logger.Info("rate service convert request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return models.ConvertResponse{}, err
	}

	rate, err := s.GetRate(ctx, req.FromCurrency, req.ToCurrency)
	if err != nil {
		logger.Error("rate service convert failed", err, logger.Fields{
			"fromCurrency": req.FromCurrency,
			"toCurrency":   req.ToCurrency,
		})
		return models.ConvertResponse{}, err
	}

	return models.ConvertResponse{
		Amount:          req.Amount,
		FromCurrency:    rate.FromCurrency,
		ToCurrency:      rate.ToCurrency,
		ConvertedAmount: req.Amount.Mul(rate.Rate).Round(2),
		RateUsed:        rate.Rate,
		RateDate:        rate.RateDate.Format("2006-01-02"),
	}, nil
}
