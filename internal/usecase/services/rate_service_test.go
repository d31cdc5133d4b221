package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kernel808/banknet/internal/adapter/http/models"
	"github.com/kernel808/banknet/internal/adapter/repository/memory"
	"github.com/kernel808/banknet/internal/domain"
	"github.com/kernel808/banknet/internal/usecase/services"
)

func newRateService() *services.RateService {
	return services.NewRateService(memory.NewRateRepository())
}

func TestRateServiceListRates(t *testing.T) {
	svc := newRateService()

	rates, err := svc.ListRates(context.Background(), "USD")
	require.NoError(t, err)
	require.NotEmpty(t, rates)

	for _, rate := range rates {
		assert.Equal(t, "USD", rate.FromCurrency)
		assert.NotEqual(t, "USD", rate.ToCurrency)
		assert.True(t, rate.Rate.IsPositive())
	}
}

func TestRateServiceListRatesUnsupportedBase(t *testing.T) {
	svc := newRateService()
	_, err := svc.ListRates(context.Background(), "XYZ")
	require.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestRateServiceSameCurrencyIsIdentity(t *testing.T) {
	svc := newRateService()

	rate, err := svc.GetRate(context.Background(), "eur", "EUR")
	require.NoError(t, err)
	assert.True(t, rate.Rate.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, "EUR", rate.FromCurrency)
	assert.Equal(t, "EUR", rate.ToCurrency)
}

func TestRateServiceGetRateBounded(t *testing.T) {
	svc := newRateService()

	// EUR per USD anchors around 0.92; the jitter stays within a tight band.
	rate, err := svc.GetRate(context.Background(), "USD", "EUR")
	require.NoError(t, err)
	assert.True(t, rate.Rate.GreaterThan(decimal.NewFromFloat(0.9)))
	assert.True(t, rate.Rate.LessThan(decimal.NewFromFloat(0.95)))
}

func TestRateServiceConvert(t *testing.T) {
	svc := newRateService()

	resp, err := svc.Convert(context.Background(), models.ConvertRequest{
		Amount:       decimal.NewFromInt(100),
		FromCurrency: "USD",
		ToCurrency:   "USD",
	})
	require.NoError(t, err)
	assert.True(t, resp.ConvertedAmount.Equal(decimal.NewFromInt(100)))
	assert.True(t, resp.RateUsed.Equal(decimal.NewFromInt(1)))
}

func TestRateServiceConvertComputesFromRate(t *testing.T) {
	svc := newRateService()

	resp, err := svc.Convert(context.Background(), models.ConvertRequest{
		Amount:       decimal.NewFromInt(1000),
		FromCurrency: "USD",
		ToCurrency:   "JPY",
	})
	require.NoError(t, err)
	assert.True(t, resp.ConvertedAmount.Equal(resp.Amount.Mul(resp.RateUsed).Round(2)))
}

func TestRateServiceConvertValidation(t *testing.T) {
	svc := newRateService()

	_, err := svc.Convert(context.Background(), models.ConvertRequest{
		Amount:       decimal.NewFromInt(-5),
		FromCurrency: "US",
		ToCurrency:   "EURO",
	})
	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Problems, 3)
}
