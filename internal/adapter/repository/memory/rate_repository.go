package memory

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kernel808/banknet/internal/domain"
)

// baseUSDRates are the simulation's anchor quotes, one unit of USD in each
// currency. Cross rates are derived through USD.
var baseUSDRates = map[string]float64{
	"USD": 1.0,
	"EUR": 0.9234,
	"GBP": 0.7891,
	"JPY": 149.85,
	"CHF": 0.8812,
	"CAD": 1.3642,
	"AUD": 1.5287,
	"CNY": 7.2415,
	"SGD": 1.3421,
	"AED": 3.6725,
}

// RateRepository fabricates exchange rates: fixed anchors plus a bounded
// per-read jitter so consecutive reads look like a moving market.
type RateRepository struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRateRepository() *RateRepository {
	return &RateRepository{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (r *RateRepository) GetRates(_ context.Context, baseCurrency string) ([]domain.Rate, error) {
	base := strings.ToUpper(strings.TrimSpace(baseCurrency))
	if base == "" {
		base = "USD"
	}
	if _, ok := baseUSDRates[base]; !ok {
		return nil, fmt.Errorf("unsupported base currency %q: %w", base, domain.ErrRecordNotFound)
	}

	now := time.Now().UTC()
	rates := make([]domain.Rate, 0, len(baseUSDRates)-1)
	for currency := range baseUSDRates {
		if currency == base {
			continue
		}
		value := r.crossRate(base, currency)
		rates = append(rates, domain.Rate{
			FromCurrency: base,
			ToCurrency:   currency,
			Rate:         value,
			Change24h:    r.fakeChange(),
			RateDate:     now,
		})
	}
	return rates, nil
}

func (r *RateRepository) GetRate(_ context.Context, fromCurrency, toCurrency string) (domain.Rate, error) {
	from := strings.ToUpper(strings.TrimSpace(fromCurrency))
	to := strings.ToUpper(strings.TrimSpace(toCurrency))

	if _, ok := baseUSDRates[from]; !ok {
		return domain.Rate{}, fmt.Errorf("unsupported currency %q: %w", from, domain.ErrRecordNotFound)
	}
	if _, ok := baseUSDRates[to]; !ok {
		return domain.Rate{}, fmt.Errorf("unsupported currency %q: %w", to, domain.ErrRecordNotFound)
	}

	return domain.Rate{
		FromCurrency: from,
		ToCurrency:   to,
		Rate:         r.crossRate(from, to),
		Change24h:    r.fakeChange(),
		RateDate:     time.Now().UTC(),
	}, nil
}

func (r *RateRepository) crossRate(from, to string) decimal.Decimal {
	raw := baseUSDRates[to] / baseUSDRates[from]
	jittered := raw * (1 + r.jitter(0.002))
	return decimal.NewFromFloat(jittered).Round(6)
}

func (r *RateRepository) fakeChange() decimal.Decimal {
	return decimal.NewFromFloat(r.jitter(0.05)).Round(4)
}

func (r *RateRepository) jitter(bound float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return (r.rng.Float64()*2 - 1) * bound
}
