package services

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kernel808/banknet/internal/domain"
	"github.com/kernel808/banknet/internal/logger"
	"github.com/kernel808/banknet/internal/usecase/service_interfaces"
)

// Verify that RiskService implements the service_interfaces.RiskScorer interface
var _ service_interfaces.RiskScorer = (*RiskService)(nil)

var highRiskCurrencies = map[string]struct{}{
	"AED": {},
	"CNY": {},
}

var (
	largeAmountThreshold = decimal.NewFromInt(250_000)
	hugeAmountThreshold  = decimal.NewFromInt(1_000_000)
)

// RiskService fabricates a fraud signal from simple heuristics over the
// transfer snapshot. The score is informational only; nothing in the
// lifecycle depends on it.
type RiskService struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRiskService() *RiskService {
	return &RiskService{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *RiskService) Score(_ context.Context, transfer domain.Transfer) (domain.RiskAssessment, error) {
	score := 0.05
	var factors []string

	if transfer.Amount.GreaterThanOrEqual(hugeAmountThreshold) {
		score += 0.35
		factors = append(factors, "amount exceeds 1,000,000")
	} else if transfer.Amount.GreaterThanOrEqual(largeAmountThreshold) {
		score += 0.20
		factors = append(factors, "amount exceeds 250,000")
	}

	if transfer.Amount.Equal(transfer.Amount.Round(0)) && transfer.Amount.GreaterThanOrEqual(decimal.NewFromInt(10_000)) {
		score += 0.10
		factors = append(factors, "round amount")
	}

	if transfer.SenderBIC == transfer.ReceiverBIC {
		score += 0.25
		factors = append(factors, "sender and receiver BIC identical")
	}

	if _, ok := highRiskCurrencies[transfer.Currency]; ok {
		score += 0.15
		factors = append(factors, "high-risk currency corridor")
	}

	purpose := strings.ToLower(transfer.Purpose)
	for _, hint := range []string{"urgent", "consulting", "gift", "loan repayment"} {
		if strings.Contains(purpose, hint) {
			score += 0.05
			factors = append(factors, "purpose contains watchlist phrase")
			break
		}
	}

	score += s.jitter(0.05)
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	assessment := domain.RiskAssessment{
		TransferID: transfer.ID,
		Score:      score,
		Level:      riskLevel(score),
		Factors:    factors,
		Confidence: 0.70 + s.jitter(0.15),
		ScoredAt:   time.Now().UTC(),
	}

	logger.Info("risk service scored transfer", logger.Fields{
		"transferId": transfer.ID,
		"score":      assessment.Score,
		"level":      assessment.Level,
	})

	return assessment, nil
}

func riskLevel(score float64) string {
	switch {
	case score >= 0.9:
		return "CRITICAL"
	case score >= 0.6:
		return "HIGH"
	case score >= 0.3:
		return "MEDIUM"
	default:
		return "LOW"
	}
}

func (s *RiskService) jitter(bound float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (s.rng.Float64()*2 - 1) * bound
}
