package service_interfaces

import (
	"context"

	"github.com/kernel808/banknet/internal/domain"
)

// RiskScorer produces an informational fraud signal for a transfer snapshot.
// Callers treat failures as best-effort: a scoring error never blocks the
// transfer lifecycle.
type RiskScorer interface {
	Score(ctx context.Context, transfer domain.Transfer) (domain.RiskAssessment, error)
}
