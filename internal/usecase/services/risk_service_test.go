package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kernel808/banknet/internal/domain"
	"github.com/kernel808/banknet/internal/usecase/services"
)

func TestRiskServiceScoreBounds(t *testing.T) {
	svc := services.NewRiskService()

	transfers := []domain.Transfer{
		{ID: "low", Amount: decimal.NewFromFloat(123.45), Currency: "EUR", SenderBIC: "A", ReceiverBIC: "B"},
		{ID: "high", Amount: decimal.NewFromInt(5_000_000), Currency: "AED", SenderBIC: "X", ReceiverBIC: "X", Purpose: "urgent consulting"},
	}

	for _, transfer := range transfers {
		assessment, err := svc.Score(context.Background(), transfer)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, assessment.Score, 0.0)
		assert.LessOrEqual(t, assessment.Score, 1.0)
		assert.Equal(t, transfer.ID, assessment.TransferID)
		assert.False(t, assessment.ScoredAt.IsZero())
	}
}

func TestRiskServiceFlagsHighRiskTransfer(t *testing.T) {
	svc := services.NewRiskService()

	assessment, err := svc.Score(context.Background(), domain.Transfer{
		ID:          "t-1",
		Amount:      decimal.NewFromInt(2_000_000),
		Currency:    "AED",
		SenderBIC:   "DEUTDEFFXXX",
		ReceiverBIC: "DEUTDEFFXXX",
		Purpose:     "urgent loan repayment",
	})
	require.NoError(t, err)

	// 0.05 base + 0.35 + 0.10 + 0.25 + 0.15 + 0.05 puts the floor above 0.9
	// even with the worst-case jitter.
	assert.GreaterOrEqual(t, assessment.Score, 0.85)
	assert.Contains(t, []string{"HIGH", "CRITICAL"}, assessment.Level)
	assert.NotEmpty(t, assessment.Factors)
}

func TestRiskServiceLowRiskTransfer(t *testing.T) {
	svc := services.NewRiskService()

	assessment, err := svc.Score(context.Background(), domain.Transfer{
		ID:          "t-2",
		Amount:      decimal.NewFromFloat(512.37),
		Currency:    "EUR",
		SenderBIC:   "DEUTDEFFXXX",
		ReceiverBIC: "CHASUS33XXX",
		Purpose:     "invoice settlement",
	})
	require.NoError(t, err)

	assert.LessOrEqual(t, assessment.Score, 0.3)
	assert.Equal(t, "LOW", assessment.Level)
	assert.Empty(t, assessment.Factors)
}
