package services_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kernel808/banknet/internal/domain"
	"github.com/kernel808/banknet/internal/usecase/services"
)

func TestDocumentServiceRendersPDF(t *testing.T) {
	svc := services.NewDocumentService()

	transfer := domain.Transfer{
		ID:           "8f14e45f-ea2b-4c1d-9e6b-000000000001",
		SenderName:   "Acme GmbH",
		SenderBIC:    "DEUTDEFFXXX",
		ReceiverName: "Globex Corp",
		ReceiverBIC:  "CHASUS33XXX",
		TransferType: "SWIFT-MT",
		Amount:       decimal.NewFromFloat(1000.50),
		Currency:     "EUR",
		Reference:    "INV-2024-001",
		Status:       domain.TransferStatusProcessing,
		Stages:       domain.NewStageSequence(),
		Location:     domain.LocationSendingBank,
		CreatedAt:    time.Now().UTC(),
	}

	pdf, err := svc.RenderTransferReceipt(context.Background(), transfer)
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")), "output must start with a PDF header")
}

func TestDocumentServiceRendersCompletedTransfer(t *testing.T) {
	svc := services.NewDocumentService()

	now := time.Now().UTC()
	stages := domain.NewStageSequence()
	for i := range stages {
		stages[i].Status = domain.StageStatusCompleted
		completed := now
		stages[i].CompletedAt = &completed
	}

	transfer := domain.Transfer{
		ID:                "8f14e45f-ea2b-4c1d-9e6b-000000000002",
		SenderName:        "Acme GmbH",
		SenderBIC:         "DEUTDEFFXXX",
		ReceiverName:      "Globex Corp",
		ReceiverBIC:       "CHASUS33XXX",
		Amount:            decimal.NewFromInt(250),
		Currency:          "USD",
		Status:            domain.TransferStatusCompleted,
		Stages:            stages,
		CurrentStageIndex: len(stages) - 1,
		Location:          domain.LocationReceivingBank,
		CreatedAt:         now,
	}

	pdf, err := svc.RenderTransferReceipt(context.Background(), transfer)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}
