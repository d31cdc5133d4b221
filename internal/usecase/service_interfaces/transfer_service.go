package service_interfaces

import (
	"context"

	"github.com/kernel808/banknet/internal/adapter/http/models"
	"github.com/kernel808/banknet/internal/domain"
)

type TransferService interface {
	Create(ctx context.Context, req models.CreateTransferRequest, actor domain.Actor) (domain.Transfer, error)
	Get(ctx context.Context, transferID string) (domain.Transfer, error)
	List(ctx context.Context, filter domain.TransferFilter) ([]domain.Transfer, error)
	ApplyAction(ctx context.Context, transferID string, action domain.TransferAction, notes string, actor domain.Actor) (domain.Transfer, error)
	AdvanceStage(ctx context.Context, transferID string, actor domain.Actor) (domain.Transfer, error)
	BulkApplyAction(ctx context.Context, transferIDs []string, action domain.TransferAction, notes string, actor domain.Actor) models.BulkActionReport
	ToggleAutoProgression(ctx context.Context, transferID string, enable bool, actor domain.Actor) (domain.Transfer, error)
	Stats(transfers []domain.Transfer) models.TransferStats
}
