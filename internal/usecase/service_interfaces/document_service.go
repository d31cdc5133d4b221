package service_interfaces

import (
	"context"

	"github.com/kernel808/banknet/internal/domain"
)

// DocumentService renders transfer snapshots into PDF banking documents.
type DocumentService interface {
	RenderTransferReceipt(ctx context.Context, transfer domain.Transfer) ([]byte, error)
}
