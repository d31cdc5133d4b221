package repo_interfaces

import (
	"context"

	"github.com/kernel808/banknet/internal/domain"
)

type TransferRepository interface {
	Create(ctx context.Context, transfer domain.Transfer) (domain.Transfer, error)
	Get(ctx context.Context, id string) (domain.Transfer, error)
	// Update persists the transfer only when the stored version still matches
	// transfer.Version, then bumps the version. A stale snapshot yields
	// domain.ErrConflict.
	Update(ctx context.Context, transfer domain.Transfer) (domain.Transfer, error)
	List(ctx context.Context, filter domain.TransferFilter) ([]domain.Transfer, error)
}
