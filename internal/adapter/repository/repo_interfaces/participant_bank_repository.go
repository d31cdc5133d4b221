package repo_interfaces

import (
	"context"

	"github.com/kernel808/banknet/internal/domain"
)

type ParticipantBankRepository interface {
	GetAll(ctx context.Context) ([]domain.ParticipantBank, error)
}
