package service_interfaces

import (
	"context"

	"github.com/kernel808/banknet/internal/domain"
)

type ParticipantBankService interface {
	ListBanks(ctx context.Context, search string) ([]domain.ParticipantBank, error)
}
