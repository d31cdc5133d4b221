package services

import (
	"context"
	"strings"

	"github.com/kernel808/banknet/internal/adapter/repository/repo_interfaces"
	"github.com/kernel808/banknet/internal/domain"
	"github.com/kernel808/banknet/internal/logger"
	"github.com/kernel808/banknet/internal/usecase/service_interfaces"
)

// Verify that ParticipantBankService implements the service_interfaces.ParticipantBankService interface
var _ service_interfaces.ParticipantBankService = (*ParticipantBankService)(nil)

type ParticipantBankService struct {
	bankRepo repo_interfaces.ParticipantBankRepository
}

func NewParticipantBankService(bankRepo repo_interfaces.ParticipantBankRepository) *ParticipantBankService {
	return &ParticipantBankService{bankRepo: bankRepo}
}

// ListBanks returns the directory, optionally narrowed by a case-insensitive
// substring match on name, BIC or country.
func (s *ParticipantBankService) ListBanks(ctx context.Context, search string) ([]domain.ParticipantBank, error) {
	banks, err := s.bankRepo.GetAll(ctx)
	if err != nil {
		logger.Error("participant bank service list failed", err, nil)
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return banks, nil
	}

	filtered := make([]domain.ParticipantBank, 0, len(banks))
	for _, bank := range banks {
		if strings.Contains(strings.ToLower(bank.BankName), needle) ||
			strings.Contains(strings.ToLower(bank.BIC), needle) ||
			strings.Contains(strings.ToLower(bank.Country), needle) {
			filtered = append(filtered, bank)
		}
	}

	return filtered, nil
}
