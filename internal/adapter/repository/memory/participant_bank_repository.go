package memory

import (
	"context"

	"github.com/kernel808/banknet/internal/domain"
)

type ParticipantBankRepository struct{}

func NewParticipantBankRepository() *ParticipantBankRepository {
	return &ParticipantBankRepository{}
}

func (r *ParticipantBankRepository) GetAll(_ context.Context) ([]domain.ParticipantBank, error) {
	banks := []domain.ParticipantBank{
		{BankName: "Deutsche Bank AG", BIC: "DEUTDEFFXXX", Country: "DE", City: "Frankfurt am Main", Correspondent: true},
		{BankName: "JPMorgan Chase Bank N.A.", BIC: "CHASUS33XXX", Country: "US", City: "New York", Correspondent: true},
		{BankName: "HSBC Bank plc", BIC: "MIDLGB22XXX", Country: "GB", City: "London", Correspondent: true},
		{BankName: "BNP Paribas", BIC: "BNPAFRPPXXX", Country: "FR", City: "Paris", Correspondent: true},
		{BankName: "Citibank N.A.", BIC: "CITIUS33XXX", Country: "US", City: "New York", Correspondent: true},
		{BankName: "Barclays Bank plc", BIC: "BARCGB22XXX", Country: "GB", City: "London", Correspondent: false},
		{BankName: "UBS Switzerland AG", BIC: "UBSWCHZH80A", Country: "CH", City: "Zurich", Correspondent: false},
		{BankName: "Standard Chartered Bank", BIC: "SCBLGB2LXXX", Country: "GB", City: "London", Correspondent: true},
		{BankName: "Commerzbank AG", BIC: "COBADEFFXXX", Country: "DE", City: "Frankfurt am Main", Correspondent: false},
		{BankName: "Societe Generale", BIC: "SOGEFRPPXXX", Country: "FR", City: "Paris", Correspondent: false},
		{BankName: "Bank of Tokyo-Mitsubishi UFJ", BIC: "BOTKJPJTXXX", Country: "JP", City: "Tokyo", Correspondent: true},
		{BankName: "Sumitomo Mitsui Banking Corporation", BIC: "SMBCJPJTXXX", Country: "JP", City: "Tokyo", Correspondent: false},
	}

	return banks, nil
}
