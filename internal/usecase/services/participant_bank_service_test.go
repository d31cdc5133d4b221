package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kernel808/banknet/internal/adapter/repository/memory"
	"github.com/kernel808/banknet/internal/usecase/services"
)

func TestParticipantBankServiceListAll(t *testing.T) {
	svc := services.NewParticipantBankService(memory.NewParticipantBankRepository())

	banks, err := svc.ListBanks(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, banks, 12)
}

func TestParticipantBankServiceSearch(t *testing.T) {
	svc := services.NewParticipantBankService(memory.NewParticipantBankRepository())

	byName, err := svc.ListBanks(context.Background(), "deutsche")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "DEUTDEFFXXX", byName[0].BIC)

	byBIC, err := svc.ListBanks(context.Background(), "chasus")
	require.NoError(t, err)
	require.Len(t, byBIC, 1)
	assert.Equal(t, "JPMorgan Chase Bank N.A.", byBIC[0].BankName)

	byCountry, err := svc.ListBanks(context.Background(), "gb")
	require.NoError(t, err)
	assert.Len(t, byCountry, 3)

	none, err := svc.ListBanks(context.Background(), "atlantis")
	require.NoError(t, err)
	assert.Empty(t, none)
}
