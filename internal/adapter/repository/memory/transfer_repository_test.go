package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kernel808/banknet/internal/adapter/repository/memory"
	"github.com/kernel808/banknet/internal/domain"
)

func seedTransfer(t *testing.T, repo *memory.TransferRepository, id string, status domain.TransferStatus, amount int64, createdAt time.Time) domain.Transfer {
	t.Helper()
	created, err := repo.Create(context.Background(), domain.Transfer{
		ID:           id,
		SenderName:   "Acme GmbH",
		SenderBIC:    "DEUTDEFFXXX",
		ReceiverName: "Globex Corp",
		ReceiverBIC:  "CHASUS33XXX",
		TransferType: "SWIFT-MT",
		Amount:       decimal.NewFromInt(amount),
		Currency:     "EUR",
		Status:       status,
		Stages:       domain.NewStageSequence(),
		Location:     domain.LocationSendingBank,
		CreatedAt:    createdAt,
	})
	require.NoError(t, err)
	return created
}

func TestTransferRepositoryCreateAndGet(t *testing.T) {
	repo := memory.NewTransferRepository()
	created := seedTransfer(t, repo, "t-1", domain.TransferStatusPending, 100, time.Now().UTC())

	assert.Equal(t, int64(1), created.Version)

	fetched, err := repo.Get(context.Background(), "t-1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	assert.Len(t, fetched.Stages, domain.StageTemplateLength())
}

func TestTransferRepositoryGetUnknown(t *testing.T) {
	repo := memory.NewTransferRepository()
	_, err := repo.Get(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestTransferRepositoryUpdateBumpsVersion(t *testing.T) {
	repo := memory.NewTransferRepository()
	created := seedTransfer(t, repo, "t-1", domain.TransferStatusPending, 100, time.Now().UTC())

	created.Status = domain.TransferStatusProcessing
	updated, err := repo.Update(context.Background(), created)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.Version)
	assert.Equal(t, domain.TransferStatusProcessing, updated.Status)
}

func TestTransferRepositoryStaleVersionConflict(t *testing.T) {
	repo := memory.NewTransferRepository()
	seeded := seedTransfer(t, repo, "t-1", domain.TransferStatusProcessing, 100, time.Now().UTC())

	seeded.CurrentStageIndex = 2
	_, err := repo.Update(context.Background(), seeded)
	require.NoError(t, err)

	// Two writers load the same snapshot at stage 2 and both try to advance.
	first, err := repo.Get(context.Background(), "t-1")
	require.NoError(t, err)
	second, err := repo.Get(context.Background(), "t-1")
	require.NoError(t, err)

	first.CurrentStageIndex = 3
	_, err = repo.Update(context.Background(), first)
	require.NoError(t, err)

	second.CurrentStageIndex = 3
	_, err = repo.Update(context.Background(), second)
	require.ErrorIs(t, err, domain.ErrConflict)

	// Exactly one write landed: the pointer is 3, never 4.
	stored, err := repo.Get(context.Background(), "t-1")
	require.NoError(t, err)
	assert.Equal(t, 3, stored.CurrentStageIndex)
	assert.Equal(t, int64(3), stored.Version)
}

func TestTransferRepositoryUpdateUnknown(t *testing.T) {
	repo := memory.NewTransferRepository()
	_, err := repo.Update(context.Background(), domain.Transfer{ID: "missing", Version: 1})
	require.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestTransferRepositoryStoredStateIsIsolated(t *testing.T) {
	repo := memory.NewTransferRepository()
	seedTransfer(t, repo, "t-1", domain.TransferStatusPending, 100, time.Now().UTC())

	fetched, err := repo.Get(context.Background(), "t-1")
	require.NoError(t, err)

	// Mutating the returned copy must not leak into the store.
	fetched.Stages[0].Status = domain.StageStatusCompleted
	fetched.Logs = append(fetched.Logs, domain.LogEntry{Message: "tampered"})

	stored, err := repo.Get(context.Background(), "t-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StageStatusInProgress, stored.Stages[0].Status)
	assert.Empty(t, stored.Logs)
}

func TestTransferRepositoryListFiltersAndSorts(t *testing.T) {
	repo := memory.NewTransferRepository()
	now := time.Now().UTC()

	seedTransfer(t, repo, "t-old", domain.TransferStatusPending, 100, now.Add(-2*time.Hour))
	seedTransfer(t, repo, "t-mid", domain.TransferStatusCompleted, 5000, now.Add(-time.Hour))
	seedTransfer(t, repo, "t-new", domain.TransferStatusPending, 900, now)

	all, err := repo.List(context.Background(), domain.TransferFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "t-new", all[0].ID)
	assert.Equal(t, "t-old", all[2].ID)

	pending, err := repo.List(context.Background(), domain.TransferFilter{Status: domain.TransferStatusPending})
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	min := decimal.NewFromInt(1000)
	large, err := repo.List(context.Background(), domain.TransferFilter{MinAmount: &min})
	require.NoError(t, err)
	require.Len(t, large, 1)
	assert.Equal(t, "t-mid", large[0].ID)

	limited, err := repo.List(context.Background(), domain.TransferFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
