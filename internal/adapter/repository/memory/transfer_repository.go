package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/kernel808/banknet/internal/domain"
)

// TransferRepository is an in-process store used by the memory storage driver
// and by tests. It enforces the same version check as the postgres
// implementation so optimistic-concurrency behavior is identical.
type TransferRepository struct {
	mu        sync.RWMutex
	transfers map[string]domain.Transfer
}

func NewTransferRepository() *TransferRepository {
	return &TransferRepository{transfers: make(map[string]domain.Transfer)}
}

func (r *TransferRepository) Create(_ context.Context, transfer domain.Transfer) (domain.Transfer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	transfer.Version = 1
	transfer.UpdatedAt = time.Now().UTC()
	r.transfers[transfer.ID] = cloneTransfer(transfer)
	return transfer, nil
}

func (r *TransferRepository) Get(_ context.Context, id string) (domain.Transfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.transfers[id]
	if !ok {
		return domain.Transfer{}, domain.ErrRecordNotFound
	}
	return cloneTransfer(stored), nil
}

func (r *TransferRepository) Update(_ context.Context, transfer domain.Transfer) (domain.Transfer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.transfers[transfer.ID]
	if !ok {
		return domain.Transfer{}, domain.ErrRecordNotFound
	}
	if stored.Version != transfer.Version {
		return domain.Transfer{}, domain.ErrConflict
	}

	transfer.Version++
	transfer.UpdatedAt = time.Now().UTC()
	r.transfers[transfer.ID] = cloneTransfer(transfer)
	return transfer, nil
}

func (r *TransferRepository) List(_ context.Context, filter domain.TransferFilter) ([]domain.Transfer, error) {
	r.mu.RLock()
	all := make([]domain.Transfer, 0, len(r.transfers))
	for _, t := range r.transfers {
		all = append(all, cloneTransfer(t))
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	return filter.Apply(all), nil
}

// cloneTransfer deep-copies the slices so callers cannot mutate stored state
// behind the version check.
func cloneTransfer(t domain.Transfer) domain.Transfer {
	out := t
	out.Stages = make([]domain.Stage, len(t.Stages))
	for i, stage := range t.Stages {
		copied := stage
		if stage.CompletedAt != nil {
			ts := *stage.CompletedAt
			copied.CompletedAt = &ts
		}
		copied.Logs = append([]domain.LogEntry(nil), stage.Logs...)
		out.Stages[i] = copied
	}
	out.Logs = append([]domain.LogEntry(nil), t.Logs...)
	if t.EstimatedCompletion != nil {
		ts := *t.EstimatedCompletion
		out.EstimatedCompletion = &ts
	}
	return out
}
