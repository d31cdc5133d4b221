package workers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/kernel808/banknet/internal/domain"
	"github.com/kernel808/banknet/internal/logger"
	"github.com/kernel808/banknet/internal/usecase/service_interfaces"
)

// systemActor is the identity the sweep advances transfers under. Every
// stage change it makes lands in the audit log like any operator action.
var systemActor = domain.Actor{
	UserID:   "system",
	Username: "auto-progression",
	Role:     domain.RoleOfficer,
}

// ProgressionWorker periodically advances processing transfers that have
// automatic progression enabled.
type ProgressionWorker struct {
	transfers service_interfaces.TransferService
	interval  time.Duration
	cron      *cron.Cron
}

func NewProgressionWorker(transfers service_interfaces.TransferService, interval time.Duration) *ProgressionWorker {
	return &ProgressionWorker{
		transfers: transfers,
		interval:  interval,
		cron:      cron.New(cron.WithSeconds()),
	}
}

// Start schedules the sweep and begins running it. The returned error is
// non-nil only when the interval cannot be expressed as a cron schedule.
func (w *ProgressionWorker) Start(ctx context.Context) error {
	spec := fmt.Sprintf("@every %s", w.interval)
	if _, err := w.cron.AddFunc(spec, func() { w.sweep(ctx) }); err != nil {
		return fmt.Errorf("schedule progression sweep: %w", err)
	}

	w.cron.Start()
	logger.Info("auto-progression worker started", logger.Fields{"interval": w.interval.String()})
	return nil
}

// Stop halts the schedule and waits for an in-flight sweep to finish.
func (w *ProgressionWorker) Stop() {
	stopCtx := w.cron.Stop()
	<-stopCtx.Done()
	logger.Info("auto-progression worker stopped", nil)
}

func (w *ProgressionWorker) sweep(ctx context.Context) {
	transfers, err := w.transfers.List(ctx, domain.TransferFilter{Status: domain.TransferStatusProcessing})
	if err != nil {
		logger.Error("progression sweep list failed", err, nil)
		return
	}

	advanced := 0
	for _, transfer := range transfers {
		if !transfer.AutoProgress {
			continue
		}

		if _, err := w.transfers.AdvanceStage(ctx, transfer.ID, systemActor); err != nil {
			// Conflicts mean an operator advanced the transfer first.
			// Invalid states mean it reached a point the sweep must not
			// push past. Both are expected, neither aborts the sweep.
			var stateErr *domain.InvalidStateError
			if errors.Is(err, domain.ErrConflict) || errors.As(err, &stateErr) {
				continue
			}
			logger.Error("progression sweep advance failed", err, logger.Fields{
				"transferId": transfer.ID,
			})
			continue
		}
		advanced++
	}

	if advanced > 0 {
		logger.Info("progression sweep advanced transfers", logger.Fields{"count": advanced})
	}
}
