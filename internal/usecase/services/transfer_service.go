package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.openly.dev/pointy"

	"github.com/kernel808/banknet/internal/adapter/http/models"
	"github.com/kernel808/banknet/internal/adapter/repository/repo_interfaces"
	"github.com/kernel808/banknet/internal/domain"
	"github.com/kernel808/banknet/internal/logger"
	"github.com/kernel808/banknet/internal/usecase/service_interfaces"
)

// Verify that TransferService implements the service_interfaces.TransferService interface
var _ service_interfaces.TransferService = (*TransferService)(nil)

// TransferService owns the transfer lifecycle: creation, the approve/hold/
// reject action set and stage advancement. Every mutation is load, apply,
// save; the repository's version check serializes concurrent writers.
type TransferService struct {
	transferRepo repo_interfaces.TransferRepository
	riskScorer   service_interfaces.RiskScorer
}

func NewTransferService(
	transferRepo repo_interfaces.TransferRepository,
	riskScorer service_interfaces.RiskScorer,
) *TransferService {
	return &TransferService{
		transferRepo: transferRepo,
		riskScorer:   riskScorer,
	}
}

func (s *TransferService) Create(ctx context.Context, req models.CreateTransferRequest, actor domain.Actor) (domain.Transfer, error) {
	logger.Info("transfer service create request", logger.Fields{
		"payload": logger.SanitizePayload(req),
		"actor":   actor.Username,
	})

	if err := req.Validate(); err != nil {
		logger.Error("transfer service create validation failed", err, nil)
		return domain.Transfer{}, err
	}

	now := time.Now().UTC()
	transfer := domain.Transfer{
		ID:                  uuid.NewString(),
		SenderName:          strings.TrimSpace(req.SenderName),
		SenderBIC:           strings.ToUpper(strings.TrimSpace(req.SenderBIC)),
		ReceiverName:        strings.TrimSpace(req.ReceiverName),
		ReceiverBIC:         strings.ToUpper(strings.TrimSpace(req.ReceiverBIC)),
		TransferType:        strings.TrimSpace(req.TransferType),
		Amount:              req.Amount,
		Currency:            strings.ToUpper(strings.TrimSpace(req.Currency)),
		Reference:           strings.TrimSpace(req.Reference),
		Purpose:             strings.TrimSpace(req.Purpose),
		Status:              domain.TransferStatusPending,
		Stages:              domain.NewStageSequence(),
		CurrentStageIndex:   0,
		CreatedBy:           actor.UserID,
		CreatedAt:           now,
		EstimatedCompletion: pointy.Pointer(domain.EstimateCompletion(now, strings.TrimSpace(req.TransferType))),
	}
	transfer.Location = transfer.Stages[0].Location
	appendStageLog(&transfer.Stages[0], domain.LogLevelInfo, "Stage started: "+transfer.Stages[0].Name)

	s.appendInitiationLogs(&transfer)
	s.appendRiskAssessment(ctx, &transfer)

	created, err := s.transferRepo.Create(ctx, transfer)
	if err != nil {
		logger.Error("transfer service create failed", err, logger.Fields{
			"transferId": transfer.ID,
		})
		return domain.Transfer{}, err
	}

	logger.Info("transfer service create success", logger.Fields{
		"transferId": created.ID,
		"amount":     created.Amount,
		"currency":   created.Currency,
	})

	return created, nil
}

// appendInitiationLogs writes the SWIFT-terminal style audit trail attached to
// every new transfer.
func (s *TransferService) appendInitiationLogs(t *domain.Transfer) {
	t.AppendLog(domain.LogLevelInfo, fmt.Sprintf("SWIFT NETWORK INITIATED - MSG TYPE: %s", t.TransferType))
	t.AppendLog(domain.LogLevelInfo, fmt.Sprintf("SENDING BANK: %s", t.SenderBIC))
	t.AppendLog(domain.LogLevelInfo, fmt.Sprintf("RECEIVING BANK: %s", t.ReceiverBIC))
	t.AppendLog(domain.LogLevelInfo, fmt.Sprintf("AMOUNT: %s %s", t.Currency, t.Amount.StringFixed(2)))
	if t.Reference != "" {
		t.AppendLog(domain.LogLevelInfo, fmt.Sprintf("REFERENCE: %s", t.Reference))
	}
	t.AppendLog(domain.LogLevelSuccess, "VALIDATION: PASSED - BIC CODES VERIFIED")
	t.AppendLog(domain.LogLevelSuccess, "COMPLIANCE CHECK: PASSED - AML/KYC CLEARED")
	if t.SenderBIC == t.ReceiverBIC {
		// Not rejected, but worth surfacing in the audit trail.
		t.AppendLog(domain.LogLevelWarning, "SENDER AND RECEIVER BIC ARE IDENTICAL - SELF-TRANSFER FLAGGED FOR REVIEW")
	}
	t.AppendLog(domain.LogLevelInfo, "TRANSFER INITIATED - AWAITING APPROVAL")
}

// appendRiskAssessment asks the scorer for an informational score. Scoring is
// best effort: a failure is logged and creation continues.
func (s *TransferService) appendRiskAssessment(ctx context.Context, t *domain.Transfer) {
	if s.riskScorer == nil {
		return
	}

	assessment, err := s.riskScorer.Score(ctx, *t)
	if err != nil {
		logger.Warn("transfer service risk scoring unavailable", logger.Fields{
			"transferId": t.ID,
			"reason":     err.Error(),
		})
		return
	}

	t.AppendLog(domain.LogLevelInfo, fmt.Sprintf("RISK ASSESSMENT: SCORE %.2f LEVEL %s", assessment.Score, assessment.Level))
}

func (s *TransferService) Get(ctx context.Context, transferID string) (domain.Transfer, error) {
	return s.transferRepo.Get(ctx, transferID)
}

func (s *TransferService) List(ctx context.Context, filter domain.TransferFilter) ([]domain.Transfer, error) {
	return s.transferRepo.List(ctx, filter)
}

func (s *TransferService) ApplyAction(ctx context.Context, transferID string, action domain.TransferAction, notes string, actor domain.Actor) (domain.Transfer, error) {
	logger.Info("transfer service apply action", logger.Fields{
		"transferId": transferID,
		"action":     action,
		"actor":      actor.Username,
	})

	if !actor.Role.CanMutateTransfers() {
		return domain.Transfer{}, &domain.AuthorizationError{Actor: actor.Username, RequiredRole: "admin or officer"}
	}
	if !action.Valid() {
		return domain.Transfer{}, &domain.ValidationError{Problems: []string{fmt.Sprintf("unknown action %q", action)}}
	}

	transfer, err := s.transferRepo.Get(ctx, transferID)
	if err != nil {
		return domain.Transfer{}, err
	}

	if err := applyActionTransition(&transfer, action, notes, actor); err != nil {
		logger.Error("transfer service action rejected", err, logger.Fields{
			"transferId": transferID,
			"action":     action,
			"status":     transfer.Status,
		})
		return domain.Transfer{}, err
	}

	updated, err := s.transferRepo.Update(ctx, transfer)
	if err != nil {
		return domain.Transfer{}, err
	}

	logger.Info("transfer service action applied", logger.Fields{
		"transferId": updated.ID,
		"action":     action,
		"status":     updated.Status,
	})

	return updated, nil
}

// applyActionTransition enforces the status table. Illegal transitions return
// InvalidStateError and leave the transfer untouched.
func applyActionTransition(t *domain.Transfer, action domain.TransferAction, notes string, actor domain.Actor) error {
	suffix := ""
	if strings.TrimSpace(notes) != "" {
		suffix = " - " + strings.TrimSpace(notes)
	}

	switch action {
	case domain.ActionApprove:
		switch t.Status {
		case domain.TransferStatusPending:
			t.Status = domain.TransferStatusProcessing
			t.AppendLog(domain.LogLevelSuccess, fmt.Sprintf("ACTION: APPROVE by %s%s", actor.Username, suffix))
		case domain.TransferStatusHeld:
			// Reinstatement: a held transfer is approved straight into processing.
			t.Status = domain.TransferStatusProcessing
			t.AppendLog(domain.LogLevelSuccess, fmt.Sprintf("ACTION: APPROVE (REINSTATED FROM HOLD) by %s%s", actor.Username, suffix))
		default:
			return invalidState(t, action, "approve is only valid for pending or held transfers")
		}
	case domain.ActionHold:
		if t.Status != domain.TransferStatusPending {
			return invalidState(t, action, "hold is only valid for pending transfers")
		}
		t.Status = domain.TransferStatusHeld
		t.AppendLog(domain.LogLevelWarning, fmt.Sprintf("ACTION: HOLD by %s%s", actor.Username, suffix))
	case domain.ActionReject:
		if t.Status != domain.TransferStatusPending && t.Status != domain.TransferStatusHeld {
			return invalidState(t, action, "reject is only valid for pending or held transfers")
		}
		t.Status = domain.TransferStatusRejected
		t.AppendLog(domain.LogLevelError, fmt.Sprintf("ACTION: REJECT by %s%s", actor.Username, suffix))
	}
	return nil
}

func (s *TransferService) AdvanceStage(ctx context.Context, transferID string, actor domain.Actor) (domain.Transfer, error) {
	logger.Info("transfer service advance stage", logger.Fields{
		"transferId": transferID,
		"actor":      actor.Username,
	})

	if !actor.Role.CanMutateTransfers() {
		return domain.Transfer{}, &domain.AuthorizationError{Actor: actor.Username, RequiredRole: "admin or officer"}
	}

	transfer, err := s.transferRepo.Get(ctx, transferID)
	if err != nil {
		return domain.Transfer{}, err
	}

	if transfer.Status.IsTerminal() {
		return domain.Transfer{}, invalidState(&transfer, "advance", "transfer is in a terminal status")
	}
	if transfer.Status == domain.TransferStatusHeld {
		return domain.Transfer{}, invalidState(&transfer, "advance", "held transfers must be reinstated before advancing")
	}
	if transfer.AtFinalStage() {
		return domain.Transfer{}, invalidState(&transfer, "advance", "transfer is already at the final stage")
	}

	now := time.Now().UTC()

	current := &transfer.Stages[transfer.CurrentStageIndex]
	current.Status = domain.StageStatusCompleted
	current.CompletedAt = pointy.Pointer(now)
	appendStageLog(current, domain.LogLevelSuccess, "Stage completed: "+current.Name)

	transfer.CurrentStageIndex++
	next := &transfer.Stages[transfer.CurrentStageIndex]
	next.Status = domain.StageStatusInProgress
	appendStageLog(next, domain.LogLevelInfo, "Stage started: "+next.Name)

	transfer.Location = next.Location
	transfer.AppendLog(domain.LogLevelInfo, fmt.Sprintf("STAGE ADVANCED: %s (%s)", next.Name, next.Location))

	if transfer.AtFinalStage() {
		next.Status = domain.StageStatusCompleted
		next.CompletedAt = pointy.Pointer(now)
		transfer.Status = domain.TransferStatusCompleted
		transfer.AppendLog(domain.LogLevelSuccess, "TRANSFER COMPLETED - FUNDS SETTLED AT RECEIVING BANK")
	}

	updated, err := s.transferRepo.Update(ctx, transfer)
	if err != nil {
		return domain.Transfer{}, err
	}

	logger.Info("transfer service stage advanced", logger.Fields{
		"transferId": updated.ID,
		"stageIndex": updated.CurrentStageIndex,
		"status":     updated.Status,
	})

	return updated, nil
}

// BulkApplyAction applies the action to each transfer independently and
// reports per-ID outcomes. There is no rollback on partial failure.
func (s *TransferService) BulkApplyAction(ctx context.Context, transferIDs []string, action domain.TransferAction, notes string, actor domain.Actor) models.BulkActionReport {
	logger.Info("transfer service bulk action", logger.Fields{
		"action": action,
		"count":  len(transferIDs),
		"actor":  actor.Username,
	})

	results := make([]models.ActionResult, len(transferIDs))

	var wg sync.WaitGroup
	for i, id := range transferIDs {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			_, err := s.ApplyAction(ctx, id, action, notes, actor)
			if err != nil {
				results[i] = models.ActionResult{
					TransferID: id,
					Success:    false,
					Message:    err.Error(),
					ErrorCode:  errorCode(err),
				}
				return
			}
			results[i] = models.ActionResult{
				TransferID: id,
				Success:    true,
				Message:    fmt.Sprintf("transfer %sd successfully", action),
			}
		}(i, id)
	}
	wg.Wait()

	report := models.BulkActionReport{
		Action:         string(action),
		TotalRequested: len(transferIDs),
		Results:        results,
	}
	for _, result := range results {
		if result.Success {
			report.Successful++
		} else {
			report.Failed++
		}
	}

	return report
}

func (s *TransferService) ToggleAutoProgression(ctx context.Context, transferID string, enable bool, actor domain.Actor) (domain.Transfer, error) {
	if !actor.Role.CanMutateTransfers() {
		return domain.Transfer{}, &domain.AuthorizationError{Actor: actor.Username, RequiredRole: "admin or officer"}
	}

	transfer, err := s.transferRepo.Get(ctx, transferID)
	if err != nil {
		return domain.Transfer{}, err
	}
	if transfer.Status.IsTerminal() {
		return domain.Transfer{}, invalidState(&transfer, "toggle-auto-progression", "transfer is in a terminal status")
	}

	transfer.AutoProgress = enable
	state := "DISABLED"
	if enable {
		state = "ENABLED"
	}
	transfer.AppendLog(domain.LogLevelInfo, fmt.Sprintf("AUTO-PROGRESSION %s by %s", state, actor.Username))

	return s.transferRepo.Update(ctx, transfer)
}

// Stats is a pure aggregation over an already-loaded transfer set.
func (s *TransferService) Stats(transfers []domain.Transfer) models.TransferStats {
	stats := models.TransferStats{
		TotalTransfers:  len(transfers),
		StatusBreakdown: make(map[string]int),
	}

	for _, t := range transfers {
		stats.TotalAmount = stats.TotalAmount.Add(t.Amount)
		stats.StatusBreakdown[string(t.Status)]++
	}

	stats.Pending = stats.StatusBreakdown[string(domain.TransferStatusPending)]
	stats.Processing = stats.StatusBreakdown[string(domain.TransferStatusProcessing)]
	stats.Completed = stats.StatusBreakdown[string(domain.TransferStatusCompleted)]
	stats.Rejected = stats.StatusBreakdown[string(domain.TransferStatusRejected)]
	stats.Held = stats.StatusBreakdown[string(domain.TransferStatusHeld)]

	return stats
}

func invalidState(t *domain.Transfer, action domain.TransferAction, reason string) error {
	return &domain.InvalidStateError{
		TransferID: t.ID,
		Action:     string(action),
		Status:     t.Status,
		Reason:     reason,
	}
}

func appendStageLog(stage *domain.Stage, level domain.LogLevel, message string) {
	stage.Logs = append(stage.Logs, domain.LogEntry{
		Timestamp: time.Now().UTC(),
		Level:     level,
		Message:   message,
	})
}

func errorCode(err error) string {
	var validationErr *domain.ValidationError
	var authErr *domain.AuthorizationError
	var stateErr *domain.InvalidStateError

	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		return "NOT_FOUND"
	case errors.Is(err, domain.ErrConflict):
		return "CONFLICT"
	case errors.As(err, &validationErr):
		return "VALIDATION"
	case errors.As(err, &authErr):
		return "FORBIDDEN"
	case errors.As(err, &stateErr):
		return "INVALID_STATE"
	default:
		return "INTERNAL"
	}
}
