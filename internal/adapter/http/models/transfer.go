package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kernel808/banknet/internal/domain"
)

type CreateTransferRequest struct {
	SenderName   string          `json:"senderName"`
	SenderBIC    string          `json:"senderBic"`
	ReceiverName string          `json:"receiverName"`
	ReceiverBIC  string          `json:"receiverBic"`
	TransferType string          `json:"transferType"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	Reference    string          `json:"reference"`
	Purpose      string          `json:"purpose"`
}

func (r CreateTransferRequest) Validate() error {
	var problems []string

	if strings.TrimSpace(r.SenderName) == "" {
		problems = append(problems, "senderName is required")
	}
	if strings.TrimSpace(r.SenderBIC) == "" {
		problems = append(problems, "senderBic is required")
	}
	if strings.TrimSpace(r.ReceiverName) == "" {
		problems = append(problems, "receiverName is required")
	}
	if strings.TrimSpace(r.ReceiverBIC) == "" {
		problems = append(problems, "receiverBic is required")
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		problems = append(problems, "amount must be greater than zero")
	}
	if len(strings.TrimSpace(r.Currency)) != 3 {
		problems = append(problems, "currency must be a 3-letter code")
	}

	if len(problems) > 0 {
		return &domain.ValidationError{Problems: problems}
	}
	return nil
}

type TransferActionRequest struct {
	Action     domain.TransferAction `json:"action"`
	TransferID string                `json:"transferId"`
	Notes      string                `json:"notes,omitempty"`
}

func (r TransferActionRequest) Validate() error {
	var problems []string

	if strings.TrimSpace(r.TransferID) == "" {
		problems = append(problems, "transferId is required")
	}
	if !r.Action.Valid() {
		problems = append(problems, "action must be one of approve, hold, reject")
	}

	if len(problems) > 0 {
		return &domain.ValidationError{Problems: problems}
	}
	return nil
}

type BulkTransferActionRequest struct {
	Action      domain.TransferAction `json:"action"`
	TransferIDs []string              `json:"transferIds"`
	Notes       string                `json:"notes,omitempty"`
}

func (r BulkTransferActionRequest) Validate() error {
	var problems []string

	if len(r.TransferIDs) == 0 {
		problems = append(problems, "transferIds must not be empty")
	}
	if !r.Action.Valid() {
		problems = append(problems, "action must be one of approve, hold, reject")
	}

	if len(problems) > 0 {
		return &domain.ValidationError{Problems: problems}
	}
	return nil
}

type AdvanceStageRequest struct {
	TransferID string `json:"transferId"`
}

func (r AdvanceStageRequest) Validate() error {
	if strings.TrimSpace(r.TransferID) == "" {
		return &domain.ValidationError{Problems: []string{"transferId is required"}}
	}
	return nil
}

type ToggleAutoProgressionRequest struct {
	TransferID string `json:"transferId"`
	Enable     bool   `json:"enable"`
}

func (r ToggleAutoProgressionRequest) Validate() error {
	if strings.TrimSpace(r.TransferID) == "" {
		return &domain.ValidationError{Problems: []string{"transferId is required"}}
	}
	return nil
}

type StageResponse struct {
	Name        string            `json:"name"`
	Location    string            `json:"location"`
	Description string            `json:"description"`
	Status      string            `json:"status"`
	CompletedAt *string           `json:"completedAt,omitempty"`
	Logs        []domain.LogEntry `json:"logs,omitempty"`
}

type TransferResponse struct {
	ID                  string            `json:"transferId"`
	SenderName          string            `json:"senderName"`
	SenderBIC           string            `json:"senderBic"`
	ReceiverName        string            `json:"receiverName"`
	ReceiverBIC         string            `json:"receiverBic"`
	TransferType        string            `json:"transferType"`
	Amount              decimal.Decimal   `json:"amount"`
	Currency            string            `json:"currency"`
	Reference           string            `json:"reference"`
	Purpose             string            `json:"purpose"`
	Status              string            `json:"status"`
	Stages              []StageResponse   `json:"stages"`
	CurrentStageIndex   int               `json:"currentStageIndex"`
	Location            string            `json:"location"`
	Logs                []domain.LogEntry `json:"logs"`
	AutoProgress        bool              `json:"autoProgress"`
	CreatedBy           string            `json:"createdBy"`
	CreatedAt           string            `json:"createdAt"`
	EstimatedCompletion *string           `json:"estimatedCompletion,omitempty"`
}

func MapTransferToResponse(t domain.Transfer) TransferResponse {
	stages := make([]StageResponse, 0, len(t.Stages))
	for _, stage := range t.Stages {
		stages = append(stages, StageResponse{
			Name:        stage.Name,
			Location:    stage.Location,
			Description: stage.Description,
			Status:      string(stage.Status),
			CompletedAt: formatOptionalTime(stage.CompletedAt),
			Logs:        stage.Logs,
		})
	}

	return TransferResponse{
		ID:                  t.ID,
		SenderName:          t.SenderName,
		SenderBIC:           t.SenderBIC,
		ReceiverName:        t.ReceiverName,
		ReceiverBIC:         t.ReceiverBIC,
		TransferType:        t.TransferType,
		Amount:              t.Amount,
		Currency:            t.Currency,
		Reference:           t.Reference,
		Purpose:             t.Purpose,
		Status:              string(t.Status),
		Stages:              stages,
		CurrentStageIndex:   t.CurrentStageIndex,
		Location:            t.Location,
		Logs:                t.Logs,
		AutoProgress:        t.AutoProgress,
		CreatedBy:           t.CreatedBy,
		CreatedAt:           t.CreatedAt.Format(time.RFC3339),
		EstimatedCompletion: formatOptionalTime(t.EstimatedCompletion),
	}
}

type ActionResult struct {
	TransferID string `json:"transferId"`
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	ErrorCode  string `json:"errorCode,omitempty"`
}

type BulkActionReport struct {
	Action         string         `json:"action"`
	TotalRequested int            `json:"totalRequested"`
	Successful     int            `json:"successful"`
	Failed         int            `json:"failed"`
	Results        []ActionResult `json:"results"`
}

type TransferStats struct {
	TotalTransfers  int             `json:"totalTransfers"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	StatusBreakdown map[string]int  `json:"statusBreakdown"`
	Pending         int             `json:"pending"`
	Processing      int             `json:"processing"`
	Completed       int             `json:"completed"`
	Rejected        int             `json:"rejected"`
	Held            int             `json:"held"`
}

func formatOptionalTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.UTC().Format(time.RFC3339)
	return &formatted
}
