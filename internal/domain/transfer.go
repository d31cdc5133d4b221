package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransferStatus string

const (
	TransferStatusPending    TransferStatus = "pending"
	TransferStatusProcessing TransferStatus = "processing"
	TransferStatusCompleted  TransferStatus = "completed"
	TransferStatusRejected   TransferStatus = "rejected"
	TransferStatusHeld       TransferStatus = "held"
)

// IsTerminal reports whether no further action may change the transfer.
func (s TransferStatus) IsTerminal() bool {
	return s == TransferStatusCompleted || s == TransferStatusRejected
}

type StageStatus string

const (
	StageStatusPending    StageStatus = "pending"
	StageStatusInProgress StageStatus = "in_progress"
	StageStatusCompleted  StageStatus = "completed"
)

type LogLevel string

const (
	LogLevelInfo    LogLevel = "INFO"
	LogLevelSuccess LogLevel = "SUCCESS"
	LogLevelWarning LogLevel = "WARNING"
	LogLevelError   LogLevel = "ERROR"
)

// LogEntry is an append-only audit record. Entries are ordered by append
// sequence; the timestamp is informational only.
type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Level     LogLevel  `json:"level"`
	Message   string    `json:"message"`
}

type Stage struct {
	Name        string      `json:"name"`
	Location    string      `json:"location"`
	Description string      `json:"description"`
	Status      StageStatus `json:"status"`
	CompletedAt *time.Time  `json:"completedAt,omitempty"`
	Logs        []LogEntry  `json:"logs,omitempty"`
}

type Transfer struct {
	ID                  string
	SenderName          string
	SenderBIC           string
	ReceiverName        string
	ReceiverBIC         string
	TransferType        string
	Amount              decimal.Decimal
	Currency            string
	Reference           string
	Purpose             string
	Status              TransferStatus
	Stages              []Stage
	CurrentStageIndex   int
	Location            string
	Logs                []LogEntry
	AutoProgress        bool
	CreatedBy           string
	CreatedAt           time.Time
	EstimatedCompletion *time.Time
	UpdatedAt           time.Time
	Version             int64
}

// CurrentStage returns the stage under the pointer. The pointer is always a
// valid index for transfers built from the stage template.
func (t *Transfer) CurrentStage() *Stage {
	if t.CurrentStageIndex < 0 || t.CurrentStageIndex >= len(t.Stages) {
		return nil
	}
	return &t.Stages[t.CurrentStageIndex]
}

// AtFinalStage reports whether the pointer sits on the last template stage.
func (t *Transfer) AtFinalStage() bool {
	return t.CurrentStageIndex >= len(t.Stages)-1
}

// AppendLog appends a transfer-level audit entry. Logs are never edited or
// removed afterwards.
func (t *Transfer) AppendLog(level LogLevel, message string) {
	t.Logs = append(t.Logs, LogEntry{
		Timestamp: time.Now().UTC(),
		Level:     level,
		Message:   message,
	})
}

type StageTemplate struct {
	Name        string
	Location    string
	Description string
}

// Transfer location tags mirrored into Transfer.Location as the pointer moves.
const (
	LocationSendingBank      = "sending_bank"
	LocationSwiftNetwork     = "swift_network"
	LocationIntermediaryBank = "intermediary_bank"
	LocationReceivingBank    = "receiving_bank"
)

var transferStageTemplate = []StageTemplate{
	{Name: "Origination", Location: LocationSendingBank, Description: "Payment instruction captured at the sending bank"},
	{Name: "Compliance Screening", Location: LocationSendingBank, Description: "AML and sanctions screening of both counterparties"},
	{Name: "Funds Earmarked", Location: LocationSendingBank, Description: "Cover funds reserved on the ordering account"},
	{Name: "SWIFT Network Handoff", Location: LocationSwiftNetwork, Description: "Message released into the SWIFT network"},
	{Name: "Intermediary Correspondent", Location: LocationIntermediaryBank, Description: "Routed through the correspondent bank chain"},
	{Name: "Destination Bank Receipt", Location: LocationReceivingBank, Description: "Message acknowledged by the receiving bank"},
	{Name: "Beneficiary Validation", Location: LocationReceivingBank, Description: "Beneficiary account details validated"},
	{Name: "Funds Settlement", Location: LocationReceivingBank, Description: "Funds posted to the beneficiary account"},
	{Name: "Completed", Location: LocationReceivingBank, Description: "Transfer lifecycle closed"},
}

// NewStageSequence builds a fresh stage list from the fixed template. The
// first stage starts in progress, everything after it pending.
func NewStageSequence() []Stage {
	stages := make([]Stage, 0, len(transferStageTemplate))
	for i, tpl := range transferStageTemplate {
		status := StageStatusPending
		if i == 0 {
			status = StageStatusInProgress
		}
		stages = append(stages, Stage{
			Name:        tpl.Name,
			Location:    tpl.Location,
			Description: tpl.Description,
			Status:      status,
		})
	}
	return stages
}

// StageTemplateLength is the fixed number of pipeline stages.
func StageTemplateLength() int {
	return len(transferStageTemplate)
}

// EstimateCompletion projects a completion time from the creation time and the
// transfer type. The projection is computed once at creation and never revised.
func EstimateCompletion(createdAt time.Time, transferType string) time.Time {
	switch transferType {
	case "SWIFT-MX":
		return createdAt.Add(24 * time.Hour)
	case "SWIFT-MT":
		return createdAt.Add(48 * time.Hour)
	default:
		return createdAt.Add(72 * time.Hour)
	}
}
