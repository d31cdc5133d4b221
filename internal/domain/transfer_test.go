package domain

import (
	"testing"
	"time"
)

func TestNewStageSequence(t *testing.T) {
	stages := NewStageSequence()

	if len(stages) != StageTemplateLength() {
		t.Fatalf("expected %d stages, got %d", StageTemplateLength(), len(stages))
	}
	if stages[0].Status != StageStatusInProgress {
		t.Fatalf("expected first stage in progress, got %q", stages[0].Status)
	}
	for i, stage := range stages[1:] {
		if stage.Status != StageStatusPending {
			t.Fatalf("expected stage %d pending, got %q", i+1, stage.Status)
		}
	}
	if stages[0].Location != LocationSendingBank {
		t.Fatalf("expected first stage at sending bank, got %q", stages[0].Location)
	}
	if last := stages[len(stages)-1]; last.Location != LocationReceivingBank {
		t.Fatalf("expected final stage at receiving bank, got %q", last.Location)
	}
}

func TestTransferStatusIsTerminal(t *testing.T) {
	cases := map[TransferStatus]bool{
		TransferStatusPending:    false,
		TransferStatusProcessing: false,
		TransferStatusHeld:       false,
		TransferStatusCompleted:  true,
		TransferStatusRejected:   true,
	}
	for status, want := range cases {
		if got := status.IsTerminal(); got != want {
			t.Fatalf("IsTerminal(%q) = %v, want %v", status, got, want)
		}
	}
}

func TestAtFinalStage(t *testing.T) {
	transfer := Transfer{Stages: NewStageSequence()}
	if transfer.AtFinalStage() {
		t.Fatal("fresh transfer must not be at the final stage")
	}

	transfer.CurrentStageIndex = len(transfer.Stages) - 1
	if !transfer.AtFinalStage() {
		t.Fatal("pointer at last index must report final stage")
	}
}

func TestCurrentStageOutOfRange(t *testing.T) {
	transfer := Transfer{Stages: NewStageSequence(), CurrentStageIndex: 99}
	if transfer.CurrentStage() != nil {
		t.Fatal("expected nil for an out-of-range pointer")
	}
}

func TestAppendLogPreservesOrder(t *testing.T) {
	var transfer Transfer
	transfer.AppendLog(LogLevelInfo, "first")
	transfer.AppendLog(LogLevelSuccess, "second")

	if len(transfer.Logs) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(transfer.Logs))
	}
	if transfer.Logs[0].Message != "first" || transfer.Logs[1].Message != "second" {
		t.Fatal("log entries out of append order")
	}
}

func TestEstimateCompletion(t *testing.T) {
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	cases := map[string]time.Duration{
		"SWIFT-MX": 24 * time.Hour,
		"SWIFT-MT": 48 * time.Hour,
		"":         72 * time.Hour,
		"OTHER":    72 * time.Hour,
	}
	for transferType, offset := range cases {
		if got := EstimateCompletion(createdAt, transferType); !got.Equal(createdAt.Add(offset)) {
			t.Fatalf("EstimateCompletion(%q) = %v, want %v", transferType, got, createdAt.Add(offset))
		}
	}
}
