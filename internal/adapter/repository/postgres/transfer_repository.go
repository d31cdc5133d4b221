package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/kernel808/banknet/internal/domain"
	"github.com/kernel808/banknet/internal/logger"
)

type TransferRepository struct {
	db *sql.DB
}

func NewTransferRepository(db *sql.DB) *TransferRepository {
	return &TransferRepository{db: db}
}

const transferColumns = `id, sender_name, sender_bic, receiver_name, receiver_bic, transfer_type,
amount, currency, reference, purpose, status, stages, current_stage_index, location, logs,
auto_progress, created_by, created_at, estimated_completion, updated_at, version`

func (r *TransferRepository) Create(ctx context.Context, transfer domain.Transfer) (domain.Transfer, error) {
	logger.Info("transfer repository create", logger.Fields{
		"transferId": transfer.ID,
		"senderBic":  transfer.SenderBIC,
		"status":     transfer.Status,
	})

	stagesJSON, logsJSON, err := encodeTimeline(transfer)
	if err != nil {
		return domain.Transfer{}, err
	}

	const query = `
INSERT INTO transfers (
	id,
	sender_name,
	sender_bic,
	receiver_name,
	receiver_bic,
	transfer_type,
	amount,
	currency,
	reference,
	purpose,
	status,
	stages,
	current_stage_index,
	location,
	logs,
	auto_progress,
	created_by,
	created_at,
	estimated_completion
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19
)
RETURNING updated_at, version`

	if err := r.db.QueryRowContext(
		ctx,
		query,
		transfer.ID,
		transfer.SenderName,
		transfer.SenderBIC,
		transfer.ReceiverName,
		transfer.ReceiverBIC,
		transfer.TransferType,
		transfer.Amount.String(),
		transfer.Currency,
		transfer.Reference,
		transfer.Purpose,
		transfer.Status,
		stagesJSON,
		transfer.CurrentStageIndex,
		transfer.Location,
		logsJSON,
		transfer.AutoProgress,
		transfer.CreatedBy,
		transfer.CreatedAt,
		transfer.EstimatedCompletion,
	).Scan(&transfer.UpdatedAt, &transfer.Version); err != nil {
		logger.Error("transfer repository create failed", err, logger.Fields{
			"transferId": transfer.ID,
		})
		return domain.Transfer{}, fmt.Errorf("create transfer: %w", err)
	}

	return transfer, nil
}

func (r *TransferRepository) Get(ctx context.Context, id string) (domain.Transfer, error) {
	query := fmt.Sprintf(`SELECT %s FROM transfers WHERE id = $1`, transferColumns)

	transfer, err := scanTransfer(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Transfer{}, domain.ErrRecordNotFound
		}
		logger.Error("transfer repository get failed", err, logger.Fields{
			"transferId": id,
		})
		return domain.Transfer{}, fmt.Errorf("get transfer: %w", err)
	}

	return transfer, nil
}

// Update writes the full mutable state of the transfer guarded by the version
// the caller loaded. A concurrent writer that got there first leaves zero
// matching rows and the caller receives domain.ErrConflict.
func (r *TransferRepository) Update(ctx context.Context, transfer domain.Transfer) (domain.Transfer, error) {
	logger.Info("transfer repository update", logger.Fields{
		"transferId": transfer.ID,
		"status":     transfer.Status,
		"stageIndex": transfer.CurrentStageIndex,
		"version":    transfer.Version,
	})

	stagesJSON, logsJSON, err := encodeTimeline(transfer)
	if err != nil {
		return domain.Transfer{}, err
	}

	const query = `
UPDATE transfers
SET status = $3,
    stages = $4,
    current_stage_index = $5,
    location = $6,
    logs = $7,
    auto_progress = $8,
    updated_at = NOW(),
    version = version + 1
WHERE id = $1 AND version = $2
RETURNING updated_at, version`

	err = r.db.QueryRowContext(
		ctx,
		query,
		transfer.ID,
		transfer.Version,
		transfer.Status,
		stagesJSON,
		transfer.CurrentStageIndex,
		transfer.Location,
		logsJSON,
		transfer.AutoProgress,
	).Scan(&transfer.UpdatedAt, &transfer.Version)
	if err == nil {
		return transfer, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		logger.Error("transfer repository update failed", err, logger.Fields{
			"transferId": transfer.ID,
		})
		return domain.Transfer{}, fmt.Errorf("update transfer: %w", err)
	}

	// Zero rows means either the record is gone or someone else bumped the
	// version; distinguish the two for the caller.
	var exists bool
	if checkErr := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM transfers WHERE id = $1)`, transfer.ID).Scan(&exists); checkErr != nil {
		return domain.Transfer{}, fmt.Errorf("update transfer: %w", checkErr)
	}
	if !exists {
		return domain.Transfer{}, domain.ErrRecordNotFound
	}
	return domain.Transfer{}, domain.ErrConflict
}

func (r *TransferRepository) List(ctx context.Context, filter domain.TransferFilter) ([]domain.Transfer, error) {
	builder := sq.Select(transferColumns).
		From("transfers").
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}
	if filter.TransferType != "" {
		builder = builder.Where(sq.Eq{"transfer_type": filter.TransferType})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"sender_name": pattern},
			sq.ILike{"sender_bic": pattern},
			sq.ILike{"receiver_name": pattern},
			sq.ILike{"receiver_bic": pattern},
			sq.ILike{"reference": pattern},
		})
	}
	if filter.MinAmount != nil {
		builder = builder.Where(sq.GtOrEq{"amount": filter.MinAmount.String()})
	}
	if filter.MaxAmount != nil {
		builder = builder.Where(sq.LtOrEq{"amount": filter.MaxAmount.String()})
	}
	if filter.From != nil {
		builder = builder.Where(sq.GtOrEq{"created_at": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(sq.LtOrEq{"created_at": *filter.To})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build transfer list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error("transfer repository list failed", err, nil)
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()

	transfers := make([]domain.Transfer, 0)
	for rows.Next() {
		transfer, err := scanTransfer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transfer row: %w", err)
		}
		transfers = append(transfers, transfer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transfer rows: %w", err)
	}

	return transfers, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransfer(row rowScanner) (domain.Transfer, error) {
	var (
		transfer            domain.Transfer
		amount              string
		stagesJSON          []byte
		logsJSON            []byte
		estimatedCompletion sql.NullTime
	)

	if err := row.Scan(
		&transfer.ID,
		&transfer.SenderName,
		&transfer.SenderBIC,
		&transfer.ReceiverName,
		&transfer.ReceiverBIC,
		&transfer.TransferType,
		&amount,
		&transfer.Currency,
		&transfer.Reference,
		&transfer.Purpose,
		&transfer.Status,
		&stagesJSON,
		&transfer.CurrentStageIndex,
		&transfer.Location,
		&logsJSON,
		&transfer.AutoProgress,
		&transfer.CreatedBy,
		&transfer.CreatedAt,
		&estimatedCompletion,
		&transfer.UpdatedAt,
		&transfer.Version,
	); err != nil {
		return domain.Transfer{}, err
	}

	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return domain.Transfer{}, fmt.Errorf("parse stored amount %q: %w", amount, err)
	}
	transfer.Amount = parsedAmount

	if err := json.Unmarshal(stagesJSON, &transfer.Stages); err != nil {
		return domain.Transfer{}, fmt.Errorf("decode stages: %w", err)
	}
	if err := json.Unmarshal(logsJSON, &transfer.Logs); err != nil {
		return domain.Transfer{}, fmt.Errorf("decode logs: %w", err)
	}
	if estimatedCompletion.Valid {
		value := estimatedCompletion.Time
		transfer.EstimatedCompletion = &value
	}

	return transfer, nil
}

func encodeTimeline(transfer domain.Transfer) ([]byte, []byte, error) {
	stagesJSON, err := json.Marshal(transfer.Stages)
	if err != nil {
		return nil, nil, fmt.Errorf("encode stages: %w", err)
	}
	logs := transfer.Logs
	if logs == nil {
		logs = []domain.LogEntry{}
	}
	logsJSON, err := json.Marshal(logs)
	if err != nil {
		return nil, nil, fmt.Errorf("encode logs: %w", err)
	}
	return stagesJSON, logsJSON, nil
}
