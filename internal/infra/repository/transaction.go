package repository

import (
	"context"
	"time"

	"snoozetax/internal/domain/transaction"
	"snoozetax/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TransactionRepository struct {
	pool *pgxpool.Pool
}

func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

func (r *TransactionRepository) Create(ctx context.Context, tx infra.DBTX, t *transaction.Transaction) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO transactions (id, user_id, type, amount_cents, alarm_id, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())`,
		t.ID(), t.UserID(), t.Type().String(), t.AmountCents(), t.AlarmID(), t.Description(),
	)
	if err != nil {
		return infra.WrapDBErr("failed to create transaction", err)
	}
	return nil
}

func (r *TransactionRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*transaction.Transaction, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, type, amount_cents, alarm_id, description, created_at
		FROM transactions WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, infra.WrapDBErr("failed to list transactions", err)
	}
	defer rows.Close()

	var out []*transaction.Transaction
	for rows.Next() {
		var (
			id, uid     uuid.UUID
			txType      string
			amountCents int64
			alarmID     *uuid.UUID
			description string
			createdAt   time.Time
		)
		if err := rows.Scan(&id, &uid, &txType, &amountCents, &alarmID, &description, &createdAt); err != nil {
			return nil, infra.WrapDBErr("failed to scan transaction row", err)
		}
		typ, err := transaction.NewType(txType)
		if err != nil {
			return nil, infra.WrapDBErr("invalid transaction type in storage", err)
		}
		out = append(out, transaction.ReconstructTransaction(id, uid, typ, amountCents, alarmID, description, createdAt))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapDBErr("failed to read transaction rows", err)
	}
	return out, nil
}
