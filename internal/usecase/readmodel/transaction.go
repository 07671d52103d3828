package readmodel

import (
	"time"

	"snoozetax/internal/domain/transaction"

	"github.com/google/uuid"
)

type TransactionRM struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        string
	AmountCents int64
	AlarmID     *uuid.UUID
	Description string
	CreatedAt   time.Time
}

func NewTransactionRM(t *transaction.Transaction) *TransactionRM {
	return &TransactionRM{
		ID:          t.ID(),
		UserID:      t.UserID(),
		Type:        t.Type().String(),
		AmountCents: t.AmountCents(),
		AlarmID:     t.AlarmID(),
		Description: t.Description(),
		CreatedAt:   t.CreatedAt(),
	}
}

func NewTransactionRMs(txs []*transaction.Transaction) []*TransactionRM {
	out := make([]*TransactionRM, len(txs))
	for i, t := range txs {
		out[i] = NewTransactionRM(t)
	}
	return out
}
