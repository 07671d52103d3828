package usecase

import (
	"context"

	"snoozetax/internal/pkg/errs"
	"snoozetax/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type TransactionUseCase interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*readmodel.TransactionRM, error)
}

type transactionUseCaseImpl struct {
	txRepo TransactionRepository
}

func NewTransactionUseCase(txRepo TransactionRepository) TransactionUseCase {
	return &transactionUseCaseImpl{txRepo: txRepo}
}

func (t *transactionUseCaseImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*readmodel.TransactionRM, error) {
	txs, err := t.txRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return readmodel.NewTransactionRMs(txs), nil
}
