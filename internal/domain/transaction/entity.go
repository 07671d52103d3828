package transaction

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidType   = errors.New("invalid transaction type")
	ErrInvalidAmount = errors.New("transaction amount cannot be negative")
)

type Type string

const (
	TypePenalty Type = "PENALTY"
	TypePayment Type = "PAYMENT"
)

func NewType(s string) (Type, error) {
	switch Type(s) {
	case TypePenalty, TypePayment:
		return Type(s), nil
	default:
		return "", ErrInvalidType
	}
}

func (t Type) String() string { return string(t) }

// Transaction is one ledger entry. A successful snooze produces exactly one
// PENALTY entry keyed by the alarm that fired.
type Transaction struct {
	id          uuid.UUID
	userID      uuid.UUID
	txType      Type
	amountCents int64
	alarmID     *uuid.UUID
	description string
	createdAt   time.Time
}

func NewTransaction(userID uuid.UUID, txType Type, amountCents int64, alarmID *uuid.UUID, description string) (*Transaction, error) {
	if amountCents < 0 {
		return nil, ErrInvalidAmount
	}
	return &Transaction{
		id:          uuid.New(),
		userID:      userID,
		txType:      txType,
		amountCents: amountCents,
		alarmID:     alarmID,
		description: description,
	}, nil
}

func ReconstructTransaction(
	id, userID uuid.UUID,
	txType Type,
	amountCents int64,
	alarmID *uuid.UUID,
	description string,
	createdAt time.Time,
) *Transaction {
	return &Transaction{
		id:          id,
		userID:      userID,
		txType:      txType,
		amountCents: amountCents,
		alarmID:     alarmID,
		description: description,
		createdAt:   createdAt,
	}
}

func (t *Transaction) ID() uuid.UUID        { return t.id }
func (t *Transaction) UserID() uuid.UUID    { return t.userID }
func (t *Transaction) Type() Type           { return t.txType }
func (t *Transaction) AmountCents() int64   { return t.amountCents }
func (t *Transaction) AlarmID() *uuid.UUID  { return t.alarmID }
func (t *Transaction) Description() string  { return t.description }
func (t *Transaction) CreatedAt() time.Time { return t.createdAt }
