package response

import (
	"time"

	"snoozetax/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type TransactionResponse struct {
	ID          uuid.UUID  `json:"id"`
	Type        string     `json:"type"`
	AmountCents int64      `json:"amount_cents"`
	AlarmID     *uuid.UUID `json:"alarm_id,omitempty"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FromTransactionRMs(rms []*readmodel.TransactionRM) []*TransactionResponse {
	out := make([]*TransactionResponse, len(rms))
	for i, rm := range rms {
		var resp TransactionResponse
		_ = copier.Copy(&resp, rm)
		out[i] = &resp
	}
	return out
}
