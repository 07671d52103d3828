package usecase

import (
	"context"

	"snoozetax/internal/infra"
)

// UnitOfWork runs a function inside a single database transaction: everything
// fn writes commits together or not at all. Implementations retry on
// serialization conflicts, so fn must be safe to run more than once.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx infra.DBTX) error) error
}
