package components

import (
	"snoozetax/internal/infra/repository"
	"snoozetax/internal/infra/uow"
	"snoozetax/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		uow.NewPostgresUoW,
		fx.Annotate(
			repository.NewAlarmRepository,
			fx.As(new(usecase.AlarmRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repository.NewTransactionRepository,
			fx.As(new(usecase.TransactionRepository)),
		),
	),
)
