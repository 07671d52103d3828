package components

import (
	"snoozetax/internal/pkg/clock"
	"snoozetax/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		usecase.NewAuthUseCase,
		usecase.NewAlarmUseCase,
		usecase.NewSnoozeUseCase,
		usecase.NewTransactionUseCase,
	),
)
