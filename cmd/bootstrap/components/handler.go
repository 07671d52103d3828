package components

import (
	"snoozetax/internal/handler"
	"snoozetax/internal/handler/api"
	"snoozetax/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAlarmHandler,
		api.NewTransactionHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
