package bootstrap

import (
	"snoozetax/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	components.SchedulingModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
