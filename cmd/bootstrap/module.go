package bootstrap

import (
	"agenda-web/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	MetricsModule,
	LoggerModule,
	JWTModule,
	components.BackendModule,
	components.UseCaseModule,
	components.SessionModule,
	components.HandlerModule,
)
