package bootstrap

import (
	"anchor-gateway/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	AnchorModule,
	components.UseCaseModule,
	components.HandlerModule,
)
