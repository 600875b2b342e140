package bootstrap

import (
	"meter-reading-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	RecognizerModule,
	components.UseCaseModule,
	components.HandlerModule,
)
