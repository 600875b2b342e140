package components

import (
	"meter-reading-api/internal/handler"
	"meter-reading-api/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReadingHandler,
	),
	fx.Invoke(handler.NewRouter),
)
