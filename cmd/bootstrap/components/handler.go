package components

import (
	"anchor-gateway/internal/handler"
	"anchor-gateway/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewTableBookingHandler,
		api.NewAgentHandler,
		api.NewSubmitHandler,
	),
	fx.Invoke(handler.NewRouter),
)
