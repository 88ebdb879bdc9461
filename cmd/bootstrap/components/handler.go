package components

import (
	"lookup-service/internal/handler"
	"lookup-service/internal/handler/api"
	"lookup-service/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewLookupHandler,
		api.NewConsultationHandler,
		api.NewBalanceHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
