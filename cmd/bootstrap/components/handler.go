package components

import (
	"bookingpay/internal/handler"
	"bookingpay/internal/handler/api"
	"bookingpay/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewWebhookHandler,
		api.NewPaymentRequestHandler,
		api.NewReconcileHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
