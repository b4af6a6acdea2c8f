package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bookingpay/internal/handler/api"
	"bookingpay/internal/handler/middleware"
	"bookingpay/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	webhookHandler *api.WebhookHandler,
	prHandler *api.PaymentRequestHandler,
	reconcileHandler *api.ReconcileHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, webhookHandler, prHandler, reconcileHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	cfg config.Config,
	webhookHandler *api.WebhookHandler,
	prHandler *api.PaymentRequestHandler,
	reconcileHandler *api.ReconcileHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Processor-facing: signature-authenticated, no JWT.
	webhooks := engine.Group("/webhooks")
	webhooks.Use(middleware.WebhookAuth(cfg.SumUp.WebhookSecret))
	{
		addRoutes(webhooks, []route{
			{Method: http.MethodPost, Path: "/payment", Handler: webhookHandler.ReceiveEvent},
		})
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		paymentRequests := apiGroup.Group("/payment-requests")
		{
			addRoutes(paymentRequests, []route{
				{Method: http.MethodPost, Path: "", Handler: prHandler.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: prHandler.Get},
				{Method: http.MethodPost, Path: "/:id/send", Handler: prHandler.Send},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: prHandler.Cancel},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "/:id/payment-requests", Handler: prHandler.ListByBooking},
				{Method: http.MethodGet, Path: "/:id/payments", Handler: prHandler.ListPaymentsByBooking},
			})
		}

		payments := apiGroup.Group("/payments")
		{
			addRoutes(payments, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: prHandler.GetPayment},
				{Method: http.MethodPost, Path: "/:id/resolve-booking", Handler: prHandler.ResolveBooking},
			})
		}

		internal := apiGroup.Group("/internal")
		internal.Use(authMiddleware.RequireRole(middleware.RoleAdmin, middleware.RoleService))
		{
			addRoutes(internal, []route{
				{Method: http.MethodPost, Path: "/reconcile", Handler: reconcileHandler.Trigger},
				{Method: http.MethodPost, Path: "/payment-requests/:id/simulate", Handler: reconcileHandler.Simulate},
				{Method: http.MethodGet, Path: "/checkouts/:checkoutId", Handler: reconcileHandler.TraceCheckout},
				{Method: http.MethodGet, Path: "/webhook-events/:eventId", Handler: reconcileHandler.GetWebhookEvent},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
