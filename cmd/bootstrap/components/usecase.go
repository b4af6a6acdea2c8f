package components

import (
	"bookingpay/internal/infra/pii"
	"bookingpay/internal/infra/sumup"
	"bookingpay/internal/pkg/clock"
	"bookingpay/internal/pkg/config"
	"bookingpay/internal/usecase/commands"
	"bookingpay/internal/usecase/queries"
	"bookingpay/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		NewSumUpClient,
		NewNameDecryptor,
		NewSimulatorUseCase,
		NewReconcileUseCase,
		commands.NewWebhookUseCase,
		commands.NewPaymentRequestUseCase,
		commands.NewCancellationUseCase,
		commands.NewLinkageUseCase,
	),
)

func NewSumUpClient(cfg config.Config) sumup.Client {
	return sumup.NewClient(cfg.SumUp, cfg.Reconcile.ProcessorTimeout)
}

func NewNameDecryptor(cfg config.Config) (pii.NameDecryptor, error) {
	return pii.NewAESDecryptor(cfg.PII.Key)
}

func NewReconcileUseCase(
	uow shared.UnitOfWork,
	processor sumup.Client,
	webhooks commands.WebhookCommands,
	prQueries queries.PaymentRequestQueries,
	cfg config.Config,
	clk clock.Clock,
) commands.ReconcileCommands {
	return commands.NewReconcileUseCase(uow, processor, webhooks, prQueries, cfg.Reconcile, clk)
}

func NewSimulatorUseCase(
	uow shared.UnitOfWork,
	webhooks commands.WebhookCommands,
	cfg config.Config,
	clk clock.Clock,
) commands.SimulatorCommands {
	return commands.NewSimulatorUseCase(uow, webhooks, cfg.SumUp.Environment, clk)
}
