package bootstrap

import (
	"context"

	"bookingpay/internal/infra/mq"
	"bookingpay/internal/pkg/config"
	"bookingpay/internal/usecase/commands"
	"bookingpay/internal/usecase/shared"
	"bookingpay/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("workers",
	fx.Provide(
		NewPublisher,
		NewReconcilerWorker,
		NewNotifierWorker,
	),
	fx.Invoke(StartWorkers),
)

func NewPublisher(lc fx.Lifecycle, cfg config.Config) (mq.Publisher, error) {
	publisher, err := mq.NewPublisher(cfg.MQ)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func NewReconcilerWorker(cmd commands.ReconcileCommands, cfg config.Config) *worker.Reconciler {
	return worker.NewReconciler(cmd, cfg.Reconcile.Interval)
}

func NewNotifierWorker(uow shared.UnitOfWork, publisher mq.Publisher, cfg config.Config) *worker.Notifier {
	return worker.NewNotifier(uow, publisher, cfg.MQ.RelayInterval)
}

func StartWorkers(lc fx.Lifecycle, reconciler *worker.Reconciler, notifier *worker.Notifier) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go reconciler.Run(ctx)
			go notifier.Run(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
