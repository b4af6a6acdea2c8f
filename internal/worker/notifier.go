package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"bookingpay/internal/infra/mq"
	"bookingpay/internal/usecase/shared"
)

const (
	notifierBatchSize  = 50
	notifierRetryDelay = time.Minute
)

// Notifier relays queued notification jobs to the message broker. It runs
// outside the payment transaction: a broker outage delays notifications but
// can never roll back or block a financial state transition.
type Notifier struct {
	uow       shared.UnitOfWork
	publisher mq.Publisher
	interval  time.Duration
}

func NewNotifier(uow shared.UnitOfWork, publisher mq.Publisher, interval time.Duration) *Notifier {
	return &Notifier{uow: uow, publisher: publisher, interval: interval}
}

func (n *Notifier) Run(ctx context.Context) {
	ticker := time.NewTicker(n.interval)
	defer ticker.Stop()

	slog.Info("notifier started", "interval", n.interval.String())

	for {
		select {
		case <-ctx.Done():
			slog.Info("notifier stopped")
			return
		case <-ticker.C:
			if err := n.relayOnce(ctx); err != nil {
				slog.Error("notification relay failed", "error", err.Error())
			}
		}
	}
}

// relayOnce claims a batch of due jobs and publishes them. SKIP LOCKED in the
// claim keeps overlapping runs off the same job.
func (n *Notifier) relayOnce(ctx context.Context) error {
	return n.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		jobs, err := tx.Notifications().ClaimDue(ctx, tx.DB(), notifierBatchSize)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			if err := n.publisher.PublishJSON(ctx, job.Kind+"."+job.Topic, json.RawMessage(job.Payload)); err != nil {
				msg := err.Error()
				if markErr := tx.Notifications().MarkFailed(ctx, tx.DB(), job.ID, &msg, time.Now().Add(notifierRetryDelay)); markErr != nil {
					return markErr
				}
				slog.Warn("failed to publish notification, requeued",
					"job_id", job.ID.String(),
					"topic", job.Topic,
					"error", msg)
				continue
			}

			if err := tx.Notifications().MarkSent(ctx, tx.DB(), job.ID); err != nil {
				return err
			}
		}
		return nil
	})
}
