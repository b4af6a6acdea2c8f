package worker

import (
	"context"
	"log/slog"
	"time"

	"bookingpay/internal/usecase/commands"
)

// Reconciler drives the poller on a fixed interval. Each tick is one
// idempotent unit of work; a slow tick overlapping the next is safe because
// every mutation goes through the conditional status update.
type Reconciler struct {
	cmd      commands.ReconcileCommands
	interval time.Duration
}

func NewReconciler(cmd commands.ReconcileCommands, interval time.Duration) *Reconciler {
	return &Reconciler{cmd: cmd, interval: interval}
}

func (r *Reconciler) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	slog.Info("reconciler started", "interval", r.interval.String())

	for {
		select {
		case <-ctx.Done():
			slog.Info("reconciler stopped")
			return
		case <-ticker.C:
			if _, err := r.cmd.ReconcileOnce(ctx); err != nil {
				slog.Error("reconcile tick failed", "error", err.Error())
			}
		}
	}
}
