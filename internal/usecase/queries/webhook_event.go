package queries

import (
	"context"

	"bookingpay/internal/infra"
	"bookingpay/internal/pkg/errs"
)

// WebhookEventQueries reads the ledger for operational lookups: tracing what
// happened to a specific event id, or listing everything recorded against a
// checkout across webhook, reconciler and simulator sources.
type WebhookEventQueries interface {
	GetByEventID(ctx context.Context, eventID string) (*WebhookEventView, error)
	ListByCheckout(ctx context.Context, checkoutID string) ([]*WebhookEventView, error)
}

type WebhookEventViewRepo interface {
	FindByEventID(ctx context.Context, eventID string) (*WebhookEventView, error)
	FindByCheckout(ctx context.Context, checkoutID string) ([]*WebhookEventView, error)
}

type webhookEventQueriesImpl struct {
	repo WebhookEventViewRepo
}

func NewWebhookEventQueries(repo WebhookEventViewRepo) WebhookEventQueries {
	return &webhookEventQueriesImpl{repo: repo}
}

func (q *webhookEventQueriesImpl) GetByEventID(ctx context.Context, eventID string) (*WebhookEventView, error) {
	view, err := q.repo.FindByEventID(ctx, eventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrWebhookEventNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *webhookEventQueriesImpl) ListByCheckout(ctx context.Context, checkoutID string) ([]*WebhookEventView, error) {
	return q.repo.FindByCheckout(ctx, checkoutID)
}
