package components

import (
	"bookingpay/internal/infra/db"
	"bookingpay/internal/infra/readstore"
	"bookingpay/internal/infra/uow"
	"bookingpay/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork
		uow.NewPostgresUoW,
		// Read stores behind their query-side interfaces
		fx.Annotate(
			readstore.NewPaymentRequestReadStore,
			fx.As(new(queries.PaymentRequestViewRepo)),
		),
		fx.Annotate(
			readstore.NewPaymentReadStore,
			fx.As(new(queries.PaymentViewRepo)),
		),
		fx.Annotate(
			readstore.NewWebhookEventReadStore,
			fx.As(new(queries.WebhookEventViewRepo)),
		),
		// Query facades
		queries.NewPaymentRequestQueries,
		queries.NewPaymentQueries,
		queries.NewWebhookEventQueries,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
