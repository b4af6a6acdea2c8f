package readstore

import (
	"context"

	"bookingpay/internal/infra"
	"bookingpay/internal/infra/db"
	"bookingpay/internal/pkg/pgconv"
	"bookingpay/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerReadStore struct {
	db db.DBTX
}

func NewCustomerReadStore(dbtx db.DBTX) *CustomerReadStore {
	return &CustomerReadStore{db: dbtx}
}

func (r *CustomerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	const q = `
		SELECT id, first_name_enc, last_name_enc, phone_enc, active, created_at
		FROM customers
		WHERE id = $1`

	var view queries.CustomerView
	err := r.db.QueryRow(ctx, q, id).Scan(
		&view.ID,
		&view.FirstNameEncrypted,
		&view.LastNameEncrypted,
		&view.PhoneEncrypted,
		&view.Active,
		&view.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by ID", err)
	}

	return &view, nil
}
