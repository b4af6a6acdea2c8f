package readstore

import (
	"context"
	"time"

	"bookingpay/internal/infra"
	"bookingpay/internal/infra/db"
	"bookingpay/internal/pkg/pgconv"
	"bookingpay/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	const q = `
		SELECT id, customer_id, service_name, starts_at, ends_at, status, created_at
		FROM bookings
		WHERE id = $1`

	var view queries.BookingView
	err := r.db.QueryRow(ctx, q, id).Scan(
		&view.ID,
		&view.CustomerID,
		&view.ServiceName,
		&view.StartsAt,
		&view.EndsAt,
		&view.Status,
		&view.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return &view, nil
}

// FindByCustomerAround returns the customer's bookings created within the
// window around a reference time, the candidate set for legacy linkage.
func (r *BookingReadStore) FindByCustomerAround(ctx context.Context, customerID uuid.UUID, around time.Time, window time.Duration) ([]*queries.BookingView, error) {
	const q = `
		SELECT id, customer_id, service_name, starts_at, ends_at, status, created_at
		FROM bookings
		WHERE customer_id = $1 AND created_at BETWEEN $2 AND $3
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, q, customerID, around.Add(-window), around.Add(window))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by customer", err)
	}
	defer rows.Close()

	var result []*queries.BookingView
	for rows.Next() {
		var view queries.BookingView
		if err := rows.Scan(
			&view.ID,
			&view.CustomerID,
			&view.ServiceName,
			&view.StartsAt,
			&view.EndsAt,
			&view.Status,
			&view.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read bookings", err)
	}

	return result, nil
}
