package repository

import (
	"context"
	"log/slog"

	"bookingpay/internal/infra/db"
	"bookingpay/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type AuditRepository struct{}

func NewAuditRepository() *AuditRepository {
	return &AuditRepository{}
}

// Record writes a compliance entry for customer-related reads and mutations.
// Failures are logged and swallowed: an audit outage must never block a
// payment transition.
func (r *AuditRepository) Record(ctx context.Context, tx db.DBTX, actor, action, entityType string, entityID uuid.UUID, customerID *uuid.UUID, details []byte) {
	const q = `
		INSERT INTO audit_log (id, actor, action, entity_type, entity_id, customer_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())`

	if _, err := tx.Exec(ctx, q, uuid.New(), actor, action, entityType, entityID, pgconv.UUIDPtrToPgtype(customerID), details); err != nil {
		slog.Error("failed to write audit log entry",
			"action", action,
			"entity_type", entityType,
			"entity_id", entityID.String(),
			"error", err.Error())
	}
}
