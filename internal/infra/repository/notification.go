package repository

import (
	"context"
	"time"

	"bookingpay/internal/infra"
	"bookingpay/internal/infra/db"
	"bookingpay/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// NotificationRepository is the outbox: jobs are written inside the business
// transaction and a relay publishes them later, so a slow or failing notifier
// can never roll back a payment transition.
type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

type NotificationJob struct {
	ID      uuid.UUID
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	const q = `
		INSERT INTO notification_jobs (id, kind, topic, payload, status, run_at, created_at)
		VALUES ($1, $2, $3, $4, 'queued', $5, now())`

	if _, err := tx.Exec(ctx, q, uuid.New(), kind, topic, payload, runAt); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

// ClaimDue moves due jobs to status sending and returns them. SKIP LOCKED
// keeps overlapping relay runs from claiming the same job.
func (r *NotificationRepository) ClaimDue(ctx context.Context, tx db.DBTX, limit int) ([]NotificationJob, error) {
	const q = `
		UPDATE notification_jobs
		SET status = 'sending', updated_at = now()
		WHERE id IN (
			SELECT id FROM notification_jobs
			WHERE status = 'queued' AND run_at <= now()
			ORDER BY run_at
			LIMIT $1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING id, kind, topic, payload, run_at`

	rows, err := tx.Query(ctx, q, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}
	defer rows.Close()

	var jobs []NotificationJob
	for rows.Next() {
		var j NotificationJob
		if err := rows.Scan(&j.ID, &j.Kind, &j.Topic, &j.Payload, &j.RunAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification job", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read notification jobs", err)
	}

	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, tx db.DBTX, jobID uuid.UUID) error {
	const q = `UPDATE notification_jobs SET status = 'sent', updated_at = now() WHERE id = $1`

	if _, err := tx.Exec(ctx, q, jobID); err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

// MarkFailed requeues the job with a delay; the relay retries on its own
// schedule, independent of payment processing.
func (r *NotificationRepository) MarkFailed(ctx context.Context, tx db.DBTX, jobID uuid.UUID, lastError *string, retryAt time.Time) error {
	const q = `
		UPDATE notification_jobs
		SET status = 'queued', last_error = $2, run_at = $3, updated_at = now()
		WHERE id = $1`

	if _, err := tx.Exec(ctx, q, jobID, pgconv.StringPtrToPgtype(lastError), retryAt); err != nil {
		return infra.WrapRepoErr("failed to mark notification job failed", err)
	}
	return nil
}
